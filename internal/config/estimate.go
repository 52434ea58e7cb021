package config

import "time"

type Estimate struct {
	StrictDomain bool          `env:"ESTIMATE_STRICT_DOMAIN" envDefault:"true"`
	CacheTTL     time.Duration `env:"ESTIMATE_CACHE_TTL" envDefault:"10m"`
	CacheCleanup time.Duration `env:"ESTIMATE_CACHE_CLEANUP" envDefault:"20m"`
}
