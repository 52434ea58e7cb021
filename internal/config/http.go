package config

import "time"

type HTTP struct {
	ListenAddress       string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ProbeListenAddress  string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricListenAddress string        `env:"METRIC_LISTEN_ADDRESS" envDefault:":9090"`
	WriteTimeout        time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout     time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// LogFieldMaxLen truncates logged request and response bodies.
	LogFieldMaxLen int `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"2048"`
}
