package config

import "time"

// Model selects the scorer: a remote model server when URL is set, the
// exported pipeline at Path otherwise.
type Model struct {
	Path    string        `env:"MODEL_PATH" envDefault:"models/forest_pipeline.json"`
	URL     string        `env:"MODEL_URL"`
	Token   string        `env:"MODEL_TOKEN" json:"-"`
	Name    string        `env:"MODEL_NAME" envDefault:"remote"`
	Version string        `env:"MODEL_VERSION"`
	Timeout time.Duration `env:"MODEL_TIMEOUT" envDefault:"5s"`
}

func (m Model) Remote() bool {
	return m.URL != ""
}
