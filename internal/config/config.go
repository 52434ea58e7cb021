package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	HTTP     HTTP
	Model    Model
	Estimate Estimate
	Log      Log
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"housing-price"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

// Load reads the environment, after merging an optional .env file from the
// working directory.
func Load() (Config, error) {
	_ = godotenv.Load()

	return Parse()
}

// Parse reads the process environment only.
func Parse() (Config, error) {
	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
