// Package config assembles the service configuration from the environment
// and the optional tuning file.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"outreach-engine/internal/config/configs"
)

// Config is the full service configuration. Each section reads the
// variables under its envPrefix; defaults live on the section types.
type Config struct {
	Env string `env:"ENV" envDefault:"prod"`

	HTTP      configs.HTTP      `envPrefix:"HTTP_"`
	Log       configs.Logger    `envPrefix:"LOG_"`
	Psql      configs.Postgres  `envPrefix:"PSQL_"`
	Redis     configs.Redis     `envPrefix:"REDIS_"`
	Enrich    configs.Enrich    `envPrefix:"ENRICH_"`
	Discovery configs.Discovery `envPrefix:"DISCOVERY_"`

	// TuningPath is a YAML file overriding the business constants in
	// Tuning. Empty means built-in defaults.
	TuningPath string `env:"TUNING_PATH"`
	Tuning     configs.Tuning
}

// Load parses the environment and then the tuning file.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	tuning, err := configs.LoadTuning(cfg.TuningPath)
	if err != nil {
		return cfg, err
	}
	cfg.Tuning = tuning
	return cfg, nil
}
