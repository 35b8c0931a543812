// Package config reads the dfsm command's environment defaults.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds defaults that command-line flags may override.
type Config struct {
	LogLevel  string `env:"DFSM_LOG_LEVEL"  envDefault:"warn"`
	LogFormat string `env:"DFSM_LOG_FORMAT" envDefault:"text"`
	NoColor   bool   `env:"DFSM_NO_COLOR"   envDefault:"false"`
	Prefix    string `env:"DFSM_PREFIX"     envDefault:"fsm"`
}

// Load parses the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}
