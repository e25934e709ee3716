package main

import (
	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config drives the local simulator. Values come from an optional TOML file
// and can be overridden per field through ROSHAMBO_* environment variables.
type Config struct {
	LogLevel string `toml:"log_level" env:"ROSHAMBO_LOG_LEVEL"`
	Host     string `toml:"host" env:"ROSHAMBO_HOST"`
	Guest    string `toml:"guest" env:"ROSHAMBO_GUEST"`
	Stake    uint64 `toml:"stake" env:"ROSHAMBO_STAKE"`
	Funding  uint64 `toml:"funding" env:"ROSHAMBO_FUNDING"`
}

func defaultConfig() Config {
	return Config{
		LogLevel: "info",
		Host:     "hive:alice",
		Guest:    "hive:bob",
		Stake:    100,
		Funding:  250,
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "read config %s", path)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "parse environment")
	}
	return cfg, nil
}
