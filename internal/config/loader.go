package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/saadjs/habit-hub/internal/app"
)

// Load reads configuration from an optional YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags). A .env file in the
// working directory is loaded into the environment first when present.
// The YAML file path comes from CONFIG_PATH; without it only ENV and defaults apply.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.resolvePaths(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *Config) resolvePaths() error {
	if c.Data.Path == "" {
		path, err := app.DefaultDataPath()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		c.Data.Path = path
	}
	if c.Data.SessionsPath == "" {
		path, err := app.DefaultSessionsPath()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		c.Data.SessionsPath = path
	}
	return nil
}
