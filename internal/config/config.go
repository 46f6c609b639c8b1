package config

import (
	"fmt"
	"slices"
	"time"
)

const (
	WorkoutBackendMemory = "memory"
	WorkoutBackendSQLite = "sqlite"
)

// Config is the root application configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
	Workout WorkoutConfig `yaml:"workout"`
	Lookup  LookupConfig  `yaml:"lookup"`
}

// DataConfig locates the JSON documents. Empty document paths resolve to
// files in the user's home directory; an empty BackupDir sits next to the data file.
type DataConfig struct {
	Path         string `yaml:"path"          env:"HUB_DATA_PATH"`
	SessionsPath string `yaml:"sessions_path" env:"HUB_SESSIONS_PATH"`
	BackupDir    string `yaml:"backup_dir"    env:"HUB_BACKUP_DIR"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// ServerConfig holds HTTP server settings for the workout API.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type WorkoutConfig struct {
	Backend string `yaml:"backend" env:"WORKOUT_BACKEND" env-default:"sqlite"`
	DBPath  string `yaml:"db_path" env:"WORKOUT_DB_PATH" env-default:"workouts.db"`
}

type LookupConfig struct {
	BaseURL string        `yaml:"base_url" env:"LOOKUP_BASE_URL" env-default:"https://world.openfoodfacts.org"`
	Timeout time.Duration `yaml:"timeout"  env:"LOOKUP_TIMEOUT"  env-default:"12s"`
}

func (c *Config) Validate() error {
	if !slices.Contains([]string{WorkoutBackendMemory, WorkoutBackendSQLite}, c.Workout.Backend) {
		return fmt.Errorf("workout.backend must be %q or %q, got %q", WorkoutBackendMemory, WorkoutBackendSQLite, c.Workout.Backend)
	}
	if c.Workout.Backend == WorkoutBackendSQLite && c.Workout.DBPath == "" {
		return fmt.Errorf("workout.db_path is required for the sqlite backend")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be > 0")
	}
	if c.Lookup.Timeout <= 0 {
		return fmt.Errorf("lookup.timeout must be > 0")
	}
	return nil
}
