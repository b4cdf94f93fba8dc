package config

import (
	"github.com/plotvault/plotvault/container"
	"github.com/plotvault/plotvault/core"
	"github.com/plotvault/plotvault/logging"
	"github.com/plotvault/plotvault/store"
)

// Config is the complete CLI configuration.
type Config struct {
	// Container selects and parameterizes the backend.
	Container ContainerConfig `yaml:"container" env:"CONTAINER"`

	// DefaultBase is the plot family name used when none is given.
	DefaultBase string `yaml:"default_base" env:"DEFAULT_BASE"`

	// Log controls CLI log output.
	Log LogConfig `yaml:"log" env:"LOG"`
}

// ContainerConfig mirrors container.Config in file/env friendly form.
type ContainerConfig struct {
	// Backend: memory, sqlite or redis.
	Backend string `yaml:"backend" env:"BACKEND"`
	// Path is the sqlite container file location.
	Path string `yaml:"path" env:"PATH"`
	// Redis connection settings for the redis backend.
	Redis RedisConfig `yaml:"redis" env:"REDIS"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr      string `yaml:"addr" env:"ADDR"`
	Password  string `yaml:"password" env:"PASSWORD"`
	DB        int    `yaml:"db" env:"DB"`
	KeyPrefix string `yaml:"key_prefix" env:"KEY_PREFIX"`
}

// LogConfig holds log output settings.
type LogConfig struct {
	// Level: debug, info, warn or error.
	Level string `yaml:"level" env:"LEVEL"`
	// Format: json or text.
	Format string `yaml:"format" env:"FORMAT"`
}

// DefaultConfig returns the baseline configuration: sqlite container at the
// conventional path, default base name, warn level text logs.
func DefaultConfig() *Config {
	return &Config{
		Container: ContainerConfig{
			Backend: string(container.BackendSQLite),
			Path:    container.DefaultPath,
		},
		DefaultBase: store.DefaultBase,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// ContainerConfig converts into the typed config the container factory
// consumes, with the open mode decided by the command being run.
func (c *Config) ContainerConfig(mode core.OpenMode) container.Config {
	return container.Config{
		Backend: container.Backend(c.Container.Backend),
		Path:    c.Container.Path,
		Mode:    mode,
		Redis: container.RedisConfig{
			Addr:      c.Container.Redis.Addr,
			Password:  c.Container.Redis.Password,
			DB:        c.Container.Redis.DB,
			KeyPrefix: c.Container.Redis.KeyPrefix,
		},
	}
}

// ParseLevel maps a config level string onto a logging.LogLevel; unknown
// values fall back to info.
func ParseLevel(s string) logging.LogLevel {
	switch s {
	case "debug":
		return logging.LogLevelDebug
	case "info":
		return logging.LogLevelInfo
	case "warn":
		return logging.LogLevelWarn
	case "error":
		return logging.LogLevelError
	default:
		return logging.LogLevelInfo
	}
}
