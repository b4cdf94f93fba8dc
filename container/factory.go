package container

import (
	"fmt"

	"github.com/plotvault/plotvault/core"
)

// DefaultPath is the conventional container file name, created in the
// working directory when no path is configured.
const DefaultPath = "_plots.db"

// Backend identifies a container implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
)

// Config selects and parameterizes a container backend.
type Config struct {
	// Backend picks the implementation. Empty means sqlite.
	Backend Backend `json:"backend" yaml:"backend"`

	// Path is the container file location for the sqlite backend.
	// Empty means DefaultPath.
	Path string `json:"path" yaml:"path"`

	// Mode controls open semantics. Empty means core.ModeUpdate.
	Mode core.OpenMode `json:"mode" yaml:"mode"`

	// Redis holds connection settings for the redis backend.
	Redis RedisConfig `json:"redis" yaml:"redis"`
}

// DefaultConfig returns the conventional local setup: a SQLite container at
// DefaultPath opened for update.
func DefaultConfig() Config {
	return Config{
		Backend: BackendSQLite,
		Path:    DefaultPath,
		Mode:    core.ModeUpdate,
	}
}

// Open creates the container described by cfg.
func Open(cfg Config) (core.Container, error) {
	mode := cfg.Mode
	if mode == "" {
		mode = core.ModeUpdate
	}
	switch cfg.Backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendSQLite, "":
		path := cfg.Path
		if path == "" {
			path = DefaultPath
		}
		return OpenSQLite(path, mode)
	case BackendRedis:
		return OpenRedis(cfg.Redis, mode)
	default:
		return nil, fmt.Errorf("unsupported container backend: %s", cfg.Backend)
	}
}
