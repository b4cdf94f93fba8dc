// Package plotvault provides a high-level façade over the version store and
// container abstractions enabling versioned persistence of named plots in a
// single container file. Most applications interact with this package by:
//  1. Opening a session via Open() (optionally overriding the container backend)
//  2. Saving successive revisions of named plots (Save) and annotating them
//     (Comment/Tag)
//  3. Enumerating revision history (List) and retrieving any revision (Get)
//
// The façade wires a container backend into store.Store while keeping setup
// ergonomics concise. All defaults are safe for local use: a SQLite container
// at DefaultContainerPath, opened for update, with logging disabled.
// Applications with their own persistence inject a core.Container instead.
package plotvault

import (
	"github.com/plotvault/plotvault/container"
	"github.com/plotvault/plotvault/core"
	"github.com/plotvault/plotvault/logging"
	"github.com/plotvault/plotvault/store"
)

const (
	// DefaultContainerPath is the container file used when none is configured.
	DefaultContainerPath = container.DefaultPath

	// DefaultBaseName is the plot family name used when Save gets an empty one.
	DefaultBaseName = store.DefaultBase
)

// Options configures a vault session.
type Options struct {
	// Container injects an already opened backend. When set, ContainerConfig
	// is only consulted for its Mode and the caller keeps ownership of
	// opening; the store still closes the container on Close.
	Container core.Container

	// ContainerConfig selects and parameterizes a built-in backend
	// (memory, sqlite, redis). Defaults to container.DefaultConfig().
	ContainerConfig container.Config

	// DefaultBase substitutes for empty base names in Save.
	DefaultBase string

	// Logger receives structured store activity (defaults to NoOp logger).
	Logger logging.Logger
}

// Open creates a session storing raw byte artifacts. Counters resume from the
// container's existing keys, so successive sessions continue version numbers
// seamlessly.
func Open(optFns ...func(o *Options)) (*store.Store[[]byte], error) {
	return OpenTyped[[]byte](core.RawCodec{}, optFns...)
}

// OpenTyped creates a session for an arbitrary artifact type, serialized
// through the given codec.
func OpenTyped[T any](codec core.Codec[T], optFns ...func(o *Options)) (*store.Store[T], error) {
	opts := Options{
		ContainerConfig: container.DefaultConfig(),
		DefaultBase:     DefaultBaseName,
		Logger:          logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	mode := opts.ContainerConfig.Mode
	if mode == "" {
		mode = core.ModeUpdate
	}

	ctr := opts.Container
	opened := false
	if ctr == nil {
		var err error
		ctr, err = container.Open(opts.ContainerConfig)
		if err != nil {
			return nil, err
		}
		opened = true
	}

	s, err := store.New[T](ctr, codec, func(o *store.Options) {
		o.DefaultBase = opts.DefaultBase
		o.Mode = mode
		o.Logger = opts.Logger
	})
	if err != nil {
		if opened {
			_ = ctr.Close()
		}
		return nil, err
	}
	return s, nil
}
