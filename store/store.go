package store

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/plotvault/plotvault/core"
	"github.com/plotvault/plotvault/key"
	"github.com/plotvault/plotvault/logging"
)

// DefaultBase is the base name substituted when Save is called with an
// empty one.
const DefaultBase = "canvas"

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// DefaultBase substitutes for empty base names in Save.
	DefaultBase string
	// Mode mirrors how the container was opened; core.ModeRead makes every
	// mutating operation return core.ErrReadOnly.
	Mode core.OpenMode
	// Logger receives structured store activity.
	Logger logging.Logger
}

// target is the (base, version) pair untargeted Comment/Tag calls attach to.
type target struct {
	base    string
	version int
}

// Store is a versioning session over one open container. It owns the per-base
// version counters, resumed from the container's keys at construction, and
// the "last saved" pointer used by untargeted annotation calls. A Store is
// not safe for concurrent use; it is a synchronous single-writer session.
type Store[T any] struct {
	container core.Container
	codec     core.Codec[T]

	defaultBase string
	mode        core.OpenMode
	logger      logging.Logger

	sessionID string
	counters  map[string]int
	last      *target
	closed    bool
}

// New constructs a Store over an already opened container. The container's
// keys are scanned once to resume per-base counters, so version numbers stay
// contiguous across sessions; a scan failure fails construction.
func New[T any](c core.Container, codec core.Codec[T], optFns ...func(o *Options)) (*Store[T], error) {
	opts := Options{
		DefaultBase: DefaultBase,
		Mode:        core.ModeUpdate,
		Logger:      logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	s := &Store[T]{
		container:   c,
		codec:       codec,
		defaultBase: opts.DefaultBase,
		mode:        opts.Mode,
		logger:      opts.Logger,
		sessionID:   uuid.NewString(),
		counters:    make(map[string]int),
	}

	keys, err := c.Keys()
	if err != nil {
		return nil, fmt.Errorf("scan container keys: %w", err)
	}
	for _, k := range keys {
		base, version, ok := key.Decode(k)
		if !ok {
			continue // companion and foreign keys don't feed counters
		}
		if version > s.counters[base] {
			s.counters[base] = version
		}
	}

	s.logger.Debug("store.open", "session_id", s.sessionID, "mode", string(s.mode), "bases", len(s.counters))
	return s, nil
}

// SessionID returns the identifier attached to this session's log entries.
func (s *Store[T]) SessionID() string { return s.sessionID }

// Save persists the artifact as the next version of base and returns the
// assigned version number. An empty base selects the configured default.
// The counter advances only after the container write succeeds, so a failed
// write hands the same number to the next Save.
func (s *Store[T]) Save(base string, artifact T) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if s.mode == core.ModeRead {
		return 0, core.ErrReadOnly
	}
	if base == "" {
		base = s.defaultBase
	}

	next := s.counters[base] + 1
	k, err := key.Encode(base, next)
	if err != nil {
		return 0, err
	}
	data, err := s.codec.Marshal(artifact)
	if err != nil {
		return 0, fmt.Errorf("marshal artifact %q: %w", base, err)
	}
	if err := s.container.Put(k, data); err != nil {
		s.logger.Error("store.save.error", "session_id", s.sessionID, "base", base, "version", next, "error", err.Error())
		return 0, fmt.Errorf("write artifact %q version %d: %w", base, next, err)
	}

	s.counters[base] = next
	s.last = &target{base: base, version: next}
	s.logger.Info("store.save.success", "session_id", s.sessionID, "base", base, "version", next, "size_bytes", len(data))
	return next, nil
}

// Comment attaches free text to the most recently saved (base, version) pair.
// It fails with ErrNoTarget before the first Save of the session. A later
// Comment on the same target overwrites the earlier text.
func (s *Store[T]) Comment(text string) error {
	if s.closed {
		return ErrClosed
	}
	if s.mode == core.ModeRead {
		return core.ErrReadOnly
	}
	if s.last == nil {
		return ErrNoTarget
	}
	return s.annotate(key.KindComment, s.last.base, s.last.version, text, false)
}

// CommentAt attaches free text to an explicit (base, version) target. The
// artifact must already exist; otherwise core.ErrNotFound is returned.
func (s *Store[T]) CommentAt(base string, version int, text string) error {
	if s.closed {
		return ErrClosed
	}
	if s.mode == core.ModeRead {
		return core.ErrReadOnly
	}
	return s.annotate(key.KindComment, base, version, text, true)
}

// Tag marks the most recently saved (base, version) pair as a milestone with
// the given message. Same targeting rule as Comment; comment and tag are
// independent slots. An empty message clears the milestone marker.
func (s *Store[T]) Tag(text string) error {
	if s.closed {
		return ErrClosed
	}
	if s.mode == core.ModeRead {
		return core.ErrReadOnly
	}
	if s.last == nil {
		return ErrNoTarget
	}
	return s.annotate(key.KindTag, s.last.base, s.last.version, text, false)
}

// TagAt marks an explicit (base, version) target as a milestone.
func (s *Store[T]) TagAt(base string, version int, text string) error {
	if s.closed {
		return ErrClosed
	}
	if s.mode == core.ModeRead {
		return core.ErrReadOnly
	}
	return s.annotate(key.KindTag, base, version, text, true)
}

// annotate writes a companion entry for the target. When verify is set the
// artifact key is probed first so annotations never dangle.
func (s *Store[T]) annotate(kind key.Kind, base string, version int, text string, verify bool) error {
	if verify {
		ak, err := key.Encode(base, version)
		if err != nil {
			return err
		}
		ok, err := s.container.Has(ak)
		if err != nil {
			return fmt.Errorf("probe artifact %q version %d: %w", base, version, err)
		}
		if !ok {
			return fmt.Errorf("artifact %q version %d: %w", base, version, core.ErrNotFound)
		}
	}

	var k string
	var err error
	switch kind {
	case key.KindComment:
		k, err = key.EncodeComment(base, version)
	case key.KindTag:
		k, err = key.EncodeTag(base, version)
	default:
		return fmt.Errorf("annotate: unsupported kind %v", kind)
	}
	if err != nil {
		return err
	}

	if err := s.container.Put(k, []byte(text)); err != nil {
		return fmt.Errorf("write %s for %q version %d: %w", kind, base, version, err)
	}
	s.logger.Debug("store.annotate", "session_id", s.sessionID, "kind", kind.String(), "base", base, "version", version)
	return nil
}

// List reports every stored version, grouped by base in first-seen order with
// versions ascending inside each group. A non-empty base filters to that
// group. HasComment reflects the presence of a comment entry; HasTag
// additionally requires a non-empty tag message, since an empty message
// clears the marker. List is a pure read and may be called repeatedly.
func (s *Store[T]) List(base string) ([]core.VersionInfo, error) {
	if s.closed {
		return nil, ErrClosed
	}

	keys, err := s.container.Keys()
	if err != nil {
		return nil, fmt.Errorf("list container keys: %w", err)
	}

	var order []string
	artifacts := make(map[string][]int)
	comments := make(map[string]map[int]bool)
	tags := make(map[string]map[int]bool)

	for _, k := range keys {
		parsed, ok := key.Parse(k)
		if !ok {
			continue // foreign keys are invisible to listings
		}
		switch parsed.Kind {
		case key.KindArtifact:
			if _, seen := artifacts[parsed.Base]; !seen {
				order = append(order, parsed.Base)
			}
			artifacts[parsed.Base] = append(artifacts[parsed.Base], parsed.Version)
		case key.KindComment:
			if comments[parsed.Base] == nil {
				comments[parsed.Base] = make(map[int]bool)
			}
			comments[parsed.Base][parsed.Version] = true
		case key.KindTag:
			if tags[parsed.Base] == nil {
				tags[parsed.Base] = make(map[int]bool)
			}
			tags[parsed.Base][parsed.Version] = true
		}
	}

	var infos []core.VersionInfo
	for _, b := range order {
		if base != "" && b != base {
			continue
		}
		versions := artifacts[b]
		sort.Ints(versions)
		for _, v := range versions {
			hasTag := false
			if tags[b][v] {
				text, err := s.annotation(key.KindTag, b, v)
				if err != nil && !errors.Is(err, core.ErrNotFound) {
					return nil, err
				}
				hasTag = text != ""
			}
			infos = append(infos, core.VersionInfo{
				Base:       b,
				Version:    v,
				HasComment: comments[b][v],
				HasTag:     hasTag,
			})
		}
	}
	return infos, nil
}

// Get returns the artifact stored under (base, version). The result is a
// decoded copy owned by the caller; core.ErrNotFound reports an absent
// version.
func (s *Store[T]) Get(base string, version int) (T, error) {
	var zero T
	if s.closed {
		return zero, ErrClosed
	}

	k, err := key.Encode(base, version)
	if err != nil {
		return zero, err
	}
	data, err := s.container.Get(k)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return zero, fmt.Errorf("artifact %q version %d: %w", base, version, core.ErrNotFound)
		}
		return zero, fmt.Errorf("read artifact %q version %d: %w", base, version, err)
	}
	artifact, err := s.codec.Unmarshal(data)
	if err != nil {
		return zero, fmt.Errorf("unmarshal artifact %q version %d: %w", base, version, err)
	}
	return artifact, nil
}

// GetComment returns the comment text attached to (base, version), or
// core.ErrNotFound when no comment entry exists.
func (s *Store[T]) GetComment(base string, version int) (string, error) {
	if s.closed {
		return "", ErrClosed
	}
	return s.annotation(key.KindComment, base, version)
}

// GetTag returns the tag message attached to (base, version), or
// core.ErrNotFound when no tag entry exists. An empty message means the
// marker was cleared.
func (s *Store[T]) GetTag(base string, version int) (string, error) {
	if s.closed {
		return "", ErrClosed
	}
	return s.annotation(key.KindTag, base, version)
}

func (s *Store[T]) annotation(kind key.Kind, base string, version int) (string, error) {
	var k string
	var err error
	switch kind {
	case key.KindComment:
		k, err = key.EncodeComment(base, version)
	case key.KindTag:
		k, err = key.EncodeTag(base, version)
	default:
		return "", fmt.Errorf("annotation: unsupported kind %v", kind)
	}
	if err != nil {
		return "", err
	}
	data, err := s.container.Get(k)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return "", fmt.Errorf("%s for %q version %d: %w", kind, base, version, core.ErrNotFound)
		}
		return "", fmt.Errorf("read %s for %q version %d: %w", kind, base, version, err)
	}
	return string(data), nil
}

// LastVersion returns the highest version this session knows for base, or 0
// when the base is unseen. An empty base selects the configured default.
func (s *Store[T]) LastVersion(base string) int {
	if base == "" {
		base = s.defaultBase
	}
	return s.counters[base]
}

// Close releases the container. It is idempotent: the second and later calls
// are no-ops returning nil. Every other operation fails with ErrClosed once
// Close has run.
func (s *Store[T]) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.container.Close(); err != nil {
		s.logger.Error("store.close.error", "session_id", s.sessionID, "error", err.Error())
		return fmt.Errorf("close container: %w", err)
	}
	s.logger.Debug("store.close", "session_id", s.sessionID)
	return nil
}
