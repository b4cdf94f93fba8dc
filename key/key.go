package key

import (
	"errors"
	"strconv"
	"strings"
)

// Sep separates the base name from the version number inside stored keys. It
// is reserved: encoding rejects base names containing it, because a separator
// inside the base would make decoding ambiguous.
const Sep = ";"

const (
	commentToken = "comment"
	tagToken     = "tag"
)

var (
	// ErrEmptyBase is returned when a base name is empty.
	ErrEmptyBase = errors.New("empty base name")

	// ErrReservedSeparator is returned when a base name contains the reserved
	// separator and would decode ambiguously.
	ErrReservedSeparator = errors.New(`base name contains reserved separator ";"`)

	// ErrInvalidVersion is returned when a version number is not positive.
	ErrInvalidVersion = errors.New("version must be positive")
)

// Kind classifies a recognized container key.
type Kind int

const (
	// KindArtifact identifies the stored plot blob itself.
	KindArtifact Kind = iota + 1
	// KindComment identifies the free-text comment companion entry.
	KindComment
	// KindTag identifies the milestone marker companion entry.
	KindTag
)

// String returns the string representation of the key kind.
func (k Kind) String() string {
	switch k {
	case KindArtifact:
		return "artifact"
	case KindComment:
		return "comment"
	case KindTag:
		return "tag"
	default:
		return "unknown"
	}
}

// Key is a decoded container key.
type Key struct {
	Base    string
	Version int
	Kind    Kind
}

func validate(base string, version int) error {
	if base == "" {
		return ErrEmptyBase
	}
	if strings.Contains(base, Sep) {
		return ErrReservedSeparator
	}
	if version < 1 {
		return ErrInvalidVersion
	}
	return nil
}

// Encode returns the artifact key for (base, version).
func Encode(base string, version int) (string, error) {
	if err := validate(base, version); err != nil {
		return "", err
	}
	return base + Sep + strconv.Itoa(version), nil
}

// EncodeComment returns the comment companion key for (base, version).
func EncodeComment(base string, version int) (string, error) {
	if err := validate(base, version); err != nil {
		return "", err
	}
	return base + Sep + strconv.Itoa(version) + Sep + commentToken, nil
}

// EncodeTag returns the tag companion key for (base, version).
func EncodeTag(base string, version int) (string, error) {
	if err := validate(base, version); err != nil {
		return "", err
	}
	return base + Sep + strconv.Itoa(version) + Sep + tagToken, nil
}

// Decode parses an artifact key back into its components. ok is false for
// comment and tag keys and for any foreign key that happens to live in the
// same container.
func Decode(k string) (base string, version int, ok bool) {
	parsed, ok := Parse(k)
	if !ok || parsed.Kind != KindArtifact {
		return "", 0, false
	}
	return parsed.Base, parsed.Version, true
}

// Parse recognizes any plotvault key shape. Unrecognized keys return ok false
// and are treated as foreign by callers.
func Parse(k string) (Key, bool) {
	parts := strings.Split(k, Sep)
	if len(parts) < 2 || len(parts) > 3 {
		return Key{}, false
	}
	if parts[0] == "" {
		return Key{}, false
	}
	version, ok := parseVersion(parts[1])
	if !ok {
		return Key{}, false
	}
	if len(parts) == 2 {
		return Key{Base: parts[0], Version: version, Kind: KindArtifact}, true
	}
	switch parts[2] {
	case commentToken:
		return Key{Base: parts[0], Version: version, Kind: KindComment}, true
	case tagToken:
		return Key{Base: parts[0], Version: version, Kind: KindTag}, true
	default:
		return Key{}, false
	}
}

// parseVersion accepts only the canonical encoding of a positive integer:
// plain decimal digits without a leading zero. Anything else would break the
// bijection between (base, version) pairs and keys.
func parseVersion(s string) (int, bool) {
	if s == "" || s[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, false
	}
	return v, true
}
