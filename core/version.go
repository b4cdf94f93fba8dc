package core

// VersionInfo describes one stored revision of a plot family as reported by
// the store's listing. HasTag is only set for a non-empty tag message: an
// empty message clears the milestone marker.
type VersionInfo struct {
	// Base is the logical plot family name, independent of version.
	Base string
	// Version is the 1-based sequential revision number within Base.
	Version int
	// HasComment reports whether a comment entry exists for this revision.
	HasComment bool
	// HasTag reports whether this revision carries a milestone marker.
	HasTag bool
}
