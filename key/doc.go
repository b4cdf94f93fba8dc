// Package key implements the flat key scheme plotvault uses inside a
// container. Every stored entry is addressed by a single string key derived
// from a (base name, version) pair:
//
//	"<base>;<version>"          the artifact blob itself
//	"<base>;<version>;comment"  the free-text comment companion
//	"<base>;<version>;tag"      the milestone marker companion
//
// The separator ";" is reserved and never legal inside a base name, which is
// what keeps encoding and decoding bijective. Decoding is strict: version
// numbers are plain decimal without leading zeros, so every artifact key has
// exactly one encoding. Keys that do not match any of the three shapes are
// foreign to plotvault and are ignored by the store.
//
// The package is pure string manipulation with no I/O, making the round-trip
// law (Decode(Encode(b, v)) == (b, v)) directly property-testable.
package key
