// Package store implements the versioning session at the center of plotvault.
//
// A Store wraps one open core.Container and assigns monotonically increasing
// version numbers to named artifacts: saving under a base name allocates the
// next free version for that base, and the (base, version) pair is encoded
// into the container key by the key package. Free-text comments and milestone
// tags ride along as companion entries derived from the same pair.
//
// Counters are resumed by scanning the container's keys at construction, so
// version numbers stay contiguous across sessions against the same container.
// A Store is a synchronous single-writer session: no internal locking, one
// session per container at a time, every call completes or fails before it
// returns. Close releases the container and is idempotent.
//
// The artifact type is generic; a core.Codec turns it into the opaque bytes
// the container stores. Use core.RawCodec for plain blobs or core.JSONCodec
// for structured plot descriptions.
package store
