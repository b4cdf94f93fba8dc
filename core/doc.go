// Package core provides the foundational domain types and interfaces used by
// plotvault. It defines the core abstractions for:
//
//   - Containers (the opaque key/blob persistence collaborator and its open modes)
//   - Codecs (translation between typed artifact handles and stored bytes)
//   - VersionInfo (one listed revision of a plot family)
//   - Shared error sentinels (ErrNotFound, ErrReadOnly)
//
// The package intentionally keeps implementation concerns (key encoding,
// version bookkeeping, concrete storage backends) out of scope, exposing small
// interfaces to enable custom backends and artifact types. All exported
// identifiers include concise documentation to aid discoverability and
// external consumption.
package core
