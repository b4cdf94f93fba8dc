// Package container contains concrete implementations of core.Container.
//
// The canonical Container interface lives in the core package to avoid
// dependency cycles and keep domain contracts central. Implementation packages
// like this one (in-memory, SQLite, Redis) provide storage backends that can
// be swapped without touching calling code.
//
// All backends honor the same contract: Get returns copies, absent keys map
// to core.ErrNotFound, and Keys replays entries in first-write order so the
// version store's listings stay deterministic across process restarts.
// Callers should depend on the core interface rather than concrete types so
// they can substitute alternative persistence layers in tests or production.
package container
