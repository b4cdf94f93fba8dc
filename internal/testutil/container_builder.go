package testutil

import (
	"fmt"

	"github.com/plotvault/plotvault/container"
	"github.com/plotvault/plotvault/key"
)

// ContainerBuilder provides a fluent helper for seeding an in-memory
// container with versioned artifacts and their companion entries.
// Example:
//
//	ctr := NewContainerBuilder().
//		Artifact("c1", 1, []byte("v1")).
//		Comment("c1", 1, "first look").
//		Tag("c1", 1, "approved").
//		Build()
//
// Chain only the entries you need; keys are derived exactly as the store
// derives them. Illegal (base, version) pairs panic, since they indicate a
// broken test rather than a runtime condition.
type ContainerBuilder struct {
	entries []seedEntry
}

type seedEntry struct {
	key  string
	data []byte
}

// NewContainerBuilder creates an empty builder.
func NewContainerBuilder() *ContainerBuilder { return &ContainerBuilder{} }

// Artifact seeds artifact bytes under (base, version) (chainable).
func (b *ContainerBuilder) Artifact(base string, version int, data []byte) *ContainerBuilder {
	b.entries = append(b.entries, seedEntry{key: mustKey(key.Encode(base, version)), data: data})
	return b
}

// Comment seeds comment text for (base, version) (chainable).
func (b *ContainerBuilder) Comment(base string, version int, text string) *ContainerBuilder {
	b.entries = append(b.entries, seedEntry{key: mustKey(key.EncodeComment(base, version)), data: []byte(text)})
	return b
}

// Tag seeds a tag message for (base, version) (chainable).
func (b *ContainerBuilder) Tag(base string, version int, text string) *ContainerBuilder {
	b.entries = append(b.entries, seedEntry{key: mustKey(key.EncodeTag(base, version)), data: []byte(text)})
	return b
}

// Raw seeds an arbitrary key, useful for planting foreign entries that the
// store must ignore (chainable).
func (b *ContainerBuilder) Raw(k string, data []byte) *ContainerBuilder {
	b.entries = append(b.entries, seedEntry{key: k, data: data})
	return b
}

// Build constructs the seeded in-memory container. Entries keep the order in
// which they were chained, matching real first-write order.
func (b *ContainerBuilder) Build() *container.Memory {
	ctr := container.NewMemory()
	for _, e := range b.entries {
		if err := ctr.Put(e.key, e.data); err != nil {
			panic(fmt.Sprintf("testutil: seed %q: %v", e.key, err))
		}
	}
	return ctr
}

func mustKey(k string, err error) string {
	if err != nil {
		panic(fmt.Sprintf("testutil: illegal seed key: %v", err))
	}
	return k
}
