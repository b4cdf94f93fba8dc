package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/plotvault/plotvault/container"
	"github.com/plotvault/plotvault/core"
	"github.com/plotvault/plotvault/store"
)

// newTestStore opens a raw byte store over a fresh in-memory container.
func newTestStore(t *testing.T) *store.Store[[]byte] {
	t.Helper()

	s, err := store.New[[]byte](container.NewMemory(), core.RawCodec{})
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	return s
}

func TestRenderList(t *testing.T) {
	s := newTestStore(t)

	mustSave := func(base string, data []byte) {
		t.Helper()
		if _, err := s.Save(base, data); err != nil {
			t.Fatalf("Save(%q) error = %v", base, err)
		}
	}

	mustSave("c1", []byte("one"))
	if err := s.Comment("first draft"); err != nil {
		t.Fatalf("Comment() error = %v", err)
	}
	mustSave("c1", []byte("two"))
	if err := s.Comment("second draft"); err != nil {
		t.Fatalf("Comment() error = %v", err)
	}
	if err := s.Tag("approved"); err != nil {
		t.Fatalf("Tag() error = %v", err)
	}
	mustSave("profile", []byte("p"))

	var buf bytes.Buffer
	if err := renderList(&buf, s, ""); err != nil {
		t.Fatalf("renderList() error = %v", err)
	}
	got := buf.String()

	// Families numbered in first-save order, revisions newest first, tag
	// marker plus indented tag message on the tagged revision.
	for _, want := range []string{
		" 1 - c1",
		"\t* 2 - second draft",
		"\t\tapproved",
		"\t  1 - first draft",
		" 2 - profile",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("listing missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "2 - second draft") > strings.Index(got, "1 - first draft") {
		t.Errorf("revisions not listed newest first:\n%s", got)
	}
}

func TestRenderList_FiltersByBase(t *testing.T) {
	s := newTestStore(t)

	for _, base := range []string{"c1", "profile"} {
		if _, err := s.Save(base, []byte("x")); err != nil {
			t.Fatalf("Save(%q) error = %v", base, err)
		}
	}

	var buf bytes.Buffer
	if err := renderList(&buf, s, "profile"); err != nil {
		t.Fatalf("renderList() error = %v", err)
	}
	got := buf.String()

	if strings.Contains(got, "c1") {
		t.Errorf("filtered listing leaked other families:\n%s", got)
	}
	if !strings.Contains(got, "profile") {
		t.Errorf("filtered listing missing requested family:\n%s", got)
	}
}

func TestRenderList_Empty(t *testing.T) {
	s := newTestStore(t)

	var buf bytes.Buffer
	if err := renderList(&buf, s, ""); err != nil {
		t.Fatalf("renderList() error = %v", err)
	}
	if !strings.Contains(buf.String(), "container is empty") {
		t.Errorf("empty listing = %q, want empty-container notice", buf.String())
	}

	buf.Reset()
	if err := renderList(&buf, s, "nope"); err != nil {
		t.Fatalf("renderList() error = %v", err)
	}
	if !strings.Contains(buf.String(), "no revisions stored for nope") {
		t.Errorf("missing-family listing = %q, want no-revisions notice", buf.String())
	}
}
