package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/plotvault/plotvault/core"
)

func TestDefaultOutPath(t *testing.T) {
	if got, want := defaultOutPath("canvas", 3), "canvas_v3.bin"; got != want {
		t.Errorf("defaultOutPath() = %q, want %q", got, want)
	}
}

func TestCopyRevision(t *testing.T) {
	src := newTestStore(t)

	if _, err := src.Save("c1", []byte("draft")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := src.Save("c1", []byte("final")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := src.Comment("final draft"); err != nil {
		t.Fatalf("Comment() error = %v", err)
	}
	if err := src.Tag("approved"); err != nil {
		t.Fatalf("Tag() error = %v", err)
	}

	dst := newTestStore(t)

	copied, err := copyRevision(src, dst, "c1", 2, []byte("final"))
	if err != nil {
		t.Fatalf("copyRevision() error = %v", err)
	}
	if copied != 1 {
		t.Errorf("copied version = %d, want 1 (destination numbers its own revisions)", copied)
	}

	data, err := dst.Get("c1", 1)
	if err != nil {
		t.Fatalf("Get() on destination error = %v", err)
	}
	if !bytes.Equal(data, []byte("final")) {
		t.Errorf("copied artifact = %q, want %q", data, "final")
	}

	if comment, err := dst.GetComment("c1", 1); err != nil || comment != "final draft" {
		t.Errorf("copied comment = %q, %v; want %q", comment, err, "final draft")
	}
	if tag, err := dst.GetTag("c1", 1); err != nil || tag != "approved" {
		t.Errorf("copied tag = %q, %v; want %q", tag, err, "approved")
	}
}

func TestCopyRevision_WithoutAnnotations(t *testing.T) {
	src := newTestStore(t)
	if _, err := src.Save("bare", []byte("x")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	dst := newTestStore(t)
	if _, err := copyRevision(src, dst, "bare", 1, []byte("x")); err != nil {
		t.Fatalf("copyRevision() error = %v", err)
	}

	if _, err := dst.GetComment("bare", 1); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("GetComment() error = %v, want ErrNotFound (no comment to copy)", err)
	}
	if _, err := dst.GetTag("bare", 1); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("GetTag() error = %v, want ErrNotFound (no tag to copy)", err)
	}
}

func TestExitError(t *testing.T) {
	underlying := errors.New("boom")
	err := &ExitError{Code: 2, Err: underlying}

	if err.Error() != "boom" {
		t.Errorf("Error() = %q, want underlying message", err.Error())
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is() did not unwrap to the underlying error")
	}

	bare := &ExitError{Code: 3}
	if bare.Error() != "exit status 3" {
		t.Errorf("Error() = %q, want %q", bare.Error(), "exit status 3")
	}
}
