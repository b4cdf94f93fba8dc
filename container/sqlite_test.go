package container

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/plotvault/plotvault/core"
)

// Interface compliance (compile-time assertions)
var _ core.Container = (*SQLite)(nil)

func openSQLiteForTest(t *testing.T, path string, mode core.OpenMode) *SQLite {
	t.Helper()
	c, err := OpenSQLite(path, mode)
	if err != nil {
		t.Fatalf("open sqlite %q (%s): %v", path, mode, err)
	}
	return c
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots.db")

	c := openSQLiteForTest(t, path, core.ModeUpdate)
	for _, k := range []string{"c1;1", "c2;1", "c1;2"} {
		if err := c.Put(k, []byte(k)); err != nil {
			t.Fatalf("put %q: %v", k, err)
		}
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	c = openSQLiteForTest(t, path, core.ModeUpdate)
	defer c.Close()

	got, err := c.Get("c2;1")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if string(got) != "c2;1" {
		t.Fatalf("got %q, want %q", got, "c2;1")
	}

	keys, err := c.Keys()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	want := []string{"c1;1", "c2;1", "c1;2"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d: %v", len(want), len(keys), keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestSQLite_OverwriteKeepsPosition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots.db")
	c := openSQLiteForTest(t, path, core.ModeUpdate)
	defer c.Close()

	if err := c.Put("a;1", []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := c.Put("b;1", []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := c.Put("a;1", []byte("new")); err != nil {
		t.Fatal(err)
	}

	got, err := c.Get("a;1")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Fatalf("got %q, want %q", got, "new")
	}

	keys, err := c.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 2 || keys[0] != "a;1" || keys[1] != "b;1" {
		t.Fatalf("unexpected key order: %v", keys)
	}
}

func TestSQLite_MissingKey(t *testing.T) {
	c := openSQLiteForTest(t, filepath.Join(t.TempDir(), "plots.db"), core.ModeUpdate)
	defer c.Close()

	if _, err := c.Get("absent"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	ok, err := c.Has("absent")
	if err != nil || ok {
		t.Fatalf("Has(absent) = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestSQLite_ModeCreateTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots.db")

	c := openSQLiteForTest(t, path, core.ModeUpdate)
	if err := c.Put("c1;1", []byte("v1")); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	c = openSQLiteForTest(t, path, core.ModeCreate)
	defer c.Close()

	keys, err := c.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 0 {
		t.Fatalf("expected empty container after create, got %v", keys)
	}
}

func TestSQLite_ModeRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots.db")

	if _, err := OpenSQLite(path, core.ModeRead); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist for missing file, got %v", err)
	}

	c := openSQLiteForTest(t, path, core.ModeUpdate)
	if err := c.Put("c1;1", []byte("v1")); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	ro := openSQLiteForTest(t, path, core.ModeRead)
	defer ro.Close()

	got, err := ro.Get("c1;1")
	if err != nil {
		t.Fatalf("read-only get: %v", err)
	}
	if string(got) != "v1" {
		t.Fatalf("got %q, want %q", got, "v1")
	}
	if err := ro.Put("c1;2", []byte("v2")); !errors.Is(err, core.ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}
}

func TestSQLite_ModeReadRejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("just some text"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenSQLite(path, core.ModeRead); err == nil {
		t.Fatal("expected error for non-container file")
	}
}
