package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s", dir)
	}

	// Idempotent on an existing directory.
	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir second call: %v", err)
	}
}

func TestEnsureDirFailure(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "occupied")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := EnsureDir(filepath.Join(file, "child")); err == nil {
		t.Error("expected error when a path component is a file")
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if !Exists(dir) {
		t.Error("existing directory reported missing")
	}
	if Exists(filepath.Join(dir, "nope")) {
		t.Error("missing path reported existing")
	}
}
