package fs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOSFSStat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dump.rdb")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	mtime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	info, err := New().Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Path != path {
		t.Errorf("Path = %q, want %q", info.Path, path)
	}
	if info.Size != 5 {
		t.Errorf("Size = %d, want 5", info.Size)
	}
	if !info.MTime.Equal(mtime) {
		t.Errorf("MTime = %v, want %v", info.MTime, mtime)
	}
	if info.IsDir {
		t.Error("IsDir = true for a regular file")
	}
}

func TestOSFSStatMissing(t *testing.T) {
	_, err := New().Stat(filepath.Join(t.TempDir(), "nope"))
	if !IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if got := Reason(err); got != "not_found" {
		t.Errorf("Reason = %q, want not_found", got)
	}
}

func TestOSFSRemove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "old.log")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := New().Remove(path); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file still present: %v", err)
	}

	err := New().Remove(path)
	if !IsNotExist(err) {
		t.Fatalf("second Remove: expected not-exist error, got %v", err)
	}
}

func TestOSFSRemoveRefusesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "empty")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	err := New().Remove(dir)
	if !IsDirectory(err) {
		t.Fatalf("expected EISDIR, got %v", err)
	}
	if got := Reason(err); got != "is_directory" {
		t.Errorf("Reason = %q, want is_directory", got)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("directory was removed: %v", err)
	}
}
