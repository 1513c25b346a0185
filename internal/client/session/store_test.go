package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileTokenStore_RoundTrip(t *testing.T) {
	s := NewFileTokenStore(t.TempDir())

	if err := s.Save("tok123"); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != "tok123" {
		t.Fatalf("got %q, want %q", got, "tok123")
	}
}

func TestFileTokenStore_AbsentFileMeansAnonymous(t *testing.T) {
	s := NewFileTokenStore(t.TempDir())

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty token, got %q", got)
	}
}

func TestFileTokenStore_Clear(t *testing.T) {
	dir := t.TempDir()
	s := NewFileTokenStore(dir)

	if err := s.Save("tok123"); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "token")); !os.IsNotExist(err) {
		t.Fatalf("token file must be removed")
	}

	// Clearing again is a no-op.
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear error: %v", err)
	}
}

func TestFileTokenStore_TrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	s := NewFileTokenStore(dir)

	if err := os.WriteFile(filepath.Join(dir, "token"), []byte("tok123\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != "tok123" {
		t.Fatalf("got %q, want %q", got, "tok123")
	}
}

func TestFileTokenStore_Permissions(t *testing.T) {
	dir := t.TempDir()
	s := NewFileTokenStore(dir)

	if err := s.Save("tok123"); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "token"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("token file permissions = %o, want 600", perm)
	}
}
