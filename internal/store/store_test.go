package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGetMissingKeyReturnsEmpty(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)

	v, err := s.Get(KeyAccessToken)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != "" {
		t.Fatalf("expected empty value, got %q", v)
	}
}

func TestSetOverwritesExistingValue(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)

	if err := s.Set(KeyTheme, "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(KeyTheme, "light"); err != nil {
		t.Fatalf("set again: %v", err)
	}
	v, err := s.Get(KeyTheme)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != "light" {
		t.Fatalf("expected light, got %q", v)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)

	if err := s.Set(KeyAccessToken, "tok"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Delete(KeyAccessToken); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(KeyAccessToken); err != nil {
		t.Fatalf("delete absent key: %v", err)
	}
	v, err := s.Get(KeyAccessToken)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != "" {
		t.Fatalf("expected empty value after delete, got %q", v)
	}
}
