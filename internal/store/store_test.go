package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func openStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s
}

func TestOpenMissingFileIsEmpty(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "state.json"))
	if keys := s.Keys(); len(keys) != 0 {
		t.Fatalf("expected empty store, got %v", keys)
	}
	if _, ok := s.Get("isPlaying"); ok {
		t.Fatalf("expected missing key")
	}
}

func TestSetPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	s := openStore(t, path)
	if err := s.Set("isPlaying", "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	reopened := openStore(t, path)
	if v, ok := reopened.Get("isPlaying"); !ok || v != "true" {
		t.Fatalf("expected persisted value, got %q %v", v, ok)
	}
}

func TestSetKeepsOtherInstancesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	a := openStore(t, path)
	b := openStore(t, path)

	if err := a.Set("isPlaying", "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := b.Set("drafts", "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	c := openStore(t, path)
	if got := c.Keys(); !reflect.DeepEqual(got, []string{"drafts", "isPlaying"}) {
		t.Fatalf("expected both keys, got %v", got)
	}
}

func TestReloadReportsChangedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	a := openStore(t, path)
	b := openStore(t, path)

	if err := a.Set("isPlaying", "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := a.Set("drafts", "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	changed, err := b.Reload()
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if !reflect.DeepEqual(changed, []string{"drafts", "isPlaying"}) {
		t.Fatalf("expected both keys changed, got %v", changed)
	}

	changed, err = b.Reload()
	if err != nil || len(changed) != 0 {
		t.Fatalf("expected no changes on second reload, got %v %v", changed, err)
	}

	// Another writer drops a key.
	if err := os.WriteFile(path, []byte(`{"isPlaying": "true"}`), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	changed, _ = b.Reload()
	if !reflect.DeepEqual(changed, []string{"drafts"}) {
		t.Fatalf("expected removed key reported, got %v", changed)
	}
	if _, ok := b.Get("drafts"); ok {
		t.Fatalf("expected drafts to be gone")
	}
}

func TestOpenMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestOpenBlankFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	s := openStore(t, path)
	if len(s.Keys()) != 0 {
		t.Fatalf("expected empty store")
	}
}
