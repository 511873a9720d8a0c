package playback

import (
	"errors"
	"testing"
)

type memKV struct {
	values map[string]string
	err    error
}

func (m *memKV) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *memKV) Set(key, value string) error {
	if m.err != nil {
		return m.err
	}
	m.values[key] = value
	return nil
}

func TestNewReadsFlag(t *testing.T) {
	if New(&memKV{values: map[string]string{}}).Playing() {
		t.Fatalf("expected paused when unset")
	}
	if !New(&memKV{values: map[string]string{Key: "true"}}).Playing() {
		t.Fatalf("expected playing when stored true")
	}
	if New(&memKV{values: map[string]string{Key: "yes"}}).Playing() {
		t.Fatalf("only the literal true counts as playing")
	}
}

func TestTogglePersists(t *testing.T) {
	kv := &memKV{values: map[string]string{}}
	s := New(kv)

	playing, err := s.Toggle()
	if err != nil || !playing {
		t.Fatalf("expected playing after toggle, got %v %v", playing, err)
	}
	if kv.values[Key] != "true" {
		t.Fatalf("expected stored true, got %q", kv.values[Key])
	}

	playing, _ = s.Toggle()
	if playing || kv.values[Key] != "false" {
		t.Fatalf("expected paused and stored false, got %v %q", playing, kv.values[Key])
	}
}

func TestToggleWriteErrorKeepsState(t *testing.T) {
	kv := &memKV{values: map[string]string{}, err: errors.New("disk full")}
	s := New(kv)
	playing, err := s.Toggle()
	if err == nil || playing || s.Playing() {
		t.Fatalf("expected error and unchanged flag, got %v %v", playing, err)
	}
}

func TestReloadDetectsExternalChange(t *testing.T) {
	kv := &memKV{values: map[string]string{}}
	s := New(kv)

	if s.Reload() {
		t.Fatalf("expected no change")
	}
	kv.values[Key] = "true"
	if !s.Reload() || !s.Playing() {
		t.Fatalf("expected external change to be picked up")
	}
	if s.Reload() {
		t.Fatalf("expected second reload to report no change")
	}
}
