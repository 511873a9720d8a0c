// Package playback holds the play/pause flag shared by every view and every
// running instance. There is no audio engine; the flag only drives
// indicators.
package playback

import (
	"strconv"

	"github.com/daytone/daytone/internal/logging"
)

// Key is the store key holding the flag as "true" or "false".
const Key = "isPlaying"

// KV is the storage the flag lives in.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// State caches the flag and writes changes through to the store.
type State struct {
	kv      KV
	playing bool
}

// New reads the current flag from kv.
func New(kv KV) *State {
	s := &State{kv: kv}
	s.playing = s.read()
	return s
}

// Playing reports the cached flag.
func (s *State) Playing() bool { return s.playing }

// Toggle flips and persists the flag, returning the new value. On a write
// error the cached flag is left unchanged.
func (s *State) Toggle() (bool, error) {
	if err := s.Set(!s.playing); err != nil {
		return s.playing, err
	}
	return s.playing, nil
}

// Set persists playing.
func (s *State) Set(playing bool) error {
	if err := s.kv.Set(Key, strconv.FormatBool(playing)); err != nil {
		return err
	}
	s.playing = playing
	return nil
}

// Reload re-reads the flag after another instance changed it and reports
// whether the cached value moved.
func (s *State) Reload() bool {
	next := s.read()
	if next == s.playing {
		return false
	}
	s.playing = next
	logging.Debug("playback flag changed externally: playing=%v", next)
	return true
}

func (s *State) read() bool {
	v, ok := s.kv.Get(Key)
	return ok && v == "true"
}
