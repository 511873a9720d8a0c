package session

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"testing"
	"time"
)

func TestName(t *testing.T) {
	now := time.Date(2026, time.March, 4, 9, 30, 0, 0, time.Local)
	if got := Name(now, 7); got != "Your Session 2026_03_04_vo7_mp3" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestRandomStaysInRange(t *testing.T) {
	pattern := regexp.MustCompile(`^Your Session 2026_12_31_vo(\d+)_mp3$`)
	now := time.Date(2026, time.December, 31, 23, 0, 0, 0, time.Local)
	r := rand.New(rand.NewPCG(1, 2))

	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		name := Random(now, r)
		m := pattern.FindStringSubmatch(name)
		if m == nil {
			t.Fatalf("unexpected name %q", name)
		}
		vo, _ := strconv.Atoi(m[1])
		if vo < 1 || vo > MaxVoiceover {
			t.Fatalf("voiceover out of range: %d", vo)
		}
		seen[vo] = true
	}
	if !seen[1] || !seen[MaxVoiceover] {
		t.Fatalf("expected both bounds to occur, saw %v", seen)
	}
	if !pattern.MatchString(Random(now, nil)) {
		t.Fatalf("expected global source to produce a valid name")
	}
}
