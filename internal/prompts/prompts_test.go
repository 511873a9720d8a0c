package prompts

import "testing"

func TestNextWrapsAndCyclesIcons(t *testing.T) {
	d := NewDeck(DefaultTopics)
	if d.Current() != DefaultTopics[0] || d.Icon() != IconSchedule {
		t.Fatalf("unexpected start %q %v", d.Current(), d.Icon())
	}
	for i := 0; i < len(DefaultTopics); i++ {
		d.Next()
	}
	if d.Index() != 0 {
		t.Fatalf("expected wrap to 0, got %d", d.Index())
	}

	d.Add()
	d.Add()
	for i := 0; i < 5; i++ {
		d.Next()
	}
	if d.Index() != 5 || d.Icon() != IconMind {
		t.Fatalf("expected index 5 with mind icon, got %d %v", d.Index(), d.Icon())
	}
}

func TestAddStopsAtMax(t *testing.T) {
	d := NewDeck(DefaultTopics)
	for d.Len() < MaxTopics {
		i, ok := d.Add()
		if !ok || d.Topics()[i] != NewTopic {
			t.Fatalf("expected add to succeed")
		}
	}
	if _, ok := d.Add(); ok {
		t.Fatalf("expected add past %d to fail", MaxTopics)
	}
}

func TestRemoveKeepsOneAndClamps(t *testing.T) {
	d := NewDeck(DefaultTopics)
	for i := 0; i < 3; i++ {
		d.Next()
	}
	if !d.Remove(3) {
		t.Fatalf("expected remove")
	}
	if d.Index() != 2 || d.Current() != DefaultTopics[2] {
		t.Fatalf("expected clamp to last, got %d %q", d.Index(), d.Current())
	}
	for d.Len() > 1 {
		d.Remove(0)
	}
	if d.Remove(0) {
		t.Fatalf("expected last topic to stay")
	}
	if d.Index() != 0 {
		t.Fatalf("expected index 0, got %d", d.Index())
	}
}

func TestEdit(t *testing.T) {
	d := NewDeck(DefaultTopics)
	if !d.Edit(0, "Gratitude") || d.Current() != "Gratitude" {
		t.Fatalf("expected edit of current topic to show")
	}
	if d.Edit(9, "x") {
		t.Fatalf("expected out of range edit to fail")
	}
	if DefaultTopics[0] == "Gratitude" {
		t.Fatalf("deck must not alias its seed")
	}
}

func TestEmptyDeck(t *testing.T) {
	d := NewDeck(nil)
	d.Next()
	if d.Current() != "" || d.Remove(0) {
		t.Fatalf("expected empty deck to stay inert")
	}
}
