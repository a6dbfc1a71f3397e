package game

import (
	"testing"
	"time"
)

func TestNoticesExpire(t *testing.T) {
	now := time.Unix(1000, 0)
	nb := NewNoticeBoard()
	nb.now = func() time.Time { return now }

	nb.Add("wave incoming")
	nb.Add("") // empty strings are dropped, not rendered as blank boxes

	if got := nb.Lines(); len(got) != 1 || got[0] != "wave incoming" {
		t.Fatalf("Lines = %v", got)
	}

	now = now.Add(noticeTTL + time.Second)
	nb.Update()

	if got := nb.Lines(); len(got) != 0 {
		t.Errorf("Lines = %v after TTL, want none", got)
	}
}

func TestStickyOutlivesTransients(t *testing.T) {
	now := time.Unix(1000, 0)
	nb := NewNoticeBoard()
	nb.now = func() time.Time { return now }

	nb.SetSticky("Disconnected, reconnecting...")
	nb.Add("Sold for 60 gold")

	got := nb.Lines()
	if len(got) != 2 || got[0] != "Disconnected, reconnecting..." {
		t.Fatalf("Lines = %v, want sticky first", got)
	}

	now = now.Add(time.Minute)
	nb.Update()
	if got := nb.Lines(); len(got) != 1 || got[0] != "Disconnected, reconnecting..." {
		t.Errorf("Lines = %v, want only the sticky line", got)
	}

	nb.ClearSticky()
	if got := nb.Lines(); len(got) != 0 {
		t.Errorf("Lines = %v after ClearSticky", got)
	}
}

func TestNoticesCapped(t *testing.T) {
	nb := NewNoticeBoard()
	for i := 0; i < 9; i++ {
		nb.Add("n")
	}
	if len(nb.items) != 5 {
		t.Errorf("items = %d, want cap of 5", len(nb.items))
	}
}
