package game

import (
	"strings"
	"testing"

	"castledefenders/shared/protocol"
)

func selStore() *Store {
	st := NewStore()
	st.MyID = "me"
	st.ApplyFull(protocol.GameState{
		ID: "g1",
		Plots: []protocol.Plot{
			{ID: 0, X: 100, Y: 100},
			{ID: 1, X: 300, Y: 300, Tower: "mine", Owner: "me"},
			{ID: 2, X: 500, Y: 300, Tower: "theirs", Owner: "them"},
		},
		Towers: []protocol.Tower{
			{ID: "mine", Type: "cannon", PlotID: 1, OwnerID: "me", OwnerName: "Me"},
			{ID: "theirs", Type: "archer", PlotID: 2, OwnerID: "them", OwnerName: "Rival"},
		},
		Players: []protocol.PlayerSummary{{ID: "me", Gold: 500}, {ID: "them", Name: "Rival"}},
	})
	return st
}

func assertExclusive(t *testing.T, s *Selection) {
	t.Helper()
	if s.PlotID >= 0 && s.TowerType != "" {
		t.Fatalf("selection holds both plot %d and type %q", s.PlotID, s.TowerType)
	}
}

func TestClickOwnTowerSelectsPlot(t *testing.T) {
	st := selStore()
	s := NewSelection()

	res := s.Click(st, Point{X: 305, Y: 295})
	assertExclusive(t, s)
	if s.PlotID != 1 {
		t.Fatalf("PlotID = %d, want 1", s.PlotID)
	}
	if res.Place || res.Notice != "" {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestClickForeignTowerNeverSelects(t *testing.T) {
	st := selStore()
	s := NewSelection()

	res := s.Click(st, Point{X: 500, Y: 300})
	assertExclusive(t, s)
	if s.PlotID != -1 {
		t.Fatalf("foreign tower selected: plot %d", s.PlotID)
	}
	if !strings.Contains(res.Notice, "Rival") {
		t.Errorf("notice %q does not name the owner", res.Notice)
	}
}

func TestArmedTypeThenEmptyPlotPlacesAndResets(t *testing.T) {
	st := selStore()
	s := NewSelection()

	ok, _ := s.ChooseType(st, protocol.TowerInfo{ID: "cannon", Name: "Cannon", Cost: 100}, true)
	if !ok {
		t.Fatal("ChooseType rejected an affordable unlocked type")
	}
	assertExclusive(t, s)

	res := s.Click(st, Point{X: 100, Y: 100})
	if !res.Place || res.PlotID != 0 || res.TowerType != "cannon" {
		t.Fatalf("result = %+v, want place cannon on plot 0", res)
	}
	// Back to Idle immediately, not gated on the confirmation.
	if s.TowerType != "" || s.PlotID != -1 {
		t.Errorf("selection not reset after place: %+v", s)
	}
}

func TestEmptyPlotWithNothingArmedInspects(t *testing.T) {
	st := selStore()
	s := NewSelection()

	res := s.Click(st, Point{X: 105, Y: 100})
	assertExclusive(t, s)
	if s.InspectPlotID != 0 {
		t.Fatalf("InspectPlotID = %d, want 0", s.InspectPlotID)
	}
	if res.Place || res.Notice == "" {
		t.Errorf("result = %+v, want hint notice without placement", res)
	}

	// Inspection does not survive the next click.
	s.Click(st, Point{X: 10, Y: 10})
	if s.InspectPlotID != -1 {
		t.Error("inspect hint survived a miss click")
	}
}

func TestMissClickCancelsSelection(t *testing.T) {
	st := selStore()
	s := NewSelection()
	s.Click(st, Point{X: 300, Y: 300}) // select own tower

	s.Click(st, Point{X: 700, Y: 100}) // empty ground
	if s.PlotID != -1 || s.TowerType != "" {
		t.Errorf("miss click did not cancel: %+v", s)
	}
}

func TestArmingTypeClearsPlotAndViceVersa(t *testing.T) {
	st := selStore()
	s := NewSelection()

	s.Click(st, Point{X: 300, Y: 300})
	s.ChooseType(st, protocol.TowerInfo{ID: "archer", Cost: 75}, true)
	assertExclusive(t, s)
	if s.TowerType != "archer" || s.PlotID != -1 {
		t.Fatalf("arming a type did not clear the plot: %+v", s)
	}

	s.Click(st, Point{X: 300, Y: 300})
	assertExclusive(t, s)
	if s.PlotID != 1 || s.TowerType != "" {
		t.Fatalf("selecting a plot did not clear the armed type: %+v", s)
	}
}

func TestChooseTypeRejectsLockedAndUnaffordable(t *testing.T) {
	st := selStore() // 500 gold

	s := NewSelection()
	ok, notice := s.ChooseType(st, protocol.TowerInfo{ID: "dragon", Name: "Dragon Roost", Cost: 500, UnlockLevel: 9}, false)
	if ok || !strings.Contains(notice, "level 9") {
		t.Errorf("locked pick: ok=%v notice=%q", ok, notice)
	}
	if s.TowerType != "" {
		t.Error("locked pick still armed the type")
	}

	ok, notice = s.ChooseType(st, protocol.TowerInfo{ID: "tesla", Name: "Tesla Coil", Cost: 501}, true)
	if ok || !strings.Contains(notice, "Not enough gold") {
		t.Errorf("unaffordable pick: ok=%v notice=%q", ok, notice)
	}
}

func TestSelectedTowerToleratesStaleIDs(t *testing.T) {
	st := selStore()
	s := NewSelection()
	s.Click(st, Point{X: 300, Y: 300})

	// Snapshot arrives without the selected tower.
	st.ApplyFull(protocol.GameState{ID: "g1", Plots: []protocol.Plot{{ID: 1, X: 300, Y: 300}}})

	if got := s.SelectedTower(st); got != nil {
		t.Errorf("SelectedTower = %+v for a stale selection, want nil", got)
	}
}
