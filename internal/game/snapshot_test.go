package game

import (
	"testing"

	"castledefenders/shared/protocol"
)

func snap(towers []protocol.Tower, players []protocol.PlayerSummary) protocol.GameState {
	return protocol.GameState{
		ID:              "g1",
		Wave:            3,
		CastleHealth:    800,
		MaxCastleHealth: 1000,
		Plots: []protocol.Plot{
			{ID: 0, X: 100, Y: 100},
			{ID: 1, X: 200, Y: 200},
		},
		Towers:  towers,
		Players: players,
	}
}

func TestApplyFullReplacesWholesale(t *testing.T) {
	st := NewStore()
	st.MyID = "p1"

	st.ApplyFull(snap(
		[]protocol.Tower{{ID: "t1", Type: "cannon", PlotID: 0, OwnerID: "p1"}},
		[]protocol.PlayerSummary{{ID: "p1", Name: "Ana", Gold: 150}},
	))

	if !st.Ready() {
		t.Fatal("store not ready after first snapshot")
	}
	if st.Towers["t1"] == nil {
		t.Fatal("tower t1 missing after snapshot")
	}
	if st.MyGold != 150 {
		t.Fatalf("MyGold = %d, want 150", st.MyGold)
	}

	// A later snapshot without t1 must drop it entirely.
	st.ApplyFull(snap(nil, []protocol.PlayerSummary{{ID: "p1", Name: "Ana", Gold: 90}}))
	if st.Towers["t1"] != nil {
		t.Error("tower t1 survived a snapshot that omitted it")
	}
	if st.MyGold != 90 {
		t.Errorf("MyGold = %d, want 90", st.MyGold)
	}
}

func TestApplyFullIdempotent(t *testing.T) {
	st := NewStore()
	st.MyID = "p1"
	s := snap(
		[]protocol.Tower{{ID: "t1", Type: "archer", PlotID: 1, OwnerID: "p1"}},
		[]protocol.PlayerSummary{{ID: "p1", Gold: 200}},
	)

	st.ApplyFull(s)
	st.ApplyFull(s)

	if len(st.Towers) != 1 || st.Towers["t1"] == nil {
		t.Fatalf("towers = %d after duplicate snapshot, want exactly t1", len(st.Towers))
	}
	if st.MyGold != 200 {
		t.Errorf("MyGold = %d, want 200", st.MyGold)
	}
}

func TestTowerPlacedPatchesIntoStaleSnapshot(t *testing.T) {
	st := NewStore()
	st.MyID = "p1"
	st.ApplyFull(snap(nil, []protocol.PlayerSummary{{ID: "p1", Gold: 200}}))

	// Confirmation arrives between snapshots: plot 0 fills, gold drops.
	st.ApplyTowerPlaced(protocol.TowerPlaced{
		Tower:      protocol.Tower{ID: "t9", Type: "cannon", PlotID: 0, OwnerID: "p1"},
		PlayerID:   "p1",
		PlayerGold: 100,
	})

	pl := st.plotByID(0)
	if pl.Tower != "t9" || pl.Owner != "p1" {
		t.Fatalf("plot 0 = {%q %q}, want occupied by t9/p1", pl.Tower, pl.Owner)
	}
	if st.TowerOnPlot(pl) == nil {
		t.Fatal("TowerOnPlot(0) = nil after placement")
	}
	if st.MyGold != 100 {
		t.Errorf("MyGold = %d, want 100", st.MyGold)
	}

	// The next snapshot that includes t9 converges to the same picture.
	st.ApplyFull(snap(
		[]protocol.Tower{{ID: "t9", Type: "cannon", PlotID: 0, OwnerID: "p1"}},
		[]protocol.PlayerSummary{{ID: "p1", Gold: 100}},
	))
	if st.Towers["t9"] == nil || st.MyGold != 100 {
		t.Errorf("state diverged after convergent snapshot: tower=%v gold=%d", st.Towers["t9"], st.MyGold)
	}
}

func TestTowerSoldIdempotent(t *testing.T) {
	st := NewStore()
	st.MyID = "p1"
	st.ApplyFull(snap(
		[]protocol.Tower{{ID: "t1", Type: "cannon", PlotID: 0, OwnerID: "p1"}},
		[]protocol.PlayerSummary{{ID: "p1", Gold: 50}},
	))
	st.Plots[0].Tower = "t1"
	st.Plots[0].Owner = "p1"

	sold := protocol.TowerSold{PlotID: 0, PlayerID: "p1", Refund: 60, PlayerGold: 110}
	st.ApplyTowerSold(sold)
	st.ApplyTowerSold(sold) // duplicate delivery

	if st.Plots[0].Tower != "" || st.Plots[0].Owner != "" {
		t.Error("plot 0 not cleared after sale")
	}
	if _, ok := st.Towers["t1"]; ok {
		t.Error("sold tower still present")
	}
	if st.MyGold != 110 {
		t.Errorf("MyGold = %d, want 110", st.MyGold)
	}
}

func TestTowerUpgradedSwapsTower(t *testing.T) {
	st := NewStore()
	st.MyID = "p1"
	st.ApplyFull(snap(
		[]protocol.Tower{{ID: "t1", Type: "cannon", PlotID: 0, OwnerID: "p1"}},
		[]protocol.PlayerSummary{{ID: "p1", Gold: 500}},
	))

	cost := 120
	st.ApplyTowerUpgraded(protocol.TowerUpgraded{
		Tower: protocol.Tower{
			ID: "t1", Type: "cannon", PlotID: 0, OwnerID: "p1",
			Levels:       protocol.AxisLevels{Damage: 1},
			UpgradeCosts: protocol.AxisCosts{Damage: &cost},
		},
		PlayerID:   "p1",
		PlayerGold: 420,
	})

	got := st.Towers["t1"]
	if got == nil || got.Levels.Damage != 1 {
		t.Fatalf("upgraded tower = %+v, want damage level 1", got)
	}
	if got.UpgradeCosts.Damage == nil || *got.UpgradeCosts.Damage != 120 {
		t.Error("next damage cost not carried over from confirmation")
	}
	if st.MyGold != 420 {
		t.Errorf("MyGold = %d, want 420", st.MyGold)
	}
}

// The gold shadow always reflects the most recent message naming the local
// player's gold, regardless of which message type carried it.
func TestGoldShadowFollowsLatestMessage(t *testing.T) {
	st := NewStore()
	st.MyID = "me"

	st.ApplyFull(snap(nil, []protocol.PlayerSummary{
		{ID: "me", Gold: 200},
		{ID: "other", Gold: 500},
	}))
	if st.MyGold != 200 {
		t.Fatalf("MyGold = %d after snapshot, want 200", st.MyGold)
	}

	// My placement moves the shadow.
	st.ApplyTowerPlaced(protocol.TowerPlaced{
		Tower: protocol.Tower{ID: "a", PlotID: 0, OwnerID: "me"}, PlayerID: "me", PlayerGold: 150,
	})
	if st.MyGold != 150 {
		t.Fatalf("MyGold = %d after own placement, want 150", st.MyGold)
	}

	// Someone else's placement updates their roster entry, not the shadow.
	st.ApplyTowerPlaced(protocol.TowerPlaced{
		Tower: protocol.Tower{ID: "b", PlotID: 1, OwnerID: "other"}, PlayerID: "other", PlayerGold: 100,
	})
	if st.MyGold != 150 {
		t.Errorf("MyGold = %d after other player's placement, want 150", st.MyGold)
	}
	if p := st.playerByID("other"); p == nil || p.Gold != 100 {
		t.Errorf("other player's roster gold not patched")
	}
}

func TestPlayerRosterAddRemove(t *testing.T) {
	st := NewStore()
	st.ApplyFull(snap(nil, []protocol.PlayerSummary{{ID: "p1", Name: "Ana"}}))

	st.AddPlayer("p2", "Bo", 4)
	st.AddPlayer("p2", "Bo", 4) // duplicate join is a no-op
	if len(st.Players) != 2 {
		t.Fatalf("players = %d, want 2", len(st.Players))
	}

	st.RemovePlayer("p1")
	if st.PlayerName("p1") != "" {
		t.Error("removed player still resolvable")
	}
	if st.PlayerName("p2") != "Bo" {
		t.Error("surviving player lost")
	}
}

func TestResetClearsEverything(t *testing.T) {
	st := NewStore()
	st.MyID = "p1"
	st.ApplyFull(snap(
		[]protocol.Tower{{ID: "t1", PlotID: 0, OwnerID: "p1"}},
		[]protocol.PlayerSummary{{ID: "p1", Gold: 300}},
	))

	st.Reset()

	if st.Ready() {
		t.Error("store still ready after Reset")
	}
	if len(st.Towers) != 0 || st.MyGold != 0 || st.MyID != "" {
		t.Error("Reset left residual state")
	}
}
