package game

import (
	"fmt"

	"castledefenders/shared/protocol"
)

// Selection is the transient, client-only record of what the player has
// chosen. At most one of PlotID / TowerType is ever set; every transition
// enforces that instead of checking after the fact, so the render overlays
// can never contradict each other.
type Selection struct {
	PlotID    int    // an owned, built plot; -1 when none
	TowerType string // a shop type armed for placement; "" when none

	// InspectPlotID marks an empty plot clicked with nothing selected. It is
	// a hint only and does not survive the next click.
	InspectPlotID int
}

func NewSelection() *Selection {
	return &Selection{PlotID: -1, InspectPlotID: -1}
}

// Reset returns to Idle. Called on cancel, disconnect and match join.
func (s *Selection) Reset() {
	s.PlotID = -1
	s.TowerType = ""
	s.InspectPlotID = -1
}

func (s *Selection) selectPlot(id int) {
	s.TowerType = ""
	s.InspectPlotID = -1
	s.PlotID = id
}

func (s *Selection) selectType(t string) {
	s.PlotID = -1
	s.InspectPlotID = -1
	s.TowerType = t
}

// ClickResult is the outcome of resolving one world-space click. When Place
// is set the caller emits exactly one placeTower request; Notice, when
// non-empty, is surfaced as a transient message.
type ClickResult struct {
	Place     bool
	PlotID    int
	TowerType string
	Notice    string
}

// Click resolves a pointer click against the current match state. It only
// reads the store; the one outward effect (placing) is returned to the
// caller rather than emitted here.
func (s *Selection) Click(st *Store, p Point) ClickResult {
	s.InspectPlotID = -1 // inspection never persists past the next click

	plot := HitTestPlot(p, st.Plots)
	if plot == nil {
		// Empty canvas region cancels whatever was selected.
		s.Reset()
		return ClickResult{}
	}

	if t := st.TowerOnPlot(plot); t != nil {
		if t.OwnerID == st.MyID {
			s.selectPlot(plot.ID)
			return ClickResult{}
		}
		// Someone else's tower: never selectable, just say whose it is.
		s.Reset()
		owner := t.OwnerName
		if n := st.PlayerName(t.OwnerID); n != "" {
			owner = n
		}
		return ClickResult{Notice: fmt.Sprintf("That one belongs to %s", owner)}
	}

	// Empty plot.
	if s.TowerType != "" {
		res := ClickResult{Place: true, PlotID: plot.ID, TowerType: s.TowerType}
		s.Reset() // back to Idle immediately, not gated on confirmation
		return res
	}
	s.Reset()
	s.InspectPlotID = plot.ID
	return ClickResult{Notice: "Empty plot. Pick a tower from the shop"}
}

// ChooseType arms a shop tower type for placement. Locked or unaffordable
// picks are rejected here, before any request could be emitted.
func (s *Selection) ChooseType(st *Store, info protocol.TowerInfo, unlocked bool) (bool, string) {
	if !unlocked {
		return false, fmt.Sprintf("%s unlocks at level %d", info.Name, info.UnlockLevel)
	}
	if info.Cost > st.MyGold {
		return false, fmt.Sprintf("Not enough gold for %s (%d)", info.Name, info.Cost)
	}
	s.selectType(info.ID)
	return true, ""
}

// SelectedTower resolves the selected plot to its tower, nil when the
// selection is stale or empty.
func (s *Selection) SelectedTower(st *Store) *protocol.Tower {
	if s.PlotID < 0 {
		return nil
	}
	return st.TowerOnPlot(st.plotByID(s.PlotID))
}
