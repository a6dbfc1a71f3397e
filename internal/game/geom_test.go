package game

import (
	"testing"

	"castledefenders/shared/protocol"
)

func TestToWorldScalesByWindowRatio(t *testing.T) {
	// Window at double the logical size: cursor coordinates halve.
	p := ToWorld(900, 700, protocol.ScreenW*2, protocol.ScreenH*2)
	if p.X != 450 || p.Y != 350 {
		t.Errorf("ToWorld = %+v, want {450 350}", p)
	}

	// Identity at logical size.
	p = ToWorld(123, 456, protocol.ScreenW, protocol.ScreenH)
	if p.X != 123 || p.Y != 456 {
		t.Errorf("ToWorld = %+v, want {123 456}", p)
	}
}

func TestToWorldDegenerateWindowPassesThrough(t *testing.T) {
	for _, wh := range [][2]int{{0, 700}, {900, 0}, {-1, -1}} {
		p := ToWorld(50, 60, wh[0], wh[1])
		if p.X != 50 || p.Y != 60 {
			t.Errorf("ToWorld(50,60,%d,%d) = %+v, want passthrough", wh[0], wh[1], p)
		}
	}
}

func TestHitTestPlotFirstWins(t *testing.T) {
	plots := []protocol.Plot{
		{ID: 0, X: 100, Y: 100},
		{ID: 1, X: 140, Y: 100}, // within 30 of the midpoint too
	}

	// A point inside both radii resolves to the earlier plot every time.
	for i := 0; i < 10; i++ {
		got := HitTestPlot(Point{X: 120, Y: 100}, plots)
		if got == nil || got.ID != 0 {
			t.Fatalf("HitTestPlot returned %+v, want plot 0", got)
		}
	}
}

func TestHitTestPlotRadiusBoundary(t *testing.T) {
	plots := []protocol.Plot{{ID: 0, X: 100, Y: 100}}

	if got := HitTestPlot(Point{X: 129, Y: 100}, plots); got == nil {
		t.Error("point just inside the radius missed")
	}
	// Exactly on the radius counts as a miss; the comparison is strict.
	if got := HitTestPlot(Point{X: 130, Y: 100}, plots); got != nil {
		t.Error("point on the radius boundary hit")
	}
	if got := HitTestPlot(Point{X: 200, Y: 200}, plots); got != nil {
		t.Error("far point hit")
	}
}

func TestHitTestPlotEmpty(t *testing.T) {
	if got := HitTestPlot(Point{X: 1, Y: 1}, nil); got != nil {
		t.Errorf("HitTestPlot on no plots = %+v", got)
	}
}
