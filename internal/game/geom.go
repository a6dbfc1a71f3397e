package game

import (
	"math"

	"castledefenders/shared/protocol"
)

// Point is a position in world coordinates.
type Point struct{ X, Y float64 }

// ToWorld maps a cursor position in window pixels to world coordinates by
// dividing out the ratio between the displayed window size and the logical
// backing size, so hit-testing stays correct under any window scaling.
// Degenerate window sizes pass coordinates through unchanged.
func ToWorld(mx, my, winW, winH int) Point {
	if winW <= 0 || winH <= 0 {
		return Point{X: float64(mx), Y: float64(my)}
	}
	sx := float64(protocol.ScreenW) / float64(winW)
	sy := float64(protocol.ScreenH) / float64(winH)
	return Point{X: float64(mx) * sx, Y: float64(my) * sy}
}

// HitTestPlot returns the first plot whose center lies within plotRadius of
// p, in the server-assigned plot order. First match wins; the layout keeps
// plots from overlapping within the radius, but the first-wins contract is
// what makes the result deterministic either way.
func HitTestPlot(p Point, plots []protocol.Plot) *protocol.Plot {
	for i := range plots {
		dx := plots[i].X - p.X
		dy := plots[i].Y - p.Y
		if math.Hypot(dx, dy) < plotRadius {
			return &plots[i]
		}
	}
	return nil
}
