package game

// ---- Core enums / layout constants ----

type connState int

const (
	stateIdle connState = iota
	stateConnecting
	stateConnected
	stateFailed

	// UI layout
	topBarH   = 30
	shopBarH  = 100
	panelW    = 190
	chatLines = 6

	pad  = 8
	btnW = 120
	btnH = 32
)

// plotRadius is the fixed interaction radius around a plot center, in world
// pixels. Not proportional to zoom; the match layout guarantees plots never
// overlap within it.
const plotRadius = 30.0

type screen int

const (
	screenLogin screen = iota
	screenPlay
)

// ---- Small utility types ----

type rect struct{ x, y, w, h int }

func (r rect) hit(mx, my int) bool {
	return mx >= r.x && mx <= r.x+r.w && my >= r.y && my <= r.y+r.h
}

// Used by async connection
type connResult struct {
	n   *Net
	err error
}
