package game

import (
	"hash/fnv"
	"math/rand"

	"castledefenders/shared/protocol"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// ensureBackground returns the static terrain buffer, regenerating it only
// when the match changes. Per-frame rendering just blits it.
func (g *Game) ensureBackground() *ebiten.Image {
	if g.background != nil && g.bgGameID == g.store.GameID {
		return g.background
	}
	g.background = buildBackground(g.store.GameID)
	g.bgGameID = g.store.GameID
	return g.background
}

// buildBackground paints the terrain offscreen: mottled grass plus
// decorative rocks and shrubs. Seeded by the match id so every client in a
// game sees the same ground.
func buildBackground(seedKey string) *ebiten.Image {
	dc := gg.NewContext(protocol.WorldW, protocol.WorldH)

	dc.SetRGB255(58, 110, 58)
	dc.Clear()

	h := fnv.New64a()
	h.Write([]byte(seedKey))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	// grass mottling
	for i := 0; i < 260; i++ {
		x := rng.Float64() * protocol.WorldW
		y := rng.Float64() * protocol.WorldH
		r := 6 + rng.Float64()*22
		if rng.Intn(2) == 0 {
			dc.SetRGBA255(48, 96, 48, 80)
		} else {
			dc.SetRGBA255(72, 128, 66, 60)
		}
		dc.DrawCircle(x, y, r)
		dc.Fill()
	}

	// rocks
	for i := 0; i < 20; i++ {
		x := rng.Float64() * protocol.WorldW
		y := rng.Float64() * protocol.WorldH
		r := 3 + rng.Float64()*5
		dc.SetRGB255(105, 105, 110)
		dc.DrawCircle(x, y, r)
		dc.Fill()
		dc.SetRGBA255(160, 160, 165, 120)
		dc.DrawCircle(x-r*0.3, y-r*0.3, r*0.45)
		dc.Fill()
	}

	// shrubs
	for i := 0; i < 16; i++ {
		x := rng.Float64() * protocol.WorldW
		y := rng.Float64() * protocol.WorldH
		dc.SetRGBA255(34, 80, 34, 220)
		dc.DrawCircle(x, y, 6)
		dc.DrawCircle(x+5, y+2, 5)
		dc.DrawCircle(x-5, y+2, 5)
		dc.Fill()
	}

	return ebiten.NewImageFromImage(dc.Image())
}
