package game

import (
	"image/color"
	"math"
	"strconv"

	"castledefenders/shared/protocol"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawWorld paints every dynamic layer in fixed order: terrain, path,
// castle, plots/towers, troops, enemies, projectiles, then interaction
// overlays belonging to the things they decorate. Later layers draw over
// earlier ones.
func (g *Game) drawWorld(dst *ebiten.Image, nowMs int64) {
	st := g.store

	dst.DrawImage(g.ensureBackground(), nil)
	drawPath(dst, st.Path)
	drawCastle(dst, st.Path, nowMs)

	for i := range st.Plots {
		pl := &st.Plots[i]
		if t := st.TowerOnPlot(pl); t != nil {
			selected := g.sel.PlotID == pl.ID
			artistFor(t.Type).Draw(dst, pl.X, pl.Y, t, selected, nowMs)
			if selected {
				drawRangeCircle(dst, pl.X, pl.Y, g.towerRange(t), 200)
			}
		} else {
			g.drawEmptyPlot(dst, pl, nowMs)
		}
	}

	for i := range st.Troops {
		drawTroop(dst, &st.Troops[i], nowMs)
	}
	for i := range st.Enemies {
		drawEnemy(dst, &st.Enemies[i], nowMs)
	}
	for i := range st.Projectiles {
		drawProjectile(dst, st, &st.Projectiles[i])
	}
}

// drawPath strokes the walkway in three nested passes of decreasing width,
// faking a bevelled edge; joint circles keep the corners round.
func drawPath(dst *ebiten.Image, path []protocol.Vec2) {
	if len(path) < 2 {
		return
	}
	passes := []struct {
		w   float32
		col color.NRGBA
	}{
		{34, color.NRGBA{86, 64, 38, 255}},
		{26, color.NRGBA{128, 99, 58, 255}},
		{16, color.NRGBA{168, 136, 86, 255}},
	}
	for _, p := range passes {
		for i := 0; i+1 < len(path); i++ {
			a, b := path[i], path[i+1]
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), p.w, p.col, true)
		}
		for _, v := range path {
			vector.DrawFilledCircle(dst, float32(v.X), float32(v.Y), p.w/2, p.col, true)
		}
	}
}

// drawCastle sits at the path's end. Geometry is fixed; only the window glow
// and the flag use the clock.
func drawCastle(dst *ebiten.Image, path []protocol.Vec2, nowMs int64) {
	cx, cy := float64(protocol.WorldW-45), float64(protocol.WorldH)/2
	if len(path) > 0 {
		end := path[len(path)-1]
		cx, cy = end.X, end.Y
	}

	stone := color.NRGBA{150, 148, 152, 255}
	dark := color.NRGBA{110, 108, 114, 255}

	// keep
	vector.DrawFilledRect(dst, float32(cx-34), float32(cy-44), 68, 88, stone, false)
	vector.StrokeRect(dst, float32(cx-34), float32(cy-44), 68, 88, 2, dark, false)
	// flanking towers
	vector.DrawFilledRect(dst, float32(cx-48), float32(cy-56), 18, 112, dark, false)
	vector.DrawFilledRect(dst, float32(cx+30), float32(cy-56), 18, 112, dark, false)
	// crenellations
	for i := 0; i < 4; i++ {
		x := cx - 30 + float64(i)*17
		vector.DrawFilledRect(dst, float32(x), float32(cy-52), 10, 8, dark, false)
	}
	// gate
	vector.DrawFilledRect(dst, float32(cx-10), float32(cy+14), 20, 30, color.NRGBA{70, 50, 34, 255}, false)

	// window glow, slow pulse
	phase := float32(0.5 + 0.5*math.Sin(float64(nowMs)/400))
	glow := color.NRGBA{255, 220, 120, uint8(120 + 100*phase)}
	vector.DrawFilledCircle(dst, float32(cx), float32(cy-20), 5, glow, true)

	// flag, waving with the same clock
	wave := float32(math.Sin(float64(nowMs) / 250))
	vector.StrokeLine(dst, float32(cx), float32(cy-56), float32(cx), float32(cy-78), 2, dark, false)
	vector.DrawFilledRect(dst, float32(cx), float32(cy-78), 16+3*wave, 10, color.NRGBA{180, 40, 40, 255}, false)
}

// drawEmptyPlot shows a neutral platform, the buildable overlay while a shop
// type is armed, or the transient inspect hint.
func (g *Game) drawEmptyPlot(dst *ebiten.Image, pl *protocol.Plot, nowMs int64) {
	x, y := float32(pl.X), float32(pl.Y)

	vector.DrawFilledCircle(dst, x, y, 18, color.NRGBA{124, 116, 100, 255}, true)
	vector.StrokeCircle(dst, x, y, 18, 2, color.NRGBA{92, 86, 74, 255}, true)

	if g.sel.TowerType != "" {
		// faint range preview plus a pulsing "place here" ring
		if info, ok := g.catalog[g.sel.TowerType]; ok {
			drawRangeCircle(dst, pl.X, pl.Y, float64(info.Range), 50)
		}
		pulse := float32(2 * math.Sin(float64(nowMs)/180))
		vector.StrokeCircle(dst, x, y, 22+pulse, 2, color.NRGBA{90, 220, 90, 220}, true)
	} else if g.sel.InspectPlotID == pl.ID {
		vector.StrokeCircle(dst, x, y, 22, 2, color.NRGBA{230, 230, 140, 220}, true)
	}
}

func drawRangeCircle(dst *ebiten.Image, x, y, r float64, alpha uint8) {
	if r <= 0 {
		r = 120 // stale catalog reference: draw something sane
	}
	vector.StrokeCircle(dst, float32(x), float32(y), float32(r), 1.5, color.NRGBA{255, 255, 255, alpha}, true)
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(r), color.NRGBA{255, 255, 255, alpha / 6}, true)
}

// towerRange mirrors the server's range growth per upgrade level for the
// overlay only; the server remains the authority on actual targeting.
func (g *Game) towerRange(t *protocol.Tower) float64 {
	info, ok := g.catalog[t.Type]
	if !ok || info.Range <= 0 {
		return 120
	}
	return float64(info.Range) * (1 + 0.1*float64(t.Levels.Range))
}

// hexColor parses "#RRGGBB" with a gray fallback for anything malformed.
func hexColor(s string) color.NRGBA {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{160, 160, 160, 255}
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{160, 160, 160, 255}
	}
	return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}
