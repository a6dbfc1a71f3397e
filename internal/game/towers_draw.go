package game

import (
	"image/color"
	"math"

	"castledefenders/shared/protocol"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// towerArtist renders one tower type at a plot. Artists are pure draw code;
// all state comes in through the arguments.
type towerArtist interface {
	Draw(dst *ebiten.Image, x, y float64, t *protocol.Tower, selected bool, nowMs int64)
}

type artistFunc func(dst *ebiten.Image, x, y float64, t *protocol.Tower, selected bool, nowMs int64)

func (f artistFunc) Draw(dst *ebiten.Image, x, y float64, t *protocol.Tower, selected bool, nowMs int64) {
	f(dst, x, y, t, selected, nowMs)
}

var towerArtists = map[string]towerArtist{
	"cannon":      artistFunc(drawCannon),
	"archer":      artistFunc(drawArcher),
	"mortar":      artistFunc(drawMortar),
	"wizard":      artistFunc(drawWizard),
	"frost":       artistFunc(drawFrost),
	"barracks":    artistFunc(drawBarracks),
	"goldmine":    artistFunc(drawGoldmine),
	"tesla":       artistFunc(drawTesla),
	"dragon":      artistFunc(drawDragon),
	"sniper":      artistFunc(drawSniper),
	"necromancer": artistFunc(drawNecromancer),
	"shrine":      artistFunc(drawShrine),
}

func artistFor(towerType string) towerArtist {
	if a, ok := towerArtists[towerType]; ok {
		return a
	}
	return artistFunc(drawGenericTower)
}

// drawBase is the shared plot platform under every tower, with a selection
// ring when the tower is the active one.
func drawBase(dst *ebiten.Image, x, y float64, selected bool) {
	fx, fy := float32(x), float32(y)
	vector.DrawFilledCircle(dst, fx, fy, 20, color.NRGBA{96, 90, 80, 255}, true)
	vector.StrokeCircle(dst, fx, fy, 20, 2, color.NRGBA{64, 60, 52, 255}, true)
	if selected {
		vector.StrokeCircle(dst, fx, fy, 24, 2, color.NRGBA{255, 240, 140, 255}, true)
	}
}

// drawLevelPips marks total upgrade levels as small dots under the tower.
func drawLevelPips(dst *ebiten.Image, x, y float64, t *protocol.Tower) {
	n := t.Levels.Damage + t.Levels.Range + t.Levels.Speed
	if n <= 0 {
		return
	}
	if n > 6 {
		n = 6
	}
	start := x - float64(n-1)*3
	for i := 0; i < n; i++ {
		vector.DrawFilledCircle(dst, float32(start+float64(i)*6), float32(y+26), 2, color.NRGBA{255, 230, 120, 255}, true)
	}
}

func drawGenericTower(dst *ebiten.Image, x, y float64, t *protocol.Tower, selected bool, nowMs int64) {
	drawBase(dst, x, y, selected)
	vector.DrawFilledRect(dst, float32(x-10), float32(y-14), 20, 24, color.NRGBA{150, 150, 160, 255}, false)
	drawLevelPips(dst, x, y, t)
}

func drawCannon(dst *ebiten.Image, x, y float64, t *protocol.Tower, selected bool, nowMs int64) {
	drawBase(dst, x, y, selected)
	vector.DrawFilledCircle(dst, float32(x), float32(y), 11, color.NRGBA{80, 80, 88, 255}, true)
	// barrel sweeps slowly while idle
	ang := float64(nowMs) / 900
	bx := x + 16*math.Cos(ang)
	by := y + 16*math.Sin(ang)
	vector.StrokeLine(dst, float32(x), float32(y), float32(bx), float32(by), 6, color.NRGBA{50, 50, 56, 255}, true)
	drawLevelPips(dst, x, y, t)
}

func drawArcher(dst *ebiten.Image, x, y float64, t *protocol.Tower, selected bool, nowMs int64) {
	drawBase(dst, x, y, selected)
	vector.DrawFilledRect(dst, float32(x-8), float32(y-18), 16, 28, color.NRGBA{140, 100, 60, 255}, false)
	vector.DrawFilledRect(dst, float32(x-11), float32(y-22), 22, 6, color.NRGBA{110, 78, 46, 255}, false)
	// archer silhouette on top
	vector.DrawFilledCircle(dst, float32(x), float32(y-26), 3, color.NRGBA{230, 200, 160, 255}, true)
	drawLevelPips(dst, x, y, t)
}

func drawMortar(dst *ebiten.Image, x, y float64, t *protocol.Tower, selected bool, nowMs int64) {
	drawBase(dst, x, y, selected)
	vector.DrawFilledCircle(dst, float32(x), float32(y+2), 12, color.NRGBA{90, 96, 90, 255}, true)
	// stubby tube pointed up-range
	vector.StrokeLine(dst, float32(x), float32(y+2), float32(x-8), float32(y-14), 8, color.NRGBA{60, 66, 60, 255}, true)
	drawLevelPips(dst, x, y, t)
}

func drawWizard(dst *ebiten.Image, x, y float64, t *protocol.Tower, selected bool, nowMs int64) {
	drawBase(dst, x, y, selected)
	vector.DrawFilledRect(dst, float32(x-7), float32(y-10), 14, 20, color.NRGBA{90, 60, 140, 255}, false)
	// orbiting orb
	ang := float64(nowMs) / 350
	ox := x + 14*math.Cos(ang)
	oy := y - 14 + 5*math.Sin(ang*2)
	vector.DrawFilledCircle(dst, float32(ox), float32(oy), 4, color.NRGBA{190, 140, 255, 255}, true)
	// hat
	vector.DrawFilledCircle(dst, float32(x), float32(y-14), 6, color.NRGBA{60, 40, 100, 255}, true)
	drawLevelPips(dst, x, y, t)
}

func drawFrost(dst *ebiten.Image, x, y float64, t *protocol.Tower, selected bool, nowMs int64) {
	drawBase(dst, x, y, selected)
	// ice crystal: three crossed shards
	for i := 0; i < 3; i++ {
		ang := float64(i)*math.Pi/3 + float64(nowMs)/2000
		dx, dy := 13*math.Cos(ang), 13*math.Sin(ang)
		vector.StrokeLine(dst, float32(x-dx), float32(y-dy), float32(x+dx), float32(y+dy), 4, color.NRGBA{150, 210, 255, 255}, true)
	}
	vector.DrawFilledCircle(dst, float32(x), float32(y), 5, color.NRGBA{220, 240, 255, 255}, true)
	drawLevelPips(dst, x, y, t)
}

func drawBarracks(dst *ebiten.Image, x, y float64, t *protocol.Tower, selected bool, nowMs int64) {
	drawBase(dst, x, y, selected)
	vector.DrawFilledRect(dst, float32(x-14), float32(y-8), 28, 18, color.NRGBA{120, 86, 52, 255}, false)
	// tent roof
	vector.StrokeLine(dst, float32(x-16), float32(y-8), float32(x), float32(y-20), 4, color.NRGBA{160, 50, 50, 255}, true)
	vector.StrokeLine(dst, float32(x), float32(y-20), float32(x+16), float32(y-8), 4, color.NRGBA{160, 50, 50, 255}, true)
	drawLevelPips(dst, x, y, t)
}

func drawGoldmine(dst *ebiten.Image, x, y float64, t *protocol.Tower, selected bool, nowMs int64) {
	drawBase(dst, x, y, selected)
	vector.DrawFilledRect(dst, float32(x-12), float32(y-6), 24, 16, color.NRGBA{100, 92, 70, 255}, false)
	// mine mouth
	vector.DrawFilledCircle(dst, float32(x), float32(y+2), 6, color.NRGBA{40, 36, 30, 255}, true)
	// gold sparkle blinks
	if (nowMs/400)%3 == 0 {
		vector.DrawFilledCircle(dst, float32(x+8), float32(y-10), 3, color.NRGBA{255, 215, 60, 255}, true)
	}
	drawLevelPips(dst, x, y, t)
}

func drawTesla(dst *ebiten.Image, x, y float64, t *protocol.Tower, selected bool, nowMs int64) {
	drawBase(dst, x, y, selected)
	vector.DrawFilledRect(dst, float32(x-5), float32(y-16), 10, 26, color.NRGBA{90, 100, 110, 255}, false)
	vector.DrawFilledCircle(dst, float32(x), float32(y-18), 7, color.NRGBA{120, 200, 255, 255}, true)
	// crackle arcs flicker frame to frame
	if (nowMs/120)%2 == 0 {
		vector.StrokeLine(dst, float32(x), float32(y-18), float32(x+10), float32(y-26), 2, color.NRGBA{200, 240, 255, 255}, true)
		vector.StrokeLine(dst, float32(x), float32(y-18), float32(x-9), float32(y-27), 2, color.NRGBA{200, 240, 255, 255}, true)
	}
	drawLevelPips(dst, x, y, t)
}

func drawDragon(dst *ebiten.Image, x, y float64, t *protocol.Tower, selected bool, nowMs int64) {
	drawBase(dst, x, y, selected)
	// perch
	vector.DrawFilledRect(dst, float32(x-4), float32(y-4), 8, 18, color.NRGBA{100, 90, 80, 255}, false)
	// body bobs as it hovers
	bob := 3 * math.Sin(float64(nowMs)/300)
	by := y - 18 + bob
	vector.DrawFilledCircle(dst, float32(x), float32(by), 8, color.NRGBA{190, 60, 40, 255}, true)
	// wings
	flap := 6 * math.Sin(float64(nowMs)/150)
	vector.StrokeLine(dst, float32(x-6), float32(by), float32(x-16), float32(by-flap), 3, color.NRGBA{150, 45, 30, 255}, true)
	vector.StrokeLine(dst, float32(x+6), float32(by), float32(x+16), float32(by-flap), 3, color.NRGBA{150, 45, 30, 255}, true)
	drawLevelPips(dst, x, y, t)
}

func drawSniper(dst *ebiten.Image, x, y float64, t *protocol.Tower, selected bool, nowMs int64) {
	drawBase(dst, x, y, selected)
	// tall narrow perch
	vector.DrawFilledRect(dst, float32(x-5), float32(y-24), 10, 34, color.NRGBA{70, 80, 70, 255}, false)
	vector.DrawFilledRect(dst, float32(x-8), float32(y-28), 16, 6, color.NRGBA{50, 58, 50, 255}, false)
	// scope glint
	if (nowMs/700)%4 == 0 {
		vector.DrawFilledCircle(dst, float32(x+5), float32(y-26), 2, color.NRGBA{255, 255, 255, 255}, true)
	}
	drawLevelPips(dst, x, y, t)
}

func drawNecromancer(dst *ebiten.Image, x, y float64, t *protocol.Tower, selected bool, nowMs int64) {
	drawBase(dst, x, y, selected)
	vector.DrawFilledRect(dst, float32(x-8), float32(y-12), 16, 22, color.NRGBA{50, 40, 60, 255}, false)
	// green soul-wisp circling
	ang := float64(nowMs) / 400
	wx := x + 12*math.Cos(ang)
	wy := y - 6 + 12*math.Sin(ang)
	vector.DrawFilledCircle(dst, float32(wx), float32(wy), 3, color.NRGBA{110, 240, 130, 220}, true)
	vector.DrawFilledCircle(dst, float32(x), float32(y-16), 5, color.NRGBA{80, 60, 100, 255}, true)
	drawLevelPips(dst, x, y, t)
}

func drawShrine(dst *ebiten.Image, x, y float64, t *protocol.Tower, selected bool, nowMs int64) {
	drawBase(dst, x, y, selected)
	// pillars
	vector.DrawFilledRect(dst, float32(x-12), float32(y-14), 5, 22, color.NRGBA{210, 205, 190, 255}, false)
	vector.DrawFilledRect(dst, float32(x+7), float32(y-14), 5, 22, color.NRGBA{210, 205, 190, 255}, false)
	vector.DrawFilledRect(dst, float32(x-14), float32(y-18), 28, 5, color.NRGBA{190, 185, 170, 255}, false)
	// aura pulse
	pulse := float32(3 * math.Sin(float64(nowMs)/350))
	vector.StrokeCircle(dst, float32(x), float32(y-4), 16+pulse, 1.5, color.NRGBA{255, 250, 200, 120}, true)
	drawLevelPips(dst, x, y, t)
}
