package game

import (
	"image/color"
	"math"

	"castledefenders/shared/protocol"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawEnemy renders one enemy with its status glyphs and health bar. The
// server decides color and size; unknown types still render via those.
func drawEnemy(dst *ebiten.Image, e *protocol.Enemy, nowMs int64) {
	x, y := float32(e.X), float32(e.Y)
	r := float32(e.Size)
	if r <= 0 {
		r = 10
	}
	body := hexColor(e.Color)

	switch e.Type {
	case "goblin":
		vector.DrawFilledCircle(dst, x, y, r, body, true)
		// ears
		vector.DrawFilledCircle(dst, x-r*0.8, y-r*0.6, r*0.35, body, true)
		vector.DrawFilledCircle(dst, x+r*0.8, y-r*0.6, r*0.35, body, true)
	case "orc":
		vector.DrawFilledRect(dst, x-r, y-r, r*2, r*2, body, false)
		vector.StrokeRect(dst, x-r, y-r, r*2, r*2, 1.5, darken(body), false)
	case "troll":
		vector.DrawFilledCircle(dst, x, y, r, body, true)
		vector.DrawFilledCircle(dst, x, y-r*0.9, r*0.6, body, true)
	case "wraith":
		// translucent, drifting
		ghost := body
		ghost.A = 170
		drift := float32(2 * math.Sin(float64(nowMs)/200+float64(e.X)))
		vector.DrawFilledCircle(dst, x, y+drift, r, ghost, true)
	case "golem":
		vector.DrawFilledRect(dst, x-r, y-r*0.8, r*2, r*1.6, body, false)
		vector.DrawFilledRect(dst, x-r*0.5, y-r*1.4, r, r*0.6, darken(body), false)
	case "dragon_whelp":
		vector.DrawFilledCircle(dst, x, y, r, body, true)
		flap := float32(4 * math.Sin(float64(nowMs)/120))
		vector.StrokeLine(dst, x-r, y, x-r*1.8, y-flap, 2, darken(body), true)
		vector.StrokeLine(dst, x+r, y, x+r*1.8, y-flap, 2, darken(body), true)
	case "shaman":
		vector.DrawFilledCircle(dst, x, y, r, body, true)
		vector.StrokeCircle(dst, x, y, r+3, 1, color.NRGBA{120, 255, 160, 140}, true)
	case "berserker":
		vector.DrawFilledCircle(dst, x, y, r, body, true)
		// rage spikes
		for i := 0; i < 6; i++ {
			ang := float64(i) * math.Pi / 3
			sx := x + float32((float64(r)+4)*math.Cos(ang))
			sy := y + float32((float64(r)+4)*math.Sin(ang))
			vector.StrokeLine(dst, x, y, sx, sy, 1.5, darken(body), true)
		}
	case "boss":
		vector.DrawFilledCircle(dst, x, y, r, body, true)
		vector.StrokeCircle(dst, x, y, r, 3, color.NRGBA{255, 210, 60, 255}, true)
		// crown
		vector.DrawFilledRect(dst, x-r*0.6, y-r-8, r*1.2, 5, color.NRGBA{255, 210, 60, 255}, false)
	default:
		vector.DrawFilledCircle(dst, x, y, r, body, true)
	}

	drawEnemyStatus(dst, e, x, y, r, nowMs)
	drawHealthBar(dst, x, y-r-10, e.Health, e.MaxHealth)
}

func drawEnemyStatus(dst *ebiten.Image, e *protocol.Enemy, x, y, r float32, nowMs int64) {
	if e.Slowed {
		vector.StrokeCircle(dst, x, y, r+2, 2, color.NRGBA{130, 190, 255, 200}, true)
	}
	if e.Stunned {
		// rotating sparks
		ang := float64(nowMs) / 150
		for i := 0; i < 3; i++ {
			a := ang + float64(i)*2*math.Pi/3
			sx := x + float32((float64(r)+5)*math.Cos(a))
			sy := y - r - 4 + float32(3*math.Sin(a))
			vector.DrawFilledCircle(dst, sx, sy, 2, color.NRGBA{255, 235, 90, 255}, true)
		}
	}
	if e.Burning && (nowMs/100)%2 == 0 {
		vector.DrawFilledCircle(dst, x+r*0.4, y-r*0.4, 3, color.NRGBA{255, 140, 40, 230}, true)
		vector.DrawFilledCircle(dst, x-r*0.3, y+r*0.2, 2, color.NRGBA{255, 180, 60, 230}, true)
	}
}

// drawHealthBar colors the fill by remaining fraction: green, then yellow
// under 50%, red under 25%.
func drawHealthBar(dst *ebiten.Image, x, y float32, health, maxHealth float64) {
	if maxHealth <= 0 {
		return
	}
	frac := health / maxHealth
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	const bw, bh = 24, 4
	fill := color.NRGBA{90, 200, 90, 255}
	if frac < 0.25 {
		fill = color.NRGBA{220, 70, 60, 255}
	} else if frac < 0.5 {
		fill = color.NRGBA{230, 190, 60, 255}
	}
	vector.DrawFilledRect(dst, x-bw/2, y, bw, bh, color.NRGBA{30, 30, 30, 200}, false)
	vector.DrawFilledRect(dst, x-bw/2, y, bw*float32(frac), bh, fill, false)
}

// drawProjectile orients the shot toward its target when the target is still
// in the snapshot; stale targets get an unoriented, faded dot.
func drawProjectile(dst *ebiten.Image, st *Store, p *protocol.Projectile) {
	x, y := float32(p.X), float32(p.Y)
	col := hexColor(p.Color)

	var dirX, dirY float32 = 1, 0
	alpha := uint8(255)
	if tgt := st.EnemyByID(p.TargetID); tgt != nil {
		dx, dy := tgt.X-p.X, tgt.Y-p.Y
		if d := math.Hypot(dx, dy); d > 0.001 {
			dirX, dirY = float32(dx/d), float32(dy/d)
		}
	} else {
		alpha = 140
	}
	col.A = alpha

	switch p.Type {
	case "arrow", "bolt":
		vector.StrokeLine(dst, x-dirX*6, y-dirY*6, x+dirX*6, y+dirY*6, 2, col, true)
	case "cannonball", "shell":
		vector.DrawFilledCircle(dst, x, y, 4, col, true)
	case "fireball":
		vector.DrawFilledCircle(dst, x, y, 5, col, true)
		trail := col
		trail.A = alpha / 3
		vector.DrawFilledCircle(dst, x-dirX*6, y-dirY*6, 3, trail, true)
	case "lightning":
		vector.StrokeLine(dst, x-dirX*8, y-dirY*8-3, x, y+3, 2, col, true)
		vector.StrokeLine(dst, x, y+3, x+dirX*8, y+dirY*8-3, 2, col, true)
	case "frostbolt":
		vector.DrawFilledCircle(dst, x, y, 4, col, true)
		vector.StrokeCircle(dst, x, y, 6, 1, col, true)
	default:
		vector.DrawFilledCircle(dst, x, y, 3, col, true)
	}
}

// drawTroop renders friendly units spawned by barracks and necromancer
// towers.
func drawTroop(dst *ebiten.Image, tr *protocol.Troop, nowMs int64) {
	x, y := float32(tr.X), float32(tr.Y)
	step := float32(1.5 * math.Sin(float64(nowMs)/130+float64(tr.X)))

	switch tr.Type {
	case "skeleton":
		vector.DrawFilledCircle(dst, x, y-4+step*0.3, 4, color.NRGBA{225, 225, 215, 255}, true)
		vector.StrokeLine(dst, x, y, x, y+7, 2, color.NRGBA{225, 225, 215, 255}, true)
	default: // soldier
		vector.DrawFilledCircle(dst, x, y-4+step*0.3, 4, color.NRGBA{220, 190, 150, 255}, true)
		vector.DrawFilledRect(dst, x-3, y, 6, 8, color.NRGBA{80, 100, 160, 255}, false)
		// sword
		vector.StrokeLine(dst, x+4, y+3, x+9, y-2+step, 1.5, color.NRGBA{200, 200, 210, 255}, true)
	}
	drawHealthBar(dst, x, y-14, tr.Health, 100)
}

func darken(c color.NRGBA) color.NRGBA {
	return color.NRGBA{c.R / 2, c.G / 2, c.B / 2, c.A}
}
