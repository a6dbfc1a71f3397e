package game

import (
	"fmt"
	"image/color"
	"sort"

	"castledefenders/shared/protocol"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Perk overlay: profile progress plus one row per perk. Buying is a plain
// passthrough; levels and points only change when perkBought comes back.

func (g *Game) rebuildPerkOrder() {
	g.perkOrder = g.perkOrder[:0]
	for id := range g.perkDefs {
		g.perkOrder = append(g.perkOrder, id)
	}
	sort.Strings(g.perkOrder)
	g.perkRects = make([]rect, len(g.perkOrder))
}

func (g *Game) drawPerksOverlay(dst *ebiten.Image) {
	w, h := 520, 110+len(g.perkOrder)*26
	x := (protocol.ScreenW - w) / 2
	y := (protocol.ScreenH - h) / 2
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), color.NRGBA{28, 28, 42, 245}, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 2, color.NRGBA{110, 100, 70, 255}, false)

	p := g.profile
	text.Draw(dst, fmt.Sprintf("%s  (level %d)", p.Name, p.Level), basicfont.Face7x13, x+16, y+24, color.NRGBA{255, 230, 140, 255})
	text.Draw(dst, fmt.Sprintf("XP %d / %d", p.XP, g.xpForNext), basicfont.Face7x13, x+16, y+42, color.White)
	text.Draw(dst, fmt.Sprintf("Perk points: %d", p.PerkPoints), basicfont.Face7x13, x+16, y+60, color.NRGBA{150, 220, 150, 255})
	text.Draw(dst, "[P] close", basicfont.Face7x13, x+w-80, y+24, color.NRGBA{160, 160, 160, 255})

	yy := y + 88
	for i, id := range g.perkOrder {
		def := g.perkDefs[id]
		lvl := p.Perks[id]
		maxed := def.MaxLevel > 0 && lvl >= def.MaxLevel

		text.Draw(dst, fmt.Sprintf("%s  %d/%d", def.Name, lvl, def.MaxLevel), basicfont.Face7x13, x+16, yy+14, color.White)

		r := rect{x: x + w - 66, y: yy, w: 50, h: 20}
		g.perkRects[i] = r
		label := "+1"
		bg := color.NRGBA{60, 90, 60, 255}
		switch {
		case maxed:
			label, bg = "MAX", color.NRGBA{50, 52, 60, 255}
		case p.PerkPoints <= 0:
			bg = color.NRGBA{50, 52, 60, 255}
		}
		vector.DrawFilledRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), bg, false)
		text.Draw(dst, label, basicfont.Face7x13, r.x+14, r.y+14, color.White)
		yy += 26
	}
}

// handlePerksClick resolves clicks while the overlay is open. Every click is
// swallowed so the world underneath cannot react.
func (g *Game) handlePerksClick(mx, my int) {
	for i, r := range g.perkRects {
		if !r.hit(mx, my) {
			continue
		}
		id := g.perkOrder[i]
		def := g.perkDefs[id]
		lvl := g.profile.Perks[id]
		switch {
		case def.MaxLevel > 0 && lvl >= def.MaxLevel:
			g.notices.Add(fmt.Sprintf("%s is maxed", def.Name))
		case g.profile.PerkPoints <= 0:
			g.notices.Add("No perk points to spend")
		default:
			g.sendBuyPerk(id)
		}
		return
	}
}
