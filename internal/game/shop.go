package game

import (
	"fmt"
	"image/color"

	"castledefenders/shared/protocol"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// drawShopBar lays out one button per catalog tower along the bottom strip
// and records the hit rects handleShopClick resolves against. Lock and
// affordability states come from the profile and the gold shadow, never from
// a guess about pending actions.
func (g *Game) drawShopBar(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, 0, protocol.WorldH, protocol.ScreenW, shopBarH, color.NRGBA{26, 28, 38, 255}, false)
	vector.StrokeLine(dst, 0, protocol.WorldH, protocol.ScreenW, protocol.WorldH, 2, color.NRGBA{60, 62, 80, 255}, false)

	if len(g.shopOrder) == 0 {
		text.Draw(dst, "Shop catalog not loaded yet", basicfont.Face7x13, pad, protocol.WorldH+30, color.NRGBA{170, 170, 170, 255})
		return
	}

	bw := (protocol.ScreenW - pad*2) / len(g.shopOrder)
	if bw > 90 {
		bw = 90
	}
	const bh = shopBarH - pad*2

	for i, id := range g.shopOrder {
		info := g.catalog[id]
		r := rect{x: pad + i*bw, y: protocol.WorldH + pad, w: bw - 4, h: bh}
		g.shopRects[i] = r

		locked := !g.unlocked[id]
		affordable := info.Cost <= g.store.MyGold
		selected := g.sel.TowerType == id

		bg := color.NRGBA{44, 48, 62, 255}
		switch {
		case selected:
			bg = color.NRGBA{70, 90, 60, 255}
		case locked:
			bg = color.NRGBA{34, 34, 40, 255}
		}
		vector.DrawFilledRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), bg, false)
		border := color.NRGBA{80, 84, 104, 255}
		if selected {
			border = color.NRGBA{180, 230, 140, 255}
		}
		vector.StrokeRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1.5, border, false)

		// color swatch from the catalog
		vector.DrawFilledRect(dst, float32(r.x+6), float32(r.y+8), 14, 14, hexColor(info.Color), false)

		nameCol := color.NRGBA{220, 220, 230, 255}
		costCol := color.NRGBA{255, 230, 140, 255}
		if locked {
			nameCol = color.NRGBA{120, 120, 130, 255}
			costCol = nameCol
		} else if !affordable {
			costCol = color.NRGBA{230, 110, 100, 255}
		}
		text.Draw(dst, truncate(info.Name, (r.w-10)/7), basicfont.Face7x13, r.x+6, r.y+40, nameCol)
		if locked {
			text.Draw(dst, fmt.Sprintf("Lv %d", info.UnlockLevel), basicfont.Face7x13, r.x+6, r.y+58, costCol)
		} else {
			text.Draw(dst, fmt.Sprintf("%dg", info.Cost), basicfont.Face7x13, r.x+6, r.y+58, costCol)
		}
	}
}

// handleShopClick arms a tower type, or re-clicks the armed one to disarm.
// Returns true when the click landed in the shop strip at all, so a miss
// between buttons never falls through to the world.
func (g *Game) handleShopClick(mx, my int) bool {
	if my < protocol.WorldH {
		return false
	}
	for i, r := range g.shopRects {
		if !r.hit(mx, my) {
			continue
		}
		id := g.shopOrder[i]
		if g.sel.TowerType == id {
			g.sel.Reset()
			return true
		}
		if ok, notice := g.sel.ChooseType(g.store, g.catalog[id], g.unlocked[id]); !ok {
			g.notices.Add(notice)
		}
		return true
	}
	return true
}

// drawSelectedPanel shows the inspection panel for the selected owned tower:
// the three upgrade axes with the server-quoted next cost, the sell estimate
// and cancel. Nothing renders when no tower is selected.
func (g *Game) drawSelectedPanel(dst *ebiten.Image) {
	t := g.sel.SelectedTower(g.store)
	if t == nil {
		return
	}
	info := g.catalog[t.Type]

	px := protocol.ScreenW - panelW
	py := topBarH
	ph := protocol.WorldH - topBarH
	vector.DrawFilledRect(dst, float32(px), float32(py), panelW, float32(ph), color.NRGBA{26, 28, 38, 235}, false)
	vector.StrokeLine(dst, float32(px), float32(py), float32(px), float32(protocol.WorldH), 2, color.NRGBA{60, 62, 80, 255}, false)

	y := py + 24
	text.Draw(dst, info.Name, basicfont.Face7x13, px+pad, y, color.NRGBA{255, 230, 140, 255})
	y += 18
	text.Draw(dst, fmt.Sprintf("by %s", t.OwnerName), basicfont.Face7x13, px+pad, y, color.NRGBA{170, 170, 180, 255})
	y += 26

	axes := [3]struct {
		label string
		axis  string
		level int
		cost  *int
	}{
		{"Damage", protocol.AxisDamage, t.Levels.Damage, t.UpgradeCosts.Damage},
		{"Range", protocol.AxisRange, t.Levels.Range, t.UpgradeCosts.Range},
		{"Speed", protocol.AxisSpeed, t.Levels.Speed, t.UpgradeCosts.Speed},
	}
	for i, ax := range axes {
		text.Draw(dst, fmt.Sprintf("%s L%d", ax.label, ax.level), basicfont.Face7x13, px+pad, y+15, color.White)

		r := rect{x: px + panelW - 70 - pad, y: y, w: 70, h: 22}
		g.upgradeBtns[i] = r
		var label string
		var bg color.NRGBA
		switch {
		case ax.cost == nil:
			label, bg = "MAX", color.NRGBA{50, 52, 60, 255}
		case *ax.cost > g.store.MyGold:
			label, bg = fmt.Sprintf("%dg", *ax.cost), color.NRGBA{80, 52, 50, 255}
		default:
			label, bg = fmt.Sprintf("%dg", *ax.cost), color.NRGBA{60, 90, 60, 255}
		}
		vector.DrawFilledRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), bg, false)
		text.Draw(dst, label, basicfont.Face7x13, r.x+10, r.y+15, color.White)
		y += 32
	}

	y += 10
	refund := int(float64(info.Cost) * protocol.SellRefundRate)
	g.sellBtn = rect{x: px + pad, y: y, w: panelW - pad*2, h: btnH}
	vector.DrawFilledRect(dst, float32(g.sellBtn.x), float32(g.sellBtn.y), float32(g.sellBtn.w), btnH, color.NRGBA{110, 70, 60, 255}, false)
	text.Draw(dst, fmt.Sprintf("Sell (+%dg)", refund), basicfont.Face7x13, g.sellBtn.x+12, g.sellBtn.y+20, color.White)

	y += btnH + pad
	g.cancelBtn = rect{x: px + pad, y: y, w: panelW - pad*2, h: btnH}
	vector.DrawFilledRect(dst, float32(g.cancelBtn.x), float32(g.cancelBtn.y), float32(g.cancelBtn.w), btnH, color.NRGBA{55, 58, 72, 255}, false)
	text.Draw(dst, "Cancel", basicfont.Face7x13, g.cancelBtn.x+12, g.cancelBtn.y+20, color.White)
}

// handlePanelClick resolves clicks while the tower panel is open. Any click
// inside the panel is swallowed so it cannot double as a world click.
func (g *Game) handlePanelClick(mx, my int) bool {
	t := g.sel.SelectedTower(g.store)
	if t == nil {
		return false
	}
	px := protocol.ScreenW - panelW
	if mx < px || my < topBarH || my >= protocol.WorldH {
		return false
	}

	axes := [3]struct {
		axis string
		cost *int
	}{
		{protocol.AxisDamage, t.UpgradeCosts.Damage},
		{protocol.AxisRange, t.UpgradeCosts.Range},
		{protocol.AxisSpeed, t.UpgradeCosts.Speed},
	}
	for i, ax := range axes {
		if !g.upgradeBtns[i].hit(mx, my) {
			continue
		}
		switch {
		case ax.cost == nil:
			g.notices.Add("That upgrade is maxed out")
		case *ax.cost > g.store.MyGold:
			g.notices.Add(fmt.Sprintf("Not enough gold (%d needed)", *ax.cost))
		default:
			g.sendUpgradeTower(t.ID, ax.axis)
		}
		return true
	}
	if g.sellBtn.hit(mx, my) {
		g.sendSellTower(t.PlotID)
		g.sel.Reset()
		return true
	}
	if g.cancelBtn.hit(mx, my) {
		g.sel.Reset()
		return true
	}
	return true
}

func truncate(s string, max int) string {
	if max < 3 || len(s) <= max {
		return s
	}
	return s[:max-2] + ".."
}
