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

// drawTopBar shows the shared castle bar, wave status and the roster, plus
// the local player's gold and the start-wave button. It also records the
// button's hit rect for updatePlay.
func (g *Game) drawTopBar(dst *ebiten.Image) {
	st := g.store

	vector.DrawFilledRect(dst, 0, 0, protocol.ScreenW, topBarH, color.NRGBA{20, 22, 30, 230}, false)

	// castle health
	const hbX, hbW, hbH = pad, 180, 14
	frac := 0.0
	if st.MaxCastleHealth > 0 {
		frac = float64(st.CastleHealth) / float64(st.MaxCastleHealth)
		if frac < 0 {
			frac = 0
		}
	}
	fill := color.NRGBA{90, 200, 90, 255}
	if frac < 0.25 {
		fill = color.NRGBA{220, 70, 60, 255}
	} else if frac < 0.5 {
		fill = color.NRGBA{230, 190, 60, 255}
	}
	vector.DrawFilledRect(dst, hbX, (topBarH-hbH)/2, hbW, hbH, color.NRGBA{40, 40, 50, 255}, false)
	vector.DrawFilledRect(dst, hbX, (topBarH-hbH)/2, hbW*float32(frac), hbH, fill, false)
	vector.StrokeRect(dst, hbX, (topBarH-hbH)/2, hbW, hbH, 1, color.NRGBA{90, 90, 110, 255}, false)
	text.Draw(dst, fmt.Sprintf("Castle %d/%d", st.CastleHealth, st.MaxCastleHealth),
		basicfont.Face7x13, hbX+hbW+pad, 20, color.White)

	// wave
	waveTxt := fmt.Sprintf("Wave %d", st.Wave)
	if st.WaveInProgress {
		waveTxt += " (in progress)"
	}
	text.Draw(dst, waveTxt, basicfont.Face7x13, 330, 20, color.NRGBA{220, 220, 240, 255})

	// gold, shop affordability reads the same value
	vector.DrawFilledCircle(dst, 480, topBarH/2, 6, color.NRGBA{255, 215, 60, 255}, true)
	vector.StrokeCircle(dst, 480, topBarH/2, 6, 1, color.NRGBA{170, 130, 30, 255}, true)
	text.Draw(dst, fmt.Sprintf("%d", st.MyGold), basicfont.Face7x13, 492, 20, color.NRGBA{255, 230, 140, 255})

	// roster, right-aligned before the button
	x := 560
	for _, p := range st.Players {
		label := fmt.Sprintf("%s L%d", p.Name, p.Level)
		col := color.NRGBA{180, 180, 200, 255}
		if p.ID == st.MyID {
			col = color.NRGBA{150, 220, 150, 255}
		}
		text.Draw(dst, label, basicfont.Face7x13, x, 20, col)
		x += 7*len(label) + 14
		if x > protocol.ScreenW-btnW-140 {
			break
		}
	}

	// start-wave button
	g.startWaveBtn = rect{x: protocol.ScreenW - btnW - pad, y: (topBarH - 24) / 2, w: btnW, h: 24}
	bg := color.NRGBA{70, 110, 70, 255}
	label := "Start wave"
	if st.WaveInProgress {
		bg = color.NRGBA{60, 62, 70, 255}
		label = "Wave running"
	}
	vector.DrawFilledRect(dst, float32(g.startWaveBtn.x), float32(g.startWaveBtn.y),
		float32(g.startWaveBtn.w), float32(g.startWaveBtn.h), bg, false)
	text.Draw(dst, label, basicfont.Face7x13, g.startWaveBtn.x+14, g.startWaveBtn.y+16, color.White)
}
