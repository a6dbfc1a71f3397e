package game

import (
	"image/color"
	"strings"

	"castledefenders/shared/protocol"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

func (g *Game) updateLogin() {
	for _, r := range ebiten.AppendInputChars(nil) {
		if r >= 32 && len(g.nameInput) < 20 {
			g.nameInput += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(g.nameInput) > 0 {
		rs := []rune(g.nameInput)
		g.nameInput = string(rs[:len(rs)-1])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		name := strings.TrimSpace(g.nameInput)
		if name == "" {
			name = "Defender"
		}
		g.settings.Name = name
		g.saveSettings()
		g.loginMsg = ""
		if g.connSt == stateConnected && g.net != nil && !g.net.IsClosed() {
			g.sendLogin()
		} else {
			g.retryConnect()
		}
	}
}

func (g *Game) drawLogin(dst *ebiten.Image) {
	dst.Fill(color.NRGBA{24, 26, 34, 255})
	cx := protocol.ScreenW / 2

	text.Draw(dst, "CASTLE DEFENDERS", basicfont.Face7x13, cx-66, 200, color.NRGBA{255, 220, 120, 255})
	text.Draw(dst, "Enter your name, then press Enter:", basicfont.Face7x13, cx-120, 260, color.White)

	vector.DrawFilledRect(dst, float32(cx-130), 276, 260, 22, color.NRGBA{40, 40, 52, 255}, false)
	vector.StrokeRect(dst, float32(cx-130), 276, 260, 22, 1, color.NRGBA{110, 110, 140, 255}, false)
	text.Draw(dst, g.nameInput+"_", basicfont.Face7x13, cx-124, 291, color.White)

	switch g.connSt {
	case stateConnecting:
		text.Draw(dst, "Connecting to server...", basicfont.Face7x13, cx-80, 330, color.NRGBA{180, 180, 200, 255})
	case stateFailed:
		text.Draw(dst, "Unable to connect, retrying...", basicfont.Face7x13, cx-100, 330, color.NRGBA{255, 120, 120, 255})
		if g.connErrMsg != "" {
			text.Draw(dst, g.connErrMsg, basicfont.Face7x13, cx-150, 348, color.NRGBA{200, 160, 160, 255})
		}
	}
	if g.loginMsg != "" {
		text.Draw(dst, g.loginMsg, basicfont.Face7x13, cx-120, 366, color.NRGBA{255, 160, 120, 255})
	}
}
