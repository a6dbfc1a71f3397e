package game

import (
	"fmt"
	"image/color"
	"time"

	"castledefenders/shared/protocol"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// New creates the client. It starts on the login screen; the connection is
// dialed when the player commits a name.
func New() *Game {
	g := &Game{
		store:   NewStore(),
		notices: NewNoticeBoard(),
		chat:    NewChatPanel(),

		scr:      screenLogin,
		settings: loadSettings(),

		connCh: make(chan connResult, 4),
		connSt: stateIdle,
	}
	g.sel = NewSelection()
	g.nameInput = g.settings.Name
	return g
}

func (g *Game) Update() error {
	if g.connSt == stateFailed && time.Now().After(g.connRetryAt) && !g.connectInFlight {
		g.connRetryAt = time.Now().Add(2 * time.Second)
		g.retryConnect()
	}

	select {
	case res := <-g.connCh:
		if res.err != nil {
			g.connSt = stateFailed
			g.connErrMsg = res.err.Error()
			g.connRetryAt = time.Now().Add(2 * time.Second)
			break
		}
		g.net = res.n
		g.connSt = stateConnected
		g.connErrMsg = ""
		// login -> loginSuccess -> joinGame -> gameJoined rebuilds the store
		// from scratch, which is the whole of the reconnect story.
		g.sendLogin()
	default:
	}

drain:
	for g.net != nil {
		select {
		case env, ok := <-g.net.inCh:
			if !ok {
				g.onDisconnected()
				break drain
			}
			g.handle(env)
		default:
			break drain
		}
	}

	g.notices.Update()

	switch g.scr {
	case screenLogin:
		g.updateLogin()
	case screenPlay:
		g.updatePlay()
	}
	return nil
}

// ---------- Play ----------

func (g *Game) updatePlay() {
	// Transport loss suspends all interaction until the rejoin completes.
	if g.connSt != stateConnected || g.net == nil || g.net.IsClosed() {
		return
	}

	if msg, ok := g.chat.Update(); ok {
		g.sendChat(msg)
	}
	if g.chat.Focused() {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.perksOpen {
			g.perksOpen = false
		} else {
			g.sel.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.perksOpen = !g.perksOpen
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()

	if g.perksOpen {
		g.handlePerksClick(mx, my)
		return
	}
	if g.ended {
		if g.continueBtn.hit(mx, my) {
			g.ended = false
			g.endResults = nil
			g.store.Reset()
			g.sel.Reset()
			g.sendJoinGame()
		}
		return
	}

	if g.startWaveBtn.hit(mx, my) {
		if g.store.WaveInProgress {
			g.notices.Add("Wave already in progress")
		} else {
			g.sendStartWave()
		}
		return
	}
	if g.handleShopClick(mx, my) {
		return
	}
	if g.handlePanelClick(mx, my) {
		return
	}
	if my >= topBarH && my < protocol.WorldH {
		p := ToWorld(mx, my, protocol.ScreenW, protocol.ScreenH)
		res := g.sel.Click(g.store, p)
		if res.Place {
			g.sendPlaceTower(res.PlotID, res.TowerType)
		}
		g.notices.Add(res.Notice)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.scr == screenLogin {
		g.drawLogin(screen)
		return
	}

	nowMs := time.Now().UnixMilli()

	if !g.store.Ready() {
		// No snapshot yet: nothing to render, skip the frame body.
		screen.Fill(color.NRGBA{24, 26, 34, 255})
		text.Draw(screen, "Waiting for match state...", basicfont.Face7x13,
			protocol.ScreenW/2-90, protocol.ScreenH/2, color.White)
	} else {
		g.drawWorld(screen, nowMs)
		g.drawTopBar(screen)
		g.drawShopBar(screen)
		g.drawSelectedPanel(screen)
		g.chat.Draw(screen)
	}

	if g.perksOpen && !g.ended {
		g.drawPerksOverlay(screen)
	}

	g.notices.Draw(screen)

	if g.ended {
		g.drawEndOverlay(screen)
	}

	if g.connSt != stateConnected {
		vector.DrawFilledRect(screen, 0, 0, protocol.ScreenW, protocol.ScreenH, color.NRGBA{0, 0, 0, 120}, false)
	}
}

func (g *Game) Layout(w, h int) (int, int) { return protocol.ScreenW, protocol.ScreenH }

func (g *Game) drawEndOverlay(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, 0, 0, protocol.ScreenW, protocol.ScreenH, color.NRGBA{0, 0, 0, 150}, false)

	w, h := 420, 120+len(g.endResults)*56
	x := (protocol.ScreenW - w) / 2
	y := (protocol.ScreenH - h) / 2
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), color.NRGBA{30, 30, 45, 240}, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 2, color.NRGBA{110, 100, 70, 255}, false)

	text.Draw(dst, "The castle has fallen", basicfont.Face7x13, x+20, y+28, color.NRGBA{255, 150, 150, 255})
	text.Draw(dst, fmt.Sprintf("Survived to wave %d", g.endFinalWave), basicfont.Face7x13, x+20, y+46, color.White)

	yy := y + 74
	for _, r := range g.endResults {
		text.Draw(dst, fmt.Sprintf("%s  +%d XP  (level %d)", r.PlayerName, r.XPEarned, r.NewLevel),
			basicfont.Face7x13, x+20, yy, color.NRGBA{230, 220, 180, 255})
		text.Draw(dst, fmt.Sprintf("%d kills, %d damage, %d towers", r.EnemiesKilled, r.DamageDealt, r.TowersBuilt),
			basicfont.Face7x13, x+32, yy+16, color.NRGBA{170, 170, 170, 255})
		yy += 56
	}

	g.continueBtn = rect{x: x + (w-btnW)/2, y: y + h - 44, w: btnW, h: btnH}
	vector.DrawFilledRect(dst, float32(g.continueBtn.x), float32(g.continueBtn.y), btnW, btnH, color.NRGBA{70, 110, 70, 255}, false)
	text.Draw(dst, "Play again", basicfont.Face7x13, g.continueBtn.x+28, g.continueBtn.y+20, color.White)
}
