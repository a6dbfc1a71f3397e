package game

import (
	"time"

	"castledefenders/shared/protocol"

	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	// connection/boot UI
	connCh          chan connResult
	connSt          connState
	connErrMsg      string
	connRetryAt     time.Time
	connectInFlight bool

	net *Net

	// The two owned state instances everything else reads from. The store is
	// written only by the sync engine, the selection only by pointer/shop
	// input; the render loop reads both every frame.
	store *Store
	sel   *Selection

	notices *NoticeBoard
	chat    *ChatPanel

	scr       screen
	settings  Settings
	nameInput string
	loginMsg  string

	// catalog data from loginSuccess
	profile   protocol.Profile
	catalog   map[string]protocol.TowerInfo
	perkDefs  map[string]protocol.PerkInfo
	unlocked  map[string]bool
	xpForNext int
	shopOrder []string // catalog ids, cheap first, for stable button layout

	// terrain buffer, regenerated once per match join
	background *ebiten.Image
	bgGameID   string

	// HUD hit rects, rebuilt by each draw pass that shows them
	startWaveBtn rect
	shopRects    []rect // parallel to shopOrder
	sellBtn      rect
	cancelBtn    rect
	upgradeBtns  [3]rect // damage, range, speed

	// perk overlay
	perksOpen bool
	perkOrder []string
	perkRects []rect

	// match end overlay
	ended        bool
	endFinalWave int
	endResults   []protocol.PlayerResult
	continueBtn  rect
}
