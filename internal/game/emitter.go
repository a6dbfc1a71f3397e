package game

import (
	"strings"

	"castledefenders/shared/protocol"

	"github.com/google/uuid"
)

// Action emitter: every validated decision becomes exactly one outbound
// request. Nothing is predicted locally: a tower appears and gold moves
// only when the confirmation comes back through the sync engine, so a
// rejection needs no rollback.

func (g *Game) sendLogin() {
	g.send("login", protocol.Login{
		PlayerID:   g.settings.PlayerID,
		PlayerName: g.settings.Name,
	})
}

func (g *Game) sendJoinGame() {
	g.send("joinGame", protocol.JoinGame{})
}

func (g *Game) sendStartWave() {
	g.send("startWave", protocol.StartWave{})
}

func (g *Game) sendPlaceTower(plotID int, towerType string) {
	g.send("placeTower", protocol.PlaceTower{
		PlotID:    plotID,
		TowerType: towerType,
		Nonce:     uuid.NewString(),
	})
}

func (g *Game) sendSellTower(plotID int) {
	g.send("sellTower", protocol.SellTower{PlotID: plotID, Nonce: uuid.NewString()})
}

func (g *Game) sendUpgradeTower(towerID, axis string) {
	g.send("upgradeTower", protocol.UpgradeTower{TowerID: towerID, Axis: axis, Nonce: uuid.NewString()})
}

func (g *Game) sendChat(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if len(text) > protocol.MaxChatLen {
		text = text[:protocol.MaxChatLen]
	}
	if !g.chat.AllowSend() {
		g.notices.Add("Slow down, chat is rate limited")
		return
	}
	g.send("chat", protocol.Chat{Message: text})
}

func (g *Game) sendBuyPerk(perkID string) {
	g.send("buyPerk", protocol.BuyPerk{PerkID: perkID})
}
