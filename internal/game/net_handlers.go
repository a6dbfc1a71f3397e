package game

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"castledefenders/shared/protocol"
)

// handle is the sync engine: one inbound envelope in, store/UI mutations
// out. Full snapshots replace entity collections wholesale; action
// confirmations patch exactly the fields they name. Whichever arrived last
// wins for the fields it carries.
func (g *Game) handle(env Msg) {
	switch env.Type {
	case "loginSuccess":
		var m protocol.LoginSuccess
		json.Unmarshal(env.Data, &m)
		g.profile = m.Profile
		g.catalog = m.TowerTypes
		g.perkDefs = m.Perks
		g.xpForNext = m.XPForNextLevel
		g.unlocked = make(map[string]bool, len(m.UnlockedTowers))
		for _, id := range m.UnlockedTowers {
			g.unlocked[id] = true
		}
		g.rebuildShopOrder()
		g.rebuildPerkOrder()

		if strings.TrimSpace(m.Profile.Name) != "" {
			g.settings.Name = m.Profile.Name
			g.saveSettings()
		}
		g.sendJoinGame()

	case "gameJoined":
		var m protocol.GameJoined
		json.Unmarshal(env.Data, &m)
		g.store.Reset()
		g.store.MyID = m.PlayerID
		g.store.ApplyFull(m.State)
		g.sel.Reset()
		g.ended = false
		g.endResults = nil
		g.bgGameID = "" // force a fresh terrain buffer for this match
		g.notices.ClearSticky()
		g.notices.Add(fmt.Sprintf("Joined game %s", m.GameID))
		g.scr = screenPlay

	case "gameState":
		var s protocol.GameState
		json.Unmarshal(env.Data, &s)
		g.store.ApplyFull(s)

	case "towerPlaced":
		var m protocol.TowerPlaced
		json.Unmarshal(env.Data, &m)
		g.store.ApplyTowerPlaced(m)

	case "towerSold":
		var m protocol.TowerSold
		json.Unmarshal(env.Data, &m)
		g.store.ApplyTowerSold(m)
		// Selling out from under a selection would leave a dangling panel.
		if g.sel.PlotID == m.PlotID {
			g.sel.Reset()
		}
		if m.PlayerID == g.store.MyID {
			g.notices.Add(fmt.Sprintf("Sold for %d gold", m.Refund))
		}

	case "towerUpgraded":
		var m protocol.TowerUpgraded
		json.Unmarshal(env.Data, &m)
		g.store.ApplyTowerUpgraded(m)

	case "waveStarted":
		var m protocol.WaveStarted
		json.Unmarshal(env.Data, &m)
		g.store.SetWave(m.Wave)
		g.notices.Add(fmt.Sprintf("Wave %d incoming!", m.Wave))

	case "gameEnded":
		var m protocol.GameEnded
		json.Unmarshal(env.Data, &m)
		g.ended = true
		g.endFinalWave = m.FinalWave
		g.endResults = m.Results
		g.sel.Reset()

	case "actionFailed":
		var m protocol.ActionFailed
		json.Unmarshal(env.Data, &m)
		// Nothing was predicted, so nothing to roll back.
		g.notices.Add(m.Error)

	case "chat":
		var m protocol.ChatMsg
		json.Unmarshal(env.Data, &m)
		g.chat.Append(m)

	case "playerJoined":
		var m protocol.PlayerJoined
		json.Unmarshal(env.Data, &m)
		g.store.AddPlayer(m.PlayerID, m.PlayerName, m.PlayerLevel)
		g.notices.Add(fmt.Sprintf("%s joined the defense", m.PlayerName))

	case "playerLeft":
		var m protocol.PlayerLeft
		json.Unmarshal(env.Data, &m)
		if name := g.store.PlayerName(m.PlayerID); name != "" {
			g.notices.Add(fmt.Sprintf("%s left", name))
		}
		// Their towers stay; OwnerName on the tower keeps them attributable.
		g.store.RemovePlayer(m.PlayerID)

	case "perkBought":
		var m protocol.PerkBought
		json.Unmarshal(env.Data, &m)
		if g.profile.Perks == nil {
			g.profile.Perks = map[string]int{}
		}
		g.profile.Perks[m.PerkID] = m.NewLevel
		g.profile.PerkPoints = m.RemainingPoints
		if def, ok := g.perkDefs[m.PerkID]; ok {
			g.notices.Add(fmt.Sprintf("%s is now level %d", def.Name, m.NewLevel))
		}

	case "error":
		var m protocol.ActionFailed
		json.Unmarshal(env.Data, &m)
		log.Println("server error:", m.Error)
		g.loginMsg = m.Error

	default:
		log.Printf("unhandled message type %q", env.Type)
	}
}

func (g *Game) rebuildShopOrder() {
	g.shopOrder = g.shopOrder[:0]
	for id := range g.catalog {
		g.shopOrder = append(g.shopOrder, id)
	}
	sort.Slice(g.shopOrder, func(i, j int) bool {
		a, b := g.catalog[g.shopOrder[i]], g.catalog[g.shopOrder[j]]
		if a.Cost != b.Cost {
			return a.Cost < b.Cost
		}
		return a.ID < b.ID
	})
	g.shopRects = make([]rect, len(g.shopOrder))
}
