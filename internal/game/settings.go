package game

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Settings is the small persisted local state: the stable player identity
// the server recognizes across sessions, plus display preferences.
type Settings struct {
	PlayerID   string `json:"playerId"`
	Name       string `json:"name"`
	Fullscreen bool   `json:"fullscreen"`
	SoundOn    bool   `json:"soundOn"`
}

func loadSettings() Settings {
	s := Settings{SoundOn: true}
	if b, err := os.ReadFile(ConfigPath("settings.json")); err == nil {
		_ = json.Unmarshal(b, &s)
	}
	if strings.TrimSpace(s.PlayerID) == "" {
		s.PlayerID = uuid.NewString()
	}
	return s
}

// Fullscreen reports the persisted display preference for main to apply.
func (g *Game) Fullscreen() bool { return g.settings.Fullscreen }

func (g *Game) saveSettings() {
	b, err := json.MarshalIndent(g.settings, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(ConfigPath("settings.json"), b, 0o644)
}
