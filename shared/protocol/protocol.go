package protocol

// Profile is the persistent per-account state the server keeps between
// matches. Match-local state (gold, score) lives in PlayerSummary instead.
type Profile struct {
	PlayerID   string         `json:"playerId"`
	Name       string         `json:"name"`
	Level      int            `json:"level"`
	XP         int            `json:"xp"`
	PerkPoints int            `json:"perkPoints"`
	Perks      map[string]int `json:"perks,omitempty"` // perkId -> bought level

	TotalGamesPlayed   int `json:"totalGamesPlayed"`
	TotalWavesSurvived int `json:"totalWavesSurvived"`
	TotalEnemiesKilled int `json:"totalEnemiesKilled"`
	HighestWave        int `json:"highestWave"`
}
