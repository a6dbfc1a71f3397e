package protocol

import "encoding/json"

// Envelope
type MsgEnvelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ================= C -> S =================

type Login struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

type JoinGame struct{}
type StartWave struct{}

// Mutating requests carry a nonce so the server can deduplicate replays on
// the at-least-once channel.
type PlaceTower struct {
	PlotID    int    `json:"plotId"`
	TowerType string `json:"towerType"`
	Nonce     string `json:"nonce"`
}

type SellTower struct {
	PlotID int    `json:"plotId"`
	Nonce  string `json:"nonce"`
}

type UpgradeTower struct {
	TowerID string `json:"towerId"`
	Axis    string `json:"axis"` // AxisDamage | AxisRange | AxisSpeed
	Nonce   string `json:"nonce"`
}

type Chat struct {
	Message string `json:"message"`
}

type BuyPerk struct {
	PerkID string `json:"perkId"`
}

// ================= S -> C =================

type LoginSuccess struct {
	Profile        Profile              `json:"profile"`
	TowerTypes     map[string]TowerInfo `json:"towerTypes"`
	Perks          map[string]PerkInfo  `json:"perks"`
	UnlockedTowers []string             `json:"unlockedTowers"`
	XPForNextLevel int                  `json:"xpForNextLevel"`
}

type GameJoined struct {
	GameID   string    `json:"gameId"`
	PlayerID string    `json:"playerId"`
	State    GameState `json:"state"`
	NewGame  bool      `json:"newGame"`
}

// "gameState" carries a bare GameState as its payload.

type TowerPlaced struct {
	Tower      Tower  `json:"tower"`
	PlayerID   string `json:"playerId"`
	PlayerGold int    `json:"playerGold"`
}

type TowerSold struct {
	PlotID     int    `json:"plotId"`
	PlayerID   string `json:"playerId"`
	Refund     int    `json:"refund"`
	PlayerGold int    `json:"playerGold"`
}

type TowerUpgraded struct {
	Tower      Tower  `json:"tower"` // full post-upgrade tower
	PlayerID   string `json:"playerId"`
	Axis       string `json:"axis"`
	NewLevel   int    `json:"newLevel"`
	Cost       int    `json:"cost"`
	PlayerGold int    `json:"playerGold"`
}

type WaveStarted struct {
	Wave int `json:"wave"`
}

type GameEnded struct {
	FinalWave int            `json:"finalWave"`
	Results   []PlayerResult `json:"results"`
}

type ActionFailed struct {
	Error string `json:"error"`
}

type ChatMsg struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Message    string `json:"message"`
	Ts         int64  `json:"ts,omitempty"`
}

type PlayerJoined struct {
	PlayerID    string `json:"playerId"`
	PlayerName  string `json:"playerName"`
	PlayerLevel int    `json:"playerLevel"`
}

type PlayerLeft struct {
	PlayerID string `json:"playerId"`
}

type PerkBought struct {
	PerkID          string `json:"perkId"`
	NewLevel        int    `json:"newLevel"`
	RemainingPoints int    `json:"remainingPoints"`
}

// ================= Match state =================

type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Plot is a fixed build site; Tower/Owner toggle between empty and set as
// towers are built and sold. Plots are never created or destroyed mid-match.
type Plot struct {
	ID    int     `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Tower string  `json:"tower,omitempty"` // tower id, "" when empty
	Owner string  `json:"owner,omitempty"` // player id, "" when empty
}

type AxisLevels struct {
	Damage int `json:"damage"`
	Range  int `json:"range"`
	Speed  int `json:"speed"`
}

// AxisCosts holds the gold cost of the next level per axis; nil means maxed.
type AxisCosts struct {
	Damage *int `json:"damage"`
	Range  *int `json:"range"`
	Speed  *int `json:"speed"`
}

type Tower struct {
	ID           string     `json:"id"`
	Type         string     `json:"type"`
	X            float64    `json:"x"`
	Y            float64    `json:"y"`
	PlotID       int        `json:"plotId"`
	OwnerID      string     `json:"ownerId"`
	OwnerName    string     `json:"ownerName"`
	Levels       AxisLevels `json:"levels"`
	UpgradeCosts AxisCosts  `json:"upgradeCosts"`
}

type Enemy struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Health    float64 `json:"health"`
	MaxHealth float64 `json:"maxHealth"`
	Color     string  `json:"color"`
	Size      float64 `json:"size"`
	Slowed    bool    `json:"slowed"`
	Stunned   bool    `json:"stunned"`
	Burning   bool    `json:"burning"`
}

type Projectile struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	TargetID string  `json:"targetId"`
	Type     string  `json:"type"`
	Color    string  `json:"color"`
}

type Troop struct {
	ID      string  `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Health  float64 `json:"health"`
	Type    string  `json:"type"` // soldier | skeleton
	OwnerID string  `json:"ownerId,omitempty"`
}

type PlayerSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Gold  int    `json:"gold"`
	Score int    `json:"score"`
	Level int    `json:"level"`
}

// GameState is the periodic full snapshot. It is always authoritative as a
// base: applying it replaces every entity collection wholesale.
type GameState struct {
	ID              string          `json:"id"`
	Wave            int             `json:"wave"`
	CastleHealth    int             `json:"castleHealth"`
	MaxCastleHealth int             `json:"maxCastleHealth"`
	State           string          `json:"state"` // waiting | playing | ended
	WaveInProgress  bool            `json:"waveInProgress"`
	Players         []PlayerSummary `json:"players"`
	Towers          []Tower         `json:"towers"`
	Enemies         []Enemy         `json:"enemies"`
	Projectiles     []Projectile    `json:"projectiles"`
	Troops          []Troop         `json:"troops"`
	Plots           []Plot          `json:"plots"`
	Path            []Vec2          `json:"path"`
}

type PlayerResult struct {
	PlayerID      string `json:"playerId"`
	PlayerName    string `json:"playerName"`
	XPEarned      int    `json:"xpEarned"`
	NewLevel      int    `json:"newLevel"`
	LevelsGained  int    `json:"levelsGained"`
	PerkPoints    int    `json:"perkPoints"`
	EnemiesKilled int    `json:"enemiesKilled"`
	DamageDealt   int    `json:"damageDealt"`
	TowersBuilt   int    `json:"towersBuilt"`
}
