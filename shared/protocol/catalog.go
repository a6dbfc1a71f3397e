package protocol

// Static catalog data delivered by loginSuccess. The client never hardcodes
// these tables; it renders whatever the server sends.

type TowerInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Cost        int    `json:"cost"`
	Damage      int    `json:"damage"`
	Range       int    `json:"range"`
	FireRate    int    `json:"fireRate"` // ms between shots
	Description string `json:"description"`
	UnlockLevel int    `json:"unlockLevel"`
	Color       string `json:"color"`

	// Type-specific extras, zero when absent.
	SplashRadius int     `json:"splashRadius,omitempty"`
	ChainCount   int     `json:"chainCount,omitempty"`
	SlowAmount   float64 `json:"slowAmount,omitempty"`
	GoldPerTick  int     `json:"goldPerTick,omitempty"`
	TroopCount   int     `json:"troopCount,omitempty"`
}

type EnemyInfo struct {
	Health int     `json:"health"`
	Speed  float64 `json:"speed"`
	Reward int     `json:"reward"`
	Color  string  `json:"color"`
	Size   int     `json:"size"`
}

type PerkInfo struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	MaxLevel    int     `json:"maxLevel"`
	PerLevel    float64 `json:"perLevel"`
}
