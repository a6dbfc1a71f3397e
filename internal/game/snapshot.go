package game

import (
	"castledefenders/shared/protocol"
)

// Store is the single local mirror of shared match state. It is mutated only
// by the sync engine (net_handlers.go); the render loop and the selection
// machine read it synchronously on the game thread.
//
// Consistency model: a full snapshot replaces every entity collection
// wholesale, a targeted patch mutates exactly the fields it names, and the
// most recently received message of either kind wins for the fields it
// carries. Transient inconsistency self-heals on the next full snapshot.
type Store struct {
	GameID string
	MyID   string

	CastleHealth    int
	MaxCastleHealth int
	Wave            int
	WaveInProgress  bool

	Path        []protocol.Vec2
	Plots       []protocol.Plot
	Towers      map[string]*protocol.Tower
	Enemies     []protocol.Enemy
	Projectiles []protocol.Projectile
	Troops      []protocol.Troop
	Players     []protocol.PlayerSummary

	// MyGold shadows the local player's gold. It is written by every message
	// that names the local player's gold and is never derived from anything
	// else; the shop reads it exclusively so affordability never flickers
	// when a broadcast and a delta disagree by one tick.
	MyGold int

	populated bool
}

func NewStore() *Store {
	return &Store{Towers: map[string]*protocol.Tower{}}
}

// Ready reports whether at least one snapshot has been applied. The render
// loop skips its frame until then.
func (st *Store) Ready() bool { return st != nil && st.populated }

func (st *Store) Reset() {
	*st = Store{Towers: map[string]*protocol.Tower{}}
}

// ApplyFull replaces the store with a periodic snapshot. Enemies,
// projectiles and troops have no delta channel, so they only ever change
// here. Applying the same snapshot twice is a no-op by construction.
func (st *Store) ApplyFull(s protocol.GameState) {
	st.GameID = s.ID
	st.CastleHealth = s.CastleHealth
	st.MaxCastleHealth = s.MaxCastleHealth
	st.Wave = s.Wave
	st.WaveInProgress = s.WaveInProgress

	st.Path = s.Path
	st.Plots = s.Plots
	st.Enemies = s.Enemies
	st.Projectiles = s.Projectiles
	st.Troops = s.Troops
	st.Players = s.Players

	st.Towers = make(map[string]*protocol.Tower, len(s.Towers))
	for i := range s.Towers {
		t := s.Towers[i]
		st.Towers[t.ID] = &t
	}

	if p := st.playerByID(st.MyID); p != nil {
		st.MyGold = p.Gold
	}
	st.populated = true
}

// ApplyTowerPlaced merges a placement confirmation. Only the named plot,
// tower and player gold change; everything else stays as-is, even if the
// last full snapshot predates this placement.
func (st *Store) ApplyTowerPlaced(m protocol.TowerPlaced) {
	t := m.Tower
	st.Towers[t.ID] = &t
	if pl := st.plotByID(t.PlotID); pl != nil {
		pl.Tower = t.ID
		pl.Owner = t.OwnerID
	}
	st.setPlayerGold(m.PlayerID, m.PlayerGold)
}

// ApplyTowerSold clears the named plot and drops its tower. Safe to apply
// twice: the second application finds the plot already empty.
func (st *Store) ApplyTowerSold(m protocol.TowerSold) {
	if pl := st.plotByID(m.PlotID); pl != nil {
		if pl.Tower != "" {
			delete(st.Towers, pl.Tower)
		}
		pl.Tower = ""
		pl.Owner = ""
	}
	st.setPlayerGold(m.PlayerID, m.PlayerGold)
}

// ApplyTowerUpgraded swaps in the full post-upgrade tower the server sent.
func (st *Store) ApplyTowerUpgraded(m protocol.TowerUpgraded) {
	t := m.Tower
	st.Towers[t.ID] = &t
	st.setPlayerGold(m.PlayerID, m.PlayerGold)
}

func (st *Store) SetWave(n int) {
	st.Wave = n
	st.WaveInProgress = true
}

func (st *Store) AddPlayer(id, name string, level int) {
	if st.playerByID(id) != nil {
		return
	}
	st.Players = append(st.Players, protocol.PlayerSummary{ID: id, Name: name, Level: level})
}

func (st *Store) RemovePlayer(id string) {
	for i := range st.Players {
		if st.Players[i].ID == id {
			st.Players = append(st.Players[:i], st.Players[i+1:]...)
			return
		}
	}
}

// ---- reads ----

func (st *Store) TowerOnPlot(p *protocol.Plot) *protocol.Tower {
	if p == nil || p.Tower == "" {
		return nil
	}
	return st.Towers[p.Tower] // nil for a stale ref; callers must tolerate
}

func (st *Store) EnemyByID(id string) *protocol.Enemy {
	for i := range st.Enemies {
		if st.Enemies[i].ID == id {
			return &st.Enemies[i]
		}
	}
	return nil
}

func (st *Store) PlayerName(id string) string {
	if p := st.playerByID(id); p != nil {
		return p.Name
	}
	return ""
}

func (st *Store) plotByID(id int) *protocol.Plot {
	for i := range st.Plots {
		if st.Plots[i].ID == id {
			return &st.Plots[i]
		}
	}
	return nil
}

func (st *Store) playerByID(id string) *protocol.PlayerSummary {
	if id == "" {
		return nil
	}
	for i := range st.Players {
		if st.Players[i].ID == id {
			return &st.Players[i]
		}
	}
	return nil
}

func (st *Store) setPlayerGold(id string, gold int) {
	if p := st.playerByID(id); p != nil {
		p.Gold = gold
	}
	if id == st.MyID {
		st.MyGold = gold
	}
}
