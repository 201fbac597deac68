package engine

// CombatantView is the display state shared by the player and enemies.
type CombatantView struct {
	Name     string       `json:"name"`
	HP       int          `json:"hp"`
	MaxHP    int          `json:"max_hp"`
	Block    int          `json:"block"`
	Statuses []StatusView `json:"statuses,omitempty"`
}

type PlayerView struct {
	CombatantView
	Faction   string   `json:"faction"`
	Energy    int      `json:"energy"`
	MaxEnergy int      `json:"max_energy"`
	Gold      int      `json:"gold"`
	Realm     string   `json:"realm"`
	Relics    []string `json:"relics,omitempty"`
}

type EnemyView struct {
	CombatantView
	Alive  bool       `json:"alive"`
	Intent IntentView `json:"intent"`
}

// CardView shows a hand card with the cost the player would pay right now.
type CardView struct {
	Name     string `json:"name"`
	Cost     int    `json:"cost"`
	Type     string `json:"type"`
	Desc     string `json:"desc"`
	Upgraded bool   `json:"upgraded,omitempty"`
}

// Snapshot is the read-only projection handed to the presentation layer.
type Snapshot struct {
	BattleID string      `json:"battle_id"`
	Phase    string      `json:"phase"`
	Turn     int         `json:"turn"`
	Player   PlayerView  `json:"player"`
	Enemies  []EnemyView `json:"enemies"`
	Hand     []CardView  `json:"hand"`
	Piles    PileCounts  `json:"piles"`
}

// Snapshot projects the current battle state.
func (b *Battle) Snapshot() Snapshot {
	p := b.Player
	s := Snapshot{
		BattleID: b.ID,
		Phase:    b.Phase(),
		Turn:     p.TurnCount,
		Player: PlayerView{
			CombatantView: CombatantView{Name: "player", HP: p.HP, MaxHP: p.MaxHP, Block: p.Block, Statuses: p.Status.Display()},
			Faction:       p.Faction,
			Energy:        p.Energy,
			MaxEnergy:     p.MaxEnergy,
			Gold:          p.Gold,
			Realm:         p.Realm(),
		},
		Piles: b.Piles.Counts(),
	}
	for _, r := range p.Relics {
		s.Player.Relics = append(s.Player.Relics, r.Name)
	}
	for _, e := range b.Enemies {
		s.Enemies = append(s.Enemies, EnemyView{
			CombatantView: CombatantView{Name: e.Name, HP: e.HP, MaxHP: e.MaxHP, Block: e.Block, Statuses: e.Status.Display()},
			Alive:         e.IsAlive(),
			Intent:        e.IntentView(),
		})
	}
	for _, c := range b.Piles.Hand {
		s.Hand = append(s.Hand, CardView{Name: c.Name, Cost: p.EffectiveCost(c), Type: string(c.Type), Desc: c.Desc, Upgraded: c.IsUpgraded})
	}
	return s
}
