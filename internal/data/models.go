package data

// CardType classifies a card for targeting rules.
type CardType string

const (
	CardAttack CardType = "attack"
	CardSkill  CardType = "skill"
	CardPower  CardType = "power"
)

// CardEffect is the declarative effect descriptor carried by a card.
// Zero fields are absent; the engine applies every present field.
type CardEffect struct {
	Damage        int  `json:"damage,omitempty" yaml:"damage"`
	Hits          int  `json:"hits,omitempty" yaml:"hits"`
	KillBurst     int  `json:"kill_burst,omitempty" yaml:"kill_burst"`
	PoisonBurst   int  `json:"poison_burst,omitempty" yaml:"poison_burst"`
	Block         int  `json:"block,omitempty" yaml:"block"`
	Heal          int  `json:"heal,omitempty" yaml:"heal"`
	Draw          int  `json:"draw,omitempty" yaml:"draw"`
	Energy        int  `json:"energy,omitempty" yaml:"energy"`
	Weak          int  `json:"weak,omitempty" yaml:"weak"`
	Vulnerable    int  `json:"vulnerable,omitempty" yaml:"vulnerable"`
	Poison        int  `json:"poison,omitempty" yaml:"poison"`
	Burn          int  `json:"burn,omitempty" yaml:"burn"`
	Frozen        int  `json:"frozen,omitempty" yaml:"frozen"`
	Strength      int  `json:"strength,omitempty" yaml:"strength"`
	SelfDamage    int  `json:"self_damage,omitempty" yaml:"self_damage"`
	SelfBurn      int  `json:"self_burn,omitempty" yaml:"self_burn"`
	AllDamage     int  `json:"all_damage,omitempty" yaml:"all_damage"`
	AllPoison     int  `json:"all_poison,omitempty" yaml:"all_poison"`
	BoostPoison   int  `json:"boost_poison,omitempty" yaml:"boost_poison"`
	PoisonShield  bool `json:"poison_shield,omitempty" yaml:"poison_shield"`
	SwordDiscount int  `json:"sword_discount,omitempty" yaml:"sword_discount"`
}

// CardUpgrade replaces parts of a card when it is upgraded at a rest site.
type CardUpgrade struct {
	Name   string     `yaml:"name"`
	Desc   string     `yaml:"desc"`
	Cost   *int       `yaml:"cost"`
	Effect CardEffect `yaml:"effect"`
}

// CardDef is a card template from the master catalog. Templates are never mutated.
type CardDef struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	Cost     int          `yaml:"cost"`
	Type     CardType     `yaml:"type"`
	Rarity   string       `yaml:"rarity"`
	Tags     []string     `yaml:"tags"`
	Desc     string       `yaml:"desc"`
	Exhaust  bool         `yaml:"exhaust"`
	Effect   CardEffect   `yaml:"effect"`
	Upgraded *CardUpgrade `yaml:"upgraded"`
}

// HasTag reports whether the template carries tag.
func (c CardDef) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IntentType is the kind of scripted enemy action.
type IntentType string

const (
	IntentAttack IntentType = "attack"
	IntentDefend IntentType = "defend"
	IntentBuff   IntentType = "buff"
	IntentDebuff IntentType = "debuff"
)

// Intent is one scripted enemy action.
type Intent struct {
	Type   IntentType     `json:"type" yaml:"type"`
	Value  int            `json:"value" yaml:"value"`
	Hits   int            `json:"hits,omitempty" yaml:"hits"`
	Effect map[string]int `json:"effect,omitempty" yaml:"effect"`
	Desc   string         `json:"desc,omitempty" yaml:"desc"`
}

// HitCount returns the number of hits, defaulting to 1.
func (i Intent) HitCount() int {
	if i.Hits < 1 {
		return 1
	}
	return i.Hits
}

// PhaseShift gives a boss a flat block bonus every turn once hp drops to Threshold.
type PhaseShift struct {
	Threshold float64 `yaml:"threshold"`
	Block     int     `yaml:"block"`
}

// Enrage grants strength once when hp drops to Threshold.
type Enrage struct {
	Threshold float64 `yaml:"threshold"`
	Strength  int     `yaml:"strength"`
}

// Special holds one-way boss mechanics.
type Special struct {
	PhaseShift *PhaseShift `yaml:"phase_shift"`
	Enrage     *Enrage     `yaml:"enrage"`
}

// EnemyDef is an enemy template. Count > 1 spawns several copies in one fight.
type EnemyDef struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	HP      int      `yaml:"hp"`
	Count   int      `yaml:"count"`
	Type    string   `yaml:"type"` // normal, elite, boss
	Pattern string   `yaml:"pattern"`
	Intents []Intent `yaml:"intents"`
	Special *Special `yaml:"special"`
}

// RelicApply is the numeric payload of a relic effect.
type RelicApply struct {
	Strength  int `yaml:"strength"`
	Block     int `yaml:"block"`
	Heal      int `yaml:"heal"`
	Energy    int `yaml:"energy"`
	Draw      int `yaml:"draw"`
	Poison    int `yaml:"poison"`
	Damage    int `yaml:"damage"`
	MaxHP     int `yaml:"max_hp"`
	MaxEnergy int `yaml:"max_energy"`
	Gold      int `yaml:"gold"`
}

// RelicEffectDef is the loosely typed relic effect as written in the catalog.
// The engine turns it into a typed trigger variant.
type RelicEffectDef struct {
	Type      string     `yaml:"type"`
	Apply     RelicApply `yaml:"apply"`
	Value     float64    `yaml:"value"`
	Condition string     `yaml:"condition"` // everyNTurns, notFirstTurn, formula
	N         int        `yaml:"n"`
	Formula   string     `yaml:"formula"` // CEL expression when Condition is "formula"
}

// RelicDef is a relic from the catalog.
type RelicDef struct {
	ID     string         `yaml:"id"`
	Name   string         `yaml:"name"`
	Icon   string         `yaml:"icon"`
	Desc   string         `yaml:"desc"`
	Rarity string         `yaml:"rarity"`
	Price  int            `yaml:"price"`
	Effect RelicEffectDef `yaml:"effect"`
}

// Passive is a class ability.
type Passive struct {
	Type  string `yaml:"type"` // first_sword_discount, turn_energy, battle_poison
	Value int    `yaml:"value"`
	Desc  string `yaml:"desc"`
}

// StartDeck lists card ids a class starts with.
type StartDeck struct {
	Tagged []string `yaml:"tagged"`
	Common []string `yaml:"common"`
}

// ClassDef seeds a player and an initial deck at run start.
type ClassDef struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	Faction   string    `yaml:"faction"`
	HP        int       `yaml:"hp"`
	Energy    int       `yaml:"energy"`
	Passive   Passive   `yaml:"passive"`
	StartDeck StartDeck `yaml:"start_deck"`
}
