package engine

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/suderio/ascension/internal/data"
	"github.com/suderio/ascension/internal/rules"
)

// Factions.
const (
	FactionOrthodox = "orthodox"
	FactionDemonic  = "demonic"
)

// Class passives.
const (
	PassiveFirstSwordDiscount = "first_sword_discount"
	PassiveTurnEnergy         = "turn_energy"
	PassiveBattlePoison       = "battle_poison"
)

const (
	StartingGold   = 50
	StartingEnergy = 3
	WeakMultiplier = 0.75
	HandSize       = 5
)

// RealmNames are the cultivation realms in breakthrough order.
var RealmNames = []string{"Qi Refining", "Foundation Establishment", "Golden Core", "Nascent Soul"}

// Tracker holds per-battle relic and passive state. It is reset wholesale at battle start.
type Tracker struct {
	SwordCardsPlayed     int
	BloodTomeDamage      int
	DamagedThisTurn      bool
	DeathSaveUsed        bool
	FirstSwordPlayed     bool
	PendingSwordDiscount int
	OpeningEnergy        int
}

// TurnStart reports what happened when a player turn began.
type TurnStart struct {
	DotDamage int
	FirstTurn bool
	ExtraDraw int
	// Revived is set when the turn-start damage triggered a death save.
	Revived bool
}

// Player is the run's protagonist: a Combatant plus faction, class, energy, gold and relics.
type Player struct {
	Combatant

	Faction    string
	Class      *data.ClassDef
	Energy     int
	MaxEnergy  int
	Gold       int
	Relics     []*Relic
	RealmIndex int

	IsBossFight bool
	FirstTurn   bool
	TurnCount   int
	Tracker     Tracker

	rules *rules.Registry
	rng   Rand
	log   *zap.Logger
}

// PlayerOption configures optional collaborators of a Player.
type PlayerOption func(*Player)

// WithRules sets the registry used for conditional relic triggers.
func WithRules(r *rules.Registry) PlayerOption {
	return func(p *Player) { p.rules = r }
}

// WithRand sets the randomness source used for relic rewards.
func WithRand(r Rand) PlayerOption {
	return func(p *Player) { p.rng = r }
}

// WithLogger sets the player's logger.
func WithLogger(l *zap.Logger) PlayerOption {
	return func(p *Player) {
		if l != nil {
			p.log = l
		}
	}
}

// NewPlayer builds a player for faction. A class, when given, overrides
// the faction and supplies hp and energy.
func NewPlayer(faction string, class *data.ClassDef, opts ...PlayerOption) *Player {
	if class != nil && class.Faction != "" {
		faction = class.Faction
	}
	hp := 70
	if faction == FactionOrthodox {
		hp = 75
	}
	energy := StartingEnergy
	if class != nil {
		if class.HP > 0 {
			hp = class.HP
		}
		if class.Energy > 0 {
			energy = class.Energy
		}
	}
	p := &Player{
		Combatant: newCombatant(hp),
		Faction:   faction,
		Class:     class,
		Energy:    energy,
		MaxEnergy: energy,
		Gold:      StartingGold,
		FirstTurn: true,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Realm is the display name of the current cultivation realm.
func (p *Player) Realm() string {
	return RealmNames[p.RealmIndex]
}

// HasRelic reports whether a relic with id is owned.
func (p *Player) HasRelic(id string) bool {
	for _, r := range p.Relics {
		if r.ID == id {
			return true
		}
	}
	return false
}

// AddRelic adds r unless one with the same id is already owned. OnAcquire
// effects are applied at this point.
func (p *Player) AddRelic(r *Relic) bool {
	if r == nil || p.HasRelic(r.ID) {
		return false
	}
	p.Relics = append(p.Relics, r)
	if eff, ok := r.Effect.(OnAcquireEffect); ok {
		p.MaxHP += eff.MaxHP
		p.HP += eff.MaxHP
		p.MaxEnergy += eff.MaxEnergy
		p.Gold += eff.Gold
		p.Heal(eff.Heal)
	}
	return true
}

// RemoveRelic drops the relic with id. Unknown ids are ignored.
func (p *Player) RemoveRelic(id string) {
	for i, r := range p.Relics {
		if r.ID == id {
			p.Relics = append(p.Relics[:i:i], p.Relics[i+1:]...)
			return
		}
	}
}

func (p *Player) passive(kind string) int {
	if p.Class == nil || p.Class.Passive.Type != kind {
		return 0
	}
	if p.Class.Passive.Value <= 0 {
		return 1
	}
	return p.Class.Passive.Value
}

// OnBattleStart resets battle-scoped state and fires battleStart relics.
func (p *Player) OnBattleStart() {
	p.Block = 0
	p.FirstTurn = true
	p.TurnCount = 0
	p.Tracker = Tracker{}
	p.Status.ClearAll()

	for _, r := range p.Relics {
		eff, ok := r.Effect.(BattleStartEffect)
		if !ok {
			continue
		}
		p.Status.Apply(StatusStrength, eff.Strength)
		p.AddBlock(eff.Block)
		p.Heal(eff.Heal)
		p.Tracker.OpeningEnergy += eff.Energy
	}
}

// OnBattleStartEnemies poisons the opposing roster from the poison passive
// and battleStartPoison relics. Called once the enemies exist.
func (p *Player) OnBattleStartEnemies(enemies []*Enemy) {
	poison := p.passive(PassiveBattlePoison)
	for _, r := range p.Relics {
		if eff, ok := r.Effect.(BattleStartPoisonEffect); ok {
			poison += eff.Poison
		}
	}
	if poison <= 0 {
		return
	}
	for _, e := range enemies {
		if e.IsAlive() {
			e.ApplyStatus(StatusPoison, poison)
		}
	}
}

// StartTurn runs the player's turn-start sequence. The caller draws
// HandSize + ExtraDraw cards afterwards.
func (p *Player) StartTurn() TurnStart {
	first := p.FirstTurn
	if !p.HasRelic(RelicRetainShield) && !p.Status.Has(StatusRetainBlock) {
		p.Block = 0
	}
	p.Energy = p.MaxEnergy + p.passive(PassiveTurnEnergy)
	if first {
		p.Energy += p.Tracker.OpeningEnergy
	}
	p.TurnCount++
	p.Tracker.FirstSwordPlayed = false

	if p.Tracker.DamagedThisTurn && p.HasRelic(RelicVajraBody) {
		p.Status.Apply(StatusStrength, 2)
	}
	p.Tracker.DamagedThisTurn = false

	extraDraw := 0
	gain := func(g TurnStartEffect) {
		p.Energy += g.Energy
		p.AddBlock(g.Block)
		extraDraw += g.Draw
	}
	for _, r := range p.Relics {
		switch eff := r.Effect.(type) {
		case TurnStartEffect:
			gain(eff)
		case TurnStartConditionalEffect:
			if p.conditionMet(r.ID, eff) {
				gain(eff.Gain)
			}
		}
	}

	ts := TurnStart{FirstTurn: first, ExtraDraw: extraDraw}
	ts.DotDamage = p.Status.ProcessTurnStart()
	if ts.DotDamage > 0 {
		ts.Revived = p.TakeDamage(ts.DotDamage).Revived
	}
	p.FirstTurn = false
	return ts
}

func (p *Player) conditionMet(id string, eff TurnStartConditionalEffect) bool {
	reg := p.rules
	if reg == nil {
		var err error
		if reg, err = rules.Default(); err != nil {
			p.log.Warn("rules registry unavailable", zap.Error(err))
			return false
		}
	}
	ok, err := reg.Check(eff.Formula, rules.ContextFromPlayer(p.Facts(), eff.N))
	if err != nil {
		p.log.Warn("relic condition failed", zap.String("relic", id), zap.Error(err))
		return false
	}
	return ok
}

// Facts is the view of the player exposed to trigger conditions.
func (p *Player) Facts() rules.PlayerFacts {
	return rules.PlayerFacts{
		TurnCount:  p.TurnCount,
		HP:         p.HP,
		MaxHP:      p.MaxHP,
		Block:      p.Block,
		Energy:     p.Energy,
		MaxEnergy:  p.MaxEnergy,
		Gold:       p.Gold,
		Faction:    p.Faction,
		RealmIndex: p.RealmIndex,
		Statuses:   p.Status.Snapshot(),
	}
}

// TakeDamage applies block and vulnerable, then the blood tome and death-save hooks.
func (p *Player) TakeDamage(amount int) DamageResult {
	res := p.Combatant.TakeDamage(amount)
	p.afterDamage(&res)
	return res
}

// TakeDirectDamage bypasses block but still runs the blood tome and death-save hooks.
func (p *Player) TakeDirectDamage(amount int) DamageResult {
	res := p.Combatant.TakeDirectDamage(amount)
	p.afterDamage(&res)
	return res
}

func (p *Player) afterDamage(res *DamageResult) {
	if res.HPLoss > 0 {
		p.Tracker.DamagedThisTurn = true
		if p.HasRelic(RelicBloodTome) {
			p.Tracker.BloodTomeDamage += res.HPLoss
			for p.Tracker.BloodTomeDamage >= 5 {
				p.Tracker.BloodTomeDamage -= 5
				p.Status.Apply(StatusStrength, 1)
			}
		}
	}
	if p.HP <= 0 && !p.Tracker.DeathSaveUsed && p.HasRelic(RelicReincarnationMirror) {
		p.HP = p.MaxHP / 2
		p.Tracker.DeathSaveUsed = true
		p.RemoveRelic(RelicReincarnationMirror)
		res.Killed = false
		res.Revived = true
		p.log.Info("death save triggered", zap.Int("hp", p.HP))
	}
}

// ApplyStatus is the entry point for statuses applied by enemies. The
// golden bell shield blocks them during the first three turns.
func (p *Player) ApplyStatus(name Status, stacks int) bool {
	if p.HasStatusImmunity() {
		return false
	}
	return p.Combatant.ApplyStatus(name, stacks)
}

// HasStatusImmunity reports whether enemy statuses are currently ignored.
func (p *Player) HasStatusImmunity() bool {
	return p.HasRelic(RelicGoldenBellShield) && p.TurnCount <= 3
}

// EffectiveCost is what card would cost right now. It has no side effects.
func (p *Player) EffectiveCost(c *Card) int {
	cost := c.Cost
	if c.HasTag(p.Faction) ||
		(p.HasRelic(RelicDualCultivation) && (c.HasTag(FactionOrthodox) || c.HasTag(FactionDemonic))) {
		cost--
	}
	if c.HasTag("sword") {
		if !p.Tracker.FirstSwordPlayed {
			cost -= p.passive(PassiveFirstSwordDiscount)
		}
		cost -= p.Tracker.PendingSwordDiscount
	}
	if cost < 0 {
		return 0
	}
	return cost
}

// CanAfford reports whether the current energy covers the card.
func (p *Player) CanAfford(c *Card) bool {
	return p.Energy >= p.EffectiveCost(c)
}

// PayCost spends energy for c and consumes the pending sword discount when it applied.
func (p *Player) PayCost(c *Card) int {
	cost := p.EffectiveCost(c)
	p.Energy -= cost
	if c.HasTag("sword") {
		p.Tracker.PendingSwordDiscount = 0
	}
	return cost
}

// ExtraDamage is the additive bonus on top of a card's base damage.
func (p *Player) ExtraDamage(c *Card) int {
	extra := p.Status.Get(StatusStrength)
	if p.Faction == FactionDemonic && p.TurnCount <= 1 {
		extra++
	}
	if c.HasTag("sword") && p.HasRelic(RelicSwordEmbryo) {
		extra += 3
	}
	if c.HasTag("talisman") && p.HasRelic(RelicTalismanPen) {
		extra += 2
	}
	return extra
}

// CalcDamage is the single card damage formula.
func (p *Player) CalcDamage(base, extra int, multiplier float64) int {
	weak := 1.0
	if p.Status.Has(StatusWeak) {
		weak = WeakMultiplier
	}
	dmg := int(math.Floor(float64(base+extra) * weak * multiplier))
	if dmg < 0 {
		return 0
	}
	return dmg
}

// FireBonus sums onFireCard relic bonuses.
func (p *Player) FireBonus() int {
	total := 0
	for _, r := range p.Relics {
		if eff, ok := r.Effect.(OnFireCardEffect); ok {
			total += eff.Damage
		}
	}
	return total
}

// AttackPoison sums onAttack relic poison.
func (p *Player) AttackPoison() int {
	total := 0
	for _, r := range p.Relics {
		if eff, ok := r.Effect.(OnAttackEffect); ok {
			total += eff.Poison
		}
	}
	return total
}

// ShopDiscount sums shopDiscount relic rates.
func (p *Player) ShopDiscount() float64 {
	total := 0.0
	for _, r := range p.Relics {
		if eff, ok := r.Effect.(ShopDiscountEffect); ok {
			total += eff.Rate
		}
	}
	return total
}

// BossDamageBonus sums bossDamage relic bonuses.
func (p *Player) BossDamageBonus() float64 {
	total := 0.0
	for _, r := range p.Relics {
		if eff, ok := r.Effect.(BossDamageEffect); ok {
			total += eff.Bonus
		}
	}
	return total
}

// DamageMultiplier is the multiplier card damage is scaled by in this fight.
func (p *Player) DamageMultiplier() float64 {
	if p.IsBossFight {
		return 1 + p.BossDamageBonus()
	}
	return 1
}

// OnCardPlayed records the sword passive and sword case bookkeeping.
func (p *Player) OnCardPlayed(c *Card) {
	if !c.HasTag("sword") {
		return
	}
	p.Tracker.FirstSwordPlayed = true
	if p.HasRelic(RelicSwordCase) {
		p.Tracker.SwordCardsPlayed++
		if p.Tracker.SwordCardsPlayed >= 3 {
			p.Tracker.SwordCardsPlayed = 0
			p.Tracker.PendingSwordDiscount++
		}
	}
}

// AddSwordDiscount queues a one-shot discount for the next sword card.
func (p *Player) AddSwordDiscount(n int) {
	if n > 0 {
		p.Tracker.PendingSwordDiscount += n
	}
}

type realmStep struct {
	maxHP  int
	rarity string
}

var realmSteps = []realmStep{
	{maxHP: 10},
	{maxHP: 15, rarity: "uncommon"},
	{maxHP: 20, rarity: "rare"},
}

// Breakthrough advances one realm. It raises max hp (and hp) and max energy,
// and from the second step on grants a random unowned relic of rising
// rarity drawn from pool. It returns a summary and false at the last realm.
func (p *Player) Breakthrough(pool []*Relic) (string, bool) {
	if p.RealmIndex >= len(realmSteps) {
		return "", false
	}
	step := realmSteps[p.RealmIndex]
	p.RealmIndex++
	p.MaxHP += step.maxHP
	p.HP = min(p.HP+step.maxHP, p.MaxHP)
	p.MaxEnergy++

	summary := fmt.Sprintf("%s: max hp +%d, max energy +1", p.Realm(), step.maxHP)
	if step.rarity != "" {
		var candidates []*Relic
		for _, r := range pool {
			if r.Rarity == step.rarity && !p.HasRelic(r.ID) {
				candidates = append(candidates, r)
			}
		}
		if len(candidates) > 0 {
			rng := p.rng
			if rng == nil {
				rng = NewRand(time.Now().UnixNano())
				p.rng = rng
			}
			r := candidates[rng.Intn(len(candidates))]
			p.AddRelic(r)
			summary += fmt.Sprintf(", relic %s", r.Name)
		}
	}
	p.log.Info("breakthrough", zap.String("realm", p.Realm()), zap.Int("max_hp", p.MaxHP))
	return summary, true
}
