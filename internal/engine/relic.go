package engine

import (
	"fmt"

	"github.com/suderio/ascension/internal/data"
	"github.com/suderio/ascension/internal/rules"
)

// Relics consulted by id rather than by trigger.
const (
	RelicSwordEmbryo         = "sword_embryo"
	RelicTalismanPen         = "talisman_pen"
	RelicVajraBody           = "vajra_body"
	RelicRetainShield        = "retain_shield"
	RelicBloodTome           = "blood_tome"
	RelicReincarnationMirror = "reincarnation_mirror"
	RelicDualCultivation     = "dual_cultivation"
	RelicSwordCase           = "sword_case"
	RelicGoldenBellShield    = "golden_bell_shield"
)

// Trigger is the point in a battle at which a relic fires.
type Trigger string

const (
	TriggerBattleStart          Trigger = "battleStart"
	TriggerBattleStartPoison    Trigger = "battleStartPoison"
	TriggerTurnStart            Trigger = "turnStart"
	TriggerTurnStartConditional Trigger = "turnStartConditional"
	TriggerShopDiscount         Trigger = "shopDiscount"
	TriggerBossDamage           Trigger = "bossDamage"
	TriggerOnAttack             Trigger = "onAttack"
	TriggerOnFireCard           Trigger = "onFireCard"
	TriggerOnAcquire            Trigger = "onAcquire"
	TriggerPassive              Trigger = "passive"
)

// RelicEffect is one of the typed trigger variants below.
type RelicEffect interface {
	Trigger() Trigger
}

// BattleStartEffect grants resources when a battle begins.
type BattleStartEffect struct {
	Strength int
	Block    int
	Heal     int
	Energy   int
}

// BattleStartPoisonEffect poisons every enemy when a battle begins.
type BattleStartPoisonEffect struct {
	Poison int
}

// TurnStartEffect grants resources at the start of every player turn.
type TurnStartEffect struct {
	Energy int
	Draw   int
	Block  int
}

// TurnStartConditionalEffect grants Gain on turns where Formula holds.
type TurnStartConditionalEffect struct {
	Condition string
	Formula   string
	N         int
	Gain      TurnStartEffect
}

type ShopDiscountEffect struct {
	Rate float64
}

type BossDamageEffect struct {
	Bonus float64
}

// OnAttackEffect poisons a surviving target once per attack card.
type OnAttackEffect struct {
	Poison int
}

// OnFireCardEffect adds flat damage to fire-tagged cards.
type OnFireCardEffect struct {
	Damage int
}

// OnAcquireEffect is applied once when the relic is added.
type OnAcquireEffect struct {
	MaxHP     int
	MaxEnergy int
	Gold      int
	Heal      int
}

// PassiveEffect marks relics whose behavior is keyed on the relic id.
type PassiveEffect struct{}

func (BattleStartEffect) Trigger() Trigger          { return TriggerBattleStart }
func (BattleStartPoisonEffect) Trigger() Trigger    { return TriggerBattleStartPoison }
func (TurnStartEffect) Trigger() Trigger            { return TriggerTurnStart }
func (TurnStartConditionalEffect) Trigger() Trigger { return TriggerTurnStartConditional }
func (ShopDiscountEffect) Trigger() Trigger         { return TriggerShopDiscount }
func (BossDamageEffect) Trigger() Trigger           { return TriggerBossDamage }
func (OnAttackEffect) Trigger() Trigger             { return TriggerOnAttack }
func (OnFireCardEffect) Trigger() Trigger           { return TriggerOnFireCard }
func (OnAcquireEffect) Trigger() Trigger            { return TriggerOnAcquire }
func (PassiveEffect) Trigger() Trigger              { return TriggerPassive }

// Relic is an owned relic with its effect resolved to a typed variant.
type Relic struct {
	ID     string
	Name   string
	Icon   string
	Desc   string
	Rarity string
	Price  int
	Effect RelicEffect
}

// NewRelic converts a catalog entry into a Relic.
func NewRelic(def data.RelicDef) (*Relic, error) {
	eff, err := relicEffect(def.Effect)
	if err != nil {
		return nil, fmt.Errorf("relic '%s': %w", def.ID, err)
	}
	return &Relic{
		ID:     def.ID,
		Name:   def.Name,
		Icon:   def.Icon,
		Desc:   def.Desc,
		Rarity: def.Rarity,
		Price:  def.Price,
		Effect: eff,
	}, nil
}

func relicEffect(def data.RelicEffectDef) (RelicEffect, error) {
	a := def.Apply
	switch Trigger(def.Type) {
	case TriggerBattleStart:
		return BattleStartEffect{Strength: a.Strength, Block: a.Block, Heal: a.Heal, Energy: a.Energy}, nil
	case TriggerBattleStartPoison:
		return BattleStartPoisonEffect{Poison: a.Poison}, nil
	case TriggerTurnStart:
		return TurnStartEffect{Energy: a.Energy, Draw: a.Draw, Block: a.Block}, nil
	case TriggerTurnStartConditional:
		formula, err := rules.ConditionFormula(def.Condition, def.Formula)
		if err != nil {
			return nil, err
		}
		return TurnStartConditionalEffect{
			Condition: def.Condition,
			Formula:   formula,
			N:         def.N,
			Gain:      TurnStartEffect{Energy: a.Energy, Draw: a.Draw, Block: a.Block},
		}, nil
	case TriggerShopDiscount:
		return ShopDiscountEffect{Rate: def.Value}, nil
	case TriggerBossDamage:
		return BossDamageEffect{Bonus: def.Value}, nil
	case TriggerOnAttack:
		return OnAttackEffect{Poison: a.Poison}, nil
	case TriggerOnFireCard:
		return OnFireCardEffect{Damage: a.Damage}, nil
	case TriggerOnAcquire:
		return OnAcquireEffect{MaxHP: a.MaxHP, MaxEnergy: a.MaxEnergy, Gold: a.Gold, Heal: a.Heal}, nil
	case TriggerPassive, "":
		return PassiveEffect{}, nil
	}
	return nil, fmt.Errorf("unknown effect type '%s'", def.Type)
}

// RelicsFromCatalog converts every catalog relic, in catalog order.
func RelicsFromCatalog(c *data.Catalog) ([]*Relic, error) {
	out := make([]*Relic, 0, len(c.Relics))
	for _, def := range c.Relics {
		r, err := NewRelic(def)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
