package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/ascension/internal/data"
)

func TestNewPlayerDefaults(t *testing.T) {
	p := NewPlayer(FactionOrthodox, nil)
	assert.Equal(t, 75, p.MaxHP)
	assert.Equal(t, 75, p.HP)
	assert.Equal(t, StartingGold, p.Gold)
	assert.Equal(t, 3, p.MaxEnergy)
	assert.Equal(t, "Qi Refining", p.Realm())

	d := NewPlayer(FactionDemonic, nil)
	assert.Equal(t, 70, d.MaxHP)

	class := &data.ClassDef{ID: "poison", Faction: FactionDemonic, HP: 66, Energy: 4}
	c := NewPlayer(FactionOrthodox, class)
	assert.Equal(t, FactionDemonic, c.Faction)
	assert.Equal(t, 66, c.MaxHP)
	assert.Equal(t, 4, c.MaxEnergy)
}

func TestCalcDamage(t *testing.T) {
	p := NewPlayer(FactionOrthodox, nil)

	assert.Equal(t, 13, p.CalcDamage(10, 3, 1))
	assert.Equal(t, 16, p.CalcDamage(10, 3, 1.25))
	assert.Equal(t, 0, p.CalcDamage(-5, 2, 1))

	p.Status.Apply(StatusWeak, 1)
	assert.Equal(t, 9, p.CalcDamage(10, 3, 1))
	assert.Equal(t, 12, p.CalcDamage(10, 3, 1.25))

	for base := 0; base < 20; base++ {
		for extra := -3; extra < 5; extra++ {
			got := p.CalcDamage(base, extra, 1)
			want := (base + extra) * 3 / 4
			if base+extra < 0 {
				want = 0
			}
			assert.Equal(t, want, got, "base=%d extra=%d", base, extra)
		}
	}
}

func TestDeathSave(t *testing.T) {
	p := NewPlayer(FactionOrthodox, nil)
	p.MaxHP, p.HP = 50, 5
	p.AddRelic(passiveRelic(RelicReincarnationMirror))

	res := p.TakeDirectDamage(20)
	assert.True(t, res.Revived)
	assert.False(t, res.Killed)
	assert.Equal(t, 25, p.HP)
	assert.False(t, p.HasRelic(RelicReincarnationMirror))
	assert.True(t, p.Tracker.DeathSaveUsed)

	res = p.TakeDirectDamage(100)
	assert.True(t, res.Killed)
	assert.False(t, res.Revived)
	assert.Equal(t, 0, p.HP)
}

func TestDeathSaveThroughBlock(t *testing.T) {
	p := NewPlayer(FactionDemonic, nil)
	p.MaxHP, p.HP, p.Block = 41, 3, 2
	p.AddRelic(passiveRelic(RelicReincarnationMirror))

	res := p.TakeDamage(10)
	assert.Equal(t, 2, res.Blocked)
	assert.True(t, res.Revived)
	assert.Equal(t, 20, p.HP)
}

func TestBloodTome(t *testing.T) {
	p := NewPlayer(FactionDemonic, nil)
	p.AddRelic(passiveRelic(RelicBloodTome))

	p.TakeDirectDamage(12)
	assert.Equal(t, 2, p.Status.Get(StatusStrength))
	assert.Equal(t, 2, p.Tracker.BloodTomeDamage)

	p.Block = 10
	p.TakeDamage(4)
	assert.Equal(t, 2, p.Status.Get(StatusStrength), "fully blocked hits do not count")

	p.TakeDamage(9)
	assert.Equal(t, 3, p.Status.Get(StatusStrength))
	assert.Equal(t, 0, p.Tracker.BloodTomeDamage)
	assert.True(t, p.Tracker.DamagedThisTurn)
}

func TestGoldenBellShield(t *testing.T) {
	p := NewPlayer(FactionOrthodox, nil)
	p.AddRelic(passiveRelic(RelicGoldenBellShield))
	p.OnBattleStart()

	for turn := 1; turn <= 3; turn++ {
		p.TurnCount = turn
		assert.False(t, p.ApplyStatus(StatusWeak, 2), "turn %d", turn)
	}
	assert.False(t, p.Status.Has(StatusWeak))

	p.TurnCount = 4
	assert.True(t, p.ApplyStatus(StatusWeak, 2))
	assert.Equal(t, 2, p.Status.Get(StatusWeak))
}

func TestEffectiveCost(t *testing.T) {
	t.Run("Faction Discount", func(t *testing.T) {
		p := NewPlayer(FactionOrthodox, nil)
		assert.Equal(t, 1, p.EffectiveCost(attackCard(5, 2, FactionOrthodox)))
		assert.Equal(t, 2, p.EffectiveCost(attackCard(5, 2, FactionDemonic)))
		assert.Equal(t, 0, p.EffectiveCost(attackCard(5, 0, FactionOrthodox)), "never below zero")
	})

	t.Run("Dual Cultivation", func(t *testing.T) {
		p := NewPlayer(FactionOrthodox, nil)
		p.AddRelic(passiveRelic(RelicDualCultivation))
		assert.Equal(t, 1, p.EffectiveCost(attackCard(5, 2, FactionDemonic)))
		assert.Equal(t, 1, p.EffectiveCost(attackCard(5, 2, FactionOrthodox)), "discounts do not stack")
		assert.Equal(t, 2, p.EffectiveCost(attackCard(5, 2, "neutral")))
	})

	t.Run("Sword Class First Sword Card", func(t *testing.T) {
		class := &data.ClassDef{ID: "sword", Faction: FactionOrthodox, Passive: data.Passive{Type: PassiveFirstSwordDiscount, Value: 1}}
		p := NewPlayer("", class)
		p.OnBattleStart()
		p.StartTurn()

		sword := attackCard(5, 2, "sword")
		assert.Equal(t, 1, p.EffectiveCost(sword))
		assert.Equal(t, 1, p.PayCost(sword))
		p.OnCardPlayed(sword)
		assert.Equal(t, 2, p.EffectiveCost(sword))

		p.StartTurn()
		assert.Equal(t, 1, p.EffectiveCost(sword), "resets every turn")
	})

	t.Run("Pending Sword Discount", func(t *testing.T) {
		p := NewPlayer(FactionDemonic, nil)
		p.AddSwordDiscount(1)
		sword := attackCard(5, 2, "sword")
		plain := attackCard(5, 2)

		assert.Equal(t, 1, p.EffectiveCost(sword))
		assert.Equal(t, 1, p.EffectiveCost(sword), "EffectiveCost has no side effects")
		assert.Equal(t, 2, p.EffectiveCost(plain))

		p.Energy = 3
		p.PayCost(plain)
		assert.Equal(t, 1, p.Tracker.PendingSwordDiscount, "only a sword card consumes it")
		p.PayCost(sword)
		assert.Equal(t, 0, p.Tracker.PendingSwordDiscount)
		assert.Equal(t, 0, p.Energy)
	})

	t.Run("Sword Case", func(t *testing.T) {
		p := NewPlayer(FactionOrthodox, nil)
		p.AddRelic(passiveRelic(RelicSwordCase))
		sword := attackCard(5, 1, "sword")
		for i := 0; i < 3; i++ {
			p.OnCardPlayed(sword)
		}
		assert.Equal(t, 1, p.Tracker.PendingSwordDiscount)
		assert.Equal(t, 0, p.Tracker.SwordCardsPlayed)
		p.OnCardPlayed(attackCard(5, 1))
		assert.Equal(t, 0, p.Tracker.SwordCardsPlayed)
	})
}

func TestExtraDamage(t *testing.T) {
	p := NewPlayer(FactionOrthodox, nil)
	p.Status.Apply(StatusStrength, 2)
	p.AddRelic(passiveRelic(RelicSwordEmbryo))
	p.AddRelic(passiveRelic(RelicTalismanPen))

	assert.Equal(t, 5, p.ExtraDamage(attackCard(1, 1, "sword")))
	assert.Equal(t, 4, p.ExtraDamage(attackCard(1, 1, "talisman")))
	assert.Equal(t, 2, p.ExtraDamage(attackCard(1, 1)))

	d := NewPlayer(FactionDemonic, nil)
	d.OnBattleStart()
	d.StartTurn()
	assert.Equal(t, 1, d.ExtraDamage(attackCard(1, 1)), "first turn bonus")
	d.StartTurn()
	assert.Equal(t, 0, d.ExtraDamage(attackCard(1, 1)))
}

func TestOnBattleStart(t *testing.T) {
	p := NewPlayer(FactionOrthodox, nil)
	p.HP = 60
	p.Block = 9
	p.TurnCount = 7
	p.Status.Apply(StatusPoison, 4)
	p.Tracker.DeathSaveUsed = true
	p.AddRelic(catalogRelic(t, data.RelicDef{ID: "tiger", Effect: data.RelicEffectDef{Type: "battleStart", Apply: data.RelicApply{Strength: 1, Block: 8, Heal: 5, Energy: 1}}}))

	p.OnBattleStart()
	assert.Equal(t, 8, p.Block)
	assert.Equal(t, 65, p.HP)
	assert.Equal(t, 1, p.Status.Get(StatusStrength))
	assert.False(t, p.Status.Has(StatusPoison))
	assert.Equal(t, 0, p.TurnCount)
	assert.True(t, p.FirstTurn)
	assert.False(t, p.Tracker.DeathSaveUsed)

	ts := p.StartTurn()
	assert.True(t, ts.FirstTurn)
	assert.Equal(t, 4, p.Energy, "opening energy lands on the first turn")
	p.StartTurn()
	assert.Equal(t, 3, p.Energy)
}

func TestOnBattleStartEnemies(t *testing.T) {
	class := &data.ClassDef{ID: "poison", Faction: FactionDemonic, Passive: data.Passive{Type: PassiveBattlePoison, Value: 1}}
	p := NewPlayer("", class)
	p.AddRelic(catalogRelic(t, data.RelicDef{ID: "sac", Effect: data.RelicEffectDef{Type: "battleStartPoison", Apply: data.RelicApply{Poison: 2}}}))

	alive, dead := testEnemy("a", 10), testEnemy("b", 10)
	dead.HP = 0
	p.OnBattleStartEnemies([]*Enemy{alive, dead})
	assert.Equal(t, 3, alive.Status.Get(StatusPoison))
	assert.Equal(t, 0, dead.Status.Get(StatusPoison))
}

func TestStartTurn(t *testing.T) {
	t.Run("Block Resets Unless Retained", func(t *testing.T) {
		p := NewPlayer(FactionOrthodox, nil)
		p.Block = 7
		p.StartTurn()
		assert.Equal(t, 0, p.Block)

		p.Block = 7
		p.Status.Apply(StatusRetainBlock, 1)
		p.StartTurn()
		assert.Equal(t, 7, p.Block)

		r := NewPlayer(FactionOrthodox, nil)
		r.AddRelic(passiveRelic(RelicRetainShield))
		r.Block = 5
		r.StartTurn()
		assert.Equal(t, 5, r.Block)
	})

	t.Run("Energy And Talisman Passive", func(t *testing.T) {
		class := &data.ClassDef{ID: "talisman", Faction: FactionOrthodox, Passive: data.Passive{Type: PassiveTurnEnergy, Value: 1}}
		p := NewPlayer("", class)
		p.Energy = 0
		p.StartTurn()
		assert.Equal(t, 4, p.Energy)
		assert.Equal(t, 1, p.TurnCount)
	})

	t.Run("Vajra Body", func(t *testing.T) {
		p := NewPlayer(FactionOrthodox, nil)
		p.AddRelic(passiveRelic(RelicVajraBody))
		p.StartTurn()
		p.TakeDamage(3)
		p.StartTurn()
		assert.Equal(t, 2, p.Status.Get(StatusStrength))
		assert.False(t, p.Tracker.DamagedThisTurn)
		p.StartTurn()
		assert.Equal(t, 2, p.Status.Get(StatusStrength))
	})

	t.Run("Turn Start Relics", func(t *testing.T) {
		p := NewPlayer(FactionOrthodox, nil)
		p.AddRelic(catalogRelic(t, data.RelicDef{ID: "lamp", Effect: data.RelicEffectDef{Type: "turnStart", Apply: data.RelicApply{Draw: 1, Energy: 1}}}))
		p.AddRelic(catalogRelic(t, data.RelicDef{ID: "scroll", Effect: data.RelicEffectDef{Type: "turnStart", Apply: data.RelicApply{Draw: 2}}}))
		ts := p.StartTurn()
		assert.Equal(t, 3, ts.ExtraDraw)
		assert.Equal(t, 4, p.Energy)
	})

	t.Run("Conditional Relics", func(t *testing.T) {
		p := NewPlayer(FactionOrthodox, nil)
		p.AddRelic(catalogRelic(t, data.RelicDef{ID: "drum", Effect: data.RelicEffectDef{Type: "turnStartConditional", Condition: "everyNTurns", N: 3, Apply: data.RelicApply{Energy: 1}}}))
		p.AddRelic(catalogRelic(t, data.RelicDef{ID: "skin", Effect: data.RelicEffectDef{Type: "turnStartConditional", Condition: "notFirstTurn", Apply: data.RelicApply{Block: 3}}}))

		var energy, block []int
		for i := 0; i < 6; i++ {
			p.StartTurn()
			energy = append(energy, p.Energy)
			block = append(block, p.Block)
		}
		assert.Equal(t, []int{3, 3, 4, 3, 3, 4}, energy)
		assert.Equal(t, []int{0, 3, 3, 3, 3, 3}, block)
	})

	t.Run("Formula Relic", func(t *testing.T) {
		p := NewPlayer(FactionOrthodox, nil)
		p.AddRelic(catalogRelic(t, data.RelicDef{ID: "moon", Effect: data.RelicEffectDef{Type: "turnStartConditional", Condition: "formula", Formula: "player.hp * 2 <= player.max_hp", Apply: data.RelicApply{Energy: 1}}}))
		p.StartTurn()
		assert.Equal(t, 3, p.Energy)
		p.HP = 30
		p.StartTurn()
		assert.Equal(t, 4, p.Energy)
	})

	t.Run("Damage Over Time", func(t *testing.T) {
		p := NewPlayer(FactionOrthodox, nil)
		p.Status.Apply(StatusPoison, 3)
		p.Status.Apply(StatusBurn, 2)
		ts := p.StartTurn()
		assert.Equal(t, 5, ts.DotDamage)
		assert.Equal(t, 70, p.HP)
		assert.Equal(t, 2, p.Status.Get(StatusPoison))
		assert.False(t, ts.Revived)
	})

	t.Run("Damage Over Time Death Save", func(t *testing.T) {
		p := NewPlayer(FactionOrthodox, nil)
		p.MaxHP, p.HP = 50, 2
		p.AddRelic(passiveRelic(RelicReincarnationMirror))
		p.Status.Apply(StatusPoison, 4)
		ts := p.StartTurn()
		assert.True(t, ts.Revived)
		assert.True(t, p.IsAlive())
		assert.Equal(t, 25, p.HP)
	})
}

func TestBreakthrough(t *testing.T) {
	pool := []*Relic{
		{ID: "common_one", Name: "Common", Rarity: "common", Effect: PassiveEffect{}},
		{ID: "uncommon_one", Name: "Uncommon", Rarity: "uncommon", Effect: PassiveEffect{}},
		{ID: "rare_one", Name: "Rare", Rarity: "rare", Effect: PassiveEffect{}},
	}
	p := NewPlayer(FactionOrthodox, nil, WithRand(NewSeqRand()))
	p.HP = 60

	summary, ok := p.Breakthrough(pool)
	require.True(t, ok)
	assert.NotEmpty(t, summary)
	assert.Equal(t, 1, p.RealmIndex)
	assert.Equal(t, 85, p.MaxHP)
	assert.Equal(t, 70, p.HP)
	assert.Equal(t, 4, p.MaxEnergy)
	assert.Empty(t, p.Relics)

	_, ok = p.Breakthrough(pool)
	require.True(t, ok)
	assert.Equal(t, 100, p.MaxHP)
	assert.Equal(t, 5, p.MaxEnergy)
	assert.True(t, p.HasRelic("uncommon_one"))

	_, ok = p.Breakthrough(pool)
	require.True(t, ok)
	assert.Equal(t, 120, p.MaxHP)
	assert.Equal(t, 6, p.MaxEnergy)
	assert.True(t, p.HasRelic("rare_one"))
	assert.Equal(t, "Nascent Soul", p.Realm())

	_, ok = p.Breakthrough(pool)
	assert.False(t, ok)
	assert.Equal(t, 3, p.RealmIndex)
	assert.Equal(t, 120, p.MaxHP)
}

func TestBreakthroughWithoutRand(t *testing.T) {
	var pool []*Relic
	for _, id := range []string{"jade", "pearl", "bell", "mirror", "fan", "gourd", "lotus", "seal"} {
		pool = append(pool, &Relic{ID: id, Name: id, Rarity: "uncommon", Effect: PassiveEffect{}})
	}
	picked := map[string]bool{}
	for i := 0; i < 40; i++ {
		p := NewPlayer(FactionOrthodox, nil)
		p.RealmIndex = 1
		_, ok := p.Breakthrough(pool)
		require.True(t, ok)
		require.Len(t, p.Relics, 1)
		picked[p.Relics[0].ID] = true
	}
	assert.Greater(t, len(picked), 1)
}

func TestBreakthroughWithoutCandidates(t *testing.T) {
	p := NewPlayer(FactionOrthodox, nil)
	p.RealmIndex = 1
	owned := &Relic{ID: "u", Rarity: "uncommon", Effect: PassiveEffect{}}
	p.AddRelic(owned)

	_, ok := p.Breakthrough([]*Relic{owned})
	assert.True(t, ok)
	assert.Len(t, p.Relics, 1)
}

func TestRelicOwnership(t *testing.T) {
	p := NewPlayer(FactionOrthodox, nil)
	peach := catalogRelic(t, data.RelicDef{ID: "peach", Effect: data.RelicEffectDef{Type: "onAcquire", Apply: data.RelicApply{MaxHP: 8, Gold: 20, MaxEnergy: 1}}})

	assert.True(t, p.AddRelic(peach))
	assert.False(t, p.AddRelic(peach), "relics are unique by id")
	assert.Equal(t, 83, p.MaxHP)
	assert.Equal(t, 83, p.HP)
	assert.Equal(t, 70, p.Gold)
	assert.Equal(t, 4, p.MaxEnergy)

	p.AddRelic(catalogRelic(t, data.RelicDef{ID: "token", Effect: data.RelicEffectDef{Type: "shopDiscount", Value: 0.2}}))
	p.AddRelic(catalogRelic(t, data.RelicDef{ID: "coupon", Effect: data.RelicEffectDef{Type: "shopDiscount", Value: 0.1}}))
	p.AddRelic(catalogRelic(t, data.RelicDef{ID: "slayer", Effect: data.RelicEffectDef{Type: "bossDamage", Value: 0.25}}))
	assert.InDelta(t, 0.3, p.ShopDiscount(), 1e-9)
	assert.InDelta(t, 0.25, p.BossDamageBonus(), 1e-9)
	assert.Equal(t, 1.0, p.DamageMultiplier())
	p.IsBossFight = true
	assert.Equal(t, 1.25, p.DamageMultiplier())

	p.RemoveRelic("token")
	p.RemoveRelic("never_owned")
	assert.False(t, p.HasRelic("token"))
	assert.Len(t, p.Relics, 3)
}
