package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suderio/ascension/internal/data"
)

func testCard(id string, cost int, typ data.CardType, eff data.CardEffect, tags ...string) *Card {
	return NewCard(data.CardDef{ID: id, Name: id, Cost: cost, Type: typ, Tags: tags, Effect: eff})
}

func attackCard(damage, cost int, tags ...string) *Card {
	return testCard("attack", cost, data.CardAttack, data.CardEffect{Damage: damage}, tags...)
}

func testEnemy(name string, hp int, intents ...data.Intent) *Enemy {
	if len(intents) == 0 {
		intents = []data.Intent{{Type: data.IntentDefend, Value: 1}}
	}
	return NewEnemy(data.EnemyDef{ID: name, Name: name, HP: hp, Intents: intents}, name, NewSeqRand())
}

func passiveRelic(id string) *Relic {
	return &Relic{ID: id, Name: id, Effect: PassiveEffect{}}
}

func catalogRelic(t *testing.T, def data.RelicDef) *Relic {
	t.Helper()
	r, err := NewRelic(def)
	require.NoError(t, err)
	return r
}

func loadCatalog(t *testing.T) *data.Catalog {
	t.Helper()
	c, err := data.NewLoader(nil).LoadCatalog()
	require.NoError(t, err)
	return c
}
