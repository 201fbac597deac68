package engine

import (
	"fmt"

	"github.com/suderio/ascension/internal/data"
)

// StartingDeck builds a fresh deck. A class supplies its start deck in
// order; otherwise the faction deck is 4 faction cards, 4 neutral cards and
// 2 cards of the opposite faction, each group drawn without repeats.
func StartingDeck(c *data.Catalog, class *data.ClassDef, faction string, rng Rand) ([]*Card, error) {
	if class != nil {
		var deck []*Card
		ids := append(append([]string{}, class.StartDeck.Tagged...), class.StartDeck.Common...)
		for _, id := range ids {
			def, ok := c.Card(id)
			if !ok {
				return nil, fmt.Errorf("class '%s' references unknown card '%s'", class.ID, id)
			}
			deck = append(deck, NewCard(def))
		}
		return deck, nil
	}

	opposite := FactionDemonic
	if faction == FactionDemonic {
		opposite = FactionOrthodox
	}
	var deck []*Card
	for _, group := range []struct {
		tag string
		n   int
	}{{faction, 4}, {"neutral", 4}, {opposite, 2}} {
		for _, def := range pick(rng, c.CardsTagged(group.tag), group.n) {
			deck = append(deck, NewCard(def))
		}
	}
	if len(deck) == 0 {
		return nil, fmt.Errorf("no cards available for faction '%s'", faction)
	}
	return deck, nil
}

func pick(rng Rand, pool []data.CardDef, n int) []data.CardDef {
	cp := append([]data.CardDef(nil), pool...)
	shuffle(rng, cp)
	if n > len(cp) {
		n = len(cp)
	}
	return cp[:n]
}

// NewRun builds a player and a starting deck from a class id, or from a
// bare faction when classID is empty.
func NewRun(c *data.Catalog, classID, faction string, rng Rand, opts ...PlayerOption) (*Player, []*Card, error) {
	var class *data.ClassDef
	if classID != "" {
		def, ok := c.Class(classID)
		if !ok {
			return nil, nil, fmt.Errorf("unknown class '%s'", classID)
		}
		class = &def
	}
	if class == nil && faction != FactionOrthodox && faction != FactionDemonic {
		return nil, nil, fmt.Errorf("unknown faction '%s'", faction)
	}
	opts = append([]PlayerOption{WithRand(rng)}, opts...)
	p := NewPlayer(faction, class, opts...)
	deck, err := StartingDeck(c, class, p.Faction, rng)
	if err != nil {
		return nil, nil, err
	}
	return p, deck, nil
}
