package data

import (
	"fmt"
	"strings"
)

// Catalog is the full set of templates handed to the combat engine.
type Catalog struct {
	Cards   []CardDef
	Enemies []EnemyDef
	Relics  []RelicDef
	Classes []ClassDef

	cards   map[string]int
	enemies map[string]int
	relics  map[string]int
	classes map[string]int
}

var (
	cardTypes   = map[CardType]bool{CardAttack: true, CardSkill: true, CardPower: true}
	intentTypes = map[IntentType]bool{IntentAttack: true, IntentDefend: true, IntentBuff: true, IntentDebuff: true}
	enemyTypes  = map[string]bool{"normal": true, "elite": true, "boss": true}
	relicTypes  = map[string]bool{
		"battleStart": true, "battleStartPoison": true, "turnStart": true,
		"turnStartConditional": true, "shopDiscount": true, "bossDamage": true,
		"onAttack": true, "onFireCard": true, "onAcquire": true, "passive": true,
	}
)

// Validate checks cross-entry rules: unique ids, known enum values and
// class decks that only reference existing cards.
func (c *Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Cards))
	for _, card := range c.Cards {
		if strings.TrimSpace(card.ID) == "" {
			return fmt.Errorf("card %q missing 'id'", card.Name)
		}
		if _, ok := seen[card.ID]; ok {
			return fmt.Errorf("duplicate card id '%s'", card.ID)
		}
		seen[card.ID] = struct{}{}
		if !cardTypes[card.Type] {
			return fmt.Errorf("card '%s': unknown type '%s'", card.ID, card.Type)
		}
		if card.Cost < 0 {
			return fmt.Errorf("card '%s': negative cost", card.ID)
		}
	}

	seenEnemy := make(map[string]struct{}, len(c.Enemies))
	for _, e := range c.Enemies {
		if _, ok := seenEnemy[e.ID]; ok {
			return fmt.Errorf("duplicate enemy id '%s'", e.ID)
		}
		seenEnemy[e.ID] = struct{}{}
		if e.HP <= 0 {
			return fmt.Errorf("enemy '%s': hp must be positive", e.ID)
		}
		if e.Type != "" && !enemyTypes[e.Type] {
			return fmt.Errorf("enemy '%s': unknown type '%s'", e.ID, e.Type)
		}
		if len(e.Intents) == 0 {
			return fmt.Errorf("enemy '%s' has no intents", e.ID)
		}
		for _, in := range e.Intents {
			if !intentTypes[in.Type] {
				return fmt.Errorf("enemy '%s': unknown intent type '%s'", e.ID, in.Type)
			}
		}
	}

	seenRelic := make(map[string]struct{}, len(c.Relics))
	for _, r := range c.Relics {
		if _, ok := seenRelic[r.ID]; ok {
			return fmt.Errorf("duplicate relic id '%s'", r.ID)
		}
		seenRelic[r.ID] = struct{}{}
		if !relicTypes[r.Effect.Type] {
			return fmt.Errorf("relic '%s': unknown effect type '%s'", r.ID, r.Effect.Type)
		}
	}

	seenClass := make(map[string]struct{}, len(c.Classes))
	for _, cl := range c.Classes {
		if _, ok := seenClass[cl.ID]; ok {
			return fmt.Errorf("duplicate class id '%s'", cl.ID)
		}
		seenClass[cl.ID] = struct{}{}
		ids := append(append([]string{}, cl.StartDeck.Tagged...), cl.StartDeck.Common...)
		for _, id := range ids {
			if _, ok := seen[id]; !ok {
				return fmt.Errorf("class '%s': start deck references unknown card '%s'", cl.ID, id)
			}
		}
	}
	return nil
}

func (c *Catalog) index() {
	c.cards = make(map[string]int, len(c.Cards))
	for i, card := range c.Cards {
		c.cards[card.ID] = i
	}
	c.enemies = make(map[string]int, len(c.Enemies))
	for i, e := range c.Enemies {
		c.enemies[e.ID] = i
	}
	c.relics = make(map[string]int, len(c.Relics))
	for i, r := range c.Relics {
		c.relics[r.ID] = i
	}
	c.classes = make(map[string]int, len(c.Classes))
	for i, cl := range c.Classes {
		c.classes[cl.ID] = i
	}
}

// Card looks up a card template by id.
func (c *Catalog) Card(id string) (CardDef, bool) {
	if c.cards == nil {
		c.index()
	}
	i, ok := c.cards[id]
	if !ok {
		return CardDef{}, false
	}
	return c.Cards[i], true
}

// Enemy looks up an enemy template by id.
func (c *Catalog) Enemy(id string) (EnemyDef, bool) {
	if c.enemies == nil {
		c.index()
	}
	i, ok := c.enemies[id]
	if !ok {
		return EnemyDef{}, false
	}
	return c.Enemies[i], true
}

// Relic looks up a relic by id.
func (c *Catalog) Relic(id string) (RelicDef, bool) {
	if c.relics == nil {
		c.index()
	}
	i, ok := c.relics[id]
	if !ok {
		return RelicDef{}, false
	}
	return c.Relics[i], true
}

// Class looks up a class definition by id.
func (c *Catalog) Class(id string) (ClassDef, bool) {
	if c.classes == nil {
		c.index()
	}
	i, ok := c.classes[id]
	if !ok {
		return ClassDef{}, false
	}
	return c.Classes[i], true
}

// CardsTagged returns every card template carrying tag, in catalog order.
func (c *Catalog) CardsTagged(tag string) []CardDef {
	var out []CardDef
	for _, card := range c.Cards {
		if card.HasTag(tag) {
			out = append(out, card)
		}
	}
	return out
}

// EnemiesOfType returns enemy templates of the given encounter type.
func (c *Catalog) EnemiesOfType(kind string) []EnemyDef {
	var out []EnemyDef
	for _, e := range c.Enemies {
		t := e.Type
		if t == "" {
			t = "normal"
		}
		if t == kind {
			out = append(out, e)
		}
	}
	return out
}
