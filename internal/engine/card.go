package engine

import (
	"github.com/google/uuid"

	"github.com/suderio/ascension/internal/data"
)

// Card is a deck entry. It owns its copy of the template fields, so
// upgrading one card never touches the catalog or any other copy.
type Card struct {
	InstanceID string
	ID         string
	Name       string
	Cost       int
	Type       data.CardType
	Rarity     string
	Tags       []string
	Desc       string
	Exhaust    bool
	Effect     data.CardEffect
	IsUpgraded bool

	upgrade *data.CardUpgrade
}

// NewCard clones a catalog template into a fresh deck entry.
func NewCard(def data.CardDef) *Card {
	c := &Card{
		InstanceID: uuid.NewString(),
		ID:         def.ID,
		Name:       def.Name,
		Cost:       def.Cost,
		Type:       def.Type,
		Rarity:     def.Rarity,
		Tags:       append([]string(nil), def.Tags...),
		Desc:       def.Desc,
		Exhaust:    def.Exhaust,
		Effect:     def.Effect,
	}
	if def.Upgraded != nil {
		up := *def.Upgraded
		c.upgrade = &up
	}
	return c
}

// HasTag reports whether the card carries tag.
func (c *Card) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// CanUpgrade reports whether an upgrade is still available.
func (c *Card) CanUpgrade() bool {
	return c.upgrade != nil && !c.IsUpgraded
}

// Upgrade replaces the owned name, description and effect (and cost when
// the upgrade names one). It returns false when nothing changed.
func (c *Card) Upgrade() bool {
	if !c.CanUpgrade() {
		return false
	}
	if c.upgrade.Name != "" {
		c.Name = c.upgrade.Name
	}
	if c.upgrade.Desc != "" {
		c.Desc = c.upgrade.Desc
	}
	if c.upgrade.Cost != nil {
		c.Cost = *c.upgrade.Cost
	}
	c.Effect = c.upgrade.Effect
	c.IsUpgraded = true
	return true
}
