package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/suderio/ascension/internal/data"
	"github.com/suderio/ascension/internal/engine"
	"github.com/suderio/ascension/internal/rules"
)

// Setup names one fight to build from the catalog. Class wins over Faction
// when both are set.
type Setup struct {
	Class   string
	Faction string
	Enemy   string
	Relics  []string
}

// Build creates the player, the starting deck, the starting relics and
// the encounter, all driven by rng.
func (s Setup) Build(cat *data.Catalog, rng engine.Rand, reg *rules.Registry, log *zap.Logger) (*engine.Battle, error) {
	if log == nil {
		log = zap.NewNop()
	}
	enemy, ok := cat.Enemy(s.Enemy)
	if !ok {
		return nil, fmt.Errorf("unknown enemy '%s'", s.Enemy)
	}
	p, deck, err := engine.NewRun(cat, s.Class, s.Faction, rng, engine.WithRules(reg), engine.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to build player: %w", err)
	}
	for _, id := range s.Relics {
		def, ok := cat.Relic(id)
		if !ok {
			return nil, fmt.Errorf("unknown relic '%s'", id)
		}
		r, err := engine.NewRelic(def)
		if err != nil {
			return nil, err
		}
		p.AddRelic(r)
	}
	return engine.NewEncounter(p, deck, enemy, rng, log), nil
}
