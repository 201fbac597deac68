package session

import (
	"context"

	"github.com/suderio/ascension/internal/engine"
)

// maxPlaysPerTurn caps zero-cost draw loops.
const maxPlaysPerTurn = 50

// AutoPlay pilots b with a greedy policy: play the first affordable card at
// the first living enemy until nothing is affordable, then end the turn. It
// stops at a terminal phase or once maxTurns player turns have ended.
func AutoPlay(ctx context.Context, b *engine.Battle, maxTurns int) ([]engine.Outcome, error) {
	var all []engine.Outcome
	if b.Phase() == engine.PhaseSetup {
		out, err := b.Start(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, out...)
	}

	for !b.IsOver() && b.Player.TurnCount <= maxTurns {
		if err := ctx.Err(); err != nil {
			return all, err
		}
		for plays := 0; plays < maxPlaysPerTurn && !b.IsOver(); plays++ {
			i := firstAffordable(b)
			if i < 0 {
				break
			}
			out, err := b.PlayCard(ctx, i, firstLiving(b))
			if err != nil {
				return all, err
			}
			all = append(all, out...)
			if len(out) == 1 && out[0].Kind == engine.OutcomeRejected {
				break
			}
		}
		if b.IsOver() {
			break
		}
		out, err := b.EndTurn(ctx)
		if err != nil {
			return all, err
		}
		all = append(all, out...)
	}
	return all, nil
}

func firstAffordable(b *engine.Battle) int {
	for i, c := range b.Piles.Hand {
		if b.Player.CanAfford(c) {
			return i
		}
	}
	return -1
}

func firstLiving(b *engine.Battle) int {
	for i, e := range b.Enemies {
		if e.IsAlive() {
			return i
		}
	}
	return -1
}
