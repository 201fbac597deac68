package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/suderio/ascension/internal/data"
)

// Battle phases.
const (
	PhaseSetup      = "setup"
	PhasePlayerTurn = "player_turn"
	PhaseEnemyTurn  = "enemy_turn"
	PhaseVictory    = "victory"
	PhaseDefeat     = "defeat"
)

const (
	eventBegin    = "begin"
	eventEndTurn  = "end_turn"
	eventNextTurn = "next_turn"
	eventWin      = "win"
	eventLose     = "lose"
)

// Config is what the meta layer hands the engine to run one fight.
type Config struct {
	Player  *Player
	Deck    []*Card
	Enemies []*Enemy
	Rand    Rand
	Logger  *zap.Logger
}

// Battle drives one fight from setup to victory or defeat.
type Battle struct {
	ID      string
	Player  *Player
	Enemies []*Enemy
	Piles   *Piles

	fsm      *fsm.FSM
	resolver *Resolver
	log      *zap.Logger
}

// NewBattle wires the piles, the resolver and the turn state machine. The
// fight begins with Start.
func NewBattle(cfg Config) *Battle {
	rng := cfg.Rand
	if rng == nil {
		rng = NewRand(1)
	}
	b := &Battle{
		ID:      uuid.NewString(),
		Player:  cfg.Player,
		Enemies: cfg.Enemies,
		Piles:   NewPiles(cfg.Deck, rng),
	}
	b.log = cfg.Logger
	if b.log == nil {
		b.log = zap.NewNop()
	}
	b.log = b.log.With(zap.String("battle_id", b.ID))
	b.resolver = &Resolver{Player: b.Player, Enemies: b.Enemies, Piles: b.Piles}

	b.fsm = fsm.NewFSM(
		PhaseSetup,
		fsm.Events{
			{Name: eventBegin, Src: []string{PhaseSetup}, Dst: PhasePlayerTurn},
			{Name: eventEndTurn, Src: []string{PhasePlayerTurn}, Dst: PhaseEnemyTurn},
			{Name: eventNextTurn, Src: []string{PhaseEnemyTurn}, Dst: PhasePlayerTurn},
			{Name: eventWin, Src: []string{PhasePlayerTurn, PhaseEnemyTurn}, Dst: PhaseVictory},
			{Name: eventLose, Src: []string{PhasePlayerTurn, PhaseEnemyTurn}, Dst: PhaseDefeat},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				b.log.Debug("phase changed", zap.String("from", e.Src), zap.String("to", e.Dst), zap.Int("turn", b.Player.TurnCount))
			},
		},
	)
	return b
}

// NewEncounter builds the enemy roster for def and a battle against it.
func NewEncounter(p *Player, deck []*Card, def data.EnemyDef, rng Rand, log *zap.Logger) *Battle {
	if rng == nil {
		rng = NewRand(1)
	}
	return NewBattle(Config{Player: p, Deck: deck, Enemies: NewEnemies(def, rng), Rand: rng, Logger: log})
}

// Phase is the current state of the turn machine.
func (b *Battle) Phase() string {
	return b.fsm.Current()
}

// IsOver reports whether the battle reached victory or defeat.
func (b *Battle) IsOver() bool {
	return b.fsm.Is(PhaseVictory) || b.fsm.Is(PhaseDefeat)
}

// Won reports whether the battle ended in victory.
func (b *Battle) Won() bool {
	return b.fsm.Is(PhaseVictory)
}

// Start runs the battle-start hooks and the first player turn.
func (b *Battle) Start(ctx context.Context) ([]Outcome, error) {
	if !b.fsm.Is(PhaseSetup) {
		return nil, fmt.Errorf("battle %s already started", b.ID)
	}
	b.Player.IsBossFight = false
	for _, e := range b.Enemies {
		if e.Kind == "boss" {
			b.Player.IsBossFight = true
		}
	}
	b.Player.OnBattleStart()
	b.Player.OnBattleStartEnemies(b.Enemies)
	if err := b.fsm.Event(ctx, eventBegin); err != nil {
		return nil, fmt.Errorf("failed to begin battle: %w", err)
	}
	b.log.Info("battle started", zap.Int("enemies", len(b.Enemies)), zap.Bool("boss", b.Player.IsBossFight))
	return b.startPlayerTurn(ctx)
}

func (b *Battle) startPlayerTurn(ctx context.Context) ([]Outcome, error) {
	ts := b.Player.StartTurn()
	out := []Outcome{{Kind: OutcomeTurn, Turn: b.Player.TurnCount, Detail: "player"}}
	if ts.DotDamage > 0 {
		out = append(out, Outcome{Kind: OutcomeDot, Target: "player", Amount: ts.DotDamage})
	}
	if ts.Revived {
		out = append(out, Outcome{Kind: OutcomeRevive, Turn: b.Player.TurnCount, Target: "player"})
	}
	if !b.Player.IsAlive() {
		return b.finish(ctx, out)
	}
	drawn := b.Piles.DrawCards(HandSize + ts.ExtraDraw)
	out = append(out, Outcome{Kind: OutcomeDraw, Target: "player", Amount: len(drawn)})
	return out, nil
}

func (b *Battle) reject(turn int, format string, args ...any) []Outcome {
	msg := fmt.Sprintf(format, args...)
	b.log.Info("action rejected", zap.String("reason", msg), zap.Int("turn", turn))
	return []Outcome{{Kind: OutcomeRejected, Turn: turn, Detail: msg}}
}

// PlayCard plays hand[hand] at enemy index target. An invalid or dead
// target falls back to the first living enemy. Game-rule refusals come back
// as a rejected Outcome, never as an error.
func (b *Battle) PlayCard(ctx context.Context, hand, target int) ([]Outcome, error) {
	turn := b.Player.TurnCount
	if !b.fsm.Is(PhasePlayerTurn) {
		return b.reject(turn, "You cannot play cards now (%s).", b.Phase()), nil
	}
	if hand < 0 || hand >= len(b.Piles.Hand) {
		return b.reject(turn, "There is no card at position %d.", hand+1), nil
	}
	card := b.Piles.Hand[hand]
	cost := b.Player.EffectiveCost(card)
	if b.Player.Energy < cost {
		return b.reject(turn, "Not enough energy for %s (%d/%d).", card.Name, b.Player.Energy, cost), nil
	}
	enemy := b.pickTarget(target)
	if card.Type == data.CardAttack && enemy == nil {
		return b.reject(turn, "%s needs a living target.", card.Name), nil
	}

	paid := b.Player.PayCost(card)
	b.Piles.PlayCard(hand)
	b.Player.OnCardPlayed(card)

	targetName := ""
	if enemy != nil {
		targetName = enemy.Name
	}
	b.log.Info("card played", zap.String("card", card.ID), zap.String("target", targetName), zap.Int("turn", turn))

	out := []Outcome{{Kind: OutcomeCard, Turn: turn, Source: "player", Target: targetName, Card: card.Name, Amount: paid}}
	out = append(out, b.resolver.Resolve(card, enemy)...)
	return b.finish(ctx, out)
}

func (b *Battle) pickTarget(i int) *Enemy {
	if i >= 0 && i < len(b.Enemies) && b.Enemies[i].IsAlive() {
		return b.Enemies[i]
	}
	for _, e := range b.Enemies {
		if e.IsAlive() {
			return e
		}
	}
	return nil
}

// EndTurn discards the hand, runs every enemy in order and, if the fight
// goes on, starts the next player turn.
func (b *Battle) EndTurn(ctx context.Context) ([]Outcome, error) {
	turn := b.Player.TurnCount
	if !b.fsm.Is(PhasePlayerTurn) {
		return b.reject(turn, "You cannot end the turn now (%s).", b.Phase()), nil
	}
	b.Piles.DiscardHand()
	if err := b.fsm.Event(ctx, eventEndTurn); err != nil {
		return nil, fmt.Errorf("failed to end turn: %w", err)
	}

	out := []Outcome{{Kind: OutcomeTurn, Turn: turn, Detail: "enemies"}}
	for _, e := range b.Enemies {
		if !e.IsAlive() {
			continue
		}
		if dot := e.StartTurn(); dot > 0 {
			out = append(out, Outcome{Kind: OutcomeDot, Turn: turn, Target: e.Name, Amount: dot, Killed: !e.IsAlive()})
		}
		if !e.IsAlive() {
			if b.allEnemiesDead() {
				return b.finish(ctx, out)
			}
			continue
		}
		for _, o := range e.ExecuteIntent(b.Player) {
			o.Turn = turn
			out = append(out, o)
		}
		if !b.Player.IsAlive() {
			return b.finish(ctx, out)
		}
	}

	if err := b.fsm.Event(ctx, eventNextTurn); err != nil {
		return nil, fmt.Errorf("failed to start next turn: %w", err)
	}
	next, err := b.startPlayerTurn(ctx)
	return append(out, next...), err
}

func (b *Battle) allEnemiesDead() bool {
	for _, e := range b.Enemies {
		if e.IsAlive() {
			return false
		}
	}
	return true
}

// finish checks defeat before victory. Revive hooks have already run by
// the time this is called, so hp at 0 here is final.
func (b *Battle) finish(ctx context.Context, out []Outcome) ([]Outcome, error) {
	switch {
	case !b.Player.IsAlive():
		if err := b.fsm.Event(ctx, eventLose); err != nil {
			return out, fmt.Errorf("failed to record defeat: %w", err)
		}
		b.log.Info("defeat", zap.Int("turn", b.Player.TurnCount))
		return append(out, Outcome{Kind: OutcomeDefeat, Turn: b.Player.TurnCount}), nil
	case b.allEnemiesDead():
		if err := b.fsm.Event(ctx, eventWin); err != nil {
			return out, fmt.Errorf("failed to record victory: %w", err)
		}
		b.log.Info("victory", zap.Int("turn", b.Player.TurnCount), zap.Int("hp", b.Player.HP))
		return append(out, Outcome{Kind: OutcomeVictory, Turn: b.Player.TurnCount}), nil
	}
	return out, nil
}
