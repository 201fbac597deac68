package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/ascension/internal/data"
	"github.com/suderio/ascension/internal/engine"
)

type memJournal struct {
	outcomes []engine.Outcome
	err      error
}

func (m *memJournal) Append(out ...engine.Outcome) error {
	if m.err != nil {
		return m.err
	}
	m.outcomes = append(m.outcomes, out...)
	return nil
}

func newBattle(enemyHP int) *engine.Battle {
	p := engine.NewPlayer(engine.FactionOrthodox, nil)
	deck := make([]*engine.Card, 0, 5)
	for i := 0; i < 5; i++ {
		deck = append(deck, engine.NewCard(data.CardDef{
			ID: "strike", Name: "Strike", Cost: 1, Type: data.CardAttack,
			Effect: data.CardEffect{Damage: 6},
		}))
	}
	enemy := engine.NewEnemy(data.EnemyDef{
		ID: "dummy", Name: "Dummy", HP: enemyHP,
		Intents: []data.Intent{{Type: data.IntentDefend, Value: 1}},
	}, "Dummy", engine.NewSeqRand())
	return engine.NewBattle(engine.Config{Player: p, Deck: deck, Enemies: []*engine.Enemy{enemy}, Rand: engine.NewSeqRand()})
}

func TestSessionExecute(t *testing.T) {
	ctx := context.Background()
	j := &memJournal{}
	s := NewSession(newBattle(20), j, nil)

	opening, err := s.Start(ctx)
	require.NoError(t, err)
	require.Len(t, j.outcomes, len(opening))

	t.Run("Play Card", func(t *testing.T) {
		reply, err := s.Execute(ctx, "play 1 to: 1")
		require.NoError(t, err)
		require.NotEmpty(t, reply.Outcomes)
		assert.Equal(t, engine.OutcomeCard, reply.Outcomes[0].Kind)
		assert.Equal(t, 14, s.Battle().Enemies[0].HP)
		assert.Equal(t, reply.Outcomes, j.outcomes[len(j.outcomes)-len(reply.Outcomes):])
	})

	t.Run("Rejected Play", func(t *testing.T) {
		reply, err := s.Execute(ctx, "play 9")
		require.NoError(t, err)
		require.Len(t, reply.Outcomes, 1)
		assert.Equal(t, engine.OutcomeRejected, reply.Outcomes[0].Kind)
	})

	t.Run("Status", func(t *testing.T) {
		before := len(j.outcomes)
		reply, err := s.Execute(ctx, "status")
		require.NoError(t, err)
		require.NotNil(t, reply.Snapshot)
		assert.Equal(t, engine.PhasePlayerTurn, reply.Snapshot.Phase)
		assert.Len(t, reply.Snapshot.Hand, 4)
		assert.Len(t, j.outcomes, before)
	})

	t.Run("Help", func(t *testing.T) {
		reply, err := s.Execute(ctx, "help end")
		require.NoError(t, err)
		assert.Equal(t, "end [turn]", reply.Help)

		reply, err = s.Execute(ctx, "help")
		require.NoError(t, err)
		assert.Contains(t, reply.Help, "play <card> [to: <enemy>]")
	})

	t.Run("Parse Error", func(t *testing.T) {
		before := len(j.outcomes)
		_, err := s.Execute(ctx, "dance")
		assert.EqualError(t, err, "I wasn't able to understand your command")
		assert.Len(t, j.outcomes, before)
	})

	t.Run("End Turn", func(t *testing.T) {
		reply, err := s.Execute(ctx, "end turn")
		require.NoError(t, err)
		require.NotEmpty(t, reply.Outcomes)
		assert.Equal(t, engine.OutcomeTurn, reply.Outcomes[0].Kind)
		assert.Equal(t, 2, s.Battle().Player.TurnCount)
	})
}

func TestSessionJournalFailure(t *testing.T) {
	ctx := context.Background()
	s := NewSession(newBattle(20), nil, nil)
	_, err := s.Start(ctx)
	require.NoError(t, err)

	s.journal = &memJournal{err: errors.New("disk full")}
	_, err = s.Execute(ctx, "play 1")
	assert.ErrorContains(t, err, "failed to journal outcomes")
}

func TestAutoPlay(t *testing.T) {
	ctx := context.Background()

	t.Run("Wins", func(t *testing.T) {
		b := newBattle(20)
		out, err := AutoPlay(ctx, b, 10)
		require.NoError(t, err)
		assert.True(t, b.Won())

		sum := engine.Summarize(out)
		assert.Equal(t, engine.PhaseVictory, sum.Result)
		assert.Equal(t, 2, sum.Turns)
		assert.Equal(t, 4, sum.CardsPlayed)
		assert.Equal(t, 23, sum.DamageDealt)
	})

	t.Run("Turn Cap", func(t *testing.T) {
		b := newBattle(500)
		_, err := AutoPlay(ctx, b, 2)
		require.NoError(t, err)
		assert.False(t, b.IsOver())
		assert.Equal(t, 3, b.Player.TurnCount)
	})

	t.Run("Canceled", func(t *testing.T) {
		b := newBattle(500)
		_, err := b.Start(ctx)
		require.NoError(t, err)

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err = AutoPlay(cctx, b, 5)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
