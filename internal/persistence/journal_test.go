package persistence

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/ascension/internal/engine"
)

func TestJournalAppendLoad(t *testing.T) {
	dir := t.TempDir()
	j, err := NewJournal(filepath.Join(dir, "log.jsonl"))
	require.NoError(t, err)
	defer j.Close()

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	j.now = func() time.Time { return fixed }

	require.NoError(t, j.Append(
		engine.Outcome{Kind: engine.OutcomeCard, Turn: 1, Source: "player", Card: "Sword Qi Strike", Amount: 1},
		engine.Outcome{Kind: engine.OutcomeDamage, Turn: 1, Source: "player", Target: "Demon Wolf A", Amount: 6, HPLoss: 6},
	))
	require.NoError(t, j.Append())
	require.NoError(t, j.Append(engine.Outcome{Kind: engine.OutcomeVictory, Turn: 3}))

	out, err := j.Load()
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, engine.OutcomeCard, out[0].Kind)
	assert.Equal(t, "Sword Qi Strike", out[0].Card)
	assert.Equal(t, 6, out[1].HPLoss)
	assert.Equal(t, engine.OutcomeVictory, out[2].Kind)

	records, err := j.Records()
	require.NoError(t, err)
	assert.True(t, records[0].At.Equal(fixed))
	assert.Equal(t, engine.OutcomeDamage, records[1].Type)
}

func TestJournalCorruptLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{not json\n"), 0644))

	j, err := NewJournal(path)
	require.NoError(t, err)
	defer j.Close()

	_, err = j.Load()
	assert.ErrorContains(t, err, "failed to decode record")
}

func TestManager(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "journals"))

	t.Run("List Missing Dir", func(t *testing.T) {
		ids, err := m.List()
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("Create And Open", func(t *testing.T) {
		j, err := m.Create("b2")
		require.NoError(t, err)
		require.NoError(t, j.Append(engine.Outcome{Kind: engine.OutcomeDefeat, Turn: 4}))
		require.NoError(t, j.Close())

		j, err = m.Create("a1")
		require.NoError(t, err)
		require.NoError(t, j.Close())

		j, err = m.Open("b2")
		require.NoError(t, err)
		defer j.Close()
		out, err := j.Load()
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, engine.OutcomeDefeat, out[0].Kind)

		ids, err := m.List()
		require.NoError(t, err)
		assert.Equal(t, []string{"a1", "b2"}, ids)
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := m.Create("b2")
		assert.ErrorContains(t, err, "already exists")

		_, err = m.Open("missing")
		assert.ErrorContains(t, err, "journal not found")

		_, err = m.Create("")
		assert.Error(t, err)
	})
}
