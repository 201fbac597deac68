package session

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/participle/v2"
	"go.uber.org/zap"

	"github.com/suderio/ascension/internal/engine"
	"github.com/suderio/ascension/internal/parser"
)

// Journal defines the dependency required by Session to persist outcomes
type Journal interface {
	Append(outcomes ...engine.Outcome) error
}

// Reply is what one command produced. Only one of the fields is set.
type Reply struct {
	Outcomes []engine.Outcome
	Snapshot *engine.Snapshot
	Help     string
}

// Session manages the loop of taking commands, running them against a
// battle and journaling what happened.
type Session struct {
	battle  *engine.Battle
	parser  *participle.Parser[parser.Command]
	journal Journal
	log     *zap.Logger
}

// NewSession wraps b. A nil journal disables persistence.
func NewSession(b *engine.Battle, j Journal, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		battle:  b,
		parser:  parser.Build(),
		journal: j,
		log:     log.With(zap.String("battle_id", b.ID)),
	}
}

// Battle returns the wrapped battle
func (s *Session) Battle() *engine.Battle {
	return s.battle
}

// Start begins the battle and journals the opening turn.
func (s *Session) Start(ctx context.Context) ([]engine.Outcome, error) {
	out, err := s.battle.Start(ctx)
	if err != nil {
		return nil, err
	}
	return out, s.record(out)
}

// Execute takes a raw command line, runs it and journals the outcomes.
func (s *Session) Execute(ctx context.Context, input string) (*Reply, error) {
	cmd, err := s.parser.ParseString("", input)
	if err != nil {
		s.log.Debug("parse failed", zap.String("input", input), zap.Error(err))
		return nil, parser.MapError(input, err)
	}

	var out []engine.Outcome
	switch {
	case cmd.Play != nil:
		out, err = s.battle.PlayCard(ctx, cmd.Play.CardIndex(), cmd.Play.TargetIndex())
	case cmd.End != nil:
		out, err = s.battle.EndTurn(ctx)
	case cmd.Status != nil:
		snap := s.battle.Snapshot()
		return &Reply{Snapshot: &snap}, nil
	case cmd.Help != nil:
		return &Reply{Help: Help(cmd.Help.Command)}, nil
	}
	if err != nil {
		return nil, err
	}
	if err := s.record(out); err != nil {
		return nil, err
	}
	return &Reply{Outcomes: out}, nil
}

func (s *Session) record(out []engine.Outcome) error {
	if s.journal == nil {
		return nil
	}
	if err := s.journal.Append(out...); err != nil {
		return fmt.Errorf("failed to journal outcomes: %w", err)
	}
	return nil
}

// Help renders the usage of one command, or of all of them.
func Help(topic string) string {
	topic = strings.ToLower(topic)
	if usage, ok := parser.Usage[topic]; ok {
		return usage
	}
	keys := make([]string, 0, len(parser.Usage))
	for k := range parser.Usage {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, parser.Usage[k])
	}
	return strings.Join(lines, "\n")
}
