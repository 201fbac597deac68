package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/suderio/ascension/internal/data"
	"github.com/suderio/ascension/internal/engine"
	"github.com/suderio/ascension/internal/rules"
)

// DefaultMaxTurns bounds an autoplayed battle.
const DefaultMaxTurns = 30

// SimConfig drives a batch of autoplayed battles. Run i is seeded with Seed+i.
type SimConfig struct {
	Setup    Setup
	Runs     int
	Workers  int
	MaxTurns int
	Seed     int64
	Rules    *rules.Registry
	Logger   *zap.Logger
}

// SimReport aggregates a batch.
type SimReport struct {
	Runs           int     `json:"runs"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	Unfinished     int     `json:"unfinished"`
	AvgTurns       float64 `json:"avg_turns"`
	AvgDamageTaken float64 `json:"avg_damage_taken"`
}

// WinRate is wins over runs, 0 for an empty batch.
func (r SimReport) WinRate() float64 {
	if r.Runs == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Runs)
}

// Simulate autoplays cfg.Runs battles on up to cfg.Workers goroutines.
// onRun, when set, is called once per finished run and must be safe for
// concurrent use.
func Simulate(ctx context.Context, cat *data.Catalog, cfg SimConfig, onRun func(engine.Summary)) (SimReport, error) {
	if cfg.Runs < 1 {
		return SimReport{}, fmt.Errorf("runs must be positive, got %d", cfg.Runs)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.MaxTurns < 1 {
		cfg.MaxTurns = DefaultMaxTurns
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	summaries := make([]engine.Summary, cfg.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := 0; i < cfg.Runs; i++ {
		i := i
		g.Go(func() error {
			rng := engine.NewRand(cfg.Seed + int64(i))
			b, err := cfg.Setup.Build(cat, rng, cfg.Rules, log)
			if err != nil {
				return err
			}
			out, err := AutoPlay(ctx, b, cfg.MaxTurns)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			summaries[i] = engine.Summarize(out)
			if onRun != nil {
				onRun(summaries[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SimReport{}, err
	}

	report := SimReport{Runs: cfg.Runs}
	var turns, taken int
	for _, s := range summaries {
		switch s.Result {
		case engine.PhaseVictory:
			report.Wins++
		case engine.PhaseDefeat:
			report.Losses++
		default:
			report.Unfinished++
		}
		turns += s.Turns
		taken += s.DamageTaken
	}
	report.AvgTurns = float64(turns) / float64(cfg.Runs)
	report.AvgDamageTaken = float64(taken) / float64(cfg.Runs)
	log.Info("simulation finished", zap.Int("runs", report.Runs), zap.Int("wins", report.Wins), zap.Float64("win_rate", report.WinRate()))
	return report, nil
}
