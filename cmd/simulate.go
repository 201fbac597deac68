/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/suderio/ascension/internal/engine"
	"github.com/suderio/ascension/internal/session"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Autoplay many battles and report the win rate",
	Long: `Runs the greedy autopilot over many seeded battles. Run i uses seed+i,
so the same flags always give the same report.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		class, _ := cmd.Flags().GetString("class")
		faction, _ := cmd.Flags().GetString("faction")
		enemy, _ := cmd.Flags().GetString("enemy")
		relics, _ := cmd.Flags().GetStringSlice("relic")
		runs, _ := cmd.Flags().GetInt("runs")
		workers, _ := cmd.Flags().GetInt("workers")
		maxTurns, _ := cmd.Flags().GetInt("max-turns")

		log, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		cat, err := loadCatalog()
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}

		cfg := session.SimConfig{
			Setup:    session.Setup{Class: class, Faction: faction, Enemy: enemy, Relics: relics},
			Runs:     runs,
			Workers:  workers,
			MaxTurns: maxTurns,
			Seed:     resolveSeed(cmd),
			Logger:   log,
		}

		bar := progressbar.Default(int64(runs), "Simulating")
		report, err := session.Simulate(cmd.Context(), cat, cfg, func(engine.Summary) {
			_ = bar.Add(1)
		})
		if err != nil {
			return err
		}
		_ = bar.Finish()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\nSeed: %d\n", cfg.Seed)
		fmt.Fprintf(out, "Runs: %d  Wins: %d  Losses: %d  Unfinished: %d\n", report.Runs, report.Wins, report.Losses, report.Unfinished)
		fmt.Fprintf(out, "Win rate: %.1f%%\n", report.WinRate()*100)
		fmt.Fprintf(out, "Average turns: %.1f  Average damage taken: %.1f\n", report.AvgTurns, report.AvgDamageTaken)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	addRunFlags(simulateCmd)
	simulateCmd.Flags().Int("runs", 100, "Number of battles to play")
	simulateCmd.Flags().Int("workers", runtime.NumCPU(), "Battles played concurrently")
	simulateCmd.Flags().Int("max-turns", session.DefaultMaxTurns, "Turn cap per battle")
}
