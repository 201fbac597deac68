/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suderio/ascension/internal/engine"
	"github.com/suderio/ascension/internal/persistence"
	"github.com/suderio/ascension/internal/session"
)

// battleCmd represents the battle command
var battleCmd = &cobra.Command{
	Use:   "battle",
	Short: "Fight one battle, reading commands from stdin",
	Long: `Starts a battle against one enemy group of the catalog and reads
commands line by line until the fight ends.
Usage:
	> play 1 to: 2
	> end
	> status
	> help`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		class, _ := cmd.Flags().GetString("class")
		faction, _ := cmd.Flags().GetString("faction")
		enemy, _ := cmd.Flags().GetString("enemy")
		relics, _ := cmd.Flags().GetStringSlice("relic")
		noJournal, _ := cmd.Flags().GetBool("no-journal")

		log, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		cat, err := loadCatalog()
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}

		setup := session.Setup{Class: class, Faction: faction, Enemy: enemy, Relics: relics}
		b, err := setup.Build(cat, newRand(resolveSeed(cmd)), nil, log)
		if err != nil {
			return err
		}

		var journal session.Journal
		if !noJournal {
			manager := persistence.NewManager(viper.GetString("journal_dir"))
			j, err := manager.Create(b.ID)
			if err != nil {
				return fmt.Errorf("failed to create journal: %w", err)
			}
			defer j.Close()
			journal = j
		}

		sess := session.NewSession(b, journal, log)
		out := cmd.OutOrStdout()
		opening, err := sess.Start(cmd.Context())
		if err != nil {
			return err
		}
		printOutcomes(out, opening)
		fmt.Fprintln(out, renderSnapshot(b.Snapshot()))

		return runBattle(cmd.Context(), sess, cmd.InOrStdin(), out, opening)
	},
}

func runBattle(ctx context.Context, sess *session.Session, in io.Reader, out io.Writer, history []engine.Outcome) error {
	b := sess.Battle()
	scanner := bufio.NewScanner(in)
	for !b.IsOver() {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		reply, err := sess.Execute(ctx, line)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		switch {
		case reply.Snapshot != nil:
			fmt.Fprintln(out, renderSnapshot(*reply.Snapshot))
		case reply.Help != "":
			fmt.Fprintln(out, reply.Help)
		default:
			history = append(history, reply.Outcomes...)
			printOutcomes(out, reply.Outcomes)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}
	if b.IsOver() {
		printSummary(out, engine.Summarize(history))
	}
	return nil
}

func printOutcomes(w io.Writer, outcomes []engine.Outcome) {
	for _, o := range outcomes {
		fmt.Fprintln(w, renderOutcome(o))
	}
}

func printSummary(w io.Writer, s engine.Summary) {
	result := s.Result
	if result == "" {
		result = "unfinished"
	}
	fmt.Fprintf(w, "Result: %s after %d turn(s)\n", result, s.Turns)
	fmt.Fprintf(w, "Cards played: %d  Damage dealt: %d  Damage taken: %d  Blocked: %d  Kills: %d\n",
		s.CardsPlayed, s.DamageDealt, s.DamageTaken, s.Blocked, s.Kills)
}

func addRunFlags(c *cobra.Command) {
	c.Flags().String("class", "sword", "Starting class id from the catalog")
	c.Flags().String("faction", "", "Faction used when no class is given (orthodox, demonic)")
	c.Flags().String("enemy", "demon_wolf", "Enemy id from the catalog")
	c.Flags().StringSlice("relic", nil, "Relic ids the player starts with")
	c.Flags().Int64("seed", 0, "Random seed (0 uses the config or the clock)")
}

func init() {
	rootCmd.AddCommand(battleCmd)
	addRunFlags(battleCmd)
	battleCmd.Flags().Bool("no-journal", false, "Do not write a battle journal")
}
