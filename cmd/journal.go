/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suderio/ascension/internal/engine"
	"github.com/suderio/ascension/internal/persistence"
)

// journalCmd represents the journal command
var journalCmd = &cobra.Command{
	Use:   "journal [battle_id]",
	Short: "List battle journals or replay one",
	Long: `Without arguments, lists the battles journaled under journal_dir.
With a battle id, reads its jsonl log and prints every outcome followed
by the battle summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager := persistence.NewManager(viper.GetString("journal_dir"))
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			ids, err := manager.List()
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				fmt.Fprintln(out, "No journals found.")
			}
			for _, id := range ids {
				fmt.Fprintln(out, id)
			}
			return nil
		}

		j, err := manager.Open(args[0])
		if err != nil {
			return err
		}
		defer j.Close()

		outcomes, err := j.Load()
		if err != nil {
			return fmt.Errorf("failed to read journal: %w", err)
		}
		if summaryOnly, _ := cmd.Flags().GetBool("summary"); !summaryOnly {
			printOutcomes(out, outcomes)
		}
		printSummary(out, engine.Summarize(outcomes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.Flags().Bool("summary", false, "Print only the battle summary")
}
