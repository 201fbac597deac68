/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/suderio/ascension/internal/data"
)

var catalogCmd = &cobra.Command{
	Use:       "catalog [cards|enemies|relics|classes]",
	Short:     "List the loaded catalog",
	Long:      `Prints the cards, enemies, relics or classes loaded from data_dir or the embedded defaults.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"cards", "enemies", "relics", "classes"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}

		kinds := []string{"cards", "enemies", "relics", "classes"}
		if len(args) == 1 {
			kinds = args
		}
		out := cmd.OutOrStdout()
		for _, kind := range kinds {
			fmt.Fprintln(out, titleStyle.Render(strings.ToUpper(kind[:1])+kind[1:]))
			fmt.Fprintln(out, catalogTable(cat, kind).Render())
		}
		return nil
	},
}

func catalogTable(cat *data.Catalog, kind string) *table.Table {
	t := table.New().Border(lipgloss.NormalBorder())
	switch kind {
	case "cards":
		t.Headers("ID", "Name", "Cost", "Type", "Tags", "Description")
		for _, c := range cat.Cards {
			t.Row(c.ID, c.Name, strconv.Itoa(c.Cost), string(c.Type), strings.Join(c.Tags, ","), c.Desc)
		}
	case "enemies":
		t.Headers("ID", "Name", "HP", "Count", "Type", "Pattern", "Intents")
		for _, e := range cat.Enemies {
			t.Row(e.ID, e.Name, strconv.Itoa(e.HP), strconv.Itoa(max(e.Count, 1)), e.Type, e.Pattern, strconv.Itoa(len(e.Intents)))
		}
	case "relics":
		t.Headers("ID", "Name", "Trigger", "Rarity", "Description")
		for _, r := range cat.Relics {
			t.Row(r.ID, r.Icon+" "+r.Name, r.Effect.Type, r.Rarity, r.Desc)
		}
	case "classes":
		t.Headers("ID", "Name", "Faction", "HP", "Passive", "Deck")
		for _, c := range cat.Classes {
			deck := len(c.StartDeck.Tagged) + len(c.StartDeck.Common)
			t.Row(c.ID, c.Name, c.Faction, strconv.Itoa(c.HP), c.Passive.Type, strconv.Itoa(deck))
		}
	}
	return t
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
