package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/suderio/ascension/internal/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	stateBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1)

	hitStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F25D94"))
	guardStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5DA9F2"))
	victoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	defeatStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF4040"))
)

func statusLine(views []engine.StatusView) string {
	if len(views) == 0 {
		return ""
	}
	parts := make([]string, 0, len(views))
	for _, v := range views {
		parts = append(parts, fmt.Sprintf("%s%d", v.Icon, v.Stacks))
	}
	return " " + strings.Join(parts, " ")
}

func intentLine(in engine.IntentView) string {
	switch in.Type {
	case "attack":
		if in.Hits > 1 {
			return fmt.Sprintf("attack %dx%d", in.Damage, in.Hits)
		}
		return fmt.Sprintf("attack %d", in.Damage)
	case "defend":
		return fmt.Sprintf("defend %d", in.Block)
	}
	if in.Desc != "" {
		return in.Desc
	}
	return in.Type
}

// renderSnapshot draws the battle state box shown by the status command.
func renderSnapshot(s engine.Snapshot) string {
	var b strings.Builder
	p := s.Player
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(fmt.Sprintf("Turn %d · %s", s.Turn, s.Phase)))
	fmt.Fprintf(&b, "You (%s, %s)  HP %d/%d  Block %d  Energy %d/%d%s\n",
		p.Faction, p.Realm, p.HP, p.MaxHP, p.Block, p.Energy, p.MaxEnergy, statusLine(p.Statuses))
	if len(p.Relics) > 0 {
		fmt.Fprintf(&b, "%s\n", infoStyle.Render("Relics: "+strings.Join(p.Relics, ", ")))
	}

	b.WriteString("\nEnemies:\n")
	for i, e := range s.Enemies {
		if !e.Alive {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, infoStyle.Render(e.Name+" (defeated)"))
			continue
		}
		fmt.Fprintf(&b, "  %d. %s  HP %d/%d  Block %d%s  → %s\n",
			i+1, e.Name, e.HP, e.MaxHP, e.Block, statusLine(e.Statuses), intentLine(e.Intent))
	}

	b.WriteString("\nHand:\n")
	for i, c := range s.Hand {
		name := c.Name
		if c.Upgraded {
			name += "+"
		}
		fmt.Fprintf(&b, "  %d. [%d] %s %s\n", i+1, c.Cost, name, infoStyle.Render(c.Desc))
	}
	fmt.Fprintf(&b, "%s", infoStyle.Render(fmt.Sprintf("Draw %d · Discard %d · Exhaust %d", s.Piles.Draw, s.Piles.Discard, s.Piles.Exhaust)))
	return stateBoxStyle.Render(b.String())
}

// renderOutcome colours one outcome line by its kind.
func renderOutcome(o engine.Outcome) string {
	msg := o.Message()
	switch o.Kind {
	case engine.OutcomeTurn:
		return titleStyle.Render(msg)
	case engine.OutcomeDamage, engine.OutcomeSplash, engine.OutcomePoisonBurst, engine.OutcomeSelfDamage, engine.OutcomeDot:
		return hitStyle.Render(msg)
	case engine.OutcomeBlock, engine.OutcomeHeal:
		return guardStyle.Render(msg)
	case engine.OutcomeRejected, engine.OutcomeSkip, engine.OutcomeResisted:
		return infoStyle.Render(msg)
	case engine.OutcomeVictory:
		return victoryStyle.Render(msg)
	case engine.OutcomeDefeat:
		return defeatStyle.Render(msg)
	}
	return msg
}
