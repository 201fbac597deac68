package engine

import (
	"fmt"
	"sort"
)

type OutcomeKind string

const (
	OutcomeTurn        OutcomeKind = "turn"
	OutcomeCard        OutcomeKind = "card"
	OutcomeDamage      OutcomeKind = "damage"
	OutcomeSplash      OutcomeKind = "splash"
	OutcomePoisonBurst OutcomeKind = "poison_burst"
	OutcomeSelfDamage  OutcomeKind = "self_damage"
	OutcomeDot         OutcomeKind = "dot"
	OutcomeBlock       OutcomeKind = "block"
	OutcomeHeal        OutcomeKind = "heal"
	OutcomeDraw        OutcomeKind = "draw"
	OutcomeEnergy      OutcomeKind = "energy"
	OutcomeStatus      OutcomeKind = "status"
	OutcomeResisted    OutcomeKind = "resisted"
	OutcomeSkip        OutcomeKind = "skip"
	OutcomeRevive      OutcomeKind = "revive"
	OutcomeRejected    OutcomeKind = "rejected"
	OutcomeVictory     OutcomeKind = "victory"
	OutcomeDefeat      OutcomeKind = "defeat"
)

// Outcome is one observable result of an action, recorded for logs and the presentation layer.
type Outcome struct {
	Kind    OutcomeKind `json:"kind"`
	Turn    int         `json:"turn,omitempty"`
	Source  string      `json:"source,omitempty"`
	Target  string      `json:"target,omitempty"`
	Card    string      `json:"card,omitempty"`
	Status  string      `json:"status,omitempty"`
	Amount  int         `json:"amount,omitempty"`
	Blocked int         `json:"blocked,omitempty"`
	HPLoss  int         `json:"hp_loss,omitempty"`
	Killed  bool        `json:"killed,omitempty"`
	Detail  string      `json:"detail,omitempty"`
}

func (o Outcome) Type() OutcomeKind { return o.Kind }

// Message renders the outcome as a single log line.
func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeTurn:
		return fmt.Sprintf("--- Turn %d: %s ---", o.Turn, o.Detail)
	case OutcomeCard:
		return fmt.Sprintf("%s plays %s (cost %d).", o.Source, o.Card, o.Amount)
	case OutcomeDamage, OutcomeSplash, OutcomePoisonBurst:
		msg := fmt.Sprintf("%s hits %s for %d (%d blocked, %d hp).", o.Source, o.Target, o.Amount, o.Blocked, o.HPLoss)
		if o.Killed {
			msg += fmt.Sprintf(" %s falls!", o.Target)
		}
		return msg
	case OutcomeSelfDamage:
		return fmt.Sprintf("%s loses %d hp.", o.Target, o.HPLoss)
	case OutcomeDot:
		return fmt.Sprintf("%s takes %d damage over time.", o.Target, o.Amount)
	case OutcomeBlock:
		return fmt.Sprintf("%s gains %d block.", o.Target, o.Amount)
	case OutcomeHeal:
		return fmt.Sprintf("%s heals %d.", o.Target, o.Amount)
	case OutcomeDraw:
		return fmt.Sprintf("%s draws %d card(s).", o.Target, o.Amount)
	case OutcomeEnergy:
		return fmt.Sprintf("%s gains %d energy.", o.Target, o.Amount)
	case OutcomeStatus:
		return fmt.Sprintf("%s receives %d %s.", o.Target, o.Amount, o.Status)
	case OutcomeResisted:
		return fmt.Sprintf("%s resists %s.", o.Target, o.Status)
	case OutcomeSkip:
		return fmt.Sprintf("%s is %s and skips its action.", o.Source, o.Detail)
	case OutcomeRevive:
		return fmt.Sprintf("%s is revived!", o.Target)
	case OutcomeRejected:
		return o.Detail
	case OutcomeVictory:
		return "Victory!"
	case OutcomeDefeat:
		return "Defeat..."
	}
	return string(o.Kind)
}

func damageOutcome(source, target string, res DamageResult) Outcome {
	return Outcome{
		Kind:    OutcomeDamage,
		Source:  source,
		Target:  target,
		Amount:  res.Amount,
		Blocked: res.Blocked,
		HPLoss:  res.HPLoss,
		Killed:  res.Killed,
	}
}

// appendDamage records res, followed by a revive record when a death save fired.
func appendDamage(out []Outcome, source, target string, res DamageResult) []Outcome {
	out = append(out, damageOutcome(source, target, res))
	if res.Revived {
		out = append(out, Outcome{Kind: OutcomeRevive, Target: target})
	}
	return out
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
