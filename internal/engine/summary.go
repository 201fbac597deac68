package engine

// Summary folds a battle's outcome log into totals.
type Summary struct {
	Turns       int    `json:"turns"`
	CardsPlayed int    `json:"cards_played"`
	DamageDealt int    `json:"damage_dealt"`
	DamageTaken int    `json:"damage_taken"`
	Blocked     int    `json:"blocked"`
	Kills       int    `json:"kills"`
	Rejections  int    `json:"rejections"`
	EnemiesDot  int    `json:"enemies_dot"`
	Result      string `json:"result"`
}

// Summarize replays outcomes in order. It never fails: unknown kinds are ignored.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch o.Kind {
		case OutcomeTurn:
			if o.Detail == "player" && o.Turn > s.Turns {
				s.Turns = o.Turn
			}
		case OutcomeCard:
			s.CardsPlayed++
		case OutcomeDamage, OutcomeSplash, OutcomePoisonBurst:
			if o.Source == "player" {
				s.DamageDealt += o.HPLoss
				if o.Killed {
					s.Kills++
				}
			} else {
				s.DamageTaken += o.HPLoss
				s.Blocked += o.Blocked
			}
		case OutcomeSelfDamage:
			s.DamageTaken += o.HPLoss
		case OutcomeDot:
			if o.Target == "player" {
				s.DamageTaken += o.Amount
			} else {
				s.EnemiesDot += o.Amount
				if o.Killed {
					s.Kills++
				}
			}
		case OutcomeRejected:
			s.Rejections++
		case OutcomeVictory:
			s.Result = PhaseVictory
		case OutcomeDefeat:
			s.Result = PhaseDefeat
		}
	}
	return s
}
