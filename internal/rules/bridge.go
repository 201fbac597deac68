package rules

import "fmt"

// Named conditions accepted by turnStartConditional relics.
const (
	ConditionEveryNTurns  = "everyNTurns"
	ConditionNotFirstTurn = "notFirstTurn"
	ConditionCustom       = "formula"
)

// ConditionFormula turns a catalog condition into the CEL source that decides it.
func ConditionFormula(condition, formula string) (string, error) {
	switch condition {
	case ConditionEveryNTurns:
		return "n > 0 && player.turn_count % n == 0", nil
	case ConditionNotFirstTurn:
		return "player.turn_count > 1", nil
	case ConditionCustom:
		if formula == "" {
			return "", fmt.Errorf("condition 'formula' requires a formula")
		}
		return formula, nil
	}
	return "", fmt.Errorf("unknown trigger condition '%s'", condition)
}

// ContextFromPlayer converts PlayerFacts into the activation map for CEL evaluation.
func ContextFromPlayer(p PlayerFacts, n int) map[string]any {
	statuses := make(map[string]int64, len(p.Statuses))
	for k, v := range p.Statuses {
		statuses[k] = int64(v)
	}
	return map[string]any{
		"player": map[string]any{
			"turn_count":  int64(p.TurnCount),
			"hp":          int64(p.HP),
			"max_hp":      int64(p.MaxHP),
			"block":       int64(p.Block),
			"energy":      int64(p.Energy),
			"max_energy":  int64(p.MaxEnergy),
			"gold":        int64(p.Gold),
			"faction":     p.Faction,
			"realm_index": int64(p.RealmIndex),
			"statuses":    statuses,
		},
		"n": int64(n),
	}
}
