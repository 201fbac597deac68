package engine

import (
	"fmt"
	"math"

	"github.com/suderio/ascension/internal/data"
)

// DefaultPhaseShiftBlock is the per-turn block bonus of a phase-two boss when the catalog sets none.
const DefaultPhaseShiftBlock = 5

// Enemy is a Combatant driven by a scripted intent sequence.
type Enemy struct {
	Combatant

	ID      string
	Name    string
	Kind    string
	Pattern string
	Intents []data.Intent
	Special *data.Special

	Intent      data.Intent
	IntentIndex int
	PhaseTwo    bool
	Enraged     bool

	rng Rand
}

// NewEnemy builds one enemy from its template and picks its first intent.
func NewEnemy(def data.EnemyDef, name string, rng Rand) *Enemy {
	if rng == nil {
		rng = NewRand(1)
	}
	e := &Enemy{
		Combatant: newCombatant(def.HP),
		ID:        def.ID,
		Name:      name,
		Kind:      def.Type,
		Pattern:   def.Pattern,
		Intents:   def.Intents,
		Special:   def.Special,
		rng:       rng,
	}
	if e.Kind == "" {
		e.Kind = "normal"
	}
	if e.Pattern == "" {
		e.Pattern = "sequential"
	}
	e.ChooseNextIntent()
	return e
}

// NewEnemies spawns every copy of def. Copies are suffixed " A", " B", ...
func NewEnemies(def data.EnemyDef, rng Rand) []*Enemy {
	count := def.Count
	if count < 1 {
		count = 1
	}
	out := make([]*Enemy, 0, count)
	for i := 0; i < count; i++ {
		name := def.Name
		if count > 1 {
			name = fmt.Sprintf("%s %c", def.Name, 'A'+i)
		}
		out = append(out, NewEnemy(def, name, rng))
	}
	return out
}

// ChooseNextIntent picks the next action: a uniform draw for random
// patterns, the next entry of the cycle otherwise.
func (e *Enemy) ChooseNextIntent() {
	if len(e.Intents) == 0 {
		return
	}
	if e.Pattern == "random" {
		e.Intent = e.Intents[e.rng.Intn(len(e.Intents))]
		return
	}
	e.Intent = e.Intents[e.IntentIndex%len(e.Intents)]
	e.IntentIndex++
}

// StartTurn drops block, ticks statuses against hp and evaluates the boss
// thresholds. It returns the damage over time taken.
func (e *Enemy) StartTurn() int {
	e.Block = 0
	dot := e.Status.ProcessTurnStart()
	if dot > 0 {
		e.loseHP(dot)
	}
	if e.Special == nil {
		return dot
	}
	ratio := float64(e.HP) / float64(e.MaxHP)
	if ps := e.Special.PhaseShift; ps != nil && !e.PhaseTwo && ratio <= ps.Threshold {
		e.PhaseTwo = true
	}
	if en := e.Special.Enrage; en != nil && !e.Enraged && ratio <= en.Threshold {
		e.Enraged = true
		e.Status.Apply(StatusStrength, en.Strength)
	}
	if e.PhaseTwo {
		bonus := e.Special.PhaseShift.Block
		if bonus <= 0 {
			bonus = DefaultPhaseShiftBlock
		}
		e.AddBlock(bonus)
	}
	return dot
}

// ExecuteIntent performs the current intent against t and queues the next one.
// A frozen enemy loses one frozen stack and skips its action.
func (e *Enemy) ExecuteIntent(t Target) []Outcome {
	defer e.ChooseNextIntent()

	if e.Status.Has(StatusFrozen) {
		e.Status.Decrement(StatusFrozen, 1)
		return []Outcome{{Kind: OutcomeSkip, Source: e.Name, Detail: "frozen"}}
	}

	weak := 1.0
	if e.Status.Has(StatusWeak) {
		weak = WeakMultiplier
	}
	str := e.Status.Get(StatusStrength)

	var out []Outcome
	in := e.Intent
	switch in.Type {
	case data.IntentAttack:
		for i := 0; i < in.HitCount(); i++ {
			dmg := int(math.Max(0, math.Floor(float64(in.Value+str)*weak)))
			out = appendDamage(out, e.Name, "player", t.TakeDamage(dmg))
		}
	case data.IntentDefend:
		e.AddBlock(in.Value)
		out = append(out, Outcome{Kind: OutcomeBlock, Source: e.Name, Target: e.Name, Amount: in.Value})
	case data.IntentBuff:
		for _, name := range sortedKeys(in.Effect) {
			if e.ApplyStatus(Status(name), in.Effect[name]) {
				out = append(out, Outcome{Kind: OutcomeStatus, Source: e.Name, Target: e.Name, Status: name, Amount: in.Effect[name]})
			}
		}
	case data.IntentDebuff:
		for _, name := range sortedKeys(in.Effect) {
			landed := t.ApplyStatus(Status(name), in.Effect[name])
			o := Outcome{Kind: OutcomeStatus, Source: e.Name, Target: "player", Status: name, Amount: in.Effect[name]}
			if !landed {
				o.Kind = OutcomeResisted
			}
			out = append(out, o)
		}
	}
	return out
}

// IntentView is the display projection of the upcoming intent.
type IntentView struct {
	Type   string         `json:"type"`
	Damage int            `json:"damage,omitempty"`
	Hits   int            `json:"hits,omitempty"`
	Block  int            `json:"block,omitempty"`
	Effect map[string]int `json:"effect,omitempty"`
	Desc   string         `json:"desc,omitempty"`
}

// IntentView projects the current intent with strength and weak already applied.
func (e *Enemy) IntentView() IntentView {
	in := e.Intent
	v := IntentView{Type: string(in.Type), Desc: in.Desc, Effect: in.Effect}
	switch in.Type {
	case data.IntentAttack:
		weak := 1.0
		if e.Status.Has(StatusWeak) {
			weak = WeakMultiplier
		}
		v.Damage = int(math.Max(0, math.Floor(float64(in.Value+e.Status.Get(StatusStrength))*weak)))
		v.Hits = in.HitCount()
	case data.IntentDefend:
		v.Block = in.Value
	}
	return v
}
