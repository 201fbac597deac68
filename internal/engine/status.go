package engine

import "sort"

// Status names a stackable effect on a combatant.
type Status string

const (
	StatusPoison      Status = "poison"
	StatusBurn        Status = "burn"
	StatusWeak        Status = "weak"
	StatusVulnerable  Status = "vulnerable"
	StatusStrength    Status = "strength"
	StatusFrozen      Status = "frozen"
	StatusRetainBlock Status = "retainBlock"
)

// StatusTable is a sparse map of status stacks. A key is present only while its stacks are positive.
type StatusTable struct {
	stacks map[Status]int
}

// NewStatusTable returns an empty table.
func NewStatusTable() *StatusTable {
	return &StatusTable{stacks: make(map[Status]int)}
}

// Apply adds stacks, creating the entry if needed. Non-positive amounts are ignored.
func (s *StatusTable) Apply(name Status, stacks int) {
	if stacks <= 0 {
		return
	}
	s.stacks[name] += stacks
}

// Get returns the stacks of name, 0 when absent.
func (s *StatusTable) Get(name Status) int {
	return s.stacks[name]
}

// Has reports whether name has at least one stack.
func (s *StatusTable) Has(name Status) bool {
	return s.stacks[name] > 0
}

// Decrement removes amount stacks, deleting the entry when it reaches 0.
func (s *StatusTable) Decrement(name Status, amount int) {
	cur, ok := s.stacks[name]
	if !ok {
		return
	}
	cur -= amount
	if cur <= 0 {
		delete(s.stacks, name)
		return
	}
	s.stacks[name] = cur
}

// Clear removes name entirely.
func (s *StatusTable) Clear(name Status) {
	delete(s.stacks, name)
}

// ClearAll empties the table.
func (s *StatusTable) ClearAll() {
	s.stacks = make(map[Status]int)
}

// ProcessTurnStart is the turn-start tick. Poison and burn deal their stacks
// as damage then decay by one; weak and vulnerable decay by one. Frozen is
// left alone. The returned damage is for the caller to apply.
func (s *StatusTable) ProcessTurnStart() int {
	dmg := 0
	for _, dot := range []Status{StatusPoison, StatusBurn} {
		if n := s.Get(dot); n > 0 {
			dmg += n
			s.Decrement(dot, 1)
		}
	}
	s.Decrement(StatusWeak, 1)
	s.Decrement(StatusVulnerable, 1)
	return dmg
}

// Snapshot copies the table keyed by plain strings.
func (s *StatusTable) Snapshot() map[string]int {
	out := make(map[string]int, len(s.stacks))
	for k, v := range s.stacks {
		out[string(k)] = v
	}
	return out
}

// StatusView is the display projection of one status entry.
type StatusView struct {
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Label  string `json:"label"`
	Stacks int    `json:"stacks"`
}

var statusIcons = map[Status]struct{ icon, label string }{
	StatusPoison:      {"☠", "Poison"},
	StatusBurn:        {"🔥", "Burn"},
	StatusWeak:        {"↓", "Weak"},
	StatusVulnerable:  {"💔", "Vulnerable"},
	StatusStrength:    {"💪", "Strength"},
	StatusFrozen:      {"❄", "Frozen"},
	StatusRetainBlock: {"🛡", "Retain Block"},
}

// Display lists the table sorted by name. Unknown statuses get a fallback glyph.
func (s *StatusTable) Display() []StatusView {
	out := make([]StatusView, 0, len(s.stacks))
	for k, v := range s.stacks {
		meta, ok := statusIcons[k]
		if !ok {
			meta.icon, meta.label = "✦", string(k)
		}
		out = append(out, StatusView{Name: string(k), Icon: meta.icon, Label: meta.label, Stacks: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
