package engine

// VulnerableMultiplier scales incoming damage on a vulnerable combatant.
const VulnerableMultiplier = 1.5

// DamageResult records what one damage event did.
type DamageResult struct {
	Amount  int  `json:"amount"`
	Blocked int  `json:"blocked"`
	HPLoss  int  `json:"hp_loss"`
	Killed  bool `json:"killed"`
	Revived bool `json:"revived,omitempty"`
}

// Target is anything an attack or debuff can land on.
type Target interface {
	TakeDamage(amount int) DamageResult
	ApplyStatus(name Status, stacks int) bool
}

// Combatant is the hp, block and status state shared by the player and enemies.
type Combatant struct {
	HP     int
	MaxHP  int
	Block  int
	Status *StatusTable
}

func newCombatant(hp int) Combatant {
	return Combatant{HP: hp, MaxHP: hp, Status: NewStatusTable()}
}

// TakeDamage applies vulnerable, spends block, then removes hp.
func (c *Combatant) TakeDamage(amount int) DamageResult {
	if amount < 0 {
		amount = 0
	}
	if c.Status.Has(StatusVulnerable) {
		amount = int(float64(amount) * VulnerableMultiplier)
	}
	blocked := min(c.Block, amount)
	c.Block -= blocked
	loss := amount - blocked
	c.loseHP(loss)
	return DamageResult{Amount: amount, Blocked: blocked, HPLoss: loss, Killed: c.HP <= 0}
}

// TakeDirectDamage removes hp ignoring block and vulnerable.
func (c *Combatant) TakeDirectDamage(amount int) DamageResult {
	if amount < 0 {
		amount = 0
	}
	c.loseHP(amount)
	return DamageResult{Amount: amount, HPLoss: amount, Killed: c.HP <= 0}
}

func (c *Combatant) loseHP(n int) {
	c.HP -= n
	if c.HP < 0 {
		c.HP = 0
	}
}

// Heal restores hp up to MaxHP and returns the amount actually restored.
func (c *Combatant) Heal(amount int) int {
	if amount <= 0 || c.HP >= c.MaxHP {
		return 0
	}
	before := c.HP
	c.HP = min(c.MaxHP, c.HP+amount)
	return c.HP - before
}

// AddBlock adds block. Block is unbounded above.
func (c *Combatant) AddBlock(amount int) {
	if amount > 0 {
		c.Block += amount
	}
}

// ApplyStatus adds stacks and reports whether they landed.
func (c *Combatant) ApplyStatus(name Status, stacks int) bool {
	if stacks <= 0 {
		return false
	}
	c.Status.Apply(name, stacks)
	return true
}

func (c *Combatant) IsAlive() bool {
	return c.HP > 0
}
