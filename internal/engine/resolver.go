package engine

// Resolver applies a played card's effect to the battle. It mutates state
// and reports every step as an Outcome.
type Resolver struct {
	Player  *Player
	Enemies []*Enemy
	Piles   *Piles
}

type resolution struct {
	*Resolver
	card   *Card
	target *Enemy
	out    []Outcome
}

// clause handles one effect field. Clauses run in a fixed order and each
// ignores a zero field.
type clause func(r *resolution)

var clauses = []clause{
	resolveDamage,
	resolvePoisonBurst,
	resolveBlock,
	resolveHeal,
	resolveDraw,
	resolveEnergy,
	resolveDebuffs,
	resolveStrength,
	resolveSelf,
	resolveAllDamage,
	resolveAllPoison,
	resolveBoostPoison,
	resolvePoisonShield,
	resolveSwordDiscount,
}

// Resolve runs every clause of c's effect. target may be nil for cards that
// do not touch a single enemy.
func (rs *Resolver) Resolve(c *Card, target *Enemy) []Outcome {
	r := &resolution{Resolver: rs, card: c, target: target}
	for _, cl := range clauses {
		cl(r)
	}
	return r.out
}

func (r *resolution) livingTarget() bool {
	return r.target != nil && r.target.IsAlive()
}

func (r *resolution) cardDamage(base int) int {
	p := r.Player
	if r.card.HasTag("fire") {
		base += p.FireBonus()
	}
	return p.CalcDamage(base, p.ExtraDamage(r.card), p.DamageMultiplier())
}

func (r *resolution) emit(o Outcome) {
	o.Card = r.card.Name
	r.out = append(r.out, o)
}

func resolveDamage(r *resolution) {
	eff := r.card.Effect
	if eff.Damage <= 0 || !r.livingTarget() {
		return
	}
	hits := eff.Hits
	if hits < 1 {
		hits = 1
	}
	for i := 0; i < hits && r.target.IsAlive(); i++ {
		res := r.target.TakeDamage(r.cardDamage(eff.Damage))
		r.emit(damageOutcome("player", r.target.Name, res))
		if res.Killed && eff.KillBurst > 0 {
			for _, e := range r.Enemies {
				if e == r.target || !e.IsAlive() {
					continue
				}
				o := damageOutcome("player", e.Name, e.TakeDamage(eff.KillBurst))
				o.Kind = OutcomeSplash
				r.emit(o)
			}
		}
	}
	if poison := r.Player.AttackPoison(); poison > 0 && r.target.IsAlive() {
		r.target.ApplyStatus(StatusPoison, poison)
		r.emit(Outcome{Kind: OutcomeStatus, Source: "player", Target: r.target.Name, Status: string(StatusPoison), Amount: poison})
	}
}

func resolvePoisonBurst(r *resolution) {
	mult := r.card.Effect.PoisonBurst
	if mult <= 0 || !r.livingTarget() {
		return
	}
	dmg := r.target.Status.Get(StatusPoison) * mult
	o := damageOutcome("player", r.target.Name, r.target.TakeDamage(dmg))
	o.Kind = OutcomePoisonBurst
	r.emit(o)
}

func resolveBlock(r *resolution) {
	if n := r.card.Effect.Block; n > 0 {
		r.Player.AddBlock(n)
		r.emit(Outcome{Kind: OutcomeBlock, Target: "player", Amount: n})
	}
}

func resolveHeal(r *resolution) {
	if n := r.card.Effect.Heal; n > 0 {
		r.emit(Outcome{Kind: OutcomeHeal, Target: "player", Amount: r.Player.Heal(n)})
	}
}

func resolveDraw(r *resolution) {
	if n := r.card.Effect.Draw; n > 0 && r.Piles != nil {
		r.emit(Outcome{Kind: OutcomeDraw, Target: "player", Amount: len(r.Piles.DrawCards(n))})
	}
}

func resolveEnergy(r *resolution) {
	if n := r.card.Effect.Energy; n > 0 {
		r.Player.Energy += n
		r.emit(Outcome{Kind: OutcomeEnergy, Target: "player", Amount: n})
	}
}

func resolveDebuffs(r *resolution) {
	if !r.livingTarget() {
		return
	}
	eff := r.card.Effect
	for _, d := range []struct {
		status Status
		stacks int
	}{
		{StatusWeak, eff.Weak},
		{StatusVulnerable, eff.Vulnerable},
		{StatusPoison, eff.Poison},
		{StatusBurn, eff.Burn},
		{StatusFrozen, eff.Frozen},
	} {
		if r.target.ApplyStatus(d.status, d.stacks) {
			r.emit(Outcome{Kind: OutcomeStatus, Source: "player", Target: r.target.Name, Status: string(d.status), Amount: d.stacks})
		}
	}
}

func resolveStrength(r *resolution) {
	if n := r.card.Effect.Strength; n > 0 {
		r.Player.Status.Apply(StatusStrength, n)
		r.emit(Outcome{Kind: OutcomeStatus, Source: "player", Target: "player", Status: string(StatusStrength), Amount: n})
	}
}

func resolveSelf(r *resolution) {
	eff := r.card.Effect
	if eff.SelfDamage > 0 {
		res := r.Player.TakeDirectDamage(eff.SelfDamage)
		o := damageOutcome("player", "player", res)
		o.Kind = OutcomeSelfDamage
		r.emit(o)
		if res.Revived {
			r.emit(Outcome{Kind: OutcomeRevive, Target: "player"})
		}
	}
	if eff.SelfBurn > 0 {
		r.Player.Status.Apply(StatusBurn, eff.SelfBurn)
		r.emit(Outcome{Kind: OutcomeStatus, Source: "player", Target: "player", Status: string(StatusBurn), Amount: eff.SelfBurn})
	}
}

func resolveAllDamage(r *resolution) {
	base := r.card.Effect.AllDamage
	if base <= 0 {
		return
	}
	for _, e := range r.Enemies {
		if e.IsAlive() {
			r.emit(damageOutcome("player", e.Name, e.TakeDamage(r.cardDamage(base))))
		}
	}
}

func resolveAllPoison(r *resolution) {
	n := r.card.Effect.AllPoison
	if n <= 0 {
		return
	}
	for _, e := range r.Enemies {
		if e.IsAlive() && e.ApplyStatus(StatusPoison, n) {
			r.emit(Outcome{Kind: OutcomeStatus, Source: "player", Target: e.Name, Status: string(StatusPoison), Amount: n})
		}
	}
}

func resolveBoostPoison(r *resolution) {
	n := r.card.Effect.BoostPoison
	if n <= 0 {
		return
	}
	for _, e := range r.Enemies {
		if e.IsAlive() && e.Status.Has(StatusPoison) {
			e.ApplyStatus(StatusPoison, n)
			r.emit(Outcome{Kind: OutcomeStatus, Source: "player", Target: e.Name, Status: string(StatusPoison), Amount: n})
		}
	}
}

func resolvePoisonShield(r *resolution) {
	if !r.card.Effect.PoisonShield || r.target == nil {
		return
	}
	if n := r.target.Status.Get(StatusPoison); n > 0 {
		r.Player.AddBlock(n)
		r.emit(Outcome{Kind: OutcomeBlock, Target: "player", Amount: n, Detail: "poison shield"})
	}
}

func resolveSwordDiscount(r *resolution) {
	if n := r.card.Effect.SwordDiscount; n > 0 {
		r.Player.AddSwordDiscount(n)
	}
}
