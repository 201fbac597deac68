package engine

// MaxHandSize caps the number of cards held at once.
const MaxHandSize = 10

// Piles tracks the draw, hand, discard and exhaust piles of one battle.
// Every card lives in exactly one pile.
type Piles struct {
	Draw        []*Card
	Hand        []*Card
	Discard     []*Card
	Exhaust     []*Card
	MaxHandSize int

	rng Rand
}

// PileCounts is the size of each pile.
type PileCounts struct {
	Draw    int `json:"draw"`
	Hand    int `json:"hand"`
	Discard int `json:"discard"`
	Exhaust int `json:"exhaust"`
}

// Total is the number of cards across all piles.
func (c PileCounts) Total() int {
	return c.Draw + c.Hand + c.Discard + c.Exhaust
}

// NewPiles shuffles deck into a fresh draw pile. The deck slice itself is not retained.
func NewPiles(deck []*Card, rng Rand) *Piles {
	p := &Piles{
		Draw:        append([]*Card(nil), deck...),
		MaxHandSize: MaxHandSize,
		rng:         rng,
	}
	shuffle(rng, p.Draw)
	return p
}

// DrawCards moves up to n cards into the hand, reshuffling the discard pile
// when the draw pile runs out. It returns the cards actually drawn.
func (p *Piles) DrawCards(n int) []*Card {
	var drawn []*Card
	for len(drawn) < n && len(p.Hand) < p.MaxHandSize {
		if len(p.Draw) == 0 {
			if len(p.Discard) == 0 {
				break
			}
			p.reshuffle()
		}
		last := len(p.Draw) - 1
		c := p.Draw[last]
		p.Draw = p.Draw[:last]
		p.Hand = append(p.Hand, c)
		drawn = append(drawn, c)
	}
	return drawn
}

func (p *Piles) reshuffle() {
	p.Draw = append(p.Draw, p.Discard...)
	p.Discard = nil
	shuffle(p.rng, p.Draw)
}

// PlayCard removes hand[index] and routes it to the exhaust or discard pile.
func (p *Piles) PlayCard(index int) (*Card, bool) {
	c, ok := p.take(index)
	if !ok {
		return nil, false
	}
	if c.Exhaust {
		p.Exhaust = append(p.Exhaust, c)
	} else {
		p.Discard = append(p.Discard, c)
	}
	return c, true
}

// ExhaustCard removes hand[index] straight into the exhaust pile.
func (p *Piles) ExhaustCard(index int) (*Card, bool) {
	c, ok := p.take(index)
	if !ok {
		return nil, false
	}
	p.Exhaust = append(p.Exhaust, c)
	return c, true
}

// DiscardHand moves the whole hand to the discard pile.
func (p *Piles) DiscardHand() {
	p.Discard = append(p.Discard, p.Hand...)
	p.Hand = nil
}

// Counts reports the size of every pile.
func (p *Piles) Counts() PileCounts {
	return PileCounts{Draw: len(p.Draw), Hand: len(p.Hand), Discard: len(p.Discard), Exhaust: len(p.Exhaust)}
}

func (p *Piles) take(index int) (*Card, bool) {
	if index < 0 || index >= len(p.Hand) {
		return nil, false
	}
	c := p.Hand[index]
	p.Hand = append(p.Hand[:index:index], p.Hand[index+1:]...)
	return c, true
}
