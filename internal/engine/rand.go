package engine

import "math/rand"

// Rand is the single randomness source threaded through a battle.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewRand returns a seeded pseudo-random source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// SeqRand replays a scripted sequence of results, then keeps returning 0.
type SeqRand struct {
	queue []int
}

// NewSeqRand prepares a deterministic queue for the next calls to Intn.
func NewSeqRand(results ...int) *SeqRand {
	return &SeqRand{queue: results}
}

// Push appends more scripted results.
func (s *SeqRand) Push(results ...int) {
	s.queue = append(s.queue, results...)
}

func (s *SeqRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if len(s.queue) == 0 {
		return 0
	}
	v := s.queue[0]
	s.queue = s.queue[1:]
	if v < 0 {
		v = -v
	}
	return v % n
}

// shuffle is an in-place Fisher-Yates permutation driven by r.
func shuffle[T any](r Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
