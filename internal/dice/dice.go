// Package dice provides the simulation's random source. Every random
// decision in the game goes through a Source so that a run can be replayed
// from its seed, or scripted outright in tests.
package dice

import "math/rand/v2"

// Source is the random source shared by the simulation.
type Source interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int
	// Bool returns a fair coin flip.
	Bool() bool
}

// Rand is a seeded Source.
type Rand struct {
	r *rand.Rand
}

// New returns a Source that produces the same sequence for the same seed.
func New(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (d *Rand) IntN(n int) int { return d.r.IntN(n) }
func (d *Rand) Bool() bool     { return d.r.IntN(2) == 1 }

// Between returns a uniform integer in [lo, hi). If hi <= lo it returns lo.
func Between(s Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.IntN(hi-lo)
}

// OneIn reports true with probability 1/n.
func OneIn(s Source, n int) bool {
	if n <= 1 {
		return true
	}
	return s.IntN(n) == 0
}
