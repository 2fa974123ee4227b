package wander

import (
	"math/rand"
	"time"
)

// Random supplies the samples a step draws.
// Implementations need not be safe for concurrent use; a Wanderer owns its source.
type Random interface {
	// IntRange returns a uniform integer in [lo, hi], inclusive on both ends.
	// Callers guarantee lo <= hi.
	IntRange(lo, hi int) int

	// Bool returns a fair coin flip.
	Bool() bool
}

type mathRandom struct {
	rnd *rand.Rand
}

// NewRandom returns a Random seeded with the current time.
func NewRandom() Random {
	return NewRandomWithSeed(time.Now().UnixNano())
}

// NewRandomWithSeed returns a Random producing a reproducible sequence.
func NewRandomWithSeed(seed int64) Random {
	return &mathRandom{rnd: rand.New(rand.NewSource(seed))}
}

func (r *mathRandom) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + int(r.rnd.Int63n(int64(hi)-int64(lo)+1))
}

func (r *mathRandom) Bool() bool {
	return r.rnd.Intn(2) == 1
}
