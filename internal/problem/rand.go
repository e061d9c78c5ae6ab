package problem

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source every generator draws from.
type Rand struct {
	r *rand.Rand
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed int64) *Rand {
	s := uint64(seed)
	return &Rand{r: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

// NewTimeRand returns a source seeded from the clock.
func NewTimeRand() *Rand {
	return NewRand(time.Now().UnixNano())
}

// Int returns a uniform integer in [min, max], inclusive on both ends.
func (r *Rand) Int(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + r.r.IntN(max-min+1)
}

// NonZero returns a uniform non-zero integer in [min, max], resampling on 0.
// The range must contain a non-zero value.
func (r *Rand) NonZero(min, max int) int {
	for {
		if v := r.Int(min, max); v != 0 {
			return v
		}
	}
}

// Sign returns 1 or -1 with equal probability.
func (r *Rand) Sign() int {
	if r.r.IntN(2) == 0 {
		return -1
	}
	return 1
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Pick returns a uniformly chosen element of xs.
func Pick[T any](r *Rand, xs []T) T {
	return xs[r.r.IntN(len(xs))]
}

// Shuffle permutes xs in place.
func Shuffle[T any](r *Rand, xs []T) {
	r.r.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
}
