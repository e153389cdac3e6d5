package main

import (
	"math/rand/v2"
)

// Rand is a deterministic random number generator. It is a plain value, so
// copying a Rand produces a second generator which will output exactly the
// same numbers as the first one, from that point on. This is what makes it
// possible to copy a World and step both copies identically.
// The numbers are not cryptographically strong and the reduction to a range
// has a negligible modulo bias, which is fine for a game.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.pcg.Seed(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
	return
}

// RInt returns a random number in the closed interval [min, max].
func (r *Rand) RInt(min int64, max int64) int64 {
	if min > max {
		min, max = max, min
	}
	n := uint64(max-min) + 1
	if n == 0 {
		// The interval covers all of int64.
		return int64(r.pcg.Uint64())
	}
	return min + int64(r.pcg.Uint64()%n)
}
