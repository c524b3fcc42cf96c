package sim

import "math/rand/v2"

// Source is the single place randomness enters the simulation.
// Float64 returns a value in [0, 1); IntN returns a value in [0, n).
type Source interface {
	Float64() float64
	IntN(n int) int
}

// NewSource returns a deterministic PCG source for seed
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

func chance(src Source, p float64) bool {
	return src.Float64() < p
}

func pick(src Source, choices []string) string {
	return choices[src.IntN(len(choices))]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
