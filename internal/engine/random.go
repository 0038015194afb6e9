package engine

import "math/rand/v2"

// RandomSource picks uniformly from [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// NewSeededSource returns an independent deterministic stream. Batches use
// stream = artifact index so results do not depend on goroutine scheduling.
func NewSeededSource(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}

// NewSeed draws a fresh batch seed.
func NewSeed() uint64 {
	return rand.Uint64()
}

func pick[T any](rng RandomSource, items []T) T {
	return items[rng.IntN(len(items))]
}
