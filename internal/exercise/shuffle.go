package exercise

import "math/rand"

// Shuffle returns a shuffled copy of items using the given randomness
// source. The input slice is not modified.
func Shuffle[T any](items []T, rng *rand.Rand) []T {
	out := make([]T, len(items))
	copy(out, items)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
