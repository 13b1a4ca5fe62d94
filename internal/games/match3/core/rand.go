package core

import "math/rand/v2"

// IntNSource is all the engine needs from a random generator.
// Abstracted so tests can script the sequence of values.
type IntNSource interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewRand returns the default generator for a seed.
func NewRand(seed int64) IntNSource {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// randomTile draws a normal tile uniformly from [1, elements].
func randomTile(rng IntNSource, elements int) Tile {
	return Normal(rng.IntN(elements) + 1)
}
