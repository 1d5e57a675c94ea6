package particle

import "math/rand"

// Source supplies the random draws the emitter consumes. *rand.Rand
// satisfies it; tests substitute scripted sequences.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// NewSource returns a deterministic Source for the given seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
