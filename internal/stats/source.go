// Package stats benchmarks entropy sources and renders a randomness
// quality report with histograms, scatter plots and summary tables.
package stats

import (
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"strconv"

	"github.com/kaelum/glimmer/internal/particle"
)

// DefaultSamples is the sample count used when the caller does not ask
// for a specific benchmark size.
const DefaultSamples = 5000

// Generator names an entropy source and draws uniform samples from it.
type Generator struct {
	Name string
	Gen  func(n int) []float64
}

// Generators returns the benchmarked sources. The seed drives the
// deterministic generators so a whole report can be reproduced.
func Generators(seed int64) []Generator {
	return []Generator{
		{Name: "System CSPRNG", Gen: SystemSamples},
		{Name: "Seeded PRNG", Gen: func(n int) []float64 { return SeededSamples(n, seed) }},
		{Name: "Hash Chain", Gen: func(n int) []float64 { return HashSamples(n, strconv.FormatInt(seed, 10)) }},
	}
}

// SystemSamples draws n values in [0, 1) from the operating system's
// CSPRNG. Each sample keeps the top 53 bits of a random 64-bit word so
// the full float64 mantissa is exercised.
func SystemSamples(n int) []float64 {
	out := make([]float64, n)
	var buf [8]byte
	for i := range out {
		// Read is guaranteed not to fail as of go 1.24.
		_, _ = crand.Read(buf[:])
		out[i] = float64(binary.BigEndian.Uint64(buf[:])>>11) / (1 << 53)
	}
	return out
}

// SeededSamples draws n values in [0, 1) from the deterministic PRNG
// used by the animation itself, so the benchmark measures the same
// stream that drives particle motion.
func SeededSamples(n int, seed int64) []float64 {
	rng := particle.NewSource(seed)
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}

// HashSamples derives n values in [0, 1] by hashing key||index with
// SHA-256 and scaling the first four digest bytes. Identical keys yield
// identical streams.
func HashSamples(n int, key string) []float64 {
	out := make([]float64, n)
	for i := range out {
		sum := sha256.Sum256([]byte(key + strconv.Itoa(i)))
		out[i] = float64(binary.BigEndian.Uint32(sum[:4])) / float64(0xFFFFFFFF)
	}
	return out
}
