// Package particle implements the core animation engine: spawning,
// integration, and rasterization of short-lived glyph particles.
//
// The package is built from four pieces that a session composes:
//
//   - [Emitter]: spawns particles (continuous spiral plus random bursts)
//   - [Integrator]: advances motion, applies fading, culls expired particles
//   - [Rasterizer]: projects the collection onto a character [Frame]
//   - [System]: owns the collection and ties the pieces to a tick counter
//
// # Determinism
//
// All randomness flows through a [Source], so two systems built with the
// same seed and dimensions produce identical frames:
//
//	sys := particle.NewSystem(80, 24, particle.NewSource(42))
//	sys.Step()
//	frame := sys.Render()
//
// # Thread Safety
//
// System instances are NOT thread-safe. A session steps its system from a
// single goroutine; frames returned by Render are snapshots and safe to
// hand off.
package particle
