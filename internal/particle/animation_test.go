package particle_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kaelum/glimmer/internal/particle"
)

// steadySource pins every draw: no jitter, no bursts, minimum lives.
type steadySource struct{}

func (steadySource) Float64() float64 { return 0.5 }
func (steadySource) Intn(n int) int   { return 0 }

var _ = Describe("a deterministic session", func() {
	var sys *particle.System

	BeforeEach(func() {
		sys = particle.NewSystem(80, 24, steadySource{})
	})

	It("emits exactly one spiral ring on the first tick", func() {
		sys.Step()
		Expect(sys.Count()).To(Equal(12))
	})

	It("grows by one ring per tick while nothing expires", func() {
		counts := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			sys.Step()
			counts = append(counts, sys.Count())
		}
		Expect(counts).To(Equal([]int{12, 24, 36}))
		Expect(sys.Ticks()).To(Equal(3))
	})

	It("moves each spawn by exactly its spawn velocity on its first tick", func() {
		spawned := particle.NewEmitter(80, 24, steadySource{}).Emit(nil, 1)

		sys.Step()

		live := sys.Particles()
		Expect(live).To(HaveLen(len(spawned)))
		for i, p := range live {
			Expect(p.X).To(BeNumerically("~", spawned[i].X+spawned[i].VX, 1e-12))
			Expect(p.Y).To(BeNumerically("~", spawned[i].Y+spawned[i].VY, 1e-12))
			Expect(p.Life).To(Equal(spawned[i].Life - 1))
		}
	})

	It("keeps spawn glyphs near full life", func() {
		sys.Step()
		Expect(sys.Particles()[1].Glyph).To(Equal(particle.GlyphStar))
	})

	It("renders the same collection to identical frames", func() {
		for i := 0; i < 3; i++ {
			sys.Step()
		}
		Expect(sys.Render().Cells).To(Equal(sys.Render().Cells))
	})
})
