package particle

const (
	gravity  = 0.015
	friction = 0.99
)

// Integrator advances motion and retires particles that expired or left
// the canvas.
type Integrator struct {
	maxX, maxY float64
}

func NewIntegrator(width, height int) *Integrator {
	return &Integrator{maxX: float64(width), maxY: float64(height)}
}

// Step mutates every particle in collection order, then compacts the slice
// to the survivors. Per particle: position, gravity, friction, life, fade.
// Survivors keep their relative order; the backing array is reused.
func (g *Integrator) Step(ps []Particle) []Particle {
	for i := range ps {
		p := &ps[i]
		p.X += p.VX
		p.Y += p.VY
		p.VY += gravity
		p.VX *= friction
		p.VY *= friction
		p.Life--
		p.Glyph = fadeGlyph(p.Glyph, p.LifeRatio())
	}

	alive := ps[:0]
	for i := range ps {
		p := ps[i]
		if p.Life <= 0 {
			continue
		}
		if p.X < 0 || p.X >= g.maxX || p.Y < 0 || p.Y >= g.maxY {
			continue
		}
		alive = append(alive, p)
	}
	return alive
}

// fadeGlyph dims a particle as it ages. Above three quarters of its life
// the spawn glyph is kept.
func fadeGlyph(g Glyph, ratio float64) Glyph {
	switch {
	case ratio < 0.25:
		return GlyphDot
	case ratio < 0.5:
		return GlyphPlus
	case ratio < 0.75:
		return GlyphRing
	default:
		return g
	}
}
