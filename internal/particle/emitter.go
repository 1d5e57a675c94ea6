package particle

import "math"

const (
	spiralCount = 12
	spiralSpeed = 0.25
	burstChance = 0.04
	burstCount  = 15
)

// Emitter spawns particles around the canvas center. It never mutates or
// removes existing particles, only appends.
type Emitter struct {
	centerX, centerY float64
	rng              Source
}

func NewEmitter(width, height int, rng Source) *Emitter {
	return &Emitter{
		centerX: float64(width / 2),
		centerY: float64(height / 2),
		rng:     rng,
	}
}

// Emit appends this tick's spawns and returns the grown slice. The spiral
// ring fires every tick; a radial burst fires with probability burstChance,
// decided after the spiral has been emitted.
func (e *Emitter) Emit(ps []Particle, frame int) []Particle {
	ps = e.emitSpiral(ps, frame)
	if e.rng.Float64() < burstChance {
		ps = e.emitBurst(ps)
	}
	return ps
}

func (e *Emitter) emitSpiral(ps []Particle, frame int) []Particle {
	radius := 1 + math.Sin(float64(frame)*0.02)*0.5
	for i := 0; i < spiralCount; i++ {
		angle := float64(frame)*spiralSpeed + float64(i)*2*math.Pi/spiralCount
		// Fixed draw order per particle: speed, x jitter, y jitter, life.
		speed := 0.6 + e.rng.Float64()*0.4
		vx := math.Cos(angle)*speed + (e.rng.Float64()-0.5)*0.2
		vy := math.Sin(angle)*speed*0.5 + (e.rng.Float64()-0.5)*0.1
		life := 60 + e.rng.Intn(30)
		ps = append(ps, Particle{
			X:       e.centerX + math.Cos(angle)*radius*3,
			Y:       e.centerY + math.Sin(angle)*radius*1.5,
			VX:      vx,
			VY:      vy,
			Life:    life,
			MaxLife: life,
			Glyph:   spawnGlyphs[i%len(spawnGlyphs)],
			Color:   Color(frame % NumColors),
		})
	}
	return ps
}

func (e *Emitter) emitBurst(ps []Particle) []Particle {
	// Center offsets first, then per particle: speed, color, glyph, life.
	cx := e.centerX + float64(e.rng.Intn(17)-8)
	cy := e.centerY + float64(e.rng.Intn(9)-4)
	for i := 0; i < burstCount; i++ {
		angle := float64(i) / burstCount * 2 * math.Pi
		speed := 0.5 + e.rng.Float64()*0.6
		color := Color(e.rng.Intn(NumColors))
		glyph := spawnGlyphs[e.rng.Intn(len(spawnGlyphs))]
		ps = append(ps, Particle{
			X:       cx,
			Y:       cy,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed * 0.5,
			Life:    35 + e.rng.Intn(15),
			MaxLife: 50,
			Glyph:   glyph,
			Color:   color,
		})
	}
	return ps
}
