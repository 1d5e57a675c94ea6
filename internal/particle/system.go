package particle

// System owns one animation session: the particle collection, the tick
// counter, and the three stages that act on them.
type System struct {
	width, height int
	emitter       *Emitter
	integrator    *Integrator
	raster        *Rasterizer
	particles     []Particle
	frame         int
}

func NewSystem(width, height int, rng Source) *System {
	return &System{
		width:      width,
		height:     height,
		emitter:    NewEmitter(width, height, rng),
		integrator: NewIntegrator(width, height),
		raster:     NewRasterizer(width, height),
		particles:  make([]Particle, 0, 1024),
	}
}

// Step advances the session one tick. The frame counter moves first so
// emission sees the new value, then spawns are appended, then the whole
// collection integrates and expired particles are culled.
func (s *System) Step() {
	s.frame++
	s.particles = s.emitter.Emit(s.particles, s.frame)
	s.particles = s.integrator.Step(s.particles)
}

// Render rasterizes the current collection. It does not mutate state and
// the same collection always yields an identical frame.
func (s *System) Render() *Frame {
	return s.raster.Rasterize(s.particles)
}

// Ticks reports how many times Step has run.
func (s *System) Ticks() int { return s.frame }

// Count reports the number of live particles.
func (s *System) Count() int { return len(s.particles) }

// Particles exposes the live collection for observation. Callers must not
// hold the slice across Step calls; the backing array is reused.
func (s *System) Particles() []Particle { return s.particles }

func (s *System) Width() int  { return s.width }
func (s *System) Height() int { return s.height }
