package art

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/kaelum/glimmer/internal/particle"
)

// Pattern is a named drawing that fills a canvas. Deterministic patterns
// ignore the seed.
type Pattern struct {
	Name  string
	Title string
	Desc  string
	Draw  func(c *Canvas, seed int64)
}

var Patterns = []Pattern{
	{Name: "flower", Title: "Flower of Life", Desc: "sacred geometry", Draw: func(c *Canvas, _ int64) { Flower(c) }},
	{Name: "fibonacci", Title: "Fibonacci Spiral", Desc: "nature's golden ratio", Draw: func(c *Canvas, _ int64) { Fibonacci(c) }},
	{Name: "lissajous", Title: "Lissajous Curve", Desc: "harmonic motion", Draw: func(c *Canvas, _ int64) { Lissajous(c, 5, 4, math.Pi/4) }},
	{Name: "phyllotaxis", Title: "Phyllotaxis Mandala", Desc: "sunflower pattern", Draw: func(c *Canvas, _ int64) { Phyllotaxis(c) }},
	{Name: "walk", Title: "Random Walk", Desc: "stochastic art", Draw: func(c *Canvas, seed int64) { RandomWalk(c, 2500, particle.NewSource(seed)) }},
	{Name: "flow", Title: "Flow Field", Desc: "perlin noise currents", Draw: FlowField},
}

func GetPattern(name string) *Pattern {
	for i := range Patterns {
		if Patterns[i].Name == name {
			return &Patterns[i]
		}
	}
	return nil
}

func PatternNames() []string {
	names := make([]string, len(Patterns))
	for i, p := range Patterns {
		names[i] = p.Name
	}
	return names
}

// Flower draws a Flower of Life: a central circle with two hexagonal
// rings of overlapping circles.
func Flower(c *Canvas) {
	chars := []rune{'*', '+', 'o', 'O', '@', '#'}
	center := c.Center()

	c.Circle(center, 8, chars[0])

	for i := 0; i < 6; i++ {
		angle := float64(i) * 60 * math.Pi / 180
		cx := center.X + math.Cos(angle)*8
		cy := center.Y + math.Sin(angle)*8
		c.Circle(Point{cx, cy}, 8, chars[(i+1)%len(chars)])
	}

	for i := 0; i < 6; i++ {
		angle := float64(i) * 60 * math.Pi / 180
		cx := center.X + math.Cos(angle)*16
		cy := center.Y + math.Sin(angle)*16
		c.Circle(Point{cx, cy}, 8, chars[(i+3)%len(chars)])
	}
}

// Fibonacci traces points along the golden angle, connecting consecutive
// points that land on the canvas.
func Fibonacci(c *Canvas) {
	chars := []rune{'.', ':', '-', '=', '+', '*', '#', '@'}
	center := c.Center()
	prev := center

	for i := 0; i < 144; i++ {
		angle := float64(i) * math.Pi / 180 * 137.508
		radius := 0.3 * float64(i) * 0.5

		x := center.X + math.Cos(angle)*radius
		y := center.Y + math.Sin(angle)*radius*0.4

		if x >= 0 && x < float64(c.Width) && y >= 0 && y < float64(c.Height) {
			ch := chars[i%len(chars)]
			c.Set(int(x), int(y), ch)
			c.Line(prev, Point{x, y}, ch)
			prev = Point{x, y}
		}
	}
}

// Lissajous plots x = sin(a·t + delta), y = sin(b·t) scaled to a third of
// the canvas in each axis.
func Lissajous(c *Canvas, a, b int, delta float64) {
	chars := []rune{'.', '+', '*'}
	center := c.Center()
	var prev Point
	prevSet := false

	for t := 0; t < 1000; t++ {
		angle := float64(t) * 2 * math.Pi / 1000
		x := center.X + float64(c.Width)/3*math.Sin(float64(a)*angle+delta)
		y := center.Y + float64(c.Height)/3*math.Sin(float64(b)*angle)

		if x >= 0 && x < float64(c.Width) && y >= 0 && y < float64(c.Height) {
			ch := chars[t%len(chars)]
			c.Set(int(x), int(y), ch)
			if prevSet {
				c.Line(prev, Point{x, y}, ch)
			}
			prev, prevSet = Point{x, y}, true
		}
	}
}

// Phyllotaxis scatters 500 points at the golden angle and links every
// pair closer than three cells.
func Phyllotaxis(c *Canvas) {
	chars := []rune{'.', ':', ';', '+', '*', 'o', 'O', '@'}
	center := c.Center()
	points := make([]Point, 0, 500)

	for i := 0; i < 500; i++ {
		angle := float64(i) * 137.5 * math.Pi / 180
		radius := 0.4 * math.Sqrt(float64(i))

		x := center.X + math.Cos(angle)*radius
		y := center.Y + math.Sin(angle)*radius

		points = append(points, Point{x, y})
		c.Set(int(x), int(y), chars[i%len(chars)])
	}

	for i := range points {
		stop := i + 50
		if stop > len(points) {
			stop = len(points)
		}
		for j := i + 1; j < stop; j++ {
			dx := points[j].X - points[i].X
			dy := points[j].Y - points[i].Y
			if math.Sqrt(dx*dx+dy*dy) < 3 {
				c.Line(points[i], points[j], '.')
			}
		}
	}
}

// RandomWalk wanders from the center, shifting glyphs from light to heavy
// as the walk ages. Steps that would leave the canvas are discarded.
func RandomWalk(c *Canvas, steps int, rng particle.Source) {
	chars := []rune{'.', ',', '-', '~', ':', ';', '=', '+', '*', '#', '@'}
	center := c.Center()
	x, y := center.X, center.Y

	for i := 0; i < steps; i++ {
		angle := rng.Float64() * 2 * math.Pi
		stepSize := 0.5 + rng.Float64()*1.5

		nx := x + math.Cos(angle)*stepSize
		ny := y + math.Sin(angle)*stepSize*0.5

		if ix, iy := int(nx), int(ny); ix >= 0 && ix < c.Width && iy >= 0 && iy < c.Height {
			idx := i * len(chars) / steps
			if idx >= len(chars) {
				idx = len(chars) - 1
			}
			c.Set(ix, iy, chars[idx])
			c.Line(Point{x, y}, Point{nx, ny}, chars[idx])
			x, y = nx, ny
		}
	}
}

// FlowField traces streamlines through perlin noise, one walker every few
// cells. Each streamline stops at the canvas edge.
func FlowField(c *Canvas, seed int64) {
	chars := []rune{'.', ':', '-', '=', '+', '*'}
	noise := perlin.NewPerlin(2, 2, 3, seed)

	const scale = 0.08
	const steps = 40

	for gy := 0; gy < c.Height; gy += 4 {
		for gx := 0; gx < c.Width; gx += 5 {
			x, y := float64(gx), float64(gy)
			for s := 0; s < steps; s++ {
				angle := noise.Noise2D(x*scale, y*scale) * 2 * math.Pi
				nx := x + math.Cos(angle)
				ny := y + math.Sin(angle)*0.5
				ix, iy := int(nx), int(ny)
				if ix < 0 || ix >= c.Width || iy < 0 || iy >= c.Height {
					break
				}
				c.SetIfBlank(ix, iy, chars[s*len(chars)/steps])
				x, y = nx, ny
			}
		}
	}
}
