package art

import (
	"math"
	"strings"
)

type Point struct {
	X, Y float64
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = ' '
		}
	}
	return c
}

func (c *Canvas) Center() Point {
	return Point{float64(c.Width) / 2, float64(c.Height) / 2}
}

// Set places a glyph, overwriting whatever is there.
func (c *Canvas) Set(x, y int, ch rune) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.Grid[y][x] = ch
}

// SetIfBlank places a glyph only on untouched cells, so crossing strokes
// keep the earlier layer.
func (c *Canvas) SetIfBlank(x, y int, ch rune) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	if c.Grid[y][x] == ' ' {
		c.Grid[y][x] = ch
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = ' '
		}
	}
}

// Line draws between two points using Bresenham's algorithm, filling
// blank cells only.
func (c *Canvas) Line(p1, p2 Point, ch rune) {
	x1, y1 := int(p1.X), int(p1.Y)
	x2, y2 := int(p2.X), int(p2.Y)

	dx := absInt(x2 - x1)
	dy := absInt(y2 - y1)
	sx := -1
	if x1 < x2 {
		sx = 1
	}
	sy := -1
	if y1 < y2 {
		sy = 1
	}
	err := dx - dy

	for {
		c.SetIfBlank(x1, y1, ch)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Circle plots the outline in two-degree steps, overwriting cells.
func (c *Canvas) Circle(center Point, radius float64, ch rune) {
	for deg := 0; deg < 360; deg += 2 {
		rad := float64(deg) * math.Pi / 180
		x := center.X + math.Cos(rad)*radius
		y := center.Y + math.Sin(rad)*radius
		c.Set(int(x), int(y), ch)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
