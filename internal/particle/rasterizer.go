package particle

// Cell is one character position of a rendered frame. A zero Cell is an
// empty cell (GlyphNone).
type Cell struct {
	Glyph Glyph
	Color Color
}

// Frame is a rasterized snapshot of the particle collection. Cells is
// row-major with length Width*Height.
type Frame struct {
	Width, Height int
	Cells         []Cell
}

func (f *Frame) At(x, y int) Cell {
	return f.Cells[y*f.Width+x]
}

// Rasterizer projects particle collections onto fresh frames.
type Rasterizer struct {
	width, height int
}

func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{width: width, height: height}
}

// Rasterize allocates a blank frame and stamps each particle at its
// truncated integer position. Later particles overwrite earlier ones in
// the same cell. The input is not modified.
func (r *Rasterizer) Rasterize(ps []Particle) *Frame {
	f := &Frame{
		Width:  r.width,
		Height: r.height,
		Cells:  make([]Cell, r.width*r.height),
	}
	for i := range ps {
		x, y := int(ps[i].X), int(ps[i].Y)
		if x < 0 || x >= r.width || y < 0 || y >= r.height {
			continue
		}
		f.Cells[y*r.width+x] = Cell{Glyph: ps[i].Glyph, Color: ps[i].Color}
	}
	return f
}
