package particle

import "testing"

func TestRasterizeTruncation(t *testing.T) {
	r := NewRasterizer(80, 24)

	ps := []Particle{{X: 10.9, Y: 5.1, Glyph: GlyphStar, Color: ColorCyan, Life: 10, MaxLife: 60}}
	f := r.Rasterize(ps)

	got := f.At(10, 5)
	if got.Glyph != GlyphStar || got.Color != ColorCyan {
		t.Errorf("expected star/cyan at (10,5), got %v/%s", got.Glyph, got.Color)
	}
	if f.At(11, 5).Glyph != GlyphNone {
		t.Error("expected neighbour cell empty")
	}
}

func TestRasterizeLastWriterWins(t *testing.T) {
	r := NewRasterizer(80, 24)

	ps := []Particle{
		{X: 3.2, Y: 7.9, Glyph: GlyphStar, Color: ColorRed, Life: 10, MaxLife: 60},
		{X: 3.8, Y: 7.1, Glyph: GlyphOrb, Color: ColorBlue, Life: 10, MaxLife: 60},
	}
	f := r.Rasterize(ps)

	got := f.At(3, 7)
	if got.Glyph != GlyphOrb || got.Color != ColorBlue {
		t.Errorf("expected later particle to win the cell, got %v/%s", got.Glyph, got.Color)
	}
}

func TestRasterizeDeterministic(t *testing.T) {
	r := NewRasterizer(40, 12)

	ps := []Particle{
		{X: 1.5, Y: 2.5, Glyph: GlyphDot, Color: ColorRed, Life: 10, MaxLife: 60},
		{X: 20.1, Y: 6.6, Glyph: GlyphPlus, Color: ColorYellow, Life: 10, MaxLife: 60},
		{X: 39.9, Y: 11.9, Glyph: GlyphOrb, Color: ColorWhite, Life: 10, MaxLife: 60},
	}

	a := r.Rasterize(ps)
	b := r.Rasterize(ps)

	if a.Width != b.Width || a.Height != b.Height {
		t.Fatalf("frame dimensions differ: %dx%d vs %dx%d", a.Width, a.Height, b.Width, b.Height)
	}
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			t.Fatalf("cell %d differs: %v vs %v", i, a.Cells[i], b.Cells[i])
		}
	}
}

func TestRasterizeFreshGrid(t *testing.T) {
	r := NewRasterizer(40, 12)

	ps := []Particle{{X: 5, Y: 5, Glyph: GlyphStar, Color: ColorRed, Life: 10, MaxLife: 60}}
	first := r.Rasterize(ps)
	if first.At(5, 5).Glyph != GlyphStar {
		t.Fatal("expected particle stamped on first frame")
	}

	second := r.Rasterize(nil)
	for i, c := range second.Cells {
		if c.Glyph != GlyphNone {
			t.Fatalf("cell %d not blank on fresh frame: %v", i, c)
		}
	}
}

func TestRasterizeSkipsOutOfRange(t *testing.T) {
	r := NewRasterizer(10, 10)

	// Rasterize guards its own bounds regardless of upstream culling.
	ps := []Particle{
		{X: -1, Y: 5, Glyph: GlyphStar, Life: 10, MaxLife: 60},
		{X: 10.0, Y: 5, Glyph: GlyphStar, Life: 10, MaxLife: 60},
		{X: 5, Y: -1, Glyph: GlyphStar, Life: 10, MaxLife: 60},
		{X: 5, Y: 10.0, Glyph: GlyphStar, Life: 10, MaxLife: 60},
	}
	f := r.Rasterize(ps)

	for i, c := range f.Cells {
		if c.Glyph != GlyphNone {
			t.Fatalf("cell %d stamped by out-of-range particle: %v", i, c)
		}
	}
}
