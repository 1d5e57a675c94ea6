package particle

// Glyph is the closed set of characters a particle can render as.
// GlyphNone marks an empty frame cell and is never spawned.
type Glyph uint8

const (
	GlyphNone Glyph = iota
	GlyphDot
	GlyphStar
	GlyphPlus
	GlyphRing
	GlyphOrb
)

var glyphRunes = [...]rune{' ', '.', '*', '+', 'o', 'O'}

func (g Glyph) Rune() rune {
	if int(g) >= len(glyphRunes) {
		return ' '
	}
	return glyphRunes[g]
}

// spawnGlyphs is the spawn alphabet, indexed cyclically by the emitter.
var spawnGlyphs = [...]Glyph{GlyphDot, GlyphStar, GlyphPlus, GlyphRing, GlyphOrb}

// Color is an opaque tint tag. How a tag renders is up to the
// presentation layer; the engine only cycles and copies it.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite

	NumColors = 7
)

var colorNames = [NumColors]string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func (c Color) String() string {
	if int(c) >= NumColors {
		return "unknown"
	}
	return colorNames[c]
}

// Particle is one animated element. Position and velocity are continuous;
// the canvas quantizes them only at rasterization time.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Glyph   Glyph
	Color   Color
}

// LifeRatio reports remaining life as a fraction of MaxLife.
func (p *Particle) LifeRatio() float64 {
	return float64(p.Life) / float64(p.MaxLife)
}
