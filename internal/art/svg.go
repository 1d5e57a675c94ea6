package art

import (
	"fmt"
	"strings"
)

var glyphColors = map[rune]string{
	'*': "#FF6B6B", '+': "#4ECDC4", 'o': "#FFE66D",
	'O': "#FF8C42", '@': "#F72585", '#': "#7209B7",
	'.': "#3A86FF", ':': "#8338EC", '-': "#FF006E",
}

// CanvasToSVG renders every inked cell as a colored dot, ten pixels per
// cell, with the title across the top. Glyphs without a mapped color
// fall back to white.
func CanvasToSVG(c *Canvas, title string) string {
	width := c.Width * 10
	height := c.Height * 10

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="black"/>
<text x="50%%" y="30" text-anchor="middle" fill="white" font-size="24">%s</text>
`, width, height, width, height, title))

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			ch := c.Grid[y][x]
			if ch == ' ' {
				continue
			}
			color, ok := glyphColors[ch]
			if !ok {
				color = "#FFFFFF"
			}
			sb.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="3" fill="%s"/>
`, x*10+5, y*10+50, color))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
