package stats

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

const (
	histogramBins = 40
	histogramBar  = 40

	scatterWidth  = 60
	scatterHeight = 25
	scatterPairs  = 500

	walkSamples = 70
)

// Histogram renders a 40-bin horizontal bar chart of the sample
// distribution, with an axis ruler marking 0.0, 0.5 and 1.0.
func Histogram(data []float64) string {
	bins := binCounts(data, histogramBins)
	maxCount := 0
	for _, c := range bins {
		if c > maxCount {
			maxCount = c
		}
	}

	lines := []string{
		"",
		"    Histogram Distribution:",
		"    " + strings.Repeat("=", 62),
		"    0.0" + strings.Repeat(" ", 20) + "0.5" + strings.Repeat(" ", 20) + "1.0",
		"    " + strings.Repeat("|", 61),
	}
	for i, count := range bins {
		barLen := 0
		if maxCount > 0 {
			barLen = count * histogramBar / maxCount
		}
		bar := strings.Repeat("#", barLen)
		lines = append(lines, fmt.Sprintf("    %.3f|%-40s (%d)", float64(i)/histogramBins, bar, count))
	}
	return strings.Join(lines, "\n")
}

// Scatter plots consecutive sample pairs (x[i], x[i+1]) on a 60x25
// grid. Clumps or diagonal bands expose serial correlation that the
// histogram hides.
func Scatter(data []float64) string {
	grid := make([][]rune, scatterHeight)
	for y := range grid {
		grid[y] = make([]rune, scatterWidth)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	pairs := len(data) - 1
	if pairs > scatterPairs {
		pairs = scatterPairs
	}
	for i := 0; i < pairs; i++ {
		x := int(data[i] * scatterWidth)
		y := int(data[i+1] * scatterHeight)
		if x >= 0 && x < scatterWidth && y >= 0 && y < scatterHeight {
			grid[y][x] = '*'
		}
	}

	lines := []string{
		"",
		"    Scatter Plot (consecutive pairs):",
		"    " + strings.Repeat("=", scatterWidth+4),
	}
	for y := scatterHeight - 1; y >= 0; y-- {
		lines = append(lines, "    |"+string(grid[y])+"|")
	}
	lines = append(lines,
		"    "+strings.Repeat("-", scatterWidth+4),
		"    0.0"+strings.Repeat(" ", scatterWidth-15)+"1.0",
	)
	return strings.Join(lines, "\n")
}

// Walk charts the cumulative sum of the first 70 centered samples. An
// unbiased source wanders around zero instead of trending away.
func Walk(data []float64) string {
	n := len(data)
	if n > walkSamples {
		n = walkSamples
	}
	walk := make([]float64, 0, n)
	cumulative := 0.0
	for _, x := range data[:n] {
		cumulative += (x - 0.5) * 4
		walk = append(walk, cumulative)
	}
	if len(walk) < 2 {
		return ""
	}
	chart := asciigraph.Plot(walk,
		asciigraph.Height(10),
		asciigraph.Width(64),
		asciigraph.Caption(fmt.Sprintf("Random Walk (first %d samples)", n)),
	)
	return "\n" + chart
}
