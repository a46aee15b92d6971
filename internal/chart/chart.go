// Package chart renders small terminal charts: block bars, sparklines and
// braille line charts. It knows nothing about colors; callers wrap the
// returned strings in their own styles.
package chart

import (
	"math"
	"strings"
)

// sparklineChars maps levels 0..7 to block elements.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// barEighths holds partial blocks for 1/8 .. 7/8 of a cell.
var barEighths = [7]rune{'▏', '▎', '▍', '▌', '▋', '▊', '▉'}

// brailleDots maps (column 0-1, row 0-3) to the dot bit of a braille cell.
// Braille character = U+2800 + sum of activated dot bits.
var brailleDots = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

const brailleBlank = 0x2800

// Max returns the largest value across all series, or 0 when empty.
// Charts that share a scale pass it as maxValue.
func Max(series ...[]float64) float64 {
	var m float64
	for _, s := range series {
		for _, v := range s {
			if v > m {
				m = v
			}
		}
	}
	return m
}

// normalize maps v into [0, 1] against maxValue.
func normalize(v, maxValue float64) float64 {
	if maxValue <= 0 || math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= maxValue {
		return 1
	}
	return v / maxValue
}

// Bar renders value as a horizontal bar of at most width cells, with
// eighth-cell resolution. A positive value always shows at least one
// partial block.
func Bar(value, maxValue float64, width int) string {
	if width <= 0 {
		return ""
	}
	eighths := int(math.Round(normalize(value, maxValue) * float64(width*8)))
	if eighths == 0 && value > 0 && maxValue > 0 {
		eighths = 1
	}
	var b strings.Builder
	b.WriteString(strings.Repeat("█", eighths/8))
	if rem := eighths % 8; rem > 0 {
		b.WriteRune(barEighths[rem-1])
	}
	return b.String()
}

// Sparkline renders one block character per value, scaled to maxValue.
func Sparkline(values []float64, maxValue float64) string {
	if len(values) == 0 {
		return ""
	}
	runes := make([]rune, len(values))
	for i, v := range values {
		idx := int(normalize(v, maxValue) * 7)
		runes[i] = sparklineChars[idx]
	}
	return string(runes)
}

// Line renders values as a braille line chart of rows text rows and width
// columns. Points are spread evenly across the width and joined by
// straight segments; the value maxValue maps to the top row.
func Line(values []float64, maxValue float64, width, rows int) []string {
	if width <= 0 || rows <= 0 || len(values) == 0 {
		return nil
	}
	dotRows := rows * 4
	dotCols := width * 2

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = brailleBlank
		}
	}
	set := func(col, row int) {
		if col < 0 || col >= dotCols || row < 0 || row >= dotRows {
			return
		}
		grid[row/4][col/2] |= brailleDots[col%2][row%4]
	}
	toRow := func(v float64) float64 {
		return float64(dotRows-1) * (1 - normalize(v, maxValue))
	}
	toCol := func(i int) float64 {
		if len(values) == 1 {
			return 0
		}
		return float64(i) * float64(dotCols-1) / float64(len(values)-1)
	}

	if len(values) == 1 {
		set(0, int(math.Round(toRow(values[0]))))
	}
	for i := 1; i < len(values); i++ {
		x0, x1 := toCol(i-1), toCol(i)
		y0, y1 := toRow(values[i-1]), toRow(values[i])
		steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0)))
		if steps == 0 {
			steps = 1
		}
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			set(int(math.Round(x0+(x1-x0)*t)), int(math.Round(y0+(y1-y0)*t)))
		}
	}

	out := make([]string, rows)
	for r := range grid {
		out[r] = string(grid[r])
	}
	return out
}
