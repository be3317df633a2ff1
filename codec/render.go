package codec

import (
	"strings"

	"github.com/katalvlaran/hashi/core"
)

// bridge glyphs, keyed by what the cell held before one more bridge
var (
	horizontalGlyph = map[byte]byte{' ': '-', '-': '='}
	verticalGlyph   = map[byte]byte{' ': '|', '|': '"'}
)

// Render draws b on a grid of doubled resolution.
//
// Island (x, y) sits on canvas row H-1-2(y-minY), column 2(x-minX); the cells
// in between carry the bridges. The canvas is framed by '|' on both sides
// and a rule of '-' above and below. A board without vertices renders as an
// empty string.
//
// Complexity: O(W×H + E×L) for a canvas of W×H cells and bridges of length L.
func Render(b *core.Board) string {
	if b == nil || b.Len() == 0 {
		return ""
	}
	vs := b.Vertices()
	minX, minY, maxX, maxY := vs[0].X, vs[0].Y, vs[0].X, vs[0].Y
	for _, v := range vs[1:] {
		minX, maxX = min(minX, v.X), max(maxX, v.X)
		minY, maxY = min(minY, v.Y), max(maxY, v.Y)
	}

	h, w := 2*(maxY-minY)+1, 2*(maxX-minX)+1
	canvas := make([][]byte, h)
	for r := range canvas {
		canvas[r] = []byte(strings.Repeat(" ", w))
	}
	row := func(y int) int { return h - 1 - 2*(y-minY) }
	col := func(x int) int { return 2 * (x - minX) }

	for _, v := range vs {
		canvas[row(v.Y)][col(v.X)] = byte('0' + v.N)
	}
	for _, e := range b.Edges() {
		if e.Horizontal() {
			r := row(e.Y1)
			for c := col(e.X1) + 1; c < col(e.X2); c++ {
				canvas[r][c] = horizontalGlyph[canvas[r][c]]
			}
			continue
		}
		c := col(e.X1)
		for r := row(e.Y2) + 1; r < row(e.Y1); r++ {
			canvas[r][c] = verticalGlyph[canvas[r][c]]
		}
	}

	rule := strings.Repeat("-", w+2)
	var sb strings.Builder
	sb.WriteString(rule)
	sb.WriteByte('\n')
	for _, line := range canvas {
		sb.WriteByte('|')
		sb.Write(line)
		sb.WriteString("|\n")
	}
	sb.WriteString(rule)
	sb.WriteByte('\n')

	return sb.String()
}
