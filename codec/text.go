package codec

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/hashi/core"
	"github.com/katalvlaran/hashi/gridgraph"
)

// Water cells of the text form.
const (
	waterDash = '-'
	waterDot  = '.'
)

// ParseText reads the text form from r.
//
// Steps:
//  1. Trim every line and drop blank ones.
//  2. Map digits to island degrees and '-' or '.' to gridgraph.Water.
//  3. Build the grid, which rejects ragged rows.
//
// Errors wrap core.ErrMalformedInput, joined with gridgraph.ErrEmptyGrid or
// gridgraph.ErrNonRectangular where those apply.
func ParseText(r io.Reader) (*gridgraph.GridGraph, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row := make([]int, 0, len(text))
		for col, ch := range text {
			switch {
			case ch == waterDash || ch == waterDot:
				row = append(row, gridgraph.Water)
			case ch >= '0' && ch <= '0'+core.MaxDegree:
				row = append(row, int(ch-'0'))
			default:
				return nil, fmt.Errorf("%w: unrecognized character %q at line %d col %d",
					core.ErrMalformedInput, ch, line, col+1)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("codec: read text: %w", err)
	}

	gg, err := gridgraph.NewGridGraph(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrMalformedInput, err)
	}

	return gg, nil
}

// ParseString is ParseText over a string.
func ParseString(s string) (*gridgraph.GridGraph, error) {
	return ParseText(strings.NewReader(s))
}

// FormatText writes the islands of b in text form over their bounding box.
// Bridges are not written. Each row ends with a newline.
func FormatText(w io.Writer, b *core.Board) error {
	gg, err := gridgraph.FromBoard(b)
	if err != nil {
		return err
	}

	var sb strings.Builder
	for _, row := range gg.CellValues {
		for _, v := range row {
			if v == gridgraph.Water {
				sb.WriteByte(waterDash)
				continue
			}
			sb.WriteByte(byte('0' + v))
		}
		sb.WriteByte('\n')
	}
	_, err = io.WriteString(w, sb.String())

	return err
}
