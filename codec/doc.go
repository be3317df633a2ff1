// Package codec reads and writes puzzles in their human-facing forms.
//
// Text form: one character per cell, rows top to bottom. Digits 0..8 are
// islands, '-' and '.' are water. Blank lines and surrounding blanks are
// ignored.
//
//	2-2
//	---
//	2-2
//
// Dictionary form: the coordinate to degree mapping as YAML, origin at the
// bottom-left.
//
//	islands:
//	  - {x: 0, y: 0, n: 2}
//
// Render draws a board with its bridges on a doubled grid:
//
//	-------
//	|2---2|
//	||   ||
//	||   ||
//	||   ||
//	|2---2|
//	-------
//
// Single bridges are '-' and '|', double bridges '=' and '"'.
//
// Every parse failure wraps core.ErrMalformedInput.
package codec
