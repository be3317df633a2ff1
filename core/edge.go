package core

import "fmt"

// Orientation of an edge.
type Orientation int

const (
	// Horizontal edges keep Y constant.
	Horizontal Orientation = iota
	// Vertical edges keep X constant.
	Vertical
)

// String returns the lower-case orientation name.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}

	return "horizontal"
}

// EdgeKey identifies the endpoint pair of an edge. Parallel bridges share a key.
type EdgeKey struct {
	X1, Y1, X2, Y2 int
}

// Edge is an immutable axis-aligned bridge segment.
// The endpoints are normalized so that (X1,Y1) has the smaller coordinate.
type Edge struct {
	X1, Y1 int
	X2, Y2 int
}

// NewEdge builds a normalized edge between two grid points.
// Returns ErrMalformedInput for diagonal or zero-length segments.
func NewEdge(x1, y1, x2, y2 int) (Edge, error) {
	if (x1 != x2 && y1 != y2) || (x1 == x2 && y1 == y2) {
		return Edge{}, fmt.Errorf("%w: edge (%d,%d)-(%d,%d) is not axis-aligned", ErrMalformedInput, x1, y1, x2, y2)
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}

	return Edge{X1: x1, Y1: y1, X2: x2, Y2: y2}, nil
}

// Horizontal reports whether the edge keeps Y constant.
func (e Edge) Horizontal() bool { return e.Y1 == e.Y2 }

// Vertical reports whether the edge keeps X constant.
func (e Edge) Vertical() bool { return e.X1 == e.X2 }

// Orientation returns Horizontal or Vertical.
func (e Edge) Orientation() Orientation {
	if e.Vertical() {
		return Vertical
	}

	return Horizontal
}

// Key returns the endpoint-pair key shared by parallel bridges.
func (e Edge) Key() EdgeKey {
	return EdgeKey{X1: e.X1, Y1: e.Y1, X2: e.X2, Y2: e.Y2}
}

// Len is the number of grid steps between the endpoints.
func (e Edge) Len() int {
	return (e.X2 - e.X1) + (e.Y2 - e.Y1)
}

// Crosses reports whether e and other intersect at a point interior to both.
// Parallel edges and edges that only touch at an endpoint never cross.
func (e Edge) Crosses(other Edge) bool {
	if e.Horizontal() && other.Vertical() {
		return other.Y1 < e.Y1 && other.Y2 > e.Y1 && other.X1 > e.X1 && other.X1 < e.X2
	}
	if e.Vertical() && other.Horizontal() {
		return other.X1 < e.X1 && other.X2 > e.X1 && other.Y1 > e.Y1 && other.Y1 < e.Y2
	}

	return false
}

// Contains reports whether (x,y) lies strictly between the endpoints.
func (e Edge) Contains(x, y int) bool {
	if e.Horizontal() {
		return y == e.Y1 && x > e.X1 && x < e.X2
	}

	return x == e.X1 && y > e.Y1 && y < e.Y2
}

// DirectionOf returns on which side of the edge the point (x,y) lies, seen
// from the point: a horizontal edge above a point is Up from it. ok is false
// when the point is not beside the interior of the edge.
func (e Edge) DirectionOf(x, y int) (d Direction, ok bool) {
	if e.Horizontal() && e.X1 < x && e.X2 > x {
		switch {
		case e.Y1 > y:
			return Up, true
		case e.Y1 < y:
			return Down, true
		}
	}
	if e.Vertical() && e.Y1 < y && e.Y2 > y {
		switch {
		case e.X1 > x:
			return Right, true
		case e.X1 < x:
			return Left, true
		}
	}

	return 0, false
}

// String renders the edge as "Edge((x1,y1) -> (x2,y2))".
func (e Edge) String() string {
	return fmt.Sprintf("Edge((%d,%d) -> (%d,%d))", e.X1, e.Y1, e.X2, e.Y2)
}
