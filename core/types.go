// Package core defines the central Board, Vertex, Edge and Cluster types of a
// Hashiwokakero puzzle, together with the sentinel errors and options shared by
// every other package of the module.
//
// Errors:
//
//	ErrInvalidConnection     - edge requested between vertices without a potential connection.
//	ErrMalformedInput        - bad degree, slot list, coordinates or edge geometry.
//	ErrInternalInconsistency - a deduction or construction met a state it cannot explain.
//	ErrSlotClosed            - closing a slot that is already closed (recoverable).
//	ErrSlotEstablished       - closing or filling a slot that already holds a bridge.
//	ErrVertexIndex           - vertex index out of range.
//	ErrUnsolved              - Verify found the board is not a complete solution.
package core

import (
	"errors"
	"log/slog"
)

// Sentinel errors for core puzzle operations.
var (
	// ErrInvalidConnection indicates an edge was requested between two vertices
	// that are not neighbors, have no open slot toward each other, or whose
	// segment is crossed by a placed edge. It signals a caller logic error.
	ErrInvalidConnection = errors.New("core: invalid connection")

	// ErrMalformedInput indicates input that must be rejected before solving:
	// degree out of range, slot list of the wrong length, duplicate coordinates
	// or a non axis-aligned edge.
	ErrMalformedInput = errors.New("core: malformed input")

	// ErrInternalInconsistency indicates a propagation rule met a state it
	// cannot explain. Solving must abort.
	ErrInternalInconsistency = errors.New("core: internal inconsistency")

	// ErrSlotClosed indicates an attempt to close an already closed slot.
	// It is recoverable and expected under overlapping deduction rules.
	ErrSlotClosed = errors.New("core: slot already closed")

	// ErrSlotEstablished indicates an attempt to move a slot out of the
	// established state.
	ErrSlotEstablished = errors.New("core: slot already established")

	// ErrVertexIndex indicates a vertex index outside [0, Len()).
	ErrVertexIndex = errors.New("core: vertex index out of range")

	// ErrUnsolved indicates the board is not a valid complete solution.
	ErrUnsolved = errors.New("core: puzzle not solved")
)

const (
	// Multiplicity is the maximum number of parallel bridges between two islands.
	Multiplicity = 2

	// MaxDegree is the largest target degree an island can carry.
	MaxDegree = NumDirections * Multiplicity

	// NumDirections is the number of slot buckets of a vertex.
	NumDirections = 4

	// noNeighbor marks an empty adjacency entry.
	noNeighbor = -1
)

// Direction names one of the four slot buckets of a vertex.
// The numeric order (up, right, down, left) is also the slot layout order.
type Direction int

const (
	// Up points toward larger Y.
	Up Direction = iota
	// Right points toward larger X.
	Right
	// Down points toward smaller Y.
	Down
	// Left points toward smaller X.
	Left
)

// Directions lists all directions in slot layout order.
var Directions = [NumDirections]Direction{Up, Right, Down, Left}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "invalid"
	}
}

// DirectionBetween returns the direction in which (x2,y2) lies as seen from
// (x1,y1). ok is false for identical or diagonal positions.
func DirectionBetween(x1, y1, x2, y2 int) (d Direction, ok bool) {
	switch {
	case x1 == x2 && y2 > y1:
		return Up, true
	case y1 == y2 && x2 > x1:
		return Right, true
	case x1 == x2 && y2 < y1:
		return Down, true
	case y1 == y2 && x2 < x1:
		return Left, true
	}

	return 0, false
}

// SlotState is the state of a single connection slot.
type SlotState int8

const (
	// Open slots may still receive a bridge.
	Open SlotState = iota
	// Established slots hold a bridge.
	Established
	// Closed slots can never receive a bridge.
	Closed
)

// String returns the lower-case state name.
func (s SlotState) String() string {
	switch s {
	case Open:
		return "open"
	case Established:
		return "established"
	case Closed:
		return "closed"
	default:
		return "invalid"
	}
}

// Point is an integer grid coordinate with the origin at the bottom-left.
type Point struct {
	X, Y int
}

// Connection names a (potential or vetoed) link between two vertex indices.
// Dir is the direction of To as seen from From.
type Connection struct {
	From, To int
	Dir      Direction
}

// BoardOption configures a Board before topology is derived.
type BoardOption func(b *Board)

// WithLogger sets the logger used for recoverable warnings
// (closing already closed slots, short batch closes).
// A nil logger keeps the default discard logger.
func WithLogger(l *slog.Logger) BoardOption {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// Board is the Hashiwokakero aggregate: the vertex arena, the derived
// nearest-neighbor topology, the placed edges and the cluster partition.
//
// Vertices are addressed by their index in the arena. Adjacency is computed
// once in NewBoard and never changes; neighbors[i][d] is noNeighbor when no
// vertex lies on the ray from vertex i in direction d.
//
// A Board is not safe for concurrent use.
type Board struct {
	vertices  []*Vertex
	index     map[Point]int
	neighbors [][NumDirections]int
	edges     []Edge
	clusters  *disjointSet
	complete  bool
	logger    *slog.Logger
}
