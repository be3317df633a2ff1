package core

import (
	"fmt"
	"strings"
)

// Vertex is a single island: its position, target degree N and the state of
// its Multiplicity connection slots in each of the four directions.
//
// A Vertex knows nothing about other vertices. Its slots only change through
// Board operations.
type Vertex struct {
	X, Y int
	N    int

	slots [NumDirections][Multiplicity]SlotState
}

// NewVertex returns a fresh vertex with every slot open.
// A vertex with n == 0 is complete at birth, so all its slots start closed.
// Returns ErrMalformedInput if n lies outside [0, MaxDegree].
func NewVertex(x, y, n int) (*Vertex, error) {
	if n < 0 || n > MaxDegree {
		return nil, fmt.Errorf("%w: degree %d at (%d,%d) outside [0,%d]", ErrMalformedInput, n, x, y, MaxDegree)
	}
	v := &Vertex{X: x, Y: y, N: n}
	v.closeIfComplete()

	return v, nil
}

// RestoreVertex rebuilds a vertex from a flat slot list laid out as
// [u1,u2,r1,r2,d1,d2,l1,l2]. It is the counterpart of Slots.
//
// Returns ErrMalformedInput when the list length differs from
// NumDirections*Multiplicity, a state is unknown, or the list holds more
// established slots than n.
func RestoreVertex(x, y, n int, slots []SlotState) (*Vertex, error) {
	v, err := NewVertex(x, y, n)
	if err != nil {
		return nil, err
	}
	if len(slots) != NumDirections*Multiplicity {
		return nil, fmt.Errorf("%w: %d slots for vertex (%d,%d), want %d",
			ErrMalformedInput, len(slots), x, y, NumDirections*Multiplicity)
	}
	established := 0
	for k, s := range slots {
		if s < Open || s > Closed {
			return nil, fmt.Errorf("%w: unknown slot state %d", ErrMalformedInput, s)
		}
		if s == Established {
			established++
		}
		v.slots[k/Multiplicity][k%Multiplicity] = s
	}
	if established > n {
		return nil, fmt.Errorf("%w: vertex (%d,%d) has %d established slots, degree %d",
			ErrMalformedInput, x, y, established, n)
	}
	v.closeIfComplete()

	return v, nil
}

// Point returns the vertex position.
func (v *Vertex) Point() Point { return Point{X: v.X, Y: v.Y} }

// Slot returns the state of slot k in direction d.
// A direction or slot index out of range reads as Closed.
func (v *Vertex) Slot(d Direction, k int) SlotState {
	if !d.Valid() || k < 0 || k >= Multiplicity {
		return Closed
	}

	return v.slots[d][k]
}

// Slots returns a flat copy of all slots in [u1,u2,r1,r2,d1,d2,l1,l2] order.
func (v *Vertex) Slots() []SlotState {
	out := make([]SlotState, 0, NumDirections*Multiplicity)
	for _, d := range Directions {
		out = append(out, v.slots[d][:]...)
	}

	return out
}

func (v *Vertex) count(d Direction, s SlotState) int {
	n := 0
	for _, cur := range v.slots[d] {
		if cur == s {
			n++
		}
	}

	return n
}

// Established counts bridges in direction d.
func (v *Vertex) Established(d Direction) int { return v.count(d, Established) }

// Open counts slots in direction d that may still take a bridge.
func (v *Vertex) Open(d Direction) int { return v.count(d, Open) }

// ClosedCount counts forbidden slots in direction d.
func (v *Vertex) ClosedCount(d Direction) int { return v.count(d, Closed) }

// HasOpen reports whether direction d has at least one open slot.
func (v *Vertex) HasOpen(d Direction) bool { return v.Open(d) > 0 }

// HasEstablished reports whether direction d holds at least one bridge.
func (v *Vertex) HasEstablished(d Direction) bool { return v.Established(d) > 0 }

// EstablishedCount counts bridges over all directions.
func (v *Vertex) EstablishedCount() int {
	n := 0
	for _, d := range Directions {
		n += v.Established(d)
	}

	return n
}

// OpenCount counts open slots over all directions.
func (v *Vertex) OpenCount() int {
	n := 0
	for _, d := range Directions {
		n += v.Open(d)
	}

	return n
}

// Missing is the number of bridges still needed to reach N.
func (v *Vertex) Missing() int { return v.N - v.EstablishedCount() }

// Complete reports whether the vertex holds exactly N bridges.
func (v *Vertex) Complete() bool { return v.EstablishedCount() == v.N }

// OpenDirections lists the directions with at least one open slot.
func (v *Vertex) OpenDirections() []Direction {
	var out []Direction
	for _, d := range Directions {
		if v.HasOpen(d) {
			out = append(out, d)
		}
	}

	return out
}

// String renders the vertex for logs and test failures.
func (v *Vertex) String() string {
	var sb strings.Builder
	for k, s := range v.Slots() {
		if k > 0 {
			sb.WriteByte(' ')
		}
		switch s {
		case Open:
			sb.WriteByte('0')
		case Established:
			sb.WriteByte('1')
		default:
			sb.WriteByte('x')
		}
	}

	return fmt.Sprintf("Vertex(x: %d, y: %d, n: %d, complete: %t, slots: [%s])",
		v.X, v.Y, v.N, v.Complete(), sb.String())
}

// establish turns the first open slot of direction d into a bridge.
// Reaching N closes every remaining open slot.
func (v *Vertex) establish(d Direction) error {
	for k := range v.slots[d] {
		if v.slots[d][k] == Open {
			v.slots[d][k] = Established
			v.closeIfComplete()
			return nil
		}
	}

	return fmt.Errorf("%w: no open slot %s of vertex (%d,%d)", ErrInvalidConnection, d, v.X, v.Y)
}

// close moves slot k of direction d to Closed.
func (v *Vertex) close(d Direction, k int) error {
	switch v.slots[d][k] {
	case Established:
		return fmt.Errorf("%w: slot %s/%d of vertex (%d,%d)", ErrSlotEstablished, d, k, v.X, v.Y)
	case Closed:
		return fmt.Errorf("%w: slot %s/%d of vertex (%d,%d)", ErrSlotClosed, d, k, v.X, v.Y)
	}
	v.slots[d][k] = Closed

	return nil
}

// closeOpen closes up to n open slots of direction d and returns how many it closed.
func (v *Vertex) closeOpen(d Direction, n int) int {
	closed := 0
	for k := range v.slots[d] {
		if closed == n {
			break
		}
		if v.slots[d][k] == Open {
			v.slots[d][k] = Closed
			closed++
		}
	}

	return closed
}

func (v *Vertex) closeIfComplete() {
	if !v.Complete() {
		return
	}
	for _, d := range Directions {
		v.closeOpen(d, Multiplicity)
	}
}

// fresh reports whether the vertex is still in its construction state.
func (v *Vertex) fresh() bool {
	for _, d := range Directions {
		if v.Established(d) > 0 {
			return false
		}
		if v.ClosedCount(d) > 0 && !v.Complete() {
			return false
		}
	}

	return true
}
