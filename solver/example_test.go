package solver_test

import (
	"fmt"

	"github.com/katalvlaran/hashi/core"
	"github.com/katalvlaran/hashi/solver"
)

// ExampleSolve solves a four-island ring. No single island is forced, but a
// double bridge on any side would cut that pair off, which leaves one bridge
// per side.
func ExampleSolve() {
	b, _ := core.FromMap(map[core.Point]int{
		{X: 0, Y: 0}: 2, {X: 2, Y: 0}: 2,
		{X: 0, Y: 2}: 2, {X: 2, Y: 2}: 2,
	})

	rep, err := solver.Solve(b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("passes=%d edges=%d vetoed=%d complete=%t\n",
		rep.Passes, rep.EdgesAdded, rep.Vetoed, rep.Complete)
	for _, br := range b.Bridges() {
		k := br.Key
		fmt.Printf("(%d,%d)-(%d,%d) %d\n", k.X1, k.Y1, k.X2, k.Y2, br.Count)
	}

	// Output:
	// passes=3 edges=4 vetoed=4 complete=true
	// (0,0)-(2,0) 1
	// (0,0)-(0,2) 1
	// (2,0)-(2,2) 1
	// (0,2)-(2,2) 1
}

// ExampleFillVertex shows a vertex whose degree leaves no choice.
func ExampleFillVertex() {
	b, _ := core.FromMap(map[core.Point]int{
		{X: 0, Y: 0}: 4, {X: 3, Y: 0}: 2, {X: 0, Y: 2}: 2,
	})
	corner, _ := b.Index(0, 0)

	added, _ := solver.FillVertex(b, corner)
	fmt.Println(len(added), b.Complete())

	// Output:
	// 4 true
}
