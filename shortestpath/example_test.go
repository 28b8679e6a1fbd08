package shortestpath_test

import (
	"fmt"
	"strings"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/fstio"
	"github.com/elliotfiske/cmu-lextool-sub001/semiring"
	"github.com/elliotfiske/cmu-lextool-sub001/shortestpath"
)

const latticeText = `
0 1 1 1 1
0 1 2 2 3
0 2 3 3 2
1 3 4 4 1
2 3 5 5 1
3
`

// ExampleShortestDistance prints the distance from the start and to the final state.
func ExampleShortestDistance() {
	f, err := fstio.ReadText(strings.NewReader(latticeText), semiring.Tropical)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fwd, _ := shortestpath.ShortestDistance(f, false)
	rev, _ := shortestpath.ShortestDistance(f, true)
	fmt.Println(fwd)
	fmt.Println(rev)

	// Output:
	// [0 1 2 2]
	// [2 1 1 0]
}

// ExampleNShortestPaths keeps the two best paths: 1 4 (weight 2) and 3 5 (weight 3).
func ExampleNShortestPaths() {
	f, err := fstio.ReadText(strings.NewReader(latticeText), semiring.Tropical)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	best, err := shortestpath.NShortestPaths(f, 2, false)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("states=%d arcs=%d\n", best.NumStates(), core.NumArcsTotal(best))

	// Output:
	// states=5 arcs=4
}
