package flowio_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/flowkit/flow"
	"github.com/katalvlaran/flowkit/flowio"
)

// ExampleReadGraph parses a small network and solves it.
func ExampleReadGraph() {
	input := `
# two disjoint routes
s a 4
a t 4
s b 3
b t 3
`
	g, _ := flowio.ReadGraph(strings.NewReader(input))
	maxFlow, _ := flow.FordFulkerson(g)
	fmt.Println(g.NodeCount(), maxFlow)
	// Output:
	// 4 7
}
