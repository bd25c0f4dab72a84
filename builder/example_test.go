// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/flowkit/builder"
	"github.com/katalvlaran/flowkit/flow"
)

// ExampleMesh builds a 2×3 unit-capacity grid and solves it: two
// vertex-disjoint corner-to-corner routes exist, so the max flow is 2.
func ExampleMesh() {
	g, _ := builder.Mesh(2, 3, 1,
		builder.WithSeed(1),
		builder.WithCapacityFn(func(_ *rand.Rand, _ int64) int64 { return 1 }))

	maxFlow, _ := flow.FordFulkerson(g)
	fmt.Println(g.NodeCount(), g.EdgeCount(), maxFlow)
	// Output:
	// 6 7 2
}
