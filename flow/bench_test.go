package flow_test

import (
	"testing"

	"github.com/katalvlaran/flowkit/builder"
	"github.com/katalvlaran/flowkit/core"
	"github.com/katalvlaran/flowkit/flow"
)

// BenchmarkFlowAlgorithms measures Ford–Fulkerson, capacity scaling, and
// FIFO preflow-push on instances of increasing size and density.
// Each algorithm runs as a sub-benchmark over the same prebuilt instance.
func BenchmarkFlowAlgorithms(b *testing.B) {
	cases := []struct {
		name     string
		nodes    int
		edgeProb float64
		maxCap   int64
		seed     int64
	}{
		{"Small", 200, 0.05, 10, 42},
		{"Medium", 500, 0.02, 20, 4242},
		{"Large", 1000, 0.01, 50, 424242},
	}

	for _, tc := range cases {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			// Build the instance once per case to isolate algorithmic cost.
			g, err := builder.Random(tc.nodes, tc.edgeProb, tc.maxCap, builder.WithSeed(tc.seed))
			if err != nil {
				b.Fatalf("build instance: %v", err)
			}

			for _, alg := range flow.Algorithms() {
				alg := alg
				b.Run(alg.String(), func(b *testing.B) {
					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						if _, err := flow.Solve(g, alg); err != nil {
							b.Fatal(err)
						}
					}
				})
			}
		})
	}
}

// BenchmarkFlowShapes compares the solvers across the generator families,
// whose structure stresses different algorithm behaviors: meshes have many
// short disjoint paths, bipartite instances many unit-length augmentations.
func BenchmarkFlowShapes(b *testing.B) {
	shapes := []struct {
		name  string
		build func() (*core.Graph, error)
	}{
		{"Mesh20x20", func() (*core.Graph, error) {
			return builder.Mesh(20, 20, 100, builder.WithSeed(7))
		}},
		{"Bipartite50x50", func() (*core.Graph, error) {
			return builder.Bipartite(50, 50, 0.1, 100, builder.WithSeed(7))
		}},
	}

	for _, sh := range shapes {
		sh := sh
		b.Run(sh.name, func(b *testing.B) {
			g, err := sh.build()
			if err != nil {
				b.Fatalf("build instance: %v", err)
			}

			for _, alg := range flow.Algorithms() {
				alg := alg
				b.Run(alg.String(), func(b *testing.B) {
					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						if _, err := flow.Solve(g, alg); err != nil {
							b.Fatal(err)
						}
					}
				})
			}
		})
	}
}
