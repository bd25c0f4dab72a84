// Package flowkit is a compact toolkit for maximum-flow computation on
// directed networks with integer capacities.
//
// The module is organized into small, focused packages:
//
//	core/    - immutable flow-network instances: node count, capacitated
//	           edge list, designated source and sink. Built once, validated
//	           once, never mutated by any solver.
//	flow/    - the engine: three interchangeable max-flow algorithms over
//	           the same instance type:
//	           FordFulkerson        (DFS augmenting paths)
//	           ScalingFordFulkerson (capacity-scaling + BFS phases)
//	           PreflowPush          (FIFO push/relabel over a flow matrix)
//	           plus MinCut for independent max-flow/min-cut verification.
//	flowio/  - plain-text instance loader ("<u> <v> <capacity>" lines with
//	           labelled source/sink nodes).
//	builder/ - deterministic synthetic instance generators
//	           (Random, Mesh, Bipartite) for tests and benchmarks.
//	cmd/flowkit - command-line driver: load or generate an instance, run
//	           one or all algorithms, report flow values and timings.
//
// All three solvers return the same integer flow value for the same
// instance; the test suites hold them to that, and to max-flow = min-cut
// duality, on both fixed and seeded-random networks.
//
// Quick example:
//
//	g, err := core.New(4, []core.Edge{
//	    {From: 0, To: 1, Cap: 10},
//	    {From: 0, To: 2, Cap: 5},
//	    {From: 1, To: 3, Cap: 10},
//	    {From: 1, To: 2, Cap: 5},
//	    {From: 2, To: 3, Cap: 20},
//	}, 0, 3)
//	// ...
//	mf, err := flow.FordFulkerson(g) // 15
//
//	go get github.com/katalvlaran/flowkit
package flowkit
