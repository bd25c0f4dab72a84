package flow

import "github.com/katalvlaran/flowkit/core"

// Solve runs the selected algorithm on the instance. Every algorithm maps
// an instance to a single flow value, so callers can switch or iterate them
// (see Algorithms) without coupling to any solver's internals.
func Solve(g *core.Graph, alg Algorithm, opts ...Option) (int64, error) {
	switch alg {
	case FordFulkersonDFS:
		return FordFulkerson(g, opts...)
	case CapacityScaling:
		return ScalingFordFulkerson(g, opts...)
	case PreflowPushFIFO:
		return PreflowPush(g, opts...)
	default:
		return 0, ErrUnknownAlgorithm
	}
}
