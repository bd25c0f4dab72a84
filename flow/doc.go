// Package flow implements three interchangeable maximum-flow algorithms
// over the immutable instances of package core. All of them return the same
// non-negative integer flow value for the same instance; they differ only in
// traversal order and intermediate bookkeeping.
//
//   - FordFulkerson
//
//   - Method: depth-first search for any augmenting path over paired
//     residual edge lists; explicit frame stack, no recursion.
//
//   - Time:   O(E · F), where F is the flow value (integral capacities).
//
//   - Memory: O(V + E).
//
//   - Use when simplicity and moderate capacities suffice.
//
//   - ScalingFordFulkerson
//
//   - Method: capacity scaling, decreasing power-of-two thresholds Δ,
//     breadth-first search over the Δ-restricted residual view.
//
//   - Time:   O(E² log C), with only O(E log C) augmentations.
//
//   - Memory: O(V + E).
//
//   - Pays off on large-capacity networks.
//
//   - PreflowPush
//
//   - Method: FIFO push/relabel with per-node height and excess labels
//     over a dense capacity/flow matrix.
//
//   - Time:   O(V³).
//
//   - Memory: O(V²).
//
//   - Strongest worst-case bound independent of capacity magnitudes.
//
// Each solver builds its own private working state from the instance,
// mutates only that state, and returns a single scalar; nothing persists
// between invocations, so solvers may run concurrently on a shared *Graph.
// Solvers run to completion with no suspension points; termination is
// guaranteed structurally (integer bottlenecks; the height bound for
// preflow-push), not by deadline, so there is deliberately no context hook.
//
// # API
//
// The entry points share one shape:
//
//	func FordFulkerson(g *core.Graph, opts ...Option) (int64, error)
//	func ScalingFordFulkerson(g *core.Graph, opts ...Option) (int64, error)
//	func PreflowPush(g *core.Graph, opts ...Option) (int64, error)
//
// and the Algorithm enum plus Solve dispatch over them uniformly:
//
//	for _, alg := range flow.Algorithms() {
//	    mf, err := flow.Solve(g, alg)
//	    // every alg yields the same mf
//	}
//
// Options configure augmentation printing (WithVerbose) and an OnAugment
// hook invoked with each applied path and bottleneck; the test suites use
// the hook to check flow conservation and capacity feasibility from outside.
//
// MinCut independently computes the minimum-cut capacity and source side
// from a final residual graph, giving tests a duality oracle:
// for every instance, Solve(g, alg) == MinCut(g) value for all algorithms.
//
// # Errors
//
//	ErrGraphNil         - nil instance pointer.
//	ErrUnknownAlgorithm - Solve/ParseAlgorithm with an unknown algorithm.
//
// Instances with no edge leaving the source (or with an unreachable sink)
// are legitimate: every solver returns the true flow value, possibly 0,
// and terminates.
package flow
