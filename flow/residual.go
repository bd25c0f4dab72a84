package flow

import "github.com/katalvlaran/flowkit/core"

// resEdge is one directed edge of the mutable residual graph used by the
// augmenting-path solvers.
//
// cap is the live remaining capacity: the original capacity for a forward
// edge, 0 for its paired backward edge. rev is the index of the partner edge
// inside res[to], so pushing δ along one edge is always
//
//	e.cap -= δ
//	res[e.to][e.rev].cap += δ
//
// keeping cap ≥ 0 on both sides and the pair sum e.cap+partner.cap invariant.
type resEdge struct {
	to  int
	cap int64
	rev int
}

// newResidual builds per-node residual edge lists from an instance.
//
// For every original edge (u, v, c) a forward edge u→v with capacity c and a
// backward edge v→u with capacity 0 are appended as a matched pair, in input
// order. Iteration order over res[u] equals append order, which is what makes
// the solvers' tie-breaking deterministic. Self-loops are skipped; they can
// never carry flow. Parallel edges stay independent pairs.
//
// Complexity: O(V + E) time and memory.
func newResidual(g *core.Graph) [][]resEdge {
	res := make([][]resEdge, g.NodeCount())
	for i := 0; i < g.EdgeCount(); i++ {
		e := g.Edge(i)
		if e.From == e.To {
			continue
		}
		addResEdge(res, e.From, e.To, e.Cap)
	}

	return res
}

// addResEdge appends the matched forward/backward pair for u→v with the
// given capacity, wiring rev both ways.
func addResEdge(res [][]resEdge, u, v int, capacity int64) {
	res[u] = append(res[u], resEdge{to: v, cap: capacity, rev: len(res[v])})
	res[v] = append(res[v], resEdge{to: u, cap: 0, rev: len(res[u]) - 1})
}
