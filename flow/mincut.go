package flow

import "github.com/katalvlaran/flowkit/core"

// MinCut computes the capacity of a minimum cut separating source from sink,
// together with the source-side node set, ascending.
//
// It drives a private residual graph to maximum flow (DFS augmenting paths)
// and then reads the cut off the final failed search: the nodes that search
// visited are exactly those reachable from the source in the residual graph,
// and the cut capacity is the total original capacity of edges crossing from
// that set to its complement. By max-flow/min-cut duality the returned value
// equals what every solver in this package reports, which makes MinCut an
// independent verification oracle for the test suites.
//
// Complexity: O(E · F) time, O(V + E) memory.
func MinCut(g *core.Graph) (int64, []int, error) {
	if g == nil {
		return 0, nil, ErrGraphNil
	}

	res := newResidual(g)
	visited := make([]bool, g.NodeCount())
	for {
		for i := range visited {
			visited[i] = false
		}
		pushed, _ := dfsAugment(res, g.Source(), g.Sink(), visited)
		if pushed == 0 {
			// visited now marks the residual-reachable side.
			break
		}
	}

	var side []int
	for u := 0; u < g.NodeCount(); u++ {
		if visited[u] {
			side = append(side, u)
		}
	}

	var cut int64
	for i := 0; i < g.EdgeCount(); i++ {
		e := g.Edge(i)
		if e.From != e.To && visited[e.From] && !visited[e.To] {
			cut += e.Cap
		}
	}

	return cut, side, nil
}
