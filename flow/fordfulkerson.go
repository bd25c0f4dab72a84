package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/flowkit/core"
)

// unboundedFlow seeds the bottleneck threading: the source frame starts with
// "no limit yet", and every traversed edge can only lower it.
const unboundedFlow = int64(math.MaxInt64)

// FordFulkerson computes the maximum flow of the instance using the
// Ford–Fulkerson method: repeat a depth-first search for any source→sink
// path with positive residual capacity, push the path's bottleneck, stop
// when a search finds nothing.
//
// Steps:
//  1. Build the paired residual edge lists (O(V + E)).
//  2. Repeat:
//     a. Run one DFS over edges with cap > 0, visiting each node at most
//     once per search; neighbor order is residual append order.
//     b. On reaching the sink, the bottleneck is the minimum residual
//     capacity along the discovered path, threaded through the search
//     frames rather than recomputed; the augmentation is applied to every
//     edge pair on the path before the next search starts.
//     c. A search that pushes 0 terminates the loop.
//  3. The answer is the sum of all pushed bottlenecks.
//
// The search uses an explicit stack of (node, edge-position, limit) frames,
// so recursion depth never limits instance size; traversal order and
// bottleneck computation match the recursive formulation exactly.
//
// Complexity:
//
//	Time:   O(E · F) where F is the max flow value; capacities are
//	        integers, so every iteration raises the total by at least 1.
//	Memory: O(V + E).
func FordFulkerson(g *core.Graph, opts ...Option) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := resolveOptions(opts)

	res := newResidual(g)
	visited := make([]bool, g.NodeCount())

	var total int64
	for {
		// Fresh visited markers for each search.
		for i := range visited {
			visited[i] = false
		}

		pushed, path := dfsAugment(res, g.Source(), g.Sink(), visited)
		if pushed == 0 {
			break
		}
		total += pushed

		if o.Verbose {
			fmt.Printf("augmenting path %v with flow %d\n", path, pushed)
		}
		if o.OnAugment != nil {
			o.OnAugment(path, pushed)
		}
	}

	return total, nil
}

// dfsFrame is one element of the explicit DFS stack: the node being
// explored, the position of the next residual edge to try, and the
// bottleneck capacity accumulated from the source to this node.
type dfsFrame struct {
	node  int
	next  int
	limit int64
}

// dfsAugment runs a single depth-first search from source toward sink over
// residual edges with positive capacity. On success it applies the
// augmentation in place and returns the bottleneck plus the node path
// (source first); on failure it returns 0 and leaves visited marking the
// full residual-reachable set, which MinCut relies on.
func dfsAugment(res [][]resEdge, source, sink int, visited []bool) (int64, []int) {
	stack := []dfsFrame{{node: source, limit: unboundedFlow}}
	visited[source] = true

	for len(stack) > 0 {
		fr := &stack[len(stack)-1]

		if fr.node == sink {
			// The sink frame's limit is the threaded bottleneck.
			delta := fr.limit

			// Frame i was entered through edge stack[i-1].next-1; walk the
			// stack once, moving delta across every traversed pair.
			for i := 1; i < len(stack); i++ {
				e := &res[stack[i-1].node][stack[i-1].next-1]
				e.cap -= delta
				res[e.to][e.rev].cap += delta
			}

			path := make([]int, len(stack))
			for i := range stack {
				path[i] = stack[i].node
			}

			return delta, path
		}

		// Advance this frame's edge cursor to the next usable edge.
		descended := false
		for fr.next < len(res[fr.node]) {
			e := res[fr.node][fr.next]
			fr.next++
			if e.cap <= 0 || visited[e.to] {
				continue
			}

			visited[e.to] = true
			limit := fr.limit
			if e.cap < limit {
				limit = e.cap
			}
			stack = append(stack, dfsFrame{node: e.to, limit: limit})
			descended = true

			break
		}

		if !descended {
			// Dead end: pop the frame. The node stays visited for the rest
			// of this search, exactly as in the recursive version.
			stack = stack[:len(stack)-1]
		}
	}

	return 0, nil
}
