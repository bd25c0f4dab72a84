package flow

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/flowkit/core"
)

// scalingArc is one edge of the Δ-restricted residual view. It remembers the
// original edge index and direction so an augmentation can be applied to the
// per-edge flow array directly.
type scalingArc struct {
	to      int
	cap     int64 // residual capacity within the restricted view
	edge    int   // index into the instance's edge list
	forward bool  // true: raise flow[edge]; false: undo previously sent flow
}

// ScalingFordFulkerson computes the maximum flow using capacity scaling:
// the augmenting-path idea restricted, in decreasing power-of-two phases, to
// residual edges at or above the phase threshold Δ, with paths found by
// breadth-first search (shortest by edge count within a phase).
//
// Steps:
//  1. Δ₀ = largest power of two not exceeding the maximum capacity of any
//     edge leaving the source; no edge leaving the source ⇒ return 0.
//  2. For Δ = Δ₀, Δ₀/2, …, 1:
//     repeat until no path at this threshold:
//     a. Build the restricted view: forward arcs with residual ≥ Δ in edge
//     order, then backward arcs with flow ≥ Δ in edge order.
//     b. BFS source→sink over the view (FIFO, each node visited once,
//     sink test on dequeue).
//     c. Bottleneck = minimum arc capacity along the path; apply it by
//     raising forward-arc flow and lowering traversed-backward flow.
//  3. The answer is the total flow on edges leaving the source.
//
// Restricting to large-residual edges first bounds the augmentation count by
// O(E log C) instead of O(V·E), at the cost of one BFS (and one view
// rebuild) per augmentation.
//
// Flow is tracked per edge index, so parallel edges keep independent
// capacities throughout.
//
// Complexity:
//
//	Time:   O(E² log C) worst case (O(E) per view rebuild + BFS,
//	        O(E log C) augmentations).
//	Memory: O(V + E).
func ScalingFordFulkerson(g *core.Graph, opts ...Option) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := resolveOptions(opts)
	source, sink := g.Source(), g.Sink()

	// 1) Largest capacity leaving the source fixes Δ₀.
	var maxCap int64
	for i := 0; i < g.EdgeCount(); i++ {
		if e := g.Edge(i); e.From == source && e.Cap > maxCap {
			maxCap = e.Cap
		}
	}
	if maxCap == 0 {
		return 0, nil
	}

	// flowByEdge[i] is the current flow on the i-th original edge.
	flowByEdge := make([]int64, g.EdgeCount())

	// 2) Phases with integer halving until Δ < 1.
	for delta := int64(1) << (bits.Len64(uint64(maxCap)) - 1); delta >= 1; delta >>= 1 {
		for {
			view := restrictedView(g, flowByEdge, delta)
			arcs := bfsRestricted(view, g.NodeCount(), source, sink)
			if arcs == nil {
				break
			}

			bottleneck := arcs[0].cap
			for _, a := range arcs[1:] {
				if a.cap < bottleneck {
					bottleneck = a.cap
				}
			}

			for _, a := range arcs {
				if a.forward {
					flowByEdge[a.edge] += bottleneck
				} else {
					flowByEdge[a.edge] -= bottleneck
				}
			}

			if o.Verbose || o.OnAugment != nil {
				path := make([]int, 0, len(arcs)+1)
				path = append(path, source)
				for _, a := range arcs {
					path = append(path, a.to)
				}
				if o.Verbose {
					fmt.Printf("augmenting path %v with flow %d (delta %d)\n", path, bottleneck, delta)
				}
				if o.OnAugment != nil {
					o.OnAugment(path, bottleneck)
				}
			}
		}
	}

	// 3) Total flow leaves the source; BFS never re-enters the visited
	// source, so no edge into it ever carries flow.
	var total int64
	for i := 0; i < g.EdgeCount(); i++ {
		if g.Edge(i).From == source {
			total += flowByEdge[i]
		}
	}

	return total, nil
}

// restrictedView builds the Δ-restricted residual adjacency: per node, all
// qualifying forward arcs in edge order, then all qualifying backward arcs
// in edge order. Self-loops never qualify.
func restrictedView(g *core.Graph, flowByEdge []int64, delta int64) [][]scalingArc {
	view := make([][]scalingArc, g.NodeCount())

	for i := 0; i < g.EdgeCount(); i++ {
		e := g.Edge(i)
		if e.From == e.To {
			continue
		}
		if rc := e.Cap - flowByEdge[i]; rc >= delta {
			view[e.From] = append(view[e.From], scalingArc{to: e.To, cap: rc, edge: i, forward: true})
		}
	}
	for i := 0; i < g.EdgeCount(); i++ {
		e := g.Edge(i)
		if e.From == e.To {
			continue
		}
		if flowByEdge[i] >= delta {
			view[e.To] = append(view[e.To], scalingArc{to: e.From, cap: flowByEdge[i], edge: i, forward: false})
		}
	}

	return view
}

// bfsRestricted finds the shortest (fewest-arc) source→sink path in the
// restricted view. It returns the traversed arcs in source→sink order, or
// nil when the sink is unreachable.
func bfsRestricted(view [][]scalingArc, n, source, sink int) []scalingArc {
	visited := make([]bool, n)
	parentArc := make([]scalingArc, n)
	parentNode := make([]int, n)
	for i := range parentNode {
		parentNode[i] = -1
	}

	queue := make([]int, 0, n)
	queue = append(queue, source)
	visited[source] = true

	for head := 0; head < len(queue); head++ {
		u := queue[head]

		if u == sink {
			// Walk parent pointers back to the source, then reverse.
			var arcs []scalingArc
			for cur := sink; cur != source; cur = parentNode[cur] {
				arcs = append(arcs, parentArc[cur])
			}
			for i, j := 0, len(arcs)-1; i < j; i, j = i+1, j-1 {
				arcs[i], arcs[j] = arcs[j], arcs[i]
			}

			return arcs
		}

		for _, a := range view[u] {
			if visited[a.to] {
				continue
			}
			visited[a.to] = true
			parentArc[a.to] = a
			parentNode[a.to] = u
			queue = append(queue, a.to)
		}
	}

	return nil
}
