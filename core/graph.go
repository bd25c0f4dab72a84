package core

import "fmt"

// Graph is an immutable maximum-flow instance.
//
// Construct it with New; the zero value is not usable. All accessors are
// read-only and safe for concurrent use.
type Graph struct {
	nodeCount int
	edges     []Edge
	source    int
	sink      int
}

// New validates and builds an instance.
//
// Requirements:
//   - nodeCount ≥ 1 (ErrNoNodes),
//   - source and sink in [0, nodeCount) and distinct
//     (ErrNodeOutOfRange, ErrSameSourceSink),
//   - every edge endpoint in [0, nodeCount) and every capacity ≥ 0
//     (ErrNodeOutOfRange, ErrNegativeCapacity).
//
// The edge slice is copied, so the caller may reuse or mutate its own copy
// afterwards. Edge order is preserved: solvers visit residual edges in
// exactly this order, which makes their traversal deterministic.
//
// Complexity: O(E) time, O(E) memory.
func New(nodeCount int, edges []Edge, source, sink int) (*Graph, error) {
	if nodeCount < 1 {
		return nil, fmt.Errorf("node count %d: %w", nodeCount, ErrNoNodes)
	}
	if source < 0 || source >= nodeCount {
		return nil, fmt.Errorf("source %d with %d nodes: %w", source, nodeCount, ErrNodeOutOfRange)
	}
	if sink < 0 || sink >= nodeCount {
		return nil, fmt.Errorf("sink %d with %d nodes: %w", sink, nodeCount, ErrNodeOutOfRange)
	}
	if source == sink {
		return nil, fmt.Errorf("source = sink = %d: %w", source, ErrSameSourceSink)
	}

	// Validate every edge before committing to a copy.
	for i, e := range edges {
		if e.From < 0 || e.From >= nodeCount || e.To < 0 || e.To >= nodeCount {
			return nil, fmt.Errorf("edge %d (%d→%d): %w", i, e.From, e.To, ErrNodeOutOfRange)
		}
		if e.Cap < 0 {
			return nil, fmt.Errorf("edge %d (%d→%d, cap %d): %w", i, e.From, e.To, e.Cap, ErrNegativeCapacity)
		}
	}

	g := &Graph{
		nodeCount: nodeCount,
		edges:     make([]Edge, len(edges)),
		source:    source,
		sink:      sink,
	}
	copy(g.edges, edges)

	return g, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return g.nodeCount }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edge returns the i-th edge in construction order.
// It panics if i is out of range, mirroring slice indexing.
func (g *Graph) Edge(i int) Edge { return g.edges[i] }

// Edges returns a copy of the edge list in construction order.
// The copy keeps the instance immutable; hot paths should prefer
// EdgeCount/Edge to avoid the allocation.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Source returns the source node id.
func (g *Graph) Source() int { return g.source }

// Sink returns the sink node id.
func (g *Graph) Sink() int { return g.sink }
