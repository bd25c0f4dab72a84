// Package core defines the immutable flow-network instance shared by every
// solver in flowkit: a node count, an ordered list of directed capacitated
// edges, and designated source and sink nodes.
//
// Nodes are dense integer ids in [0, NodeCount). The edge list keeps its
// construction order; parallel edges are legal and remain independent
// capacities, self-loops are legal and simply carry no flow, and a capacity
// of zero is legal (the edge is unusable until reverse flow exists).
//
// An instance is built once via New, validated once, and never mutated
// afterwards: solvers derive their private working state (residual lists or
// a flow matrix) from it and leave it untouched, so any number of solver
// invocations may share one *Graph concurrently.
//
// Errors:
//
//	ErrNoNodes          - node count < 1.
//	ErrNodeOutOfRange   - source, sink, or an edge endpoint outside [0, n).
//	ErrSameSourceSink   - source == sink (degenerate instance, caller bug).
//	ErrNegativeCapacity - an edge with capacity < 0.
package core
