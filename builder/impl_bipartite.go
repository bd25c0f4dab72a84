// SPDX-License-Identifier: MIT
// Package: flowkit/builder
//
// impl_bipartite.go — Bipartite(left, right, p, maxCap) generator.
//
// Canonical model (matching-style network):
//   - Node ids: source 0; left layer 1..left; right layer
//     left+1..left+right; sink left+right+1.
//   - Source connects to every left node, every right node connects to the
//     sink; each left→right pair gets an edge with probability p.
//     All capacities via cfg.capFn.
//
// Determinism:
//   - Stable emission order: all source→left edges (i asc), then the
//     left→right trials (i asc, then j asc), then right→sink (j asc).

package builder

import (
	"fmt"

	"github.com/katalvlaran/flowkit/core"
)

const (
	methodBipartite  = "Bipartite"
	minPartitionSize = 1
)

// Bipartite builds a source → left → right → sink instance, the classic
// shape for maximum-bipartite-matching style workloads.
// Complexity: O(left·right) trials; O(E) memory.
func Bipartite(left, right int, p float64, maxCap int64, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)

	if left < minPartitionSize || right < minPartitionSize {
		return nil, fmt.Errorf("%s: left=%d, right=%d (each must be ≥ %d): %w",
			methodBipartite, left, right, minPartitionSize, ErrTooFewNodes)
	}
	if p < probabilityMin || p > probabilityMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodBipartite, p, probabilityMin, probabilityMax, ErrInvalidProbability)
	}
	if maxCap < minEdgeCapacity {
		return nil, fmt.Errorf("%s: maxCap=%d: %w", methodBipartite, maxCap, ErrBadCapacity)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodBipartite, ErrNeedRandSource)
	}

	source := 0
	sink := left + right + 1
	n := sink + 1

	var edges []core.Edge
	for i := 1; i <= left; i++ {
		edges = append(edges, core.Edge{From: source, To: i, Cap: cfg.capFn(cfg.rng, maxCap)})
	}
	for i := 1; i <= left; i++ {
		for j := left + 1; j <= left+right; j++ {
			if cfg.rng.Float64() < p {
				edges = append(edges, core.Edge{From: i, To: j, Cap: cfg.capFn(cfg.rng, maxCap)})
			}
		}
	}
	for j := left + 1; j <= left+right; j++ {
		edges = append(edges, core.Edge{From: j, To: sink, Cap: cfg.capFn(cfg.rng, maxCap)})
	}

	return core.New(n, edges, source, sink)
}
