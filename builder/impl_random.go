// SPDX-License-Identifier: MIT
// Package: flowkit/builder
//
// impl_random.go — Random(n, p, maxCap) generator.
//
// Canonical model:
//   - Every ordered pair (u, v), u ≠ v, receives an edge independently with
//     probability p; capacity drawn by cfg.capFn in [1, maxCap].
//   - Source is node 0, sink is node n-1.
//   - If sampling leaves the source without outgoing edges, one edge
//     0 → (random node in [1, n)) with capacity maxCap is added, so the
//     instance is never trivially zero-flow.
//
// Determinism:
//   - Stable trial order: u ascending, then v ascending; the rescue edge,
//     if any, draws last. Identical seed+parameters ⇒ identical instance.

package builder

import (
	"fmt"

	"github.com/katalvlaran/flowkit/core"
)

const (
	methodRandom    = "Random"
	minRandomNodes  = 2
	probabilityMin  = 0.0
	probabilityMax  = 1.0
	minEdgeCapacity = int64(1)
)

// Random samples an Erdős–Rényi-like flow instance over n nodes.
// Complexity: O(n²) Bernoulli trials; O(E) memory.
func Random(n int, p float64, maxCap int64, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)

	if n < minRandomNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minRandomNodes, ErrTooFewNodes)
	}
	if p < probabilityMin || p > probabilityMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandom, p, probabilityMin, probabilityMax, ErrInvalidProbability)
	}
	if maxCap < minEdgeCapacity {
		return nil, fmt.Errorf("%s: maxCap=%d: %w", methodRandom, maxCap, ErrBadCapacity)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	source, sink := 0, n-1

	var edges []core.Edge
	sourceDegree := 0
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v || cfg.rng.Float64() >= p {
				continue
			}
			edges = append(edges, core.Edge{From: u, To: v, Cap: cfg.capFn(cfg.rng, maxCap)})
			if u == source {
				sourceDegree++
			}
		}
	}

	// Rescue edge: a source with no way out makes a useless benchmark.
	if sourceDegree == 0 {
		to := 1 + cfg.rng.Intn(n-1)
		edges = append(edges, core.Edge{From: source, To: to, Cap: maxCap})
	}

	return core.New(n, edges, source, sink)
}
