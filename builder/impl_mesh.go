// SPDX-License-Identifier: MIT
// Package: flowkit/builder
//
// impl_mesh.go — Mesh(rows, cols, maxCap) generator.
//
// Canonical model:
//   - rows×cols cells in row-major order: cell (r, c) is node r*cols+c.
//   - Each cell gets an edge to its right neighbor (r, c+1) and its bottom
//     neighbor (r+1, c) where those exist; capacities via cfg.capFn.
//   - Source is the top-left cell (node 0), sink the bottom-right
//     (node rows*cols-1), so flow crosses the whole mesh.
//
// Determinism:
//   - Stable emission order: r ascending, c ascending, Right before Bottom.

package builder

import (
	"fmt"

	"github.com/katalvlaran/flowkit/core"
)

const (
	methodMesh = "Mesh"
	minMeshDim = 1
)

// Mesh builds a rows×cols orthogonal grid instance.
// Complexity: O(rows·cols) time and memory.
func Mesh(rows, cols int, maxCap int64, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)

	if rows < minMeshDim || cols < minMeshDim || rows*cols < minRandomNodes {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (need ≥%d each and ≥%d cells): %w",
			methodMesh, rows, cols, minMeshDim, minRandomNodes, ErrTooFewNodes)
	}
	if maxCap < minEdgeCapacity {
		return nil, fmt.Errorf("%s: maxCap=%d: %w", methodMesh, maxCap, ErrBadCapacity)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodMesh, ErrNeedRandSource)
	}

	n := rows * cols
	edges := make([]core.Edge, 0, 2*n)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				edges = append(edges, core.Edge{From: u, To: u + 1, Cap: cfg.capFn(cfg.rng, maxCap)})
			}
			if r+1 < rows {
				edges = append(edges, core.Edge{From: u, To: u + cols, Cap: cfg.capFn(cfg.rng, maxCap)})
			}
		}
	}

	return core.New(n, edges, 0, n-1)
}
