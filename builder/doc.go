// SPDX-License-Identifier: MIT
// Package: flowkit/builder
//
// Package builder generates synthetic maximum-flow instances for tests,
// benchmarks, and experimentation. Three families are provided:
//
//   - Random(n, p, maxCap)              — Erdős–Rényi-like: every ordered
//     pair u≠v gets an edge with probability p; the source is guaranteed at
//     least one outgoing edge so instances are never trivially zero-flow.
//   - Mesh(rows, cols, maxCap)          — orthogonal grid with rightward and
//     downward edges; flow runs from the top-left to the bottom-right cell.
//   - Bipartite(left, right, p, maxCap) — source → left layer → right layer
//     → sink, with the middle layer sampled at probability p.
//
// Determinism policy: every generator draws exclusively from the RNG
// resolved out of the options (WithSeed or WithRand — one is required), in
// a fixed documented trial order, so the same parameters and seed always
// produce the identical instance. Capacities default to a uniform draw in
// [1, maxCap]; override with WithCapacityFn.
//
// Instances come back as ready-made *core.Graph values — validation happens
// in core.New, generators only fail on their own parameter errors:
//
//	ErrTooFewNodes        - a size parameter below its minimum.
//	ErrInvalidProbability - p outside [0, 1].
//	ErrBadCapacity        - maxCap < 1.
//	ErrNeedRandSource     - neither WithSeed nor WithRand supplied.
package builder
