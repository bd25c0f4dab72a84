// SPDX-License-Identifier: MIT
// Package: flowkit/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Generators attach parameter context via %w wrapping; sentinels are
//     never redefined with formatted strings.
//   - Generators never panic at runtime; panics are confined to option
//     constructors receiving meaningless values (WithRand(nil), ...).

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter (n, rows, cols, left, right)
// below the minimum the requested generator supports.
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("builder: size parameter too small")

// ErrInvalidProbability indicates an edge probability outside the closed
// interval [0, 1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrBadCapacity indicates a maximum capacity below 1; generated edges
// always carry at least one unit.
// Usage: if errors.Is(err, ErrBadCapacity) { /* fix maxCap */ }.
var ErrBadCapacity = errors.New("builder: max capacity must be at least 1")

// ErrNeedRandSource indicates a stochastic generator was invoked without a
// resolved RNG (supply WithSeed or WithRand).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* seed the generator */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")
