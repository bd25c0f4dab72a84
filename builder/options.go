// SPDX-License-Identifier: MIT
// Package: flowkit/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors validate and panic on meaningless inputs;
//     generators themselves never panic — they return sentinel errors.
//   - Determinism is explicit: seeding happens via WithSeed or WithRand,
//     no hidden globals.

package builder

import "math/rand"

// BuilderOption customizes generator behavior by mutating the resolved
// builderConfig before generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// builderConfig is the immutable-after-resolution configuration shared by
// all generators.
type builderConfig struct {
	rng   *rand.Rand
	capFn func(r *rand.Rand, maxCap int64) int64
}

// newBuilderConfig folds the options over the defaults. The default
// capacity policy is a uniform integer draw in [1, maxCap].
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		capFn: func(r *rand.Rand, maxCap int64) int64 {
			return 1 + r.Int63n(maxCap)
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and benchmarks to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for stochastic generators.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithCapacityFn overrides the per-edge capacity draw. The function MUST
// return a value in [1, maxCap] and be pure w.r.t. the RNG state to keep
// determinism. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithCapacityFn(fn func(r *rand.Rand, maxCap int64) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithCapacityFn(nil)")
	}
	return func(c *builderConfig) {
		c.capFn = fn
	}
}
