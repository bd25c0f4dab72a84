package flow

import "errors"

// Sentinel errors for solver invocation.
var (
	// ErrGraphNil is returned if a nil instance pointer is passed.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrUnknownAlgorithm is returned by Solve and ParseAlgorithm for an
	// algorithm value outside the known set.
	ErrUnknownAlgorithm = errors.New("flow: unknown algorithm")
)

// Option configures solver behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks shared by all solvers.
type Options struct {
	// Verbose, if true, prints each augmentation (path and pushed amount)
	// for the augmenting-path solvers.
	Verbose bool

	// OnAugment is called after every applied augmentation with the node
	// path (source first, sink last) and the pushed bottleneck amount.
	// Only the augmenting-path solvers (FordFulkerson and
	// ScalingFordFulkerson) produce paths; PreflowPush never calls it.
	OnAugment func(path []int, delta int64)
}

// DefaultOptions returns Options with sane defaults: silent, no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithVerbose toggles per-augmentation printing.
func WithVerbose(v bool) Option {
	return func(o *Options) { o.Verbose = v }
}

// WithOnAugment registers a callback to run after each augmentation.
func WithOnAugment(fn func(path []int, delta int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}

// resolveOptions folds functional options over the defaults.
func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Algorithm selects one of the interchangeable max-flow solvers.
// All of them compute the same value for the same instance; they differ in
// traversal order and intermediate bookkeeping only.
type Algorithm int

const (
	// FordFulkersonDFS selects the DFS augmenting-path solver
	// (FordFulkerson).
	FordFulkersonDFS Algorithm = iota

	// CapacityScaling selects the capacity-scaling augmenting-path solver
	// (ScalingFordFulkerson).
	CapacityScaling

	// PreflowPushFIFO selects the FIFO preflow-push solver (PreflowPush).
	PreflowPushFIFO
)

// String returns the canonical lower-case name used by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case FordFulkersonDFS:
		return "ford-fulkerson"
	case CapacityScaling:
		return "scaling"
	case PreflowPushFIFO:
		return "preflow-push"
	default:
		return "unknown"
	}
}

// ParseAlgorithm resolves a user-facing algorithm name. Accepted spellings:
//
//	"ford-fulkerson", "dfs"          → FordFulkersonDFS
//	"scaling", "capacity-scaling"    → CapacityScaling
//	"preflow-push", "push-relabel"   → PreflowPushFIFO
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "ford-fulkerson", "dfs":
		return FordFulkersonDFS, nil
	case "scaling", "capacity-scaling":
		return CapacityScaling, nil
	case "preflow-push", "push-relabel":
		return PreflowPushFIFO, nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}

// Algorithms returns all solvers in a fixed order, so callers and tests can
// run every algorithm against the same fixture set without naming each one.
func Algorithms() []Algorithm {
	return []Algorithm{FordFulkersonDFS, CapacityScaling, PreflowPushFIFO}
}
