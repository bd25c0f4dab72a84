package core

import "errors"

// Sentinel errors for instance construction.
var (
	// ErrNoNodes indicates a node count smaller than 1.
	ErrNoNodes = errors.New("core: node count must be at least 1")

	// ErrNodeOutOfRange indicates a node id outside [0, NodeCount).
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrSameSourceSink indicates source == sink.
	ErrSameSourceSink = errors.New("core: source and sink must differ")

	// ErrNegativeCapacity indicates an edge with capacity < 0.
	ErrNegativeCapacity = errors.New("core: negative edge capacity")
)

// Edge is one directed capacitated edge of an instance.
//
// From and To are node ids in [0, NodeCount). Cap is a non-negative integer
// capacity; zero is legal. Parallel Edge values between the same endpoints
// are independent, and From == To (a self-loop) is tolerated.
type Edge struct {
	// From is the tail node id.
	From int

	// To is the head node id.
	To int

	// Cap is the edge capacity, ≥ 0.
	Cap int64
}
