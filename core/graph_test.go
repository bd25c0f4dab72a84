package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flowkit/core"
)

// GraphSuite exercises instance construction and immutability guarantees.
type GraphSuite struct {
	suite.Suite
}

// TestValidInstance verifies accessors on a well-formed instance.
func (s *GraphSuite) TestValidInstance() {
	edges := []core.Edge{
		{From: 0, To: 1, Cap: 10},
		{From: 1, To: 2, Cap: 4},
	}
	g, err := core.New(3, edges, 0, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, g.NodeCount())
	require.Equal(s.T(), 2, g.EdgeCount())
	require.Equal(s.T(), 0, g.Source())
	require.Equal(s.T(), 2, g.Sink())
	require.Equal(s.T(), core.Edge{From: 1, To: 2, Cap: 4}, g.Edge(1))
}

// TestEdgeOrderPreserved verifies the edge list keeps construction order,
// parallel edges included.
func (s *GraphSuite) TestEdgeOrderPreserved() {
	edges := []core.Edge{
		{From: 0, To: 1, Cap: 3},
		{From: 0, To: 1, Cap: 2}, // parallel, stays independent
		{From: 1, To: 1, Cap: 5}, // self-loop, tolerated
	}
	g, err := core.New(2, edges, 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), edges, g.Edges())
}

// TestCallerSliceIsolation verifies mutating the caller's slice (or the
// Edges() copy) never changes the instance.
func (s *GraphSuite) TestCallerSliceIsolation() {
	edges := []core.Edge{{From: 0, To: 1, Cap: 7}}
	g, err := core.New(2, edges, 0, 1)
	require.NoError(s.T(), err)

	edges[0].Cap = 999
	require.Equal(s.T(), int64(7), g.Edge(0).Cap)

	out := g.Edges()
	out[0].Cap = 123
	require.Equal(s.T(), int64(7), g.Edge(0).Cap)
}

// TestZeroCapacityLegal verifies a capacity of zero passes validation.
func (s *GraphSuite) TestZeroCapacityLegal() {
	_, err := core.New(2, []core.Edge{{From: 0, To: 1, Cap: 0}}, 0, 1)
	require.NoError(s.T(), err)
}

// TestNoEdgesLegal verifies an edgeless instance is a legitimate one.
func (s *GraphSuite) TestNoEdgesLegal() {
	g, err := core.New(2, nil, 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, g.EdgeCount())
}

// TestValidationErrors covers every rejection path with errors.Is.
func (s *GraphSuite) TestValidationErrors() {
	cases := []struct {
		name    string
		n       int
		edges   []core.Edge
		source  int
		sink    int
		wantErr error
	}{
		{"zero nodes", 0, nil, 0, 0, core.ErrNoNodes},
		{"negative source", 3, nil, -1, 2, core.ErrNodeOutOfRange},
		{"sink too large", 3, nil, 0, 3, core.ErrNodeOutOfRange},
		{"source equals sink", 3, nil, 1, 1, core.ErrSameSourceSink},
		{"edge endpoint out of range", 3, []core.Edge{{From: 0, To: 5, Cap: 1}}, 0, 2, core.ErrNodeOutOfRange},
		{"negative endpoint", 3, []core.Edge{{From: -2, To: 1, Cap: 1}}, 0, 2, core.ErrNodeOutOfRange},
		{"negative capacity", 3, []core.Edge{{From: 0, To: 1, Cap: -4}}, 0, 2, core.ErrNegativeCapacity},
	}
	for _, tc := range cases {
		_, err := core.New(tc.n, tc.edges, tc.source, tc.sink)
		require.Error(s.T(), err, tc.name)
		require.True(s.T(), errors.Is(err, tc.wantErr), "%s: got %v", tc.name, err)
	}
}

// Entry point for running the suite.
func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
