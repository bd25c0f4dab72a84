package flowio_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flowkit/core"
	"github.com/katalvlaran/flowkit/flow"
	"github.com/katalvlaran/flowkit/flowio"
)

// ReaderSuite exercises the text-format loader.
type ReaderSuite struct {
	suite.Suite
}

// TestBasicParse checks label resolution order, edge order, and terminals.
func (s *ReaderSuite) TestBasicParse() {
	in := strings.Join([]string{
		"# classic two-route network",
		"s a 10",
		"",
		"s b 5",
		"a t 10",
		"a b 5",
		"b t 20",
	}, "\n")

	g, err := flowio.ReadGraph(strings.NewReader(in))
	require.NoError(s.T(), err)

	// First-appearance ids: s=0, a=1, b=2, t=3.
	require.Equal(s.T(), 4, g.NodeCount())
	require.Equal(s.T(), 0, g.Source())
	require.Equal(s.T(), 3, g.Sink())
	require.Equal(s.T(), []core.Edge{
		{From: 0, To: 1, Cap: 10},
		{From: 0, To: 2, Cap: 5},
		{From: 1, To: 3, Cap: 10},
		{From: 1, To: 2, Cap: 5},
		{From: 2, To: 3, Cap: 20},
	}, g.Edges())

	mf, err := flow.FordFulkerson(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(15), mf)
}

// TestArbitraryLabels verifies tokens like "(2,5)" and "r10" are fine.
func (s *ReaderSuite) TestArbitraryLabels() {
	in := "s (2,5) 3\n(2,5) r10 2\nr10 t 4\n"
	g, err := flowio.ReadGraph(strings.NewReader(in))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, g.NodeCount())

	mf, err := flow.FordFulkerson(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), mf)
}

// TestCustomTerminalLabels verifies WithSourceLabel / WithSinkLabel.
func (s *ReaderSuite) TestCustomTerminalLabels() {
	in := "src mid 4\nmid dst 6\n"
	g, err := flowio.ReadGraph(strings.NewReader(in),
		flowio.WithSourceLabel("src"), flowio.WithSinkLabel("dst"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, g.Source())
	require.Equal(s.T(), 2, g.Sink())
}

// TestStrictErrors covers every failure sentinel in strict mode.
func (s *ReaderSuite) TestStrictErrors() {
	cases := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"two fields", "s t\n", flowio.ErrBadLine},
		{"four fields", "s t 3 extra\n", flowio.ErrBadLine},
		{"non-integer capacity", "s t ten\n", flowio.ErrBadCapacity},
		{"negative capacity", "s t -1\n", flowio.ErrBadCapacity},
		{"float capacity", "s t 1.5\n", flowio.ErrBadCapacity},
		{"missing source", "a t 3\n", flowio.ErrSourceNotFound},
		{"missing sink", "s a 3\n", flowio.ErrSinkNotFound},
		{"empty input", "", flowio.ErrSourceNotFound},
	}
	for _, tc := range cases {
		_, err := flowio.ReadGraph(strings.NewReader(tc.in))
		require.Error(s.T(), err, tc.name)
		require.True(s.T(), errors.Is(err, tc.wantErr), "%s: got %v", tc.name, err)
	}
}

// TestTolerantSkips verifies malformed lines are dropped, reported, and do
// not register node ids, while terminal-label failures still abort.
func (s *ReaderSuite) TestTolerantSkips() {
	in := strings.Join([]string{
		"s a 10",
		"ghost node",   // bad arity: skipped, "ghost"/"node" get no ids
		"a phantom -4", // bad capacity: skipped, "phantom" gets no id
		"a t 10",
		"broken",   // bad arity
		"s t oops", // bad capacity
	}, "\n")

	var skipped []int
	g, err := flowio.ReadGraph(strings.NewReader(in),
		flowio.WithTolerant(),
		flowio.WithOnSkip(func(lineNo int, _ string, err error) {
			skipped = append(skipped, lineNo)
			require.Error(s.T(), err)
		}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{2, 3, 5, 6}, skipped)

	// Only s, a, t survived.
	require.Equal(s.T(), 3, g.NodeCount())
	require.Equal(s.T(), 2, g.EdgeCount())

	// Tolerance never invents terminals.
	_, err = flowio.ReadGraph(strings.NewReader("broken line here\n"), flowio.WithTolerant())
	require.ErrorIs(s.T(), err, flowio.ErrSourceNotFound)
}

// TestErrorNamesLine checks strict errors carry the offending line number.
func (s *ReaderSuite) TestErrorNamesLine() {
	in := "s a 1\n\n# comment\na t nope\n"
	_, err := flowio.ReadGraph(strings.NewReader(in))
	require.ErrorIs(s.T(), err, flowio.ErrBadCapacity)
	require.Contains(s.T(), err.Error(), "line 4")
}

// TestReadGraphFile round-trips through the filesystem.
func (s *ReaderSuite) TestReadGraphFile() {
	path := filepath.Join(s.T().TempDir(), "net.txt")
	require.NoError(s.T(), os.WriteFile(path, []byte("s t 7\n"), 0o644))

	g, err := flowio.ReadGraphFile(path)
	require.NoError(s.T(), err)
	mf, err := flow.FordFulkerson(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(7), mf)

	_, err = flowio.ReadGraphFile(filepath.Join(s.T().TempDir(), "missing.txt"))
	require.Error(s.T(), err)
}

// TestOptionPanics verifies option constructors reject bad input fast.
func (s *ReaderSuite) TestOptionPanics() {
	require.Panics(s.T(), func() { flowio.WithSourceLabel("") })
	require.Panics(s.T(), func() { flowio.WithSinkLabel("") })
	require.Panics(s.T(), func() { flowio.WithOnSkip(nil) })
}

// Entry point for running the suite.
func TestReaderSuite(t *testing.T) {
	suite.Run(t, new(ReaderSuite))
}
