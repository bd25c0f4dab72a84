package flowio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/flowkit/core"
)

const (
	commentPrefix  = "#"
	fieldsPerEdge  = 3
	capacityBase   = 10
	capacityBits   = 64
	scanBufferInit = 64 * 1024
)

// ReadGraph parses a flow network from r.
//
// Steps:
//  1. Scan line by line; drop blanks and '#' comments.
//  2. Split each remaining line into <u> <v> <cap>; resolve u and v to
//     dense ids in order of first appearance; parse cap as int64 ≥ 0.
//  3. In strict mode any malformed line aborts with a wrapped ErrBadLine or
//     ErrBadCapacity naming the line number. In tolerant mode the line is
//     skipped (and reported to OnSkip) without assigning ids.
//  4. Locate source and sink by label; build the Graph via core.New.
//
// Complexity: O(L) over input lines; O(V+E) memory.
func ReadGraph(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := resolveOptions(opts...)

	labelID := make(map[string]int)
	getID := func(label string) int {
		id, ok := labelID[label]
		if !ok {
			id = len(labelID)
			labelID[label] = id
		}
		return id
	}

	var edges []core.Edge

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, scanBufferInit), scanBufferInit)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != fieldsPerEdge {
			err := fmt.Errorf("line %d: %q has %d fields, want %d: %w",
				lineNo, line, len(parts), fieldsPerEdge, ErrBadLine)
			if o.Tolerant {
				if o.OnSkip != nil {
					o.OnSkip(lineNo, line, err)
				}
				continue
			}
			return nil, err
		}

		capacity, perr := strconv.ParseInt(parts[2], capacityBase, capacityBits)
		if perr != nil || capacity < 0 {
			err := fmt.Errorf("line %d: capacity %q: %w", lineNo, parts[2], ErrBadCapacity)
			if o.Tolerant {
				if o.OnSkip != nil {
					o.OnSkip(lineNo, line, err)
				}
				continue
			}
			return nil, err
		}

		// Ids are assigned only for accepted lines, so a skipped line never
		// inflates the node count.
		edges = append(edges, core.Edge{
			From: getID(parts[0]),
			To:   getID(parts[1]),
			Cap:  capacity,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("flowio: read: %w", err)
	}

	source, ok := labelID[o.SourceLabel]
	if !ok {
		return nil, fmt.Errorf("label %q: %w", o.SourceLabel, ErrSourceNotFound)
	}
	sink, ok := labelID[o.SinkLabel]
	if !ok {
		return nil, fmt.Errorf("label %q: %w", o.SinkLabel, ErrSinkNotFound)
	}

	return core.New(len(labelID), edges, source, sink)
}

// ReadGraphFile opens path and parses it with ReadGraph.
func ReadGraphFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("flowio: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ReadGraph(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
