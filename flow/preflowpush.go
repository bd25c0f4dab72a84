package flow

import "github.com/katalvlaran/flowkit/core"

// PreflowPush computes the maximum flow with the FIFO preflow-push
// (push/relabel) method over a dense capacity/flow matrix.
//
// Per-node state: a height label, an excess amount, and an activity flag.
// Invariants held throughout:
//   - flow[u][v] == -flow[v][u] after every push (antisymmetry),
//   - excess[u] ≥ 0 for every node except possibly the source,
//   - height[u] never decreases.
//
// Initialization sets height[source] = n and saturates every edge leaving
// the source, charging the source's excess and activating the destinations.
// The main loop discharges active nodes in FIFO order: push excess along
// admissible edges (residual > 0 and height exactly one step downhill),
// relabel when a full pass over the neighbors pushes nothing, re-enqueue the
// node if it still holds excess. The loop stops when no active node remains.
//
// The answer is the excess accumulated at the sink. On instances whose sink
// is unreachable, other nodes may be left holding stranded excess they can
// never drain; the sink-excess formulation ignores it, so the reported value
// still equals the min-cut capacity (possibly 0).
//
// Termination: each relabel of a node that still holds excess strictly
// raises its height, and heights are bounded by 2n−1, so no deadline or
// cancellation hook is needed even on disconnected instances.
//
// The capacity matrix sums parallel edges (their flows are
// indistinguishable in matrix form) and drops self-loops.
//
// Complexity:
//
//	Time:   O(V³) for the FIFO discipline.
//	Memory: O(V²) for the two matrices.
func PreflowPush(g *core.Graph, _ ...Option) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	return newPushRelabel(g).run(), nil
}

// newPushRelabel builds fresh working state for one invocation: the dense
// capacity matrix (parallel edges summed, self-loops dropped), a zeroed flow
// matrix, and empty labels.
func newPushRelabel(g *core.Graph) *pushRelabel {
	n := g.NodeCount()
	capacity := make([][]int64, n)
	flow := make([][]int64, n)
	for i := 0; i < n; i++ {
		capacity[i] = make([]int64, n)
		flow[i] = make([]int64, n)
	}
	for i := 0; i < g.EdgeCount(); i++ {
		e := g.Edge(i)
		if e.From == e.To {
			continue
		}
		capacity[e.From][e.To] += e.Cap
	}

	return &pushRelabel{
		n:        n,
		source:   g.Source(),
		sink:     g.Sink(),
		capacity: capacity,
		flow:     flow,
		height:   make([]int, n),
		excess:   make([]int64, n),
		active:   make([]bool, n),
		parked:   make([]bool, n),
		queue:    make([]int, 0, n),
	}
}

// pushRelabel is the private working state of one PreflowPush invocation.
type pushRelabel struct {
	n            int
	source, sink int

	capacity [][]int64
	flow     [][]int64
	height   []int
	excess   []int64

	// FIFO active set. active[u] gives O(1) membership so a node is never
	// queued twice; parked[u] marks a node whose relabel could not raise
	// its height (no residual arc at all): it can never discharge and is
	// kept out of the queue for good.
	queue  []int
	active []bool
	parked []bool
}

// residual is the live remaining capacity from u to v.
func (p *pushRelabel) residual(u, v int) int64 {
	return p.capacity[u][v] - p.flow[u][v]
}

// enqueue adds u to the active set iff it is an internal node holding
// positive excess and is not already queued (or parked).
func (p *pushRelabel) enqueue(u int) {
	if u == p.source || u == p.sink || p.active[u] || p.parked[u] || p.excess[u] <= 0 {
		return
	}
	p.active[u] = true
	p.queue = append(p.queue, u)
}

// push moves min(excess[u], residual(u,v)) units from u to v, keeping the
// flow matrix antisymmetric, and activates v if it became excess-positive.
// Callers guarantee admissibility (height[u] == height[v]+1).
func (p *pushRelabel) push(u, v int) int64 {
	rc := p.residual(u, v)
	if rc <= 0 || p.excess[u] <= 0 {
		return 0
	}

	delta := p.excess[u]
	if rc < delta {
		delta = rc
	}
	p.flow[u][v] += delta
	p.flow[v][u] -= delta
	p.excess[u] -= delta
	p.excess[v] += delta
	p.enqueue(v)

	return delta
}

// relabel raises height[u] to 1 + min height over residual neighbors.
// It reports whether the height actually rose; with no residual arc at all
// the height is left unchanged and false is returned.
func (p *pushRelabel) relabel(u int) bool {
	minH := -1
	for v := 0; v < p.n; v++ {
		if p.residual(u, v) > 0 && (minH < 0 || p.height[v] < minH) {
			minH = p.height[v]
		}
	}
	if minH < 0 || minH+1 <= p.height[u] {
		return false
	}
	p.height[u] = minH + 1

	return true
}

// discharge drains u: full passes of admissible pushes over the neighbors
// in node-id order, relabelling whenever a pass moves nothing. A node whose
// relabel cannot progress is parked.
func (p *pushRelabel) discharge(u int) {
	for p.excess[u] > 0 {
		pushedAny := false
		for v := 0; v < p.n && p.excess[u] > 0; v++ {
			if p.residual(u, v) > 0 && p.height[u] == p.height[v]+1 {
				if p.push(u, v) > 0 {
					pushedAny = true
				}
			}
		}
		if p.excess[u] == 0 {
			break
		}
		if !pushedAny && !p.relabel(u) {
			// No residual arc anywhere: u cannot discharge, now or later.
			p.parked[u] = true

			return
		}
	}
}

// run initializes the preflow and processes the active queue to exhaustion.
func (p *pushRelabel) run() int64 {
	p.height[p.source] = p.n
	for v := 0; v < p.n; v++ {
		c := p.capacity[p.source][v]
		if c <= 0 {
			continue
		}
		p.flow[p.source][v] = c
		p.flow[v][p.source] = -c
		p.excess[v] += c
		p.excess[p.source] -= c
		p.enqueue(v)
	}

	for len(p.queue) > 0 {
		u := p.queue[0]
		p.queue = p.queue[1:]
		p.active[u] = false

		p.discharge(u)
		// Still holding excess after a partial discharge: back in line.
		p.enqueue(u)
	}

	return p.excess[p.sink]
}
