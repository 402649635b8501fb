package explore

import "github.com/vovakirdan/tui-wayfarer/internal/core"

// MoveResult reports the outcome of a movement request. A denied move is
// a normal outcome: the graph and trail are left untouched and Verdict
// carries the rule that fired.
type MoveResult struct {
	Verdict Verdict
	NodeID  string     // Node arrived at (unchanged on denial)
	Coord   core.Point // Coordinate arrived at
	Revisit bool       // Whether the arrival hit an already-known node
}

// Session is the single owned mutable state of one expedition: the
// exploration graph, the breadcrumb trail, the current position and
// facing, and the compiled terrain rules. All mutation happens through
// its methods, synchronously, on one logical thread of control.
type Session struct {
	graph   *Graph
	rules   *CompiledRuleset
	current string
	heading core.Heading
}

// NewSession starts an expedition at the origin coordinate facing the
// given heading. The origin node is created immediately and seeds the
// trail.
func NewSession(origin core.Point, heading core.Heading, rules Ruleset, depthTierCap int) *Session {
	g := NewGraph(depthTierCap)
	id := g.UpsertNode(origin, heading)
	g.AppendTrail(id)
	return &Session{
		graph:   g,
		rules:   rules.Compile(),
		current: id,
		heading: heading,
	}
}

// Graph exposes the exploration graph for rendering and inspection.
func (s *Session) Graph() *Graph {
	return s.graph
}

// Rules exposes the compiled ruleset, e.g. for region extraction.
func (s *Session) Rules() *CompiledRuleset {
	return s.rules
}

// CurrentID returns the id of the node the player is at.
func (s *Session) CurrentID() string {
	return s.current
}

// CurrentNode returns the node the player is at.
func (s *Session) CurrentNode() *Node {
	return s.graph.Node(s.current)
}

// Coord returns the player's current grid coordinate.
func (s *Session) Coord() core.Point {
	return s.CurrentNode().Coord()
}

// Heading returns the player's current facing.
func (s *Session) Heading() core.Heading {
	return s.heading
}

// Advance attempts a single step in the given heading. The move is
// validated against the ruleset strictly before any mutation: on denial
// the session is byte-for-byte unchanged.
func (s *Session) Advance(h core.Heading) MoveResult {
	d := h.Delta()
	return s.moveTo(s.Coord().Add(d.X, d.Y), h)
}

// Teleport attempts a move to an arbitrary coordinate, e.g. from a map
// click. Coordinates with no authored content are legal: the graph grows
// unbounded. The facing becomes the step direction when the target is
// adjacent, otherwise it is kept.
func (s *Session) Teleport(target core.Point) MoveResult {
	cur := s.Coord()
	h := s.heading
	if hd, ok := core.HeadingFromDelta(target.X-cur.X, target.Y-cur.Y); ok {
		h = hd
	}
	return s.moveTo(target, h)
}

// moveTo validates then commits a move: node upsert, edge upsert, trail
// append, position and heading update.
func (s *Session) moveTo(target core.Point, h core.Heading) MoveResult {
	cur := s.Coord()
	if target == cur {
		return MoveResult{Verdict: allow(RuleNone), NodeID: s.current, Coord: cur, Revisit: true}
	}

	v := s.rules.CanTraverse(cur, target, s.CurrentNode().Cleared)
	if !v.Allowed {
		return MoveResult{Verdict: v, NodeID: s.current, Coord: cur}
	}

	revisit := s.graph.NodeAt(target) != nil
	fromID := s.current
	toID := s.graph.UpsertNode(target, h)
	// Endpoints are known to exist, the upsert cannot fail here.
	s.graph.UpsertEdge(fromID, toID) //nolint:errcheck
	s.graph.AppendTrail(toID)
	s.current = toID
	s.heading = h

	return MoveResult{Verdict: v, NodeID: toID, Coord: target, Revisit: revisit}
}

// StepBack retraces the last trail step without consulting the rules and
// without recording a new traversal. Returns the abandoned node id, or
// false when the trail is already at its floor.
func (s *Session) StepBack() (string, bool) {
	popped, ok := s.graph.PopTrail()
	if !ok {
		return "", false
	}
	s.current = s.graph.TrailTip()
	return popped, true
}

// Resolve marks the current location's site as cleared.
func (s *Session) Resolve() {
	s.graph.MarkCleared(s.current)
}

// ClearedCount returns how many discovered nodes have resolved sites.
func (s *Session) ClearedCount() int {
	count := 0
	for _, n := range s.graph.Nodes() {
		if n.Cleared {
			count++
		}
	}
	return count
}
