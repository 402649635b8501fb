// Package explore implements the exploration graph and the passability
// rule engine: the record of discovered world topology and the decision
// logic that gates movement across it.
package explore

import (
	"fmt"

	"github.com/vovakirdan/tui-wayfarer/internal/core"
)

// OriginNodeID is the distinguished id of the first node in a graph.
// All other node ids are derived from their coordinate.
const OriginNodeID = "origin"

// DefaultDepthTierCap bounds the visual depth tier assigned to new nodes.
const DefaultDepthTierCap = 9

// Node is a discovered, deduplicated world location.
type Node struct {
	ID      string
	Heading core.Heading // Facing recorded at the most recent arrival
	X, Y    int
	Z       int  // Visual depth tier, derived from discovery order
	Visits  int  // Times this location was arrived at, >= 1
	Cleared bool // Whether the site content here has been fully resolved
}

// Coord returns the node's grid coordinate.
func (n *Node) Coord() core.Point {
	return core.Point{X: n.X, Y: n.Y}
}

// Edge is a directed, deduplicated traversal record between two nodes.
// Opposite directions between the same pair are independent edges.
type Edge struct {
	ID         string
	From, To   string
	Traversals int // Times this exact direction was taken, >= 1
}

// NodeID derives the deterministic id for a coordinate.
func NodeID(p core.Point) string {
	return fmt.Sprintf("node-%d-%d", p.X, p.Y)
}

// EdgeID derives the deterministic id for a directed node pair.
func EdgeID(from, to string) string {
	return from + "->" + to
}

// Graph is the mutable exploration graph: discovered nodes, traversal
// edges and the breadcrumb trail. At most one node exists per coordinate;
// re-arrivals increment visit counters instead of creating duplicates.
// Graph is owned and mutated by a single session, so it is not
// goroutine-safe.
type Graph struct {
	byCoord map[core.Point]*Node
	byID    map[string]*Node
	edges   map[string]*Edge

	nodeOrder []string // Discovery order, for stable snapshots
	edgeOrder []string
	trail     []string

	depthTierCap int
}

// NewGraph creates an empty graph. The depth tier cap bounds the Z value
// assigned to newly discovered nodes; zero or negative means the default.
func NewGraph(depthTierCap int) *Graph {
	if depthTierCap <= 0 {
		depthTierCap = DefaultDepthTierCap
	}
	return &Graph{
		byCoord:      make(map[core.Point]*Node),
		byID:         make(map[string]*Node),
		edges:        make(map[string]*Edge),
		depthTierCap: depthTierCap,
	}
}

// UpsertNode records an arrival at a coordinate. If a node already exists
// there its visit count is incremented and its heading updated; otherwise
// a new node is created with Visits=1. Returns the node's id either way.
// The first node ever created gets the distinguished origin id.
func (g *Graph) UpsertNode(p core.Point, heading core.Heading) string {
	if n, ok := g.byCoord[p]; ok {
		n.Visits++
		n.Heading = heading
		return n.ID
	}

	id := NodeID(p)
	if len(g.byCoord) == 0 {
		id = OriginNodeID
	}
	n := &Node{
		ID:      id,
		Heading: heading,
		X:       p.X,
		Y:       p.Y,
		Z:       core.Min(len(g.byCoord), g.depthTierCap),
		Visits:  1,
	}
	g.byCoord[p] = n
	g.byID[id] = n
	g.nodeOrder = append(g.nodeOrder, id)
	return id
}

// UpsertEdge records a traversal from one node to another. An existing
// edge for the exact (from, to) direction gains a traversal; otherwise a
// new edge is created with Traversals=1. Returns the edge id.
// Both endpoints must exist in the graph.
func (g *Graph) UpsertEdge(fromID, toID string) (string, error) {
	if _, ok := g.byID[fromID]; !ok {
		return "", fmt.Errorf("explore: unknown node %q", fromID)
	}
	if _, ok := g.byID[toID]; !ok {
		return "", fmt.Errorf("explore: unknown node %q", toID)
	}

	id := EdgeID(fromID, toID)
	if e, ok := g.edges[id]; ok {
		e.Traversals++
		return id, nil
	}
	g.edges[id] = &Edge{ID: id, From: fromID, To: toID, Traversals: 1}
	g.edgeOrder = append(g.edgeOrder, id)
	return id, nil
}

// MarkCleared marks the site at a node as fully resolved.
// The flag is monotonic: it never reverts to false.
func (g *Graph) MarkCleared(nodeID string) {
	if n, ok := g.byID[nodeID]; ok {
		n.Cleared = true
	}
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id string) *Node {
	return g.byID[id]
}

// NodeAt returns the node at the given coordinate, or nil.
func (g *Graph) NodeAt(p core.Point) *Node {
	return g.byCoord[p]
}

// Edge returns the edge with the given id, or nil.
func (g *Graph) Edge(id string) *Edge {
	return g.edges[id]
}

// NodeCount returns the number of distinct discovered locations.
func (g *Graph) NodeCount() int {
	return len(g.byCoord)
}

// EdgeCount returns the number of distinct directed traversal records.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Nodes returns all nodes in discovery order.
// The returned slice is a snapshot; node pointers stay live.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.byID[id])
	}
	return out
}

// Edges returns all edges in creation order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, g.edges[id])
	}
	return out
}

// DepthTierCap returns the cap applied to newly assigned depth tiers.
func (g *Graph) DepthTierCap() int {
	return g.depthTierCap
}

// AppendTrail pushes a node id onto the breadcrumb trail.
func (g *Graph) AppendTrail(nodeID string) {
	g.trail = append(g.trail, nodeID)
}

// PopTrail removes and returns the last trail entry. The trail never
// shrinks below one element: popping at the floor is a no-op returning
// false.
func (g *Graph) PopTrail() (string, bool) {
	if len(g.trail) <= 1 {
		return "", false
	}
	last := g.trail[len(g.trail)-1]
	g.trail = g.trail[:len(g.trail)-1]
	return last, true
}

// Trail returns a copy of the breadcrumb trail, oldest first.
func (g *Graph) Trail() []string {
	out := make([]string, len(g.trail))
	copy(out, g.trail)
	return out
}

// TrailLen returns the current trail length.
func (g *Graph) TrailLen() int {
	return len(g.trail)
}

// TrailTip returns the most recent trail entry, or "" for an empty trail.
func (g *Graph) TrailTip() string {
	if len(g.trail) == 0 {
		return ""
	}
	return g.trail[len(g.trail)-1]
}
