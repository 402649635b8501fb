package explore

import (
	"testing"

	"github.com/vovakirdan/tui-wayfarer/internal/core"
)

func TestUpsertNodeIdempotentGrowth(t *testing.T) {
	g := NewGraph(0)

	// A sequence with repeats: distinct node count must equal distinct
	// coordinates, visits must equal how often each coordinate appeared.
	seq := []core.Point{
		core.P(0, 0), core.P(1, 0), core.P(0, 0),
		core.P(1, 1), core.P(1, 0), core.P(0, 0),
	}
	for _, p := range seq {
		g.UpsertNode(p, core.HeadingE)
	}

	if g.NodeCount() != 3 {
		t.Fatalf("NodeCount = %d, expected 3", g.NodeCount())
	}

	visits := map[core.Point]int{
		core.P(0, 0): 3,
		core.P(1, 0): 2,
		core.P(1, 1): 1,
	}
	for p, want := range visits {
		n := g.NodeAt(p)
		if n == nil {
			t.Fatalf("no node at %s", p)
		}
		if n.Visits != want {
			t.Errorf("node at %s: Visits = %d, expected %d", p, n.Visits, want)
		}
	}
}

func TestUpsertNodeIDs(t *testing.T) {
	g := NewGraph(0)

	first := g.UpsertNode(core.P(4, -2), core.HeadingN)
	if first != OriginNodeID {
		t.Errorf("first node id = %q, expected %q", first, OriginNodeID)
	}

	second := g.UpsertNode(core.P(4, -3), core.HeadingN)
	if second != "node-4--3" {
		t.Errorf("second node id = %q, expected %q", second, "node-4--3")
	}

	// Re-upserting the origin coordinate returns the origin id.
	again := g.UpsertNode(core.P(4, -2), core.HeadingS)
	if again != OriginNodeID {
		t.Errorf("re-upsert id = %q, expected %q", again, OriginNodeID)
	}
	if n := g.Node(OriginNodeID); n.Heading != core.HeadingS {
		t.Errorf("heading not updated on revisit: got %v", n.Heading)
	}
}

func TestUpsertNodeDepthTier(t *testing.T) {
	g := NewGraph(3)

	coords := []core.Point{
		core.P(0, 0), core.P(1, 0), core.P(2, 0),
		core.P(3, 0), core.P(4, 0), core.P(5, 0),
	}
	wantZ := []int{0, 1, 2, 3, 3, 3} // Capped at 3
	for i, p := range coords {
		id := g.UpsertNode(p, core.HeadingE)
		if z := g.Node(id).Z; z != wantZ[i] {
			t.Errorf("node %d: Z = %d, expected %d", i, z, wantZ[i])
		}
	}
}

func TestUpsertEdgeAccounting(t *testing.T) {
	g := NewGraph(0)
	a := g.UpsertNode(core.P(0, 0), core.HeadingN)
	b := g.UpsertNode(core.P(0, -1), core.HeadingN)

	// k repeated traversals yield one edge with Traversals = k.
	for i := 0; i < 5; i++ {
		if _, err := g.UpsertEdge(a, b); err != nil {
			t.Fatalf("UpsertEdge: %v", err)
		}
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount = %d, expected 1", g.EdgeCount())
	}
	if e := g.Edge(EdgeID(a, b)); e.Traversals != 5 {
		t.Errorf("Traversals = %d, expected 5", e.Traversals)
	}

	// The reverse direction is an independent edge.
	if _, err := g.UpsertEdge(b, a); err != nil {
		t.Fatalf("UpsertEdge reverse: %v", err)
	}
	if g.EdgeCount() != 2 {
		t.Fatalf("EdgeCount after reverse = %d, expected 2", g.EdgeCount())
	}
	if e := g.Edge(EdgeID(b, a)); e.Traversals != 1 {
		t.Errorf("reverse Traversals = %d, expected 1", e.Traversals)
	}
}

func TestUpsertEdgeUnknownNode(t *testing.T) {
	g := NewGraph(0)
	g.UpsertNode(core.P(0, 0), core.HeadingN)

	if _, err := g.UpsertEdge(OriginNodeID, "node-9-9"); err == nil {
		t.Error("expected error for unknown target node")
	}
	if _, err := g.UpsertEdge("node-9-9", OriginNodeID); err == nil {
		t.Error("expected error for unknown source node")
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d after failed upserts, expected 0", g.EdgeCount())
	}
}

func TestMarkClearedMonotonic(t *testing.T) {
	g := NewGraph(0)
	id := g.UpsertNode(core.P(0, 0), core.HeadingN)

	g.MarkCleared(id)
	if !g.Node(id).Cleared {
		t.Fatal("node not cleared after MarkCleared")
	}

	// Revisits must not reset the flag.
	g.UpsertNode(core.P(0, 0), core.HeadingW)
	if !g.Node(id).Cleared {
		t.Error("cleared flag reverted by revisit")
	}
}

func TestTrailFloor(t *testing.T) {
	g := NewGraph(0)
	a := g.UpsertNode(core.P(0, 0), core.HeadingN)
	b := g.UpsertNode(core.P(0, -1), core.HeadingN)

	g.AppendTrail(a)

	// Popping a single-element trail is a no-op.
	if id, ok := g.PopTrail(); ok {
		t.Errorf("PopTrail on floor returned %q, expected no-op", id)
	}
	if g.TrailLen() != 1 {
		t.Fatalf("TrailLen = %d after floor pop, expected 1", g.TrailLen())
	}

	g.AppendTrail(b)
	g.AppendTrail(a)

	id, ok := g.PopTrail()
	if !ok || id != a {
		t.Errorf("PopTrail = (%q, %v), expected (%q, true)", id, ok, a)
	}
	if g.TrailLen() != 2 {
		t.Errorf("TrailLen = %d after pop, expected 2", g.TrailLen())
	}
	if tip := g.TrailTip(); tip != b {
		t.Errorf("TrailTip = %q, expected %q", tip, b)
	}
}

func TestSnapshotOrder(t *testing.T) {
	g := NewGraph(0)
	ids := []string{
		g.UpsertNode(core.P(0, 0), core.HeadingN),
		g.UpsertNode(core.P(5, 5), core.HeadingN),
		g.UpsertNode(core.P(-3, 2), core.HeadingN),
	}

	nodes := g.Nodes()
	if len(nodes) != 3 {
		t.Fatalf("len(Nodes) = %d, expected 3", len(nodes))
	}
	for i, n := range nodes {
		if n.ID != ids[i] {
			t.Errorf("nodes[%d].ID = %q, expected %q (discovery order)", i, n.ID, ids[i])
		}
	}
}
