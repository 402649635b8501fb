package wayfarer

import (
	"github.com/vovakirdan/tui-wayfarer/internal/core"
	"github.com/vovakirdan/tui-wayfarer/internal/explore"
)

// Snapshot captures the complete expedition state for determinism
// testing and replay.
type Snapshot struct {
	Coord    core.Point
	Heading  core.Heading
	Nodes    int
	Edges    int
	TrailLen int
	Steps    int
	Resolved int

	Zoom       float64
	PanX, PanY float64
	Alignment  string

	Completed bool
	Paused    bool
	LastRule  explore.Rule
}

// Snapshot returns the current expedition snapshot.
func (g *Game) Snapshot() Snapshot {
	graph := g.session.Graph()
	return Snapshot{
		Coord:     g.session.Coord(),
		Heading:   g.session.Heading(),
		Nodes:     graph.NodeCount(),
		Edges:     graph.EdgeCount(),
		TrailLen:  graph.TrailLen(),
		Steps:     g.steps,
		Resolved:  len(g.resolved),
		Zoom:      g.camera.Zoom,
		PanX:      g.camera.PanX,
		PanY:      g.camera.PanY,
		Alignment: g.alignment.String(),
		Completed: g.completed,
		Paused:    g.paused,
		LastRule:  g.lastVerdict.Rule,
	}
}
