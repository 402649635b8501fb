package worlds

import (
	"testing"

	"github.com/vovakirdan/tui-wayfarer/internal/registry"
)

func TestBuiltInWorldsRegistered(t *testing.T) {
	for _, id := range []string{"highlands", "causeway", "tidelocks"} {
		if !registry.Exists(id) {
			t.Errorf("world %q not registered", id)
		}
	}
}

func TestBuiltInWorldsValidate(t *testing.T) {
	infos := registry.List()
	if len(infos) == 0 {
		t.Fatal("no worlds registered")
	}

	for _, info := range infos {
		w, err := registry.Create(info.ID)
		if err != nil {
			t.Fatalf("Create(%q): %v", info.ID, err)
		}
		if err := w.Validate(); err != nil {
			t.Errorf("world %q invalid: %v", info.ID, err)
		}
		if w.SiteCount() == 0 {
			t.Errorf("world %q has no sites", info.ID)
		}
		if info.Sites != w.SiteCount() {
			t.Errorf("world %q: registry reports %d sites, world has %d",
				info.ID, info.Sites, w.SiteCount())
		}
	}
}

func TestOriginNeverBlocked(t *testing.T) {
	for _, info := range registry.List() {
		w, err := registry.Create(info.ID)
		if err != nil {
			t.Fatalf("Create(%q): %v", info.ID, err)
		}
		compiled := w.Ruleset.Compile()
		if _, blocked := compiled.BlockedAt(w.Origin); blocked {
			t.Errorf("world %q: origin %v sits on blocked terrain", info.ID, w.Origin)
		}
	}
}

func TestSessionStartsAtOrigin(t *testing.T) {
	for _, info := range registry.List() {
		w, err := registry.Create(info.ID)
		if err != nil {
			t.Fatalf("Create(%q): %v", info.ID, err)
		}
		s := w.NewSession(true, 9)
		if s.Coord() != w.Origin {
			t.Errorf("world %q: session starts at %v, want %v", info.ID, s.Coord(), w.Origin)
		}
		if s.Graph().NodeCount() != 1 {
			t.Errorf("world %q: fresh session has %d nodes, want 1", info.ID, s.Graph().NodeCount())
		}
	}
}
