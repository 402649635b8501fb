package explore

import (
	"testing"

	"github.com/vovakirdan/tui-wayfarer/internal/core"
)

func TestCanTraverseUnlockedAllowsEverything(t *testing.T) {
	rs := Ruleset{
		PathingLocked: false,
		BlockedCells:  []BlockedCell{{X: 1, Y: 0}},
		BlockedEdges:  []BlockedEdge{{From: core.P(0, 0), To: core.P(1, 0), Bidirectional: true}},
	}.Compile()

	v := rs.CanTraverse(core.P(0, 0), core.P(1, 0), false)
	if !v.Allowed || v.Rule != RuleUnlocked {
		t.Errorf("unlocked session: got %+v, expected allow via %v", v, RuleUnlocked)
	}
}

func TestCanTraverseBlockedCell(t *testing.T) {
	rs := Ruleset{
		PathingLocked: true,
		BlockedCells:  []BlockedCell{{X: 2, Y: 3, Terrain: "mountain"}},
	}.Compile()

	if v := rs.CanTraverse(core.P(2, 2), core.P(2, 3), true); v.Allowed {
		t.Errorf("move into blocked cell allowed: %+v", v)
	} else if v.Rule != RuleBlockedCell {
		t.Errorf("rule = %v, expected %v", v.Rule, RuleBlockedCell)
	}

	if v := rs.CanTraverse(core.P(2, 2), core.P(2, 1), false); !v.Allowed {
		t.Errorf("move to open cell denied: %+v", v)
	}
}

func TestCanTraverseBlockedEdge(t *testing.T) {
	oneWay := Ruleset{
		PathingLocked: true,
		BlockedEdges:  []BlockedEdge{{From: core.P(0, 0), To: core.P(1, 0)}},
	}.Compile()

	if v := oneWay.CanTraverse(core.P(0, 0), core.P(1, 0), true); v.Allowed {
		t.Errorf("severed direction allowed: %+v", v)
	}
	if v := oneWay.CanTraverse(core.P(1, 0), core.P(0, 0), true); !v.Allowed {
		t.Errorf("one-way block denied the reverse direction: %+v", v)
	}

	twoWay := Ruleset{
		PathingLocked: true,
		BlockedEdges:  []BlockedEdge{{From: core.P(0, 0), To: core.P(1, 0), Bidirectional: true}},
	}.Compile()

	if v := twoWay.CanTraverse(core.P(1, 0), core.P(0, 0), true); v.Allowed {
		t.Errorf("bidirectional block allowed the reverse direction: %+v", v)
	}
}

func TestCanTraverseConditionalEdge(t *testing.T) {
	rs := Ruleset{
		PathingLocked: true,
		ConditionalEdges: []ConditionalEdge{
			{From: core.P(0, 0), To: core.P(0, 1), Bidirectional: true, Locked: true},
		},
	}.Compile()

	// Unresolved source: denied in both directions (bidirectional edge).
	if v := rs.CanTraverse(core.P(0, 0), core.P(0, 1), false); v.Allowed {
		t.Errorf("locked conditional allowed: %+v", v)
	} else if v.Rule != RuleConditional {
		t.Errorf("rule = %v, expected %v", v.Rule, RuleConditional)
	}
	if v := rs.CanTraverse(core.P(0, 1), core.P(0, 0), false); v.Allowed {
		t.Errorf("locked conditional reverse allowed: %+v", v)
	}

	// Resolved source: allowed.
	if v := rs.CanTraverse(core.P(0, 0), core.P(0, 1), true); !v.Allowed {
		t.Errorf("conditional with resolved source denied: %+v", v)
	}
}

func TestCanTraverseConditionalUnlockedEdge(t *testing.T) {
	// Locked=false disables the constraint entirely.
	rs := Ruleset{
		PathingLocked: true,
		ConditionalEdges: []ConditionalEdge{
			{From: core.P(0, 0), To: core.P(0, 1), Locked: false},
		},
	}.Compile()

	if v := rs.CanTraverse(core.P(0, 0), core.P(0, 1), false); !v.Allowed {
		t.Errorf("unlocked conditional edge denied: %+v", v)
	}
}

func TestRulePrecedenceHardBlockWins(t *testing.T) {
	// A cell that is both blocked and the target of an unlocked
	// conditional edge: the hard block must win.
	rs := Ruleset{
		PathingLocked: true,
		BlockedCells:  []BlockedCell{{X: 1, Y: 1}},
		ConditionalEdges: []ConditionalEdge{
			{From: core.P(1, 0), To: core.P(1, 1), Locked: false},
		},
	}.Compile()

	v := rs.CanTraverse(core.P(1, 0), core.P(1, 1), true)
	if v.Allowed {
		t.Fatalf("move allowed despite blocked cell: %+v", v)
	}
	if v.Rule != RuleBlockedCell {
		t.Errorf("rule = %v, expected %v (hard block wins)", v.Rule, RuleBlockedCell)
	}
}

func TestForcedRailContainment(t *testing.T) {
	rs := Ruleset{
		PathingLocked: true,
		Rail: ForcedRail{
			Path:              []core.Point{core.P(0, 0), core.P(1, 0), core.P(1, 1)},
			LockUntilComplete: true,
		},
	}.Compile()

	// From (1,0), the only legal step is (1,1).
	if v := rs.CanTraverse(core.P(1, 0), core.P(1, 1), false); !v.Allowed {
		t.Errorf("rail step to next coordinate denied: %+v", v)
	}
	if v := rs.CanTraverse(core.P(1, 0), core.P(0, 0), false); v.Allowed {
		t.Errorf("rail allowed stepping backward: %+v", v)
	} else if v.Rule != RuleRail {
		t.Errorf("rule = %v, expected %v", v.Rule, RuleRail)
	}
	if v := rs.CanTraverse(core.P(1, 0), core.P(2, 0), false); v.Allowed {
		t.Errorf("rail allowed stepping off: %+v", v)
	}

	// At the rail's last coordinate no constraint applies.
	if v := rs.CanTraverse(core.P(1, 1), core.P(2, 1), false); !v.Allowed {
		t.Errorf("move from rail end denied: %+v", v)
	}

	// Off the rail the constraint does not apply either.
	if v := rs.CanTraverse(core.P(5, 5), core.P(5, 6), false); !v.Allowed {
		t.Errorf("move off rail denied: %+v", v)
	}
}

func TestForcedRailInactive(t *testing.T) {
	rs := Ruleset{
		PathingLocked: true,
		Rail: ForcedRail{
			Path:              []core.Point{core.P(0, 0), core.P(1, 0)},
			LockUntilComplete: false,
		},
	}.Compile()

	if v := rs.CanTraverse(core.P(0, 0), core.P(0, 1), false); !v.Allowed {
		t.Errorf("inactive rail constrained movement: %+v", v)
	}
}

func TestEmptyRulesetAllows(t *testing.T) {
	rs := Ruleset{PathingLocked: true}.Compile()
	if v := rs.CanTraverse(core.P(-100, 300), core.P(-101, 300), false); !v.Allowed {
		t.Errorf("empty ruleset denied a move: %+v", v)
	}
}
