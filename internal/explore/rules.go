package explore

import (
	"fmt"

	"github.com/vovakirdan/tui-wayfarer/internal/core"
)

// BlockedCell is a world coordinate that can never be entered.
// Terrain and the light hint are passed through to rendering layers;
// the rule engine only cares about the coordinate.
type BlockedCell struct {
	X, Y        int
	Terrain     string // e.g. "mountain", "water"
	BlocksLight bool
}

// Coord returns the cell's grid coordinate.
func (c BlockedCell) Coord() core.Point {
	return core.Point{X: c.X, Y: c.Y}
}

// BlockedEdge prohibits traversal of a specific link between two cells.
// When Bidirectional is set the reverse direction is prohibited too.
type BlockedEdge struct {
	From, To      core.Point
	Bidirectional bool
}

// ConditionalEdge is a link passable only once the content at the source
// of the move has been resolved. Bidirectional conditional edges apply
// the same test from whichever endpoint the move starts at, and share a
// single lock flag for both directions. Locked=false disables the
// constraint entirely.
type ConditionalEdge struct {
	From, To      core.Point
	Bidirectional bool
	Locked        bool
}

// ForcedRail is an authored mandatory path. While active, from any
// coordinate on the rail (other than its last) the only legal step is
// the rail's next coordinate. Coordinates off the rail are unaffected.
type ForcedRail struct {
	Path              []core.Point
	LockUntilComplete bool
}

// Active reports whether the rail currently constrains movement.
func (r ForcedRail) Active() bool {
	return r.LockUntilComplete && len(r.Path) > 1
}

// Ruleset is the complete set of terrain rules for a session. All
// collections default to empty, keeping rule evaluation total: a zero
// Ruleset with PathingLocked set allows every move.
type Ruleset struct {
	// PathingLocked enables rule enforcement. When false the rules are
	// advisory only and every traversal is allowed (free-roam mode).
	PathingLocked bool

	BlockedCells     []BlockedCell
	BlockedEdges     []BlockedEdge
	ConditionalEdges []ConditionalEdge
	Rail             ForcedRail
}

// Rule identifies which rule produced a traversal verdict.
type Rule int

const (
	RuleNone        Rule = iota // No rule fired; move allowed
	RuleUnlocked                // Session pathing unlocked; rules advisory
	RuleBlockedCell             // Target cell is impassable
	RuleBlockedEdge             // The link itself is severed
	RuleConditional             // Conditional link with unmet requirement
	RuleRail                    // Forced rail demands a different step
)

// String returns a short identifier for the rule.
func (r Rule) String() string {
	switch r {
	case RuleNone:
		return "none"
	case RuleUnlocked:
		return "unlocked"
	case RuleBlockedCell:
		return "blocked-cell"
	case RuleBlockedEdge:
		return "blocked-edge"
	case RuleConditional:
		return "conditional-edge"
	case RuleRail:
		return "forced-rail"
	default:
		return "unknown"
	}
}

// Verdict is the outcome of a traversal check. Denial is a normal
// outcome, not an error; Reason is suitable for UI feedback.
type Verdict struct {
	Allowed bool
	Rule    Rule
	Reason  string
}

func allow(rule Rule) Verdict {
	return Verdict{Allowed: true, Rule: rule}
}

func deny(rule Rule, reason string) Verdict {
	return Verdict{Allowed: false, Rule: rule, Reason: reason}
}

type pointPair struct {
	from, to core.Point
}

// CompiledRuleset is a Ruleset with lookup indexes built for O(1) rule
// evaluation. Build one with Ruleset.Compile; the source ruleset is
// treated as immutable for the session's lifetime.
type CompiledRuleset struct {
	Source Ruleset

	blocked     map[core.Point]BlockedCell
	severed     map[pointPair]bool
	conditional map[pointPair]ConditionalEdge
	railIndex   map[core.Point]int // First index of each coordinate on the rail
}

// Compile builds the lookup indexes for rule evaluation.
func (rs Ruleset) Compile() *CompiledRuleset {
	c := &CompiledRuleset{
		Source:      rs,
		blocked:     make(map[core.Point]BlockedCell, len(rs.BlockedCells)),
		severed:     make(map[pointPair]bool, len(rs.BlockedEdges)),
		conditional: make(map[pointPair]ConditionalEdge, len(rs.ConditionalEdges)),
		railIndex:   make(map[core.Point]int, len(rs.Rail.Path)),
	}

	for _, cell := range rs.BlockedCells {
		c.blocked[cell.Coord()] = cell
	}
	for _, e := range rs.BlockedEdges {
		c.severed[pointPair{e.From, e.To}] = true
		if e.Bidirectional {
			c.severed[pointPair{e.To, e.From}] = true
		}
	}
	for _, e := range rs.ConditionalEdges {
		if !e.Locked {
			continue
		}
		c.conditional[pointPair{e.From, e.To}] = e
		if e.Bidirectional {
			c.conditional[pointPair{e.To, e.From}] = e
		}
	}
	for i, p := range rs.Rail.Path {
		// Keep the first occurrence if a coordinate repeats.
		if _, ok := c.railIndex[p]; !ok {
			c.railIndex[p] = i
		}
	}
	return c
}

// BlockedAt reports whether a coordinate is impassable, with its cell.
func (c *CompiledRuleset) BlockedAt(p core.Point) (BlockedCell, bool) {
	cell, ok := c.blocked[p]
	return cell, ok
}

// CanTraverse decides whether a single step from current to target is
// legal. clearedAtCurrent is the collaborator-supplied signal that the
// content at the current location has been fully resolved.
//
// Evaluation order, first match wins:
//  1. pathing unlocked -> allow
//  2. target is a blocked cell -> deny
//  3. the directed link is severed -> deny
//  4. conditional link with unresolved source -> deny
//  5. current is on an active rail short of its end and target is not
//     the next rail coordinate -> deny
//  6. allow
//
// A hard block therefore always wins over a conditional unlock, and the
// rail only constrains moves that start on it.
func (c *CompiledRuleset) CanTraverse(current, target core.Point, clearedAtCurrent bool) Verdict {
	if !c.Source.PathingLocked {
		return allow(RuleUnlocked)
	}

	if _, ok := c.blocked[target]; ok {
		return deny(RuleBlockedCell, fmt.Sprintf("the way to %s is impassable", target))
	}

	step := pointPair{current, target}
	if c.severed[step] {
		return deny(RuleBlockedEdge, fmt.Sprintf("no crossing from %s to %s", current, target))
	}

	if _, ok := c.conditional[step]; ok && !clearedAtCurrent {
		return deny(RuleConditional, "this way opens once the site here is resolved")
	}

	if c.Source.Rail.Active() {
		if i, ok := c.railIndex[current]; ok && i < len(c.Source.Rail.Path)-1 {
			if next := c.Source.Rail.Path[i+1]; target != next {
				return deny(RuleRail, fmt.Sprintf("the path leads onward to %s", next))
			}
		}
	}

	return allow(RuleNone)
}
