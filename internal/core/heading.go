package core

// Heading is one of the 8 compass directions the player can face.
// Indexes increase clockwise from north so that rotation by
// -(index * 45°) brings the heading to the top of the screen.
type Heading int

const (
	HeadingN Heading = iota
	HeadingNE
	HeadingE
	HeadingSE
	HeadingS
	HeadingSW
	HeadingW
	HeadingNW

	HeadingCount = 8
)

// headingDeltas maps headings to grid steps. North is -Y: the grid uses
// screen orientation with y growing downward.
var headingDeltas = [HeadingCount]Point{
	{0, -1},  // N
	{1, -1},  // NE
	{1, 0},   // E
	{1, 1},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
	{-1, 0},  // W
	{-1, -1}, // NW
}

var headingNames = [HeadingCount]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Delta returns the single-step grid offset for this heading.
func (h Heading) Delta() Point {
	if h < 0 || h >= HeadingCount {
		return Point{}
	}
	return headingDeltas[h]
}

// Index returns the compass index in [0, 8).
func (h Heading) Index() int {
	return int(h)
}

// Opposite returns the reverse heading.
func (h Heading) Opposite() Heading {
	return (h + 4) % HeadingCount
}

// String returns the short compass name ("N", "NE", ...).
func (h Heading) String() string {
	if h < 0 || h >= HeadingCount {
		return "?"
	}
	return headingNames[h]
}

// ParseHeading returns the heading for a compass name.
// The second return value is false for unrecognized names.
func ParseHeading(name string) (Heading, bool) {
	for i, n := range headingNames {
		if n == name {
			return Heading(i), true
		}
	}
	return HeadingN, false
}

// HeadingFromDelta returns the heading matching a single grid step.
// Returns false when the offset is not one of the 8 unit steps.
func HeadingFromDelta(dx, dy int) (Heading, bool) {
	for i, d := range headingDeltas {
		if d.X == dx && d.Y == dy {
			return Heading(i), true
		}
	}
	return HeadingN, false
}
