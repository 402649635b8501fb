package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone Action = iota

	// 8-way movement intents, one per compass heading.
	ActionMoveN
	ActionMoveNE
	ActionMoveE
	ActionMoveSE
	ActionMoveS
	ActionMoveSW
	ActionMoveW
	ActionMoveNW

	ActionStepBack        // Backspace - retrace the last trail step
	ActionResolve         // E - resolve the site at the current location
	ActionToggleAlignment // M - switch between north-up and heading-up view
	ActionZoomIn          // + - zoom toward the viewport center
	ActionZoomOut         // - - zoom away from the viewport center
	ActionRecenter        // C - recenter pan on the player, keep zoom
	ActionResetView       // 0 - reset zoom and pan
	ActionRestart         // R - restart the expedition
	ActionPause           // P - pause/unpause
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveN, ActionMoveNE, ActionMoveE, ActionMoveSE,
		ActionMoveS, ActionMoveSW, ActionMoveW, ActionMoveNW:
		return "Move" + Heading(a-ActionMoveN).String()
	case ActionStepBack:
		return "StepBack"
	case ActionResolve:
		return "Resolve"
	case ActionToggleAlignment:
		return "ToggleAlignment"
	case ActionZoomIn:
		return "ZoomIn"
	case ActionZoomOut:
		return "ZoomOut"
	case ActionRecenter:
		return "Recenter"
	case ActionResetView:
		return "ResetView"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// MoveAction returns the movement action for a heading.
func MoveAction(h Heading) Action {
	return ActionMoveN + Action(h.Index())
}

// MoveHeading returns the heading for a movement action.
// The second return value is false for non-movement actions.
func MoveHeading(a Action) (Heading, bool) {
	if a < ActionMoveN || a > ActionMoveNW {
		return HeadingN, false
	}
	return Heading(a - ActionMoveN), true
}

// PointerKind classifies a pointer event delivered with an input frame.
type PointerKind int

const (
	PointerNone PointerKind = iota
	PointerPress
	PointerRelease
	PointerMove
	PointerWheelUp
	PointerWheelDown
)

// PointerEvent carries a single mouse gesture in screen coordinates.
// The platform layer translates terminal mouse messages into these so
// camera gestures remain pure, testable game logic.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// InputFrame represents the input state for a single simulation step.
// It contains all actions that were triggered plus at most one pointer event.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer is the pointer event for this frame, if any.
	Pointer *PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetPointer attaches a pointer event to this frame.
func (f *InputFrame) SetPointer(kind PointerKind, x, y float64) {
	f.Pointer = &PointerEvent{Kind: kind, X: x, Y: y}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Move returns the heading of the first movement action in this frame.
// The second return value is false when no movement was requested.
func (f InputFrame) Move() (Heading, bool) {
	for h := Heading(0); h < HeadingCount; h++ {
		if f.Has(MoveAction(h)) {
			return h, true
		}
	}
	return HeadingN, false
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Pointer != nil {
		p := *f.Pointer
		clone.Pointer = &p
	}
	return clone
}
