package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wayfarer/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game
// actions. This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	// Movement: arrows for the cardinals, roguelike keys for all eight.
	switch key {
	case "up", "k":
		return core.ActionMoveN, false
	case "down", "j":
		return core.ActionMoveS, false
	case "left", "h":
		return core.ActionMoveW, false
	case "right", "l":
		return core.ActionMoveE, false
	case "y":
		return core.ActionMoveNW, false
	case "u":
		return core.ActionMoveNE, false
	case "b":
		return core.ActionMoveSW, false
	case "n":
		return core.ActionMoveSE, false
	}

	switch key {
	case "backspace":
		return core.ActionStepBack, false
	case "e", "enter":
		return core.ActionResolve, false
	case "m":
		return core.ActionToggleAlignment, false
	case "+", "=":
		return core.ActionZoomIn, false
	case "-", "_":
		return core.ActionZoomOut, false
	case "c":
		return core.ActionRecenter, false
	case "0":
		return core.ActionResetView, false
	case "r":
		return core.ActionRestart, false
	case "p", "esc":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame updates an input frame based on a mouse message.
// Returns true if the message carried a usable pointer gesture.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) bool {
	x, y := float64(msg.X), float64(msg.Y)

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		frame.SetPointer(core.PointerWheelUp, x, y)
		return true
	case tea.MouseButtonWheelDown:
		frame.SetPointer(core.PointerWheelDown, x, y)
		return true
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			frame.SetPointer(core.PointerPress, x, y)
			return true
		}
	case tea.MouseActionRelease:
		frame.SetPointer(core.PointerRelease, x, y)
		return true
	case tea.MouseActionMotion:
		frame.SetPointer(core.PointerMove, x, y)
		return true
	}

	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionBoard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionBoard
	}

	return MenuActionNone
}
