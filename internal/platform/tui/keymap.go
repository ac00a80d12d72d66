package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-artillery/internal/core"
)

// PlayKeyMap defines the key bindings used while a round is running.
type PlayKeyMap struct {
	AimLeft       key.Binding
	AimRight      key.Binding
	AimLeftFine   key.Binding
	AimRightFine  key.Binding
	PowerUp       key.Binding
	PowerDown     key.Binding
	PowerUpFast   key.Binding
	PowerDownFast key.Binding
	Fire          key.Binding
	Pause         key.Binding
	Restart       key.Binding
	Screenshot    key.Binding
	Copy          key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AimLeft, k.AimRight, k.PowerUp, k.PowerDown, k.Fire, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AimLeft, k.AimRight, k.AimLeftFine, k.AimRightFine},
		{k.PowerUp, k.PowerDown, k.PowerUpFast, k.PowerDownFast},
		{k.Fire, k.Pause, k.Restart},
		{k.Screenshot, k.Copy, k.Help, k.Quit},
	}
}

// DefaultPlayKeyMap returns default key bindings.
func DefaultPlayKeyMap() PlayKeyMap {
	return PlayKeyMap{
		AimLeft: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "aim left"),
		),
		AimRight: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "aim right"),
		),
		AimLeftFine: key.NewBinding(
			key.WithKeys("shift+left", ","),
			key.WithHelp("S-←/,", "nudge left"),
		),
		AimRightFine: key.NewBinding(
			key.WithKeys("shift+right", "."),
			key.WithHelp("S-→/.", "nudge right"),
		),
		PowerUp: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "power +"),
		),
		PowerDown: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "power -"),
		),
		PowerUpFast: key.NewBinding(
			key.WithKeys("pgup", "W"),
			key.WithHelp("pgup/W", "power ++"),
		),
		PowerDownFast: key.NewBinding(
			key.WithKeys("pgdown", "S"),
			key.WithHelp("pgdn/S", "power --"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "next round"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "screenshot"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("^y", "copy frame"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys PlayKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultPlayKeyMap()}
}

// Keys returns the bindings used for play.
func (km *KeyMapper) Keys() PlayKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.AimLeft):
		return core.ActionAimLeft, false
	case key.Matches(msg, k.AimRight):
		return core.ActionAimRight, false
	case key.Matches(msg, k.AimLeftFine):
		return core.ActionAimLeftFine, false
	case key.Matches(msg, k.AimRightFine):
		return core.ActionAimRightFine, false
	case key.Matches(msg, k.PowerUp):
		return core.ActionPowerUp, false
	case key.Matches(msg, k.PowerDown):
		return core.ActionPowerDown, false
	case key.Matches(msg, k.PowerUpFast):
		return core.ActionPowerUpFast, false
	case key.Matches(msg, k.PowerDownFast):
		return core.ActionPowerDownFast, false
	case key.Matches(msg, k.Fire):
		return core.ActionFire, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
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

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionHistory
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
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
		return MenuActionHistory
	}

	return MenuActionNone
}
