package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

type actionBinding struct {
	action core.Action
	key.Binding
}

type menuBinding struct {
	action MenuAction
	key.Binding
}

// KeyMapper holds the key bindings for the game and the menus. Bindings are
// checked in order, so quit always wins.
type KeyMapper struct {
	screenshot key.Binding
	game       []actionBinding
	menu       []menuBinding
}

// NewKeyMapper returns a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		game: []actionBinding{
			{core.ActionQuit, key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit"))},
			{core.ActionJump, key.NewBinding(key.WithKeys(" ", "w", "up"), key.WithHelp("space", "jump"))},
			{core.ActionConfirm, key.NewBinding(key.WithKeys("enter"))},
			{core.ActionBack, key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b", "back"))},
			{core.ActionPause, key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause"))},
			{core.ActionRestart, key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart"))},
		},
		menu: []menuBinding{
			{MenuActionQuit, key.NewBinding(key.WithKeys("ctrl+c", "q"))},
			{MenuActionUp, key.NewBinding(key.WithKeys("w", "up", "k"))},
			{MenuActionDown, key.NewBinding(key.WithKeys("s", "down", "j"))},
			{MenuActionSelect, key.NewBinding(key.WithKeys("enter", " "))},
			{MenuActionBack, key.NewBinding(key.WithKeys("b", "esc"))},
			{MenuActionScoreboard, key.NewBinding(key.WithKeys("tab"))},
		},
	}
}

// MapKey returns the game action for msg, ActionNone when unbound.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.game {
		if key.Matches(msg, b.Binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame adds the action for msg to frame and reports a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}

// IsScreenshot reports whether msg asks for a screen dump.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.screenshot)
}

type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction returns the menu action for msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, b := range km.menu {
		if key.Matches(msg, b.Binding) {
			return b.action
		}
	}
	return MenuActionNone
}
