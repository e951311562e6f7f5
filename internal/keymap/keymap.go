package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Binding ties an action to its keys and help text.
type Binding struct {
	Action Action
	Key    key.Binding
}

// DefaultBindings returns the built-in bindings.
func DefaultBindings() []Binding {
	return []Binding{
		{ActionPlayPause, key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "play/pause"))},
		{ActionSeekBack, key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "seek back"))},
		{ActionSeekForward, key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "seek forward"))},
		{ActionVolumeUp, key.NewBinding(key.WithKeys("up", "k", "+"), key.WithHelp("↑/k", "volume up"))},
		{ActionVolumeDown, key.NewBinding(key.WithKeys("down", "j", "-"), key.WithHelp("↓/j", "volume down"))},
		{ActionToggleVolume, key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "volume panel"))},
		{ActionCancelDrag, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag"))},
		{ActionHelp, key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help"))},
		{ActionQuit, key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))},
	}
}

// KeyMap resolves key presses to actions and implements help.KeyMap.
type KeyMap struct {
	bindings []Binding
}

// New creates a key map with the default bindings.
func New() *KeyMap {
	return NewWith(DefaultBindings())
}

// NewWith creates a key map from bindings. Earlier bindings win when keys
// overlap.
func NewWith(bindings []Binding) *KeyMap {
	return &KeyMap{bindings: bindings}
}

// Resolve returns the action for msg, or ActionNone if not bound.
func (k *KeyMap) Resolve(msg tea.KeyMsg) Action {
	for _, b := range k.bindings {
		if key.Matches(msg, b.Key) {
			return b.Action
		}
	}
	return ActionNone
}

// Binding returns the key binding for action.
func (k *KeyMap) Binding(action Action) (key.Binding, bool) {
	for _, b := range k.bindings {
		if b.Action == action {
			return b.Key, true
		}
	}
	return key.Binding{}, false
}

// ShortHelp implements help.KeyMap.
func (k *KeyMap) ShortHelp() []key.Binding {
	return k.keys(ActionPlayPause, ActionToggleVolume, ActionHelp, ActionQuit)
}

// FullHelp implements help.KeyMap.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.keys(ActionPlayPause, ActionSeekBack, ActionSeekForward),
		k.keys(ActionVolumeUp, ActionVolumeDown, ActionToggleVolume),
		k.keys(ActionCancelDrag, ActionHelp, ActionQuit),
	}
}

func (k *KeyMap) keys(actions ...Action) []key.Binding {
	out := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		if b, ok := k.Binding(a); ok {
			out = append(out, b)
		}
	}
	return out
}
