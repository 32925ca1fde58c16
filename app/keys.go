package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/philtim/zoneclock/locale"
	"github.com/philtim/zoneclock/zones"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Open    key.Binding
	First   key.Binding
	Second  key.Binding
	Back    key.Binding
	Theme   key.Binding
	Restore key.Binding
	Quit    key.Binding
}

// newKeyMap builds the bindings with help text in the working language
func newKeyMap(l *locale.Localizer) keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k")),
		Down:    key.NewBinding(key.WithKeys("down", "j")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", l.T("key_select"))),
		Right:   key.NewBinding(key.WithKeys("right", "l")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", l.T("key_open"))),
		First:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", l.City(zones.Brasilia, "Brasília"))),
		Second:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", l.City(zones.StLouis, "St. Louis"))),
		Back:    key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", l.T("key_back"))),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", l.T("key_theme"))),
		Restore: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", l.T("key_restore"))),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", l.T("key_quit"))),
	}
}
