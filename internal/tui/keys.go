package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	forceQuit key.Binding
	quit      key.Binding
	version   key.Binding
	logout    key.Binding
	refresh   key.Binding
	copy      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	quit:      key.NewBinding(key.WithKeys("q")),
	version:   key.NewBinding(key.WithKeys("v")),
	logout:    key.NewBinding(key.WithKeys("l")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	copy:      key.NewBinding(key.WithKeys("c")),
}
