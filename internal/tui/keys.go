package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up           key.Binding
	down         key.Binding
	prevSemester key.Binding
	nextSemester key.Binding
	semester     key.Binding
	enter        key.Binding
	esc          key.Binding
	tab          key.Binding
	backtab      key.Binding
	quit         key.Binding
	logout       key.Binding
	addSubject   key.Binding
	upload       key.Binding
	reload       key.Binding
	copy         key.Binding
	settings     key.Binding
	profile      key.Binding
	toggle       key.Binding
	resend       key.Binding
}

var keys = keyMap{
	up:           key.NewBinding(key.WithKeys("up", "k")),
	down:         key.NewBinding(key.WithKeys("down", "j")),
	prevSemester: key.NewBinding(key.WithKeys("left", "[")),
	nextSemester: key.NewBinding(key.WithKeys("right", "]")),
	semester:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8")),
	enter:        key.NewBinding(key.WithKeys("enter")),
	esc:          key.NewBinding(key.WithKeys("esc")),
	tab:          key.NewBinding(key.WithKeys("tab")),
	backtab:      key.NewBinding(key.WithKeys("shift+tab")),
	quit:         key.NewBinding(key.WithKeys("q")),
	logout:       key.NewBinding(key.WithKeys("o")),
	addSubject:   key.NewBinding(key.WithKeys("a")),
	upload:       key.NewBinding(key.WithKeys("u")),
	reload:       key.NewBinding(key.WithKeys("r")),
	copy:         key.NewBinding(key.WithKeys("c")),
	settings:     key.NewBinding(key.WithKeys("s")),
	profile:      key.NewBinding(key.WithKeys("p")),
	toggle:       key.NewBinding(key.WithKeys(" ")),
	resend:       key.NewBinding(key.WithKeys("ctrl+r")),
}
