package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding

	quit      key.Binding
	forceQuit key.Binding
	logout    key.Binding
	refresh   key.Binding
	about     key.Binding

	// auth screens
	signup    key.Binding
	forgot    key.Binding
	resend    key.Binding
	haveToken key.Binding

	// reports
	newItem   key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	save      key.Binding
	tagFilter key.Binding
	period    key.Binding
	sort      key.Binding
	addTag    key.Binding
	removeTag key.Binding

	// account
	account       key.Binding
	username      key.Binding
	password      key.Binding
	email         key.Binding
	deleteAccount key.Binding

	yes key.Binding
	no  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left", "h")),
	right:   key.NewBinding(key.WithKeys("right", "l")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),

	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("L")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	about:     key.NewBinding(key.WithKeys("i")),

	signup:    key.NewBinding(key.WithKeys("ctrl+n")),
	forgot:    key.NewBinding(key.WithKeys("ctrl+f")),
	resend:    key.NewBinding(key.WithKeys("ctrl+r")),
	haveToken: key.NewBinding(key.WithKeys("ctrl+t")),

	newItem:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	tagFilter: key.NewBinding(key.WithKeys("t")),
	period:    key.NewBinding(key.WithKeys("p")),
	sort:      key.NewBinding(key.WithKeys("s")),
	addTag:    key.NewBinding(key.WithKeys("+")),
	removeTag: key.NewBinding(key.WithKeys("x")),

	account:       key.NewBinding(key.WithKeys("a")),
	username:      key.NewBinding(key.WithKeys("u")),
	password:      key.NewBinding(key.WithKeys("p")),
	email:         key.NewBinding(key.WithKeys("e")),
	deleteAccount: key.NewBinding(key.WithKeys("D")),

	yes: key.NewBinding(key.WithKeys("y")),
	no:  key.NewBinding(key.WithKeys("n")),
}
