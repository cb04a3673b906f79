// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter         key.Binding
	esc           key.Binding
	tab           key.Binding
	backtab       key.Binding
	toggleVisible key.Binding
	copy          key.Binding
	decrypt       key.Binding
	edit          key.Binding
	save          key.Binding
	close         key.Binding
}

var keys = keyMap{
	enter:         key.NewBinding(key.WithKeys("enter")),
	esc:           key.NewBinding(key.WithKeys("esc")),
	tab:           key.NewBinding(key.WithKeys("tab", "down")),
	backtab:       key.NewBinding(key.WithKeys("shift+tab", "up")),
	toggleVisible: key.NewBinding(key.WithKeys("ctrl+r")),
	copy:          key.NewBinding(key.WithKeys("c")),
	decrypt:       key.NewBinding(key.WithKeys("d")),
	edit:          key.NewBinding(key.WithKeys("e")),
	save:          key.NewBinding(key.WithKeys("ctrl+s")),
	close:         key.NewBinding(key.WithKeys("q", "esc")),
}
