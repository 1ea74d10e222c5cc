// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	prevPage   key.Binding
	nextPage   key.Binding
	moreRows   key.Binding
	fewerRows  key.Binding
	search     key.Binding
	sort       key.Binding
	reset      key.Binding
	refetch    key.Binding
	delete     key.Binding
	copy       key.Binding
	nextTab    key.Binding
	prevTab    key.Binding
	statistics key.Binding
	dateRange  key.Binding
	logout     key.Binding
	enter      key.Binding
	esc        key.Binding
	quit       key.Binding
	forceQuit  key.Binding
	yes        key.Binding
	no         key.Binding
	nextField  key.Binding
	prevField  key.Binding
}

var keys = keyMap{
	prevPage:   key.NewBinding(key.WithKeys("left", "h")),
	nextPage:   key.NewBinding(key.WithKeys("right", "l")),
	moreRows:   key.NewBinding(key.WithKeys("+", "=")),
	fewerRows:  key.NewBinding(key.WithKeys("-", "_")),
	search:     key.NewBinding(key.WithKeys("/")),
	sort:       key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9")),
	reset:      key.NewBinding(key.WithKeys("r")),
	refetch:    key.NewBinding(key.WithKeys("ctrl+r")),
	delete:     key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("y")),
	nextTab:    key.NewBinding(key.WithKeys("tab")),
	prevTab:    key.NewBinding(key.WithKeys("shift+tab")),
	statistics: key.NewBinding(key.WithKeys("s")),
	dateRange:  key.NewBinding(key.WithKeys("f")),
	logout:     key.NewBinding(key.WithKeys("L")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	forceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n")),
	nextField:  key.NewBinding(key.WithKeys("tab", "down")),
	prevField:  key.NewBinding(key.WithKeys("shift+tab", "up")),
}

// limitStep is the page size change of one +/- press.
const limitStep = 5
