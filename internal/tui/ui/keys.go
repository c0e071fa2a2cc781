package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap contains all key bindings for the TUI
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Global controls
	StartPause    key.Binding
	BulkAdd       key.Binding
	BulkRemove    key.Binding
	BoardStepUp   key.Binding
	BoardStepDown key.Binding

	// Timer actions
	New        key.Binding
	NewBelow   key.Binding
	Remove     key.Binding
	LocalPause key.Binding
	AddTime    key.Binding
	RemoveTime key.Binding
	SetTime    key.Binding
	Rename     key.Binding
	Template   key.Binding
	StepUp     key.Binding
	StepDown   key.Binding

	// Themes
	ThemeNext key.Binding
	ThemePrev key.Binding

	// Misc
	Select key.Binding
	Back   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation (vim + arrows)
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),

		// Global controls
		StartPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/pause all"),
		),
		BulkAdd: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "add to all"),
		),
		BulkRemove: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "remove from all"),
		),
		BoardStepUp: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "bigger bulk step"),
		),
		BoardStepDown: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "smaller bulk step"),
		),

		// Timer actions
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new timer"),
		),
		NewBelow: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "new timer below"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete timer"),
		),
		LocalPause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pin/unpin timer"),
		),
		AddTime: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add time"),
		),
		RemoveTime: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove time"),
		),
		SetTime: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "set time"),
		),
		Rename: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "rename"),
		),
		Template: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "edit template"),
		),
		StepUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "bigger step"),
		),
		StepDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "smaller step"),
		),

		// Themes
		ThemeNext: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "next theme"),
		),
		ThemePrev: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",", "prev theme"),
		),

		// Misc
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
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
