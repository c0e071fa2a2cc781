package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App   lipgloss.Style
	Title lipgloss.Style

	// Timer rows
	RowSelected  lipgloss.Style
	RowNormal    lipgloss.Style
	TimerName    lipgloss.Style
	TimerClock   lipgloss.Style
	TimerRunning lipgloss.Style
	TimerDone    lipgloss.Style
	TimerPinned  lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style
	StatusHelp  lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Input
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Errors
	Error lipgloss.Style
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	// Color palette
	primary := lipgloss.Color("99")     // Purple
	secondary := lipgloss.Color("39")   // Cyan
	accent := lipgloss.Color("212")     // Pink
	muted := lipgloss.Color("240")      // Gray
	success := lipgloss.Color("82")     // Green
	errorColor := lipgloss.Color("196") // Red

	return Styles{
		// Base styles
		App: lipgloss.NewStyle().Padding(1, 2),
		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		// Timer rows
		RowSelected: lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Bold(true),
		RowNormal: lipgloss.NewStyle(),
		TimerName: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		TimerClock: lipgloss.NewStyle().
			Foreground(accent).
			Width(8).
			Align(lipgloss.Right),
		TimerRunning: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),
		TimerDone: lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true),
		TimerPinned: lipgloss.NewStyle().
			Foreground(muted),

		// Status bar
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		// Help
		HelpKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(muted),

		// Input
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		// Errors
		Error: lipgloss.NewStyle().
			Foreground(errorColor),
	}
}

// NewStylesFromRegistry creates a Styles struct using colors from a bubbletint registry.
// This maps theme colors to semantic UI elements:
// - Primary: Purple (title, focused input)
// - Secondary: Cyan (status keys, help keys)
// - Accent: BrightPurple (clocks)
// - Muted: BrightBlack (pinned timers, help text)
// - Success/Error: Green/Red (running and done timers)
func NewStylesFromRegistry(r *tint.Registry) Styles {
	// Get colors from registry (uses current theme)
	primary := r.Purple()
	secondary := r.Cyan()
	accent := r.BrightPurple()
	muted := r.BrightBlack()
	success := r.Green()
	errorColor := r.Red()
	fg := r.Fg()
	bg := r.Bg()

	return Styles{
		// Base styles
		App: lipgloss.NewStyle().Padding(1, 2),
		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		// Timer rows
		RowSelected: lipgloss.NewStyle().
			Background(muted).
			Bold(true),
		RowNormal: lipgloss.NewStyle(),
		TimerName: lipgloss.NewStyle().
			Foreground(fg),
		TimerClock: lipgloss.NewStyle().
			Foreground(accent).
			Width(8).
			Align(lipgloss.Right),
		TimerRunning: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),
		TimerDone: lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true),
		TimerPinned: lipgloss.NewStyle().
			Foreground(muted),

		// Status bar
		StatusBar: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusValue: lipgloss.NewStyle().
			Foreground(fg),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		// Help
		HelpKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(muted),

		// Input
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		// Errors
		Error: lipgloss.NewStyle().
			Foreground(errorColor),
	}
}
