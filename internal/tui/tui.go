// Package tui provides the terminal user interface for the timer board.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/torchtimer/internal/board"
	"github.com/xolan/torchtimer/internal/countdown"
	"github.com/xolan/torchtimer/internal/service"
	"github.com/xolan/torchtimer/internal/tui/ui"
)

// stepDelta is how much [ and ] change a nudge step, in minutes.
const stepDelta = 5

// inputKind tells the input overlay what the entered value is for.
type inputKind int

const (
	inputNone inputKind = iota
	inputRename
	inputSetTime
	inputTemplate
)

// tickMsg is sent every second to advance the board.
type tickMsg time.Time

// Model is the root TUI model
type Model struct {
	// Services
	services *service.Services

	// Domain state
	board *board.Board
	cue   board.Cue
	now   time.Time

	// UI state
	width    int
	height   int
	cursor   int
	showHelp bool

	// Input state
	inputMode inputKind
	input     textinput.Model
	inputID   uint32

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services, cue board.Cue) Model {
	themeName := services.Config.Get().Theme
	themeProvider := ui.NewThemeProvider(themeName)

	ti := textinput.New()
	ti.CharLimit = 60
	ti.Width = 24

	return Model{
		services:      services,
		board:         services.Board.Load(),
		cue:           cue,
		now:           time.Now(),
		themeProvider: themeProvider,
		styles:        themeProvider.Styles(),
		keys:          ui.DefaultKeyMap(),
		input:         ti,
	}
}

// Board exposes the board for persistence after the program exits.
func (m Model) Board() *board.Board {
	return m.board
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inputMode != inputNone {
			return m.handleInputMode(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		m.board.Tick(m.now, m.cue)
		m.clampCursor()
		return m, m.tick()
	}

	return m, nil
}

// handleKey handles key events outside of input mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.board.Len()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.StartPause):
		if m.board.Running() {
			m.board.GlobalPause(m.now)
		} else {
			m.board.GlobalStart(m.now)
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.board.SpawnTimer(m.now)
		m.cursor = m.board.Len() - 1
		return m, nil

	case key.Matches(msg, m.keys.NewBelow):
		if t := m.selected(); t != nil {
			m.board.SpawnTimerAfter(m.now, t.ID)
			m.cursor++
		} else {
			m.board.SpawnTimer(m.now)
			m.cursor = m.board.Len() - 1
		}
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		if t := m.selected(); t != nil {
			m.board.RemoveTimer(t.ID)
			m.clampCursor()
		}
		return m, nil

	case key.Matches(msg, m.keys.LocalPause):
		if t := m.selected(); t != nil {
			m.board.ToggleLocalPause(m.now, t.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.AddTime):
		if t := m.selected(); t != nil {
			t.AddTime(t.Step)
		}
		return m, nil

	case key.Matches(msg, m.keys.RemoveTime):
		if t := m.selected(); t != nil {
			t.RemoveTime(t.Step)
		}
		return m, nil

	case key.Matches(msg, m.keys.BulkAdd):
		m.board.BulkAdd(m.board.Step)
		return m, nil

	case key.Matches(msg, m.keys.BulkRemove):
		m.board.BulkRemove(m.board.Step)
		return m, nil

	case key.Matches(msg, m.keys.StepUp):
		if t := m.selected(); t != nil {
			t.Step += stepDelta
		}
		return m, nil

	case key.Matches(msg, m.keys.StepDown):
		if t := m.selected(); t != nil && t.Step > stepDelta {
			t.Step -= stepDelta
		}
		return m, nil

	case key.Matches(msg, m.keys.BoardStepUp):
		m.board.Step += stepDelta
		return m, nil

	case key.Matches(msg, m.keys.BoardStepDown):
		if m.board.Step > stepDelta {
			m.board.Step -= stepDelta
		}
		return m, nil

	case key.Matches(msg, m.keys.SetTime):
		if t := m.selected(); t != nil {
			m.inputMode = inputSetTime
			m.inputID = t.ID
			m.input.Placeholder = "minutes"
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Rename):
		if t := m.selected(); t != nil {
			m.inputMode = inputRename
			m.inputID = t.ID
			m.input.Placeholder = "name"
			m.input.SetValue(t.Name)
			m.input.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Template):
		m.inputMode = inputTemplate
		m.input.Placeholder = "name minutes"
		m.input.SetValue(fmt.Sprintf("%s %d", m.board.TemplateName, m.board.TemplateMinutes))
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.ThemeNext):
		m.themeProvider.NextTheme()
		m.styles = m.themeProvider.Styles()
		return m, m.saveThemeConfig(m.themeProvider.CurrentName())

	case key.Matches(msg, m.keys.ThemePrev):
		m.themeProvider.PreviousTheme()
		m.styles = m.themeProvider.Styles()
		return m, m.saveThemeConfig(m.themeProvider.CurrentName())
	}

	return m, nil
}

// handleInputMode handles key events while the input overlay is open
func (m Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Select): // Enter
		m.applyInput()
		m.closeInput()
		return m, nil
	case key.Matches(msg, m.keys.Back): // Escape
		m.closeInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applyInput commits the entered value to the timer it was opened for.
// The timer may have been removed by a tick in the meantime; then the
// input is simply dropped.
func (m *Model) applyInput() {
	value := strings.TrimSpace(m.input.Value())

	if m.inputMode == inputTemplate {
		m.applyTemplate(value)
		return
	}

	t := m.board.Timer(m.inputID)
	if t == nil {
		return
	}

	switch m.inputMode {
	case inputRename:
		if value != "" {
			t.Name = value
		}
	case inputSetTime:
		minutes, err := strconv.Atoi(value)
		if err != nil || minutes < 0 {
			return
		}
		t.SetTime(m.now, minutes)
	}
}

// applyTemplate updates the spawn template from the entered value. The value
// is "name", "minutes" or "name minutes": a non-negative integer in the last
// field sets the template duration, anything before it sets the name.
func (m *Model) applyTemplate(value string) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return
	}
	last := fields[len(fields)-1]
	if minutes, err := strconv.Atoi(last); err == nil && minutes >= 0 {
		m.board.TemplateMinutes = minutes
		fields = fields[:len(fields)-1]
	}
	if len(fields) > 0 {
		m.board.TemplateName = strings.Join(fields, " ")
	}
}

func (m *Model) closeInput() {
	m.inputMode = inputNone
	m.input.Blur()
	m.input.SetValue("")
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n")

	for i, t := range m.board.Timers() {
		b.WriteString(m.renderRow(i, t))
		b.WriteString("\n")
	}

	if m.inputMode != inputNone {
		b.WriteString("\n")
		b.WriteString(m.renderInput())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return m.styles.App.Render(b.String())
}

func (m Model) renderTitle() string {
	state := "paused"
	style := m.styles.TimerPinned
	if m.board.Running() {
		state = "running"
		style = m.styles.TimerRunning
	}
	return m.styles.Title.Render("torchtimer") + " " + style.Render("("+state+")")
}

// renderRow renders a single timer row
func (m Model) renderRow(i int, t *countdown.Timer) string {
	left := t.Remaining(m.now)

	clock := m.styles.TimerClock.Render(formatClock(left))
	name := m.styles.TimerName.Render(t.Name)

	var marker string
	switch {
	case left == 0:
		marker = m.styles.TimerDone.Render(" DONE")
	case t.LocalPause:
		marker = m.styles.TimerPinned.Render(" ⏸")
	case !t.IsPaused():
		marker = m.styles.TimerRunning.Render(" ●")
	}

	cursor := "  "
	if i == m.cursor {
		cursor = "> "
	}

	row := fmt.Sprintf("%s%s  %s%s", cursor, clock, name, marker)
	if i == m.cursor {
		return m.styles.RowSelected.Render(row)
	}
	return m.styles.RowNormal.Render(row)
}

// renderInput renders the input overlay for rename and set-time
func (m Model) renderInput() string {
	label := "Rename timer"
	switch m.inputMode {
	case inputSetTime:
		label = "Set time (minutes)"
	case inputTemplate:
		label = "New-timer template (name minutes)"
	}
	return m.styles.StatusKey.Render(label) + "\n" + m.styles.InputFocused.Render(m.input.View())
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.inputMode != inputNone {
		parts = append(parts, m.renderKeyHelp("Enter", "confirm"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	} else {
		parts = append(parts, m.renderKeyHelp("space", "start/pause"))
		parts = append(parts, m.renderKeyHelp("n", "new"))
		parts = append(parts, m.renderKeyHelp("d", "delete"))
		parts = append(parts, m.renderKeyHelp("a/x", fmt.Sprintf("±%dm", m.selectedStep())))
		parts = append(parts, m.renderKeyHelp("+/-", fmt.Sprintf("all ±%dm", m.board.Step)))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")

	// Fill to width
	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// renderHelpOverlay renders the full keyboard reference
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.Title.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatusKey.Render("Board:"))
	help.WriteString("\n")
	help.WriteString("  space      Start/pause all timers\n")
	help.WriteString("  +/-        Add/remove time on all timers\n")
	help.WriteString("  {/}        Change the bulk step\n")
	help.WriteString("  t          Edit the new-timer template (name and minutes)\n")
	help.WriteString("\n")

	help.WriteString(m.styles.StatusKey.Render("Timer:"))
	help.WriteString("\n")
	help.WriteString("  j/k        Navigate up/down\n")
	help.WriteString("  n/o        New timer (at end / below)\n")
	help.WriteString("  d          Delete timer\n")
	help.WriteString("  p          Pin (exclude from board controls)\n")
	help.WriteString("  a/x        Add/remove one step of time\n")
	help.WriteString("  [/]        Change the timer's step\n")
	help.WriteString("  s          Set time in minutes\n")
	help.WriteString("  e          Rename\n")
	help.WriteString("\n")

	help.WriteString(m.styles.StatusKey.Render("Other:"))
	help.WriteString("\n")
	help.WriteString("  ./,        Next/previous theme\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")

	return m.styles.App.Render(help.String())
}

// selected returns the timer under the cursor, or nil on an empty board.
func (m Model) selected() *countdown.Timer {
	timers := m.board.Timers()
	if m.cursor < 0 || m.cursor >= len(timers) {
		return nil
	}
	return timers[m.cursor]
}

func (m Model) selectedStep() int {
	if t := m.selected(); t != nil {
		return t.Step
	}
	return countdown.DefaultStep
}

func (m *Model) clampCursor() {
	if m.cursor >= m.board.Len() {
		m.cursor = m.board.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		cfg.Theme = themeName
		_ = m.services.Config.Update(cfg)
		return nil
	}
}

// tick returns a command that sends a tick every second
func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// formatClock renders a duration as MM:SS, or H:MM:SS past the hour.
func formatClock(d time.Duration) string {
	total := int(d / time.Second)
	hours := total / 3600
	minutes := total % 3600 / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// Run starts the TUI application and persists the board on exit.
func Run(services *service.Services, cue board.Cue) error {
	model := New(services, cue)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(Model); ok {
		if saveErr := services.Board.Save(fm.Board(), time.Now()); saveErr != nil {
			return fmt.Errorf("failed to save board: %w", saveErr)
		}
	}
	return nil
}
