package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/torchtimer/internal/audio"
	"github.com/xolan/torchtimer/internal/config"
	"github.com/xolan/torchtimer/internal/service"
	"github.com/xolan/torchtimer/internal/storage"
)

var t0 = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func setupTestServices(t *testing.T) *service.Services {
	t.Helper()
	tmpDir := t.TempDir()
	statePath := filepath.Join(tmpDir, storage.StateFile)
	configPath := filepath.Join(tmpDir, config.ConfigFile)
	return service.NewServicesWithPaths(statePath, configPath, config.DefaultConfig())
}

func setupTestModel(t *testing.T) Model {
	t.Helper()
	m := New(setupTestServices(t), audio.NopCue{})
	// Pin the clock so assertions don't race the wall clock.
	newModel, _ := m.Update(tickMsg(t0))
	return newModel.(Model)
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNew(t *testing.T) {
	services := setupTestServices(t)
	model := New(services, audio.NopCue{})

	if model.services == nil {
		t.Error("expected services to be set")
	}
	if model.board == nil {
		t.Fatal("expected board to be loaded")
	}
	if model.board.Len() != 1 {
		t.Errorf("expected fresh board with 1 timer, got %d", model.board.Len())
	}
	if model.showHelp {
		t.Error("expected showHelp to be false initially")
	}
}

func TestInit(t *testing.T) {
	model := setupTestModel(t)

	cmd := model.Init()
	if cmd == nil {
		t.Error("expected Init to return a command")
	}
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	model := setupTestModel(t)

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	m := newModel.(Model)

	if m.width != 100 {
		t.Errorf("expected width 100, got %d", m.width)
	}
	if m.height != 50 {
		t.Errorf("expected height 50, got %d", m.height)
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	model := setupTestModel(t)

	_, cmd := model.Update(keyMsg('q'))

	// Quit should return a tea.Quit command
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestUpdate_HelpKey(t *testing.T) {
	model := setupTestModel(t)

	newModel, _ := model.Update(keyMsg('?'))
	m := newModel.(Model)

	if !m.showHelp {
		t.Error("expected showHelp to be true after pressing ?")
	}

	// Toggle off
	newModel, _ = m.Update(keyMsg('?'))
	m = newModel.(Model)

	if m.showHelp {
		t.Error("expected showHelp to be false after pressing ? again")
	}
}

func TestUpdate_StartPause(t *testing.T) {
	model := setupTestModel(t)

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m := newModel.(Model)

	if !m.board.Running() {
		t.Error("expected board to be running after space")
	}
	if m.board.Timers()[0].IsPaused() {
		t.Error("expected timer to be running after space")
	}

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = newModel.(Model)

	if m.board.Running() {
		t.Error("expected board to be paused after second space")
	}
	if !m.board.Timers()[0].IsPaused() {
		t.Error("expected timer to be paused after second space")
	}
}

func TestUpdate_NewAndRemoveTimer(t *testing.T) {
	model := setupTestModel(t)

	newModel, _ := model.Update(keyMsg('n'))
	m := newModel.(Model)

	if m.board.Len() != 2 {
		t.Fatalf("expected 2 timers after n, got %d", m.board.Len())
	}
	if m.cursor != 1 {
		t.Errorf("expected cursor on new timer, got %d", m.cursor)
	}

	newModel, _ = m.Update(keyMsg('d'))
	m = newModel.(Model)

	if m.board.Len() != 1 {
		t.Fatalf("expected 1 timer after d, got %d", m.board.Len())
	}
	if m.cursor != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", m.cursor)
	}
}

func TestUpdate_NewBelowInsertsAdjacent(t *testing.T) {
	model := setupTestModel(t)

	// Two timers, cursor on the first
	newModel, _ := model.Update(keyMsg('n'))
	m := newModel.(Model)
	m.cursor = 0
	firstID := m.board.Timers()[0].ID

	newModel, _ = m.Update(keyMsg('o'))
	m = newModel.(Model)

	if m.board.Len() != 3 {
		t.Fatalf("expected 3 timers, got %d", m.board.Len())
	}
	if m.board.Timers()[0].ID != firstID {
		t.Error("first timer moved")
	}
	// The spawned timer sits directly below the originating row
	if m.cursor != 1 {
		t.Errorf("expected cursor to follow the new timer, got %d", m.cursor)
	}
	if got := m.board.Timers()[1]; got != m.selected() {
		t.Error("cursor not on the inserted timer")
	}
}

func TestUpdate_CursorNavigation(t *testing.T) {
	model := setupTestModel(t)

	newModel, _ := model.Update(keyMsg('n'))
	m := newModel.(Model)
	m.cursor = 0

	newModel, _ = m.Update(keyMsg('j'))
	m = newModel.(Model)
	if m.cursor != 1 {
		t.Errorf("expected cursor 1 after j, got %d", m.cursor)
	}

	// Down at the bottom stays put
	newModel, _ = m.Update(keyMsg('j'))
	m = newModel.(Model)
	if m.cursor != 1 {
		t.Errorf("expected cursor to stay at 1, got %d", m.cursor)
	}

	newModel, _ = m.Update(keyMsg('k'))
	m = newModel.(Model)
	if m.cursor != 0 {
		t.Errorf("expected cursor 0 after k, got %d", m.cursor)
	}

	// Up at the top stays put
	newModel, _ = m.Update(keyMsg('k'))
	m = newModel.(Model)
	if m.cursor != 0 {
		t.Errorf("expected cursor to stay at 0, got %d", m.cursor)
	}
}

func TestUpdate_AddRemoveTime(t *testing.T) {
	model := setupTestModel(t)
	step := model.board.Timers()[0].Step

	newModel, _ := model.Update(keyMsg('a'))
	m := newModel.(Model)

	want := time.Hour + time.Duration(step)*time.Minute
	if got := m.board.Timers()[0].Remaining(t0); got != want {
		t.Errorf("remaining after a = %v, expected %v", got, want)
	}

	newModel, _ = m.Update(keyMsg('x'))
	m = newModel.(Model)

	if got := m.board.Timers()[0].Remaining(t0); got != time.Hour {
		t.Errorf("remaining after x = %v, expected 1h", got)
	}
}

func TestUpdate_BulkSkipsPinned(t *testing.T) {
	model := setupTestModel(t)

	newModel, _ := model.Update(keyMsg('n'))
	m := newModel.(Model)

	// Pin the second timer (cursor already on it)
	newModel, _ = m.Update(keyMsg('p'))
	m = newModel.(Model)
	if !m.board.Timers()[1].LocalPause {
		t.Fatal("expected second timer to be pinned after p")
	}

	newModel, _ = m.Update(keyMsg('+'))
	m = newModel.(Model)

	step := time.Duration(m.board.Step) * time.Minute
	if got := m.board.Timers()[0].Remaining(t0); got != time.Hour+step {
		t.Errorf("unpinned timer remaining = %v, expected %v", got, time.Hour+step)
	}
	if got := m.board.Timers()[1].Remaining(t0); got != time.Hour {
		t.Errorf("pinned timer remaining = %v, expected 1h", got)
	}
}

func TestUpdate_StepAdjustment(t *testing.T) {
	model := setupTestModel(t)
	initial := model.board.Timers()[0].Step

	newModel, _ := model.Update(keyMsg(']'))
	m := newModel.(Model)
	if got := m.board.Timers()[0].Step; got != initial+stepDelta {
		t.Errorf("step after ] = %d, expected %d", got, initial+stepDelta)
	}

	newModel, _ = m.Update(keyMsg('['))
	m = newModel.(Model)
	if got := m.board.Timers()[0].Step; got != initial {
		t.Errorf("step after [ = %d, expected %d", got, initial)
	}

	boardInitial := m.board.Step
	newModel, _ = m.Update(keyMsg('}'))
	m = newModel.(Model)
	if m.board.Step != boardInitial+stepDelta {
		t.Errorf("board step after } = %d, expected %d", m.board.Step, boardInitial+stepDelta)
	}
}

func TestUpdate_RenameFlow(t *testing.T) {
	model := setupTestModel(t)

	newModel, _ := model.Update(keyMsg('e'))
	m := newModel.(Model)
	if m.inputMode != inputRename {
		t.Fatal("expected rename input mode after e")
	}

	// Typed characters go to the input, not the key handlers
	m.input.SetValue("bonfire")
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)

	if m.inputMode != inputNone {
		t.Error("expected input mode to close after enter")
	}
	if got := m.board.Timers()[0].Name; got != "bonfire" {
		t.Errorf("timer name = %q, expected %q", got, "bonfire")
	}
}

func TestUpdate_TemplateFlow(t *testing.T) {
	model := setupTestModel(t)

	newModel, _ := model.Update(keyMsg('t'))
	m := newModel.(Model)
	if m.inputMode != inputTemplate {
		t.Fatal("expected template input mode after t")
	}
	if m.input.Value() != "torch 60" {
		t.Errorf("expected input prefilled with current template, got %q", m.input.Value())
	}

	m.input.SetValue("lantern 15")
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)

	if m.board.TemplateName != "lantern" {
		t.Errorf("template name = %q, expected %q", m.board.TemplateName, "lantern")
	}
	if m.board.TemplateMinutes != 15 {
		t.Errorf("template minutes = %d, expected 15", m.board.TemplateMinutes)
	}

	// Existing timers keep their names; only new spawns pick up the template
	if got := m.board.Timers()[0].Name; got != "torch" {
		t.Errorf("existing timer renamed to %q", got)
	}
	newModel, _ = m.Update(keyMsg('n'))
	m = newModel.(Model)
	if got := m.board.Timers()[1].Name; got != "lantern" {
		t.Errorf("spawned timer name = %q, expected %q", got, "lantern")
	}
	if got := m.board.Timers()[1].Remaining(t0); got != 15*time.Minute {
		t.Errorf("spawned timer remaining = %v, expected 15m", got)
	}
}

func TestUpdate_TemplatePartialEdits(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		wantName    string
		wantMinutes int
	}{
		{"minutes only", "30", "torch", 30},
		{"name only", "candle", "candle", 60},
		{"name with spaces", "camp fire 45", "camp fire", 45},
		{"empty keeps both", "", "torch", 60},
		{"numeric-looking name", "unit 7", "unit", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := setupTestModel(t)

			newModel, _ := model.Update(keyMsg('t'))
			m := newModel.(Model)
			m.input.SetValue(tt.value)
			newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			m = newModel.(Model)

			if m.board.TemplateName != tt.wantName {
				t.Errorf("template name = %q, expected %q", m.board.TemplateName, tt.wantName)
			}
			if m.board.TemplateMinutes != tt.wantMinutes {
				t.Errorf("template minutes = %d, expected %d", m.board.TemplateMinutes, tt.wantMinutes)
			}
		})
	}
}

func TestUpdate_SetTimeFlow(t *testing.T) {
	model := setupTestModel(t)

	newModel, _ := model.Update(keyMsg('s'))
	m := newModel.(Model)
	if m.inputMode != inputSetTime {
		t.Fatal("expected set-time input mode after s")
	}

	m.input.SetValue("25")
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)

	if got := m.board.Timers()[0].Remaining(t0); got != 25*time.Minute {
		t.Errorf("remaining after set = %v, expected 25m", got)
	}
}

func TestUpdate_SetTimeRejectsGarbage(t *testing.T) {
	model := setupTestModel(t)

	newModel, _ := model.Update(keyMsg('s'))
	m := newModel.(Model)
	m.input.SetValue("soon")
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)

	if got := m.board.Timers()[0].Remaining(t0); got != time.Hour {
		t.Errorf("remaining after bad input = %v, expected 1h unchanged", got)
	}
}

func TestUpdate_InputEscCancels(t *testing.T) {
	model := setupTestModel(t)

	newModel, _ := model.Update(keyMsg('e'))
	m := newModel.(Model)
	m.input.SetValue("ignored")
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = newModel.(Model)

	if m.inputMode != inputNone {
		t.Error("expected input mode to close after esc")
	}
	if got := m.board.Timers()[0].Name; got != "torch" {
		t.Errorf("timer name = %q, expected unchanged %q", got, "torch")
	}
}

func TestUpdate_InputModeBlocksGlobalKeys(t *testing.T) {
	model := setupTestModel(t)

	newModel, _ := model.Update(keyMsg('e'))
	m := newModel.(Model)

	// 'q' must be typed into the input, not quit the app
	newModel, cmd := m.Update(keyMsg('q'))
	m = newModel.(Model)

	if cmd != nil {
		msg := cmd()
		if _, isQuit := msg.(tea.QuitMsg); isQuit {
			t.Error("q inside input mode must not quit")
		}
	}
	if !strings.Contains(m.input.Value(), "q") {
		t.Errorf("expected q to reach the input, value = %q", m.input.Value())
	}
}

func TestUpdate_InputModeCtrlCQuits(t *testing.T) {
	model := setupTestModel(t)

	newModel, _ := model.Update(keyMsg('e'))
	m := newModel.(Model)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected ctrl+c to return a command in input mode")
	}
	if _, isQuit := cmd().(tea.QuitMsg); !isQuit {
		t.Error("expected ctrl+c to quit even while an input is open")
	}
}

func TestUpdate_TickAdvancesBoard(t *testing.T) {
	model := setupTestModel(t)

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m := newModel.(Model)

	newModel, cmd := m.Update(tickMsg(t0.Add(90 * time.Second)))
	m = newModel.(Model)

	if cmd == nil {
		t.Error("expected tick to schedule the next tick")
	}
	if got := m.board.Timers()[0].Remaining(m.now); got != time.Hour-90*time.Second {
		t.Errorf("remaining after tick = %v, expected 58m30s", got)
	}
}

func TestView_RendersTimers(t *testing.T) {
	model := setupTestModel(t)

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m := newModel.(Model)

	view := m.View()
	if !strings.Contains(view, "torch") {
		t.Error("expected view to contain the timer name")
	}
	if !strings.Contains(view, "1:00:00") {
		t.Errorf("expected view to contain the 1:00:00 clock, got:\n%s", view)
	}
}

func TestView_DoneMarker(t *testing.T) {
	model := setupTestModel(t)

	// Run the timer past zero
	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m := newModel.(Model)
	newModel, _ = m.Update(tickMsg(t0.Add(2 * time.Hour)))
	m = newModel.(Model)
	newModel, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = newModel.(Model)

	view := m.View()
	if !strings.Contains(view, "DONE") {
		t.Errorf("expected DONE marker for expired timer, got:\n%s", view)
	}
	if !strings.Contains(view, "00:00") {
		t.Error("expected expired timer clock to read 00:00")
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{time.Minute, "01:00"},
		{25 * time.Minute, "25:00"},
		{time.Hour, "1:00:00"},
		{time.Hour + 5*time.Minute + 9*time.Second, "1:05:09"},
		{10 * time.Hour, "10:00:00"},
	}

	for _, tt := range tests {
		if got := formatClock(tt.d); got != tt.expected {
			t.Errorf("formatClock(%v) = %q, expected %q", tt.d, got, tt.expected)
		}
	}
}
