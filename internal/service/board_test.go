package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xolan/torchtimer/internal/config"
	"github.com/xolan/torchtimer/internal/storage"
)

var t0 = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestBoardService(t *testing.T, cfg config.Config) *BoardService {
	t.Helper()
	statePath := filepath.Join(t.TempDir(), storage.StateFile)
	return NewBoardService(statePath, cfg)
}

func TestBoardService_LoadFresh(t *testing.T) {
	s := newTestBoardService(t, config.DefaultConfig())

	b := s.Load()

	if b.Len() != 1 {
		t.Fatalf("fresh board has %d timers, expected 1", b.Len())
	}
	if b.Running() {
		t.Error("fresh board must not be running")
	}

	tm := b.Timers()[0]
	if tm.Name != "torch" {
		t.Errorf("seed timer name = %q, expected %q", tm.Name, "torch")
	}
	if got := tm.Remaining(t0); got != time.Hour {
		t.Errorf("seed timer remaining = %v, expected 1h", got)
	}
}

func TestBoardService_LoadFresh_ConfiguredTemplate(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TemplateName = "candle"
	cfg.TemplateMinutes = 15
	s := newTestBoardService(t, cfg)

	b := s.Load()

	tm := b.Timers()[0]
	if tm.Name != "candle" {
		t.Errorf("seed timer name = %q, expected %q", tm.Name, "candle")
	}
	if got := tm.Remaining(t0); got != 15*time.Minute {
		t.Errorf("seed timer remaining = %v, expected 15m", got)
	}
	if b.TemplateName != "candle" || b.TemplateMinutes != 15 {
		t.Errorf("board template = (%q, %d), expected (candle, 15)", b.TemplateName, b.TemplateMinutes)
	}
}

func TestBoardService_SaveLoadRoundTrip(t *testing.T) {
	s := newTestBoardService(t, config.DefaultConfig())

	b := s.Load()
	second := b.SpawnTimer(t0)
	second.Name = "lantern"
	b.GlobalStart(t0)

	saveAt := t0.Add(10 * time.Minute)
	if err := s.Save(b, saveAt); err != nil {
		t.Fatalf("Save() returned unexpected error: %v", err)
	}

	restored := s.Load()
	if restored.Len() != 2 {
		t.Fatalf("restored %d timers, expected 2", restored.Len())
	}
	if restored.Running() {
		t.Error("restored board must not be running")
	}

	first := restored.Timers()[0]
	if !first.IsPaused() {
		t.Error("restored timer should be paused")
	}
	if got := first.Remaining(saveAt.Add(time.Hour)); got != 50*time.Minute {
		t.Errorf("restored remaining = %v, expected 50m", got)
	}
	if restored.Timers()[1].Name != "lantern" {
		t.Errorf("restored name = %q, expected %q", restored.Timers()[1].Name, "lantern")
	}
}

func TestBoardService_LoadCorruptFallsBack(t *testing.T) {
	s := newTestBoardService(t, config.DefaultConfig())

	if err := os.WriteFile(s.StatePath(), []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt state file: %v", err)
	}

	b := s.Load()
	if b == nil {
		t.Fatal("Load() returned nil for corrupt state")
	}
	if b.Len() != 1 {
		t.Errorf("fallback board has %d timers, expected 1", b.Len())
	}
}

func TestBoardService_Clear(t *testing.T) {
	s := newTestBoardService(t, config.DefaultConfig())

	b := s.Load()
	if err := s.Save(b, t0); err != nil {
		t.Fatalf("Save() returned unexpected error: %v", err)
	}
	if !s.HasState() {
		t.Fatal("HasState() = false after save, expected true")
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() returned unexpected error: %v", err)
	}
	if s.HasState() {
		t.Error("HasState() = true after clear, expected false")
	}

	// Clearing again is a no-op.
	if err := s.Clear(); err != nil {
		t.Errorf("Clear() second call failed: %v", err)
	}
}

func TestBoardService_StatePath(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), storage.StateFile)
	s := NewBoardService(statePath, config.DefaultConfig())

	if s.StatePath() != statePath {
		t.Errorf("StatePath() = %q, expected %q", s.StatePath(), statePath)
	}
}
