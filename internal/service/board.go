package service

import (
	"time"

	"github.com/xolan/torchtimer/internal/board"
	"github.com/xolan/torchtimer/internal/config"
	"github.com/xolan/torchtimer/internal/storage"
)

// BoardService loads and persists the timer board.
type BoardService struct {
	statePath string
	cfg       config.Config
}

// NewBoardService creates a new BoardService
func NewBoardService(statePath string, cfg config.Config) *BoardService {
	return &BoardService{
		statePath: statePath,
		cfg:       cfg,
	}
}

// Load returns the board saved on disk, or a fresh board when no usable
// state exists. A missing or corrupt state file is not an error: the app
// must always come up with a working board.
func (s *BoardService) Load() *board.Board {
	state, err := storage.LoadBoardState(s.statePath)
	if err != nil || state == nil {
		return s.fresh()
	}
	return board.FromState(state)
}

// Save persists the board as of now. Running timers are flattened to their
// remaining durations; no wall-clock instants reach the file.
func (s *BoardService) Save(b *board.Board, now time.Time) error {
	return storage.SaveBoardState(s.statePath, b.Snapshot(now))
}

// Clear deletes the persisted board state. Clearing absent state is a no-op.
func (s *BoardService) Clear() error {
	return storage.ClearBoardState(s.statePath)
}

// HasState reports whether a persisted board exists on disk.
func (s *BoardService) HasState() bool {
	has, err := storage.HasBoardState(s.statePath)
	return err == nil && has
}

// StatePath returns the path to the state file
func (s *BoardService) StatePath() string {
	return s.statePath
}

// fresh builds a new single-timer board seeded from the configured template.
func (s *BoardService) fresh() *board.Board {
	b := board.Empty()
	if s.cfg.TemplateName != "" {
		b.TemplateName = s.cfg.TemplateName
	}
	if s.cfg.TemplateMinutes > 0 {
		b.TemplateMinutes = s.cfg.TemplateMinutes
	}
	b.SpawnTimer(time.Now())
	return b
}
