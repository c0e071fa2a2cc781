// Package storage persists the timer board between runs. State is written as
// a single JSON document under the user config directory. Running timers are
// never stored as absolute instants: the schema only carries remaining
// durations in seconds, because an instant means nothing across process
// restarts.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/xolan/torchtimer/internal/osutil"
)

const (
	// AppName is the application name used for the config directory
	AppName = "torchtimer"
	// StateFile is the name of the JSON board state file
	StateFile = "board.json"
)

// TimerRecord is the persisted form of one timer. The state field is always
// a paused remaining duration in seconds. Unknown fields in older or newer
// files are ignored on load; missing fields default per-field when the board
// is rehydrated.
type TimerRecord struct {
	Name             string `json:"name"`
	RemainingSeconds int64  `json:"remaining_seconds"`
	Step             int    `json:"step,omitempty"`
	LocalPause       bool   `json:"local_pause,omitempty"`
	ID               uint32 `json:"id"`
}

// BoardState is the persisted form of the whole board. The global running
// flag is deliberately absent: the board always reopens paused.
type BoardState struct {
	Timers          []TimerRecord `json:"timers"`
	TemplateName    string        `json:"template_name"`
	TemplateMinutes int           `json:"template_minutes"`
	NextID          uint32        `json:"next_id"`
	Step            int           `json:"step,omitempty"`
}

// GetStatePath returns the path to the board state file.
// Uses os.UserConfigDir() for a cross-platform XDG-compliant config directory
// and creates the directory if it doesn't exist.
func GetStatePath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, StateFile), nil
}

// SaveBoardState writes the board state to the state file, overwriting any
// previous state. Uses the atomic write pattern (write to a temp file, then
// rename) so a crash mid-save never leaves a truncated file behind.
func SaveBoardState(filepath string, state BoardState) error {
	// BoardState contains only JSON-safe types, so Marshal cannot fail
	data, _ := json.MarshalIndent(state, "", "  ")

	tmpFile := filepath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmpFile, filepath)
}

// LoadBoardState reads the board state from the state file.
// Returns nil if the file doesn't exist (fresh start).
// Returns an error if the file exists but cannot be read or parsed; callers
// that prefer a fresh board over a hard failure treat that error as nil.
func LoadBoardState(filepath string) (*BoardState, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var state BoardState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

// ClearBoardState removes the state file.
// Returns nil if the file doesn't exist (idempotent operation).
func ClearBoardState(filepath string) error {
	err := os.Remove(filepath)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// HasBoardState checks whether a saved board exists.
func HasBoardState(filepath string) (bool, error) {
	state, err := LoadBoardState(filepath)
	if err != nil {
		return false, err
	}
	return state != nil, nil
}
