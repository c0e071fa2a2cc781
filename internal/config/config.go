package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/xolan/torchtimer/internal/osutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "torchtimer"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// Theme selects the TUI color theme by name (e.g. "dracula")
	Theme string `toml:"theme"`
	// Sound toggles the audible cue when a timer reaches zero
	Sound bool `toml:"sound"`
	// TemplateName is the name given to newly spawned timers
	TemplateName string `toml:"template_name"`
	// TemplateMinutes is the initial duration of newly spawned timers
	TemplateMinutes int `toml:"template_minutes"`
}

// DefaultConfig returns a Config with sensible defaults.
// - theme: "dracula"
// - sound: true
// - template_name: "torch"
// - template_minutes: 60
func DefaultConfig() Config {
	return Config{
		Theme:           "dracula",
		Sound:           true,
		TemplateName:    "torch",
		TemplateMinutes: 60,
	}
}

// Normalize cleans up config values in place: trims whitespace, lowercases
// the theme name, and falls back to defaults for empty template fields.
func (c *Config) Normalize() {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.TemplateName = strings.TrimSpace(c.TemplateName)

	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.TemplateName == "" {
		c.TemplateName = defaults.TemplateName
	}
	if c.TemplateMinutes == 0 {
		c.TemplateMinutes = defaults.TemplateMinutes
	}
}

// Validate checks that the config values are usable.
// Call Normalize first to clean up user input.
func (c *Config) Validate() error {
	if c.TemplateMinutes < 0 {
		return fmt.Errorf("invalid template_minutes: %d (must not be negative)", c.TemplateMinutes)
	}
	return nil
}

// Load reads and parses the config file at the given path.
// Fields absent from the file keep their default values, so a partial
// config (or an empty file) merges cleanly with DefaultConfig.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadOrDefault loads the config file if it exists, or returns the default
// config if it doesn't. Parse and validation errors in an existing file are
// still reported, as is any stat error other than non-existence.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return Load(path)
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// GenerateSampleConfig returns a sample config file with all options
// commented out, showing their default values.
func GenerateSampleConfig() string {
	return `# torchtimer configuration file
#
# All options are optional. Uncomment and edit to override the defaults.

# Color theme for the timer board.
# Cycle themes inside the app with . and , or set one here.
# Default: "dracula"
# Other examples: "nord", "gruvbox_dark", "solarized_dark", "tokyo_night"
# theme = "dracula"

# Play an audible cue when a timer reaches zero.
# Default: true
# sound = true

# Name given to newly spawned timers.
# Default: "torch"
# template_name = "torch"

# Initial duration, in minutes, of newly spawned timers.
# Default: 60
# template_minutes = 60
`
}
