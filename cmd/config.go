package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/torchtimer/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display configuration settings",
	Long: `Display the current effective configuration settings for torchtimer.

Shows the configuration file location, whether it exists, and all current
settings. Configuration values are merged from the config file with
sensible defaults.

By default, torchtimer works without any configuration file. All settings
have defaults:
  - theme: dracula
  - sound: true
  - template_name: torch
  - template_minutes: 60

Configuration file location:
  ~/.config/torchtimer/config.toml   Linux/macOS
  %APPDATA%\torchtimer\config.toml   Windows

To customize settings, create a config.toml file at the location shown above.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return
	}

	// Check if config file exists
	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	// Load config (will use defaults if file doesn't exist)
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", configPath)
		deps.Exit(1)
		return
	}

	// Display header
	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for torchtimer")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	// Display config file location and status
	_, _ = fmt.Fprintf(deps.Stdout, "Config file:      %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:           File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:           No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	// Display current settings
	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Theme:            %s\n", cfg.Theme)
	_, _ = fmt.Fprintf(deps.Stdout, "Sound:            %t\n", cfg.Sound)
	_, _ = fmt.Fprintf(deps.Stdout, "Template Name:    %s\n", cfg.TemplateName)
	_, _ = fmt.Fprintf(deps.Stdout, "Template Minutes: %d\n", cfg.TemplateMinutes)
	_, _ = fmt.Fprintln(deps.Stdout)

	// Display helpful information if using defaults
	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Create a config.toml file at the above location to customize settings.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}
