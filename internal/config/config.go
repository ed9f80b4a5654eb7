// Package config provides configuration types and defaults for gmacs.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// ThemeConfig holds the colors used by the modeline and echo area.
type ThemeConfig struct {
	ModelineFg string `mapstructure:"modeline_fg"` // hex color e.g. "#1A1B26"
	ModelineBg string `mapstructure:"modeline_bg"`
	EchoFg     string `mapstructure:"echo_fg"`
}

// Config holds all configuration options for gmacs.
type Config struct {
	// AutoRevertNotify watches file-backed buffers and reports external
	// modifications in the echo area.
	AutoRevertNotify bool          `mapstructure:"auto_revert_notify"`
	AutoRevertDelay  time.Duration `mapstructure:"auto_revert_delay"`

	// SavePlace restores point per file across sessions.
	SavePlace  bool   `mapstructure:"save_place"`
	PlacesPath string `mapstructure:"places_path"`

	Theme ThemeConfig `mapstructure:"theme"`
}

// Defaults returns the configuration used when no config file overrides it.
func Defaults() Config {
	return Config{
		AutoRevertNotify: true,
		AutoRevertDelay:  500 * time.Millisecond,
		SavePlace:        true,
		PlacesPath:       defaultPlacesPath(),
		Theme: ThemeConfig{
			ModelineFg: "#1A1B26",
			ModelineBg: "#7AA2F7",
			EchoFg:     "#C0CAF5",
		},
	}
}

// defaultPlacesPath places the save-place database under the user's data
// directory, falling back to the working directory.
func defaultPlacesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "gmacs-places.db"
	}
	return filepath.Join(home, ".local", "share", "gmacs", "places.db")
}
