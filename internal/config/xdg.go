// Package config resolves file locations and reads the TOML config file.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const appName = "sidebyside"

// xdgBase returns the directory named by envVar, or home joined with
// fallback. Relative values are ignored as the XDG base directory rules ask.
func xdgBase(envVar string, fallback ...string) string {
	if v := strings.TrimSpace(os.Getenv(envVar)); v != "" && filepath.IsAbs(v) {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// XDGConfigHome returns $XDG_CONFIG_HOME or ~/.config.
func XDGConfigHome() string {
	return xdgBase("XDG_CONFIG_HOME", ".config")
}

// XDGDataHome returns $XDG_DATA_HOME or ~/.local/share.
func XDGDataHome() string {
	return xdgBase("XDG_DATA_HOME", ".local", "share")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// DefaultDBPath is the SQLite file that backs local storage.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), appName, appName+".db")
}

// DefaultLogPath is where the TUI logs while it owns the terminal.
func DefaultLogPath() string {
	return filepath.Join(XDGDataHome(), appName, appName+".log")
}
