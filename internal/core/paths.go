package core

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDir returns the base data directory for mcpd.
// It follows the XDG Base Directory Specification:
// - $MCPD_DATA_DIR (full override)
// - $XDG_DATA_HOME/mcpd
// - ~/.local/share/mcpd (fallback)
func DataDir() (string, error) {
	// Check for full override
	if dir := os.Getenv("MCPD_DATA_DIR"); dir != "" {
		return dir, nil
	}

	// Check XDG_DATA_HOME
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, "mcpd"), nil
	}

	// Fallback to ~/.local/share/mcpd
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "mcpd"), nil
}

// ConfigPath returns the path to the config.json file inside a data
// directory.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, "config.json")
}
