// Package config provides the global configuration for gitmeta.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the gitmeta configuration directory.
//
// Resolution:
//   - $GITMETA_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/gitmeta if set (respects XDG on any platform)
//   - %AppData%/gitmeta on Windows
//   - ~/.config/gitmeta on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("GITMETA_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gitmeta")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "gitmeta")
		}
	}

	// macOS and Linux: ~/.config/gitmeta
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gitmeta")
}
