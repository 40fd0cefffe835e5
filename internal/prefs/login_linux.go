package prefs

import (
	"os"
	"path/filepath"
)

func loginItemLocation() (string, func(string) []byte, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", nil, err
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "autostart", "vacuum.desktop"), renderDesktopEntry, nil
}
