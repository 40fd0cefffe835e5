package prefs

import (
	"os"
	"path/filepath"
)

func loginItemLocation() (string, func(string) []byte, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil, err
	}
	return filepath.Join(home, "Library", "LaunchAgents", launchAgentLabel+".plist"), renderLaunchAgent, nil
}
