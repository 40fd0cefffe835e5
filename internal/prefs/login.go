package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LoginItem controls whether the daemon starts when the user logs in.
type LoginItem interface {
	Enabled() bool
	Register() error
	Unregister() error
}

// ErrLoginUnsupported is returned on platforms without a known login-item mechanism.
var ErrLoginUnsupported = errors.New("start at login is not supported on this platform")

// fileLoginItem registers by writing a launcher file into a directory the session
// manager scans at login (XDG autostart, LaunchAgents).
type fileLoginItem struct {
	path   string
	render func(exe string) []byte
	exe    string
}

// NewLoginItem returns the platform login item launching exe.
func NewLoginItem(exe string) (LoginItem, error) {
	path, render, err := loginItemLocation()
	if err != nil {
		return nil, err
	}
	return &fileLoginItem{path: path, render: render, exe: exe}, nil
}

func (l *fileLoginItem) Enabled() bool {
	_, err := os.Stat(l.path)
	return err == nil
}

func (l *fileLoginItem) Register() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create login item dir: %w", err)
	}
	if err := os.WriteFile(l.path, l.render(l.exe), 0o644); err != nil {
		return fmt.Errorf("write login item: %w", err)
	}
	return nil
}

func (l *fileLoginItem) Unregister() error {
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove login item: %w", err)
	}
	return nil
}

func renderDesktopEntry(exe string) []byte {
	return []byte(fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=vacuum
Comment=Clean up running applications
Exec=%s daemon
X-GNOME-Autostart-enabled=true
NoDisplay=true
`, exe))
}

func renderLaunchAgent(exe string) []byte {
	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
		<string>daemon</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`, launchAgentLabel, exe))
}

const launchAgentLabel = "dev.vacuum.agent"
