package tui

import (
	"os"

	"golang.org/x/term"
)

// terminalBell rings the terminal bell when stderr is a terminal.
func terminalBell() {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		_, _ = os.Stderr.WriteString("\a")
	}
}
