package procdir

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// listScript prints one tab-separated line per application process known to
// System Events: pid, bundle identifier, name, background-only flag.
const listScript = `set out to ""
tell application "System Events"
	repeat with p in (every application process)
		set out to out & (unix id of p) & tab & (bundle identifier of p) & tab & (name of p) & tab & (background only of p) & linefeed
	end repeat
end tell
return out`

const listTimeout = 5 * time.Second

type systemEventsDirectory struct {
	run func(ctx context.Context) ([]byte, error)
}

func newPlatformDirectory() Directory {
	return &systemEventsDirectory{run: runListScript}
}

func runListScript(ctx context.Context) ([]byte, error) {
	return exec.CommandContext(ctx, "osascript", "-e", listScript).Output()
}

func (d *systemEventsDirectory) ListRunningApps() ([]ProcessInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
	defer cancel()

	out, err := d.run(ctx)
	if err != nil {
		return nil, fmt.Errorf("query System Events: %w", err)
	}
	return parseSystemEvents(out), nil
}

func (d *systemEventsDirectory) Terminate(info ProcessInfo) error {
	return terminatePIDs(info.PIDs)
}

func parseSystemEvents(out []byte) []ProcessInfo {
	var infos []ProcessInfo
	for _, line := range bytes.Split(out, []byte{'\n'}) {
		fields := strings.Split(strings.TrimRight(string(line), "\r"), "\t")
		if len(fields) < 4 {
			continue
		}
		pid, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			continue
		}
		id := strings.TrimSpace(fields[1])
		if id == "" || id == "missing value" {
			id = fallbackID()
		}
		infos = append(infos, ProcessInfo{
			ID:      id,
			Name:    strings.TrimSpace(fields[2]),
			Icon:    id,
			Regular: strings.TrimSpace(fields[3]) == "false",
			PIDs:    []int{pid},
		})
	}
	return groupByID(infos)
}
