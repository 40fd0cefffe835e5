//go:build !linux && !darwin

package procdir

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const listTimeout = 5 * time.Second

// psDirectory falls back to ps(1) on the remaining unix systems: a process is
// user-facing when it belongs to the current user and has no controlling terminal.
type psDirectory struct {
	uid int
}

func newPlatformDirectory() Directory {
	return &psDirectory{uid: os.Getuid()}
}

func (d *psDirectory) ListRunningApps() ([]ProcessInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "ps", "-axo", "pid=,uid=,tty=,comm=").Output()
	if err != nil {
		return nil, fmt.Errorf("run ps: %w", err)
	}

	var infos []ProcessInfo
	for _, line := range bytes.Split(out, []byte{'\n'}) {
		fields := strings.Fields(string(line))
		if len(fields) < 4 {
			continue
		}
		pid, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		uid, err := strconv.Atoi(fields[1])
		if err != nil || uid != d.uid {
			continue
		}
		comm := strings.Join(fields[3:], " ")
		infos = append(infos, ProcessInfo{
			ID:      comm,
			Name:    filepath.Base(comm),
			Icon:    comm,
			Regular: fields[2] == "??" || fields[2] == "-",
			PIDs:    []int{pid},
		})
	}
	return groupByID(infos), nil
}

func (d *psDirectory) Terminate(info ProcessInfo) error {
	return terminatePIDs(info.PIDs)
}
