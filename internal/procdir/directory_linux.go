package procdir

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/prometheus/procfs"
	"golang.org/x/sys/unix"
)

// procfsDirectory reads /proc. An application is the set of processes sharing an
// executable; it is user-facing when it belongs to the current user, has no
// controlling terminal, and was started inside a graphical session.
type procfsDirectory struct {
	mount string
	uid   uint32
}

func newPlatformDirectory() Directory {
	return &procfsDirectory{mount: procfs.DefaultMountPoint, uid: uint32(os.Getuid())}
}

func (d *procfsDirectory) ListRunningApps() ([]ProcessInfo, error) {
	fs, err := procfs.NewFS(d.mount)
	if err != nil {
		return nil, fmt.Errorf("open procfs: %w", err)
	}
	procs, err := fs.AllProcs()
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	infos := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		var st unix.Stat_t
		if err := unix.Stat(filepath.Join(d.mount, strconv.Itoa(p.PID)), &st); err != nil || st.Uid != d.uid {
			continue
		}
		stat, err := p.Stat()
		if err != nil {
			continue
		}
		env, _ := p.Environ()
		// Classify per process: a terminal job sharing an executable with a
		// graphical app must never end up in that app's PIDs.
		if !isGraphical(stat.TTY, env) {
			continue
		}
		exe, _ := p.Executable()

		info := ProcessInfo{
			ID:      exe,
			Name:    displayName(exe, stat.Comm),
			Icon:    exe,
			Regular: true,
			PIDs:    []int{p.PID},
		}
		if info.ID == "" {
			info.ID = fallbackID()
		}
		infos = append(infos, info)
	}
	return groupByID(infos), nil
}

func (d *procfsDirectory) Terminate(info ProcessInfo) error {
	return terminatePIDs(info.PIDs)
}

func displayName(exe, comm string) string {
	if exe != "" {
		return strings.TrimSuffix(filepath.Base(exe), " (deleted)")
	}
	return comm
}

func isGraphical(tty int, env []string) bool {
	if tty != 0 {
		return false
	}
	for _, kv := range env {
		if strings.HasPrefix(kv, "DISPLAY=") || strings.HasPrefix(kv, "WAYLAND_DISPLAY=") {
			return true
		}
	}
	return false
}
