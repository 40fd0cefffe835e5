package daemon

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"google.golang.org/protobuf/types/known/emptypb"
)

// SocketBaseName is the UNIX socket filename inside the runtime dir.
const SocketBaseName = "vacuum.sock"

const lockFileName = "vacuum.lock"

// RuntimeDir is the per-user directory holding the socket and the instance lock.
// First match wins:
//  1. VACUUM_RUNTIME_DIR
//  2. linux: $XDG_RUNTIME_DIR, then /run/user/<uid>
//  3. elsewhere: /tmp/vacuum-<uid>, short enough for the sun_path limit
func RuntimeDir() string {
	if rd := os.Getenv("VACUUM_RUNTIME_DIR"); rd != "" {
		return rd
	}
	uid := strconv.Itoa(os.Getuid())
	if runtime.GOOS == "linux" {
		if v := os.Getenv("XDG_RUNTIME_DIR"); v != "" {
			return v
		}
		return filepath.Join("/run/user", uid)
	}
	return filepath.Join("/tmp", "vacuum-"+uid)
}

// SocketPath returns the daemon socket. VACUUM_SOCKET names it outright;
// otherwise it lives in RuntimeDir.
func SocketPath() string {
	if explicit := os.Getenv("VACUUM_SOCKET"); explicit != "" {
		return explicit
	}
	return filepath.Join(RuntimeDir(), SocketBaseName)
}

// LockPath returns the instance lock file, kept next to the socket so an
// explicit VACUUM_SOCKET also isolates the lock.
func LockPath() string {
	return filepath.Join(filepath.Dir(SocketPath()), lockFileName)
}

// EnsureRuntimeDir creates the socket's parent directory, private to the user.
func EnsureRuntimeDir() error {
	return os.MkdirAll(filepath.Dir(SocketPath()), 0o700)
}

// IsRunning reports whether a daemon answers Ping on the socket.
func IsRunning() bool {
	if _, err := os.Stat(SocketPath()); err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	client, conn, err := Dial(ctx)
	if err != nil {
		return false
	}
	defer conn.Close()

	_, err = client.Ping(ctx, &emptypb.Empty{})
	return err == nil
}
