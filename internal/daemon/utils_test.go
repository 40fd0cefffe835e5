package daemon

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"
)

func TestSocketPathPrecedence(t *testing.T) {
	t.Setenv("VACUUM_SOCKET", "/tmp/explicit.sock")
	t.Setenv("VACUUM_RUNTIME_DIR", "/tmp/rd")
	if got := SocketPath(); got != "/tmp/explicit.sock" {
		t.Fatalf("explicit socket: got %q", got)
	}

	t.Setenv("VACUUM_SOCKET", "")
	if got := SocketPath(); got != filepath.Join("/tmp/rd", SocketBaseName) {
		t.Fatalf("runtime dir: got %q", got)
	}

	t.Setenv("VACUUM_RUNTIME_DIR", "")
	if runtime.GOOS == "linux" {
		t.Setenv("XDG_RUNTIME_DIR", "/run/user/4242")
		if got := SocketPath(); got != "/run/user/4242/vacuum.sock" {
			t.Fatalf("xdg runtime dir: got %q", got)
		}
		t.Setenv("XDG_RUNTIME_DIR", "")
		want := filepath.Join("/run/user", strconv.Itoa(os.Getuid()), SocketBaseName)
		if got := SocketPath(); got != want {
			t.Fatalf("uid runtime dir: got %q, want %q", got, want)
		}
		return
	}
	want := filepath.Join("/tmp", "vacuum-"+strconv.Itoa(os.Getuid()), SocketBaseName)
	if got := SocketPath(); got != want {
		t.Fatalf("per-user tmp dir: got %q, want %q", got, want)
	}
}

func TestLockLivesNextToSocket(t *testing.T) {
	t.Setenv("VACUUM_SOCKET", "/tmp/vac-test/vacuum.sock")
	if got := LockPath(); got != "/tmp/vac-test/vacuum.lock" {
		t.Fatalf("lock path: got %q", got)
	}
}

func TestInstanceRecordsPID(t *testing.T) {
	t.Setenv("VACUUM_SOCKET", filepath.Join(t.TempDir(), SocketBaseName))

	if _, err := RunningPID(); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("expected ErrNotRunning before claim, got %v", err)
	}

	inst, err := claimInstance()
	if err != nil {
		t.Fatalf("claim instance: %v", err)
	}
	pid, err := RunningPID()
	if err != nil || pid != os.Getpid() {
		t.Fatalf("running pid: got %d, %v", pid, err)
	}
	if _, err := claimInstance(); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second claim: expected ErrAlreadyRunning, got %v", err)
	}

	if err := inst.release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if _, err := RunningPID(); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("expected ErrNotRunning after release, got %v", err)
	}
	if _, err := os.Stat(LockPath()); err != nil {
		t.Fatalf("lock file should stay in place: %v", err)
	}
}

func TestStopWithoutDaemonIsNoop(t *testing.T) {
	t.Setenv("VACUUM_SOCKET", filepath.Join(t.TempDir(), SocketBaseName))
	if err := StopRunningDaemon(false); err != nil {
		t.Fatalf("stop with no daemon: %v", err)
	}
}
