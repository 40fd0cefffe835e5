package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"vacuum/api/vacuumv1"
	"vacuum/internal/daemon"
)

// ErrDaemonNotRunning is returned by every daemon-backed operation when no daemon answers.
var ErrDaemonNotRunning = errors.New("daemon is not running")

var (
	daemonIsRunning  = daemon.IsRunning
	dialDaemonClient = dialDaemon
)

func dialDaemon(ctx context.Context) (vacuumv1.VacuumClient, io.Closer, error) {
	client, conn, err := daemon.Dial(ctx)
	if err != nil {
		return nil, nil, err
	}
	return client, conn, nil
}

func resetDaemonDeps() {
	daemonIsRunning = daemon.IsRunning
	dialDaemonClient = dialDaemon
}

func (a *App) withClient(ctx context.Context, timeout time.Duration, fn func(context.Context, vacuumv1.VacuumClient) error) error {
	if timeout <= 0 {
		return errors.New("timeout must be greater than 0")
	}
	if !daemonIsRunning() {
		return ErrDaemonNotRunning
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, conn, err := dialDaemonClient(ctx)
	if err != nil {
		return fmt.Errorf("connect to daemon: %w", err)
	}
	if conn != nil {
		defer conn.Close()
	}

	return fn(ctx, client)
}
