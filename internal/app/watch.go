package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vacuum/api/vacuumv1"
)

// Watch streams a value every time the daemon's candidate list changes. The
// channel closes when ctx is done or the daemon goes away.
func (a *App) Watch(ctx context.Context, dialTimeout time.Duration) (<-chan struct{}, error) {
	if dialTimeout <= 0 {
		return nil, errors.New("timeout must be greater than 0")
	}
	if !daemonIsRunning() {
		return nil, ErrDaemonNotRunning
	}

	dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	client, conn, err := dialDaemonClient(dialCtx)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("connect to daemon: %w", err)
	}

	stream, err := client.Watch(ctx, &vacuumv1.WatchRequest{})
	if err != nil {
		if conn != nil {
			conn.Close()
		}
		return nil, fmt.Errorf("daemon watch RPC failed: %w", err)
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		if conn != nil {
			defer conn.Close()
		}
		for {
			if _, err := stream.Recv(); err != nil {
				return
			}
			select {
			case out <- struct{}{}:
			default:
			}
		}
	}()
	return out, nil
}
