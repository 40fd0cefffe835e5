package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"vacuum/api/vacuumv1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
)

// Dial opens a gRPC connection to the daemon over the UNIX socket and waits
// until it is ready or ctx expires.
func Dial(ctx context.Context) (vacuumv1.VacuumClient, *grpc.ClientConn, error) {
	path := SocketPath()
	conn, err := grpc.NewClient(
		socketTarget(path),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithContextDialer(unixDialer),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(vacuumv1.CodecName)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("dial %s: %w", path, err)
	}
	conn.Connect()
	if err := waitForReady(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("connect to %s: %w", path, err)
	}
	return vacuumv1.NewVacuumClient(conn), conn, nil
}

func socketTarget(path string) string {
	if trimmed, ok := strings.CutPrefix(path, "/"); ok {
		return "unix:///" + trimmed
	}
	return "unix://" + path
}

func unixDialer(ctx context.Context, addr string) (net.Conn, error) {
	addr = strings.TrimPrefix(addr, "unix://")
	if addr == "" {
		addr = SocketPath()
	}
	var d net.Dialer
	return d.DialContext(ctx, "unix", addr)
}

func waitForReady(ctx context.Context, conn *grpc.ClientConn) error {
	for {
		state := conn.GetState()
		switch state {
		case connectivity.Ready:
			return nil
		case connectivity.Shutdown:
			return errors.New("grpc connection is shut down")
		case connectivity.TransientFailure:
			// skip the backoff so a daemon that just bound its socket is picked up quickly
			conn.ResetConnectBackoff()
		}
		if !conn.WaitForStateChange(ctx, state) {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("grpc connection stuck in state %s", state.String())
		}
	}
}
