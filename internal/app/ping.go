package app

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/emptypb"

	"vacuum/api/vacuumv1"
)

// Ping contacts the daemon and returns its health response.
func (a *App) Ping(ctx context.Context, timeout time.Duration) (string, error) {
	var msg string
	err := a.withClient(ctx, timeout, func(ctx context.Context, client vacuumv1.VacuumClient) error {
		resp, err := client.Ping(ctx, &emptypb.Empty{})
		if err != nil {
			return fmt.Errorf("daemon ping RPC failed: %w", err)
		}
		msg = resp.GetValue()
		return nil
	})
	return msg, err
}
