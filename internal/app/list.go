package app

import (
	"context"
	"fmt"
	"time"

	"vacuum/api/vacuumv1"
)

// ListParams defines filters and timeout.
type ListParams struct {
	Filters ListFilters
	Timeout time.Duration
}

// List fetches the candidates matching the provided filters.
func (a *App) List(ctx context.Context, params ListParams) (View, error) {
	var view View
	err := a.withClient(ctx, params.Timeout, func(ctx context.Context, client vacuumv1.VacuumClient) error {
		resp, err := client.List(ctx, params.Filters.buildRequest())
		if err != nil {
			return fmt.Errorf("daemon list RPC failed: %w", err)
		}
		view = viewFromProto(resp)
		return nil
	})
	return view, err
}

// Refresh asks the daemon to re-enumerate running applications and returns the candidate total.
func (a *App) Refresh(ctx context.Context, timeout time.Duration) (int, error) {
	var total int
	err := a.withClient(ctx, timeout, func(ctx context.Context, client vacuumv1.VacuumClient) error {
		resp, err := client.Refresh(ctx, &vacuumv1.RefreshRequest{})
		if err != nil {
			return fmt.Errorf("daemon refresh RPC failed: %w", err)
		}
		total = int(resp.Total)
		return nil
	})
	return total, err
}
