package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vacuum/api/vacuumv1"
)

// SafeList returns the safe-listed identifiers in sorted order.
func (a *App) SafeList(ctx context.Context, timeout time.Duration) ([]string, error) {
	var ids []string
	err := a.withClient(ctx, timeout, func(ctx context.Context, client vacuumv1.VacuumClient) error {
		resp, err := client.SafeList(ctx, &vacuumv1.SafeListRequest{})
		if err != nil {
			return fmt.Errorf("daemon safe-list RPC failed: %w", err)
		}
		ids = resp.Ids
		return nil
	})
	return ids, err
}

// ToggleSafe flips safe-list membership for id and reports whether it is now safe.
func (a *App) ToggleSafe(ctx context.Context, id string, timeout time.Duration) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, errors.New("candidate id must not be empty")
	}
	var safe bool
	err := a.withClient(ctx, timeout, func(ctx context.Context, client vacuumv1.VacuumClient) error {
		resp, err := client.ToggleSafe(ctx, &vacuumv1.ToggleSafeRequest{Id: id})
		if err != nil {
			return fmt.Errorf("daemon toggle-safe RPC failed: %w", err)
		}
		safe = resp.Safe
		return nil
	})
	return safe, err
}
