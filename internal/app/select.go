package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"vacuum/api/vacuumv1"
)

// ToggleParams lists the candidates whose selection should flip.
type ToggleParams struct {
	IDs     []string
	Timeout time.Duration
}

// ToggleEvent reports the outcome for one identifier.
type ToggleEvent struct {
	ID       string
	Selected bool
	// Skipped is set when the id is unknown or safe-listed; such toggles are no-ops.
	Skipped bool
	Reason  string
}

// Toggle flips the selection of every id. Unknown and safe-listed ids are
// reported as skipped rather than failing the batch.
func (a *App) Toggle(ctx context.Context, params ToggleParams) ([]ToggleEvent, error) {
	if len(params.IDs) == 0 {
		return nil, errors.New("provide at least one candidate id")
	}
	var events []ToggleEvent
	err := a.withClient(ctx, params.Timeout, func(ctx context.Context, client vacuumv1.VacuumClient) error {
		for _, raw := range params.IDs {
			id := strings.TrimSpace(raw)
			if id == "" {
				return errors.New("candidate ids must not be empty")
			}
			resp, err := client.Toggle(ctx, &vacuumv1.ToggleRequest{Id: id})
			if err != nil {
				if reason, ok := ignorable(err); ok {
					events = append(events, ToggleEvent{ID: id, Skipped: true, Reason: reason})
					continue
				}
				return fmt.Errorf("daemon toggle RPC failed: %w", err)
			}
			events = append(events, ToggleEvent{ID: id, Selected: resp.Selected})
		}
		return nil
	})
	return events, err
}

// SelectAll selects (or clears) every candidate that is not safe-listed and
// returns the resulting selected count.
func (a *App) SelectAll(ctx context.Context, value bool, timeout time.Duration) (int, error) {
	var count int
	err := a.withClient(ctx, timeout, func(ctx context.Context, client vacuumv1.VacuumClient) error {
		resp, err := client.SelectAll(ctx, &vacuumv1.SelectAllRequest{Value: value})
		if err != nil {
			return fmt.Errorf("daemon select-all RPC failed: %w", err)
		}
		count = int(resp.SelectedCount)
		return nil
	})
	return count, err
}

func ignorable(err error) (string, bool) {
	switch status.Code(err) {
	case codes.NotFound:
		return "not running", true
	case codes.FailedPrecondition:
		return "safe-listed", true
	default:
		return "", false
	}
}
