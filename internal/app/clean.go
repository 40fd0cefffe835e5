package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vacuum/api/vacuumv1"
)

// CleanParams configures clean command semantics.
type CleanParams struct {
	// All selects every candidate that is not safe-listed first.
	All bool
	// IDs replaces the current selection with exactly these candidates first.
	IDs     []string
	Timeout time.Duration
}

// CleanResult aggregates the command outcome.
type CleanResult struct {
	Terminated int
	Skipped    []ToggleEvent
	Message    string
}

// Clean terminates the selected candidates and waits for the daemon to
// refresh its list afterwards.
func (a *App) Clean(ctx context.Context, params CleanParams) (CleanResult, error) {
	var result CleanResult
	if params.All && len(params.IDs) > 0 {
		return result, errors.New("--all cannot be combined with --id")
	}

	err := a.withClient(ctx, params.Timeout, func(ctx context.Context, client vacuumv1.VacuumClient) error {
		switch {
		case params.All:
			if _, err := client.SelectAll(ctx, &vacuumv1.SelectAllRequest{Value: true}); err != nil {
				return fmt.Errorf("daemon select-all RPC failed: %w", err)
			}
		case len(params.IDs) > 0:
			if _, err := client.SelectAll(ctx, &vacuumv1.SelectAllRequest{Value: false}); err != nil {
				return fmt.Errorf("daemon select-all RPC failed: %w", err)
			}
			// Toggle flips, so each id is sent once.
			seen := make(map[string]struct{}, len(params.IDs))
			for _, id := range params.IDs {
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
				if _, err := client.Toggle(ctx, &vacuumv1.ToggleRequest{Id: id}); err != nil {
					if reason, ok := ignorable(err); ok {
						result.Skipped = append(result.Skipped, ToggleEvent{ID: id, Skipped: true, Reason: reason})
						continue
					}
					return fmt.Errorf("daemon toggle RPC failed: %w", err)
				}
			}
		}

		resp, err := client.Clean(ctx, &vacuumv1.CleanRequest{})
		if err != nil {
			return fmt.Errorf("daemon clean RPC failed: %w", err)
		}
		result.Terminated = int(resp.GetTerminated())
		return nil
	})
	if err != nil {
		return result, err
	}

	if result.Terminated == 0 {
		result.Message = "Nothing selected to clean"
	} else {
		result.Message = fmt.Sprintf("Cleaned %d app(s)", result.Terminated)
	}
	return result, nil
}
