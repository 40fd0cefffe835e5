package app

import (
	"context"
	"fmt"
	"time"

	"vacuum/api/vacuumv1"
)

// LoginStatus reports whether the daemon starts at login.
func (a *App) LoginStatus(ctx context.Context, timeout time.Duration) (bool, error) {
	return a.login(ctx, &vacuumv1.LoginRequest{}, timeout)
}

// SetLogin registers or unregisters the login item. The returned state is
// what the daemon observed afterwards, which may differ when registration failed.
func (a *App) SetLogin(ctx context.Context, enabled bool, timeout time.Duration) (bool, error) {
	return a.login(ctx, &vacuumv1.LoginRequest{Set: true, Enabled: enabled}, timeout)
}

func (a *App) login(ctx context.Context, req *vacuumv1.LoginRequest, timeout time.Duration) (bool, error) {
	var enabled bool
	err := a.withClient(ctx, timeout, func(ctx context.Context, client vacuumv1.VacuumClient) error {
		resp, err := client.Login(ctx, req)
		if err != nil {
			return fmt.Errorf("daemon login RPC failed: %w", err)
		}
		enabled = resp.Enabled
		return nil
	})
	return enabled, err
}
