package main

import (
	"context"
	"time"

	"vacuum/internal/app"
)

// controllerAPI is the app.App surface the commands use; tests swap it via controllerFactory.
type controllerAPI interface {
	Ping(ctx context.Context, timeout time.Duration) (string, error)
	List(ctx context.Context, params app.ListParams) (app.View, error)
	Refresh(ctx context.Context, timeout time.Duration) (int, error)
	Toggle(ctx context.Context, params app.ToggleParams) ([]app.ToggleEvent, error)
	SelectAll(ctx context.Context, value bool, timeout time.Duration) (int, error)
	Clean(ctx context.Context, params app.CleanParams) (app.CleanResult, error)
	SafeList(ctx context.Context, timeout time.Duration) ([]string, error)
	ToggleSafe(ctx context.Context, id string, timeout time.Duration) (bool, error)
	LoginStatus(ctx context.Context, timeout time.Duration) (bool, error)
	SetLogin(ctx context.Context, enabled bool, timeout time.Duration) (bool, error)
	Watch(ctx context.Context, dialTimeout time.Duration) (<-chan struct{}, error)
	Status() (app.DaemonStatus, error)
	StopDaemon(force bool) error
	StartDaemon() (*app.DaemonHandle, error)
}

var controllerFactory = func() controllerAPI {
	return app.New(app.Options{ConfigPath: configPath})
}

func controller() controllerAPI {
	return controllerFactory()
}
