package app

import (
	"fmt"

	"go.uber.org/zap"

	"vacuum/internal/config"
	"vacuum/internal/daemon"
	"vacuum/internal/logging"
)

// DaemonStatus represents current information about the daemon process.
type DaemonStatus struct {
	Running bool
	PID     int
}

// Status returns whether the daemon is running and its PID if known.
func (a *App) Status() (DaemonStatus, error) {
	if !daemonIsRunning() {
		return DaemonStatus{Running: false}, nil
	}
	pid, err := daemon.RunningPID()
	if err != nil {
		return DaemonStatus{Running: true}, err
	}
	return DaemonStatus{Running: true, PID: pid}, nil
}

// StopDaemon attempts to stop the running daemon.
func (a *App) StopDaemon(force bool) error {
	return daemon.StopRunningDaemon(force)
}

// DaemonHandle holds a running daemon instance.
type DaemonHandle struct {
	srv    *daemon.Server
	logger *zap.Logger
}

// Close stops the running daemon instance and flushes its logger.
func (h *DaemonHandle) Close() error {
	if h == nil || h.srv == nil {
		return nil
	}
	err := h.srv.Close()
	_ = h.logger.Sync()
	return err
}

// StartDaemon loads the configuration, starts the daemon and returns a handle for closing it.
func (a *App) StartDaemon() (*DaemonHandle, error) {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Config{
		Level:       cfg.LogLevel,
		Development: cfg.LogDevelopment,
	})
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	srv, err := daemon.StartDaemon(cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	return &DaemonHandle{srv: srv, logger: logger}, nil
}
