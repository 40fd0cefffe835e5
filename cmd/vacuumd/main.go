package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"vacuum/internal/config"
	"vacuum/internal/daemon"
	"vacuum/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON config file")
	force := flag.Bool("force", false, "Stop an existing daemon before starting")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Development: cfg.LogDevelopment})
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if daemon.IsRunning() {
		if !*force {
			pid, err := daemon.RunningPID()
			if err != nil {
				logger.Fatal("daemon appears running but pid check failed", zap.Error(err))
			}
			logger.Info("daemon is already running; use --force to restart", zap.Int("pid", pid))
			return
		}
		logger.Info("stopping existing daemon")
		if err := daemon.StopRunningDaemon(true); err != nil {
			logger.Fatal("failed to stop running daemon", zap.Error(err))
		}
	}

	srv, err := daemon.StartDaemon(cfg, logger)
	if err != nil {
		logger.Fatal("failed to start daemon", zap.Error(err))
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	if err := srv.Close(); err != nil {
		logger.Error("error shutting down daemon", zap.Error(err))
	}
}
