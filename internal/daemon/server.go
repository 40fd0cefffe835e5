package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"syscall"
	"time"

	"vacuum/api/vacuumv1"
	"vacuum/internal/config"
	"vacuum/internal/prefs"
	"vacuum/internal/procdir"
	"vacuum/internal/registry"
	"vacuum/internal/safelist"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// ErrAlreadyRunning is returned when another daemon holds the instance lock.
var ErrAlreadyRunning = errors.New("daemon already running")

const defaultPollInterval = 2 * time.Second

// Deps lets callers replace the platform pieces the daemon is built from.
type Deps struct {
	Directory procdir.Directory
	LoginItem prefs.LoginItem
}

// Server wraps the gRPC server, its UNIX listener and the registry owner.
type Server struct {
	ln     net.Listener
	path   string
	grpc   *grpc.Server
	inst   *instance
	logger *zap.Logger

	dir     procdir.Directory
	reg     *registry.Registry
	owner   *registry.Owner
	watcher *procdir.Watcher

	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// StartDaemon binds the UNIX socket and serves the Vacuum service until Close.
func StartDaemon(cfg config.Config, logger *zap.Logger) (*Server, error) {
	return StartDaemonWith(cfg, logger, Deps{})
}

// StartDaemonWith is StartDaemon with explicit dependencies; zero fields use the platform defaults.
func StartDaemonWith(cfg config.Config, logger *zap.Logger, deps Deps) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	inst, err := claimInstance()
	if err != nil {
		return nil, err
	}

	s, err := newServer(cfg, logger, deps, inst)
	if err != nil {
		_ = inst.release()
		return nil, err
	}
	return s, nil
}

func newServer(cfg config.Config, logger *zap.Logger, deps Deps, inst *instance) (*Server, error) {
	store, err := prefs.Open(cfg.PrefsPath)
	if err != nil {
		return nil, err
	}
	encoded, err := store.ReadString(prefs.KeySafeList)
	if err != nil {
		// an unreadable file starts empty; the next toggle rewrites it
		logger.Warn("read safe-list", zap.String("path", store.Path()), zap.Error(err))
	}
	safe := safelist.New(encoded, func(v string) error {
		return store.WriteString(prefs.KeySafeList, v)
	})

	if deps.Directory == nil {
		deps.Directory = procdir.New()
	}
	if deps.LoginItem == nil {
		deps.LoginItem = defaultLoginItem(logger)
	}

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}

	owner := registry.NewOwner()
	selfID, _ := os.Executable()
	reg := registry.New(deps.Directory, safe, registry.Options{
		SelfID:  selfID,
		SelfPID: os.Getpid(),
		Settler: settlerFor(cfg, deps.Directory),
		Post:    owner.Post,
		Logger:  logger,
	})

	path := SocketPath()
	// the lock is ours, so any socket file left behind belongs to a dead daemon
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		owner.Stop()
		return nil, err
	}
	ln, err := net.Listen("unix", path)
	if err != nil {
		owner.Stop()
		return nil, err
	}
	if err := os.Chmod(path, 0o600); err != nil {
		ln.Close()
		owner.Stop()
		return nil, err
	}

	s := &Server{
		ln:      ln,
		path:    path,
		grpc:    grpc.NewServer(),
		inst:    inst,
		logger:  logger,
		dir:     deps.Directory,
		reg:     reg,
		owner:   owner,
		watcher: procdir.NewWatcher(deps.Directory, cfg.PollInterval, logger),
	}
	vacuumv1.RegisterVacuumServer(s.grpc, &service{
		owner:  owner,
		reg:    reg,
		safe:   safe,
		login:  deps.LoginItem,
		logger: logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	if err := owner.Do(ctx, func() {
		if err := reg.Refresh(); err != nil {
			logger.Warn("initial refresh", zap.Error(err))
		}
	}); err != nil {
		s.Close()
		return nil, err
	}
	s.watcher.Start(ctx)

	s.wg.Add(2)
	go s.serve()
	go s.pump(ctx)

	logger.Info("daemon started", zap.String("socket", path), zap.Int("pid", os.Getpid()))
	return s, nil
}

func settlerFor(cfg config.Config, dir procdir.Directory) registry.Settler {
	if cfg.SettleStrategy == config.StrategyPoll {
		return registry.PollSettler{Dir: dir, Timeout: cfg.SettleTimeout}
	}
	return registry.DelaySettler{Delay: cfg.SettleDelay}
}

func defaultLoginItem(logger *zap.Logger) prefs.LoginItem {
	exe, err := os.Executable()
	if err != nil {
		logger.Warn("resolve executable for login item", zap.Error(err))
		exe = "vacuum"
	}
	item, err := prefs.NewLoginItem(exe)
	if err != nil {
		logger.Debug("login item unavailable", zap.Error(err))
		return unsupportedLoginItem{err: err}
	}
	return item
}

type unsupportedLoginItem struct{ err error }

func (unsupportedLoginItem) Enabled() bool       { return false }
func (u unsupportedLoginItem) Register() error   { return u.err }
func (u unsupportedLoginItem) Unregister() error { return u.err }

func (s *Server) serve() {
	defer s.wg.Done()
	if err := s.grpc.Serve(s.ln); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		s.logger.Error("grpc serve", zap.Error(err))
	}
}

// pump turns watcher events into registry replacements. The snapshot is taken
// here so the owner sequence never waits on enumeration.
func (s *Server) pump(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.watcher.Events():
			infos, err := s.dir.ListRunningApps()
			if err != nil {
				s.logger.Debug("snapshot after change", zap.Error(err))
				continue
			}
			s.owner.Post(func() { s.reg.Replace(infos) })
		}
	}
}

// Close stops the server, unlinks the socket and releases the instance lock.
func (s *Server) Close() error {
	var errs []error
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
		s.watcher.Stop()
		s.grpc.Stop()
		s.wg.Wait()
		s.owner.Stop()

		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
		if err := s.inst.release(); err != nil {
			errs = append(errs, err)
		}
		s.logger.Info("daemon stopped")
	})
	return errors.Join(errs...)
}

// StopRunningDaemon sends a termination signal to the currently running daemon if any.
func StopRunningDaemon(force bool) error {
	pid, err := RunningPID()
	if err != nil {
		if errors.Is(err, ErrNotRunning) {
			if IsRunning() {
				return fmt.Errorf("daemon answers on %s but holds no lock at %s; stop it manually", SocketPath(), LockPath())
			}
			return nil
		}
		return fmt.Errorf("unable to read daemon PID: %w", err)
	}
	if pid == os.Getpid() {
		return errors.New("refusing to stop current process")
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	if err := sendSignal(proc, syscall.SIGTERM); err != nil {
		return err
	}
	if waitForShutdown(3 * time.Second) {
		return nil
	}
	if !force {
		return fmt.Errorf("daemon process %d did not exit after SIGTERM", pid)
	}
	if err := sendSignal(proc, syscall.SIGKILL); err != nil {
		return err
	}
	if waitForShutdown(2 * time.Second) {
		return nil
	}
	return fmt.Errorf("daemon process %d did not exit after SIGKILL", pid)
}

func sendSignal(proc *os.Process, sig syscall.Signal) error {
	if err := proc.Signal(sig); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			return nil
		}
		return err
	}
	return nil
}

func waitForShutdown(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if !IsRunning() {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(100 * time.Millisecond)
	}
}
