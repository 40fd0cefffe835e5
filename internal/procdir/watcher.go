package procdir

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Watcher turns periodic enumerations into "process set changed" events. Events
// carry no payload; consumers re-enumerate. Bursts coalesce into one pending event.
type Watcher struct {
	dir      Directory
	interval time.Duration
	logger   *zap.Logger

	events chan struct{}
	last   string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher polling dir every interval.
func NewWatcher(dir Directory, interval time.Duration, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		dir:      dir,
		interval: interval,
		logger:   logger,
		events:   make(chan struct{}, 1),
	}
}

// Events delivers one value per observed change.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Start seeds the current process set and begins polling. Call Stop to shut down.
func (w *Watcher) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	w.seed()
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop shuts the watcher down and waits for the poll loop to exit.
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}

func (w *Watcher) run(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.poll()
		}
	}
}

func (w *Watcher) seed() {
	infos, err := w.dir.ListRunningApps()
	if err != nil {
		w.logger.Warn("seed process set", zap.Error(err))
		return
	}
	w.last = fingerprint(infos)
}

func (w *Watcher) poll() {
	infos, err := w.dir.ListRunningApps()
	if err != nil {
		w.logger.Debug("poll process set", zap.Error(err))
		return
	}
	fp := fingerprint(infos)
	if fp == w.last {
		return
	}
	w.last = fp
	select {
	case w.events <- struct{}{}:
	default:
	}
}

// fingerprint identifies a process set by its user-facing PIDs. IDs are left
// out because fallback IDs change on every enumeration.
func fingerprint(infos []ProcessInfo) string {
	var pids []int
	for _, info := range infos {
		if !info.Regular {
			continue
		}
		pids = append(pids, info.PIDs...)
	}
	sort.Ints(pids)
	var b strings.Builder
	for i, pid := range pids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(pid))
	}
	return b.String()
}
