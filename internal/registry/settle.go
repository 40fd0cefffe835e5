package registry

import (
	"time"

	"vacuum/internal/procdir"
)

// DefaultSettleDelay gives the OS time to tear processes down before re-enumerating.
const DefaultSettleDelay = 600 * time.Millisecond

const (
	defaultSettleInterval = 100 * time.Millisecond
	defaultSettleTimeout  = 5 * time.Second
)

// Settler decides when terminated processes are expected to be gone. Settle must
// not block; it calls next exactly once from any goroutine.
type Settler interface {
	Settle(terminated []procdir.ProcessInfo, next func())
}

// DelaySettler waits a fixed delay. It is a heuristic: slow exits reappear on
// the refresh and are cleaned up by the next directory change.
type DelaySettler struct {
	Delay time.Duration
	// AfterFunc schedules next; defaults to time.AfterFunc.
	AfterFunc func(d time.Duration, next func())
}

func (s DelaySettler) Settle(_ []procdir.ProcessInfo, next func()) {
	if s.AfterFunc != nil {
		s.AfterFunc(s.Delay, next)
		return
	}
	time.AfterFunc(s.Delay, next)
}

// PollSettler re-enumerates until none of the terminated PIDs remain or Timeout
// elapses. Non-positive Interval and Timeout fall back to 100ms and 5s.
type PollSettler struct {
	Dir      procdir.Directory
	Interval time.Duration
	Timeout  time.Duration
}

func (s PollSettler) Settle(terminated []procdir.ProcessInfo, next func()) {
	pending := make(map[int]struct{})
	for _, info := range terminated {
		for _, pid := range info.PIDs {
			pending[pid] = struct{}{}
		}
	}
	interval, timeout := s.Interval, s.Timeout
	if interval <= 0 {
		interval = defaultSettleInterval
	}
	if timeout <= 0 {
		timeout = defaultSettleTimeout
	}
	go func() {
		deadline := time.Now().Add(timeout)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for time.Now().Before(deadline) && s.anyAlive(pending) {
			<-ticker.C
		}
		next()
	}()
}

func (s PollSettler) anyAlive(pending map[int]struct{}) bool {
	infos, err := s.Dir.ListRunningApps()
	if err != nil {
		return false
	}
	for _, info := range infos {
		for _, pid := range info.PIDs {
			if _, ok := pending[pid]; ok {
				return true
			}
		}
	}
	return false
}
