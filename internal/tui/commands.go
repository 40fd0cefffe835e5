package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"vacuum/internal/app"
)

const (
	rpcTimeout = 4 * time.Second
	// cleanTimeout covers the settle delay plus the follow-up refresh.
	cleanTimeout    = 15 * time.Second
	overlayDuration = 1500 * time.Millisecond
)

type daemonStatusMsg struct {
	status app.DaemonStatus
}

type daemonStartedMsg struct {
	handle *app.DaemonHandle
}

type candidatesLoadedMsg struct {
	mode mode
	view app.View
}

type loginMsg struct {
	enabled bool
}

// mutatedMsg asks for a reload after a selection or safe-list change.
type mutatedMsg struct{}

type cleanDoneMsg struct {
	result app.CleanResult
}

type overlayExpiredMsg struct {
	seq int
}

type watchStartedMsg struct {
	events <-chan struct{}
}

type changedMsg struct {
	events <-chan struct{}
}

type watchClosedMsg struct{}

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func checkDaemonStatusCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		status, err := ctrl.Status()
		if err != nil {
			return errMsg{err}
		}
		return daemonStatusMsg{status: status}
	}
}

func startDaemonCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		handle, err := ctrl.StartDaemon()
		if err != nil {
			return errMsg{err}
		}
		return daemonStartedMsg{handle: handle}
	}
}

func loadCandidatesCmd(ctrl Controller, md mode, params app.ListParams) tea.Cmd {
	return func() tea.Msg {
		view, err := ctrl.List(context.Background(), params)
		if err != nil {
			return errMsg{err}
		}
		return candidatesLoadedMsg{mode: md, view: view}
	}
}

func loadLoginCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		enabled, err := ctrl.LoginStatus(context.Background(), rpcTimeout)
		if err != nil {
			return errMsg{err}
		}
		return loginMsg{enabled: enabled}
	}
}

func setLoginCmd(ctrl Controller, enabled bool) tea.Cmd {
	return func() tea.Msg {
		got, err := ctrl.SetLogin(context.Background(), enabled, rpcTimeout)
		if err != nil {
			return errMsg{err}
		}
		return loginMsg{enabled: got}
	}
}

func refreshCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		if _, err := ctrl.Refresh(context.Background(), rpcTimeout); err != nil {
			return errMsg{err}
		}
		return mutatedMsg{}
	}
}

func toggleCmd(ctrl Controller, id string) tea.Cmd {
	return func() tea.Msg {
		if _, err := ctrl.Toggle(context.Background(), app.ToggleParams{IDs: []string{id}, Timeout: rpcTimeout}); err != nil {
			return errMsg{err}
		}
		return mutatedMsg{}
	}
}

func selectAllCmd(ctrl Controller, value bool) tea.Cmd {
	return func() tea.Msg {
		if _, err := ctrl.SelectAll(context.Background(), value, rpcTimeout); err != nil {
			return errMsg{err}
		}
		return mutatedMsg{}
	}
}

func toggleSafeCmd(ctrl Controller, id string) tea.Cmd {
	return func() tea.Msg {
		if _, err := ctrl.ToggleSafe(context.Background(), id, rpcTimeout); err != nil {
			return errMsg{err}
		}
		return mutatedMsg{}
	}
}

func cleanCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		res, err := ctrl.Clean(context.Background(), app.CleanParams{Timeout: cleanTimeout})
		if err != nil {
			return errMsg{err}
		}
		return cleanDoneMsg{result: res}
	}
}

func startWatchCmd(ctx context.Context, ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		events, err := ctrl.Watch(ctx, rpcTimeout)
		if err != nil {
			return errMsg{err}
		}
		return watchStartedMsg{events: events}
	}
}

func waitForChangeCmd(events <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return watchClosedMsg{}
		}
		return changedMsg{events: events}
	}
}

func overlayExpiryCmd(seq int) tea.Cmd {
	return tea.Tick(overlayDuration, func(time.Time) tea.Msg {
		return overlayExpiredMsg{seq: seq}
	})
}
