package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"vacuum/internal/app"
)

type fakeController struct {
	toggled    []string
	safeToggle []string
	selectAll  []bool
	listParams []app.ListParams
	cleaned    int
	login      bool
}

func (f *fakeController) Status() (app.DaemonStatus, error) {
	return app.DaemonStatus{Running: true, PID: 42}, nil
}

func (f *fakeController) StartDaemon() (*app.DaemonHandle, error) { return nil, nil }

func (f *fakeController) List(_ context.Context, params app.ListParams) (app.View, error) {
	f.listParams = append(f.listParams, params)
	return app.View{}, nil
}

func (f *fakeController) Refresh(context.Context, time.Duration) (int, error) { return 0, nil }

func (f *fakeController) Toggle(_ context.Context, params app.ToggleParams) ([]app.ToggleEvent, error) {
	f.toggled = append(f.toggled, params.IDs...)
	return nil, nil
}

func (f *fakeController) SelectAll(_ context.Context, value bool, _ time.Duration) (int, error) {
	f.selectAll = append(f.selectAll, value)
	return 0, nil
}

func (f *fakeController) Clean(context.Context, app.CleanParams) (app.CleanResult, error) {
	f.cleaned++
	return app.CleanResult{Terminated: 1, Message: "Cleaned 1 app(s)"}, nil
}

func (f *fakeController) ToggleSafe(_ context.Context, id string, _ time.Duration) (bool, error) {
	f.safeToggle = append(f.safeToggle, id)
	return true, nil
}

func (f *fakeController) LoginStatus(context.Context, time.Duration) (bool, error) {
	return f.login, nil
}

func (f *fakeController) SetLogin(_ context.Context, enabled bool, _ time.Duration) (bool, error) {
	f.login = enabled
	return enabled, nil
}

func (f *fakeController) Watch(context.Context, time.Duration) (<-chan struct{}, error) {
	return make(chan struct{}), nil
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(m *Model, view app.View) *Model {
	m.daemonStatus = app.DaemonStatus{Running: true}
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(candidatesLoadedMsg{mode: m.mode, view: view})
	return m
}

func finderNotesView() app.View {
	return app.View{
		Candidates: []app.Candidate{
			{ID: "a.finder", Name: "Finder"},
			{ID: "b.notes", Name: "Notes"},
		},
		Total: 2,
	}
}

func TestEmptyState(t *testing.T) {
	m := loaded(New(&fakeController{}), app.View{})
	if !strings.Contains(m.View(), "No apps found") {
		t.Fatalf("expected empty state, got:\n%s", m.View())
	}
}

func TestSpaceTogglesCurrent(t *testing.T) {
	ctrl := &fakeController{}
	m := loaded(New(ctrl), finderNotesView())

	_, cmd := m.Update(key(" "))
	if cmd == nil {
		t.Fatal("expected toggle command")
	}
	if _, ok := cmd().(mutatedMsg); !ok {
		t.Fatal("expected mutatedMsg after toggle")
	}
	if len(ctrl.toggled) != 1 || ctrl.toggled[0] != "a.finder" {
		t.Fatalf("unexpected toggles: %v", ctrl.toggled)
	}
}

func TestSelectAllFlipsOnAllSelected(t *testing.T) {
	ctrl := &fakeController{}
	view := finderNotesView()
	view.AllSelected = true
	m := loaded(New(ctrl), view)

	_, cmd := m.Update(key("a"))
	cmd()
	if len(ctrl.selectAll) != 1 || ctrl.selectAll[0] {
		t.Fatalf("expected deselect-all, got %v", ctrl.selectAll)
	}
}

func TestCleanDisabledWithoutSelection(t *testing.T) {
	ctrl := &fakeController{}
	m := loaded(New(ctrl), finderNotesView())

	if _, cmd := m.Update(key("c")); cmd != nil {
		t.Fatal("clean should be a no-op with nothing selected")
	}
	if m.cleaning {
		t.Fatal("model should not enter cleaning state")
	}
}

func TestCleanDoneRingsAndShowsOverlay(t *testing.T) {
	rang := 0
	m := loaded(New(&fakeController{}), finderNotesView())
	m.bell = func() { rang++ }
	m.cleaning = true

	m.Update(cleanDoneMsg{result: app.CleanResult{Terminated: 1, Message: "Cleaned 1 app(s)"}})
	if rang != 1 {
		t.Fatalf("expected one bell, got %d", rang)
	}
	if m.cleaning || !strings.Contains(m.View(), "Cleaned 1 app(s)") {
		t.Fatalf("expected overlay after clean, got:\n%s", m.View())
	}

	m.Update(overlayExpiredMsg{seq: m.overlaySeq - 1})
	if m.overlay == "" {
		t.Fatal("stale expiry must not clear a newer overlay")
	}
	m.Update(overlayExpiredMsg{seq: m.overlaySeq})
	if m.overlay != "" {
		t.Fatal("overlay should clear after expiry")
	}
}

func TestCleanDoneWithNothingTerminatedIsSilent(t *testing.T) {
	rang := 0
	m := loaded(New(&fakeController{}), finderNotesView())
	m.bell = func() { rang++ }

	m.Update(cleanDoneMsg{})
	if rang != 0 || m.overlay != "" {
		t.Fatalf("expected no chime or overlay, rang=%d overlay=%q", rang, m.overlay)
	}
}

func TestSearchFocusAndFilter(t *testing.T) {
	m := loaded(New(&fakeController{}), finderNotesView())

	m.Update(key("/"))
	if !m.search.Focused() {
		t.Fatal("expected search to take focus")
	}
	m.Update(key("f"))
	m.Update(key("i"))
	if got := m.listParams().Filters.Search; got != "fi" {
		t.Fatalf("expected search fi, got %q", got)
	}

	m.Update(key("esc"))
	if m.search.Focused() {
		t.Fatal("esc should release search focus")
	}
	m.Update(key("esc"))
	if m.search.Value() != "" {
		t.Fatal("second esc should clear the search")
	}
}

func TestSettingsTogglesSafeAndLogin(t *testing.T) {
	ctrl := &fakeController{}
	m := loaded(New(ctrl), finderNotesView())

	m.Update(key("tab"))
	if m.mode != modeSettings {
		t.Fatal("expected settings mode")
	}
	if p := m.listParams(); !p.Filters.IncludeSafe || p.Filters.Search != "" {
		t.Fatalf("settings should list every candidate, got %+v", p)
	}

	view := finderNotesView()
	view.Candidates[0].Safe = true
	m.Update(candidatesLoadedMsg{mode: modeSettings, view: view})
	if !strings.Contains(m.View(), "[safe] Finder") {
		t.Fatalf("expected lock marker, got:\n%s", m.View())
	}

	_, cmd := m.Update(key(" "))
	cmd()
	if len(ctrl.safeToggle) != 1 || ctrl.safeToggle[0] != "a.finder" {
		t.Fatalf("unexpected safe toggles: %v", ctrl.safeToggle)
	}

	_, cmd = m.Update(key("l"))
	msg := cmd()
	m.Update(msg)
	if !ctrl.login || !m.loginEnabled {
		t.Fatal("expected login item enabled")
	}
}

func TestStaleModeListIgnored(t *testing.T) {
	m := loaded(New(&fakeController{}), finderNotesView())
	m.Update(candidatesLoadedMsg{mode: modeSettings, view: app.View{}})
	if len(m.list.Items()) != 2 {
		t.Fatalf("settings payload must not replace the main list, got %d items", len(m.list.Items()))
	}
}
