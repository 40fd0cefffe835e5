package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vacuum/internal/app"
)

// Controller defines the subset of app.App behaviour the TUI needs.
type Controller interface {
	Status() (app.DaemonStatus, error)
	StartDaemon() (*app.DaemonHandle, error)
	List(context.Context, app.ListParams) (app.View, error)
	Refresh(context.Context, time.Duration) (int, error)
	Toggle(context.Context, app.ToggleParams) ([]app.ToggleEvent, error)
	SelectAll(context.Context, bool, time.Duration) (int, error)
	Clean(context.Context, app.CleanParams) (app.CleanResult, error)
	ToggleSafe(context.Context, string, time.Duration) (bool, error)
	LoginStatus(context.Context, time.Duration) (bool, error)
	SetLogin(context.Context, bool, time.Duration) (bool, error)
	Watch(context.Context, time.Duration) (<-chan struct{}, error)
}

type mode int

const (
	modeCandidates mode = iota
	modeSettings
)

var (
	okStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	overlayStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).Foreground(lipgloss.Color("42"))
)

// Model represents the Bubble Tea state.
type Model struct {
	controller Controller
	mode       mode

	list    list.Model
	search  textinput.Model
	spinner spinner.Model

	view         app.View
	loginEnabled bool

	daemonStatus app.DaemonStatus
	daemon       *app.DaemonHandle
	statusMsg    string

	err      error
	loading  bool
	cleaning bool

	overlay    string
	overlaySeq int

	watching  bool
	watchCtx  context.Context
	stopWatch context.CancelFunc

	bell func()

	width  int
	height int
}

// New constructs a TUI model with default styles.
func New(ctrl Controller) *Model {
	delegate := list.NewDefaultDelegate()
	lst := list.New([]list.Item{}, delegate, 0, 0)
	lst.Title = "Running apps"
	lst.SetShowHelp(false)
	lst.SetFilteringEnabled(false)
	lst.DisableQuitKeybindings()

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search apps"

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	ctx, cancel := context.WithCancel(context.Background())
	return &Model{
		controller: ctrl,
		list:       lst,
		search:     search,
		spinner:    sp,
		statusMsg:  "Checking daemon status…",
		loading:    true,
		watchCtx:   ctx,
		stopWatch:  cancel,
		bell:       terminalBell,
	}
}

// Run spins up the Bubble Tea program with sensible defaults.
func Run(ctrl Controller) error {
	m := New(ctrl)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	m.shutdown()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return checkDaemonStatusCmd(m.controller)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.height > 7 {
			m.list.SetSize(msg.Width, msg.Height-7)
		}
		return m, nil

	case daemonStatusMsg:
		m.daemonStatus = msg.status
		if !msg.status.Running {
			m.statusMsg = "Daemon is not running. Press s to start it."
			m.loading = false
			m.view = app.View{}
			m.list.SetItems(nil)
			return m, nil
		}
		if msg.status.PID > 0 {
			m.statusMsg = fmt.Sprintf("Daemon running (pid %d).", msg.status.PID)
		} else {
			m.statusMsg = "Daemon running."
		}
		cmds := []tea.Cmd{m.loadCmd(), loadLoginCmd(m.controller)}
		if !m.watching {
			m.watching = true
			cmds = append(cmds, startWatchCmd(m.watchCtx, m.controller))
		}
		return m, tea.Batch(cmds...)

	case daemonStartedMsg:
		m.daemon = msg.handle
		m.statusMsg = "Daemon started."
		return m, checkDaemonStatusCmd(m.controller)

	case candidatesLoadedMsg:
		if msg.mode != m.mode {
			return m, nil
		}
		m.loading = false
		m.err = nil
		m.view = msg.view
		m.setItems()
		return m, nil

	case loginMsg:
		m.loginEnabled = msg.enabled
		return m, nil

	case mutatedMsg:
		return m, m.loadCmd()

	case watchStartedMsg:
		return m, waitForChangeCmd(msg.events)

	case changedMsg:
		return m, tea.Batch(m.loadCmd(), waitForChangeCmd(msg.events))

	case watchClosedMsg:
		m.watching = false
		if m.watchCtx.Err() != nil {
			return m, nil
		}
		return m, checkDaemonStatusCmd(m.controller)

	case cleanDoneMsg:
		m.cleaning = false
		if msg.result.Terminated == 0 {
			return m, m.loadCmd()
		}
		m.bell()
		m.overlay = msg.result.Message
		m.overlaySeq++
		return m, tea.Batch(m.loadCmd(), overlayExpiryCmd(m.overlaySeq))

	case overlayExpiredMsg:
		if msg.seq == m.overlaySeq {
			m.overlay = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.cleaning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case errMsg:
		m.loading = false
		m.cleaning = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, m.quit()
	}
	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}
	if m.mode == modeSettings {
		return m.handleSettingsKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, m.quit()
	case "/":
		m.search.Focus()
		return m, textinput.Blink
	case "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			return m, m.loadCmd()
		}
		return m, nil
	case "r":
		m.loading = true
		return m, refreshCmd(m.controller)
	case "s":
		if !m.daemonStatus.Running {
			m.statusMsg = "Starting daemon…"
			return m, startDaemonCmd(m.controller)
		}
		return m, nil
	case " ":
		if c, ok := m.current(); ok {
			return m, toggleCmd(m.controller, c.ID)
		}
		return m, nil
	case "a":
		return m, selectAllCmd(m.controller, !m.view.AllSelected)
	case "c", "enter":
		if m.view.SelectedCount == 0 || m.cleaning {
			return m, nil
		}
		m.cleaning = true
		return m, tea.Batch(m.spinner.Tick, cleanCmd(m.controller))
	case "tab", ",":
		m.setMode(modeSettings)
		return m, tea.Batch(m.loadCmd(), loadLoginCmd(m.controller))
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.search.Blur()
		return m, nil
	}
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		return m, tea.Batch(cmd, m.loadCmd())
	}
	return m, cmd
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, m.quit()
	case "esc", "tab", ",":
		m.setMode(modeCandidates)
		return m, m.loadCmd()
	case " ":
		if c, ok := m.current(); ok {
			return m, toggleSafeCmd(m.controller, c.ID)
		}
		return m, nil
	case "l":
		return m, setLoginCmd(m.controller, !m.loginEnabled)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	if m.daemonStatus.Running {
		b.WriteString(okStyle.Render(m.statusMsg))
	} else {
		b.WriteString(errStyle.Bold(true).Render(m.statusMsg))
	}
	b.WriteByte('\n')

	if m.mode == modeCandidates {
		b.WriteString(m.search.View())
		b.WriteByte('\n')
	} else {
		mark := " "
		if m.loginEnabled {
			mark = "✓"
		}
		b.WriteString(fmt.Sprintf("[%s] Start at Login (l to toggle)\n", mark))
	}

	switch {
	case m.loading:
		b.WriteString("Loading apps…\n")
	case m.err != nil:
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteByte('\n')
	}

	if len(m.list.Items()) == 0 && !m.loading && m.err == nil && m.daemonStatus.Running {
		b.WriteString(mutedStyle.Render("No apps found"))
		b.WriteByte('\n')
	} else {
		b.WriteString(m.list.View())
		b.WriteByte('\n')
	}

	if m.overlay != "" {
		b.WriteString(overlayStyle.Render(m.overlay))
		b.WriteByte('\n')
	}

	b.WriteString(mutedStyle.Render(m.footer()))
	return b.String()
}

func (m *Model) footer() string {
	if m.mode == modeSettings {
		return "Settings: space safe-list • l start at login • esc back • q quit"
	}
	if m.cleaning {
		return m.spinner.View() + " Cleaning…"
	}
	selectAll := "a select all"
	if m.view.AllSelected {
		selectAll = "a deselect all"
	}
	clean := "c clean"
	if m.view.SelectedCount == 0 {
		clean = "c clean (nothing selected)"
	}
	return fmt.Sprintf("%d selected • space toggle • %s • %s • / search • r refresh • tab settings • q quit",
		m.view.SelectedCount, selectAll, clean)
}

func (m *Model) listParams() app.ListParams {
	if m.mode == modeSettings {
		return app.ListParams{Filters: app.ListFilters{IncludeSafe: true}, Timeout: rpcTimeout}
	}
	return app.ListParams{Filters: app.ListFilters{Search: m.search.Value()}, Timeout: rpcTimeout}
}

func (m *Model) loadCmd() tea.Cmd {
	return loadCandidatesCmd(m.controller, m.mode, m.listParams())
}

func (m *Model) setMode(md mode) {
	m.mode = md
	m.loading = true
	m.list.ResetSelected()
	if md == modeSettings {
		m.list.Title = "Settings: safe-list"
	} else {
		m.list.Title = "Running apps"
	}
}

func (m *Model) setItems() {
	items := make([]list.Item, 0, len(m.view.Candidates))
	for _, c := range m.view.Candidates {
		items = append(items, candidateItem{Candidate: c, settings: m.mode == modeSettings})
	}
	m.list.SetItems(items)
}

func (m *Model) current() (app.Candidate, bool) {
	item, ok := m.list.SelectedItem().(candidateItem)
	if !ok {
		return app.Candidate{}, false
	}
	return item.Candidate, true
}

func (m *Model) quit() tea.Cmd {
	m.shutdown()
	return tea.Quit
}

// shutdown stops the watch stream and any daemon this TUI started.
func (m *Model) shutdown() {
	m.stopWatch()
	if m.daemon != nil {
		_ = m.daemon.Close()
		m.daemon = nil
	}
}

// candidateItem adapts app.Candidate to the bubbles list item interface.
type candidateItem struct {
	app.Candidate
	settings bool
}

func (c candidateItem) Title() string {
	mark := " "
	switch {
	case c.settings && c.Safe:
		mark = "safe"
	case c.settings:
		mark = "    "
	case c.Selected:
		mark = "✓"
	}
	return fmt.Sprintf("[%s] %s", mark, c.Name)
}

func (c candidateItem) Description() string {
	return c.ID
}

func (c candidateItem) FilterValue() string {
	return c.Name
}
