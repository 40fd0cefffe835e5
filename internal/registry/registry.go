package registry

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"vacuum/internal/procdir"
)

// Options tunes a Registry.
type Options struct {
	// SelfID and SelfPID identify the running utility, which is never a candidate.
	SelfID  string
	SelfPID int
	// Settler decides when a clean's refresh runs. Defaults to a 600ms delay.
	Settler Settler
	// Post runs fn on the owner sequence. Defaults to running fn inline, which is
	// only correct when nothing else touches the registry concurrently.
	Post   func(fn func())
	Logger *zap.Logger
}

// Registry is the authoritative list of cleanable candidates.
//
// A Registry is not safe for concurrent use: every method must run on a single
// owner sequence (see Owner). Work that completes elsewhere re-enters through
// Options.Post.
type Registry struct {
	dir  procdir.Directory
	safe SafeList
	opts Options

	candidates []Candidate
	collator   *collate.Collator

	subs    map[int]func()
	nextSub int
}

// New constructs an empty registry. Call Refresh to populate it.
func New(dir procdir.Directory, safe SafeList, opts Options) *Registry {
	if opts.Settler == nil {
		opts.Settler = DelaySettler{Delay: DefaultSettleDelay}
	}
	if opts.Post == nil {
		opts.Post = func(fn func()) { fn() }
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Registry{
		dir:      dir,
		safe:     safe,
		opts:     opts,
		collator: collate.New(language.Und, collate.IgnoreCase),
		subs:     make(map[int]func()),
	}
}

// Refresh re-enumerates the directory and replaces the candidate list.
// On error the current list is kept.
func (r *Registry) Refresh() error {
	infos, err := r.dir.ListRunningApps()
	if err != nil {
		return fmt.Errorf("list running apps: %w", err)
	}
	r.Replace(infos)
	return nil
}

// Replace rebuilds the candidate list from a directory snapshot: background
// processes and the utility itself are dropped, the rest is sorted by name
// ignoring case. Selection is not carried over.
func (r *Registry) Replace(infos []procdir.ProcessInfo) {
	next := make([]Candidate, 0, len(infos))
	seen := make(map[string]struct{}, len(infos))
	for _, info := range infos {
		if !info.Regular || r.isSelf(info) {
			continue
		}
		if _, dup := seen[info.ID]; dup {
			continue
		}
		seen[info.ID] = struct{}{}
		next = append(next, Candidate{
			ID:   info.ID,
			Name: info.Name,
			Icon: info.Icon,
			info: info,
		})
	}
	sort.SliceStable(next, func(i, j int) bool {
		return r.collator.CompareString(next[i].Name, next[j].Name) < 0
	})
	r.candidates = next
	r.notify()
}

func (r *Registry) isSelf(info procdir.ProcessInfo) bool {
	if r.opts.SelfID != "" && info.ID == r.opts.SelfID {
		return true
	}
	if r.opts.SelfPID > 0 {
		for _, pid := range info.PIDs {
			if pid == r.opts.SelfPID {
				return true
			}
		}
	}
	return false
}

// ToggleSelection flips the selection of id.
func (r *Registry) ToggleSelection(id string) (bool, error) {
	i := r.indexOf(id)
	if i < 0 {
		return false, ErrNotFound
	}
	if r.safe.Contains(id) {
		return false, ErrSafeListed
	}
	r.candidates[i].Selected = !r.candidates[i].Selected
	r.notify()
	return r.candidates[i].Selected, nil
}

// SetSelectAll selects or deselects every candidate that is not safe-listed.
func (r *Registry) SetSelectAll(value bool) {
	for i := range r.candidates {
		if r.safe.Contains(r.candidates[i].ID) {
			continue
		}
		r.candidates[i].Selected = value
	}
	r.notify()
}

// AllSelected reports whether the list is non-empty and every candidate is
// either selected or safe-listed.
func (r *Registry) AllSelected() bool {
	if len(r.candidates) == 0 {
		return false
	}
	for _, c := range r.candidates {
		if !c.Selected && !r.safe.Contains(c.ID) {
			return false
		}
	}
	return true
}

// SelectedCount counts selected candidates. A safe-listed candidate never counts,
// even if its selection flag is stale.
func (r *Registry) SelectedCount() int {
	n := 0
	for _, c := range r.candidates {
		if c.Selected && !r.safe.Contains(c.ID) {
			n++
		}
	}
	return n
}

// Len returns the number of candidates, safe-listed ones included.
func (r *Registry) Len() int {
	return len(r.candidates)
}

// Candidates returns a copy of every candidate in display order.
func (r *Registry) Candidates() []Candidate {
	return append([]Candidate(nil), r.candidates...)
}

// Visible returns the candidates whose name contains filter (ignoring case) and
// that are not in safe. An empty filter matches every name; the filter is used
// as typed, surrounding spaces included.
func (r *Registry) Visible(filter string, safe Membership) []Candidate {
	needle := cases.Fold().String(filter)
	out := make([]Candidate, 0, len(r.candidates))
	for _, c := range r.candidates {
		if safe != nil && safe.Contains(c.ID) {
			continue
		}
		if needle != "" && !strings.Contains(cases.Fold().String(c.Name), needle) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ToggleSafe flips safe-list membership for id and persists it. A candidate
// entering the safe-list loses its selection. The returned error reports a
// persistence failure; the in-memory toggle still applies.
func (r *Registry) ToggleSafe(id string) (bool, error) {
	safe, err := r.safe.Toggle(id)
	if safe {
		if i := r.indexOf(id); i >= 0 {
			r.candidates[i].Selected = false
		}
	}
	r.notify()
	return safe, err
}

// TerminateSelected requests termination of every selected candidate that is
// not safe-listed. With
// nothing selected it returns immediately without side effects. Otherwise,
// once the settler reports the processes gone, the registry refreshes on its
// owner sequence and done (if non-nil) receives the result.
func (r *Registry) TerminateSelected(done func(CleanResult)) CleanResult {
	var targets []procdir.ProcessInfo
	for _, c := range r.candidates {
		if c.Selected && !r.safe.Contains(c.ID) {
			targets = append(targets, c.info)
		}
	}
	if len(targets) == 0 {
		return CleanResult{}
	}

	for _, info := range targets {
		if err := r.dir.Terminate(info); err != nil {
			r.opts.Logger.Debug("terminate request failed", zap.String("id", info.ID), zap.Error(err))
		}
	}
	result := CleanResult{Terminated: len(targets)}
	r.opts.Logger.Info("clean requested", zap.Int("count", result.Terminated))

	r.opts.Settler.Settle(targets, func() {
		r.opts.Post(func() {
			if err := r.Refresh(); err != nil {
				r.opts.Logger.Warn("refresh after clean", zap.Error(err))
			}
			if done != nil {
				done(result)
			}
		})
	})
	return result
}

// Subscribe registers fn to run after every mutation. fn runs on the owner
// sequence and must not block.
func (r *Registry) Subscribe(fn func()) (unsubscribe func()) {
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	return func() { delete(r.subs, id) }
}

func (r *Registry) notify() {
	for _, fn := range r.subs {
		fn()
	}
}

func (r *Registry) indexOf(id string) int {
	for i := range r.candidates {
		if r.candidates[i].ID == id {
			return i
		}
	}
	return -1
}
