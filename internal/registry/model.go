package registry

import (
	"errors"

	"vacuum/internal/procdir"
)

var (
	// ErrNotFound reports an identifier that is not among the current candidates.
	ErrNotFound = errors.New("candidate not found")
	// ErrSafeListed reports an attempt to select a safe-listed candidate.
	ErrSafeListed = errors.New("candidate is safe-listed")
)

// Candidate is one cleanable application.
type Candidate struct {
	ID       string
	Name     string
	Icon     string
	Selected bool

	info procdir.ProcessInfo
}

// Membership answers safe-list queries.
type Membership interface {
	Contains(id string) bool
}

// SafeList is the mutable safe-list the registry consults and toggles.
type SafeList interface {
	Membership
	Toggle(id string) (bool, error)
}

// CleanResult reports how many termination requests a clean issued.
type CleanResult struct {
	Terminated int
}
