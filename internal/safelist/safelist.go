// Package safelist holds the set of application identifiers that are never cleaned.
//
// The set is persisted as a single comma-joined string. Encoding walks a map, so the
// order of the encoded identifiers is not stable; compare decoded sets, never strings.
package safelist

import (
	"fmt"
	"sort"
	"strings"
)

const separator = ","

// Set is an unordered collection of identifiers.
type Set map[string]struct{}

// Decode splits the persisted representation, dropping empty fragments.
// Identifiers are kept byte for byte.
func Decode(encoded string) Set {
	set := make(Set)
	for _, part := range strings.Split(encoded, separator) {
		if part == "" {
			continue
		}
		set[part] = struct{}{}
	}
	return set
}

// Encode joins the set into its persisted representation.
func Encode(set Set) string {
	parts := make([]string, 0, len(set))
	for id := range set {
		parts = append(parts, id)
	}
	return strings.Join(parts, separator)
}

// SaveFunc persists an encoded safe-list.
type SaveFunc func(encoded string) error

// SafeList is the in-memory safe-list. It is not safe for concurrent use; the
// registry owner sequence is its only writer.
type SafeList struct {
	ids  Set
	save SaveFunc
}

// New decodes encoded and returns a SafeList that writes through save on every toggle.
// A nil save keeps the list in memory only.
func New(encoded string, save SaveFunc) *SafeList {
	return &SafeList{ids: Decode(encoded), save: save}
}

// Contains reports whether id is safe-listed.
func (s *SafeList) Contains(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.ids[id]
	return ok
}

// Toggle adds id if absent and removes it if present, then persists the list.
// It reports whether id is safe-listed afterwards. When persisting fails the
// in-memory change is kept and the error is returned.
func (s *SafeList) Toggle(id string) (bool, error) {
	if id == "" || strings.Contains(id, separator) {
		return false, &InvalidIDError{ID: id}
	}
	_, present := s.ids[id]
	if present {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
	if s.save != nil {
		if err := s.save(Encode(s.ids)); err != nil {
			return !present, err
		}
	}
	return !present, nil
}

// IDs returns the identifiers sorted for display.
func (s *SafeList) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of safe-listed identifiers.
func (s *SafeList) Len() int {
	return len(s.ids)
}

// InvalidIDError rejects identifiers that cannot round-trip through the encoding.
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid safe-list identifier %q", e.ID)
}
