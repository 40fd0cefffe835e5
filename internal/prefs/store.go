// Package prefs persists the handful of user preferences the daemon keeps:
// the safe-list string and the start-at-login registration.
package prefs

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/gofrs/flock"
)

// KeySafeList stores the comma-joined safe-list.
const KeySafeList = "safeList"

// Store is a file-backed string key/value store. Writes are serialised across
// processes with an advisory lock next to the file.
type Store struct {
	path string
	lock *flock.Flock
}

type document struct {
	Values map[string]string `toml:"values"`
}

// Open prepares a store rooted at path. The file is created lazily on first write.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("prefs path must not be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create prefs dir: %w", err)
	}
	return &Store{path: path, lock: flock.New(path + ".lock")}, nil
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// ReadString returns the value for key, or "" when unset.
func (s *Store) ReadString(key string) (string, error) {
	if err := s.lock.RLock(); err != nil {
		return "", fmt.Errorf("lock prefs: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	doc, err := s.load()
	if err != nil {
		return "", err
	}
	return doc.Values[key], nil
}

// WriteString stores value under key, replacing the file atomically.
func (s *Store) WriteString(key, value string) error {
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock prefs: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.Values[key] = value
	return s.save(doc)
}

func (s *Store) load() (document, error) {
	doc := document{Values: make(map[string]string)}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc, nil
		}
		return doc, fmt.Errorf("read prefs: %w", err)
	}
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return doc, fmt.Errorf("decode prefs %s: %w", s.path, err)
	}
	if doc.Values == nil {
		doc.Values = make(map[string]string)
	}
	return doc, nil
}

func (s *Store) save(doc document) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return os.Rename(tmp, s.path)
}
