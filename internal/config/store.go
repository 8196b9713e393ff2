package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"sync"
)

// Store serializes access to the current Config and persists every
// accepted change. An empty path keeps the store memory-only.
type Store struct {
	path string
	log  *slog.Logger

	mu  sync.RWMutex
	cur Config
}

func NewStore(path string, logger *slog.Logger) *Store {
	s := &Store{
		path: path,
		log:  logger.With("component", "config"),
		cur:  Default(),
	}
	s.load()
	return s
}

// load replaces the defaults with the persisted file when one exists
// and still passes validation; anything else keeps the defaults.
func (s *Store) load() {
	if s.path == "" {
		return
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		s.log.Warn("failed to read config file, using defaults", "path", s.path, "error", err)
		return
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		s.log.Warn("failed to parse config file, using defaults", "path", s.path, "error", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		s.log.Warn("persisted config is invalid, using defaults", "path", s.path, "error", err)
		return
	}
	s.cur = cfg
}

// Current returns a snapshot. Later updates do not affect it.
func (s *Store) Current() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Update applies the patch, validates the result, persists it, and
// makes it current. A failed validation or write leaves the store
// untouched.
func (s *Store) Update(p Patch) (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cur.apply(p)
	if err := next.Validate(); err != nil {
		return s.cur, err
	}
	if err := s.save(next); err != nil {
		return s.cur, err
	}
	s.cur = next
	s.log.Info("configuration updated")
	return next, nil
}

// Reset restores and persists the defaults.
func (s *Store) Reset() (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := Default()
	if err := s.save(next); err != nil {
		return s.cur, err
	}
	s.cur = next
	s.log.Info("configuration reset to defaults")
	return next, nil
}

func (s *Store) save(c Config) error {
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
