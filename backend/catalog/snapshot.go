// ABOUTME: Versioned, read-only catalog snapshots and a reloadable store
// ABOUTME: The version is a content hash so caches can key on catalog contents

package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
)

// versionLength is the number of hex digits kept from the content hash
const versionLength = 12

// Snapshot pairs a catalog with its content version. Callers must not mutate Catalog.
type Snapshot struct {
	Catalog  *models.Catalog
	Version  string
	Source   string
	LoadedAt time.Time
}

// Version hashes the canonical JSON form of a catalog
func Version(c *models.Catalog) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("hashing catalog: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:versionLength], nil
}

// NewSnapshot wraps a loaded catalog
func NewSnapshot(c *models.Catalog, source string) (*Snapshot, error) {
	version, err := Version(c)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Catalog: c, Version: version, Source: source, LoadedAt: time.Now()}, nil
}

// Store holds the current snapshot and swaps it atomically on reload
type Store struct {
	path    string
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store serving a fixed snapshot
func NewStore(s *Snapshot) *Store {
	st := &Store{path: s.Source}
	st.current.Store(s)
	return st
}

// Open loads path into a new store
func Open(path string) (*Store, error) {
	st := &Store{path: path}
	if err := st.Reload(); err != nil {
		return nil, err
	}
	return st, nil
}

// Current returns the snapshot in effect
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Reload re-reads the catalog file. On failure the previous snapshot stays in effect.
func (s *Store) Reload() error {
	c, err := Load(s.path)
	if err != nil {
		return err
	}
	snap, err := NewSnapshot(c, s.path)
	if err != nil {
		return err
	}

	issues := Validate(c)
	if len(issues) > 0 {
		slog.Warn("Catalog has validation issues", "path", s.path, "issues", len(issues), "first", issues[0].String())
	}
	if empty := EmptyCategories(c); len(empty) > 0 {
		slog.Warn("Catalog has empty categories", "path", s.path, "categories", empty)
	}

	prev := s.current.Swap(snap)
	if prev == nil || prev.Version != snap.Version {
		slog.Info("Catalog loaded", "path", s.path, "version", snap.Version, "counts", c.Counts())
	}
	return nil
}
