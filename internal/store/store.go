// Package store is the persistence gateway for the game's save file: a
// single flat JSON snapshot overwritten atomically after every mutating
// action. A missing or unreadable file is "no prior state", never an
// error.
package store

import (
	"encoding/json"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack-cli/internal/fileutil"
	"github.com/lox/blackjack-cli/internal/shop"
)

// StartingBalance is the stake a fresh save file begins with
const StartingBalance = 1000

// Snapshot is the flat persisted document
type Snapshot struct {
	Balance          int       `json:"balance"`
	OwnedWallpapers  []string  `json:"owned_wallpapers"`
	CurrentWallpaper string    `json:"current_wallpaper"`
	SavedAt          time.Time `json:"saved_at,omitzero"`
}

// DefaultSnapshot returns the first-run state
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Balance:          StartingBalance,
		OwnedWallpapers:  []string{shop.DefaultWallpaper},
		CurrentWallpaper: shop.DefaultWallpaper,
	}
}

// Gateway loads and saves the snapshot. The session only ever talks to
// this interface so tests can swap in a memory store.
type Gateway interface {
	Load() Snapshot
	Save(Snapshot) error
}

// FileStore persists the snapshot to a JSON file on disk
type FileStore struct {
	path   string
	clock  quartz.Clock
	logger *log.Logger
}

// NewFileStore creates a file-backed store at path
func NewFileStore(path string, clock quartz.Clock, logger *log.Logger) *FileStore {
	return &FileStore{
		path:   path,
		clock:  clock,
		logger: logger.WithPrefix("store"),
	}
}

// Load reads the snapshot from disk, falling back to defaults if the
// file is missing or unreadable
func (s *FileStore) Load() Snapshot {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Unreadable save file, starting fresh", "path", s.path, "error", err)
		}
		return DefaultSnapshot()
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("Corrupt save file, starting fresh", "path", s.path, "error", err)
		return DefaultSnapshot()
	}

	s.logger.Debug("Loaded game state",
		"balance", snap.Balance,
		"wallpaper", snap.CurrentWallpaper)
	return snap
}

// Save overwrites the entire snapshot atomically
func (s *FileStore) Save(snap Snapshot) error {
	snap.SavedAt = s.clock.Now()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(s.path, data, 0644); err != nil {
		return err
	}

	s.logger.Debug("Saved game state",
		"balance", snap.Balance,
		"wallpaper", snap.CurrentWallpaper)
	return nil
}

// MemStore is an in-memory Gateway for tests
type MemStore struct {
	Snap  Snapshot
	Saves int
	Err   error
}

// NewMemStore returns a memory store seeded with the default snapshot
func NewMemStore() *MemStore {
	return &MemStore{Snap: DefaultSnapshot()}
}

// Load returns the stored snapshot
func (m *MemStore) Load() Snapshot { return m.Snap }

// Save records the snapshot and counts the write
func (m *MemStore) Save(snap Snapshot) error {
	if m.Err != nil {
		return m.Err
	}
	m.Snap = snap
	m.Saves++
	return nil
}
