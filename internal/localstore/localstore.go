package localstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"
)

// Keys of the per-tracker fallback files.
const (
	KeyTasks       = "productivity-todos"
	KeyGoals       = "productivity-goals"
	KeyVision      = "productivity-vision-board"
	KeyNotes       = "productivity-notes"
	KeyBooks       = "productivity-books"
	KeyFinances    = "productivity-finances"
	KeyPrayers     = "productivity-prayers"
	KeyRecitations = "productivity-quran"
)

// Keys lists every fallback key.
var Keys = []string{
	KeyTasks, KeyGoals, KeyVision, KeyNotes,
	KeyBooks, KeyFinances, KeyPrayers, KeyRecitations,
}

// Store is a whole-collection snapshot of one tracker kept as a JSON array in
// <dir>/<key>.json. It never surfaces read errors: a missing or unreadable
// file is an empty collection.
type Store[T any] struct {
	mu   sync.Mutex
	path string
	key  string
}

func New[T any](dir, key string) *Store[T] {
	return &Store[T]{
		path: filepath.Join(dir, key+".json"),
		key:  key,
	}
}

func (s *Store[T]) Key() string {
	return s.key
}

func (s *Store[T]) Path() string {
	return s.path
}

// Get returns the stored items, or an empty slice.
func (s *Store[T]) Get() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("failed to read fallback store", "error", err, "key", s.key)
		}
		return []T{}
	}

	var items []T
	err = json.Unmarshal(data, &items)
	if err != nil {
		slog.Warn("ignoring corrupt fallback store", "error", err, "key", s.key)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// Set replaces the stored collection. The file is swapped atomically so a
// concurrent reader sees either the old or the new snapshot.
func (s *Store[T]) Set(items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", s.key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = os.MkdirAll(filepath.Dir(s.path), 0755)
	if err != nil {
		return fmt.Errorf("failed to create fallback directory: %w", err)
	}

	err = atomic.WriteFile(s.path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", s.key, err)
	}
	return nil
}
