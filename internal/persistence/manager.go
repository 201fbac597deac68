package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const journalExt = ".jsonl"

// Manager maps battle ids to journal files under one directory.
type Manager struct {
	Dir string
}

// NewManager returns a manager rooted at dir.
func NewManager(dir string) *Manager {
	return &Manager{Dir: dir}
}

// Path produces the journal path for a battle.
func (m *Manager) Path(battleID string) string {
	return filepath.Join(m.Dir, battleID+journalExt)
}

// Create makes the journal directory if needed and opens a fresh journal.
func (m *Manager) Create(battleID string) (*Journal, error) {
	if battleID == "" {
		return nil, fmt.Errorf("battle id is required")
	}
	if err := os.MkdirAll(m.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", m.Dir, err)
	}
	path := m.Path(battleID)
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("journal already exists: %s", path)
	}
	return NewJournal(path)
}

// Open verifies and opens the journal of an earlier battle.
func (m *Manager) Open(battleID string) (*Journal, error) {
	path := m.Path(battleID)
	if stat, err := os.Stat(path); err != nil || stat.IsDir() {
		return nil, fmt.Errorf("journal not found: %s", path)
	}
	return NewJournal(path)
}

// List returns the ids of every journaled battle, sorted.
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read journal dir: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), journalExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), journalExt))
	}
	sort.Strings(ids)
	return ids, nil
}
