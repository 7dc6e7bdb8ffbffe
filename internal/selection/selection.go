// Package selection tracks the set of product ids the operator has marked
// for bulk actions. Selections are weak references: deleting a record must
// evict its id here in the same logical step, so no dangling id survives.
// Pure in-memory, never persisted.
package selection

import (
	"sort"
	"sync"
)

// Manager holds the selected id set.
type Manager struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

// New creates an empty selection.
func New() *Manager {
	return &Manager{ids: make(map[string]struct{})}
}

// SelectAll replaces the selection with the given ids.
func (m *Manager) SelectAll(ids []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m.ids[id] = struct{}{}
	}
}

// SelectNone clears the selection.
func (m *Manager) SelectNone() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids = make(map[string]struct{})
}

// Toggle flips the selection state of a single id.
func (m *Manager) Toggle(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.ids[id]; ok {
		delete(m.ids, id)
	} else {
		m.ids[id] = struct{}{}
	}
}

// IsSelected reports whether the id is currently selected.
func (m *Manager) IsSelected(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.ids[id]
	return ok
}

// Size returns the number of selected ids.
func (m *Manager) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.ids)
}

// Selected returns the selected ids in sorted order.
func (m *Manager) Selected() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.ids))
	for id := range m.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Remove evicts the given ids from the selection. Called whenever records
// are removed from the store.
func (m *Manager) Remove(ids ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		delete(m.ids, id)
	}
}

// Retain drops every selected id not present in keep. Used after a
// wholesale refresh so the selection never references a vanished record.
func (m *Manager) Retain(keep []string) {
	alive := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		alive[id] = struct{}{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for id := range m.ids {
		if _, ok := alive[id]; !ok {
			delete(m.ids, id)
		}
	}
}
