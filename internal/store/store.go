// Package store owns the canonical in-memory product collection and its
// durable slot. All mutation goes through the Store's API; nothing else
// ever writes the slot, so a full overwrite per persist is race-free.
package store

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/roach88/repricer/internal/model"
)

// Store holds the authoritative product collection. Records keep insertion
// order: new records are prepended (most recently added first), matching
// how the dashboard lists them.
//
// Mutating operations touch memory only; callers persist the result with
// Persist in the same logical step so the slot never lags memory by more
// than one operation.
type Store struct {
	mu      sync.RWMutex
	records []model.ProductRecord
	slot    Slot
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger overrides the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// New creates a Store backed by the given slot. Call Load before use.
func New(slot Slot, opts ...Option) *Store {
	s := &Store{
		slot:   slot,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load restores the collection from the durable slot. If the slot is
// empty, unreadable, or holds malformed data, the caller-supplied default
// set is used instead. Load never fails: a corrupt slot must not abort
// startup.
func (s *Store) Load(defaults []model.ProductRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok, err := s.slot.Read()
	if err != nil {
		s.logger.Warn("slot unreadable, falling back to defaults", "error", err)
		s.records = cloneRecords(defaults)
		return
	}
	if !ok {
		s.records = cloneRecords(defaults)
		return
	}

	var records []model.ProductRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("slot holds malformed state, falling back to defaults", "error", err)
		s.records = cloneRecords(defaults)
		return
	}
	s.records = records
}

// All returns a copy of the current collection.
func (s *Store) All() []model.ProductRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.records)
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (model.ProductRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return model.ProductRecord{}, false
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// PendingCount returns how many records still await an operator action.
func (s *Store) PendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, r := range s.records {
		if r.Status == model.StatusPending {
			n++
		}
	}
	return n
}

// ReplaceAll atomically swaps the entire collection. Used by refresh:
// no prior record survives unless present in the new set.
func (s *Store) ReplaceAll(records []model.ProductRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = cloneRecords(records)
}

// UpsertOne inserts or updates a record by id. Existing records are
// updated in place; new records are prepended.
func (s *Store) UpsertOne(rec model.ProductRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == rec.ID {
			s.records[i] = rec
			return
		}
	}
	s.records = append([]model.ProductRecord{rec}, s.records...)
}

// RemoveMany removes every record whose id is in ids and returns the ids
// actually removed. Absent ids are ignored.
func (s *Store) RemoveMany(ids []string) []string {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []string
	kept := s.records[:0]
	for _, r := range s.records {
		if _, gone := drop[r.ID]; gone {
			removed = append(removed, r.ID)
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	return removed
}

// Snapshot returns an immutable copy of the current state for rollback
// capture. Mutating the returned slice does not affect the Store.
func (s *Store) Snapshot() []model.ProductRecord {
	return s.All()
}

// Persist writes the current collection to the durable slot, fully
// overwriting the prior value. Persisting twice with no intervening
// mutation writes an identical value both times.
func (s *Store) Persist() error {
	s.mu.RLock()
	records := s.records
	if records == nil {
		records = []model.ProductRecord{}
	}
	data, err := json.Marshal(records)
	s.mu.RUnlock()
	if err != nil {
		return err
	}
	return s.slot.Write(data)
}

func cloneRecords(records []model.ProductRecord) []model.ProductRecord {
	out := make([]model.ProductRecord, len(records))
	copy(out, records)
	return out
}
