package track

import (
	"sort"
	"sync"
)

// Store is the durability primitive for tracked products: a mapping from
// identity key to record, read and replaced as a whole. SetAll is atomic —
// either the full mapping is durable or the previous one still is.
type Store interface {
	GetAll() (map[string]ProductRecord, error)
	SetAll(map[string]ProductRecord) error
}

// MemoryStore is an in-memory Store used by tests and as a cache for hosts
// that persist elsewhere. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]ProductRecord
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string]ProductRecord{}}
}

// GetAll returns a deep copy of the stored mapping.
func (s *MemoryStore) GetAll() (map[string]ProductRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyRecords(s.records), nil
}

// SetAll replaces the stored mapping.
func (s *MemoryStore) SetAll(records map[string]ProductRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = copyRecords(records)
	return nil
}

func copyRecords(records map[string]ProductRecord) map[string]ProductRecord {
	out := make(map[string]ProductRecord, len(records))
	for key, record := range records {
		record.History = append([]PricePoint(nil), record.History...)
		out[key] = record
	}
	return out
}

// ClearAll removes every record unconditionally.
func ClearAll(store Store) error {
	return store.SetAll(map[string]ProductRecord{})
}

// SortedByRecent flattens a stored mapping into a slice ordered by most
// recent observation first, the order list renderers display products in.
func SortedByRecent(records map[string]ProductRecord) []ProductRecord {
	out := make([]ProductRecord, 0, len(records))
	for _, record := range records {
		out = append(out, record)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastObserved() > out[j].LastObserved()
	})
	return out
}

// TotalObservations counts price points across all records.
func TotalObservations(records map[string]ProductRecord) int {
	total := 0
	for _, record := range records {
		total += len(record.History)
	}
	return total
}
