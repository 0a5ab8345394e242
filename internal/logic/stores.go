package logic

import (
	"sync"

	"searchpanel/internal/domain"
)

// MemoryResultStore is an ordered in-memory implementation of ResultStore
type MemoryResultStore struct {
	mu      sync.RWMutex
	results []domain.SearchResult
	byID    map[string]int
}

// NewMemoryResultStore creates a store holding results in the given order
func NewMemoryResultStore(results ...domain.SearchResult) *MemoryResultStore {
	s := &MemoryResultStore{
		byID: make(map[string]int),
	}
	for _, r := range results {
		s.AddResult(r)
	}
	return s
}

// FetchResults returns a copy of the results in insertion order
func (s *MemoryResultStore) FetchResults() []domain.SearchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.SearchResult, len(s.results))
	copy(out, s.results)
	return out
}

// AddResult appends a result, replacing an earlier one with the same ID in place
func (s *MemoryResultStore) AddResult(result domain.SearchResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.byID[result.ID]; ok {
		s.results[i] = result
		return
	}
	s.byID[result.ID] = len(s.results)
	s.results = append(s.results, result)
}

// GetResult looks a result up by ID
func (s *MemoryResultStore) GetResult(id string) (domain.SearchResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return domain.SearchResult{}, false
	}
	return s.results[i], true
}

// Len returns the number of stored results
func (s *MemoryResultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}
