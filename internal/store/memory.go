package store

import (
	"context"
	"slices"
	"sync"

	"github.com/ugaemi/mazechase-server/internal/score"
)

// MemoryStore keeps scores in process memory. It backs the server when no
// database is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	byLevel map[int][]*score.Record
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byLevel: make(map[int][]*score.Record)}
}

// Save inserts a copy of rec.
func (s *MemoryStore) Save(_ context.Context, rec *score.Record) error {
	if err := validate(rec); err != nil {
		return err
	}
	cp := *rec

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byLevel[cp.Level] = append(s.byLevel[cp.Level], &cp)
	return nil
}

// Top returns copies of the best limit records for level.
func (s *MemoryStore) Top(_ context.Context, level, limit int) ([]*score.Record, error) {
	s.mu.RLock()
	recs := slices.Clone(s.byLevel[level])
	s.mu.RUnlock()

	slices.SortStableFunc(recs, func(a, b *score.Record) int {
		switch {
		case score.Less(a, b):
			return -1
		case score.Less(b, a):
			return 1
		}
		return 0
	})

	recs = recs[:min(len(recs), clampLimit(limit))]
	out := make([]*score.Record, len(recs))
	for i, r := range recs {
		cp := *r
		out[i] = &cp
	}
	return out, nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
