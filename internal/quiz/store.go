package quiz

import (
	"context"
	"sync"
)

// ProgressStore persists per-player quiz progress. Load must return the
// empty starting state for a player with no record; malformed stored data is
// treated the same way rather than surfaced as an error.
type ProgressStore interface {
	Load(ctx context.Context, user string) (Progress, error)
	Save(ctx context.Context, user string, p Progress) error
	Delete(ctx context.Context, user string) error
}

// MemoryStore is an in-memory ProgressStore implementation.
type MemoryStore struct {
	mu       sync.RWMutex
	progress map[string]Progress
}

// NewMemoryStore creates a new in-memory progress store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{progress: make(map[string]Progress)}
}

func (s *MemoryStore) Load(_ context.Context, user string) (Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.progress[user]
	if !ok {
		return NewProgress(), nil
	}
	return clone(p), nil
}

func (s *MemoryStore) Save(_ context.Context, user string, p Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.progress[user] = clone(p)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, user string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.progress, user)
	return nil
}

func clone(p Progress) Progress {
	c := Progress{
		CompletedLevels: make([]int, len(p.CompletedLevels)),
		CurrentLevel:    p.CurrentLevel,
		Scores:          make(map[int]int, len(p.Scores)),
	}
	copy(c.CompletedLevels, p.CompletedLevels)
	for k, v := range p.Scores {
		c.Scores[k] = v
	}
	return c
}
