package quiz

import (
	"context"
	"sync"
)

// Sessions hands out one engine per player, created on first use.
type Sessions struct {
	mu      sync.RWMutex
	bank    *Bank
	store   ProgressStore
	engines map[string]*Engine
}

// NewSessions creates a session manager over the given bank and store.
func NewSessions(bank *Bank, store ProgressStore) *Sessions {
	return &Sessions{
		bank:    bank,
		store:   store,
		engines: make(map[string]*Engine),
	}
}

// Get returns the player's engine, creating it (and loading persisted
// progress) on first access.
func (s *Sessions) Get(ctx context.Context, user string) *Engine {
	s.mu.RLock()
	e, ok := s.engines[user]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.engines[user]; ok {
		return e
	}
	e = NewEngine(ctx, s.bank, s.store, user)
	s.engines[user] = e
	return e
}

// Bank exposes the underlying question bank.
func (s *Sessions) Bank() *Bank {
	return s.bank
}
