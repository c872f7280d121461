package memory

import (
	"context"
	"sync"

	"space-trivia-service/internal/domain"
)

// LeaderboardStore is an in-memory implementation of app.LeaderboardStore,
// used in tests and when no Redis is configured.
type LeaderboardStore struct {
	mu      sync.RWMutex
	entries []domain.LeaderboardEntry
}

func NewLeaderboardStore() *LeaderboardStore {
	return &LeaderboardStore{}
}

func (s *LeaderboardStore) Load(_ context.Context) ([]domain.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LeaderboardEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *LeaderboardStore) Save(_ context.Context, entries []domain.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make([]domain.LeaderboardEntry, len(entries))
	copy(s.entries, entries)
	return nil
}
