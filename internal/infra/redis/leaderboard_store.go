package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"space-trivia-service/internal/domain"
)

const leaderboardKey = "trivia:leaderboard"

// maxUpdateRetries bounds the optimistic-transaction retry loop.
const maxUpdateRetries = 5

// LeaderboardStore persists the high score table as a single JSON value in
// Redis so it survives process restarts. Corrupt or missing data is treated
// as an empty leaderboard, never as an error. Update runs the read-modify-write
// under WATCH so two clients cannot interleave their writes.
type LeaderboardStore struct {
	client *redis.Client
}

func NewLeaderboardStore(client *redis.Client) *LeaderboardStore {
	return &LeaderboardStore{client: client}
}

func (s *LeaderboardStore) Load(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	data, err := s.client.Get(ctx, leaderboardKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	return decodeEntries(data), nil
}

func (s *LeaderboardStore) Save(ctx context.Context, entries []domain.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal leaderboard: %w", err)
	}
	if err := s.client.Set(ctx, leaderboardKey, data, 0).Err(); err != nil {
		return fmt.Errorf("save leaderboard: %w", err)
	}
	return nil
}

// Update applies fn under an optimistic transaction: the key is watched, the
// write aborts if another client modified it, and the whole cycle retries.
func (s *LeaderboardStore) Update(ctx context.Context, fn func([]domain.LeaderboardEntry) []domain.LeaderboardEntry) ([]domain.LeaderboardEntry, error) {
	var updated []domain.LeaderboardEntry

	txn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, leaderboardKey).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		entries := decodeEntries(data)
		entries = fn(entries)

		encoded, err := json.Marshal(entries)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, leaderboardKey, encoded, 0)
			return nil
		})
		if err == nil {
			updated = entries
		}
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := s.client.Watch(ctx, txn, leaderboardKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("update leaderboard: %w", err)
		}
		return updated, nil
	}
	return nil, fmt.Errorf("update leaderboard: retries exhausted")
}

func decodeEntries(data []byte) []domain.LeaderboardEntry {
	if len(data) == 0 {
		return nil
	}
	var entries []domain.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("leaderboard data unreadable, starting fresh: %v", err)
		return nil
	}
	return entries
}
