package app

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"space-trivia-service/internal/domain"
)

// LeaderboardStore abstracts the durable key-value storage behind the high
// score table (in-memory, Redis, etc). Save overwrites the entire stored
// sequence; Load returns an empty slice when nothing usable is stored.
type LeaderboardStore interface {
	Load(ctx context.Context) ([]domain.LeaderboardEntry, error)
	Save(ctx context.Context, entries []domain.LeaderboardEntry) error
}

// LeaderboardUpdater is an optional store capability: Update applies fn to
// the stored entries atomically with respect to other writers, so concurrent
// read-modify-write cycles cannot interleave. Stores that serve multiple
// processes (Redis) implement it with a compare-and-swap on the persisted
// value.
type LeaderboardUpdater interface {
	Update(ctx context.Context, fn func([]domain.LeaderboardEntry) []domain.LeaderboardEntry) ([]domain.LeaderboardEntry, error)
}

// DefaultLeaderboardSize bounds the persisted high score table.
const DefaultLeaderboardSize = 10

// ScoreKeeper turns completed sessions into leaderboard entries and maintains
// the bounded, ranked leaderboard in the injected store.
type ScoreKeeper struct {
	store    LeaderboardStore
	capacity int
	now      func() time.Time
	newID    func() string
}

func NewScoreKeeper(store LeaderboardStore, capacity int) *ScoreKeeper {
	if capacity <= 0 {
		capacity = DefaultLeaderboardSize
	}
	return &ScoreKeeper{
		store:    store,
		capacity: capacity,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// NewScoreKeeperWithClock is test-only for deterministic timestamps and ids.
func NewScoreKeeperWithClock(store LeaderboardStore, capacity int, now func() time.Time, newID func() string) *ScoreKeeper {
	k := NewScoreKeeper(store, capacity)
	k.now = now
	k.newID = newID
	return k
}

// Finalize consumes a completed session exactly once: it derives the scored
// entry, merges it into the persisted leaderboard, and returns the entry plus
// the updated board.
//
// Questions left with no AnswerRecord by an early termination count against
// the completion rate but are not "skipped": skipped is reserved for explicit
// skip or timeout events that produced a record.
func (k *ScoreKeeper) Finalize(ctx context.Context, session *Session) (domain.LeaderboardEntry, []domain.LeaderboardEntry, error) {
	if session.Status() != StatusCompleted {
		return domain.LeaderboardEntry{}, nil, domain.ErrSessionNotCompleted
	}

	answered := len(session.Answers())
	total := session.TotalQuestions()
	entry := domain.LeaderboardEntry{
		ID:                k.newID(),
		Score:             session.Score(),
		TotalQuestions:    total,
		AnsweredQuestions: answered,
		Percentage:        percent(session.Score(), answered),
		CompletionRate:    percent(answered, total),
		Difficulty:        session.Difficulty(),
		Category:          session.Category(),
		Timestamp:         k.now(),
	}

	board, err := k.Insert(ctx, entry)
	if err != nil {
		return domain.LeaderboardEntry{}, nil, err
	}
	return entry, board, nil
}

// Insert merges the entry into the stored leaderboard: append, stable sort
// descending by (completion rate, percentage), truncate to capacity, persist.
// Exact ties keep insertion order.
func (k *ScoreKeeper) Insert(ctx context.Context, entry domain.LeaderboardEntry) ([]domain.LeaderboardEntry, error) {
	rank := func(entries []domain.LeaderboardEntry) []domain.LeaderboardEntry {
		entries = append(entries, entry)
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].CompletionRate != entries[j].CompletionRate {
				return entries[i].CompletionRate > entries[j].CompletionRate
			}
			return entries[i].Percentage > entries[j].Percentage
		})
		if len(entries) > k.capacity {
			entries = entries[:k.capacity]
		}
		return entries
	}

	if updater, ok := k.store.(LeaderboardUpdater); ok {
		entries, err := updater.Update(ctx, rank)
		if err != nil {
			return nil, fmt.Errorf("update leaderboard: %w", err)
		}
		return entries, nil
	}

	entries, err := k.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	entries = rank(entries)
	if err := k.store.Save(ctx, entries); err != nil {
		return nil, fmt.Errorf("save leaderboard: %w", err)
	}
	return entries, nil
}

// Leaderboard returns the stored high score table.
func (k *ScoreKeeper) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return k.store.Load(ctx)
}

// percent rounds 100*part/whole to the nearest integer, 0 when whole is 0.
func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}
