package opentdb

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"space-trivia-service/internal/domain"
)

// BankLoader provides the raw fallback question bank.
type BankLoader interface {
	LoadBank(ctx context.Context) ([]domain.BankQuestion, error)
}

// Source resolves a question set for one quiz attempt: programming categories
// come straight from the built-in programming bank, everything else tries the
// trivia API first and on any API trouble the fallback bank, filtered by
// difficulty and truncated to the requested count. It never surfaces an API
// error to the session layer; an error here means even the fallback came up
// empty.
type Source struct {
	client *Client
	bank   BankLoader

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSource(client *Client, bank BankLoader) *Source {
	return newSourceWithRand(client, bank, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// newSourceWithRand allows deterministic shuffles in tests.
func newSourceWithRand(client *Client, bank BankLoader, rnd *rand.Rand) *Source {
	return &Source{client: client, bank: bank, rnd: rnd}
}

func (s *Source) FetchQuestions(ctx context.Context, count int, difficulty, category string) ([]domain.Question, error) {
	var raw []domain.BankQuestion
	var err error
	if IsProgrammingCategory(category) {
		raw, err = s.programming(count, difficulty, category)
		if err != nil {
			return nil, err
		}
	} else {
		raw, err = s.client.Fetch(ctx, count, difficulty, category)
		if err != nil {
			log.Printf("trivia api unavailable, using fallback bank: %v", err)
			raw, err = s.fallback(ctx, count, difficulty)
			if err != nil {
				return nil, err
			}
		}
	}
	if len(raw) > count {
		raw = raw[:count]
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	questions := make([]domain.Question, 0, len(raw))
	for _, q := range raw {
		questions = append(questions, formatQuestion(s.rnd, q))
	}
	return questions, nil
}

// programming serves a programming category entirely from the built-in bank.
// Selection widens in steps: the category's own set filtered by difficulty,
// then the unfiltered set, then difficulty-matching questions from the other
// programming categories. Mixed categories with no set of their own (nodejs,
// webdev, programming) start at the last step.
func (s *Source) programming(count int, difficulty, category string) ([]domain.BankQuestion, error) {
	pool := programmingBank[category]

	filtered := pool
	if difficulty != "" && difficulty != "any" {
		filtered = nil
		for _, q := range pool {
			if q.Difficulty == difficulty {
				filtered = append(filtered, q)
			}
		}
		if len(filtered) < count {
			filtered = pool
		}
	}

	if len(filtered) < count {
		seen := make(map[string]bool, len(filtered))
		for _, q := range filtered {
			seen[q.Text] = true
		}
		for _, set := range programmingBank {
			for _, q := range set {
				if seen[q.Text] {
					continue
				}
				if difficulty != "" && difficulty != "any" && q.Difficulty != difficulty {
					continue
				}
				filtered = append(filtered, q)
				seen[q.Text] = true
			}
		}
	}
	if len(filtered) == 0 {
		return nil, domain.ErrNoQuestions
	}

	s.mu.Lock()
	shuffled := make([]domain.BankQuestion, len(filtered))
	copy(shuffled, filtered)
	s.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	s.mu.Unlock()

	if len(shuffled) > count {
		shuffled = shuffled[:count]
	}
	return shuffled, nil
}

// fallback mirrors the API contract from the local bank: filter by difficulty
// unless that leaves too few, shuffle, return up to count questions.
func (s *Source) fallback(ctx context.Context, count int, difficulty string) ([]domain.BankQuestion, error) {
	bank, err := s.bank.LoadBank(ctx)
	if err != nil {
		return nil, err
	}

	filtered := bank
	if difficulty != "" && difficulty != "any" {
		filtered = nil
		for _, q := range bank {
			if q.Difficulty == difficulty {
				filtered = append(filtered, q)
			}
		}
		if len(filtered) < count {
			filtered = bank
		}
	}
	if len(filtered) == 0 {
		return nil, domain.ErrNoQuestions
	}

	s.mu.Lock()
	shuffled := make([]domain.BankQuestion, len(filtered))
	copy(shuffled, filtered)
	s.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	s.mu.Unlock()

	if len(shuffled) > count {
		shuffled = shuffled[:count]
	}
	return shuffled, nil
}
