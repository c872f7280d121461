package opentdb

import (
	"html"
	"math/rand"

	"github.com/google/uuid"

	"space-trivia-service/internal/domain"
)

// formatQuestion turns a raw bank question into a playable one: HTML entities
// decoded, answers shuffled once, and the correct index recorded after the
// shuffle. The order is fixed for the lifetime of the question.
func formatQuestion(rnd *rand.Rand, raw domain.BankQuestion) domain.Question {
	all := make([]string, 0, 1+len(raw.IncorrectAnswers))
	all = append(all, html.UnescapeString(raw.CorrectAnswer))
	for _, a := range raw.IncorrectAnswers {
		all = append(all, html.UnescapeString(a))
	}

	perm := rnd.Perm(len(all))
	answers := make([]string, len(all))
	correct := 0
	for dst, src := range perm {
		answers[dst] = all[src]
		if src == 0 {
			correct = dst
		}
	}

	return domain.Question{
		ID:                 uuid.NewString(),
		Text:               html.UnescapeString(raw.Text),
		Answers:            answers,
		CorrectAnswerIndex: correct,
		Difficulty:         raw.Difficulty,
		Category:           html.UnescapeString(raw.Category),
	}
}
