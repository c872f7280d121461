package memory

import (
	"context"

	"space-trivia-service/internal/domain"
)

// BankLoader fetches raw bank questions from a backing store (bundled set,
// Postgres, etc).
type BankLoader interface {
	LoadBank(ctx context.Context) ([]domain.BankQuestion, error)
}

// StaticBank serves the bundled offline question set. It is the fallback of
// last resort when both the trivia API and the database are unreachable.
type StaticBank struct {
	questions []domain.BankQuestion
}

func NewStaticBank(questions []domain.BankQuestion) *StaticBank {
	return &StaticBank{questions: questions}
}

func (b *StaticBank) LoadBank(_ context.Context) ([]domain.BankQuestion, error) {
	out := make([]domain.BankQuestion, len(b.questions))
	copy(out, b.questions)
	return out, nil
}

// BundledQuestions is the question set shipped with the binary.
func BundledQuestions() []domain.BankQuestion {
	return []domain.BankQuestion{
		{
			Text:             "What is the largest planet in our solar system?",
			CorrectAnswer:    "Jupiter",
			IncorrectAnswers: []string{"Saturn", "Neptune", "Earth"},
			Difficulty:       "easy",
			Category:         "Science: Space",
		},
		{
			Text:             "Which programming language is known as the 'language of the web'?",
			CorrectAnswer:    "JavaScript",
			IncorrectAnswers: []string{"Python", "Java", "C++"},
			Difficulty:       "medium",
			Category:         "Science: Computers",
		},
		{
			Text:             "What is the speed of light in vacuum?",
			CorrectAnswer:    "299,792,458 m/s",
			IncorrectAnswers: []string{"300,000,000 m/s", "299,000,000 m/s", "298,792,458 m/s"},
			Difficulty:       "hard",
			Category:         "Science: Physics",
		},
		{
			Text:             "Which galaxy is closest to the Milky Way?",
			CorrectAnswer:    "Andromeda",
			IncorrectAnswers: []string{"Whirlpool", "Sombrero", "Triangulum"},
			Difficulty:       "medium",
			Category:         "Science: Space",
		},
		{
			Text:             "What does HTML stand for?",
			CorrectAnswer:    "HyperText Markup Language",
			IncorrectAnswers: []string{"High Tech Modern Language", "Home Tool Markup Language", "Hyperlink and Text Markup Language"},
			Difficulty:       "easy",
			Category:         "Science: Computers",
		},
		{
			Text:             "Which planet is known as the Red Planet?",
			CorrectAnswer:    "Mars",
			IncorrectAnswers: []string{"Venus", "Jupiter", "Saturn"},
			Difficulty:       "easy",
			Category:         "Science: Space",
		},
		{
			Text:             "What is the binary representation of the decimal number 10?",
			CorrectAnswer:    "1010",
			IncorrectAnswers: []string{"1100", "1001", "1110"},
			Difficulty:       "medium",
			Category:         "Science: Computers",
		},
		{
			Text:             "Which star is at the center of our solar system?",
			CorrectAnswer:    "The Sun",
			IncorrectAnswers: []string{"Proxima Centauri", "Alpha Centauri", "Sirius"},
			Difficulty:       "easy",
			Category:         "Science: Space",
		},
		{
			Text:             "What does CPU stand for?",
			CorrectAnswer:    "Central Processing Unit",
			IncorrectAnswers: []string{"Computer Processing Unit", "Central Program Unit", "Computer Program Unit"},
			Difficulty:       "easy",
			Category:         "Science: Computers",
		},
		{
			Text:             "How many moons does Jupiter have approximately?",
			CorrectAnswer:    "79",
			IncorrectAnswers: []string{"45", "23", "156"},
			Difficulty:       "hard",
			Category:         "Science: Space",
		},
	}
}
