package domain

import "time"

// Question is a single multiple-choice prompt. Answers are shuffled once when
// the question is built and the order is fixed afterwards; CorrectAnswerIndex
// always points into Answers.
type Question struct {
	ID                 string   `json:"id"`
	Text               string   `json:"text"`
	Answers            []string `json:"answers"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Difficulty         string   `json:"difficulty"`
	Category           string   `json:"category"`
}

// AnswerRecord is the durable outcome of one question: answered, skipped, or
// timed out. SelectedAnswer is nil when the question was skipped without a
// selection; IsCorrect is always false in that case.
type AnswerRecord struct {
	QuestionIndex  int  `json:"questionIndex"`
	SelectedAnswer *int `json:"selectedAnswer"`
	IsCorrect      bool `json:"isCorrect"`
	Skipped        bool `json:"skipped"`
}

// LeaderboardEntry is the scored summary of one completed quiz attempt.
// Percentage is accuracy over answered questions only; CompletionRate is the
// share of total questions that received any AnswerRecord.
type LeaderboardEntry struct {
	ID                string    `json:"id"`
	Score             int       `json:"score"`
	TotalQuestions    int       `json:"totalQuestions"`
	AnsweredQuestions int       `json:"answeredQuestions"`
	Percentage        int       `json:"percentage"`
	CompletionRate    int       `json:"completionRate"`
	Difficulty        string    `json:"difficulty"`
	Category          string    `json:"category"`
	Timestamp         time.Time `json:"timestamp"`
}

// Report is handed to the results screen after a session completes.
type Report struct {
	Entry   LeaderboardEntry `json:"entry"`
	Answers []AnswerRecord   `json:"answers"`
}

// BankQuestion is the raw form questions take in the bundled bank, the
// Postgres bank, and the Open Trivia DB API: the correct answer is kept apart
// from the wrong ones until the question is formatted for a quiz attempt.
type BankQuestion struct {
	Text             string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
}
