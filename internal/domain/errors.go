package domain

import "errors"

var (
	// ErrEmptyQuestionSet is returned when a session is started with no questions.
	ErrEmptyQuestionSet = errors.New("question set is empty")
	// ErrSessionStarted is returned when Start is called on a session that already ran.
	ErrSessionStarted = errors.New("session already started")
	// ErrSessionNotCompleted is returned when a session is finalized before completing.
	ErrSessionNotCompleted = errors.New("session not completed")
	// ErrNoQuestions indicates the question source could not produce any questions.
	ErrNoQuestions = errors.New("no questions available")
)
