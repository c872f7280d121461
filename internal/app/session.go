package app

import (
	"sync"

	"space-trivia-service/internal/domain"
)

// Status is the lifecycle state of a quiz session.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	default:
		return "not_started"
	}
}

// Session owns the state of one quiz attempt: the fixed question set, the
// cursor position, the answer history, and the derived score. All mutating
// operations are serialized through the session mutex because the countdown
// timer's expiry callback arrives on its own goroutine.
//
// Invalid operations (submitting twice, skipping an answered question,
// retreating from the first question, any mutation outside InProgress) are
// deliberate no-ops rather than errors: they occur routinely from repeated
// user input and must not kill the session.
type Session struct {
	mu           sync.Mutex
	status       Status
	questions    []domain.Question
	currentIndex int
	answers      []domain.AnswerRecord
	score        int
	pending      *int
	difficulty   string
	category     string
}

// NewSession returns a session in the NotStarted state. A session is used for
// exactly one quiz attempt; restarting a quiz means a fresh instance.
func NewSession() *Session {
	return &Session{}
}

// Start moves the session into InProgress with the given question set.
func (s *Session) Start(questions []domain.Question, difficulty, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusNotStarted {
		return domain.ErrSessionStarted
	}
	if len(questions) == 0 {
		return domain.ErrEmptyQuestionSet
	}

	s.questions = questions
	s.currentIndex = 0
	s.answers = nil
	s.score = 0
	s.pending = nil
	s.difficulty = difficulty
	s.category = category
	s.status = StatusInProgress
	return nil
}

// SelectAnswer records a provisional choice for the current question. It can
// be overwritten until submitted and never touches the answer history. No-op
// once the current question has a submitted or skipped record.
func (s *Session) SelectAnswer(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusInProgress || s.currentAnsweredLocked() {
		return
	}
	if index < 0 || index >= len(s.questions[s.currentIndex].Answers) {
		return
	}
	s.pending = &index
}

// SubmitAnswer turns the given choice into the authoritative AnswerRecord for
// the current question. The first submission wins; repeats are no-ops. The
// cursor does not move.
func (s *Session) SubmitAnswer(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitLocked(index)
}

func (s *Session) submitLocked(index int) {
	if s.status != StatusInProgress || s.currentAnsweredLocked() {
		return
	}
	question := s.questions[s.currentIndex]
	if index < 0 || index >= len(question.Answers) {
		return
	}

	selected := index
	correct := index == question.CorrectAnswerIndex
	s.answers = append(s.answers, domain.AnswerRecord{
		QuestionIndex:  s.currentIndex,
		SelectedAnswer: &selected,
		IsCorrect:      correct,
	})
	if correct {
		s.score++
	}
	s.pending = nil
}

// Skip records the current question as explicitly skipped. No-op if the
// question already has a record.
func (s *Session) Skip() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skipLocked()
}

func (s *Session) skipLocked() {
	if s.status != StatusInProgress || s.currentAnsweredLocked() {
		return
	}
	s.answers = append(s.answers, domain.AnswerRecord{
		QuestionIndex: s.currentIndex,
		Skipped:       true,
	})
	s.pending = nil
}

// Advance moves the cursor to the next question, or completes the session
// when the cursor is already on the last question.
func (s *Session) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusInProgress {
		return
	}
	s.pending = nil
	if s.currentIndex >= len(s.questions)-1 {
		s.status = StatusCompleted
		return
	}
	s.currentIndex++
}

// Retreat moves the cursor back one question and undoes the most recent
// AnswerRecord, decrementing the score if that record was correct. Navigation
// and answer history move together here: going back is a true undo, not a
// view change. No-op at the first question.
func (s *Session) Retreat() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusInProgress || s.currentIndex == 0 {
		return
	}
	s.currentIndex--
	s.pending = nil
	if len(s.answers) == 0 {
		return
	}
	last := s.answers[len(s.answers)-1]
	s.answers = s.answers[:len(s.answers)-1]
	if last.IsCorrect {
		s.score--
	}
}

// ExpireTimer handles the countdown reaching zero: a pending unsubmitted
// selection is submitted, otherwise the question is skipped. The cursor does
// not move; advancing stays a distinct user action so results can be shown
// before moving on.
func (s *Session) ExpireTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusInProgress || s.currentAnsweredLocked() {
		return
	}
	if s.pending != nil {
		s.submitLocked(*s.pending)
		return
	}
	s.skipLocked()
}

// TerminateEarly submits any pending selection and then forces the session to
// Completed, leaving trailing questions with no AnswerRecord at all.
func (s *Session) TerminateEarly() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusInProgress {
		return
	}
	if s.pending != nil && !s.currentAnsweredLocked() {
		s.submitLocked(*s.pending)
	}
	s.pending = nil
	s.status = StatusCompleted
}

func (s *Session) currentAnsweredLocked() bool {
	for _, a := range s.answers {
		if a.QuestionIndex == s.currentIndex {
			return true
		}
	}
	return false
}

// Status reports the lifecycle state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Score is the count of correct AnswerRecords so far.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// CurrentIndex is the cursor position in the question set.
func (s *Session) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentIndex
}

// CurrentQuestion returns the question under the cursor, or false when the
// session has not started.
func (s *Session) CurrentQuestion() (domain.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.questions) == 0 {
		return domain.Question{}, false
	}
	return s.questions[s.currentIndex], true
}

// TotalQuestions is the size of the fixed question set.
func (s *Session) TotalQuestions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questions)
}

// Answers returns a copy of the answer history.
func (s *Session) Answers() []domain.AnswerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AnswerRecord, len(s.answers))
	copy(out, s.answers)
	return out
}

// AnswerFor returns the record for the given question index, if one exists.
func (s *Session) AnswerFor(index int) (domain.AnswerRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.answers {
		if a.QuestionIndex == index {
			return a, true
		}
	}
	return domain.AnswerRecord{}, false
}

// Difficulty is the difficulty the question set was built with.
func (s *Session) Difficulty() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.difficulty
}

// Category is the category the question set was built with.
func (s *Session) Category() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}
