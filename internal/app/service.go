package app

import (
	"context"

	"space-trivia-service/internal/domain"
)

// QuestionSource produces the ordered question set for one quiz attempt. It
// fails soft: network or parse trouble is absorbed behind a fallback bank and
// the returned slice may be shorter than requested. An error here means even
// the fallback produced nothing.
type QuestionSource interface {
	FetchQuestions(ctx context.Context, count int, difficulty, category string) ([]domain.Question, error)
}

// QuizService contains the quiz use cases: launching a session, finishing it,
// and reading the leaderboard.
type QuizService struct {
	source        QuestionSource
	scores        *ScoreKeeper
	questionCount int
}

func NewQuizService(source QuestionSource, scores *ScoreKeeper, questionCount int) *QuizService {
	if questionCount <= 0 {
		questionCount = 10
	}
	return &QuizService{source: source, scores: scores, questionCount: questionCount}
}

// StartQuiz resolves the question set and launches a fresh session. The fetch
// is the only suspension point; the returned session is fully synchronous.
func (s *QuizService) StartQuiz(ctx context.Context, difficulty, category string) (*Session, error) {
	questions, err := s.source.FetchQuestions(ctx, s.questionCount, difficulty, category)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, domain.ErrNoQuestions
	}

	session := NewSession()
	if err := session.Start(questions, difficulty, category); err != nil {
		return nil, err
	}
	return session, nil
}

// FinishQuiz terminates the session if it is still running, finalizes it into
// a leaderboard entry, and returns the report plus the updated board.
func (s *QuizService) FinishQuiz(ctx context.Context, session *Session) (domain.Report, []domain.LeaderboardEntry, error) {
	if session.Status() == StatusInProgress {
		session.TerminateEarly()
	}
	entry, board, err := s.scores.Finalize(ctx, session)
	if err != nil {
		return domain.Report{}, nil, err
	}
	return domain.Report{Entry: entry, Answers: session.Answers()}, board, nil
}

// Leaderboard returns the persisted high score table.
func (s *QuizService) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return s.scores.Leaderboard(ctx)
}
