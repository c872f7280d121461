package app_test

import (
	"fmt"
	"testing"

	"space-trivia-service/internal/app"
	"space-trivia-service/internal/domain"
)

func TestStartRejectsEmptyQuestionSet(t *testing.T) {
	session := app.NewSession()
	if err := session.Start(nil, "easy", "science"); err != domain.ErrEmptyQuestionSet {
		t.Fatalf("expected ErrEmptyQuestionSet, got %v", err)
	}
	if session.Status() != app.StatusNotStarted {
		t.Fatalf("expected NotStarted after failed start, got %v", session.Status())
	}
}

func TestStartTwiceFails(t *testing.T) {
	session := startedSession(t, 1)
	if err := session.Start(questionSet(1), "easy", "science"); err != domain.ErrSessionStarted {
		t.Fatalf("expected ErrSessionStarted, got %v", err)
	}
}

func TestSubmitCorrectAnswer(t *testing.T) {
	session := startedSession(t, 1)

	session.SubmitAnswer(1) // correct index is always 1 in questionSet

	if session.Score() != 1 {
		t.Fatalf("expected score 1, got %d", session.Score())
	}
	record, ok := session.AnswerFor(0)
	if !ok {
		t.Fatalf("expected answer record for question 0")
	}
	if record.SelectedAnswer == nil || *record.SelectedAnswer != 1 || !record.IsCorrect || record.Skipped {
		t.Fatalf("unexpected record %+v", record)
	}
}

func TestSubmitTwiceKeepsFirstRecord(t *testing.T) {
	session := startedSession(t, 1)

	session.SubmitAnswer(0) // wrong
	session.SubmitAnswer(1) // would be correct, must be ignored

	if session.Score() != 0 {
		t.Fatalf("expected score 0 after repeated submit, got %d", session.Score())
	}
	answers := session.Answers()
	if len(answers) != 1 {
		t.Fatalf("expected 1 record, got %d", len(answers))
	}
	if *answers[0].SelectedAnswer != 0 || answers[0].IsCorrect {
		t.Fatalf("first submission was amended: %+v", answers[0])
	}
}

func TestSkipIsIdempotent(t *testing.T) {
	session := startedSession(t, 2)

	session.Skip()
	session.Skip()
	session.SubmitAnswer(1) // also ignored once a record exists

	answers := session.Answers()
	if len(answers) != 1 {
		t.Fatalf("expected 1 record, got %d", len(answers))
	}
	if !answers[0].Skipped || answers[0].SelectedAnswer != nil || answers[0].IsCorrect {
		t.Fatalf("unexpected skip record %+v", answers[0])
	}
}

func TestAdvancePastLastQuestionCompletes(t *testing.T) {
	session := startedSession(t, 2)

	session.SubmitAnswer(1)
	session.Advance()
	if session.CurrentIndex() != 1 {
		t.Fatalf("expected index 1, got %d", session.CurrentIndex())
	}
	session.SubmitAnswer(1)
	session.Advance()

	if session.Status() != app.StatusCompleted {
		t.Fatalf("expected Completed, got %v", session.Status())
	}
}

func TestCompletedIsTerminal(t *testing.T) {
	session := startedSession(t, 1)
	session.SubmitAnswer(1)
	session.Advance()

	session.SubmitAnswer(0)
	session.Skip()
	session.Advance()
	session.Retreat()
	session.ExpireTimer()
	session.TerminateEarly()

	if session.Status() != app.StatusCompleted {
		t.Fatalf("status changed after completion: %v", session.Status())
	}
	if session.Score() != 1 || len(session.Answers()) != 1 || session.CurrentIndex() != 0 {
		t.Fatalf("completed session mutated: score=%d answers=%d index=%d",
			session.Score(), len(session.Answers()), session.CurrentIndex())
	}
}

func TestRetreatUndoesMostRecentAnswer(t *testing.T) {
	session := startedSession(t, 3)

	session.SubmitAnswer(1)
	session.Advance()
	if session.Score() != 1 {
		t.Fatalf("expected score 1, got %d", session.Score())
	}

	session.Retreat()

	if session.CurrentIndex() != 0 {
		t.Fatalf("expected index back at 0, got %d", session.CurrentIndex())
	}
	if len(session.Answers()) != 0 {
		t.Fatalf("expected answer record removed, got %d records", len(session.Answers()))
	}
	if session.Score() != 0 {
		t.Fatalf("expected score decremented to 0, got %d", session.Score())
	}
}

func TestRetreatAtFirstQuestionIsNoop(t *testing.T) {
	session := startedSession(t, 2)
	session.SubmitAnswer(1)

	session.Retreat()

	if session.CurrentIndex() != 0 || len(session.Answers()) != 1 || session.Score() != 1 {
		t.Fatalf("retreat at index 0 mutated session: index=%d answers=%d score=%d",
			session.CurrentIndex(), len(session.Answers()), session.Score())
	}
}

func TestExpireTimerSubmitsPendingSelection(t *testing.T) {
	session := startedSession(t, 1)

	session.SelectAnswer(1)
	session.ExpireTimer()

	record, ok := session.AnswerFor(0)
	if !ok {
		t.Fatalf("expected a record after expiry")
	}
	if record.SelectedAnswer == nil || *record.SelectedAnswer != 1 || !record.IsCorrect || record.Skipped {
		t.Fatalf("expected pending selection submitted, got %+v", record)
	}
	if session.Status() != app.StatusInProgress {
		t.Fatalf("expiry must not advance or complete, got %v", session.Status())
	}
}

func TestExpireTimerSkipsWithoutSelection(t *testing.T) {
	session := startedSession(t, 1)

	session.ExpireTimer()
	session.ExpireTimer() // stale second expiry must be a no-op

	answers := session.Answers()
	if len(answers) != 1 || !answers[0].Skipped {
		t.Fatalf("expected single skip record, got %+v", answers)
	}
}

func TestSelectAnswerIgnoredAfterRecord(t *testing.T) {
	session := startedSession(t, 1)
	session.Skip()

	session.SelectAnswer(1)
	session.ExpireTimer()

	if len(session.Answers()) != 1 || session.Score() != 0 {
		t.Fatalf("selection after record leaked: answers=%d score=%d", len(session.Answers()), session.Score())
	}
}

func TestTerminateEarlySubmitsPendingSelection(t *testing.T) {
	session := startedSession(t, 3)

	session.SubmitAnswer(1)
	session.Advance()
	session.SelectAnswer(1)
	session.TerminateEarly()

	if session.Status() != app.StatusCompleted {
		t.Fatalf("expected Completed, got %v", session.Status())
	}
	if len(session.Answers()) != 2 || session.Score() != 2 {
		t.Fatalf("expected pending selection submitted before termination: answers=%d score=%d",
			len(session.Answers()), session.Score())
	}
}

func TestScoreMatchesCorrectRecords(t *testing.T) {
	session := startedSession(t, 4)

	session.SubmitAnswer(1)
	session.Advance()
	session.SubmitAnswer(0)
	session.Advance()
	session.Skip()
	session.Advance()
	session.SubmitAnswer(1)

	correct := 0
	for _, a := range session.Answers() {
		if a.IsCorrect {
			correct++
		}
	}
	if session.Score() != correct {
		t.Fatalf("score %d diverged from correct records %d", session.Score(), correct)
	}
	if session.Score() != 2 {
		t.Fatalf("expected score 2, got %d", session.Score())
	}
}

func questionSet(n int) []domain.Question {
	questions := make([]domain.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, domain.Question{
			ID:                 fmt.Sprintf("q%d", i+1),
			Text:               fmt.Sprintf("Question %d", i+1),
			Answers:            []string{"wrong", "right", "also wrong"},
			CorrectAnswerIndex: 1,
			Difficulty:         "easy",
			Category:           "science",
		})
	}
	return questions
}

func startedSession(t *testing.T, n int) *app.Session {
	t.Helper()
	session := app.NewSession()
	if err := session.Start(questionSet(n), "easy", "science"); err != nil {
		t.Fatalf("start session: %v", err)
	}
	return session
}
