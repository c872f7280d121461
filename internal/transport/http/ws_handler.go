package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"space-trivia-service/internal/app"
	"space-trivia-service/internal/domain"
)

// WSHandler upgrades browser connections and drives one quiz session per
// connection: the client sends user actions, the server owns the session
// state machine and the per-question countdown.
type WSHandler struct {
	service            *app.QuizService
	secondsPerQuestion int
	timerInterval      time.Duration
	upgrader           websocket.Upgrader
}

func NewWSHandler(service *app.QuizService, secondsPerQuestion int) *WSHandler {
	return newWSHandler(service, secondsPerQuestion, time.Second)
}

// NewWSHandlerWithTimerInterval is test-only for fast countdowns.
func NewWSHandlerWithTimerInterval(service *app.QuizService, secondsPerQuestion int, interval time.Duration) *WSHandler {
	return newWSHandler(service, secondsPerQuestion, interval)
}

func newWSHandler(service *app.QuizService, secondsPerQuestion int, interval time.Duration) *WSHandler {
	if secondsPerQuestion <= 0 {
		secondsPerQuestion = 30
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &WSHandler{
		service:            service,
		secondsPerQuestion: secondsPerQuestion,
		timerInterval:      interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type startPayload struct {
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
}

type answerIndexPayload struct {
	Index int `json:"index"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// questionView is what the client sees for the current question. The correct
// answer index stays server-side until the question is resolved.
type questionView struct {
	Index      int      `json:"index"`
	Total      int      `json:"total"`
	Score      int      `json:"score"`
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Answers    []string `json:"answers"`
	Difficulty string   `json:"difficulty"`
	Category   string   `json:"category"`
	Answered   bool     `json:"answered"`
}

type answerResultView struct {
	QuestionIndex      int  `json:"questionIndex"`
	SelectedAnswer     *int `json:"selectedAnswer"`
	Correct            bool `json:"correct"`
	CorrectAnswerIndex int  `json:"correctAnswerIndex"`
	Skipped            bool `json:"skipped"`
	Score              int  `json:"score"`
}

type timerPayload struct {
	Remaining int `json:"remaining"`
}

type timeUpPayload struct {
	QuestionIndex int `json:"questionIndex"`
}

type completedPayload struct {
	Report      domain.Report             `json:"report"`
	Leaderboard []domain.LeaderboardEntry `json:"leaderboard"`
}

// ServeWS wires a websocket connection into the quiz use cases.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	send := make(chan outboundMessage[any], 16)
	writerDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	// The timer emits from its own goroutine, possibly after the read loop
	// has ended. The mutex makes closing the send channel safe: emitClosed
	// is flipped under it, so no emit can be mid-send when close(send) runs.
	// The closed channel unblocks an emit stuck on a full buffer.
	var emitMu sync.Mutex
	emitClosed := false
	closed := make(chan struct{})
	emit := func(msg outboundMessage[any]) {
		emitMu.Lock()
		defer emitMu.Unlock()
		if emitClosed {
			return
		}
		select {
		case send <- msg:
		case <-closed:
		}
	}

	g := newGame(h.service, h.secondsPerQuestion, h.timerInterval, emit)

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		g.dispatch(r.Context(), inbound)
	}

	// Unblock any emit stuck on a full buffer before taking the game mutex
	// in shutdown; a timer callback may be holding it mid-emit. Flipping
	// emitClosed under the mutex then guarantees no emit is in flight when
	// the send channel closes.
	close(closed)
	g.shutdown()
	emitMu.Lock()
	emitClosed = true
	emitMu.Unlock()
	close(send)
	<-writerDone
}

// game holds the per-connection quiz state: the session and its countdown.
// The game mutex serializes client messages with timer callbacks; the epoch
// counter identifies which countdown a callback belongs to, so an expiry that
// raced a submit or navigation is discarded instead of resolving the wrong
// question.
type game struct {
	mu       sync.Mutex
	service  *app.QuizService
	seconds  int
	emit     func(outboundMessage[any])
	session  *app.Session
	timer    *app.CountdownTimer
	epoch    uint64
	finished bool
}

func newGame(service *app.QuizService, seconds int, interval time.Duration, emit func(outboundMessage[any])) *game {
	return &game{
		service: service,
		seconds: seconds,
		emit:    emit,
		timer:   app.NewCountdownTimerWithInterval(interval),
	}
}

func (g *game) dispatch(ctx context.Context, msg inboundMessage) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch msg.Type {
	case "start":
		var payload startPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			g.sendError("invalid start payload")
			return
		}
		g.start(ctx, payload.Difficulty, payload.Category)
	case "select":
		var payload answerIndexPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			g.sendError("invalid select payload")
			return
		}
		if g.session != nil {
			g.session.SelectAnswer(payload.Index)
		}
	case "submit":
		var payload answerIndexPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			g.sendError("invalid submit payload")
			return
		}
		g.submit(payload.Index)
	case "skip":
		g.skip()
	case "advance":
		g.advance(ctx)
	case "retreat":
		g.retreat()
	case "finish":
		g.finish(ctx)
	default:
		g.sendError("unsupported message type")
	}
}

func (g *game) start(ctx context.Context, difficulty, category string) {
	if g.session != nil {
		g.sendError("quiz already started")
		return
	}
	session, err := g.service.StartQuiz(ctx, difficulty, category)
	if err != nil {
		g.sendError(err.Error())
		return
	}
	g.session = session
	g.enterQuestion()
}

func (g *game) submit(index int) {
	if g.session == nil {
		g.sendError("quiz not started")
		return
	}
	g.session.SubmitAnswer(index)
	g.stopCountdown()
	g.sendAnswerResult()
}

func (g *game) skip() {
	if g.session == nil {
		g.sendError("quiz not started")
		return
	}
	g.session.Skip()
	g.stopCountdown()
	g.sendAnswerResult()
}

func (g *game) advance(ctx context.Context) {
	if g.session == nil {
		g.sendError("quiz not started")
		return
	}
	g.session.Advance()
	if g.session.Status() == app.StatusCompleted {
		g.finish(ctx)
		return
	}
	g.enterQuestion()
}

func (g *game) retreat() {
	if g.session == nil {
		g.sendError("quiz not started")
		return
	}
	g.session.Retreat()
	g.enterQuestion()
}

func (g *game) finish(ctx context.Context) {
	if g.session == nil {
		g.sendError("quiz not started")
		return
	}
	if g.finished {
		return
	}
	g.stopCountdown()

	report, board, err := g.service.FinishQuiz(ctx, g.session)
	if err != nil {
		g.sendError(err.Error())
		return
	}
	g.finished = true
	g.emit(outboundMessage[any]{Type: "completed", Payload: completedPayload{
		Report:      report,
		Leaderboard: board,
	}})
}

// enterQuestion sends the current question and starts the countdown, unless
// the question already has a record (revisited via navigation) or the game is
// over.
func (g *game) enterQuestion() {
	if g.finished || g.session.Status() != app.StatusInProgress {
		return
	}
	question, ok := g.session.CurrentQuestion()
	if !ok {
		return
	}
	index := g.session.CurrentIndex()
	_, answered := g.session.AnswerFor(index)

	g.emit(outboundMessage[any]{Type: "question", Payload: questionView{
		Index:      index,
		Total:      g.session.TotalQuestions(),
		Score:      g.session.Score(),
		ID:         question.ID,
		Text:       question.Text,
		Answers:    question.Answers,
		Difficulty: question.Difficulty,
		Category:   question.Category,
		Answered:   answered,
	}})

	if answered {
		g.stopCountdown()
		return
	}

	g.epoch++
	epoch := g.epoch
	g.timer.Start(g.seconds,
		func(remaining int) { g.tick(epoch, remaining) },
		func() { g.expire(epoch) },
	)
}

// stopCountdown invalidates any in-flight timer callback before cancelling.
// Callers hold the game mutex.
func (g *game) stopCountdown() {
	g.epoch++
	g.timer.Cancel()
}

func (g *game) sendAnswerResult() {
	index := g.session.CurrentIndex()
	record, ok := g.session.AnswerFor(index)
	if !ok {
		return
	}
	question, _ := g.session.CurrentQuestion()
	g.emit(outboundMessage[any]{Type: "answerResult", Payload: answerResultView{
		QuestionIndex:      index,
		SelectedAnswer:     record.SelectedAnswer,
		Correct:            record.IsCorrect,
		CorrectAnswerIndex: question.CorrectAnswerIndex,
		Skipped:            record.Skipped,
		Score:              g.session.Score(),
	}})
}

func (g *game) sendError(message string) {
	g.emit(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: message}})
}

func (g *game) tick(epoch uint64, remaining int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if epoch != g.epoch {
		return
	}
	g.emit(outboundMessage[any]{Type: "timer", Payload: timerPayload{Remaining: remaining}})
}

func (g *game) expire(epoch uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if epoch != g.epoch || g.finished || g.session == nil {
		return
	}
	g.epoch++
	index := g.session.CurrentIndex()
	g.session.ExpireTimer()
	g.emit(outboundMessage[any]{Type: "timeUp", Payload: timeUpPayload{QuestionIndex: index}})
	g.sendAnswerResult()
}

func (g *game) shutdown() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopCountdown()
}
