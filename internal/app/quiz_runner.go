package app

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"console-quiz/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnswerDeadline is how long the player has to answer each question.
const AnswerDeadline = 15 * time.Second

// DefaultPlayerName is used when the player enters an empty name.
const DefaultPlayerName = "Player"

// Presenter renders the quiz to the player.
type Presenter interface {
	AskName()
	Welcome(playerName string)
	Question(number int, q domain.Question, deadline time.Duration)
	Correct()
	Incorrect(correctOption string)
	TimedOut(correctOption string)
	CaptureFailed()
	Summary(session domain.Session, total int)
}

// Runner drives a single player through a question bank.
type Runner struct {
	in       io.Reader
	view     Presenter
	clock    Clock
	deadline time.Duration
	log      *zap.Logger
	newID    func() string
}

type RunnerOption func(*Runner)

// WithClock swaps the clock used for deadlines and timestamps.
func WithClock(clock Clock) RunnerOption {
	return func(r *Runner) { r.clock = clock }
}

func WithLogger(log *zap.Logger) RunnerOption {
	return func(r *Runner) { r.log = log }
}

// WithSessionIDs overrides how session ids are generated.
func WithSessionIDs(newID func() string) RunnerOption {
	return func(r *Runner) { r.newID = newID }
}

func NewRunner(in io.Reader, view Presenter, opts ...RunnerOption) *Runner {
	r := &Runner{
		in:       in,
		view:     view,
		clock:    SystemClock,
		deadline: AnswerDeadline,
		log:      zap.NewNop(),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run asks every question in bank order and renders the summary exactly once.
// An empty playerName makes the runner prompt for it first. The returned error is
// non-nil only when ctx was canceled; the session then holds the questions resolved so far.
func (r *Runner) Run(ctx context.Context, bank domain.QuestionBank, playerName string) (domain.Session, error) {
	in := startInputWorker(r.in)
	defer in.stop()

	var err error
	if playerName == "" {
		playerName, err = r.askName(ctx, in)
		if err != nil {
			return domain.Session{}, err
		}
	}

	session := domain.NewSession(r.newID(), playerName, r.clock.Now())
	log := r.log.With(zap.String("session", session.ID), zap.String("quiz", bank.QuizID()))
	log.Info("quiz started", zap.Int("questions", bank.Len()))

	r.view.Welcome(playerName)
	for i, q := range bank.Questions() {
		if err = ctx.Err(); err != nil {
			break
		}
		session, err = r.step(ctx, log, in, session, i+1, q)
		if err != nil {
			break
		}
	}

	in.stop()
	session = session.Finish(r.clock.Now())
	r.view.Summary(session, bank.Len())
	log.Info("quiz finished", zap.Int("score", session.Score), zap.Int("answered", len(session.Results)), zap.Error(err))
	return session, err
}

// step resolves one question and returns the session with its record appended.
func (r *Runner) step(ctx context.Context, log *zap.Logger, in *inputWorker, session domain.Session, number int, q domain.Question) (domain.Session, error) {
	r.view.Question(number, q, r.deadline)

	raw, err := r.awaitAnswer(ctx, in)
	var rec domain.AnswerRecord
	switch {
	case err == nil:
		rec = q.Grade(raw)
		if rec.IsCorrect {
			r.view.Correct()
		} else {
			r.view.Incorrect(q.Correct)
		}
	case errors.Is(err, errAnswerTimeout):
		rec = q.Unanswered(domain.OutcomeTimedOut)
		r.view.TimedOut(q.Correct)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return session, err
	default:
		log.Warn("answer capture failed", zap.Int("question", number), zap.Error(err))
		rec = q.Unanswered(domain.OutcomeCaptureError)
		r.view.CaptureFailed()
	}

	log.Debug("question resolved",
		zap.Int("question", number),
		zap.String("outcome", string(rec.Outcome)),
		zap.String("given", rec.GivenOption),
		zap.Bool("correct", rec.IsCorrect),
	)
	return session.Record(rec), nil
}

// awaitAnswer races one line of input against the answer deadline.
func (r *Runner) awaitAnswer(ctx context.Context, in *inputWorker) (string, error) {
	timer := r.clock.NewTimer(r.deadline)
	defer timer.Stop()

	reply, err := in.request(ctx, timer.C())
	if err != nil {
		return "", err
	}
	select {
	case res := <-reply:
		return res.line, res.err
	case <-timer.C():
		return "", errAnswerTimeout
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (r *Runner) askName(ctx context.Context, in *inputWorker) (string, error) {
	r.view.AskName()
	reply, err := in.request(ctx, nil)
	if err != nil {
		return "", err
	}
	select {
	case res := <-reply:
		name := strings.TrimSpace(res.line)
		if res.err != nil {
			r.log.Debug("reading player name", zap.Error(res.err))
		}
		if name == "" {
			name = DefaultPlayerName
		}
		return name, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
