package domain

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// NoAnswer is the given-option sentinel recorded when the player supplied nothing usable.
const NoAnswer = ""

// Outcome describes how a question was resolved.
type Outcome string

const (
	OutcomeAnswered     Outcome = "answered"
	OutcomeTimedOut     Outcome = "timed_out"
	OutcomeCaptureError Outcome = "capture_error"
)

// Question models an MCQ question. Options are labeled A, B, C… by position and
// Correct holds the upper-case label of the right one.
type Question struct {
	ID      string   `json:"id,omitempty" yaml:"id,omitempty"`
	Prompt  string   `json:"prompt" yaml:"prompt"`
	Options []string `json:"options" yaml:"options"`
	Correct string   `json:"correct" yaml:"correct"`
}

// Quiz is a collection of questions.
type Quiz struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title,omitempty" yaml:"title,omitempty"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// OptionLabel returns the label for the option at index i (0 -> "A").
func OptionLabel(i int) string {
	return string(rune('A' + i))
}

// Labels lists the labels of all options in order.
func (q Question) Labels() []string {
	labels := make([]string, len(q.Options))
	for i := range q.Options {
		labels[i] = OptionLabel(i)
	}
	return labels
}

// Grade classifies a raw line of player input against the question.
// Only the first character of the trimmed, upper-cased input is significant.
func (q Question) Grade(raw string) AnswerRecord {
	given := FirstOption(NormalizeAnswer(raw))
	return AnswerRecord{
		QuestionText:  q.Prompt,
		CorrectOption: q.Correct,
		GivenOption:   given,
		IsCorrect:     given != NoAnswer && given == q.Correct,
		Outcome:       OutcomeAnswered,
	}
}

// Unanswered builds the record for a question that never received usable input.
func (q Question) Unanswered(outcome Outcome) AnswerRecord {
	return AnswerRecord{
		QuestionText:  q.Prompt,
		CorrectOption: q.Correct,
		GivenOption:   NoAnswer,
		Outcome:       outcome,
	}
}

// NormalizeAnswer trims surrounding whitespace and upper-cases the input.
func NormalizeAnswer(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// FirstOption returns the first character of normalized input, or NoAnswer when empty.
func FirstOption(normalized string) string {
	if normalized == "" {
		return NoAnswer
	}
	r, _ := utf8.DecodeRuneInString(normalized)
	return string(r)
}

// AnswerRecord is the immutable outcome of one question.
type AnswerRecord struct {
	QuestionText  string  `json:"questionText"`
	CorrectOption string  `json:"correctOption"`
	GivenOption   string  `json:"givenOption"`
	IsCorrect     bool    `json:"isCorrect"`
	Outcome       Outcome `json:"outcome"`
}

// Skipped reports whether the record carries the NoAnswer sentinel.
func (r AnswerRecord) Skipped() bool {
	return r.GivenOption == NoAnswer
}

// Session is one player's run through a question bank.
// Values are updated by Record, which returns a new Session and leaves the receiver untouched.
type Session struct {
	ID         string         `json:"id"`
	PlayerName string         `json:"playerName"`
	Score      int            `json:"score"`
	Results    []AnswerRecord `json:"results"`
	StartedAt  time.Time      `json:"startedAt"`
	FinishedAt time.Time      `json:"finishedAt"`
}

func NewSession(id, playerName string, startedAt time.Time) Session {
	return Session{
		ID:         id,
		PlayerName: playerName,
		StartedAt:  startedAt,
	}
}

// Record appends rec and bumps the score when it is correct.
func (s Session) Record(rec AnswerRecord) Session {
	s.Results = append(slices.Clip(s.Results), rec)
	if rec.IsCorrect {
		s.Score++
	}
	return s
}

// Finish marks the session read-only from this point on.
func (s Session) Finish(at time.Time) Session {
	s.FinishedAt = at
	return s
}

// Finished reports whether Finish has been called.
func (s Session) Finished() bool {
	return !s.FinishedAt.IsZero()
}
