package domain

import (
	"fmt"
	"slices"
	"strings"
)

// maxOptions keeps every label inside A..Z.
const maxOptions = 26

// QuestionBank is an ordered, validated and immutable sequence of questions.
type QuestionBank struct {
	quizID    string
	title     string
	questions []Question
}

// NewQuestionBank validates quiz and takes a private copy of its questions.
func NewQuestionBank(quiz Quiz) (QuestionBank, error) {
	if len(quiz.Questions) == 0 {
		return QuestionBank{}, fmt.Errorf("quiz %q: %w", quiz.ID, ErrEmptyQuiz)
	}
	questions := make([]Question, 0, len(quiz.Questions))
	for i, q := range quiz.Questions {
		if err := q.Validate(); err != nil {
			return QuestionBank{}, fmt.Errorf("quiz %q question %d: %w", quiz.ID, i+1, err)
		}
		q.Options = slices.Clone(q.Options)
		questions = append(questions, q)
	}
	return QuestionBank{quizID: quiz.ID, title: quiz.Title, questions: questions}, nil
}

// Validate checks the prompt, the option count and that Correct names one of the options.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("%w: empty prompt", ErrInvalidQuestion)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w: need at least 2 options, got %d", ErrInvalidQuestion, len(q.Options))
	}
	if len(q.Options) > maxOptions {
		return fmt.Errorf("%w: at most %d options allowed, got %d", ErrInvalidQuestion, maxOptions, len(q.Options))
	}
	if len(q.Correct) != 1 {
		return fmt.Errorf("%w: correct option must be a single label, got %q", ErrInvalidQuestion, q.Correct)
	}
	if !slices.Contains(q.Labels(), q.Correct) {
		return fmt.Errorf("%w: correct option %q is not one of %s", ErrInvalidQuestion, q.Correct, strings.Join(q.Labels(), ", "))
	}
	return nil
}

func (b QuestionBank) QuizID() string { return b.quizID }

func (b QuestionBank) Title() string { return b.title }

// Len returns the number of questions.
func (b QuestionBank) Len() int { return len(b.questions) }

// Questions returns a copy of the questions in order.
func (b QuestionBank) Questions() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out
}
