package memory

import (
	"context"
	"fmt"
	"slices"

	"console-quiz/internal/domain"
)

// DefaultQuizID names the built-in quiz.
const DefaultQuizID = "default"

// StaticQuizLoader serves quizzes compiled into the binary. Returned quizzes are copies,
// so callers cannot alter the table.
type StaticQuizLoader struct {
	quizzes map[string]domain.Quiz
}

func NewStaticQuizLoader(quizzes map[string]domain.Quiz) *StaticQuizLoader {
	return &StaticQuizLoader{quizzes: quizzes}
}

func (l *StaticQuizLoader) LoadQuiz(_ context.Context, quizID string) (domain.Quiz, error) {
	quiz, ok := l.quizzes[quizID]
	if !ok {
		return domain.Quiz{}, fmt.Errorf("built-in quiz %q: %w", quizID, domain.ErrQuizNotFound)
	}
	questions := make([]domain.Question, len(quiz.Questions))
	for i, q := range quiz.Questions {
		q.Options = slices.Clone(q.Options)
		questions[i] = q
	}
	quiz.Questions = questions
	return quiz, nil
}

// BuiltinQuizzes returns the quiz shipped with the binary, keyed by id.
func BuiltinQuizzes() map[string]domain.Quiz {
	return map[string]domain.Quiz{
		DefaultQuizID: {
			ID:    DefaultQuizID,
			Title: "General knowledge",
			Questions: []domain.Question{
				{
					ID:      "capital-france",
					Prompt:  "What is the capital of France?",
					Options: []string{"Berlin", "Madrid", "Paris", "Lisbon"},
					Correct: "C",
				},
				{
					ID:      "two-plus-two",
					Prompt:  "What is 2 + 2?",
					Options: []string{"3", "4", "5", "6"},
					Correct: "B",
				},
				{
					ID:      "red-planet",
					Prompt:  "Which planet is known as the Red Planet?",
					Options: []string{"Earth", "Mars", "Jupiter", "Saturn"},
					Correct: "B",
				},
			},
		},
	}
}
