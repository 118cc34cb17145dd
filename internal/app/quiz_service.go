package app

import (
	"context"
	"fmt"

	"console-quiz/internal/domain"
)

// QuizRepository loads quiz content (from cache/backing store).
type QuizRepository interface {
	GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
}

// QuizService contains the quiz use cases.
type QuizService struct {
	quizzes QuizRepository
	runner  *Runner
}

func NewQuizService(quizzes QuizRepository, runner *Runner) *QuizService {
	return &QuizService{quizzes: quizzes, runner: runner}
}

// LoadBank fetches a quiz and validates it into a QuestionBank.
func (s *QuizService) LoadBank(ctx context.Context, quizID string) (domain.QuestionBank, error) {
	quiz, err := s.quizzes.GetQuiz(ctx, quizID)
	if err != nil {
		return domain.QuestionBank{}, fmt.Errorf("load quiz %q: %w", quizID, err)
	}
	return domain.NewQuestionBank(quiz)
}

// Play loads the quiz and runs it for one player. Users cannot play unknown or invalid quizzes.
func (s *QuizService) Play(ctx context.Context, quizID, playerName string) (domain.Session, error) {
	bank, err := s.LoadBank(ctx, quizID)
	if err != nil {
		return domain.Session{}, err
	}
	return s.runner.Run(ctx, bank, playerName)
}
