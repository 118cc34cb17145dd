package domain

import "errors"

var (
	// ErrQuizNotFound indicates the quiz content could not be loaded.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrEmptyQuiz is returned when a quiz has no questions to ask.
	ErrEmptyQuiz = errors.New("quiz has no questions")
	// ErrInvalidQuestion wraps every question validation failure.
	ErrInvalidQuestion = errors.New("invalid question")
	// ErrInputClosed is returned once the input worker has been torn down.
	ErrInputClosed = errors.New("input closed")
)
