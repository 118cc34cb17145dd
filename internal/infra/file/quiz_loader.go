package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"console-quiz/internal/domain"
	"gopkg.in/yaml.v3"
)

// QuizLoader reads a single quiz from a YAML or JSON file.
// A quiz without an id takes the file name (without extension) as its id.
type QuizLoader struct {
	path string
}

func NewQuizLoader(path string) *QuizLoader {
	return &QuizLoader{path: path}
}

// LoadQuiz returns the file's quiz when quizID is empty or matches its id.
func (l *QuizLoader) LoadQuiz(_ context.Context, quizID string) (domain.Quiz, error) {
	quiz, err := ReadQuiz(l.path)
	if err != nil {
		return domain.Quiz{}, err
	}
	if quizID != "" && quizID != quiz.ID {
		return domain.Quiz{}, fmt.Errorf("%s holds quiz %q, not %q: %w", l.path, quiz.ID, quizID, domain.ErrQuizNotFound)
	}
	return quiz, nil
}

// ReadQuiz decodes the quiz stored at path. JSON is accepted as a subset of YAML.
func ReadQuiz(path string) (domain.Quiz, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("read question bank: %w", err)
	}

	var quiz domain.Quiz
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&quiz); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Quiz{}, fmt.Errorf("%s: %w", path, domain.ErrEmptyQuiz)
		}
		return domain.Quiz{}, fmt.Errorf("parse question bank %s: %w", path, err)
	}
	if quiz.ID == "" {
		quiz.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return quiz, nil
}
