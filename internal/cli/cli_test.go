package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"console-quiz/internal/config"
	"console-quiz/internal/infra/memory"
	miniredis "github.com/alicebob/miniredis/v2"
	"go.uber.org/zap"
)

func TestPlayBuiltinQuiz(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	isolateEnv(t)
	t.Setenv("QUIZ_UI_COLOR", "never")

	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader("C\nB\nB\n"), &out)
	cmd.SetArgs([]string{"play", "--name", "Ann", "--config", missing})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("play: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Welcome, Ann!",
		"Question 1: What is the capital of France?",
		"Your final score: 3/3",
		"Thank you for playing, Ann!",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in output:\n%s", want, got)
		}
	}
}

func TestRootDefaultsToPlayWithBankFile(t *testing.T) {
	dir := t.TempDir()
	bank := writeFile(t, dir, "bank.yaml", validBank)
	isolateEnv(t)
	t.Setenv("QUIZ_UI_COLOR", "never")

	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader("Zed\nb\n"), &out)
	cmd.SetArgs([]string{"--bank", bank, "--config", filepath.Join(dir, "missing.yaml")})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("play: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Enter your name to start the quiz: ") {
		t.Fatalf("expected name prompt:\n%s", got)
	}
	if !strings.Contains(got, "Your final score: 1/1") || !strings.Contains(got, "Thank you for playing, Zed!") {
		t.Fatalf("unexpected output:\n%s", got)
	}
}

func TestBankFilesAreNeverServedFromRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	dir := t.TempDir()
	first := writeFile(t, dir, "first.yaml", "questions:\n  - prompt: First?\n    options: [x, y]\n    correct: A\n")
	second := writeFile(t, dir, "second.yaml", "questions:\n  - prompt: Second?\n    options: [x, y]\n    correct: B\n")
	isolateEnv(t)
	t.Setenv("QUIZ_UI_COLOR", "never")
	t.Setenv("QUIZ_REDIS_ADDR", mr.Addr())

	for _, tt := range []struct {
		bank   string
		prompt string
	}{
		{bank: first, prompt: "Question 1: First?"},
		{bank: second, prompt: "Question 1: Second?"},
	} {
		var out bytes.Buffer
		cmd := newRootCmd(strings.NewReader("Ann\nA\n"), &out)
		cmd.SetArgs([]string{"--bank", tt.bank, "--config", filepath.Join(dir, "missing.yaml")})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("play %s: %v", tt.bank, err)
		}
		if !strings.Contains(out.String(), tt.prompt) {
			t.Fatalf("expected %q when playing %s:\n%s", tt.prompt, tt.bank, out.String())
		}
	}
	if keys := mr.Keys(); len(keys) != 0 {
		t.Fatalf("bank file quizzes must not be cached in redis, found %v", keys)
	}
}

func TestBuiltinQuizIgnoresRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()
	mr.Set("quiz:"+memory.DefaultQuizID, `{"id":"default","questions":[{"prompt":"Stale?","options":["x","y"],"correct":"A"}]}`)

	cfg := config.Config{Redis: config.Redis{Addr: mr.Addr()}}
	repo, closeRepo, err := buildQuizRepository(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer closeRepo()

	quiz, err := repo.GetQuiz(context.Background(), memory.DefaultQuizID)
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	if quiz.Questions[0].Prompt != "What is the capital of France?" {
		t.Fatalf("expected built-in quiz, got %q", quiz.Questions[0].Prompt)
	}
}

func TestPlayRejectsInvalidColorMode(t *testing.T) {
	isolateEnv(t)
	t.Setenv("QUIZ_UI_COLOR", "rainbow")
	cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{})
	cmd.SetArgs([]string{"play", "--name", "Ann", "--config", filepath.Join(t.TempDir(), "missing.yaml")})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for invalid color mode")
	}
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", validBank)
	bad := writeFile(t, dir, "bad.yaml", "questions:\n  - prompt: Pick\n    options: [only]\n    correct: A\n")

	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(""), &out)
	cmd.SetArgs([]string{"validate", good})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("validate good: %v", err)
	}
	if strings.TrimSpace(out.String()) != `quiz "tiny": 1 questions OK` {
		t.Fatalf("unexpected output %q", out.String())
	}

	cmd = newRootCmd(strings.NewReader(""), &bytes.Buffer{})
	cmd.SetArgs([]string{"validate", bad})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestImportRequiresPostgres(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", validBank)
	isolateEnv(t)

	cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{})
	cmd.SetArgs([]string{"import", good, "--config", filepath.Join(dir, "missing.yaml")})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "postgres url not configured") {
		t.Fatalf("expected missing postgres error, got %v", err)
	}
}

func TestResolveQuizID(t *testing.T) {
	tests := []struct {
		name   string
		flag   string
		cfg    config.Config
		expect string
	}{
		{name: "flag wins", flag: "space", cfg: config.Config{Quiz: config.Quiz{ID: "other"}}, expect: "space"},
		{name: "config id", cfg: config.Config{Quiz: config.Quiz{ID: "other"}}, expect: "other"},
		{name: "bank file uses its own id", cfg: config.Config{Quiz: config.Quiz{BankPath: "bank.yaml"}}, expect: ""},
		{name: "builtin", expect: memory.DefaultQuizID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveQuizID(tt.flag, tt.cfg); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

const validBank = `id: tiny
questions:
  - prompt: What is 2 + 2?
    options: ["3", "4"]
    correct: B
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// isolateEnv keeps ambient QUIZ_* settings from pointing the commands at real stores.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DATABASE_URL", "QUIZ_POSTGRES_URL", "QUIZ_REDIS_ADDR", "QUIZ_QUIZ_ID", "QUIZ_QUIZ_BANK_PATH"} {
		t.Setenv(key, "")
	}
}
