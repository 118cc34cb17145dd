package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"console-quiz/internal/app"
	"console-quiz/internal/config"
	"console-quiz/internal/infra/memory"
	"console-quiz/internal/logger"
	"console-quiz/internal/transport/console"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type playOptions struct {
	name     string
	quizID   string
	bankPath string
}

func newPlayCmd(configPath *string, in io.Reader, out io.Writer) *cobra.Command {
	var opts playOptions
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a quiz in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), *configPath, opts, in, out)
		},
	}
	cmd.Flags().StringVar(&opts.name, "name", "", "player name (prompted when empty)")
	cmd.Flags().StringVar(&opts.quizID, "quiz", "", "quiz id to play")
	cmd.Flags().StringVar(&opts.bankPath, "bank", "", "path to a YAML question bank")
	return cmd
}

func runPlay(ctx context.Context, configPath string, opts playOptions, in io.Reader, out io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if opts.bankPath != "" {
		cfg.Quiz.BankPath = opts.bankPath
	}

	log, err := logger.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	useColor, err := console.ResolveColor(cfg.UI.Color, out)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	quizzes, closeRepo, err := buildQuizRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	runner := app.NewRunner(in, console.NewView(out, !useColor), app.WithLogger(log))
	service := app.NewQuizService(quizzes, runner)

	quizID := resolveQuizID(opts.quizID, cfg)
	session, err := service.Play(ctx, quizID, opts.name)
	if errors.Is(err, context.Canceled) {
		log.Info("quiz interrupted", zap.String("session", session.ID), zap.Int("answered", len(session.Results)))
		return nil
	}
	if err != nil {
		return err
	}
	log.Info("quiz finished",
		zap.String("session", session.ID),
		zap.String("quiz", quizID),
		zap.Int("score", session.Score),
		zap.Int("questions", len(session.Results)),
	)
	return nil
}

// resolveQuizID picks the quiz to play. A bank file holds one quiz, so its own id is used
// unless one was asked for explicitly.
func resolveQuizID(flagID string, cfg config.Config) string {
	switch {
	case flagID != "":
		return flagID
	case cfg.Quiz.ID != "":
		return cfg.Quiz.ID
	case cfg.Quiz.BankPath != "":
		return ""
	default:
		return memory.DefaultQuizID
	}
}
