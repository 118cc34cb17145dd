package cli

import (
	"context"
	"fmt"
	"io"

	"console-quiz/internal/config"
	"console-quiz/internal/domain"
	"console-quiz/internal/infra/file"
	"console-quiz/internal/infra/postgres"
	"github.com/spf13/cobra"
)

// NewImportCmd stores a YAML question bank in Postgres.
func NewImportCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Validate a question bank file and upsert it into Postgres",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return runImport(cmd.Context(), cfg, args[0], cmd.OutOrStdout())
		},
	}
}

func runImport(ctx context.Context, cfg config.Config, path string, out io.Writer) error {
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}
	quiz, err := file.ReadQuiz(path)
	if err != nil {
		return err
	}
	bank, err := domain.NewQuestionBank(quiz)
	if err != nil {
		return err
	}

	db := postgres.OpenDB(cfg.Postgres.URL)
	defer db.Close()

	if err := postgres.NewQuizWriter(db).SaveQuiz(ctx, quiz); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "imported quiz %q: %d questions\n", bank.QuizID(), bank.Len())
	return err
}
