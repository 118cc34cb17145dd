package cli

import (
	"fmt"

	"console-quiz/internal/domain"
	"console-quiz/internal/infra/file"
	"github.com/spf13/cobra"
)

// NewValidateCmd checks a question bank file without playing it.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a question bank file is well formed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quiz, err := file.ReadQuiz(args[0])
			if err != nil {
				return err
			}
			bank, err := domain.NewQuestionBank(quiz)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "quiz %q: %d questions OK\n", bank.QuizID(), bank.Len())
			return err
		},
	}
}
