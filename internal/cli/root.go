package cli

import (
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Execute runs the CLI.
func Execute() error {
	// .env is optional; real environment variables still win.
	_ = godotenv.Load()
	return newRootCmd(os.Stdin, os.Stdout).Execute()
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var configPath string
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}

	play := newPlayCmd(&configPath, in, out)

	cmd := &cobra.Command{
		Use:          "quiz",
		Short:        "Timed multiple-choice quiz in the terminal",
		SilenceUsage: true,
		RunE:         play.RunE,
	}
	cmd.SetIn(in)
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.Flags().AddFlagSet(play.Flags())
	cmd.AddCommand(play)
	cmd.AddCommand(NewMigrateCmd(&configPath))
	cmd.AddCommand(NewImportCmd(&configPath))
	cmd.AddCommand(NewValidateCmd())
	return cmd
}
