package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/guess"
	"github.com/Makepad-fr/tada/internal/logger"
	"github.com/Makepad-fr/tada/internal/ui"
)

// NewGuessCommand builds the guess command. opts are passed to guess.New.
func NewGuessCommand(opts ...guess.Option) *cobra.Command {
	return &cobra.Command{
		Use:           "guess",
		Short:         "Guess the secret number between 1 and 100",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := guess.New(opts...)
			res, err := g.Play(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				if errors.Is(err, guess.ErrInputClosed) {
					logger.Debug("input closed", "attempts", res.Attempts)
				}
				return failure(err)
			}
			logger.Debug("won", "attempts", res.Attempts)
			return nil
		},
	}
}

// ExecuteGuess runs one game and returns the process exit code.
func ExecuteGuess(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, opts ...guess.Option) int {
	logger.Init(stderr, "warn")

	root := NewGuessCommand(opts...)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctx)
	code := exitCode(err)
	if err != nil {
		ui.Fail(stderr, err.Error())
		if code == ExitUsage {
			io.WriteString(stderr, "\n"+cmd.UsageString())
		}
	}
	return code
}
