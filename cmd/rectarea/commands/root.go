package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"rectarea/internal/app"
	"rectarea/internal/ctxlog"
)

// NewRootCmd returns the rectarea command. Its streams come from the command,
// so callers may redirect them with SetIn and SetOut.
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rectarea",
		Short: "Compute the area of a rectangle from two integer dimensions",
		Args:  cobra.NoArgs,
		// Output is a fixed contract; errors are reported by App or by main.
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app.FromConfig(app.Config{
				In:  cmd.InOrStdin(),
				Out: cmd.OutOrStdout(),
			})
			return a.Run(cmd.Context())
		},
	}
}

func Execute() error {
	ctx := ctxlog.WithLogger(context.Background(), slog.Default())
	return NewRootCmd().ExecuteContext(ctx)
}
