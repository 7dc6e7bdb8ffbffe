package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/repricer/internal/gateway"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <product-id>...",
		Short: "Delete products from the dashboard",
		Long: `Delete the given products locally and ask the remote catalog to drop
them too.

The local deletion always stands. If the remote sync fails the command
still succeeds and prints a warning; the remote catalog may briefly keep
rows that are no longer shown here.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(rootOpts, true)
			if err != nil {
				return err
			}
			defer a.Close()

			a.selection.SelectAll(args)
			ids := a.selection.Selected()

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			summary := fmt.Sprintf("deleted %d product(s)", len(ids))

			if err := a.controller.DeleteSelected(cmd.Context(), ids); err != nil {
				if gateway.IsDeleteSync(err) {
					// Soft failure: records are gone locally, exit 0.
					return f.Warning(summary, err.Error())
				}
				return WrapExitError(ExitFailure, "delete failed", err)
			}
			return f.Success(summary)
		},
	}
}
