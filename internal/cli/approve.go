package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/repricer/internal/controller"
)

// NewApproveCommand creates the approve command.
func NewApproveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <product-id>",
		Short: "Approve a pricing decision",
		Long: `Approve a product's pending pricing decision.

The record is marked APPROVED immediately, then the decision is confirmed
with the remote authority. If the remote call fails the status is reverted,
so an APPROVED badge always reflects a settled remote price change.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(rootOpts, true)
			if err != nil {
				return err
			}
			defer a.Close()

			id := args[0]
			if err := a.controller.Approve(cmd.Context(), id); err != nil {
				if errors.Is(err, controller.ErrUnknownProduct) {
					return WrapExitError(ExitCommandError, "cannot approve", err)
				}
				return WrapExitError(ExitFailure, "approve was not confirmed, status reverted", err)
			}

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				rec, _ := a.store.Get(id)
				return f.Success(rec)
			}
			return f.Success(fmt.Sprintf("approved %s", id))
		},
	}
}
