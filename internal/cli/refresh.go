package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRefreshCommand creates the refresh command.
func NewRefreshCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Pull the remote authority's current view",
		Long: `Replace the local product list wholesale with the remote authority's
current view. On failure the local list is left untouched.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(rootOpts, true)
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := a.controller.Refresh(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "refresh failed, local list unchanged", err)
			}

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return f.Success(map[string]int{"products": n})
			}
			return f.Success(fmt.Sprintf("refreshed %d product(s)", n))
		},
	}
}
