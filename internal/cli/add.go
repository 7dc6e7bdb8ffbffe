package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/repricer/internal/controller"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		name  string
		price float64
		floor float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Enroll a new product for monitoring",
		Long: `Enroll a product with the remote monitoring workflow.

On success a provisional record appears immediately with a HOLD decision;
the next refresh brings the authority's analysis. If enrollment is
rejected, nothing is added locally.

Example:
  repricer add --name "Sony WH-1000XM5" --price 25000 --floor 22000`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(rootOpts, true)
			if err != nil {
				return err
			}
			defer a.Close()

			rec, err := a.controller.AddProduct(cmd.Context(), controller.AddInput{
				Name:       name,
				MyPrice:    price,
				FloorPrice: floor,
			})
			if err != nil {
				return WrapExitError(ExitFailure, "failed to add product", err)
			}

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return f.Success(rec)
			}
			return f.Success(fmt.Sprintf("enrolled %q (id %s)", rec.Name, rec.ID))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product display name (required)")
	cmd.Flags().Float64Var(&price, "price", 0, "current listed price (required)")
	cmd.Flags().Float64Var(&floor, "floor", 0, "minimum acceptable price")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}
