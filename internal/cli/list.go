package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/repricer/internal/display"
	"github.com/roach88/repricer/internal/model"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the reconciled product list",
		Long: `Show all monitored products with their pricing decisions.

Reads only the local reconciled copy; run "repricer refresh" first to pull
the remote authority's current view.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(rootOpts, false)
			if err != nil {
				return err
			}
			defer a.Close()

			records := a.store.All()
			pending := a.store.PendingCount()

			if rootOpts.Format == "json" {
				f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return f.Success(listPayload{Pending: pending, Products: records})
			}

			renderDashboard(cmd.OutOrStdout(), records, pending)
			return nil
		},
	}
}

type listPayload struct {
	Pending  int                   `json:"pending"`
	Products []model.ProductRecord `json:"products"`
}

// renderDashboard writes the text view of the product list.
func renderDashboard(w io.Writer, records []model.ProductRecord, pending int) {
	fmt.Fprintf(w, "%d products, %d pending\n\n", len(records), pending)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMY PRICE\tFLOOR\tCOMPETITOR\tMARGIN\tDECISION\tSTATUS\tACTION")
	for _, r := range records {
		competitor := "-"
		if r.CompetitorPrice > 0 {
			competitor = fmt.Sprintf("%s (%s)", display.FormatPrice(r.CompetitorPrice), r.CompetitorName)
		}

		margin := "-"
		if r.Decision == model.DecisionMatchPrice {
			if impact, ok := display.MarginImpact(r.MyPrice, r.CompetitorPrice); ok {
				margin = display.FormatMargin(impact)
			}
		}

		action := "-"
		if r.Actionable() {
			action = "approve"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			r.Name,
			display.FormatPrice(r.MyPrice),
			display.FormatPrice(r.FloorPrice),
			competitor,
			margin,
			display.BadgeLabel(r.Decision),
			r.Status,
			action,
		)
	}
	tw.Flush()
}
