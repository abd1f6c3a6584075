package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"holidaze/internal/app"
	"holidaze/internal/availability"
)

func newQuoteCmd(o *options) *cobra.Command {
	var (
		venueID  string
		from, to string
		guests   int
		asJSON   bool
	)
	c := &cobra.Command{
		Use:   "quote",
		Short: "Run a date selection through the availability engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			dFrom, err := availability.ParseDate(from)
			if err != nil {
				return fmt.Errorf("invalid --from (want YYYY-MM-DD): %w", err)
			}
			dTo, err := availability.ParseDate(to)
			if err != nil {
				return fmt.Errorf("invalid --to (want YYYY-MM-DD): %w", err)
			}
			venues, err := o.venues()
			if err != nil {
				return err
			}
			q, err := app.NewQuoteService(venues).Quote(cmd.Context(), venueID, app.SelectionInput{DateFrom: dFrom, DateTo: dTo, Guests: guests})
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), q)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "venue:     %s\n", q.VenueID)
			fmt.Fprintf(out, "nights:    %d\n", q.Nights)
			fmt.Fprintf(out, "total:     %.2f (%.2f per night)\n", q.Selection.TotalCost, q.Price)
			fmt.Fprintf(out, "overlaps:  %t\n", q.Selection.Overlaps)
			if q.Bookable {
				fmt.Fprintln(out, "bookable:  yes")
				return nil
			}
			fmt.Fprintf(out, "bookable:  no (%s: %s)\n", q.Reason, q.Message)
			return nil
		},
	}
	c.Flags().StringVar(&venueID, "venue", "", "venue id")
	c.Flags().StringVar(&from, "from", "", "check-in date YYYY-MM-DD")
	c.Flags().StringVar(&to, "to", "", "check-out date YYYY-MM-DD")
	c.Flags().IntVar(&guests, "guests", 1, "number of guests")
	c.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	_ = c.MarkFlagRequired("venue")
	return c
}
