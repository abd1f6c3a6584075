package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"holidaze/internal/availability"
)

func newAvailabilityCmd(o *options) *cobra.Command {
	var (
		venueID  string
		from, to string
		days     int
	)
	c := &cobra.Command{
		Use:   "availability",
		Short: "List the blocked days of a venue",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := availability.ParseDate(from)
			if err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			if start.IsZero() {
				start = availability.Day(time.Now())
			}
			end, err := availability.ParseDate(to)
			if err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}
			if end.IsZero() {
				end = availability.AddDays(start, days)
			}
			if end.Before(start) {
				return fmt.Errorf("window end %s is before start %s", end.Format(time.DateOnly), start.Format(time.DateOnly))
			}
			if availability.Nights(start, end) >= availability.MaxWindowDays {
				return fmt.Errorf("window is limited to %d days", availability.MaxWindowDays)
			}

			venues, err := o.venues()
			if err != nil {
				return err
			}
			cal, err := venues.BlockedDays(cmd.Context(), venueID, start, end)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s..%s: %d blocked day(s)\n", cal.VenueID, cal.From.Format(time.DateOnly), cal.To.Format(time.DateOnly), len(cal.BlockedDays))
			for _, d := range cal.BlockedDays {
				fmt.Fprintln(out, d.Format(time.DateOnly))
			}
			return nil
		},
	}
	c.Flags().StringVar(&venueID, "venue", "", "venue id")
	c.Flags().StringVar(&from, "from", "", "window start YYYY-MM-DD (default today)")
	c.Flags().StringVar(&to, "to", "", "window end YYYY-MM-DD")
	c.Flags().IntVar(&days, "days", 30, "window length when --to is not given")
	_ = c.MarkFlagRequired("venue")
	return c
}
