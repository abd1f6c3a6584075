package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	mysqlrepo "holidaze/internal/storage/mysql"
)

func (o *options) openDB(cmd *cobra.Command) (*sql.DB, error) {
	if o.cfg.MySQLDSN == "" {
		return nil, errors.New("MYSQL_DSN is not set")
	}
	return mysqlrepo.Open(cmd.Context(), o.cfg.MySQLDSN)
}

func newSubmissionsCmd(o *options) *cobra.Command {
	var (
		venueID string
		limit   int
	)
	c := &cobra.Command{
		Use:   "submissions",
		Short: "Show the latest booking submissions for a venue",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := o.openDB(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			repo := mysqlrepo.New(db)
			subs, err := repo.ListByVenue(cmd.Context(), venueID, limit)
			if err != nil {
				return err
			}
			counts, err := repo.CountByOutcome(cmd.Context(), venueID)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CREATED\tCUSTOMER\tFROM\tTO\tGUESTS\tOUTCOME\tREASON")
			for _, s := range subs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
					s.CreatedAt.Format(time.RFC3339), s.Customer, dateOrDash(s.DateFrom), dateOrDash(s.DateTo), s.Guests, s.Outcome, s.Reason)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%v\n", counts)
			return nil
		},
	}
	c.Flags().StringVar(&venueID, "venue", "", "venue id")
	c.Flags().IntVar(&limit, "limit", 20, "rows to show")
	_ = c.MarkFlagRequired("venue")
	return c
}

func newMigrateCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the submission log tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := o.openDB(cmd)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := mysqlrepo.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func dateOrDash(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.DateOnly)
}
