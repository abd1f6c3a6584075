// Package cli implements holidazectl, the operator tool for checking venue
// availability and reading the booking submission log.
package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"holidaze/internal/adapters/noroff"
	"holidaze/internal/app"
	"holidaze/internal/shared"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

type options struct {
	cfg     shared.Config
	baseURL string
	apiKey  string
}

func NewRootCmd() *cobra.Command {
	o := &options{cfg: shared.Load()}
	root := &cobra.Command{
		Use:          "holidazectl",
		Short:        "Check Holidaze venue availability and inspect booking submissions",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&o.baseURL, "base-url", o.cfg.NoroffBase, "Noroff API base URL")
	root.PersistentFlags().StringVar(&o.apiKey, "api-key", o.cfg.NoroffKey, "Noroff API key")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newQuoteCmd(o))
	root.AddCommand(newAvailabilityCmd(o))
	root.AddCommand(newSubmissionsCmd(o))
	root.AddCommand(newMigrateCmd(o))

	return root
}

// venues builds an uncached venue reader; the CLI always wants live data.
func (o *options) venues() (*app.VenueQueryService, error) {
	client, err := noroff.New(o.baseURL, o.apiKey, o.cfg.NoroffRPS)
	if err != nil {
		return nil, err
	}
	return app.NewVenueQueryService(client, nil, o.cfg.CacheTTL), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
