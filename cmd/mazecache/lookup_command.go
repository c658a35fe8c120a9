package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mazecache/internal/api"
	"mazecache/internal/catalog"
	"mazecache/internal/config"
	"mazecache/internal/resolve"
	"mazecache/internal/services"
)

func newLookupCommand(ctx *cmdEnv) *cobra.Command {
	var (
		name       string
		tvmazeID   int64
		tvdbID     int64
		tvrageID   int64
		year       int
		network    string
		country    string
		language   string
		cachedOnly bool
		episodes   bool
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "lookup [title]",
		Short: "Resolve a series through the metadata cache",
		Long: `Resolve a series by title or identifier. Cached records are served
directly; anything missing or stale is fetched from TVMaze and stored for the
next lookup. A lookup that matches nothing prints a notice and exits zero.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := resolve.SeriesQuery{
				Name:     name,
				TVMazeID: tvmazeID,
				TVDBID:   tvdbID,
				TVRageID: tvrageID,
				Year:     year,
				Network:  network,
				Country:  country,
				Language: language,
			}
			if len(args) == 1 {
				query.Title = strings.TrimSpace(args[0])
			}

			return ctx.withResolver(func(cfg *config.Config, store *catalog.Store, resolver *resolve.Resolver) error {
				series, err := resolver.ResolveSeries(cmd.Context(), query, cachedOnly)
				if err != nil {
					return describeLookupError(cmd, err)
				}
				if series == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "No series matched the lookup")
					return nil
				}
				if jsonOut {
					return writeJSON(cmd.OutOrStdout(), api.SeriesResponse{Series: api.FromSeries(series, episodes)})
				}
				out := cmd.OutOrStdout()
				renderSeriesDetail(out, series)
				if episodes {
					fmt.Fprintln(out)
					renderEpisodeTable(out, series.Episodes)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Exact series name (takes precedence over the title argument)")
	cmd.Flags().Int64Var(&tvmazeID, "tvmaze-id", 0, "TVMaze series ID")
	cmd.Flags().Int64Var(&tvdbID, "tvdb-id", 0, "TheTVDB series ID")
	cmd.Flags().Int64Var(&tvrageID, "tvrage-id", 0, "TVRage series ID")
	cmd.Flags().IntVar(&year, "year", 0, "Premiere year to disambiguate remote search")
	cmd.Flags().StringVar(&network, "network", "", "Network name to disambiguate remote search")
	cmd.Flags().StringVar(&country, "country", "", "Network country code to disambiguate remote search")
	cmd.Flags().StringVar(&language, "language", "", "Language to disambiguate remote search")
	cmd.Flags().BoolVar(&cachedOnly, "cached-only", false, "Serve from the cache only, never contact TVMaze")
	cmd.Flags().BoolVar(&episodes, "episodes", false, "Include the cached episode index")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of formatted text")
	return cmd
}

// describeLookupError keeps expected negative outcomes friendly: a cache-only
// miss is a notice, not a failure. Everything else propagates as an error.
func describeLookupError(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, services.ErrNotFoundInCache) || errors.Is(err, services.ErrSeriesNotFound) {
		fmt.Fprintln(cmd.OutOrStdout(), "No series matched the lookup")
		return nil
	}
	return err
}
