package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mazecache/internal/api"
	"mazecache/internal/catalog"
	"mazecache/internal/config"
	"mazecache/internal/resolve"
)

func newEpisodeCommand(ctx *cmdEnv) *cobra.Command {
	var (
		name       string
		tvmazeID   int64
		season     int
		number     int
		cachedOnly bool
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "episode [title]",
		Short: "Resolve one episode by season and number",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := resolve.EpisodeQuery{
				SeriesQuery: resolve.SeriesQuery{
					Name:     name,
					TVMazeID: tvmazeID,
				},
				Season:  season,
				Episode: number,
			}
			if len(args) == 1 {
				query.Title = strings.TrimSpace(args[0])
			}

			return ctx.withResolver(func(cfg *config.Config, store *catalog.Store, resolver *resolve.Resolver) error {
				episode, err := resolver.ResolveEpisode(cmd.Context(), query, cachedOnly)
				if err != nil {
					return describeLookupError(cmd, err)
				}
				if episode == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "No episode matched the lookup")
					return nil
				}
				if jsonOut {
					return writeJSON(cmd.OutOrStdout(), api.EpisodeResponse{Episode: api.FromEpisode(episode)})
				}

				// The series is cached by now, so a cache-only resolve is
				// enough to label the output. A failure just drops the name.
				seriesName := ""
				if series, err := resolver.ResolveSeries(cmd.Context(), query.SeriesQuery, true); err == nil && series != nil {
					seriesName = series.Name
				}
				renderEpisodeDetail(cmd.OutOrStdout(), seriesName, episode)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Exact series name (takes precedence over the title argument)")
	cmd.Flags().Int64Var(&tvmazeID, "tvmaze-id", 0, "TVMaze series ID")
	cmd.Flags().IntVarP(&season, "season", "s", 0, "Season number")
	cmd.Flags().IntVarP(&number, "episode", "e", 0, "Episode number within the season")
	cmd.Flags().BoolVar(&cachedOnly, "cached-only", false, "Serve from the cache only, never contact TVMaze")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of formatted text")
	return cmd
}
