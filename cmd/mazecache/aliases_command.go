package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mazecache/internal/api"
	"mazecache/internal/catalog"
	"mazecache/internal/config"
	"mazecache/internal/resolve"
)

func newAliasesCommand(ctx *cmdEnv) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "aliases [title]",
		Short: "List recorded search-name aliases",
		Long: `List the alternate search names that have resolved to cached series.
With a title argument only the aliases for that series are shown. This command
never contacts TVMaze; it inspects the cache as-is.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := ""
			if len(args) == 1 {
				title = strings.TrimSpace(args[0])
			}

			if title == "" {
				return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
					entries, err := store.Aliases(cmd.Context())
					if err != nil {
						return fmt.Errorf("list aliases: %w", err)
					}
					return printAliases(cmd, entries, jsonOut, "No aliases recorded")
				})
			}

			return ctx.withResolver(func(cfg *config.Config, store *catalog.Store, resolver *resolve.Resolver) error {
				series, err := resolver.ResolveSeries(cmd.Context(), resolve.SeriesQuery{Title: title}, true)
				if err != nil {
					return describeLookupError(cmd, err)
				}
				if series == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "No series matched the lookup")
					return nil
				}
				entries, err := store.AliasesForSeries(cmd.Context(), series.TVMazeID)
				if err != nil {
					return fmt.Errorf("list aliases: %w", err)
				}
				empty := fmt.Sprintf("No aliases recorded for %s", series.Name)
				return printAliases(cmd, entries, jsonOut, empty)
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of formatted text")
	return cmd
}

func printAliases(cmd *cobra.Command, entries []catalog.AliasEntry, jsonOut bool, emptyNotice string) error {
	if jsonOut {
		return writeJSON(cmd.OutOrStdout(), api.AliasListResponse{Aliases: api.FromAliases(entries)})
	}
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, emptyNotice)
		return nil
	}
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.SearchName,
			entry.SeriesName,
			strconv.FormatInt(entry.SeriesID, 10),
		})
	}
	writeTable(out,
		[]string{"Search name", "Series", "TVMaze ID"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight},
	)
	return nil
}
