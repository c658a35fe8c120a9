package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mazecache/internal/api"
	"mazecache/internal/catalog"
	"mazecache/internal/config"
)

func newStatusCommand(ctx *cmdEnv) *cobra.Command {
	var remote bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show cache statistics",
		Long: `Report on the cache database: row counts, stale series, and size on disk.
With --remote the command asks a running mazecached for its status over HTTP
instead of opening the database directly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if remote {
				return runRemoteStatus(cmd, ctx, jsonOut)
			}
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				stats, err := store.Stats(cmd.Context(), time.Now().Add(-cfg.RefreshInterval()))
				if err != nil {
					return fmt.Errorf("read cache stats: %w", err)
				}
				if jsonOut {
					return writeJSON(cmd.OutOrStdout(), api.FromStats(stats))
				}
				renderCacheStats(cmd.OutOrStdout(), stats)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "Query a running daemon's status API")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of formatted text")
	return cmd
}

func runRemoteStatus(cmd *cobra.Command, ctx *cmdEnv, jsonOut bool) error {
	cfg, err := ctx.loadConfig()
	if err != nil {
		return err
	}
	client, err := newStatusAPIClient(cfg)
	if err != nil {
		return err
	}
	if client == nil {
		return errors.New("status API disabled: api_bind is empty in the configuration")
	}

	status, err := client.Fetch(cmd.Context())
	if err != nil {
		return fmt.Errorf("query daemon status: %w", err)
	}
	if jsonOut {
		return writeJSON(cmd.OutOrStdout(), status)
	}

	out := cmd.OutOrStdout()
	state := "stopped"
	if status.Running {
		state = "running"
	}
	fmt.Fprintf(out, "Daemon %s", state)
	if status.PID > 0 {
		fmt.Fprintf(out, " (pid %d)", status.PID)
	}
	fmt.Fprintln(out)
	if started, err := time.Parse(time.RFC3339, status.StartedAt); err == nil {
		detailLine(out, "Started", formatRelativeTime(&started))
	}
	detailLine(out, "Run ID", status.RunID)
	detailLine(out, "Lock file", status.LockFilePath)
	fmt.Fprintln(out)
	renderRemoteCacheStats(out, status.Cache)
	return nil
}

func renderRemoteCacheStats(out io.Writer, stats api.CacheStats) {
	renderCacheStats(out, catalog.Stats{
		Series:        stats.Series,
		Episodes:      stats.Episodes,
		Genres:        stats.Genres,
		Aliases:       stats.Aliases,
		StaleSeries:   stats.StaleSeries,
		DatabasePath:  stats.DatabasePath,
		DatabaseBytes: stats.DatabaseBytes,
	})
}

type statusAPIClient struct {
	base *url.URL
	http *http.Client
}

// newStatusAPIClient builds a client for the daemon's HTTP API from the
// configured bind address. It returns nil when the API is disabled.
func newStatusAPIClient(cfg *config.Config) (*statusAPIClient, error) {
	if cfg == nil {
		return nil, nil
	}
	bind := strings.TrimSpace(cfg.Paths.APIBind)
	if bind == "" {
		return nil, nil
	}
	if !strings.Contains(bind, "://") {
		bind = "http://" + bind
	}
	base, err := url.Parse(bind)
	if err != nil {
		return nil, err
	}
	base.Path = ""
	base.RawQuery = ""
	base.Fragment = ""
	return &statusAPIClient{
		base: base,
		http: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func (c *statusAPIClient) Fetch(ctx context.Context) (api.StatusResponse, error) {
	endpoint := c.base.ResolveReference(&url.URL{Path: "/api/status"})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return api.StatusResponse{}, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return api.StatusResponse{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return api.StatusResponse{}, fmt.Errorf("status API returned status %d", resp.StatusCode)
	}
	var payload api.StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return api.StatusResponse{}, err
	}
	return payload, nil
}
