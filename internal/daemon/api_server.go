package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"mazecache/internal/api"
	"mazecache/internal/config"
	"mazecache/internal/logging"
	"mazecache/internal/resolve"
	"mazecache/internal/services"
)

type apiServer struct {
	bind   string
	logger *slog.Logger
	daemon *Daemon

	listener net.Listener
	server   *http.Server
}

func newAPIServer(cfg *config.Config, d *Daemon, logger *slog.Logger) (*apiServer, error) {
	if cfg == nil || d == nil {
		return nil, nil
	}
	bind := strings.TrimSpace(cfg.Paths.APIBind)
	if bind == "" {
		return nil, nil
	}

	mux := http.NewServeMux()
	srv := &apiServer{
		bind:   bind,
		logger: logger,
		daemon: d,
	}

	mux.HandleFunc("/api/series", srv.withRequestID(srv.handleSeries))
	mux.HandleFunc("/api/episode", srv.withRequestID(srv.handleEpisode))
	mux.HandleFunc("/api/status", srv.withRequestID(srv.handleStatus))
	mux.HandleFunc("/healthz", srv.handleHealth)

	srv.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

func (s *apiServer) start(ctx context.Context) error {
	if s == nil {
		return nil
	}
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		err := s.server.Serve(listener)
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return
		}
		logging.ErrorWithContext(s.log(), "http api error", "api_serve_failed",
			logging.String(logging.FieldErrorHint, "restart mazecached; check the bind address for conflicts"),
			logging.Error(err))
	}()
	go func() {
		<-ctx.Done()
		s.shutdown()
	}()

	s.log().Info("http api listening", logging.String("address", listener.Addr().String()))
	return nil
}

func (s *apiServer) shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.server.Shutdown(shutdownCtx)
}

func (s *apiServer) stop() {
	if s == nil {
		return
	}
	if s.server != nil {
		s.shutdown()
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

// addr reports the bound listen address, or empty before start.
func (s *apiServer) addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// withRequestID stamps every request with a correlation identifier. Inbound
// X-Request-ID headers are honored so callers can thread their own IDs.
func (s *apiServer) withRequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get("X-Request-ID"))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next(w, r.WithContext(services.WithRequestID(r.Context(), id)))
	}
}

func (s *apiServer) handleSeries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	query, err := parseSeriesQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	forceCache := boolParam(r.URL.Query(), "force_cache")
	includeEpisodes := strings.EqualFold(r.URL.Query().Get("embed"), "episodes")

	series, err := s.daemon.resolver.ResolveSeries(r.Context(), query, forceCache)
	if err != nil {
		logging.WithContext(r.Context(), s.log()).Warn("series lookup failed", logging.Error(err))
		s.writeError(w, services.HTTPStatus(err), err.Error())
		return
	}
	if series == nil {
		s.writeError(w, http.StatusNotFound, "series not found")
		return
	}
	s.writeJSON(w, http.StatusOK, api.SeriesResponse{Series: api.FromSeries(series, includeEpisodes)})
}

func (s *apiServer) handleEpisode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	values := r.URL.Query()
	seriesQuery, err := parseSeriesQuery(values)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	season, err := intParam(values, "season")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	episodeNumber, err := intParam(values, "episode")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	query := resolve.EpisodeQuery{
		SeriesQuery: seriesQuery,
		Season:      season,
		Episode:     episodeNumber,
	}

	episode, err := s.daemon.resolver.ResolveEpisode(r.Context(), query, boolParam(values, "force_cache"))
	if err != nil {
		logging.WithContext(r.Context(), s.log()).Warn("episode lookup failed", logging.Error(err))
		s.writeError(w, services.HTTPStatus(err), err.Error())
		return
	}
	if episode == nil {
		s.writeError(w, http.StatusNotFound, "episode not found")
		return
	}
	s.writeJSON(w, http.StatusOK, api.EpisodeResponse{Episode: api.FromEpisode(episode)})
}

func (s *apiServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	status, err := s.daemon.Status(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	started := status.StartedAt
	payload := api.StatusResponse{
		Running:      status.Running,
		PID:          status.PID,
		RunID:        status.RunID,
		StartedAt:    api.FormatTime(&started),
		LockFilePath: status.LockFilePath,
		Cache:        api.FromStats(status.Cache),
	}
	s.writeJSON(w, http.StatusOK, payload)
}

func (s *apiServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func parseSeriesQuery(values map[string][]string) (resolve.SeriesQuery, error) {
	get := func(key string) string {
		if list := values[key]; len(list) > 0 {
			return strings.TrimSpace(list[0])
		}
		return ""
	}

	query := resolve.SeriesQuery{
		Title:    get("title"),
		Name:     get("name"),
		Network:  get("network"),
		Country:  get("country"),
		Language: get("language"),
	}
	var err error
	if query.TVMazeID, err = int64Param(values, "tvmaze_id"); err != nil {
		return resolve.SeriesQuery{}, err
	}
	if query.TVDBID, err = int64Param(values, "tvdb_id"); err != nil {
		return resolve.SeriesQuery{}, err
	}
	if query.TVRageID, err = int64Param(values, "tvrage_id"); err != nil {
		return resolve.SeriesQuery{}, err
	}
	if query.Year, err = intParam(values, "year"); err != nil {
		return resolve.SeriesQuery{}, err
	}
	return query, nil
}

func int64Param(values map[string][]string, key string) (int64, error) {
	list := values[key]
	if len(list) == 0 || strings.TrimSpace(list[0]) == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseInt(strings.TrimSpace(list[0]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, list[0])
	}
	return parsed, nil
}

func intParam(values map[string][]string, key string) (int, error) {
	parsed, err := int64Param(values, key)
	return int(parsed), err
}

func boolParam(values map[string][]string, key string) bool {
	list := values[key]
	if len(list) == 0 {
		return false
	}
	return list[0] == "1" || strings.EqualFold(list[0], "true")
}

func (s *apiServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if payload == nil {
		w.WriteHeader(status)
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		s.log().Error("encode response", logging.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *apiServer) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *apiServer) log() *slog.Logger {
	if s.logger != nil {
		return s.logger.With(logging.String(logging.FieldComponent, "api-server"))
	}
	return logging.NewNop()
}
