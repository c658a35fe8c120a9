package resolve

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"mazecache/internal/catalog"
	"mazecache/internal/config"
	"mazecache/internal/logging"
	"mazecache/internal/resolve/tvmaze"
	"mazecache/internal/services"
)

const providerDateLayout = "2006-01-02"

// ShowFetcher defines the provider operation used during resolution.
type ShowFetcher interface {
	GetShow(ctx context.Context, query tvmaze.ShowQuery) (*tvmaze.Show, error)
}

// Resolver answers series and episode lookups from the catalog, refreshing
// stale or missing entries from the provider. Every resolution runs in a
// single catalog transaction.
type Resolver struct {
	store    *catalog.Store
	cfg      *config.Config
	logger   *slog.Logger
	provider ShowFetcher
}

// NewResolver creates a resolver backed by the live TVMaze API.
func NewResolver(cfg *config.Config, store *catalog.Store, logger *slog.Logger) (*Resolver, error) {
	client, err := tvmaze.New(cfg.TVMaze.BaseURL,
		tvmaze.WithUserAgent(cfg.TVMaze.UserAgent),
		tvmaze.WithHTTPClient(&http.Client{Timeout: cfg.TVMazeTimeout()}),
	)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "resolve", "init provider", "TVMaze client initialization failed", err)
	}
	return NewResolverWithClient(cfg, store, logger, client), nil
}

// NewResolverWithClient creates a resolver with an injected provider (used for testing).
func NewResolverWithClient(cfg *config.Config, store *catalog.Store, logger *slog.Logger, provider ShowFetcher) *Resolver {
	return &Resolver{
		store:    store,
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "resolver"),
		provider: provider,
	}
}

// ResolveSeries finds the series a query describes: cache first, then alias
// table, then the provider for anything missing or stale. forceCache answers
// from the cache alone. A query the provider has no show for resolves to
// (nil, nil) with nothing written.
func (r *Resolver) ResolveSeries(ctx context.Context, query SeriesQuery, forceCache bool) (*catalog.Series, error) {
	tx, err := r.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	series, err := r.resolveSeries(ctx, tx, query, forceCache)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return series, nil
}

// ResolveEpisode finds one episode by series query plus season and episode
// numbers. The series resolves exactly as in ResolveSeries, inside the same
// transaction; a known series without the requested episode resolves to
// (nil, nil).
func (r *Resolver) ResolveEpisode(ctx context.Context, query EpisodeQuery, forceCache bool) (*catalog.Episode, error) {
	if strings.TrimSpace(query.lookupTitle()) == "" || query.Season <= 0 || query.Episode <= 0 {
		return nil, services.Wrap(services.ErrInsufficientParameters, "resolve", "episode lookup",
			"series name, season, and episode are all required", nil)
	}

	tx, err := r.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	series, err := r.resolveSeries(ctx, tx, query.SeriesQuery, forceCache)
	if err != nil {
		return nil, err
	}
	if series == nil {
		return nil, services.Wrap(services.ErrSeriesNotFound, "resolve", "episode lookup",
			"no series matched the lookup parameters", nil)
	}

	var match *catalog.Episode
	for _, episode := range series.Episodes {
		if episode.Season == query.Season && episode.Number == query.Episode {
			match = episode
			break
		}
	}
	if match == nil {
		logging.WithContext(ctx, r.logger).Debug("episode not in cached index",
			logging.Int64(logging.FieldTVMazeID, series.TVMazeID),
			logging.Int(logging.FieldSeason, query.Season),
			logging.Int(logging.FieldEpisode, query.Episode))
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return match, nil
}

func (r *Resolver) resolveSeries(ctx context.Context, tx *catalog.Tx, query SeriesQuery, forceCache bool) (*catalog.Series, error) {
	logger := logging.WithContext(ctx, r.logger)

	candidate, err := tx.FindSeries(ctx, query.cacheFilter())
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(query.lookupTitle())
	if candidate == nil && title != "" {
		alias, err := tx.FindAlias(ctx, title)
		if err != nil {
			return nil, err
		}
		if alias != nil {
			candidate, err = tx.SeriesByID(ctx, alias.SeriesID)
			if err != nil {
				return nil, err
			}
		}
	}

	if forceCache {
		if candidate == nil {
			return nil, services.Wrap(services.ErrNotFoundInCache, "resolve", "series lookup",
				"series not in cache and remote lookups disabled", nil)
		}
		logger.Debug("forcing cached series", logging.Int64(logging.FieldTVMazeID, candidate.TVMazeID))
		return r.loadSeriesDetails(ctx, tx, candidate)
	}

	if candidate != nil && !candidate.Stale(time.Now(), r.cfg.RefreshInterval()) {
		logger.Debug("serving series from cache",
			logging.Int64(logging.FieldTVMazeID, candidate.TVMazeID),
			logging.String(logging.FieldSeriesName, candidate.Name))
		return r.loadSeriesDetails(ctx, tx, candidate)
	}

	logger.Debug("fetching series from provider", logging.String("lookup_title", title))
	fetchStart := time.Now()
	show, err := r.provider.GetShow(ctx, query.remoteQuery())
	if err != nil {
		if errors.Is(err, tvmaze.ErrShowNotFound) {
			logger.Debug("provider has no matching show", logging.String("lookup_title", title))
			return nil, nil
		}
		if candidate != nil {
			logging.WarnWithContext(logger, "series refresh failed", "series_refresh_failed",
				logging.Int64(logging.FieldTVMazeID, candidate.TVMazeID),
				logging.String(logging.FieldErrorHint, "check TVMaze availability and the configured base_url"),
				logging.String(logging.FieldImpact, "lookups keep serving the stale cached record"),
				logging.Error(err))
		}
		return nil, services.Wrap(services.ErrTransient, "resolve", "provider fetch", "TVMaze lookup failed", err)
	}
	logger.Debug("provider fetch complete",
		logging.String("lookup_title", title),
		logging.Duration("elapsed", time.Since(fetchStart)))

	series, err := r.applyShow(ctx, tx, show)
	if err != nil {
		return nil, err
	}
	if err := r.recordAlias(ctx, tx, title, series); err != nil {
		return nil, err
	}
	return series, nil
}

// applyShow reconciles a provider payload into the catalog: the series row is
// matched by its stable TVMaze ID regardless of how the query found it, so a
// renamed show updates in place instead of forking.
func (r *Resolver) applyShow(ctx context.Context, tx *catalog.Tx, show *tvmaze.Show) (*catalog.Series, error) {
	logger := logging.WithContext(ctx, r.logger)
	now := time.Now().UTC()

	series, err := tx.SeriesByID(ctx, show.ID)
	if err != nil {
		return nil, err
	}
	created := series == nil
	if created {
		series = &catalog.Series{TVMazeID: show.ID}
	}
	populateSeries(series, show, now)

	if created {
		err = tx.CreateSeries(ctx, series)
	} else {
		err = tx.UpdateSeries(ctx, series)
	}
	if err != nil {
		return nil, err
	}

	if err := r.applyGenres(ctx, tx, series.TVMazeID, show.Genres); err != nil {
		return nil, err
	}

	var payload []tvmaze.Episode
	if show.Embedded != nil {
		payload = show.Embedded.Episodes
	}
	if err := rebuildEpisodeIndex(ctx, tx, series.TVMazeID, payload, now); err != nil {
		return nil, err
	}

	logger.Info("refreshed series metadata",
		logging.Int64(logging.FieldTVMazeID, series.TVMazeID),
		logging.String(logging.FieldSeriesName, series.Name),
		logging.Int("episodes", len(payload)),
		logging.Bool("created", created))

	return r.loadSeriesDetails(ctx, tx, series)
}

func (r *Resolver) applyGenres(ctx context.Context, tx *catalog.Tx, seriesID int64, names []string) error {
	genreIDs := make([]int64, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		id, err := tx.EnsureGenre(ctx, name)
		if err != nil {
			return err
		}
		genreIDs = append(genreIDs, id)
	}
	return tx.ReplaceSeriesGenres(ctx, seriesID, genreIDs)
}

// recordAlias remembers that a differently-titled search led to this series,
// so the next lookup under the same title stays local.
func (r *Resolver) recordAlias(ctx context.Context, tx *catalog.Tx, title string, series *catalog.Series) error {
	if title == "" || series == nil || strings.EqualFold(title, series.Name) {
		return nil
	}
	existing, err := tx.FindAlias(ctx, title)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	logger := logging.WithContext(ctx, r.logger)
	logger.Debug("recording series alias",
		logging.String("search_name", title),
		logging.Int64(logging.FieldTVMazeID, series.TVMazeID))
	return tx.CreateAlias(ctx, title, series.TVMazeID)
}

func (r *Resolver) loadSeriesDetails(ctx context.Context, tx *catalog.Tx, series *catalog.Series) (*catalog.Series, error) {
	genres, err := tx.SeriesGenres(ctx, series.TVMazeID)
	if err != nil {
		return nil, err
	}
	episodes, err := tx.EpisodesBySeries(ctx, series.TVMazeID)
	if err != nil {
		return nil, err
	}
	series.Genres = genres
	series.Episodes = episodes
	return series, nil
}

func populateSeries(series *catalog.Series, show *tvmaze.Show, now time.Time) {
	series.Name = show.Name
	series.Status = show.Status
	series.Weight = show.Weight
	series.Language = show.Language
	series.ShowType = show.Type
	series.Runtime = show.Runtime
	series.URL = show.URL
	series.Summary = show.Summary
	series.ScheduleJSON = string(show.Schedule)

	series.Rating = 0
	if show.Rating.Average != nil {
		series.Rating = *show.Rating.Average
	}

	series.OriginalImage = ""
	series.MediumImage = ""
	if show.Image != nil {
		series.OriginalImage = show.Image.Original
		series.MediumImage = show.Image.Medium
	}

	series.TVDBID = 0
	if show.Externals.TheTVDB != nil {
		series.TVDBID = *show.Externals.TheTVDB
	}
	series.TVRageID = 0
	if show.Externals.TVRage != nil {
		series.TVRageID = *show.Externals.TVRage
	}

	series.Network = ""
	if show.Network != nil {
		series.Network = show.Network.Name
	}
	series.WebChannel = ""
	if show.WebChannel != nil {
		series.WebChannel = show.WebChannel.Name
	}

	series.Premiered = nil
	if premiered, err := time.Parse(providerDateLayout, show.Premiered); err == nil {
		series.Premiered = &premiered
	}

	series.Updated = nil
	if show.Updated > 0 {
		updated := time.Unix(show.Updated, 0).UTC()
		series.Updated = &updated
	}

	refreshed := now
	series.LastRefreshed = &refreshed
}

// rebuildEpisodeIndex upserts the provider's episode payload. Episodes the
// provider stopped listing are retained, so the index only ever grows.
func rebuildEpisodeIndex(ctx context.Context, tx *catalog.Tx, seriesID int64, payload []tvmaze.Episode, now time.Time) error {
	for i := range payload {
		wire := &payload[i]
		episode, err := tx.EpisodeByID(ctx, wire.ID)
		if err != nil {
			return err
		}
		created := episode == nil
		if created {
			episode = &catalog.Episode{TVMazeID: wire.ID}
		}
		populateEpisode(episode, wire, seriesID, now)

		if created {
			err = tx.CreateEpisode(ctx, episode)
		} else {
			err = tx.UpdateEpisode(ctx, episode)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func populateEpisode(episode *catalog.Episode, wire *tvmaze.Episode, seriesID int64, now time.Time) {
	episode.SeriesID = seriesID
	episode.Title = wire.Name
	episode.Season = wire.Season
	episode.Number = wire.Number
	episode.URL = wire.URL
	episode.Runtime = wire.Runtime

	episode.OriginalImage = ""
	episode.MediumImage = ""
	if wire.Image != nil {
		episode.OriginalImage = wire.Image.Original
		episode.MediumImage = wire.Image.Medium
	}

	// Unannounced or malformed air dates store as NULL rather than failing
	// the whole refresh.
	episode.AirDate = nil
	if airdate, err := time.Parse(providerDateLayout, wire.AirDate); err == nil {
		episode.AirDate = &airdate
	}
	episode.AirStamp = nil
	if airstamp, err := time.Parse(time.RFC3339, wire.AirStamp); err == nil {
		episode.AirStamp = &airstamp
	}

	refreshed := now
	episode.LastRefreshed = &refreshed
}
