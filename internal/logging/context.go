package logging

import (
	"context"
	"log/slog"

	"mazecache/internal/services"
)

// Standardized structured logging keys. Components log lookup state under
// the same names so lines stay greppable across the daemon, the resolver,
// and the HTTP API.
const (
	FieldComponent     = "component"
	FieldSeriesID      = "series_id"
	FieldSeriesName    = "series_name"
	FieldTVMazeID      = "tvmaze_id"
	FieldSeason        = "season"
	FieldEpisode       = "episode"
	FieldCorrelationID = "correlation_id"
	FieldEventType     = "event_type"
	FieldErrorHint     = "error_hint"
	FieldAlert         = "alert"
)

// ContextFields extracts the standardized attributes carried by ctx.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	var fields []slog.Attr
	if id, ok := services.SeriesIDFromContext(ctx); ok {
		fields = append(fields, Int64(FieldSeriesID, id))
	}
	if name, ok := services.SeriesNameFromContext(ctx); ok {
		fields = append(fields, String(FieldSeriesName, name))
	}
	if rid, ok := services.RequestIDFromContext(ctx); ok {
		fields = append(fields, String(FieldCorrelationID, rid))
	}
	return fields
}

// WithContext returns a logger augmented with the fields ctx carries. A nil
// logger yields a no-op one so call sites can chain without guards.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
