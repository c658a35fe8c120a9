package services

import "context"

type contextKey string

const (
	seriesIDKey   contextKey = "series_id"
	seriesNameKey contextKey = "series_name"
	requestIDKey  contextKey = "request_id"
)

// WithSeriesID stamps the cached series identifier onto the context.
func WithSeriesID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, seriesIDKey, id)
}

// SeriesIDFromContext reports the series identifier stamped on the context.
func SeriesIDFromContext(ctx context.Context) (int64, bool) {
	switch v := ctx.Value(seriesIDKey).(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}

// WithSeriesName records the name being resolved. Empty names are ignored.
func WithSeriesName(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, seriesNameKey, name)
}

// SeriesNameFromContext reports the series name stamped on the context.
func SeriesNameFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, seriesNameKey)
}

// WithRequestID carries a correlation identifier through a request so log
// lines and the API response can be matched up.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext reports the correlation identifier, when one is set.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, requestIDKey)
}

func stringFromContext(ctx context.Context, key contextKey) (string, bool) {
	s, ok := ctx.Value(key).(string)
	return s, ok && s != ""
}
