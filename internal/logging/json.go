package logging

import (
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// newJSONHandler wraps slog's JSON handler with the field names downstream
// tooling expects: ts, level, msg, and a short file:line source.
func newJSONHandler(w io.Writer, level *slog.LevelVar, source bool) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		AddSource:   source,
		ReplaceAttr: renameJSONFields,
	})
}

// renameJSONFields maps slog's built-in record fields onto the compact schema
// the log files use. Attributes inside groups pass through untouched.
func renameJSONFields(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return attr
	}
	switch attr.Key {
	case slog.TimeKey:
		if ts, ok := attr.Value.Any().(time.Time); ok {
			return slog.String("ts", ts.UTC().Format(time.RFC3339))
		}
		attr.Key = "ts"
	case slog.LevelKey:
		return slog.String("level", strings.ToLower(attr.Value.String()))
	case slog.MessageKey:
		attr.Key = "msg"
	case slog.SourceKey:
		src, ok := attr.Value.Any().(*slog.Source)
		if ok && src != nil {
			loc := filepath.Base(src.File) + ":" + strconv.Itoa(src.Line)
			return slog.String(slog.SourceKey, loc)
		}
	}
	return attr
}
