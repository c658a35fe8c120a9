package logging

import (
	"context"
	"log/slog"
	"time"
)

// Attr aliases slog.Attr so call sites can build structured fields without
// importing log/slog themselves.
type Attr = slog.Attr

// FieldImpact is the standardized key for the user-facing consequence of a
// warning.
const FieldImpact = "impact"

func String(key, value string) Attr { return slog.String(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

func Int64(key string, value int64) Attr { return slog.Int64(key, value) }

func Bool(key string, value bool) Attr { return slog.Bool(key, value) }

func Duration(key string, value time.Duration) Attr { return slog.Duration(key, value) }

// Alert tags a record for operator attention.
func Alert(value string) Attr { return slog.String(FieldAlert, value) }

// Error wraps err as an "error" attribute, tolerating nil.
func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// Args converts attrs into the variadic ...any form slog methods accept.
func Args(attrs ...Attr) []any {
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}
	return args
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(nopHandler{})
}

// NewComponentLogger tags logger with a component attribute the console
// handler folds into the line prefix. A nil logger yields a no-op one.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

// WarnWithContext emits a warning carrying event_type, error_hint, and impact
// fields, filling in generic values for any the caller omitted. A warning
// should name the cause, the consequence, and the next step.
func WarnWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	if logger == nil {
		return
	}
	attrs = ensureField(attrs, FieldEventType, eventType)
	attrs = ensureField(attrs, FieldErrorHint, "review recent log output")
	attrs = ensureField(attrs, FieldImpact, "completed with warnings")
	logger.Warn(msg, Args(attrs...)...)
}

// ErrorWithContext emits an error carrying event_type and error_hint fields,
// filling in generic values for any the caller omitted.
func ErrorWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	if logger == nil {
		return
	}
	attrs = ensureField(attrs, FieldEventType, eventType)
	attrs = ensureField(attrs, FieldErrorHint, "review recent log output")
	logger.Error(msg, Args(attrs...)...)
}

func ensureField(attrs []Attr, key, value string) []Attr {
	for _, attr := range attrs {
		if attr.Key == key {
			return attrs
		}
	}
	return append(attrs, String(key, value))
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }
