package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// consoleHandler renders each record as a single human-readable line:
//
//	2026-01-02T15:04:05Z INFO resolver: cache hit tvmaze_id=82
//
// A top-level component attribute is promoted into the "resolver:" prefix
// instead of trailing the line as a key=value pair.
type consoleHandler struct {
	mu     *sync.Mutex
	out    io.Writer
	level  *slog.LevelVar
	source bool

	prefix string
	attrs  []slog.Attr
	groups []string
}

func newConsoleHandler(out io.Writer, level *slog.LevelVar, source bool) *consoleHandler {
	return &consoleHandler{mu: new(sync.Mutex), out: out, level: level, source: source}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// WithAttrs qualifies the new attributes with the group scope in effect when
// they were added, so later WithGroup calls do not retroactively re-nest them.
func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := h.clone()
	scope := strings.Join(h.groups, ".")
	for _, attr := range attrs {
		if scope == "" && attr.Key == FieldComponent {
			if clone.prefix == "" {
				clone.prefix = valueText(attr.Value)
			}
			continue
		}
		clone.attrs = append(clone.attrs, qualifyAttr(scope, attr))
	}
	return clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *consoleHandler) clone() *consoleHandler {
	return &consoleHandler{
		mu:     h.mu,
		out:    h.out,
		level:  h.level,
		source: h.source,
		prefix: h.prefix,
		attrs:  append([]slog.Attr(nil), h.attrs...),
		groups: append([]string(nil), h.groups...),
	}
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	if record.Level < h.level.Level() {
		return nil
	}

	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	scope := strings.Join(h.groups, ".")

	prefix := h.prefix
	if prefix == "" && scope == "" {
		record.Attrs(func(attr slog.Attr) bool {
			if attr.Key != FieldComponent {
				return true
			}
			prefix = valueText(attr.Value)
			return false
		})
	}

	buf := bytes.NewBuffer(make([]byte, 0, 192))
	buf.WriteString(ts.UTC().Format(time.RFC3339))
	buf.WriteByte(' ')
	buf.WriteString(levelText(record.Level))
	buf.WriteByte(' ')
	if prefix != "" {
		buf.WriteString(prefix)
		buf.WriteString(": ")
	}
	if msg := strings.TrimSpace(record.Message); msg != "" {
		buf.WriteString(msg)
	} else {
		buf.WriteString("(empty)")
	}
	if h.source {
		if src := recordSource(record); src != nil && src.File != "" {
			fmt.Fprintf(buf, " [%s:%d]", filepath.Base(src.File), src.Line)
		}
	}

	for _, attr := range h.attrs {
		writeAttr(buf, "", attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		if scope == "" && attr.Key == FieldComponent {
			return true
		}
		writeAttr(buf, scope, attr)
		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

// recordSource matches slog.Record.Source, which needs a Go 1.25 toolchain.
func recordSource(record slog.Record) *slog.Source {
	if record.PC == 0 {
		return nil
	}
	frames := runtime.CallersFrames([]uintptr{record.PC})
	frame, _ := frames.Next()
	return &slog.Source{Function: frame.Function, File: frame.File, Line: frame.Line}
}

// writeAttr appends " key=value" to buf, expanding group values into
// dot-joined keys.
func writeAttr(buf *bytes.Buffer, scope string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	attr.Value = attr.Value.Resolve()
	if attr.Value.Kind() == slog.KindGroup {
		inner := scope
		if attr.Key != "" {
			inner = joinScope(scope, attr.Key)
		}
		for _, member := range attr.Value.Group() {
			writeAttr(buf, inner, member)
		}
		return
	}
	key := joinScope(scope, attr.Key)
	if key == "" {
		return
	}
	buf.WriteByte(' ')
	buf.WriteString(key)
	buf.WriteByte('=')
	buf.WriteString(quoteValue(attr.Value))
}

func qualifyAttr(scope string, attr slog.Attr) slog.Attr {
	if scope != "" {
		attr.Key = joinScope(scope, attr.Key)
	}
	return attr
}

func joinScope(scope, key string) string {
	switch {
	case scope == "":
		return key
	case key == "":
		return scope
	}
	return scope + "." + key
}

func valueText(v slog.Value) string {
	v = v.Resolve()
	if err, ok := v.Any().(error); ok {
		return err.Error()
	}
	return v.String()
}

// quoteValue renders a value for key=value output, quoting strings that
// contain whitespace, '=', or '"'.
func quoteValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case slog.KindBool:
		return strconv.FormatBool(v.Bool())
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().UTC().Format(time.RFC3339)
	}

	var text string
	if err, ok := v.Any().(error); ok {
		text = err.Error()
	} else if v.Kind() == slog.KindString {
		text = v.String()
	} else {
		text = fmt.Sprint(v.Any())
	}
	if text == "" || strings.ContainsFunc(text, func(r rune) bool { return r <= ' ' || r == '=' || r == '"' }) {
		return strconv.Quote(text)
	}
	return text
}

func levelText(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return "DEBUG"
	case level < slog.LevelWarn:
		return "INFO"
	case level < slog.LevelError:
		return "WARN"
	default:
		return "ERROR"
	}
}
