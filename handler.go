package disco

import (
	"context"
	"log/slog"
	"strings"
)

// TARGET_KEY is the slog attribute used as event target.
const TARGET_KEY = "target"

// slogHandler adapts a Logger to slog.Handler. Attributes other than the
// target are appended to the message as key=value pairs.
type slogHandler struct {
	logger *Logger
	target string
	attrs  string // preformatted " k=v" pairs from WithAttrs
	group  string // key prefix from WithGroup, "" or "a.b."
}

// Handler returns a slog.Handler writing through the logger.
func (l *Logger) Handler() slog.Handler {
	return &slogHandler{logger: l}
}

// levelFromSlog maps slog levels onto logger levels. Everything below
// slog.LevelDebug is TRACE.
func levelFromSlog(level slog.Level) LogLevel {
	switch {
	case level < slog.LevelDebug:
		return LVL_TRACE
	case level < slog.LevelInfo:
		return LVL_DEBUG
	case level < slog.LevelWarn:
		return LVL_INFO
	case level < slog.LevelError:
		return LVL_WARN
	default:
		return LVL_ERROR
	}
}

func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Enabled(levelFromSlog(level))
}

func (h *slogHandler) Handle(_ context.Context, r slog.Record) error {
	target := h.target
	var b strings.Builder
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		if h.group == "" && a.Key == TARGET_KEY {
			target = a.Value.String()
			return true
		}
		appendAttr(&b, h.group, a)
		return true
	})
	h.logger.Log(&Event{Level: levelFromSlog(r.Level), Target: target, Message: b.String()})
	return nil
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		if h.group == "" && a.Key == TARGET_KEY {
			h2.target = a.Value.String()
			continue
		}
		appendAttr(&b, h.group, a)
	}
	h2.attrs = b.String()
	return &h2
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.group = h.group + name + "."
	return &h2
}

// appendAttr writes " prefix+key=value", flattening groups.
func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, prefix, ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}
