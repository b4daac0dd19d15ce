package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the handler used by New.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// redacted replaces the value of attributes that may carry user input.
const redacted = "[redacted]"

// ParseFormat converts a configuration string into a Format. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("invalid log format %q: must be %q or %q", s, FormatJSON, FormatText)
	}
}

// ParseLevel converts "debug", "info", "warn" or "error" (with optional
// offsets such as "warn+1") into a slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}

type settings struct {
	level  slog.Leveler
	format Format
	output io.Writer
	attrs  []slog.Attr
	redact map[string]bool
}

// Option configures New.
type Option func(*settings)

// WithLevel sets the minimum level. A *slog.LevelVar allows changing it later.
func WithLevel(l slog.Leveler) Option {
	return func(s *settings) {
		if l != nil {
			s.level = l
		}
	}
}

// WithFormat sets the output format. It panics for unknown formats so a
// misconfigured logger stops startup.
func WithFormat(f Format) Option {
	if f != FormatJSON && f != FormatText {
		panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
	}
	return func(s *settings) { s.format = f }
}

// WithOutput sets the destination. Nil is ignored.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(s *settings) { s.attrs = append(s.attrs, attrs...) }
}

// WithRedact masks the values of the named top-level keys. The "value" key is
// always masked.
func WithRedact(keys ...string) Option {
	return func(s *settings) {
		for _, k := range keys {
			s.redact[k] = true
		}
	}
}

// WithDevelopment logs text at debug level, tagged with component.
func WithDevelopment(component string) Option {
	return func(s *settings) {
		s.level = slog.LevelDebug
		s.format = FormatText
		if component != "" {
			s.attrs = append(s.attrs, Component(component))
		}
	}
}

// New creates a logger. Defaults are JSON at info level on stdout.
func New(opts ...Option) *slog.Logger {
	s := &settings{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
		redact: map[string]bool{"value": true},
	}
	for _, opt := range opts {
		opt(s)
	}

	ho := &slog.HandlerOptions{
		Level: s.level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && s.redact[a.Key] {
				return slog.String(a.Key, redacted)
			}
			return a
		},
	}

	var h slog.Handler
	switch s.format {
	case FormatText:
		h = slog.NewTextHandler(s.output, ho)
	default:
		h = slog.NewJSONHandler(s.output, ho)
	}
	if len(s.attrs) > 0 {
		h = h.WithAttrs(s.attrs)
	}
	return slog.New(h)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrDiscard returns l, or Discard() when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
