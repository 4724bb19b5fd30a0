package logger

import (
	"io"
	"log/slog"
)

// Format selects the handler New builds.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatPretty
)

// Option configures a logger created with New.
type Option func(*config)

// WithLevel sets the minimum level.
func WithLevel(level slog.Level) Option {
	return func(c *config) { c.level = level }
}

// WithDebug is shorthand for WithLevel(slog.LevelDebug) when debug is true.
func WithDebug(debug bool) Option {
	if debug {
		return WithLevel(slog.LevelDebug)
	}
	return WithLevel(slog.LevelInfo)
}

// WithFormat selects the output format.
func WithFormat(format Format) Option {
	return func(c *config) { c.format = format }
}

// WithPretty selects the colorized charmbracelet/log handler for terminals.
func WithPretty(pretty bool) Option {
	return func(c *config) {
		if pretty {
			c.format = FormatPretty
		} else if c.format == FormatPretty {
			c.format = FormatText
		}
	}
}

// WithJSON selects slog's JSON handler for service logs.
func WithJSON(json bool) Option {
	return func(c *config) {
		if json {
			c.format = FormatJSON
		} else if c.format == FormatJSON {
			c.format = FormatText
		}
	}
}

// WithWriter sends output to w instead of os.Stdout.
func WithWriter(w io.Writer) Option {
	return WithWriters(w)
}

// WithWriters sends output to every writer.
func WithWriters(w ...io.Writer) Option {
	return func(c *config) { c.writers = w }
}

// WithSource adds file:line to each record.
func WithSource(source bool) Option {
	return func(c *config) { c.source = source }
}
