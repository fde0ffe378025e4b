package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Config describes the process-wide handler
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// ConfigFor returns the preset for environment. Production logs JSON, dev
// logs text with source locations, anything else logs plain text at info.
// Callers fill in the service identity and any explicit level or format.
func ConfigFor(environment string) Config {
	c := Config{Level: LevelInfo, Format: FormatText, Environment: environment}
	switch environment {
	case EnvironmentProduction:
		c.Format = FormatJSON
	case EnvironmentDev, "development":
		c.Level = LevelDebug
		c.AddSource = true
	}
	return c
}

func (c Config) level() slog.Level {
	switch strings.ToLower(c.Level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn, "warning":
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newHandler builds the handler c describes, stamped with the service identity
func (c Config) newHandler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.level(), AddSource: c.AddSource}

	var h slog.Handler
	if strings.EqualFold(c.Format, FormatJSON) {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return h.WithAttrs([]slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	})
}
