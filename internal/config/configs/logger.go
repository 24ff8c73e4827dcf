package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger configures the process-wide slog logger. Level is one of debug,
// info, warn or error; Format is text or json. Unknown values fall back to
// info and text.
type Logger struct {
	Level     string `env:"LEVEL" envDefault:"info"`
	Format    string `env:"FORMAT" envDefault:"text"`
	AddSource bool   `env:"ADD_SOURCE" envDefault:"false"`
}

// SlogLevel maps Level onto a slog.Level.
func (c Logger) SlogLevel() slog.Level {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "warning":
		return slog.LevelWarn
	case "err":
		return slog.LevelError
	}
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// SlogFormat returns "json" or "text".
func (c Logger) SlogFormat() string {
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return "json"
	}
	return "text"
}

// New builds a logger writing to w. Every record carries the service name.
func (c Logger) New(w io.Writer, service string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.AddSource}
	var h slog.Handler
	if c.SlogFormat() == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With(slog.String("service", service))
}
