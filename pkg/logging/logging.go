package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type LoggerConfig struct {
	Level  string `yaml:"level"`
	IsJSON bool   `yaml:"is_json"`
}

// ParseLevel maps a config level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitLogger installs the default slog logger. Logs go to stderr so that
// stdout stays free for command output.
func InitLogger(cfg *LoggerConfig, attrs ...slog.Attr) {
	slog.SetDefault(NewLogger(os.Stderr, cfg, attrs...))
}

func NewLogger(w io.Writer, cfg *LoggerConfig, attrs ...slog.Attr) *slog.Logger {
	if cfg == nil {
		cfg = &LoggerConfig{}
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var h slog.Handler
	if cfg.IsJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h.WithAttrs(attrs))
}
