package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// SetupLogger builds the application logger and installs it as the slog default.
func SetupLogger(cfg ServerConfig) *slog.Logger {
	return setupLogger(cfg, os.Stdout)
}

func setupLogger(cfg ServerConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
