package xslog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const EnvKey = "LOG_LEVEL"

const Default = slog.LevelInfo

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func ParseLevel(s string) (slog.Level, error) {
	level, ok := levels[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Default, fmt.Errorf("invalid log level: %q (valid: debug, info, warn, error)", s)
	}
	return level, nil
}

// LevelFromEnv reads LOG_LEVEL, falling back to info when unset or invalid.
func LevelFromEnv() slog.Level {
	level, err := ParseLevel(os.Getenv(EnvKey))
	if err != nil {
		return Default
	}
	return level
}

func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func NewLoggerFromEnv(w io.Writer) *slog.Logger {
	return NewLogger(w, LevelFromEnv())
}

func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
