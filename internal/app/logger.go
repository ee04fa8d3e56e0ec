package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/cultour-backend/internal/config"
)

// NewLogger builds the process logger from LogConfig, writes to stderr and
// installs it as slog's default. Every entry carries app=cultour-api.
//
// Format "json" is for production; anything else gives text with source
// locations. Level is debug, info, warn or error (case-insensitive) and
// falls back to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	text := !strings.EqualFold(cfg.Format, "json")

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if text {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("app", "cultour-api"))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// settingsAttrs summarises the settings an operator most often needs to
// confirm at startup. Secrets and the DSN are left out.
func settingsAttrs(cfg *config.Config) []any {
	return []any{
		slog.String("log_level", cfg.Log.Level),
		slog.Group("upload",
			slog.String("dir", cfg.Upload.Dir),
			slog.String("base_url", cfg.Upload.BaseURL()),
			slog.Int64("max_bytes", cfg.Upload.MaxBytes),
			slog.Int("max_image_side", cfg.Upload.MaxImageSide),
			slog.Any("allowed_types", cfg.Upload.AllowedTypeList()),
		),
		slog.Group("catalog",
			slog.Bool("cache_enabled", cfg.Catalog.CacheTTL > 0),
			slog.Duration("cache_ttl", cfg.Catalog.CacheTTL),
		),
		slog.Bool("auto_migrate", cfg.Database.AutoMigrate),
	}
}
