// Package slog provides log/slog decorators for documind services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/documind"
)

// Ensure LoggingLoader implements documind.Loader.
var _ documind.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with logging of every page fetch.
type LoggingLoader struct {
	next   documind.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next documind.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs url, bytes and duration.
func (l *LoggingLoader) Load(ctx context.Context, url string) (page *documind.RawPage, err error) {
	defer func(begin time.Time) {
		var n int
		if page != nil {
			n = len(page.HTML)
		}
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		l.logger.Log(ctx, level, "fetch",
			"url", url,
			"bytes", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, url)
}
