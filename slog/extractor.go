package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/documind"
)

// Ensure LoggingExtractor implements documind.Extractor.
var _ documind.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   documind.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next documind.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(tree *documind.Tree) (article *documind.Article, err error) {
	defer func(begin time.Time) {
		attrs := []any{"duration", time.Since(begin)}
		if tree != nil && tree.BaseURL != nil {
			attrs = append(attrs, "url", tree.BaseURL.String())
		}
		if article != nil {
			attrs = append(attrs, "title", article.Title, "chars", len(article.TextContent))
		}
		attrs = append(attrs, "err", err)
		e.logger.Debug("extract", attrs...)
	}(time.Now())
	return e.next.Extract(tree)
}
