package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/lexso"
)

// Ensure LoggingExtractor implements lexso.ArticleExtractor.
var _ lexso.ArticleExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an ArticleExtractor with logging.
type LoggingExtractor struct {
	next   lexso.ArticleExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next lexso.ArticleExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractArticles delegates to the wrapped extractor and logs the result.
func (e *LoggingExtractor) ExtractArticles(html string) (articles []*lexso.Article, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("article extraction",
			"bytes", len(html),
			"articles", len(articles),
			"superlemmas", len(lexso.Superlemmas(articles)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractArticles(html)
}
