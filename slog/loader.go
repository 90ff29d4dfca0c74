package slog

import (
	"context"
	"log/slog"
	"time"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

// Ensure LoggingLoader implements carbon.DocumentLoader.
var _ carbon.DocumentLoader = (*LoggingLoader)(nil)

// LoggingLoader wraps a DocumentLoader with debug logging.
type LoggingLoader struct {
	next   carbon.DocumentLoader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next carbon.DocumentLoader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) Load(ctx context.Context, path string) (docs []*carbon.Document, err error) {
	defer func(begin time.Time) {
		l.logger.Info("load documents",
			"path", path,
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, path)
}
