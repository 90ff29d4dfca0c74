package slog

import (
	"context"
	"log/slog"
	"time"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

// Ensure LoggingEmbedder implements carbon.Embedder.
var _ carbon.Embedder = (*LoggingEmbedder)(nil)

// LoggingEmbedder wraps an Embedder with debug logging.
type LoggingEmbedder struct {
	next   carbon.Embedder
	logger *slog.Logger
}

// NewLoggingEmbedder creates a new LoggingEmbedder.
func NewLoggingEmbedder(next carbon.Embedder, logger *slog.Logger) *LoggingEmbedder {
	return &LoggingEmbedder{next: next, logger: logger}
}

// Embed delegates to the wrapped embedder and logs the operation.
func (e *LoggingEmbedder) Embed(ctx context.Context, text string) (vector []float32, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("embed",
			"chars", len(text),
			"dimensions", len(vector),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Embed(ctx, text)
}

// EmbedBatch delegates to the wrapped embedder and logs the operation.
func (e *LoggingEmbedder) EmbedBatch(ctx context.Context, texts []string) (vectors [][]float32, err error) {
	defer func(begin time.Time) {
		e.logger.Info("embed batch",
			"texts", len(texts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.EmbedBatch(ctx, texts)
}
