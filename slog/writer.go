package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jomaia7338/tarifs"
)

// Ensure LoggingPayloadWriter implements tarifs.PayloadWriter.
var _ tarifs.PayloadWriter = (*LoggingPayloadWriter)(nil)

// LoggingPayloadWriter wraps a PayloadWriter with operation logging.
type LoggingPayloadWriter struct {
	next   tarifs.PayloadWriter
	logger *slog.Logger
}

// NewLoggingPayloadWriter creates a new LoggingPayloadWriter.
func NewLoggingPayloadWriter(next tarifs.PayloadWriter, logger *slog.Logger) *LoggingPayloadWriter {
	return &LoggingPayloadWriter{next: next, logger: logger}
}

// WritePayload delegates to the wrapped writer and logs the operation.
func (w *LoggingPayloadWriter) WritePayload(ctx context.Context, p *tarifs.Payload) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("payload write",
			"bands", len(p.EDFOASurplus),
			"date", p.LastUpdated,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WritePayload(ctx, p)
}
