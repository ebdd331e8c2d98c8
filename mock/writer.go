package mock

import (
	"context"

	"github.com/jomaia7338/tarifs"
)

var _ tarifs.PayloadWriter = (*PayloadWriter)(nil)

// PayloadWriter is a mock implementation of tarifs.PayloadWriter.
type PayloadWriter struct {
	WritePayloadFn func(ctx context.Context, p *tarifs.Payload) error
}

func (w *PayloadWriter) WritePayload(ctx context.Context, p *tarifs.Payload) error {
	return w.WritePayloadFn(ctx, p)
}
