package tarifs

import "context"

// PayloadWriter persists a payload to storage, replacing any previous
// content wholesale. A failed write must never leave a partial payload
// behind in place of a previously valid one.
type PayloadWriter interface {
	WritePayload(ctx context.Context, p *Payload) error
}
