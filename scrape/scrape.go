// Package scrape orchestrates the tariff extraction pipeline. Table text is
// pulled out of the fetched page, scanned for candidate capacity-range/price
// rows, and reconciled against the fixed band table into the output payload.
package scrape

import (
	"context"
	"time"

	"github.com/jomaia7338/tarifs"
)

// Scraper runs the fetch → extract → match → reconcile → write pipeline.
// All collaborators are injected. A nil Writer skips persistence, which is
// what the preview path uses.
type Scraper struct {
	Fetcher   tarifs.Fetcher
	Extractor tarifs.TableExtractor
	Writer    tarifs.PayloadWriter

	// Now supplies the payload's generation date.
	// Defaults to time.Now when nil.
	Now func() time.Time
}

// Run scrapes url and returns the assembled payload. Fetch and write
// failures are fatal. A page with no recognizable tariff rows is not an
// error: every band resolves to its fallback price.
func (s *Scraper) Run(ctx context.Context, url string) (*tarifs.Payload, error) {
	markup, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, tarifs.Errorf(tarifs.EUNAVAILABLE, "fetch %s: %v", url, err)
	}

	rows := Candidates(s.Extractor.TableText(markup))

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	payload := BuildPayload(rows, url, now())

	if s.Writer != nil {
		if err := s.Writer.WritePayload(ctx, payload); err != nil {
			return nil, err
		}
	}
	return payload, nil
}
