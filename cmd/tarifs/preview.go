package main

import (
	"encoding/json"

	"github.com/jomaia7338/tarifs"
	"github.com/jomaia7338/tarifs/goquery"
	"github.com/jomaia7338/tarifs/scrape"
)

// Run executes the preview command: fetch the page and print the assembled
// payload to stdout without touching the filesystem.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	fetcher := newFetcher(c.UserAgent, c.Timeout, c.Verbose, deps.Stderr)
	defer fetcher.Close()

	scraper := &scrape.Scraper{
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(),
	}

	payload, err := scraper.Run(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return tarifs.Errorf(tarifs.EINTERNAL, "encode payload: %v", err)
	}
	return nil
}
