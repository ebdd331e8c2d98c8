package main

import (
	"fmt"
	"log/slog"

	"github.com/jomaia7338/tarifs"
	"github.com/jomaia7338/tarifs/fs"
	"github.com/jomaia7338/tarifs/goquery"
	"github.com/jomaia7338/tarifs/scrape"
	tarifsslog "github.com/jomaia7338/tarifs/slog"
)

// Run executes the scrape command: fetch the page, reconcile the tariff
// bands, and replace the output file.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	fetcher := newFetcher(c.UserAgent, c.Timeout, c.Verbose, deps.Stderr)
	defer fetcher.Close()

	var writer tarifs.PayloadWriter = fs.NewWriter(c.Out)
	if c.Verbose {
		logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))
		writer = tarifsslog.NewLoggingPayloadWriter(writer, logger)
	}

	scraper := &scrape.Scraper{
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(),
		Writer:    writer,
	}

	payload, err := scraper.Run(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Écrit: %s\n", c.Out)
	for _, band := range payload.EDFOASurplus {
		fmt.Fprintf(deps.Stdout, "- %s: %g €/kWh\n", band.Range, band.EurPerKWh)
	}
	return nil
}
