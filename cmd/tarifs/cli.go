package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/jomaia7338/tarifs"
	tarifshttp "github.com/jomaia7338/tarifs/http"
	tarifsslog "github.com/jomaia7338/tarifs/slog"
)

// Dependencies holds streams and context for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape  ScrapeCmd  `cmd:"" default:"1" help:"Fetch the tariff page and update the JSON file"`
	Preview PreviewCmd `cmd:"" help:"Fetch the tariff page and print the payload without writing"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL       string        `default:"${source_url}" env:"TARIFS_URL" help:"Tariff page URL"`
	Out       string        `short:"o" default:"data/tarifs.json" env:"TARIFS_OUT" help:"Output JSON path"`
	UserAgent string        `default:"${user_agent}" env:"TARIFS_USER_AGENT" help:"User-Agent header sent to the source site"`
	Timeout   time.Duration `default:"30s" help:"Fetch timeout"`
	Verbose   bool          `short:"v" help:"Log fetch and write operations to stderr"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	URL       string        `default:"${source_url}" env:"TARIFS_URL" help:"Tariff page URL"`
	UserAgent string        `default:"${user_agent}" env:"TARIFS_USER_AGENT" help:"User-Agent header sent to the source site"`
	Timeout   time.Duration `default:"30s" help:"Fetch timeout"`
	Verbose   bool          `short:"v" help:"Log fetch operations to stderr"`
}

// newFetcher builds the HTTP fetcher for a command, optionally wrapped with
// the logging decorator.
func newFetcher(userAgent string, timeout time.Duration, verbose bool, stderr io.Writer) tarifs.Fetcher {
	fetcher := tarifshttp.NewFetcher(
		tarifshttp.WithTimeout(timeout),
		tarifshttp.WithUserAgent(userAgent),
	)
	if !verbose {
		return fetcher
	}
	logger := slog.New(slog.NewTextHandler(stderr, nil))
	return tarifsslog.NewLoggingFetcher(fetcher, logger)
}
