package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fwojciec/paperpress"
	"github.com/fwojciec/paperpress/convert"
	"github.com/fwojciec/paperpress/gofpdf"
	"github.com/fwojciec/paperpress/goquery"
	"github.com/fwojciec/paperpress/htmltomarkdown"
	pphttp "github.com/fwojciec/paperpress/http"
	"github.com/fwojciec/paperpress/readability"
	"github.com/fwojciec/paperpress/trafilatura"
)

// Dependencies holds the execution context shared by all commands.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve   ServeCmd   `cmd:"" help:"Run the article-to-PDF HTTP service"`
	Convert ConvertCmd `cmd:"" help:"Convert a single article URL to a local file"`
}

// ServeCmd runs the HTTP service.
type ServeCmd struct {
	Addr         string        `default:":8000" help:"Listen address"`
	Concurrency  int           `short:"c" default:"6" help:"Concurrent image fetch limit per document"`
	PageTimeout  time.Duration `default:"10s" help:"Timeout for page fetches"`
	ImageTimeout time.Duration `default:"5s" help:"Timeout per image fetch"`
	RPS          float64       `default:"4" help:"Image requests per second per domain"`
	RequestRPS   float64       `default:"10" help:"Overall request rate limit"`
	Verbose      bool          `short:"v" help:"Enable debug logging"`
}

// Run starts the server and blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	logger := newLogger(deps.Stderr, c.Verbose)

	fetcher := pphttp.NewFetcher(pphttp.WithTimeout(c.PageTimeout))
	defer fetcher.Close()

	images := pphttp.NewImageFetcher(pphttp.WithImageTimeout(c.ImageTimeout))
	limiter := pphttp.NewDomainLimiter(c.RPS)

	converter := &convert.Converter{
		Fetcher: fetcher,
		Locator: goquery.NewLocator(),
		Cleaner: goquery.NewCleaner(images,
			goquery.WithConcurrency(c.Concurrency),
			goquery.WithDomainLimiter(limiter),
			goquery.WithLogger(logger),
		),
		Renderer: gofpdf.NewRenderer(),
		Logger:   logger,
	}

	server := pphttp.NewServer(converter, fetcher, pphttp.NewTokenIssuer(), logger,
		pphttp.WithRequestLimit(c.RequestRPS, int(c.RequestRPS)+1),
	)
	return server.ListenAndServe(deps.Ctx, c.Addr)
}

// ConvertCmd converts one article URL and writes the result to a file.
type ConvertCmd struct {
	URL       string        `arg:"" required:"" help:"Article URL to convert"`
	Out       string        `short:"o" help:"Output path (default: article.pdf or article.md)"`
	Format    string        `default:"pdf" enum:"pdf,md" help:"Output format: pdf or md"`
	Extractor string        `default:"heuristic" enum:"heuristic,readability,trafilatura" help:"Content extraction strategy"`
	Timeout   time.Duration `default:"10s" help:"Timeout for page fetches"`
	Verbose   bool          `short:"v" help:"Enable debug logging"`
}

// Run performs the conversion.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	logger := newLogger(deps.Stderr, c.Verbose)

	fetcher := pphttp.NewFetcher(pphttp.WithTimeout(c.Timeout))
	defer fetcher.Close()

	converter := &convert.Converter{
		Fetcher: fetcher,
		Locator: newLocator(c.Extractor),
		Cleaner: goquery.NewCleaner(pphttp.NewImageFetcher(),
			goquery.WithLogger(logger),
		),
		Renderer: gofpdf.NewRenderer(),
		Logger:   logger,
	}

	out := c.Out
	if out == "" {
		out = "article." + c.Format
	}

	var data []byte
	switch c.Format {
	case "md":
		title, cleanHTML, err := converter.ConvertHTML(deps.Ctx, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", paperpress.ErrorMessage(err))
			return err
		}
		md, err := htmltomarkdown.NewConverter().Convert(cleanHTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", paperpress.ErrorMessage(err))
			return err
		}
		data = []byte("# " + title + "\n\n" + md)
	default:
		result, err := converter.Convert(deps.Ctx, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", paperpress.ErrorMessage(err))
			return err
		}
		data = result.PDF
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	fmt.Fprintf(deps.Stdout, "wrote %s (%d bytes)\n", out, len(data))
	return nil
}

// newLocator maps an extractor name to its implementation.
func newLocator(name string) paperpress.Locator {
	switch name {
	case "readability":
		return readability.NewLocator()
	case "trafilatura":
		return trafilatura.NewLocator()
	default:
		return goquery.NewLocator()
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
