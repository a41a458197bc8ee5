package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/toolmedia"
	"github.com/fwojciec/toolmedia/discover"
	"github.com/fwojciec/toolmedia/fs"
	"github.com/fwojciec/toolmedia/gofeed"
	"github.com/fwojciec/toolmedia/goquery"
	"github.com/fwojciec/toolmedia/htmltomarkdown"
	tmhttp "github.com/fwojciec/toolmedia/http"
	"github.com/fwojciec/toolmedia/readability"
	"github.com/fwojciec/toolmedia/rod"
	tmslog "github.com/fwojciec/toolmedia/slog"
	"github.com/fwojciec/toolmedia/trafilatura"
	"github.com/fwojciec/toolmedia/yaml"
)

// baseRetryDelay is the first homepage retry delay; each further retry doubles it.
const baseRetryDelay = 500 * time.Millisecond

// engineOptions are the command flags that shape the engine.
type engineOptions struct {
	siteURL        string
	renderJS       bool
	screenshotsDir string
	scoringPath    string
	extractor      string
	timeout        time.Duration
	concurrency    int
	retries        int
	verbose        bool
}

// retryDelays returns n exponentially growing delays.
func retryDelays(n int) []time.Duration {
	delays := make([]time.Duration, 0, max(n, 0))
	for i := range max(n, 0) {
		delays = append(delays, baseRetryDelay<<i)
	}
	return delays
}

// newEngine wires the discovery engine for opts. The returned cleanup
// releases any browser the engine started.
func (m *Main) newEngine(cfg toolmedia.Config, opts engineOptions, stderr io.Writer) (*discover.Engine, func(), error) {
	cfg.FetchTimeout = opts.timeout
	cfg.Concurrency = opts.concurrency
	if opts.scoringPath != "" {
		table, err := yaml.LoadScoringTable(opts.scoringPath)
		if err != nil {
			printError(stderr, err)
			return nil, nil, err
		}
		cfg.Scoring = table
	}
	cfg = cfg.WithDefaults()

	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i]()
		}
	}

	var bm *rod.BrowserManager
	if m.Fetcher == nil && (opts.renderJS || opts.screenshotsDir != "") {
		var err error
		bm, err = rod.NewBrowserManager()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render-js and --screenshots-dir")
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		closers = append(closers, bm.Close)
	}

	fetcher := m.Fetcher
	switch {
	case fetcher != nil:
	case opts.renderJS:
		rf, err := rod.NewFetcher(
			rod.WithBrowserManager(bm),
			rod.WithFetchTimeout(cfg.FetchTimeout),
			rod.WithUserAgent(cfg.UserAgent),
		)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rf
	default:
		fetcher = tmhttp.NewFetcher(
			tmhttp.WithTimeout(cfg.FetchTimeout),
			tmhttp.WithUserAgent(cfg.UserAgent),
		)
	}

	var renderer toolmedia.ScreenshotRenderer = tmhttp.NewThumbnailRenderer(cfg.ScreenshotAPIKey)
	if bm != nil && opts.screenshotsDir != "" {
		renderer = rod.NewRenderer(bm, fs.NewScreenshotStore(opts.screenshotsDir),
			rod.WithFetchTimeout(cfg.FetchTimeout),
			rod.WithUserAgent(cfg.UserAgent),
		)
	}

	var extractor toolmedia.Extractor = trafilatura.NewExtractor()
	if opts.extractor == "readability" {
		extractor = readability.NewExtractor()
	}

	var logger *slog.Logger
	if opts.verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		fetcher = tmslog.NewLoggingFetcher(fetcher, logger)
		renderer = tmslog.NewLoggingRenderer(renderer, logger)
	}

	limiter := discover.NewDomainLimiter(discover.DefaultRequestsPerSecond)
	shared := discover.NewLimitedFetcher(fetcher, limiter)

	var searcher toolmedia.VideoSearcher = tmhttp.NewVideoSearcher(cfg.VideoAPIKey, shared)
	var feeds toolmedia.ChannelFeed = gofeed.NewChannelFeed(shared)
	if logger != nil {
		searcher = tmslog.NewLoggingSearcher(searcher, logger)
		feeds = tmslog.NewLoggingChannelFeed(feeds, logger)
	}

	// The caller owns an injected fetcher.
	if m.Fetcher == nil {
		closers = append(closers, fetcher.Close)
	}

	engine := &discover.Engine{
		Fetcher:      fetcher,
		Classifier:   goquery.NewPageClassifier(cfg.Scoring),
		Names:        goquery.NewNameExtractor(),
		Embeds:       goquery.NewEmbedScanner(),
		Renderer:     renderer,
		Searcher:     searcher,
		Feeds:        feeds,
		Extractor:    extractor,
		Converter:    htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(opts.siteURL)),
		RateLimiter:  limiter,
		Scoring:      cfg.Scoring,
		Logger:       logger,
		Concurrency:  cfg.Concurrency,
		FetchTimeout: cfg.FetchTimeout,
		RetryDelays:  retryDelays(opts.retries),
	}
	return engine, cleanup, nil
}
