// Package discover orchestrates media discovery for a tool's website. It
// combines key page classification, screenshot rendering, name extraction
// and video discovery into one fail-soft DiscoveryResult.
//
// Engine depends only on the collaborator interfaces in the root package;
// concrete implementations are wired by the caller.
package discover

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/toolmedia"
)

// Engine discovers screenshots and videos for a site.
//
// Fetcher, Classifier, Names, Embeds and Renderer are required. Searcher
// and Feeds are optional; a nil one skips its branch with a skipped
// diagnostic. Extractor and Converter are only used by DescribeTool.
//
// An Engine holds no per-call state and is safe for concurrent use.
type Engine struct {
	Fetcher    toolmedia.Fetcher
	Classifier toolmedia.PageClassifier
	Names      toolmedia.NameExtractor
	Embeds     toolmedia.EmbedScanner
	Renderer   toolmedia.ScreenshotRenderer
	Searcher   toolmedia.VideoSearcher
	Feeds      toolmedia.ChannelFeed

	Extractor toolmedia.Extractor
	Converter toolmedia.Converter

	// RateLimiter throttles homepage fetches and renders per host.
	// Nil disables throttling.
	RateLimiter toolmedia.DomainLimiter

	// Scoring is the ranking policy. Nil selects DefaultScoringTable.
	Scoring *toolmedia.ScoringTable

	// Logger receives diagnostics as they are recorded. Nil discards them.
	Logger *slog.Logger

	// Concurrency bounds parallel renders, searches and feed reads within
	// one call. Zero selects toolmedia.DefaultConcurrency.
	Concurrency int

	// FetchTimeout bounds every outbound operation. Zero selects
	// toolmedia.DefaultFetchTimeout.
	FetchTimeout time.Duration

	// RetryDelays are the backoff delays for the homepage fetch.
	// Nil selects DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration
}

// FindKeyPages returns the homepage followed by up to three classified key
// pages. It never fails: an unreachable homepage yields the homepage alone.
func (e *Engine) FindKeyPages(ctx context.Context, siteURL string) []toolmedia.KeyPage {
	return e.newCall(siteURL).findKeyPages(ctx)
}

// CaptureScreenshots renders every key page at every viewport preset and
// returns the screenshots sorted by composite score. Failed renders are
// skipped.
func (e *Engine) CaptureScreenshots(ctx context.Context, siteURL string) []toolmedia.ScreenshotCandidate {
	return e.newCall(siteURL).captureScreenshots(ctx)
}

// ExtractToolName returns the tool's display name from the homepage
// metadata. The boolean is false when the homepage is unreachable or
// carries no usable name.
func (e *Engine) ExtractToolName(ctx context.Context, siteURL string) (string, bool) {
	return e.newCall(siteURL).extractToolName(ctx)
}

// DiscoverVideos returns up to toolmedia.MaxVideos videos found by search,
// in the homepage's embeds and in linked channel feeds, ranked by confidence.
func (e *Engine) DiscoverVideos(ctx context.Context, siteURL string) []toolmedia.VideoCandidate {
	return e.newCall(siteURL).discoverVideos(ctx)
}

func (e *Engine) scoring() *toolmedia.ScoringTable {
	if e.Scoring == nil {
		return toolmedia.DefaultScoringTable()
	}
	return e.Scoring
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e.Logger
}

func (e *Engine) concurrency() int {
	if e.Concurrency <= 0 {
		return toolmedia.DefaultConcurrency
	}
	return e.Concurrency
}

func (e *Engine) timeout() time.Duration {
	if e.FetchTimeout <= 0 {
		return toolmedia.DefaultFetchTimeout
	}
	return e.FetchTimeout
}

func (e *Engine) retryDelays() []time.Duration {
	if e.RetryDelays == nil {
		return DefaultRetryDelays()
	}
	return e.RetryDelays
}
