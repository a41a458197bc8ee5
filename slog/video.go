package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/toolmedia"
)

var (
	_ toolmedia.VideoSearcher = (*LoggingSearcher)(nil)
	_ toolmedia.ChannelFeed   = (*LoggingChannelFeed)(nil)
)

// LoggingSearcher wraps a VideoSearcher with logging.
type LoggingSearcher struct {
	next   toolmedia.VideoSearcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next toolmedia.VideoSearcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the result count.
func (s *LoggingSearcher) Search(ctx context.Context, query string) (videos []toolmedia.VideoCandidate, err error) {
	defer func(begin time.Time) {
		s.logger.Info("video search",
			"query", query,
			"count", len(videos),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}

// LoggingChannelFeed wraps a ChannelFeed with logging.
type LoggingChannelFeed struct {
	next   toolmedia.ChannelFeed
	logger *slog.Logger
}

// NewLoggingChannelFeed creates a new LoggingChannelFeed.
func NewLoggingChannelFeed(next toolmedia.ChannelFeed, logger *slog.Logger) *LoggingChannelFeed {
	return &LoggingChannelFeed{next: next, logger: logger}
}

// Videos delegates to the wrapped feed reader and logs the entry count.
func (f *LoggingChannelFeed) Videos(ctx context.Context, feedURL string) (videos []toolmedia.VideoCandidate, err error) {
	defer func(begin time.Time) {
		f.logger.Info("channel feed",
			"url", feedURL,
			"count", len(videos),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Videos(ctx, feedURL)
}
