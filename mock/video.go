package mock

import (
	"context"

	"github.com/fwojciec/toolmedia"
)

var _ toolmedia.VideoSearcher = (*VideoSearcher)(nil)

// VideoSearcher is a mock implementation of toolmedia.VideoSearcher.
type VideoSearcher struct {
	SearchFn func(ctx context.Context, query string) ([]toolmedia.VideoCandidate, error)
}

func (s *VideoSearcher) Search(ctx context.Context, query string) ([]toolmedia.VideoCandidate, error) {
	return s.SearchFn(ctx, query)
}

var _ toolmedia.EmbedScanner = (*EmbedScanner)(nil)

// EmbedScanner is a mock implementation of toolmedia.EmbedScanner.
type EmbedScanner struct {
	ScanEmbedsFn   func(html string) ([]toolmedia.VideoCandidate, error)
	ChannelFeedsFn func(html string) []string
}

func (s *EmbedScanner) ScanEmbeds(html string) ([]toolmedia.VideoCandidate, error) {
	return s.ScanEmbedsFn(html)
}

func (s *EmbedScanner) ChannelFeeds(html string) []string {
	return s.ChannelFeedsFn(html)
}

var _ toolmedia.ChannelFeed = (*ChannelFeed)(nil)

// ChannelFeed is a mock implementation of toolmedia.ChannelFeed.
type ChannelFeed struct {
	VideosFn func(ctx context.Context, feedURL string) ([]toolmedia.VideoCandidate, error)
}

func (f *ChannelFeed) Videos(ctx context.Context, feedURL string) ([]toolmedia.VideoCandidate, error) {
	return f.VideosFn(ctx, feedURL)
}
