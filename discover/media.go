package discover

import (
	"context"

	"github.com/fwojciec/toolmedia"
	"golang.org/x/sync/errgroup"
)

// DiscoverMedia captures screenshots and discovers videos for siteURL
// concurrently and merges them into one result. It never fails: a stage
// that errors is recorded in the result's diagnostics, and a branch that
// panics degrades the whole result to empty lists.
func (e *Engine) DiscoverMedia(ctx context.Context, siteURL string) toolmedia.DiscoveryResult {
	c := e.newCall(siteURL)

	var shots []toolmedia.ScreenshotCandidate
	var videos []toolmedia.VideoCandidate

	var g errgroup.Group
	g.Go(func() error {
		return protect(func() { shots = c.captureScreenshots(ctx) })
	})
	g.Go(func() error {
		return protect(func() { videos = c.discoverVideos(ctx) })
	})

	if err := g.Wait(); err != nil {
		c.logger.Error("media discovery failed", "error", err)
		return toolmedia.NewDiscoveryResult(nil, nil, c.diags.list())
	}

	result := toolmedia.NewDiscoveryResult(shots, videos, c.diags.list())
	c.logger.Info("media discovery complete",
		"screenshots", len(result.Screenshots),
		"videos", len(result.Videos),
		"totalFound", result.TotalFound)
	return result
}
