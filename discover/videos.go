package discover

import (
	"context"

	"github.com/fwojciec/toolmedia"
	"golang.org/x/sync/errgroup"
)

func (c *call) extractToolName(ctx context.Context) (string, bool) {
	html, err := c.homepage(ctx)
	if err != nil {
		c.diags.skip(toolmedia.StageName, c.siteURL, "homepage unreachable")
		return "", false
	}

	name := c.engine.Names.ExtractName(html)
	if name == "" {
		c.diags.skip(toolmedia.StageName, c.siteURL, "no name in page metadata")
		return "", false
	}
	c.diags.add(toolmedia.Diagnostic{
		Stage:  toolmedia.StageName,
		Target: c.siteURL,
		Status: toolmedia.StatusSuccess,
		Reason: name,
	})
	return name, true
}

func (c *call) discoverVideos(ctx context.Context) []toolmedia.VideoCandidate {
	name, hasName := c.extractToolName(ctx)
	html, homeErr := c.homepage(ctx)

	var queries []string
	switch {
	case !hasName:
		c.diags.skip(toolmedia.StageSearch, c.siteURL, "no tool name")
	case c.engine.Searcher == nil:
		c.diags.skip(toolmedia.StageSearch, c.siteURL, "no video searcher configured")
	default:
		queries = toolmedia.SearchQueries(name)
	}

	var feedURLs []string
	switch {
	case homeErr != nil:
		c.diags.skip(toolmedia.StageFeed, c.siteURL, "homepage unreachable")
	case c.engine.Feeds == nil:
		c.diags.skip(toolmedia.StageFeed, c.siteURL, "no channel feed reader configured")
	default:
		feedURLs = c.engine.Embeds.ChannelFeeds(html)
		if len(feedURLs) > toolmedia.MaxChannelFeeds {
			feedURLs = feedURLs[:toolmedia.MaxChannelFeeds]
		}
		if len(feedURLs) == 0 {
			c.diags.skip(toolmedia.StageFeed, c.siteURL, "no channel links")
		}
	}

	searched := make([][]toolmedia.VideoCandidate, len(queries))
	fed := make([][]toolmedia.VideoCandidate, len(feedURLs))

	var g errgroup.Group
	g.SetLimit(c.engine.concurrency())
	for i, q := range queries {
		g.Go(func() error {
			searched[i] = c.search(ctx, q)
			return nil
		})
	}
	for i, u := range feedURLs {
		g.Go(func() error {
			fed[i] = c.readFeed(ctx, u, name)
			return nil
		})
	}

	embedded := c.scanEmbeds(html, homeErr)
	_ = g.Wait()

	var all []toolmedia.VideoCandidate
	for _, vs := range searched {
		all = append(all, vs...)
	}
	all = append(all, embedded...)
	for _, vs := range fed {
		all = append(all, vs...)
	}
	return toolmedia.RankVideos(all)
}

// search runs one query and scores its results against it.
func (c *call) search(ctx context.Context, query string) []toolmedia.VideoCandidate {
	var results []toolmedia.VideoCandidate
	var err error
	if perr := protect(func() {
		ctx, cancel := c.withTimeout(ctx)
		defer cancel()
		results, err = c.engine.Searcher.Search(ctx, query)
	}); perr != nil {
		err = perr
	}
	c.diags.record(toolmedia.StageSearch, query, err)
	if err != nil {
		return nil
	}

	videos := make([]toolmedia.VideoCandidate, 0, len(results))
	for _, v := range results {
		if v.URL == "" || v.Title == "" {
			continue
		}
		v.Confidence = c.scoring.VideoRelevance(query, v.Title, v.Description)
		videos = append(videos, v)
	}
	return videos
}

// readFeed reads one channel feed and scores its entries against the tool name.
func (c *call) readFeed(ctx context.Context, feedURL, name string) []toolmedia.VideoCandidate {
	var entries []toolmedia.VideoCandidate
	var err error
	if perr := protect(func() {
		ctx, cancel := c.withTimeout(ctx)
		defer cancel()
		entries, err = c.engine.Feeds.Videos(ctx, feedURL)
	}); perr != nil {
		err = perr
	}
	c.diags.record(toolmedia.StageFeed, feedURL, err)
	if err != nil {
		return nil
	}

	if len(entries) > toolmedia.MaxFeedVideos {
		entries = entries[:toolmedia.MaxFeedVideos]
	}
	videos := make([]toolmedia.VideoCandidate, 0, len(entries))
	for _, v := range entries {
		if v.URL == "" || v.Title == "" {
			continue
		}
		v.Confidence = c.scoring.FeedConfidence(name, v.Title, v.Description)
		videos = append(videos, v)
	}
	return videos
}

// scanEmbeds returns the videos embedded in the homepage with their fixed
// confidences.
func (c *call) scanEmbeds(html string, homeErr error) []toolmedia.VideoCandidate {
	if homeErr != nil {
		c.diags.skip(toolmedia.StageEmbed, c.siteURL, "homepage unreachable")
		return nil
	}

	found, err := c.engine.Embeds.ScanEmbeds(html)
	c.diags.record(toolmedia.StageEmbed, c.siteURL, err)
	if err != nil {
		return nil
	}

	videos := make([]toolmedia.VideoCandidate, 0, len(found))
	for _, v := range found {
		v.Confidence = c.scoring.EmbedConfidence(v.Source)
		videos = append(videos, v)
	}
	return videos
}
