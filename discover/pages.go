package discover

import (
	"context"
	"fmt"

	"github.com/fwojciec/toolmedia"
	"golang.org/x/sync/errgroup"
)

func (c *call) findKeyPages(ctx context.Context) []toolmedia.KeyPage {
	html, err := c.homepage(ctx)
	if err != nil {
		c.diags.skip(toolmedia.StageClassify, c.siteURL, "homepage unreachable")
		return []toolmedia.KeyPage{toolmedia.NewHomepage(c.siteURL, "")}
	}

	pages := []toolmedia.KeyPage{
		toolmedia.NewHomepage(c.siteURL, c.engine.Names.ExtractDescription(html)),
	}

	found, err := c.engine.Classifier.Classify(html, c.siteURL)
	c.diags.record(toolmedia.StageClassify, c.siteURL, err)
	pages = append(pages, found...)

	if len(pages) > toolmedia.MaxKeyPages {
		pages = pages[:toolmedia.MaxKeyPages]
	}
	return pages
}

func (c *call) captureScreenshots(ctx context.Context) []toolmedia.ScreenshotCandidate {
	if _, err := c.homepage(ctx); err != nil {
		c.diags.skip(toolmedia.StageScreenshot, c.siteURL, "homepage unreachable")
		return []toolmedia.ScreenshotCandidate{}
	}

	pages := c.findKeyPages(ctx)
	viewports := toolmedia.Viewports()

	// One slot per page/viewport pair keeps collection free of locks.
	slots := make([]*toolmedia.ScreenshotCandidate, len(pages)*len(viewports))

	var g errgroup.Group
	g.SetLimit(c.engine.concurrency())
	for i, page := range pages {
		for j, vp := range viewports {
			slot := i*len(viewports) + j
			g.Go(func() error {
				target := fmt.Sprintf("%s@%s", page.URL, vp.Name)
				var imageURL string
				var err error
				if perr := protect(func() { imageURL, err = c.render(ctx, page.URL, vp) }); perr != nil {
					err = perr
				}
				if err == nil && imageURL == "" {
					err = toolmedia.Errorf(toolmedia.EINTERNAL, "renderer returned no image URL")
				}
				c.diags.record(toolmedia.StageScreenshot, target, err)
				if err != nil {
					return nil
				}
				shot := toolmedia.NewScreenshotCandidate(page, vp, imageURL)
				slots[slot] = &shot
				return nil
			})
		}
	}
	_ = g.Wait()

	shots := make([]toolmedia.ScreenshotCandidate, 0, len(slots))
	for _, s := range slots {
		if s != nil {
			shots = append(shots, *s)
		}
	}
	c.scoring.SortScreenshots(shots)
	return shots
}

func (c *call) render(ctx context.Context, pageURL string, vp toolmedia.Viewport) (string, error) {
	if err := waitHost(ctx, c.engine.RateLimiter, pageURL); err != nil {
		return "", err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	return c.engine.Renderer.Render(ctx, pageURL, vp)
}
