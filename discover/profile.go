package discover

import (
	"cmp"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/toolmedia"
)

// DescribeTool builds a directory profile from the homepage: display name,
// one-line description and a markdown overview of the main content.
// Unlike DiscoverMedia it returns an error when the homepage cannot be
// fetched. Extraction failures only leave the overview empty.
func (e *Engine) DescribeTool(ctx context.Context, siteURL string) (*toolmedia.ToolProfile, error) {
	u, err := url.Parse(siteURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, toolmedia.Errorf(toolmedia.EINVALID, "invalid site URL %q", siteURL)
	}

	c := e.newCall(siteURL)
	html, err := c.homepage(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", siteURL, err)
	}

	profile := &toolmedia.ToolProfile{
		URL:         siteURL,
		Name:        e.Names.ExtractName(html),
		Description: e.Names.ExtractDescription(html),
	}

	extracted := c.extract(html)
	if extracted == nil {
		return profile, nil
	}

	if profile.Name == "" {
		profile.Name = toolmedia.NormalizeName(cmp.Or(strings.TrimSpace(extracted.SiteName), extracted.Title))
	}
	if profile.Description == "" {
		profile.Description = strings.TrimSpace(extracted.Description)
	}
	if e.Converter != nil && strings.TrimSpace(extracted.ContentHTML) != "" {
		md, err := e.Converter.Convert(extracted.ContentHTML)
		if err != nil {
			c.logger.Warn("overview conversion failed", "error", err)
		} else {
			profile.Overview = toolmedia.TruncateRunes(md, toolmedia.MaxOverviewRunes)
		}
	}
	return profile, nil
}

func (c *call) extract(html string) *toolmedia.ExtractResult {
	if c.engine.Extractor == nil {
		return nil
	}
	result, err := c.engine.Extractor.Extract(html)
	if err != nil {
		c.logger.Warn("content extraction failed", "error", err)
		return nil
	}
	return result
}
