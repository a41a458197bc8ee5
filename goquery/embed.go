package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/toolmedia"
)

// Ensure EmbedScanner implements toolmedia.EmbedScanner at compile time.
var _ toolmedia.EmbedScanner = (*EmbedScanner)(nil)

var (
	youTubeEmbedRe = regexp.MustCompile(`youtube(?:-nocookie)?\.com/embed/([A-Za-z0-9_-]+)`)
	vimeoEmbedRe   = regexp.MustCompile(`player\.vimeo\.com/video/(\d+)`)
	channelLinkRe  = regexp.MustCompile(`youtube\.com/channel/(UC[A-Za-z0-9_-]+)`)
)

// EmbedScanner finds YouTube and Vimeo players and channel links in HTML.
type EmbedScanner struct{}

// NewEmbedScanner creates a new EmbedScanner.
func NewEmbedScanner() *EmbedScanner {
	return &EmbedScanner{}
}

// ScanEmbeds returns all YouTube iframe embeds followed by all Vimeo ones.
// YouTube embeds are tagged toolmedia.VideoEmbedded and get a synthesized
// thumbnail; Vimeo embeds are tagged toolmedia.VideoVimeo.
func (s *EmbedScanner) ScanEmbeds(html string) ([]toolmedia.VideoCandidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, toolmedia.Errorf(toolmedia.EINVALID, "failed to parse HTML: %v", err)
	}

	iframes := doc.Find("iframe")
	var videos []toolmedia.VideoCandidate

	iframes.Each(func(_ int, sel *goquery.Selection) {
		m := youTubeEmbedRe.FindStringSubmatch(iframeSource(sel))
		if m == nil {
			return
		}
		videos = append(videos, toolmedia.VideoCandidate{
			URL:         toolmedia.YouTubeWatchURL(m[1]),
			Title:       iframeTitle(sel),
			Description: "Video embedded on the tool's website",
			Thumbnail:   toolmedia.YouTubeThumbnailURL(m[1]),
			Source:      toolmedia.VideoEmbedded,
		})
	})

	iframes.Each(func(_ int, sel *goquery.Selection) {
		m := vimeoEmbedRe.FindStringSubmatch(iframeSource(sel))
		if m == nil {
			return
		}
		videos = append(videos, toolmedia.VideoCandidate{
			URL:         "https://vimeo.com/" + m[1],
			Title:       iframeTitle(sel),
			Description: "Vimeo video embedded on the tool's website",
			Source:      toolmedia.VideoVimeo,
		})
	})

	return videos, nil
}

// ChannelFeeds returns feed URLs for YouTube channels linked from html,
// deduplicated and bounded by toolmedia.MaxChannelFeeds.
func (s *EmbedScanner) ChannelFeeds(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var feeds []string
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		m := channelLinkRe.FindStringSubmatch(href)
		if m == nil || seen[m[1]] {
			return true
		}
		seen[m[1]] = true
		feeds = append(feeds, "https://www.youtube.com/feeds/videos.xml?channel_id="+m[1])
		return len(feeds) < toolmedia.MaxChannelFeeds
	})
	return feeds
}

// iframeSource returns the iframe's src, or data-src for lazy-loaded players.
func iframeSource(sel *goquery.Selection) string {
	if src, ok := sel.Attr("src"); ok && src != "" {
		return src
	}
	src, _ := sel.Attr("data-src")
	return src
}

func iframeTitle(sel *goquery.Selection) string {
	if title := collapseSpace(sel.AttrOr("title", "")); title != "" {
		return title
	}
	return "Embedded video"
}
