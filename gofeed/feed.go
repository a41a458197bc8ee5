// Package gofeed reads video channel feeds with github.com/mmcdole/gofeed.
package gofeed

import (
	"context"
	"strings"

	"github.com/fwojciec/toolmedia"
	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
)

// Ensure ChannelFeed implements toolmedia.ChannelFeed at compile time.
var _ toolmedia.ChannelFeed = (*ChannelFeed)(nil)

// ChannelFeed reads YouTube channel Atom feeds. Feeds are retrieved through
// Fetcher so they share its timeout and User-Agent.
type ChannelFeed struct {
	Fetcher toolmedia.Fetcher
}

// NewChannelFeed creates a ChannelFeed reading through fetcher.
func NewChannelFeed(fetcher toolmedia.Fetcher) *ChannelFeed {
	return &ChannelFeed{Fetcher: fetcher}
}

// Videos returns up to toolmedia.MaxFeedVideos entries of the feed at
// feedURL in feed order. Entries without a link or title are skipped.
// Confidence is left at zero.
func (f *ChannelFeed) Videos(ctx context.Context, feedURL string) ([]toolmedia.VideoCandidate, error) {
	body, err := f.Fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	return ParseFeed(body)
}

// ParseFeed converts a channel feed document into video candidates.
func ParseFeed(body string) ([]toolmedia.VideoCandidate, error) {
	feed, err := gofeed.NewParser().ParseString(body)
	if err != nil {
		return nil, toolmedia.Errorf(toolmedia.EINVALID, "unreadable channel feed: %v", err)
	}

	var videos []toolmedia.VideoCandidate
	for _, item := range feed.Items {
		if len(videos) >= toolmedia.MaxFeedVideos {
			break
		}
		v, ok := candidate(item)
		if !ok {
			continue
		}
		videos = append(videos, v)
	}
	return videos, nil
}

func candidate(item *gofeed.Item) (toolmedia.VideoCandidate, bool) {
	title := strings.TrimSpace(item.Title)
	link := strings.TrimSpace(item.Link)
	id := extensionValue(item, "yt", "videoId")
	if link == "" && id != "" {
		link = toolmedia.YouTubeWatchURL(id)
	}
	if link == "" || title == "" {
		return toolmedia.VideoCandidate{}, false
	}

	description := strings.TrimSpace(item.Description)
	var thumbnail string
	if group := mediaGroup(item); group != nil {
		if d := group["description"]; len(d) > 0 && description == "" {
			description = strings.TrimSpace(d[0].Value)
		}
		if th := group["thumbnail"]; len(th) > 0 {
			thumbnail = th[0].Attrs["url"]
		}
	}
	if thumbnail == "" && item.Image != nil {
		thumbnail = item.Image.URL
	}
	if thumbnail == "" && id != "" {
		thumbnail = toolmedia.YouTubeThumbnailURL(id)
	}

	return toolmedia.VideoCandidate{
		URL:         link,
		Title:       title,
		Description: description,
		Thumbnail:   thumbnail,
		Source:      toolmedia.VideoYouTube,
	}, true
}

// extensionValue returns the text of the first <ns:name> element of item.
func extensionValue(item *gofeed.Item, ns, name string) string {
	if exts, ok := item.Extensions[ns]; ok {
		if els := exts[name]; len(els) > 0 {
			return strings.TrimSpace(els[0].Value)
		}
	}
	return ""
}

// mediaGroup returns the children of the item's <media:group>, or nil.
func mediaGroup(item *gofeed.Item) map[string][]ext.Extension {
	media, ok := item.Extensions["media"]
	if !ok {
		return nil
	}
	groups := media["group"]
	if len(groups) == 0 {
		return nil
	}
	return groups[0].Children
}
