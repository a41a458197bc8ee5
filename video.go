package toolmedia

import "context"

// Video discovery limits.
const (
	// MaxVideos bounds the videos returned by discovery.
	MaxVideos = 10

	// MaxChannelFeeds bounds the channel feeds read per site.
	MaxChannelFeeds = 2

	// MaxFeedVideos bounds the entries taken from one channel feed.
	MaxFeedVideos = 5
)

// VideoSource identifies where a video candidate was found.
type VideoSource string

// Video sources. VideoEmbedded marks YouTube players embedded in the site itself.
const (
	VideoYouTube  VideoSource = "youtube"
	VideoVimeo    VideoSource = "vimeo"
	VideoEmbedded VideoSource = "embedded"
)

// VideoCandidate is a tutorial, demo or embedded video for a tool.
type VideoCandidate struct {
	URL         string      `json:"url"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Thumbnail   string      `json:"thumbnail"`
	Duration    string      `json:"duration"`
	Source      VideoSource `json:"source"`
	Confidence  float64     `json:"confidence"`
}

// YouTubeWatchURL returns the canonical watch URL for a YouTube video ID.
func YouTubeWatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// YouTubeThumbnailURL returns the high-quality thumbnail URL for a YouTube video ID.
func YouTubeThumbnailURL(id string) string {
	return "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
}

// VideoSearcher queries a video platform.
type VideoSearcher interface {
	// Search returns videos matching query. Confidence is left at zero;
	// relevance scoring is the caller's concern.
	// Returns ENOTIMPLEMENTED if the search surface is unavailable.
	Search(ctx context.Context, query string) ([]VideoCandidate, error)
}

// EmbedScanner finds videos referenced directly in a page's markup.
type EmbedScanner interface {
	// ScanEmbeds returns one candidate per YouTube or Vimeo iframe in html,
	// in document order. Confidence is left at zero.
	ScanEmbeds(html string) ([]VideoCandidate, error)

	// ChannelFeeds returns the feed URLs of video channels linked from html.
	ChannelFeeds(html string) []string
}

// ChannelFeed reads recent uploads from a video channel feed.
type ChannelFeed interface {
	// Videos returns the entries of the feed at feedURL, newest first.
	Videos(ctx context.Context, feedURL string) ([]VideoCandidate, error)
}
