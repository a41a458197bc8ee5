package http

import (
	"context"
	"encoding/json"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/fwojciec/toolmedia"
)

// YouTubeResultsURL is the public search results page scraped by ScrapeSearcher.
const YouTubeResultsURL = "https://www.youtube.com/results?search_query="

// ytInitialDataMarker precedes the JSON result dataset in the results page.
const ytInitialDataMarker = "ytInitialData"

// maxSearchResults bounds the candidates returned for one query.
const maxSearchResults = 10

// Ensure searchers implement toolmedia.VideoSearcher at compile time.
var (
	_ toolmedia.VideoSearcher = (*ScrapeSearcher)(nil)
	_ toolmedia.VideoSearcher = (*APISearcher)(nil)
)

// NewVideoSearcher returns an APISearcher when apiKey is set and a
// ScrapeSearcher reading through fetcher otherwise.
func NewVideoSearcher(apiKey string, fetcher toolmedia.Fetcher) toolmedia.VideoSearcher {
	if apiKey != "" {
		return &APISearcher{APIKey: apiKey}
	}
	return &ScrapeSearcher{Fetcher: fetcher}
}

// APISearcher is the keyed video search surface. It is not implemented and
// always reports ENOTIMPLEMENTED so callers can tell it apart from a search
// that found nothing.
type APISearcher struct {
	APIKey string
}

// Search always returns ENOTIMPLEMENTED.
func (s *APISearcher) Search(ctx context.Context, query string) ([]toolmedia.VideoCandidate, error) {
	return nil, toolmedia.Errorf(toolmedia.ENOTIMPLEMENTED, "keyed video search is not implemented")
}

// ScrapeSearcher searches YouTube by fetching the public results page and
// decoding the result dataset embedded in it.
type ScrapeSearcher struct {
	Fetcher toolmedia.Fetcher
}

// Search fetches the results page for query and returns its video results
// in page order. Results without an ID or title are skipped.
// Returns EINVALID when the page carries no decodable dataset.
func (s *ScrapeSearcher) Search(ctx context.Context, query string) ([]toolmedia.VideoCandidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, toolmedia.Errorf(toolmedia.EINVALID, "search query required")
	}

	page, err := s.Fetcher.Fetch(ctx, YouTubeResultsURL+url.QueryEscape(query))
	if err != nil {
		return nil, err
	}
	return ParseResultsPage(page)
}

// ParseResultsPage extracts video candidates from a YouTube results page.
func ParseResultsPage(page string) ([]toolmedia.VideoCandidate, error) {
	data, err := initialData(page)
	if err != nil {
		return nil, err
	}

	var videos []toolmedia.VideoCandidate
	walkRenderers(data, func(r videoRenderer) bool {
		if v, ok := r.candidate(); ok {
			videos = append(videos, v)
		}
		return len(videos) < maxSearchResults
	})
	return videos, nil
}

// initialData decodes the first JSON object following the dataset marker.
func initialData(page string) (any, error) {
	i := strings.Index(page, ytInitialDataMarker)
	if i < 0 {
		return nil, toolmedia.Errorf(toolmedia.EINVALID, "results page has no %s payload", ytInitialDataMarker)
	}
	rest := page[i+len(ytInitialDataMarker):]
	start := strings.IndexByte(rest, '{')
	if start < 0 {
		return nil, toolmedia.Errorf(toolmedia.EINVALID, "results page has no %s payload", ytInitialDataMarker)
	}

	// The decoder stops after one value, ignoring the script that follows.
	var data any
	if err := json.NewDecoder(strings.NewReader(rest[start:])).Decode(&data); err != nil {
		return nil, toolmedia.Errorf(toolmedia.EINVALID, "malformed %s payload: %v", ytInitialDataMarker, err)
	}
	return data, nil
}

// walkRenderers visits every "videoRenderer" object depth-first, array
// elements in order and object keys sorted, until fn returns false.
func walkRenderers(node any, fn func(videoRenderer) bool) bool {
	switch n := node.(type) {
	case map[string]any:
		if raw, ok := n["videoRenderer"].(map[string]any); ok {
			if !fn(videoRenderer(raw)) {
				return false
			}
		}
		for _, k := range slices.Sorted(maps.Keys(n)) {
			if k == "videoRenderer" {
				continue
			}
			if !walkRenderers(n[k], fn) {
				return false
			}
		}
	case []any:
		for _, child := range n {
			if !walkRenderers(child, fn) {
				return false
			}
		}
	}
	return true
}

// videoRenderer is one search result object from the dataset.
type videoRenderer map[string]any

func (r videoRenderer) candidate() (toolmedia.VideoCandidate, bool) {
	id, _ := r["videoId"].(string)
	title := runsText(r["title"])
	if id == "" || title == "" {
		return toolmedia.VideoCandidate{}, false
	}

	thumb := toolmedia.YouTubeThumbnailURL(id)
	if t, ok := r["thumbnail"].(map[string]any); ok {
		if list, ok := t["thumbnails"].([]any); ok && len(list) > 0 {
			if first, ok := list[0].(map[string]any); ok {
				if u, ok := first["url"].(string); ok && u != "" {
					thumb = u
				}
			}
		}
	}

	var duration string
	if l, ok := r["lengthText"].(map[string]any); ok {
		duration, _ = l["simpleText"].(string)
	}

	return toolmedia.VideoCandidate{
		URL:         toolmedia.YouTubeWatchURL(id),
		Title:       title,
		Description: runsText(r["descriptionSnippet"]),
		Thumbnail:   thumb,
		Duration:    duration,
		Source:      toolmedia.VideoYouTube,
	}, true
}

// runsText joins the text of a {"runs":[{"text":...}]} object, falling back
// to its "simpleText".
func runsText(v any) string {
	obj, ok := v.(map[string]any)
	if !ok {
		return ""
	}
	if runs, ok := obj["runs"].([]any); ok {
		var b strings.Builder
		for _, run := range runs {
			if m, ok := run.(map[string]any); ok {
				if s, ok := m["text"].(string); ok {
					b.WriteString(s)
				}
			}
		}
		return strings.TrimSpace(b.String())
	}
	s, _ := obj["simpleText"].(string)
	return strings.TrimSpace(s)
}
