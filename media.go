package toolmedia

import (
	"cmp"
	"slices"
)

// Selection limits.
const (
	MaxBestScreenshots = 3
	MaxBestVideos      = 2
)

// DiscoveryResult is everything found for a site in one discovery call.
type DiscoveryResult struct {
	Screenshots []ScreenshotCandidate `json:"screenshots"`
	Videos      []VideoCandidate      `json:"videos"`
	TotalFound  int                   `json:"totalFound"`

	// Diagnostics explains what each sub-operation did, including why
	// a result set is empty.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// NewDiscoveryResult builds a result with TotalFound computed.
// Nil slices are replaced with empty ones so JSON output has [] not null.
func NewDiscoveryResult(shots []ScreenshotCandidate, videos []VideoCandidate, diags []Diagnostic) DiscoveryResult {
	if shots == nil {
		shots = []ScreenshotCandidate{}
	}
	if videos == nil {
		videos = []VideoCandidate{}
	}
	return DiscoveryResult{
		Screenshots: shots,
		Videos:      videos,
		TotalFound:  len(shots) + len(videos),
		Diagnostics: diags,
	}
}

// SelectionResult is the bounded shortlist presented to an end user.
type SelectionResult struct {
	BestScreenshots []ScreenshotCandidate `json:"bestScreenshots"`
	BestVideos      []VideoCandidate      `json:"bestVideos"`
}

// SelectBestMedia picks up to three screenshots, preferring homepage ones,
// and the first two videos. Homepage screenshots keep their order; if fewer
// than three exist the remainder is backfilled from the other screenshots
// in their existing order. The input is not modified.
func SelectBestMedia(result DiscoveryResult) SelectionResult {
	best := make([]ScreenshotCandidate, 0, MaxBestScreenshots)
	var rest []ScreenshotCandidate
	for _, s := range result.Screenshots {
		if s.PageType == PageHomepage && len(best) < MaxBestScreenshots {
			best = append(best, s)
			continue
		}
		rest = append(rest, s)
	}
	for _, s := range rest {
		if len(best) >= MaxBestScreenshots {
			break
		}
		best = append(best, s)
	}

	n := min(len(result.Videos), MaxBestVideos)
	videos := make([]VideoCandidate, n)
	copy(videos, result.Videos[:n])

	return SelectionResult{
		BestScreenshots: best,
		BestVideos:      videos,
	}
}

// RankVideos dedupes videos by URL keeping the first occurrence, sorts them
// by descending confidence (stable) and truncates to MaxVideos.
func RankVideos(videos []VideoCandidate) []VideoCandidate {
	seen := make(map[string]bool, len(videos))
	ranked := make([]VideoCandidate, 0, len(videos))
	for _, v := range videos {
		if v.URL == "" || seen[v.URL] {
			continue
		}
		seen[v.URL] = true
		ranked = append(ranked, v)
	}

	slices.SortStableFunc(ranked, func(a, b VideoCandidate) int {
		return cmp.Compare(b.Confidence, a.Confidence)
	})

	if len(ranked) > MaxVideos {
		ranked = ranked[:MaxVideos]
	}
	return ranked
}
