package toolmedia

import (
	"cmp"
	"math"
	"slices"
	"strings"
)

// PageRule maps a page type to the keywords that identify it.
type PageRule struct {
	Type     PageType `yaml:"type" json:"type"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// MatchesHref reports whether href contains any of the rule's keywords.
func (r PageRule) MatchesHref(href string) bool {
	return containsAny(strings.ToLower(href), r.Keywords)
}

// ScoringTable holds the heuristic weights used to rank discovered media.
// The zero value is not usable; start from DefaultScoringTable.
type ScoringTable struct {
	// PageRules are evaluated in order; the first rule to claim a URL keeps it.
	PageRules []PageRule `yaml:"pageRules"`

	// PageBonus is added to the keyword ratio of every page candidate.
	PageBonus float64 `yaml:"pageBonus"`

	// PageThreshold is the confidence a page candidate must exceed to be kept.
	PageThreshold float64 `yaml:"pageThreshold"`

	TypePriority     map[PageType]float64     `yaml:"typePriority"`
	ViewportPriority map[ViewportName]float64 `yaml:"viewportPriority"`

	// TermWeight is awarded per query term found in a video's text.
	TermWeight    float64  `yaml:"termWeight"`
	IntentTerms   []string `yaml:"intentTerms"`
	IntentBonus   float64  `yaml:"intentBonus"`
	OfficialTerms []string `yaml:"officialTerms"`
	OfficialBonus float64  `yaml:"officialBonus"`

	EmbeddedYouTube float64 `yaml:"embeddedYouTube"`
	EmbeddedVimeo   float64 `yaml:"embeddedVimeo"`

	// ChannelFeedFloor is the minimum confidence of a channel feed video.
	ChannelFeedFloor float64 `yaml:"channelFeedFloor"`
}

// DefaultScoringTable returns the built-in scoring policy.
func DefaultScoringTable() *ScoringTable {
	return &ScoringTable{
		PageRules: []PageRule{
			{Type: PagePricing, Keywords: []string{"pricing", "plans", "subscribe"}},
			{Type: PageFeatures, Keywords: []string{"features", "capabilities", "how-it-works"}},
			{Type: PageDashboard, Keywords: []string{"dashboard", "app", "platform", "workspace"}},
			{Type: PageDemo, Keywords: []string{"demo", "try", "playground", "sandbox"}},
		},
		PageBonus:     0.2,
		PageThreshold: 0.3,
		TypePriority: map[PageType]float64{
			PageHomepage:  5,
			PageFeatures:  4,
			PagePricing:   3,
			PageDashboard: 2,
			PageDemo:      1,
		},
		ViewportPriority: map[ViewportName]float64{
			ViewportDesktop: 3,
			ViewportTablet:  2,
			ViewportMobile:  1,
		},
		TermWeight:       0.2,
		IntentTerms:      []string{"tutorial", "demo", "how to"},
		IntentBonus:      0.3,
		OfficialTerms:    []string{"official", "overview"},
		OfficialBonus:    0.2,
		EmbeddedYouTube:  0.9,
		EmbeddedVimeo:    0.8,
		ChannelFeedFloor: 0.5,
	}
}

// Validate returns an error if the table cannot be used for scoring.
func (t *ScoringTable) Validate() error {
	if len(t.PageRules) == 0 {
		return Errorf(EINVALID, "scoring table requires page rules")
	}
	for _, r := range t.PageRules {
		if r.Type == "" || r.Type == PageHomepage {
			return Errorf(EINVALID, "invalid page rule type %q", r.Type)
		}
		if len(r.Keywords) == 0 {
			return Errorf(EINVALID, "page rule %q has no keywords", r.Type)
		}
		if _, ok := t.TypePriority[r.Type]; !ok {
			return Errorf(EINVALID, "missing type priority for %q", r.Type)
		}
	}
	if _, ok := t.TypePriority[PageHomepage]; !ok {
		return Errorf(EINVALID, "missing type priority for %q", PageHomepage)
	}
	for _, vp := range Viewports() {
		if _, ok := t.ViewportPriority[vp.Name]; !ok {
			return Errorf(EINVALID, "missing viewport priority for %q", vp.Name)
		}
	}
	for name, v := range map[string]float64{
		"pageThreshold":    t.PageThreshold,
		"embeddedYouTube":  t.EmbeddedYouTube,
		"embeddedVimeo":    t.EmbeddedVimeo,
		"channelFeedFloor": t.ChannelFeedFloor,
	} {
		if v < 0 || v > 1 {
			return Errorf(EINVALID, "%s must be within [0,1], got %v", name, v)
		}
	}
	return nil
}

// PageConfidence scores anchor text against a rule: the share of the rule's
// keywords found in text plus PageBonus, capped at 1.0.
func (t *ScoringTable) PageConfidence(rule PageRule, text string) float64 {
	if len(rule.Keywords) == 0 {
		return 0
	}
	text = strings.ToLower(text)
	var matches int
	for _, kw := range rule.Keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			matches++
		}
	}
	score := float64(matches)/float64(len(rule.Keywords)) + t.PageBonus
	return math.Min(score, 1.0)
}

// KeepPage reports whether a page confidence clears the threshold.
func (t *ScoringTable) KeepPage(confidence float64) bool {
	return confidence > t.PageThreshold
}

// ScreenshotScore is the composite sort key of a screenshot:
// type priority + viewport priority + confidence.
func (t *ScoringTable) ScreenshotScore(s ScreenshotCandidate) float64 {
	return t.TypePriority[s.PageType] + t.ViewportPriority[s.Viewport.Name] + s.Confidence
}

// VideoRelevance scores a search result against the query that found it.
func (t *ScoringTable) VideoRelevance(query, title, description string) float64 {
	text := strings.ToLower(title + " " + description)

	var score float64
	for _, term := range strings.Fields(strings.ToLower(query)) {
		if strings.Contains(text, term) {
			score += t.TermWeight
		}
	}
	if containsAny(text, t.IntentTerms) {
		score += t.IntentBonus
	}
	if containsAny(text, t.OfficialTerms) {
		score += t.OfficialBonus
	}
	return math.Min(score, 1.0)
}

// EmbedConfidence returns the fixed confidence of a video embedded in the site.
func (t *ScoringTable) EmbedConfidence(source VideoSource) float64 {
	switch source {
	case VideoEmbedded, VideoYouTube:
		return t.EmbeddedYouTube
	case VideoVimeo:
		return t.EmbeddedVimeo
	}
	return 0
}

// FeedConfidence scores a channel feed video, never below ChannelFeedFloor.
func (t *ScoringTable) FeedConfidence(toolName, title, description string) float64 {
	return math.Max(t.ChannelFeedFloor, t.VideoRelevance(toolName, title, description))
}

// SortScreenshots orders screenshots by descending ScreenshotScore.
// The sort is stable.
func (t *ScoringTable) SortScreenshots(shots []ScreenshotCandidate) {
	slices.SortStableFunc(shots, func(a, b ScreenshotCandidate) int {
		return cmp.Compare(t.ScreenshotScore(b), t.ScreenshotScore(a))
	})
}

// containsAny reports whether s contains any of terms, ignoring case of terms.
// s is expected to be lower case already.
func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if term != "" && strings.Contains(s, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
