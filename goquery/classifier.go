package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/toolmedia"
)

// Ensure PageClassifier implements toolmedia.PageClassifier at compile time.
var _ toolmedia.PageClassifier = (*PageClassifier)(nil)

// PageClassifier scores a homepage's anchors against the page rules of a
// scoring table.
type PageClassifier struct {
	table *toolmedia.ScoringTable
}

// NewPageClassifier creates a PageClassifier using table.
// A nil table selects toolmedia.DefaultScoringTable.
func NewPageClassifier(table *toolmedia.ScoringTable) *PageClassifier {
	if table == nil {
		table = toolmedia.DefaultScoringTable()
	}
	return &PageClassifier{table: table}
}

// Classify returns key page candidates linked from html.
//
// Rules are evaluated in table order and anchors in document order within
// each rule. An anchor is a candidate when its href contains one of the
// rule's keywords; its confidence comes from the keywords in its visible
// text. Candidates on other hosts, below the threshold, or already claimed
// by an earlier rule are dropped. The homepage itself is never returned.
func (c *PageClassifier) Classify(html string, baseURL string) ([]toolmedia.KeyPage, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, toolmedia.Errorf(toolmedia.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, toolmedia.Errorf(toolmedia.EINVALID, "failed to parse HTML: %v", err)
	}

	anchors := doc.Find("a[href]")
	seen := make(map[string]bool)
	var pages []toolmedia.KeyPage

	for _, rule := range c.table.PageRules {
		anchors.Each(func(_ int, sel *goquery.Selection) {
			href, _ := sel.Attr("href")
			if href == "" || isNonHTTPLink(href) {
				return
			}
			if !rule.MatchesHref(href) {
				return
			}

			resolved := resolveURL(base, href)
			if resolved == "" || seen[resolved] {
				return
			}
			if !isSameHost(base, resolved) {
				return
			}

			text := collapseSpace(sel.Text())
			confidence := c.table.PageConfidence(rule, text)
			if !c.table.KeepPage(confidence) {
				return
			}

			title := text
			if title == "" {
				title = rule.Type.Label()
			}

			seen[resolved] = true
			pages = append(pages, toolmedia.KeyPage{
				URL:         resolved,
				Title:       title,
				Description: rule.Type.Label() + " page",
				Type:        rule.Type,
				Confidence:  confidence,
			})
		})
	}

	return pages, nil
}
