// Package readability extracts a tool homepage's main content with
// go-readability, as an alternative to the trafilatura extractor.
package readability

import (
	"strings"

	"github.com/fwojciec/toolmedia"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements toolmedia.Extractor at compile time.
var _ toolmedia.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// Description is the article excerpt, which readability takes from the
// description meta tags when present.
func (e *Extractor) Extract(rawHTML string) (*toolmedia.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, toolmedia.Errorf(toolmedia.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &toolmedia.ExtractResult{
		Title:       article.Title,
		SiteName:    article.SiteName,
		Description: article.Excerpt,
		ContentHTML: article.Content,
	}, nil
}
