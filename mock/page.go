package mock

import "github.com/fwojciec/toolmedia"

var _ toolmedia.PageClassifier = (*PageClassifier)(nil)

// PageClassifier is a mock implementation of toolmedia.PageClassifier.
type PageClassifier struct {
	ClassifyFn func(html, baseURL string) ([]toolmedia.KeyPage, error)
}

func (c *PageClassifier) Classify(html, baseURL string) ([]toolmedia.KeyPage, error) {
	return c.ClassifyFn(html, baseURL)
}

var _ toolmedia.NameExtractor = (*NameExtractor)(nil)

// NameExtractor is a mock implementation of toolmedia.NameExtractor.
type NameExtractor struct {
	ExtractNameFn        func(html string) string
	ExtractDescriptionFn func(html string) string
}

func (n *NameExtractor) ExtractName(html string) string {
	return n.ExtractNameFn(html)
}

func (n *NameExtractor) ExtractDescription(html string) string {
	return n.ExtractDescriptionFn(html)
}
