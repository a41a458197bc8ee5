package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/toolmedia"
)

// Ensure NameExtractor implements toolmedia.NameExtractor at compile time.
var _ toolmedia.NameExtractor = (*NameExtractor)(nil)

// NameExtractor reads a tool's name and description from page metadata.
type NameExtractor struct{}

// NewNameExtractor creates a new NameExtractor.
func NewNameExtractor() *NameExtractor {
	return &NameExtractor{}
}

// ExtractName returns the first non-empty normalized candidate among
// og:site_name, og:title, <title> and the first <h1>.
func (e *NameExtractor) ExtractName(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	candidates := []string{
		metaContent(doc, "og:site_name"),
		metaContent(doc, "og:title"),
		doc.Find("title").First().Text(),
		doc.Find("h1").First().Text(),
	}
	for _, c := range candidates {
		if name := toolmedia.NormalizeName(collapseSpace(c)); name != "" {
			return name
		}
	}
	return ""
}

// ExtractDescription returns the meta description, falling back to og:description.
func (e *NameExtractor) ExtractDescription(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	if desc := metaContent(doc, "description"); desc != "" {
		return desc
	}
	return metaContent(doc, "og:description")
}

// metaContent returns the trimmed content of the first meta tag whose
// property or name attribute equals key.
func metaContent(doc *goquery.Document, key string) string {
	sel := doc.Find(`meta[property="` + key + `"], meta[name="` + key + `"]`).First()
	content, _ := sel.Attr("content")
	return collapseSpace(content)
}
