package toolmedia

import "strings"

// MaxKeyPages bounds the key pages kept per crawl, homepage included.
const MaxKeyPages = 4

// PageType identifies the role a page plays on a tool's website.
type PageType string

// Page types recognised by the classifier.
const (
	PageHomepage  PageType = "homepage"
	PagePricing   PageType = "pricing"
	PageFeatures  PageType = "features"
	PageDashboard PageType = "dashboard"
	PageDemo      PageType = "demo"
)

// Label returns a human-readable label for the page type, e.g. "Pricing".
func (t PageType) Label() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// KeyPage is a same-domain page representative of a tool's product surface.
type KeyPage struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        PageType `json:"pageType"`
	Confidence  float64  `json:"confidence"`
}

// NewHomepage returns the KeyPage for a crawl's seed URL.
// The homepage always has full confidence.
func NewHomepage(siteURL, description string) KeyPage {
	if description == "" {
		description = "Main landing page"
	}
	return KeyPage{
		URL:         siteURL,
		Title:       "Homepage",
		Description: description,
		Type:        PageHomepage,
		Confidence:  1.0,
	}
}

// PageClassifier finds key pages linked from a homepage.
type PageClassifier interface {
	// Classify parses html and returns candidate key pages other than the
	// homepage, in discovery order. Links are resolved against baseURL and
	// links to other hosts are dropped.
	Classify(html string, baseURL string) ([]KeyPage, error)
}
