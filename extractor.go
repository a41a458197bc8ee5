package toolmedia

// ExtractResult holds the main content and metadata extracted from a page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// SiteName is the site name from metadata, when the extractor knows it.
	SiteName string

	// Description is the page summary from metadata.
	Description string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}
