package toolmedia

// Converter renders extracted page content as Markdown for a tool overview.
type Converter interface {
	// Convert transforms clean HTML, typically an Extractor's ContentHTML,
	// into Markdown.
	Convert(html string) (string, error)
}
