package toolmedia

import (
	"fmt"
	"strings"
)

// MaxSearchQueries is the number of query templates actually issued.
const MaxSearchQueries = 2

// queryTemplates are expanded with the tool name, in priority order.
var queryTemplates = []string{
	"%s tutorial",
	"%s demo",
	"%s review",
	"%s how to use",
	"%s AI tool",
}

// NameExtractor reads page metadata.
type NameExtractor interface {
	// ExtractName returns the tool's display name or an empty string.
	// Candidates are og:site_name, og:title, <title> and the first <h1>,
	// each normalized with NormalizeName; the first non-empty one wins.
	ExtractName(html string) string

	// ExtractDescription returns the page's meta description, if any.
	ExtractDescription(html string) string
}

// NormalizeName keeps the text before the first "|" or "-" and trims it.
// "Acme AI | Write faster" becomes "Acme AI".
func NormalizeName(s string) string {
	if i := strings.IndexAny(s, "|-"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// SearchQueries returns the video search queries for a tool name.
// At most MaxSearchQueries are returned; an empty name yields none.
func SearchQueries(name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	queries := make([]string, 0, MaxSearchQueries)
	for _, tmpl := range queryTemplates[:MaxSearchQueries] {
		queries = append(queries, fmt.Sprintf(tmpl, name))
	}
	return queries
}
