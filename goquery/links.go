// Package goquery implements HTML inspection for toolmedia using goquery:
// key page classification, tool name extraction and video embed scanning.
package goquery

import (
	"net/url"
	"strings"
)

// resolveURL resolves href against base.
// Returns empty string if the href cannot be parsed or if the resolved URL
// is the base page itself. Fragments are stripped for deduplication.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	if samePage(base, resolved) {
		return ""
	}
	return resolved.String()
}

// samePage reports whether two URLs address the same page, treating an
// empty path and "/" as equal.
func samePage(a, b *url.URL) bool {
	pathOf := func(u *url.URL) string {
		if u.Path == "" {
			return "/"
		}
		return u.Path
	}
	return a.Scheme == b.Scheme &&
		a.Host == b.Host &&
		pathOf(a) == pathOf(b) &&
		a.RawQuery == b.RawQuery
}

// isSameHost checks if the resolved URL has the same hostname as the base URL.
// Subdomains are considered different hosts.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Hostname(), base.Hostname())
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:") ||
		strings.HasPrefix(href, "#")
}

// collapseSpace joins the whitespace-separated fields of s with single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
