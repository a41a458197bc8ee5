// Package fs stores locally rendered screenshots on disk.
package fs

import (
	"net/url"
	"path"
	"strings"

	"github.com/fwojciec/toolmedia"
)

// ScreenshotPath converts a page URL and viewport to a relative file path.
// Example: https://acme.ai/pricing at desktop → acme.ai/pricing/desktop.png
func ScreenshotPath(pageURL string, vp toolmedia.Viewport) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", toolmedia.Errorf(toolmedia.EINVALID, "invalid page URL: %v", err)
	}
	if u.Hostname() == "" {
		return "", toolmedia.Errorf(toolmedia.EINVALID, "page URL %q has no host", pageURL)
	}
	if vp.Name == "" {
		return "", toolmedia.Errorf(toolmedia.EINVALID, "viewport name required")
	}

	// Clean resolves ".." so paths never escape the host directory.
	p := strings.Trim(path.Clean("/"+u.Path), "/")
	if p == "" {
		p = "index"
	}
	if u.RawQuery != "" {
		p += "_" + sanitize(u.RawQuery)
	}

	return path.Join(strings.ToLower(u.Hostname()), p, string(vp.Name)+".png"), nil
}

// sanitize replaces characters that are awkward in file names.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, s)
}
