package http

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/toolmedia"
)

// Screenshot URL templates. Placeholders are {width}, {height}, {url}
// (query-escaped page URL) and {key}.
const (
	PublicScreenshotTemplate = "https://image.thum.io/get/width/{width}/crop/{height}/noanimate/{url}"
	KeyedScreenshotTemplate  = "https://api.screenshotone.com/take?access_key={key}&url={url}&viewport_width={width}&viewport_height={height}&format=jpg"
)

// Ensure ThumbnailRenderer implements toolmedia.ScreenshotRenderer at compile time.
var _ toolmedia.ScreenshotRenderer = (*ThumbnailRenderer)(nil)

// ThumbnailRenderer delegates rendering to a hosted screenshot service by
// filling in a URL template. The returned URL is directly embeddable; no
// request is made until a client loads the image.
type ThumbnailRenderer struct {
	template string
	apiKey   string
}

// NewThumbnailRenderer creates a renderer for the given API key.
// An empty key selects PublicScreenshotTemplate, otherwise KeyedScreenshotTemplate.
func NewThumbnailRenderer(apiKey string) *ThumbnailRenderer {
	tmpl := PublicScreenshotTemplate
	if apiKey != "" {
		tmpl = KeyedScreenshotTemplate
	}
	return &ThumbnailRenderer{template: tmpl, apiKey: apiKey}
}

// NewTemplateRenderer creates a renderer for a custom URL template.
func NewTemplateRenderer(template, apiKey string) *ThumbnailRenderer {
	return &ThumbnailRenderer{template: template, apiKey: apiKey}
}

// Render returns the screenshot URL for pageURL at vp.
// Returns EINVALID for URLs that are not absolute http(s) URLs.
func (r *ThumbnailRenderer) Render(ctx context.Context, pageURL string, vp toolmedia.Viewport) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	u, err := url.Parse(pageURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", toolmedia.Errorf(toolmedia.EINVALID, "cannot render %q: not an absolute http(s) URL", pageURL)
	}
	if vp.Width <= 0 || vp.Height <= 0 {
		return "", toolmedia.Errorf(toolmedia.EINVALID, "invalid viewport %dx%d", vp.Width, vp.Height)
	}

	replacer := strings.NewReplacer(
		"{width}", strconv.Itoa(vp.Width),
		"{height}", strconv.Itoa(vp.Height),
		"{url}", url.QueryEscape(pageURL),
		"{key}", url.QueryEscape(r.apiKey),
	)
	return replacer.Replace(r.template), nil
}
