package toolmedia

import "context"

// ViewportName identifies a screen-size preset.
type ViewportName string

// Viewport presets.
const (
	ViewportDesktop ViewportName = "desktop"
	ViewportTablet  ViewportName = "tablet"
	ViewportMobile  ViewportName = "mobile"
)

// Viewport is a fixed screen size used when requesting screenshots.
type Viewport struct {
	Name   ViewportName `json:"name"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
}

// Viewports returns the screenshot presets in capture order.
func Viewports() []Viewport {
	return []Viewport{
		{Name: ViewportDesktop, Width: 1920, Height: 1080},
		{Name: ViewportTablet, Width: 768, Height: 1024},
		{Name: ViewportMobile, Width: 375, Height: 667},
	}
}

// ScreenshotCandidate is a rendered screenshot of a key page at one viewport.
type ScreenshotCandidate struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PageType    PageType `json:"pageType"`
	Confidence  float64  `json:"confidence"`
	Viewport    Viewport `json:"viewport"`
}

// NewScreenshotCandidate builds the candidate for page rendered at vp.
func NewScreenshotCandidate(page KeyPage, vp Viewport, imageURL string) ScreenshotCandidate {
	return ScreenshotCandidate{
		URL:         imageURL,
		Title:       page.Title + " - " + string(vp.Name),
		Description: page.Description,
		PageType:    page.Type,
		Confidence:  page.Confidence,
		Viewport:    vp,
	}
}

// ScreenshotRenderer produces an embeddable image URL for a page at a viewport.
type ScreenshotRenderer interface {
	// Render returns the URL of a screenshot of pageURL at vp.
	Render(ctx context.Context, pageURL string, vp Viewport) (string, error)
}

// ScreenshotStore persists locally captured screenshots.
type ScreenshotStore interface {
	// Save writes image data under a name derived from pageURL and vp
	// and returns a URL the image can be loaded from.
	Save(ctx context.Context, pageURL string, vp Viewport, png []byte) (string, error)
}
