package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/toolmedia"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Renderer implements toolmedia.ScreenshotRenderer at compile time.
var _ toolmedia.ScreenshotRenderer = (*Renderer)(nil)

// Renderer captures screenshots in a local headless browser and hands the
// PNG bytes to a ScreenshotStore, returning the URL the store assigns.
type Renderer struct {
	manager   *BrowserManager
	store     toolmedia.ScreenshotStore
	timeout   time.Duration
	userAgent string
}

// NewRenderer creates a Renderer drawing pages in bm and saving them to store.
// WithBrowserManager is ignored; bm is always used.
func NewRenderer(bm *BrowserManager, store toolmedia.ScreenshotStore, opts ...Option) *Renderer {
	o := newOptions(opts)
	return &Renderer{
		manager:   bm,
		store:     store,
		timeout:   o.timeout,
		userAgent: o.userAgent,
	}
}

// Render loads pageURL at the viewport size and captures the visible area.
func (r *Renderer) Render(ctx context.Context, pageURL string, vp toolmedia.Viewport) (string, error) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return "", toolmedia.Errorf(toolmedia.EINVALID, "invalid viewport %dx%d", vp.Width, vp.Height)
	}

	png, err := r.capture(ctx, pageURL, vp)
	if err != nil {
		return "", err
	}
	return r.store.Save(ctx, pageURL, vp, png)
}

func (r *Renderer) capture(ctx context.Context, pageURL string, vp toolmedia.Viewport) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	page, err := r.manager.openPage(ctx, r.userAgent)
	if err != nil {
		return nil, err
	}
	defer page.Close()

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             vp.Width,
		Height:            vp.Height,
		DeviceScaleFactor: 1,
		Mobile:            vp.Name == toolmedia.ViewportMobile,
	}); err != nil {
		return nil, fmt.Errorf("setting viewport: %w", err)
	}
	if err := page.Navigate(pageURL); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	png, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("capturing screenshot: %w", err)
	}
	return png, nil
}
