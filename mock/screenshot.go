package mock

import (
	"context"

	"github.com/fwojciec/toolmedia"
)

var _ toolmedia.ScreenshotRenderer = (*ScreenshotRenderer)(nil)

// ScreenshotRenderer is a mock implementation of toolmedia.ScreenshotRenderer.
type ScreenshotRenderer struct {
	RenderFn func(ctx context.Context, pageURL string, vp toolmedia.Viewport) (string, error)
}

func (r *ScreenshotRenderer) Render(ctx context.Context, pageURL string, vp toolmedia.Viewport) (string, error) {
	return r.RenderFn(ctx, pageURL, vp)
}

var _ toolmedia.ScreenshotStore = (*ScreenshotStore)(nil)

// ScreenshotStore is a mock implementation of toolmedia.ScreenshotStore.
type ScreenshotStore struct {
	SaveFn func(ctx context.Context, pageURL string, vp toolmedia.Viewport, png []byte) (string, error)
}

func (s *ScreenshotStore) Save(ctx context.Context, pageURL string, vp toolmedia.Viewport, png []byte) (string, error) {
	return s.SaveFn(ctx, pageURL, vp, png)
}
