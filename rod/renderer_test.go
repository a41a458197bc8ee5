//go:build integration

package rod_test

import (
	"bytes"
	"context"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/toolmedia"
	"github.com/fwojciec/toolmedia/mock"
	"github.com/fwojciec/toolmedia/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body style="background:#c00"><h1>Acme</h1></body></html>`))
	}))
	defer srv.Close()

	bm, err := rod.NewBrowserManager()
	require.NoError(t, err)
	defer bm.Close()

	var saved []byte
	store := &mock.ScreenshotStore{
		SaveFn: func(_ context.Context, pageURL string, vp toolmedia.Viewport, data []byte) (string, error) {
			saved = data
			return "file:///tmp/acme-" + string(vp.Name) + ".png", nil
		},
	}

	vp := toolmedia.Viewport{Name: toolmedia.ViewportMobile, Width: 375, Height: 667}
	got, err := rod.NewRenderer(bm, store).Render(context.Background(), srv.URL, vp)

	require.NoError(t, err)
	assert.Equal(t, "file:///tmp/acme-mobile.png", got)

	img, err := png.Decode(bytes.NewReader(saved))
	require.NoError(t, err)
	assert.Equal(t, 375, img.Bounds().Dx())
	assert.Equal(t, 667, img.Bounds().Dy())
}
