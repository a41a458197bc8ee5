package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/toolmedia"
)

// Ensure LoggingRenderer implements toolmedia.ScreenshotRenderer.
var _ toolmedia.ScreenshotRenderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a ScreenshotRenderer with logging.
type LoggingRenderer struct {
	next   toolmedia.ScreenshotRenderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next toolmedia.ScreenshotRenderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render delegates to the wrapped renderer and logs the outcome.
func (r *LoggingRenderer) Render(ctx context.Context, pageURL string, vp toolmedia.Viewport) (imageURL string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("render",
			"url", pageURL,
			"viewport", vp.Name,
			"image", imageURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(ctx, pageURL, vp)
}
