package discover

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/fwojciec/toolmedia"
)

// call holds the state of one discovery call. The homepage is fetched at
// most once and shared by every stage of the call.
type call struct {
	engine  *Engine
	siteURL string
	scoring *toolmedia.ScoringTable
	logger  *slog.Logger
	diags   *recorder

	once     sync.Once
	homeHTML string
	homeErr  error
}

func (e *Engine) newCall(siteURL string) *call {
	logger := e.logger().With("site", siteURL)
	return &call{
		engine:  e,
		siteURL: siteURL,
		scoring: e.scoring(),
		logger:  logger,
		diags:   &recorder{logger: logger},
	}
}

// homepage fetches the site URL once per call, retrying per RetryDelays.
// The first caller's context governs the fetch.
func (c *call) homepage(ctx context.Context) (string, error) {
	c.once.Do(func() {
		fetch := func(ctx context.Context, url string) (string, error) {
			if err := waitHost(ctx, c.engine.RateLimiter, url); err != nil {
				return "", err
			}
			ctx, cancel := context.WithTimeout(ctx, c.engine.timeout())
			defer cancel()
			return c.engine.Fetcher.Fetch(ctx, url)
		}
		c.homeHTML, c.homeErr = FetchWithRetryDelays(ctx, c.siteURL, fetch, c.logger, c.engine.retryDelays())
		c.diags.record(toolmedia.StageFetch, c.siteURL, c.homeErr)
	})
	return c.homeHTML, c.homeErr
}

// withTimeout bounds one outbound operation of the call.
func (c *call) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.engine.timeout())
}

// protect runs fn and converts a panic into an error.
func protect(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	fn()
	return nil
}

// recorder collects the diagnostics of one call. It is safe for
// concurrent use.
type recorder struct {
	mu     sync.Mutex
	diags  []toolmedia.Diagnostic
	logger *slog.Logger
}

// record adds a diagnostic whose status is derived from err.
func (r *recorder) record(stage toolmedia.Stage, target string, err error) {
	d := toolmedia.Diagnostic{
		Stage:  stage,
		Target: target,
		Status: toolmedia.StatusForError(err),
	}
	if err != nil {
		d.Reason = reason(err)
	}
	r.add(d)
}

// reason is the application message for toolmedia errors and the raw
// error text otherwise.
func reason(err error) string {
	var e *toolmedia.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// skip adds a skipped diagnostic.
func (r *recorder) skip(stage toolmedia.Stage, target, reason string) {
	r.add(toolmedia.Diagnostic{
		Stage:  stage,
		Target: target,
		Status: toolmedia.StatusSkipped,
		Reason: reason,
	})
}

func (r *recorder) add(d toolmedia.Diagnostic) {
	level := slog.LevelDebug
	switch d.Status {
	case toolmedia.StatusFailed:
		level = slog.LevelWarn
	case toolmedia.StatusNotImplemented:
		level = slog.LevelInfo
	}
	r.logger.Log(context.Background(), level, "discovery stage",
		"stage", d.Stage, "target", d.Target, "status", d.Status, "reason", d.Reason)

	r.mu.Lock()
	r.diags = append(r.diags, d)
	r.mu.Unlock()
}

var stageOrder = []toolmedia.Stage{
	toolmedia.StageFetch,
	toolmedia.StageClassify,
	toolmedia.StageScreenshot,
	toolmedia.StageName,
	toolmedia.StageSearch,
	toolmedia.StageEmbed,
	toolmedia.StageFeed,
}

// list returns the diagnostics ordered by stage, then target, so output
// does not depend on completion order.
func (r *recorder) list() []toolmedia.Diagnostic {
	r.mu.Lock()
	out := slices.Clone(r.diags)
	r.mu.Unlock()

	slices.SortStableFunc(out, func(a, b toolmedia.Diagnostic) int {
		if c := cmp.Compare(slices.Index(stageOrder, a.Stage), slices.Index(stageOrder, b.Stage)); c != 0 {
			return c
		}
		return cmp.Compare(a.Target, b.Target)
	})
	return out
}
