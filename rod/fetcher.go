package rod

import (
	"context"
	"time"

	"github.com/fwojciec/toolmedia"
)

// Ensure Fetcher implements toolmedia.Fetcher at compile time.
var _ toolmedia.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager   *BrowserManager
	ownsBM    bool
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher or Renderer.
type Option func(*options)

type options struct {
	manager   *BrowserManager
	timeout   time.Duration
	userAgent string
}

// WithFetchTimeout bounds each page load. Defaults to toolmedia.DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithUserAgent overrides the browser's User-Agent for every page.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// WithBrowserManager shares an existing browser. The caller keeps ownership
// and must close it.
func WithBrowserManager(bm *BrowserManager) Option {
	return func(o *options) {
		o.manager = bm
	}
}

func newOptions(opts []Option) options {
	o := options{
		timeout:   toolmedia.DefaultFetchTimeout,
		userAgent: toolmedia.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewFetcher creates a Fetcher. Unless WithBrowserManager is given it
// launches its own browser, released by Close.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	o := newOptions(opts)

	f := &Fetcher{
		manager:   o.manager,
		timeout:   o.timeout,
		userAgent: o.userAgent,
	}
	if f.manager == nil {
		bm, err := NewBrowserManager()
		if err != nil {
			return nil, err
		}
		f.manager = bm
		f.ownsBM = true
	}
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
// Returns EINVALID once the browser has been closed.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.manager.openPage(ctx, f.userAgent)
	if err != nil {
		return "", err
	}
	defer page.Close()

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	return page.HTML()
}

// LauncherPID returns the process ID of the underlying browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// Close releases the browser if the Fetcher launched it.
// Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.ownsBM {
		return nil
	}
	return f.manager.Close()
}
