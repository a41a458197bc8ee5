package discover_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/toolmedia"
	"github.com/fwojciec/toolmedia/discover"
	"github.com/fwojciec/toolmedia/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const siteURL = "https://acme.ai/"

const homeHTML = `<html><head><title>Acme | Write faster</title></head><body></body></html>`

// newTestEngine returns an engine whose collaborators succeed with empty
// results. Tests replace the collaborators they exercise.
func newTestEngine() *discover.Engine {
	return &discover.Engine{
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return homeHTML, nil
			},
		},
		Classifier: &mock.PageClassifier{
			ClassifyFn: func(html, baseURL string) ([]toolmedia.KeyPage, error) {
				return nil, nil
			},
		},
		Names: &mock.NameExtractor{
			ExtractNameFn:        func(html string) string { return "Acme" },
			ExtractDescriptionFn: func(html string) string { return "" },
		},
		Embeds: &mock.EmbedScanner{
			ScanEmbedsFn:   func(html string) ([]toolmedia.VideoCandidate, error) { return nil, nil },
			ChannelFeedsFn: func(html string) []string { return nil },
		},
		Renderer: &mock.ScreenshotRenderer{
			RenderFn: func(ctx context.Context, pageURL string, vp toolmedia.Viewport) (string, error) {
				return fmt.Sprintf("https://shots.test/%s?url=%s", vp.Name, pageURL), nil
			},
		},
		Searcher: &mock.VideoSearcher{
			SearchFn: func(ctx context.Context, query string) ([]toolmedia.VideoCandidate, error) {
				return nil, nil
			},
		},
		RetryDelays: []time.Duration{},
	}
}

func keyPage(path string, typ toolmedia.PageType, confidence float64) toolmedia.KeyPage {
	return toolmedia.KeyPage{
		URL:         "https://acme.ai" + path,
		Title:       typ.Label(),
		Description: typ.Label() + " page",
		Type:        typ,
		Confidence:  confidence,
	}
}

func youtube(id, title string) toolmedia.VideoCandidate {
	return toolmedia.VideoCandidate{
		URL:       toolmedia.YouTubeWatchURL(id),
		Title:     title,
		Thumbnail: toolmedia.YouTubeThumbnailURL(id),
		Source:    toolmedia.VideoYouTube,
	}
}

func urls(videos []toolmedia.VideoCandidate) []string {
	out := make([]string, len(videos))
	for i, v := range videos {
		out[i] = v.URL
	}
	return out
}

func TestEngine_FindKeyPages(t *testing.T) {
	t.Parallel()

	t.Run("returns only the homepage when the fetch fails", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("dial tcp: connection refused")
			},
		}
		e.Classifier = &mock.PageClassifier{
			ClassifyFn: func(html, baseURL string) ([]toolmedia.KeyPage, error) {
				t.Error("classifier should not be called")
				return nil, nil
			},
		}

		pages := e.FindKeyPages(context.Background(), siteURL)

		require.Len(t, pages, 1)
		assert.Equal(t, toolmedia.NewHomepage(siteURL, ""), pages[0])
	})

	t.Run("puts the homepage first and truncates to four pages", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Names = &mock.NameExtractor{
			ExtractNameFn:        func(html string) string { return "Acme" },
			ExtractDescriptionFn: func(html string) string { return "AI writing assistant" },
		}
		e.Classifier = &mock.PageClassifier{
			ClassifyFn: func(html, baseURL string) ([]toolmedia.KeyPage, error) {
				assert.Equal(t, homeHTML, html)
				assert.Equal(t, siteURL, baseURL)
				return []toolmedia.KeyPage{
					keyPage("/pricing", toolmedia.PagePricing, 0.53),
					keyPage("/features", toolmedia.PageFeatures, 0.53),
					keyPage("/dashboard", toolmedia.PageDashboard, 0.45),
					keyPage("/demo", toolmedia.PageDemo, 0.45),
				}, nil
			},
		}

		pages := e.FindKeyPages(context.Background(), siteURL)

		require.Len(t, pages, toolmedia.MaxKeyPages)
		assert.Equal(t, toolmedia.PageHomepage, pages[0].Type)
		assert.Equal(t, "AI writing assistant", pages[0].Description)
		assert.InDelta(t, 1.0, pages[0].Confidence, 1e-9)
		assert.Equal(t, "https://acme.ai/pricing", pages[1].URL)
		assert.Equal(t, "https://acme.ai/features", pages[2].URL)
		assert.Equal(t, "https://acme.ai/dashboard", pages[3].URL)
	})

	t.Run("keeps the homepage when classification fails", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Classifier = &mock.PageClassifier{
			ClassifyFn: func(html, baseURL string) ([]toolmedia.KeyPage, error) {
				return nil, errors.New("parse error")
			},
		}

		pages := e.FindKeyPages(context.Background(), siteURL)

		require.Len(t, pages, 1)
		assert.Equal(t, siteURL, pages[0].URL)
	})
}

func TestEngine_CaptureScreenshots(t *testing.T) {
	t.Parallel()

	t.Run("renders every page at every viewport sorted by composite score", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Classifier = &mock.PageClassifier{
			ClassifyFn: func(html, baseURL string) ([]toolmedia.KeyPage, error) {
				return []toolmedia.KeyPage{
					keyPage("/pricing", toolmedia.PagePricing, 0.6),
					keyPage("/features", toolmedia.PageFeatures, 0.5),
				}, nil
			},
		}

		shots := e.CaptureScreenshots(context.Background(), siteURL)

		titles := make([]string, len(shots))
		for i, s := range shots {
			titles[i] = s.Title
		}
		assert.Equal(t, []string{
			"Homepage - desktop",
			"Homepage - tablet",
			"Features - desktop",
			"Homepage - mobile",
			"Pricing - desktop",
			"Features - tablet",
			"Pricing - tablet",
			"Features - mobile",
			"Pricing - mobile",
		}, titles)
		assert.Equal(t, "https://shots.test/desktop?url="+siteURL, shots[0].URL)
		assert.Equal(t, 1920, shots[0].Viewport.Width)
	})

	t.Run("skips failed renders and keeps the rest", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Classifier = &mock.PageClassifier{
			ClassifyFn: func(html, baseURL string) ([]toolmedia.KeyPage, error) {
				return []toolmedia.KeyPage{keyPage("/pricing", toolmedia.PagePricing, 0.6)}, nil
			},
		}
		e.Renderer = &mock.ScreenshotRenderer{
			RenderFn: func(ctx context.Context, pageURL string, vp toolmedia.Viewport) (string, error) {
				if strings.HasSuffix(pageURL, "/pricing") && vp.Name == toolmedia.ViewportTablet {
					return "", errors.New("render timeout")
				}
				return "https://shots.test/" + string(vp.Name), nil
			},
		}

		result := e.DiscoverMedia(context.Background(), siteURL)

		assert.Len(t, result.Screenshots, 5)
		var failed []toolmedia.Diagnostic
		for _, d := range toolmedia.FilterDiagnostics(result.Diagnostics, toolmedia.StageScreenshot) {
			if d.Status == toolmedia.StatusFailed {
				failed = append(failed, d)
			}
		}
		require.Len(t, failed, 1)
		assert.Equal(t, "https://acme.ai/pricing@tablet", failed[0].Target)
		assert.Equal(t, "render timeout", failed[0].Reason)
	})

	t.Run("bounds each render with the fetch timeout", func(t *testing.T) {
		t.Parallel()

		var withDeadline atomic.Int32
		e := newTestEngine()
		e.Renderer = &mock.ScreenshotRenderer{
			RenderFn: func(ctx context.Context, pageURL string, vp toolmedia.Viewport) (string, error) {
				if _, ok := ctx.Deadline(); ok {
					withDeadline.Add(1)
				}
				return "https://shots.test/x", nil
			},
		}

		shots := e.CaptureScreenshots(context.Background(), siteURL)

		assert.Len(t, shots, 3)
		assert.Equal(t, int32(3), withDeadline.Load())
	})

	t.Run("returns an empty slice when every render fails", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Renderer = &mock.ScreenshotRenderer{
			RenderFn: func(ctx context.Context, pageURL string, vp toolmedia.Viewport) (string, error) {
				return "", errors.New("service unavailable")
			},
		}

		shots := e.CaptureScreenshots(context.Background(), siteURL)

		assert.NotNil(t, shots)
		assert.Empty(t, shots)
	})
}

func TestEngine_ExtractToolName(t *testing.T) {
	t.Parallel()

	t.Run("returns the extracted name", func(t *testing.T) {
		t.Parallel()

		name, ok := newTestEngine().ExtractToolName(context.Background(), siteURL)

		assert.True(t, ok)
		assert.Equal(t, "Acme", name)
	})

	t.Run("reports absence when metadata has no name", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Names = &mock.NameExtractor{
			ExtractNameFn:        func(html string) string { return "" },
			ExtractDescriptionFn: func(html string) string { return "" },
		}

		name, ok := e.ExtractToolName(context.Background(), siteURL)

		assert.False(t, ok)
		assert.Empty(t, name)
	})

	t.Run("reports absence when the homepage is unreachable", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("HTTP 500 for " + url)
			},
		}

		_, ok := e.ExtractToolName(context.Background(), siteURL)

		assert.False(t, ok)
	})
}

func TestEngine_DiscoverVideos(t *testing.T) {
	t.Parallel()

	t.Run("scores search results and embeds then ranks them", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Searcher = &mock.VideoSearcher{
			SearchFn: func(ctx context.Context, query string) ([]toolmedia.VideoCandidate, error) {
				switch query {
				case "Acme tutorial":
					return []toolmedia.VideoCandidate{
						youtube("w1", "Acme tutorial for beginners"),
						youtube("w2", "Getting started with Acme"),
					}, nil
				case "Acme demo":
					return []toolmedia.VideoCandidate{
						youtube("w1", "Acme tutorial for beginners"),
						youtube("w3", "Acme official overview"),
					}, nil
				}
				t.Errorf("unexpected query %q", query)
				return nil, nil
			},
		}
		e.Embeds = &mock.EmbedScanner{
			ScanEmbedsFn: func(html string) ([]toolmedia.VideoCandidate, error) {
				v := youtube("e1", "Embedded video")
				v.Source = toolmedia.VideoEmbedded
				return []toolmedia.VideoCandidate{v}, nil
			},
			ChannelFeedsFn: func(html string) []string { return nil },
		}

		videos := e.DiscoverVideos(context.Background(), siteURL)

		assert.Equal(t, []string{
			toolmedia.YouTubeWatchURL("e1"),
			toolmedia.YouTubeWatchURL("w1"),
			toolmedia.YouTubeWatchURL("w3"),
			toolmedia.YouTubeWatchURL("w2"),
		}, urls(videos))
		assert.InDelta(t, 0.9, videos[0].Confidence, 1e-9)
		assert.InDelta(t, 0.7, videos[1].Confidence, 1e-9)
		assert.InDelta(t, 0.4, videos[2].Confidence, 1e-9)
		assert.InDelta(t, 0.2, videos[3].Confidence, 1e-9)
	})

	t.Run("issues no queries without a tool name", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Names = &mock.NameExtractor{
			ExtractNameFn:        func(html string) string { return "" },
			ExtractDescriptionFn: func(html string) string { return "" },
		}
		e.Searcher = &mock.VideoSearcher{
			SearchFn: func(ctx context.Context, query string) ([]toolmedia.VideoCandidate, error) {
				t.Error("searcher should not be called")
				return nil, nil
			},
		}
		e.Embeds = &mock.EmbedScanner{
			ScanEmbedsFn: func(html string) ([]toolmedia.VideoCandidate, error) {
				return []toolmedia.VideoCandidate{{
					URL:    "https://vimeo.com/76979871",
					Title:  "Launch film",
					Source: toolmedia.VideoVimeo,
				}}, nil
			},
			ChannelFeedsFn: func(html string) []string { return nil },
		}

		result := e.DiscoverMedia(context.Background(), siteURL)

		require.Len(t, result.Videos, 1)
		assert.InDelta(t, 0.8, result.Videos[0].Confidence, 1e-9)
		search := toolmedia.FilterDiagnostics(result.Diagnostics, toolmedia.StageSearch)
		require.Len(t, search, 1)
		assert.Equal(t, toolmedia.StatusSkipped, search[0].Status)
	})

	t.Run("keeps other queries when one fails", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Searcher = &mock.VideoSearcher{
			SearchFn: func(ctx context.Context, query string) ([]toolmedia.VideoCandidate, error) {
				if query == "Acme tutorial" {
					return nil, errors.New("HTTP 429")
				}
				return []toolmedia.VideoCandidate{youtube("d1", "Acme demo day")}, nil
			},
		}

		videos := e.DiscoverVideos(context.Background(), siteURL)

		assert.Equal(t, []string{toolmedia.YouTubeWatchURL("d1")}, urls(videos))
	})

	t.Run("records an unavailable search surface as not implemented", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Searcher = &mock.VideoSearcher{
			SearchFn: func(ctx context.Context, query string) ([]toolmedia.VideoCandidate, error) {
				return nil, toolmedia.Errorf(toolmedia.ENOTIMPLEMENTED, "keyed video search is not implemented")
			},
		}

		result := e.DiscoverMedia(context.Background(), siteURL)

		search := toolmedia.FilterDiagnostics(result.Diagnostics, toolmedia.StageSearch)
		require.Len(t, search, 2)
		for _, d := range search {
			assert.Equal(t, toolmedia.StatusNotImplemented, d.Status)
		}
	})

	t.Run("drops results without a title", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Searcher = &mock.VideoSearcher{
			SearchFn: func(ctx context.Context, query string) ([]toolmedia.VideoCandidate, error) {
				return []toolmedia.VideoCandidate{youtube("t1", "")}, nil
			},
		}

		assert.Empty(t, e.DiscoverVideos(context.Background(), siteURL))
	})

	t.Run("truncates to the video limit", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Searcher = &mock.VideoSearcher{
			SearchFn: func(ctx context.Context, query string) ([]toolmedia.VideoCandidate, error) {
				var out []toolmedia.VideoCandidate
				for i := range 8 {
					out = append(out, youtube(fmt.Sprintf("%s-%d", query, i), query+" video"))
				}
				return out, nil
			},
		}

		videos := e.DiscoverVideos(context.Background(), siteURL)

		assert.Len(t, videos, toolmedia.MaxVideos)
		for i := 1; i < len(videos); i++ {
			assert.GreaterOrEqual(t, videos[i-1].Confidence, videos[i].Confidence)
		}
	})

	t.Run("reads at most two channel feeds with a confidence floor", func(t *testing.T) {
		t.Parallel()

		var reads atomic.Int32
		e := newTestEngine()
		e.Searcher = nil
		e.Embeds = &mock.EmbedScanner{
			ScanEmbedsFn: func(html string) ([]toolmedia.VideoCandidate, error) { return nil, nil },
			ChannelFeedsFn: func(html string) []string {
				return []string{"https://feeds.test/a", "https://feeds.test/b", "https://feeds.test/c"}
			},
		}
		e.Feeds = &mock.ChannelFeed{
			VideosFn: func(ctx context.Context, feedURL string) ([]toolmedia.VideoCandidate, error) {
				reads.Add(1)
				if feedURL == "https://feeds.test/b" {
					return nil, errors.New("malformed feed")
				}
				var out []toolmedia.VideoCandidate
				for i := range 7 {
					out = append(out, youtube(fmt.Sprintf("f%d", i), "Release notes"))
				}
				return out, nil
			},
		}

		result := e.DiscoverMedia(context.Background(), siteURL)

		assert.Equal(t, int32(2), reads.Load())
		require.Len(t, result.Videos, toolmedia.MaxFeedVideos)
		for _, v := range result.Videos {
			assert.InDelta(t, 0.5, v.Confidence, 1e-9)
		}
		feeds := toolmedia.FilterDiagnostics(result.Diagnostics, toolmedia.StageFeed)
		require.Len(t, feeds, 2)
		assert.Equal(t, toolmedia.StatusSuccess, feeds[0].Status)
		assert.Equal(t, toolmedia.StatusFailed, feeds[1].Status)
		search := toolmedia.FilterDiagnostics(result.Diagnostics, toolmedia.StageSearch)
		require.Len(t, search, 1)
		assert.Equal(t, toolmedia.StatusSkipped, search[0].Status)
	})

	t.Run("skips channel feeds without a reader", func(t *testing.T) {
		t.Parallel()

		result := newTestEngine().DiscoverMedia(context.Background(), siteURL)

		feeds := toolmedia.FilterDiagnostics(result.Diagnostics, toolmedia.StageFeed)
		require.Len(t, feeds, 1)
		assert.Equal(t, toolmedia.StatusSkipped, feeds[0].Status)
	})
}

func TestEngine_DiscoverMedia(t *testing.T) {
	t.Parallel()

	t.Run("returns an empty result when the homepage is unreachable", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("dial tcp: no such host")
			},
		}
		e.Renderer = &mock.ScreenshotRenderer{
			RenderFn: func(ctx context.Context, pageURL string, vp toolmedia.Viewport) (string, error) {
				t.Error("renderer should not be called")
				return "", nil
			},
		}
		e.Searcher = &mock.VideoSearcher{
			SearchFn: func(ctx context.Context, query string) ([]toolmedia.VideoCandidate, error) {
				t.Error("searcher should not be called")
				return nil, nil
			},
		}

		result := e.DiscoverMedia(context.Background(), "https://unreachable.test/")

		assert.Equal(t, []toolmedia.ScreenshotCandidate{}, result.Screenshots)
		assert.Equal(t, []toolmedia.VideoCandidate{}, result.Videos)
		assert.Equal(t, 0, result.TotalFound)
		fetch := toolmedia.FilterDiagnostics(result.Diagnostics, toolmedia.StageFetch)
		require.Len(t, fetch, 1)
		assert.Equal(t, toolmedia.StatusFailed, fetch[0].Status)
		assert.Equal(t, "dial tcp: no such host", fetch[0].Reason)
	})

	t.Run("merges screenshots and videos", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Searcher = &mock.VideoSearcher{
			SearchFn: func(ctx context.Context, query string) ([]toolmedia.VideoCandidate, error) {
				return []toolmedia.VideoCandidate{youtube("m1", "Acme tutorial")}, nil
			},
		}

		result := e.DiscoverMedia(context.Background(), siteURL)

		assert.Len(t, result.Screenshots, 3)
		assert.Len(t, result.Videos, 1)
		assert.Equal(t, 4, result.TotalFound)
		require.NotEmpty(t, result.Diagnostics)
		assert.Equal(t, toolmedia.StageFetch, result.Diagnostics[0].Stage)
	})

	t.Run("fetches the homepage once per call", func(t *testing.T) {
		t.Parallel()

		var fetches atomic.Int32
		e := newTestEngine()
		e.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				fetches.Add(1)
				return homeHTML, nil
			},
		}

		e.DiscoverMedia(context.Background(), siteURL)

		assert.Equal(t, int32(1), fetches.Load())
	})

	t.Run("retries a failed homepage fetch", func(t *testing.T) {
		t.Parallel()

		var fetches atomic.Int32
		e := newTestEngine()
		e.RetryDelays = []time.Duration{0}
		e.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if fetches.Add(1) == 1 {
					return "", errors.New("connection reset")
				}
				return homeHTML, nil
			},
		}

		result := e.DiscoverMedia(context.Background(), siteURL)

		assert.Equal(t, int32(2), fetches.Load())
		assert.Len(t, result.Screenshots, 3)
	})

	t.Run("throttles the homepage fetch and renders by host", func(t *testing.T) {
		t.Parallel()

		var waits atomic.Int32
		e := newTestEngine()
		e.RateLimiter = &mock.DomainLimiter{
			WaitFn: func(ctx context.Context, domain string) error {
				assert.Equal(t, "acme.ai", domain)
				waits.Add(1)
				return nil
			},
		}

		e.DiscoverMedia(context.Background(), siteURL)

		assert.Equal(t, int32(4), waits.Load())
	})

	t.Run("degrades to an empty result when a branch panics", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Classifier = &mock.PageClassifier{
			ClassifyFn: func(html, baseURL string) ([]toolmedia.KeyPage, error) {
				panic("unexpected markup")
			},
		}
		e.Searcher = &mock.VideoSearcher{
			SearchFn: func(ctx context.Context, query string) ([]toolmedia.VideoCandidate, error) {
				return []toolmedia.VideoCandidate{youtube("p1", "Acme tutorial")}, nil
			},
		}

		result := e.DiscoverMedia(context.Background(), siteURL)

		assert.Empty(t, result.Screenshots)
		assert.Empty(t, result.Videos)
		assert.Equal(t, 0, result.TotalFound)
		assert.NotEmpty(t, result.Diagnostics)
	})

	t.Run("records a panicking renderer as a failed render", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Renderer = &mock.ScreenshotRenderer{
			RenderFn: func(ctx context.Context, pageURL string, vp toolmedia.Viewport) (string, error) {
				if vp.Name == toolmedia.ViewportMobile {
					panic("nil page")
				}
				return "https://shots.test/" + string(vp.Name), nil
			},
		}

		result := e.DiscoverMedia(context.Background(), siteURL)

		assert.Len(t, result.Screenshots, 2)
	})

	t.Run("output does not depend on completion order", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Concurrency = 8
		e.Classifier = &mock.PageClassifier{
			ClassifyFn: func(html, baseURL string) ([]toolmedia.KeyPage, error) {
				return []toolmedia.KeyPage{
					keyPage("/pricing", toolmedia.PagePricing, 0.6),
					keyPage("/demo", toolmedia.PageDemo, 0.45),
				}, nil
			},
		}
		e.Renderer = &mock.ScreenshotRenderer{
			RenderFn: func(ctx context.Context, pageURL string, vp toolmedia.Viewport) (string, error) {
				if vp.Name == toolmedia.ViewportDesktop {
					time.Sleep(5 * time.Millisecond)
				}
				return pageURL + "#" + string(vp.Name), nil
			},
		}

		first := e.DiscoverMedia(context.Background(), siteURL)
		second := e.DiscoverMedia(context.Background(), siteURL)

		assert.Equal(t, first, second)
	})
}

func TestEngine_DescribeTool(t *testing.T) {
	t.Parallel()

	t.Run("builds a profile from metadata and main content", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Names = &mock.NameExtractor{
			ExtractNameFn:        func(html string) string { return "Acme" },
			ExtractDescriptionFn: func(html string) string { return "AI writing assistant" },
		}
		e.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*toolmedia.ExtractResult, error) {
				return &toolmedia.ExtractResult{ContentHTML: "<p>Write faster.</p>"}, nil
			},
		}
		e.Converter = &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				assert.Equal(t, "<p>Write faster.</p>", html)
				return "Write faster.", nil
			},
		}

		profile, err := e.DescribeTool(context.Background(), siteURL)

		require.NoError(t, err)
		assert.Equal(t, &toolmedia.ToolProfile{
			URL:         siteURL,
			Name:        "Acme",
			Description: "AI writing assistant",
			Overview:    "Write faster.",
		}, profile)
	})

	t.Run("falls back to extracted metadata", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Names = &mock.NameExtractor{
			ExtractNameFn:        func(html string) string { return "" },
			ExtractDescriptionFn: func(html string) string { return "" },
		}
		e.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*toolmedia.ExtractResult, error) {
				return &toolmedia.ExtractResult{
					Title:       "Acme AI - Home",
					Description: "Draft documents in seconds",
				}, nil
			},
		}

		profile, err := e.DescribeTool(context.Background(), siteURL)

		require.NoError(t, err)
		assert.Equal(t, "Acme AI", profile.Name)
		assert.Equal(t, "Draft documents in seconds", profile.Description)
		assert.Empty(t, profile.Overview)
	})

	t.Run("truncates the overview", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*toolmedia.ExtractResult, error) {
				return &toolmedia.ExtractResult{ContentHTML: "<p>long</p>"}, nil
			},
		}
		e.Converter = &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return strings.Repeat("é", 3000), nil
			},
		}

		profile, err := e.DescribeTool(context.Background(), siteURL)

		require.NoError(t, err)
		assert.Len(t, []rune(profile.Overview), toolmedia.MaxOverviewRunes)
		assert.True(t, strings.HasSuffix(profile.Overview, "…"))
	})

	t.Run("keeps metadata when extraction fails", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*toolmedia.ExtractResult, error) {
				return nil, errors.New("no content")
			},
		}

		profile, err := e.DescribeTool(context.Background(), siteURL)

		require.NoError(t, err)
		assert.Equal(t, "Acme", profile.Name)
		assert.Empty(t, profile.Overview)
	})

	t.Run("returns an error when the homepage is unreachable", func(t *testing.T) {
		t.Parallel()

		e := newTestEngine()
		e.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("HTTP 404 for " + url)
			},
		}

		_, err := e.DescribeTool(context.Background(), siteURL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 404")
	})

	t.Run("rejects a relative URL", func(t *testing.T) {
		t.Parallel()

		_, err := newTestEngine().DescribeTool(context.Background(), "acme.ai")

		assert.Equal(t, toolmedia.EINVALID, toolmedia.ErrorCode(err))
	})
}
