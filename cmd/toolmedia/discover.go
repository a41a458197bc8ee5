package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/fwojciec/toolmedia"
)

// noMediaMessage is printed when discovery finds nothing. It is neutral:
// an empty result is a normal outcome, not a failure.
const noMediaMessage = "No media found. Add screenshots and videos manually."

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	siteURL := normalizeURL(c.URL)

	result := deps.Engine.DiscoverMedia(deps.Ctx, siteURL)

	var runID string
	if c.Save {
		run := &toolmedia.Run{
			SiteURL:  siteURL,
			ToolName: toolName(result),
			Result:   result,
		}
		if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
			printError(deps.Stderr, err)
			return err
		}
		runID = run.ID
		fmt.Fprintf(deps.Stderr, "Saved run %s\n", run.ID)
	}

	if c.JSON {
		return writeJSON(deps.Stdout, newMediaOutput(siteURL, runID, result, c.All))
	}
	printMedia(deps.Stdout, siteURL, result, c.All, c.Verbose)
	return nil
}

// normalizeURL adds an https scheme to bare hostnames such as "acme.ai".
func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" && u.Host != "" {
		return raw
	}
	return "https://" + strings.TrimPrefix(raw, "//")
}

// toolName returns the name recorded by the name stage, if any.
func toolName(result toolmedia.DiscoveryResult) string {
	for _, d := range toolmedia.FilterDiagnostics(result.Diagnostics, toolmedia.StageName) {
		if d.Status == toolmedia.StatusSuccess {
			return d.Reason
		}
	}
	return ""
}

// mediaOutput is the JSON shape of discover and show.
type mediaOutput struct {
	RunID string `json:"runId,omitempty"`
	URL   string `json:"url"`
	toolmedia.SelectionResult
	TotalFound int                        `json:"totalFound"`
	Result     *toolmedia.DiscoveryResult `json:"result,omitempty"`
}

func newMediaOutput(siteURL, runID string, result toolmedia.DiscoveryResult, all bool) mediaOutput {
	out := mediaOutput{
		RunID:           runID,
		URL:             siteURL,
		SelectionResult: toolmedia.SelectBestMedia(result),
		TotalFound:      result.TotalFound,
	}
	if all {
		out.Result = &result
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printMedia writes the human-readable report of a discovery result.
func printMedia(w io.Writer, siteURL string, result toolmedia.DiscoveryResult, all, verbose bool) {
	if result.TotalFound == 0 {
		fmt.Fprintln(w, noMediaMessage)
	} else {
		fmt.Fprintf(w, "Found %d screenshots and %d videos for %s\n",
			len(result.Screenshots), len(result.Videos), siteURL)

		selection := toolmedia.SelectBestMedia(result)
		shots, videos := selection.BestScreenshots, selection.BestVideos
		shotsHeading, videosHeading := "Best screenshots", "Best videos"
		if all {
			shots, videos = result.Screenshots, result.Videos
			shotsHeading, videosHeading = "Screenshots", "Videos"
		}

		if len(shots) > 0 {
			fmt.Fprintf(w, "\n%s:\n", shotsHeading)
			for i, s := range shots {
				fmt.Fprintf(w, "  %d. %s (%s, %dx%d)\n     %s\n",
					i+1, s.Title, s.PageType, s.Viewport.Width, s.Viewport.Height, s.URL)
			}
		}
		if len(videos) > 0 {
			fmt.Fprintf(w, "\n%s:\n", videosHeading)
			for i, v := range videos {
				fmt.Fprintf(w, "  %d. %s [%s, %.2f]\n     %s\n", i+1, v.Title, v.Source, v.Confidence, v.URL)
			}
		}
	}

	if verbose && len(result.Diagnostics) > 0 {
		fmt.Fprintln(w, "\nDiagnostics:")
		for _, d := range result.Diagnostics {
			line := fmt.Sprintf("  %-10s %-15s %s", d.Stage, d.Status, d.Target)
			if d.Reason != "" {
				line += ": " + d.Reason
			}
			fmt.Fprintln(w, line)
		}
	}
}
