package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/toolmedia"
	"github.com/fwojciec/toolmedia/discover"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Engine *discover.Engine
	Runs   toolmedia.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB               string `name:"db" env:"TOOLMEDIA_DB" type:"path" help:"SQLite database path (default ~/.toolmedia/toolmedia.db)"`
	ScreenshotAPIKey string `name:"screenshot-api-key" env:"TOOLMEDIA_SCREENSHOT_API_KEY" help:"Key for the hosted screenshot service"`
	VideoAPIKey      string `name:"video-api-key" env:"TOOLMEDIA_VIDEO_API_KEY" help:"Key for the video search API"`

	Discover DiscoverCmd `cmd:"" help:"Discover screenshots and videos for a tool website"`
	Profile  ProfileCmd  `cmd:"" help:"Summarize a tool website for its directory entry"`
	Runs     RunsCmd     `cmd:"" help:"List saved discovery runs"`
	Show     ShowCmd     `cmd:"" help:"Show a saved discovery run"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a saved discovery run"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	URL            string        `arg:"" help:"Tool website URL"`
	JSON           bool          `help:"Print JSON instead of text"`
	Save           bool          `help:"Save the run to the database"`
	All            bool          `help:"Print every candidate, not just the best picks"`
	RenderJS       bool          `name:"render-js" help:"Fetch pages with a headless browser"`
	ScreenshotsDir string        `name:"screenshots-dir" type:"path" help:"Capture screenshots locally with a headless browser into this directory"`
	Scoring        string        `help:"YAML file overriding the scoring table"`
	Timeout        time.Duration `default:"8s" help:"Timeout for each outbound request"`
	Concurrency    int           `short:"c" default:"4" help:"Concurrent request limit"`
	Retries        int           `default:"1" help:"Homepage fetch retries"`
	Verbose        bool          `short:"v" help:"Log outbound calls and print diagnostics"`
}

func (c *DiscoverCmd) engineOptions() engineOptions {
	return engineOptions{
		siteURL:        c.URL,
		renderJS:       c.RenderJS,
		screenshotsDir: c.ScreenshotsDir,
		scoringPath:    c.Scoring,
		timeout:        c.Timeout,
		concurrency:    c.Concurrency,
		retries:        c.Retries,
		verbose:        c.Verbose,
	}
}

// ProfileCmd is the "profile" subcommand.
type ProfileCmd struct {
	URL       string        `arg:"" help:"Tool website URL"`
	Extractor string        `enum:"trafilatura,readability" default:"trafilatura" help:"Main content extractor (trafilatura, readability)"`
	JSON      bool          `help:"Print JSON instead of text"`
	RenderJS  bool          `name:"render-js" help:"Fetch the page with a headless browser"`
	Timeout   time.Duration `default:"8s" help:"Timeout for each outbound request"`
	Retries   int           `default:"1" help:"Homepage fetch retries"`
	Verbose   bool          `short:"v" help:"Log outbound calls"`
}

func (c *ProfileCmd) engineOptions() engineOptions {
	return engineOptions{
		siteURL:   c.URL,
		renderJS:  c.RenderJS,
		extractor: c.Extractor,
		timeout:   c.Timeout,
		retries:   c.Retries,
		verbose:   c.Verbose,
	}
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Site  string `help:"Only list runs for this site URL"`
	Limit int    `default:"20" help:"Maximum number of runs to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID      string `arg:"" help:"Run ID"`
	JSON    bool   `help:"Print JSON instead of text"`
	All     bool   `help:"Print every candidate, not just the best picks"`
	Verbose bool   `short:"v" help:"Print diagnostics"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Run ID"`
	Force bool   `help:"Confirm deletion"`
}
