package toolmedia

import "time"

// Default configuration values.
const (
	DefaultFetchTimeout = 8 * time.Second
	DefaultConcurrency  = 4
	DefaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// Config holds caller-supplied settings for a discovery engine.
// Nothing in this module reads credentials from the environment on its own;
// callers populate Config and pass it in.
type Config struct {
	// ScreenshotAPIKey selects the keyed screenshot template when set.
	ScreenshotAPIKey string

	// VideoAPIKey selects the keyed video search when set.
	VideoAPIKey string

	// FetchTimeout bounds every outbound request.
	FetchTimeout time.Duration

	// UserAgent is sent with every page fetch.
	UserAgent string

	// Concurrency limits parallel outbound requests within one call.
	Concurrency int

	// Scoring is the ranking policy. Nil selects DefaultScoringTable.
	Scoring *ScoringTable
}

// WithDefaults returns a copy of c with zero fields set to defaults.
func (c Config) WithDefaults() Config {
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = DefaultFetchTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.Scoring == nil {
		c.Scoring = DefaultScoringTable()
	}
	return c
}
