package toolmedia

import (
	"context"
	"time"
)

// Run is a persisted discovery for a site.
type Run struct {
	ID         string          `json:"id"`
	SiteURL    string          `json:"siteUrl"`
	ToolName   string          `json:"toolName"`
	Result     DiscoveryResult `json:"result"`
	Selection  SelectionResult `json:"selection"`
	ResultHash string          `json:"resultHash"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.SiteURL == "" {
		return Errorf(EINVALID, "run site URL required")
	}
	if r.Result.TotalFound != len(r.Result.Screenshots)+len(r.Result.Videos) {
		return Errorf(EINVALID, "run total does not match its candidates")
	}
	return nil
}

// RunService represents a service for managing persisted discovery runs.
type RunService interface {
	// CreateRun persists a run, assigning its ID, hash and timestamp.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run with all its candidates.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves run summaries matching the filter, newest first.
	// Candidates and diagnostics are not loaded.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// DeleteRun permanently removes a run and its candidates.
	// Returns ENOTFOUND if the run does not exist.
	DeleteRun(ctx context.Context, id string) error
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID      *string `json:"id"`
	SiteURL *string `json:"siteUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
