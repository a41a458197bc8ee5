package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/toolmedia"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ toolmedia.RunService = (*RunService)(nil)

// RunService implements toolmedia.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// ResultHash fingerprints a result by its ordered candidate URLs, so two
// runs that found the same media in the same order share a hash.
func ResultHash(result toolmedia.DiscoveryResult) string {
	d := xxhash.New()
	for _, s := range result.Screenshots {
		_, _ = d.WriteString("s\x00" + s.URL + "\x00")
	}
	for _, v := range result.Videos {
		_, _ = d.WriteString("v\x00" + v.URL + "\x00")
	}
	return fmt.Sprintf("%016x", d.Sum64())
}

// CreateRun persists a run with its candidates and diagnostics.
func (s *RunService) CreateRun(ctx context.Context, run *toolmedia.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.ResultHash = ResultHash(run.Result)
	run.CreatedAt = time.Now().UTC()
	run.Selection = toolmedia.SelectBestMedia(run.Result)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, site_url, tool_name, total_found, result_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.SiteURL, run.ToolName, run.Result.TotalFound, run.ResultHash,
		formatTime(run.CreatedAt)); err != nil {
		return err
	}

	for i, shot := range run.Result.Screenshots {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO screenshots (run_id, position, url, title, description, page_type, confidence, viewport, width, height)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, run.ID, i, shot.URL, shot.Title, shot.Description, string(shot.PageType), shot.Confidence,
			string(shot.Viewport.Name), shot.Viewport.Width, shot.Viewport.Height); err != nil {
			return err
		}
	}

	for i, v := range run.Result.Videos {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO videos (run_id, position, url, title, description, thumbnail, duration, source, confidence)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, run.ID, i, v.URL, v.Title, v.Description, v.Thumbnail, v.Duration, string(v.Source),
			v.Confidence); err != nil {
			return err
		}
	}

	for i, d := range run.Result.Diagnostics {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO diagnostics (run_id, position, stage, target, status, reason)
			VALUES (?, ?, ?, ?, ?, ?)
		`, run.ID, i, string(d.Stage), d.Target, string(d.Status), d.Reason); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRunByID retrieves a run with its candidates, diagnostics and selection.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*toolmedia.Run, error) {
	run, err := scanRun(s.db.QueryRowContext(ctx, `
		SELECT id, site_url, tool_name, total_found, result_hash, created_at
		FROM runs
		WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, toolmedia.Errorf(toolmedia.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	shots, err := s.findScreenshots(ctx, id)
	if err != nil {
		return nil, err
	}
	videos, err := s.findVideos(ctx, id)
	if err != nil {
		return nil, err
	}
	diags, err := s.findDiagnostics(ctx, id)
	if err != nil {
		return nil, err
	}

	run.Result = toolmedia.NewDiscoveryResult(shots, videos, diags)
	run.Selection = toolmedia.SelectBestMedia(run.Result)
	return run, nil
}

// FindRuns retrieves run summaries matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter toolmedia.RunFilter) ([]*toolmedia.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, site_url, tool_name, total_found, result_hash, created_at FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SiteURL != nil {
		query.WriteString(" AND site_url = ?")
		args = append(args, *filter.SiteURL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*toolmedia.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// DeleteRun permanently removes a run. Candidates and diagnostics are
// removed by cascade.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return toolmedia.Errorf(toolmedia.ENOTFOUND, "run not found")
	}

	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*toolmedia.Run, error) {
	var run toolmedia.Run
	var createdAt string

	if err := row.Scan(&run.ID, &run.SiteURL, &run.ToolName, &run.Result.TotalFound,
		&run.ResultHash, &createdAt); err != nil {
		return nil, err
	}

	var err error
	run.CreatedAt, err = parseTime(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (s *RunService) findScreenshots(ctx context.Context, runID string) ([]toolmedia.ScreenshotCandidate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT url, title, description, page_type, confidence, viewport, width, height
		FROM screenshots
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shots []toolmedia.ScreenshotCandidate
	for rows.Next() {
		var shot toolmedia.ScreenshotCandidate
		var pageType, viewport string
		if err := rows.Scan(&shot.URL, &shot.Title, &shot.Description, &pageType, &shot.Confidence,
			&viewport, &shot.Viewport.Width, &shot.Viewport.Height); err != nil {
			return nil, err
		}
		shot.PageType = toolmedia.PageType(pageType)
		shot.Viewport.Name = toolmedia.ViewportName(viewport)
		shots = append(shots, shot)
	}
	return shots, rows.Err()
}

func (s *RunService) findVideos(ctx context.Context, runID string) ([]toolmedia.VideoCandidate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT url, title, description, thumbnail, duration, source, confidence
		FROM videos
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []toolmedia.VideoCandidate
	for rows.Next() {
		var v toolmedia.VideoCandidate
		var source string
		if err := rows.Scan(&v.URL, &v.Title, &v.Description, &v.Thumbnail, &v.Duration,
			&source, &v.Confidence); err != nil {
			return nil, err
		}
		v.Source = toolmedia.VideoSource(source)
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

func (s *RunService) findDiagnostics(ctx context.Context, runID string) ([]toolmedia.Diagnostic, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT stage, target, status, reason
		FROM diagnostics
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var diags []toolmedia.Diagnostic
	for rows.Next() {
		var d toolmedia.Diagnostic
		var stage, status string
		if err := rows.Scan(&stage, &d.Target, &status, &d.Reason); err != nil {
			return nil, err
		}
		d.Stage = toolmedia.Stage(stage)
		d.Status = toolmedia.Status(status)
		diags = append(diags, d)
	}
	return diags, rows.Err()
}
