package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/fwojciec/toolmedia"
)

// Ensure ScreenshotStore implements toolmedia.ScreenshotStore at compile time.
var _ toolmedia.ScreenshotStore = (*ScreenshotStore)(nil)

// ScreenshotStore writes screenshots under a base directory and returns
// file:// URLs. Each file is written to a temporary name and renamed into
// place, so readers never observe a partial image.
type ScreenshotStore struct {
	baseDir string
}

// NewScreenshotStore creates a store rooted at baseDir.
func NewScreenshotStore(baseDir string) *ScreenshotStore {
	return &ScreenshotStore{baseDir: baseDir}
}

// Save writes png for pageURL at vp, replacing any earlier capture.
func (s *ScreenshotStore) Save(ctx context.Context, pageURL string, vp toolmedia.Viewport, png []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(png) == 0 {
		return "", toolmedia.Errorf(toolmedia.EINVALID, "empty screenshot for %s", pageURL)
	}

	relPath, err := ScreenshotPath(pageURL, vp)
	if err != nil {
		return "", err
	}

	fullPath, err := filepath.Abs(filepath.Join(s.baseDir, filepath.FromSlash(relPath)))
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating screenshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".shot-*.tmp")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(png); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	if err := os.Rename(tmpName, fullPath); err != nil {
		os.Remove(tmpName)
		return "", err
	}

	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(fullPath)}).String(), nil
}
