package readability_test

import (
	"testing"

	"github.com/fwojciec/toolmedia"
	"github.com/fwojciec/toolmedia/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := readability.NewExtractor().Extract("")

	require.Error(t, err)
	assert.Equal(t, toolmedia.EINVALID, toolmedia.ErrorCode(err))
}

func TestExtractor_ExtractsMetadata(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head>
<title>Acme</title>
<meta property="og:site_name" content="Acme">
<meta name="description" content="AI writing assistant">
</head>
<body><article><p>Acme turns a one-line brief into a polished first draft for your whole team.</p></article></body>
</html>`

	result, err := readability.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Acme", result.Title)
	assert.Equal(t, "Acme", result.SiteName)
	assert.Equal(t, "AI writing assistant", result.Description)
}

func TestExtractor_RemovesNavigation(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Acme</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/pricing">Pricing Nav Link</a></nav>
<article><p>Acme turns a one-line brief into a polished first draft. It learns your brand voice from past posts.</p></article>
</body>
</html>`

	result, err := readability.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "polished first draft")
	assert.NotContains(t, result.ContentHTML, "Home Nav Link")
	assert.NotContains(t, result.ContentHTML, "Pricing Nav Link")
}

func TestExtractor_RemovesFooter(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Acme</title></head>
<body>
<article><p>Teams share templates, review drafts together and publish straight to their CMS without copy and paste.</p></article>
<footer><p>Copyright 2025 Acme Inc</p></footer>
</body>
</html>`

	result, err := readability.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.NotContains(t, result.ContentHTML, "Copyright 2025 Acme Inc")
}
