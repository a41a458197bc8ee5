package mock

import "github.com/fwojciec/toolmedia"

var (
	_ toolmedia.Extractor = (*Extractor)(nil)
	_ toolmedia.Converter = (*Converter)(nil)
)

// Extractor stubs the main-content extraction behind tool profiles.
type Extractor struct {
	ExtractFn func(html string) (*toolmedia.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*toolmedia.ExtractResult, error) {
	return e.ExtractFn(html)
}

// Converter stubs the markdown rendering of a profile overview.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
