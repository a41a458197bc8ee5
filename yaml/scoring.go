// Package yaml loads scoring table overrides from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/toolmedia"
	"gopkg.in/yaml.v3"
)

// LoadScoringTable reads the YAML file at path over toolmedia.DefaultScoringTable.
// Keys absent from the file keep their default; lists in the file replace
// the defaults and map entries are merged. Unknown keys are rejected.
func LoadScoringTable(path string) (*toolmedia.ScoringTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, toolmedia.Errorf(toolmedia.ENOTFOUND, "scoring file %s not found", path)
		}
		return nil, err
	}
	return ParseScoringTable(data)
}

// ParseScoringTable decodes YAML over the default scoring table and validates the result.
func ParseScoringTable(data []byte) (*toolmedia.ScoringTable, error) {
	table := toolmedia.DefaultScoringTable()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(table); err != nil && !errors.Is(err, io.EOF) {
		return nil, toolmedia.Errorf(toolmedia.EINVALID, "invalid scoring file: %v", err)
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
