package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML content file and overlays it on Default. An empty path
// returns the defaults.
func Load(path string) (Portal, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Portal{}, fmt.Errorf("read content file: %w", err)
	}
	portal, err := Parse(data)
	if err != nil {
		return Portal{}, fmt.Errorf("content file %s: %w", path, err)
	}
	return portal, nil
}

// Parse decodes YAML content over Default. Keys absent from data keep their
// default values; a list present in data replaces the default list. Unknown
// keys are rejected.
func Parse(data []byte) (Portal, error) {
	portal := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&portal); err != nil && !errors.Is(err, io.EOF) {
		return Portal{}, fmt.Errorf("decode content: %w", err)
	}
	if err := portal.Validate(); err != nil {
		return Portal{}, fmt.Errorf("validate content: %w", err)
	}
	return portal, nil
}
