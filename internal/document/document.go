// Package document decodes JSON and YAML documents into the generic value
// model the comparator consumes: nil, bool, string, json.Number (or the
// native numeric types for YAML), []any, and map[string]any.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format identifies a supported document encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

var ErrTrailingData = errors.New("trailing data after document")

// DetectFormat chooses a format from a file name; .yaml and .yml select
// YAML, everything else JSON.
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode reads a single document from r. JSON numbers decode as
// json.Number so their source representation survives comparison.
func Decode(r io.Reader, format Format) (any, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(r)
	default:
		return decodeJSON(r)
	}
}

// Load reads and decodes the named file, detecting the format from its
// extension.
func Load(filename string) (any, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer file.Close()

	value, err := Decode(file, DetectFormat(filename))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	return value, nil
}

func decodeJSON(r io.Reader) (any, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	if err := decoder.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	return value, nil
}

func decodeYAML(r io.Reader) (any, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read YAML: %w", err)
	}

	var value any
	if err := yaml.Unmarshal(payload, &value); err != nil {
		return nil, fmt.Errorf("decode YAML: %w", err)
	}

	return normalize(value), nil
}

// normalize rewrites decoded YAML containers into the comparator's value
// model. Mappings with non-string keys render the keys with %v, matching
// how such documents serialize to JSON.
func normalize(value any) any {
	switch current := value.(type) {
	case map[string]any:
		normalized := make(map[string]any, len(current))
		for key, item := range current {
			normalized[key] = normalize(item)
		}
		return normalized
	case map[any]any:
		normalized := make(map[string]any, len(current))
		for key, item := range current {
			normalized[fmt.Sprintf("%v", key)] = normalize(item)
		}
		return normalized
	case []any:
		normalized := make([]any, len(current))
		for i, item := range current {
			normalized[i] = normalize(item)
		}
		return normalized
	default:
		return value
	}
}
