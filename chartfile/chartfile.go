// Package chartfile reads chart definitions written by hand or exported by
// another tool. A definition is the transport form of a chart, in YAML or
// JSON, with string elements. Derived fields (degree, cardinality) may be
// omitted.
package chartfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rdeusser/upset/upset"
)

// Format is the encoding of a chart definition.
type Format int

const (
	YAML Format = iota
	JSON
)

// FormatOf picks the format from the file extension. Anything that is not
// .json is read as YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}
	return YAML
}

// Load reads and builds the chart at path.
func Load(path string) (*upset.Chart[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart: %w", err)
	}

	chart, err := Decode(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return chart, nil
}

// Decode builds a chart from a definition. Unknown fields are rejected.
func Decode(data []byte, format Format) (*upset.Chart[string], error) {
	record, err := DecodeRecord(data, format)
	if err != nil {
		return nil, err
	}

	return record.Build()
}

// DecodeRecord parses a definition without resolving it.
func DecodeRecord(data []byte, format Format) (upset.ChartRecord[string], error) {
	var record upset.ChartRecord[string]

	switch format {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&record); err != nil {
			return record, fmt.Errorf("failed to parse chart JSON: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&record); err != nil && !errors.Is(err, io.EOF) {
			return record, fmt.Errorf("failed to parse chart YAML: %w", err)
		}
	default:
		return record, fmt.Errorf("unknown chart format %d", format)
	}

	return record, nil
}

// Encode writes the transport form of chart as indented JSON.
func Encode(w io.Writer, chart *upset.Chart[string]) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(upset.EncodeChart(chart))
}
