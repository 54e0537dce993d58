package display

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/teranos/lineage/errors"
)

// Format is an output format for command results
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a --format value
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", errors.WithHint(
			errors.Wrapf(errors.ErrInvalidRequest, "unknown format %q", s),
			"use one of: table, json, yaml",
		)
	}
}

// MarshalJSON marshals JSON with pretty formatting for human-readable output
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// OutputJSON marshals and writes JSON
func OutputJSON(w io.Writer, v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// OutputYAML marshals and writes YAML with two-space indentation
func OutputYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to marshal YAML")
	}
	return enc.Close()
}

// Render writes v in the requested format; table delegates to the caller's
// table renderer.
func Render(w io.Writer, format Format, v interface{}, table func(io.Writer) error) error {
	switch format {
	case FormatJSON:
		return OutputJSON(w, v)
	case FormatYAML:
		return OutputYAML(w, v)
	default:
		return table(w)
	}
}
