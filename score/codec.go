// SPDX-License-Identifier: EPL-2.0

package score

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the score encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	// FormatAuto tries JSON first, then YAML.
	FormatAuto Format = "auto"
)

// ParseFormat accepts json, yaml, yml and auto in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "auto", "":
		return FormatAuto, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatForPath picks a format from the file extension, FormatAuto if the
// extension says nothing.
func FormatForPath(path string) Format {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return FormatAuto
	}
	return f
}

// Parse decodes and validates a score.
func Parse(data []byte, format Format) (*Score, error) {
	s := &Score{}

	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, s)
	case FormatYAML:
		err = yaml.Unmarshal(data, s)
	case FormatAuto:
		if err = json.Unmarshal(data, s); err != nil {
			s = &Score{}
			err = yaml.Unmarshal(data, s)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScore, err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Read parses a score from r.
func Read(r io.Reader, format Format) (*Score, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading score: %w", err)
	}
	return Parse(data, format)
}

// Load parses the score file at path. Relative sampler paths in it are
// resolved against the file's directory when the score is built.
func Load(path string) (*Score, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading score: %w", err)
	}

	s, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.dir = filepath.Dir(path)

	return s, nil
}

// Encode writes s in the given format, JSON or YAML.
func (s *Score) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding score: %w", err)
		}
		return nil

	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding score: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding score: %w", err)
		}
		if _, err := w.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("writing score: %w", err)
		}
		return nil
	}

	return fmt.Errorf("%w: cannot encode as %q", ErrUnknownFormat, format)
}
