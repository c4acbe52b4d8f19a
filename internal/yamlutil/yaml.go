// Package yamlutil isolates the YAML library behind the two operations the
// program needs: strict decoding of config files and encoding of front matter.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

// Sentinel errors.
var (
	ErrEmptyInput     = errors.New("yamlutil: empty input")
	ErrNilDestination = errors.New("yamlutil: nil destination")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// DecodeStrict unmarshals data into v, rejecting fields v does not declare.
func DecodeStrict(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyInput
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// FrontMatter encodes v as a YAML block delimited by "---" lines, ready
// to prefix a Markdown document. Empty values encode to an empty string.
func FrontMatter(v any) (string, error) {
	out, err := yaml.MarshalWithOptions(v, yaml.UseLiteralStyleIfMultiline(true))
	if err != nil {
		return "", fmt.Errorf("yamlutil: %w", err)
	}
	body := bytes.TrimSpace(out)
	if len(body) == 0 || string(body) == "{}" {
		return "", nil
	}
	return "---\n" + string(body) + "\n---\n", nil
}
