package agent

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/harrison/personacheck/internal/models"
	"gopkg.in/yaml.v3"
)

// Delimiter opens and closes the metadata block of an agent document
const Delimiter = "---"

var (
	// ErrMissingMetadata means the document does not start with the delimiter
	ErrMissingMetadata = errors.New("Missing YAML frontmatter")
	// ErrMalformedMetadata means the closing delimiter was not found
	ErrMalformedMetadata = errors.New("Malformed YAML frontmatter")
)

// InvalidMetadataError wraps the YAML parser failure for the metadata block
type InvalidMetadataError struct {
	Err error
}

// Error implements the error interface
func (e *InvalidMetadataError) Error() string {
	return fmt.Sprintf("Invalid YAML: %v", e.Err)
}

// Unwrap returns the parser error
func (e *InvalidMetadataError) Unwrap() error {
	return e.Err
}

// MissingFieldsError lists required metadata keys that are absent,
// in the order they were required
type MissingFieldsError struct {
	Fields []string
}

// Error implements the error interface
func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("Missing required fields: %s", models.FormatList(e.Fields))
}

// Document is an agent file split into its metadata block and body
type Document struct {
	Metadata map[string]any
	Body     string
}

// SplitMetadata splits text on the delimiter into at most three segments and
// returns the raw metadata block and the body.
// The delimiter is matched anywhere, not only on its own line, so a "---"
// inside a metadata value closes the block early.
func SplitMetadata(text string) (string, string, error) {
	if !strings.HasPrefix(text, Delimiter) {
		return "", "", ErrMissingMetadata
	}

	parts := strings.SplitN(text, Delimiter, 3)
	if len(parts) < 3 {
		return "", "", ErrMalformedMetadata
	}

	return parts[1], parts[2], nil
}

// ParseMetadata parses the metadata block of text and verifies that every
// key in required is present. A key whose value is null still counts as present.
func ParseMetadata(text string, required []string) (*Document, error) {
	block, body, err := SplitMetadata(text)
	if err != nil {
		return nil, err
	}

	var metadata map[string]any
	if err := yaml.Unmarshal([]byte(block), &metadata); err != nil {
		return nil, &InvalidMetadataError{Err: err}
	}
	if metadata == nil {
		metadata = make(map[string]any)
	}
	for key, value := range metadata {
		metadata[key] = normalizeValue(value)
	}

	var missing []string
	for _, key := range required {
		if _, ok := metadata[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	return &Document{Metadata: metadata, Body: body}, nil
}

// normalizeValue rewrites decoded YAML into values encoding/json accepts:
// mappings with non-string keys get their keys stringified and non-finite
// floats become their YAML spelling.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			v[key] = normalizeValue(item)
		}
		return v
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalizeValue(item)
		}
		return out
	case []any:
		for i, item := range v {
			v[i] = normalizeValue(item)
		}
		return v
	case float64:
		switch {
		case math.IsNaN(v):
			return ".nan"
		case math.IsInf(v, 1):
			return ".inf"
		case math.IsInf(v, -1):
			return "-.inf"
		}
		return v
	default:
		return value
	}
}
