package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
	"gopkg.in/yaml.v3"
)

var ErrNotARecord = errors.New("document is not a record")

// DecodeJSON decodes a JSON object into a plain record. Numbers are kept as
// json.Number so integers survive without float rounding.
func DecodeJSON(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON record: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse JSON record: trailing data")
	}

	rec, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotARecord, doc)
	}

	return rec, nil
}

// DecodeYAML decodes a YAML mapping into a plain record. Nested mappings are
// normalized to map[string]any.
func DecodeYAML(data []byte) (map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML record: %w", err)
	}

	rec, ok := Normalize(doc).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotARecord, doc)
	}

	return rec, nil
}

// Normalize converts every map reachable from v into map[string]any, keyed by
// the textual form of the original keys, and every slice into []any.
// Undefined values are dropped from maps.
func Normalize(v any) any {
	switch ShapeOf(v) {
	case ShapeMapping:
		if obj, ok := v.(Object); ok {
			if m, isMap := obj.(Map); isMap {
				v = map[string]any(m)
			}
		}

		entries, ok := Entries(v)
		if !ok {
			return v
		}

		out := make(map[string]any, len(entries))
		for _, e := range entries {
			if IsUndefined(e.Value) {
				continue
			}

			out[fmt.Sprint(e.Key)] = Normalize(e.Value)
		}

		return out

	case ShapeSequence:
		if _, isBytes := v.([]byte); isBytes {
			return v
		}

		items, _ := Elements(v)

		out := make([]any, len(items))
		for i, item := range items {
			out[i] = Normalize(item)
		}

		return out

	case ShapeNull:
		return nil

	default:
		return v
	}
}

// EncodeCanonical encodes v as canonical JSON (RFC 8785): sorted keys, no
// insignificant whitespace, ES6 number formatting.
func EncodeCanonical(v any) ([]byte, error) {
	data, err := json.Marshal(Normalize(v))
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}

	out, err := jsoncanonicalizer.Transform(data)
	if err != nil {
		return nil, fmt.Errorf("could not canonicalize record: %w", err)
	}

	return out, nil
}
