package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/multilan/pkg/adapters/format"
)

// Serializer decodes one catalog file into a format payload.
type Serializer interface {
	Parse(r io.Reader) (format.Payload, error)
}

// DefaultSerializers returns the standard set of serializers, keyed by extension.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".json": NewJSONSerializer(),
		".yaml": NewYAMLSerializer(),
		".yml":  NewYAMLSerializer(),
	}
}

// --- JSON Serializer ---

// JSONSerializer reads JSON catalog files. Numbers are kept as json.Number
// so large upstream IDs do not lose precision.
type JSONSerializer struct{}

func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

func (s *JSONSerializer) Parse(r io.Reader) (format.Payload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return format.Payload{}, err
	}
	return format.ParseJSON(bytes.TrimSpace(data))
}

// --- YAML Serializer ---

// YAMLSerializer reads YAML catalog files and normalizes them to the JSON
// data model.
type YAMLSerializer struct{}

func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Parse(r io.Reader) (format.Payload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return format.Payload{}, err
	}

	var payload any
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return format.Payload{}, fmt.Errorf("invalid yaml: %w", err)
	}
	return format.FromValue(normalize(payload))
}

// normalize converts YAML-decoded values into JSON-compatible ones: map keys
// become strings and integers become json.Number.
func normalize(val any) any {
	switch v := val.(type) {
	case map[string]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[k] = normalize(val)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[fmt.Sprint(k)] = normalize(val)
		}
		return m
	case []any:
		l := make([]any, len(v))
		for i, val := range v {
			l[i] = normalize(val)
		}
		return l
	case int:
		return json.Number(strconv.Itoa(v))
	case int64:
		return json.Number(strconv.FormatInt(v, 10))
	case uint64:
		return json.Number(strconv.FormatUint(v, 10))
	default:
		return v
	}
}
