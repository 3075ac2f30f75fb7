// Package format turns upstream catalog payloads into the canonical model.
//
// Each supported wire shape has an adapter implementing
// core.TranslationDataPort, a structural predicate (a JSON Schema) and a
// factory. A Registry tries the predicates in priority order.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Payload is one decoded upstream document. It keeps the canonical JSON
// encoding alongside the generic value (numbers as json.Number) so that
// predicates and typed decoding see the same data.
type Payload struct {
	raw   []byte
	value any
}

// ParseJSON decodes a JSON document.
func ParseJSON(data []byte) (Payload, error) {
	var v any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&v); err != nil {
		return Payload{}, fmt.Errorf("invalid json: %w", err)
	}
	return Payload{raw: data, value: v}, nil
}

// FromValue normalizes an in-memory value (e.g. decoded YAML or merged
// pages) into a Payload.
func FromValue(v any) (Payload, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Payload{}, fmt.Errorf("encode payload: %w", err)
	}
	return ParseJSON(data)
}

// Value returns the generic decoded value.
func (p Payload) Value() any { return p.value }

// Raw returns the JSON encoding.
func (p Payload) Raw() []byte { return p.raw }

// Decode unmarshals the payload into target.
func (p Payload) Decode(target any) error {
	decoder := json.NewDecoder(bytes.NewReader(p.raw))
	decoder.UseNumber()
	return decoder.Decode(target)
}
