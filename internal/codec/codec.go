// Package codec defines the serializer collaborator used to decode server
// response bodies, plus the default JSON implementation.
package codec

import (
	"encoding/json"
)

// Codec decodes a raw response payload either into a typed value or into
// a generic mapping.
type Codec interface {
	// Decode denormalizes data into the target value.
	Decode(data []byte, v any) error

	// DecodeMap denormalizes data into a generic mapping.
	DecodeMap(data []byte) (map[string]any, error)
}

// JSON is the default Codec over encoding/json.
type JSON struct{}

// Decode implements Codec.
func (JSON) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// DecodeMap implements Codec.
func (JSON) DecodeMap(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
