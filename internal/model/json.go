package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// ParsePayload decodes a JSON object into a payload map. Numbers are kept as
// json.Number so integers survive without float rounding.
func ParsePayload(data []byte) (map[string]any, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: payload is not valid JSON", ErrTypeMismatch)
	}
	if res := gjson.ParseBytes(data); !res.IsObject() {
		return nil, &FieldError{Err: ErrTypeMismatch, Expected: "object", Actual: jsonKind(res)}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("model: parse payload: %w", err)
	}
	return payload, nil
}

func jsonKind(res gjson.Result) string {
	switch res.Type {
	case gjson.Null:
		return "null"
	case gjson.False, gjson.True:
		return "bool"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	}
	if res.IsArray() {
		return "list"
	}
	return "object"
}

// Unmarshal decodes JSON data into a record of schema s.
func Unmarshal(s *Schema, data []byte, opts ...Option) (Record, error) {
	payload, err := ParsePayload(data)
	if err != nil {
		return Record{}, err
	}
	return Decode(s, payload, opts...)
}

// Marshal encodes r as a JSON object.
func Marshal(r Record, opts ...Option) ([]byte, error) {
	payload, err := Encode(r, opts...)
	if err != nil {
		return nil, err
	}
	return json.Marshal(payload)
}
