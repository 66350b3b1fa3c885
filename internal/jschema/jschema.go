// Package jschema exports record schemas as JSON Schema (draft 2020-12)
// documents and validates raw payloads against them.
package jschema

import (
	"encoding/json"
	"fmt"

	"github.com/danmuck/callsdk/internal/model"
	"github.com/google/jsonschema-go/jsonschema"
)

const Draft = "https://json-schema.org/draft/2020-12/schema"

// FromSchema converts s into a JSON Schema document. Every call builds a new
// tree; resolved documents must not share nodes.
func FromSchema(s *model.Schema) *jsonschema.Schema {
	root := recordSchema(s)
	root.Schema = Draft
	return root
}

func recordSchema(s *model.Schema) *jsonschema.Schema {
	out := &jsonschema.Schema{
		Type:       "object",
		Title:      s.Name(),
		Properties: make(map[string]*jsonschema.Schema, s.Len()),
	}
	for _, f := range s.Fields() {
		out.Properties[f.WireName] = fieldSchema(f)
		if f.Required {
			out.Required = append(out.Required, f.WireName)
		}
	}
	return out
}

func fieldSchema(f model.FieldDescriptor) *jsonschema.Schema {
	js := typeSchema(f.Type, f.Policy)
	if f.Nullable {
		nullable(js)
	}
	return js
}

// nullable widens js to also accept null.
func nullable(js *jsonschema.Schema) {
	switch {
	case js.Type != "":
		js.Types = []string{js.Type, "null"}
		js.Type = ""
	case len(js.AnyOf) > 0:
		js.AnyOf = append(js.AnyOf, &jsonschema.Schema{Type: "null"})
		return
	default:
		return
	}
	if js.Enum != nil {
		js.Enum = append(js.Enum, nil)
	}
}

func typeSchema(t model.Type, policy model.EnumPolicy) *jsonschema.Schema {
	switch t.Kind {
	case model.KindString:
		return &jsonschema.Schema{Type: "string"}
	case model.KindInt:
		return &jsonschema.Schema{Type: "integer"}
	case model.KindFloat:
		return &jsonschema.Schema{Type: "number"}
	case model.KindBool:
		return &jsonschema.Schema{Type: "boolean"}
	case model.KindEnum:
		values := t.Enum.Values()
		js := &jsonschema.Schema{Type: "string", Title: t.Enum.Name()}
		if policy == model.EnumPermissive {
			// Unknown values are accepted; the known set is advisory.
			for _, v := range values {
				js.Examples = append(js.Examples, v)
			}
			return js
		}
		js.Enum = make([]any, len(values))
		for i, v := range values {
			js.Enum[i] = v
		}
		return js
	case model.KindRecord:
		return recordSchema(t.Record)
	case model.KindList:
		return &jsonschema.Schema{Type: "array", Items: typeSchema(*t.Elem, policy)}
	case model.KindMap:
		return &jsonschema.Schema{Type: "object", AdditionalProperties: typeSchema(*t.Elem, policy)}
	case model.KindUnion:
		js := &jsonschema.Schema{}
		for _, alt := range t.Alts {
			sub := typeSchema(alt.Type, policy)
			sub.Title = alt.Name
			js.AnyOf = append(js.AnyOf, sub)
		}
		return js
	default:
		return &jsonschema.Schema{}
	}
}

// Resolve builds and resolves the document for s, ready for validation.
func Resolve(s *model.Schema) (*jsonschema.Resolved, error) {
	rs, err := FromSchema(s).Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("jschema: resolve %s: %w", s.Name(), err)
	}
	return rs, nil
}

// Validate checks a raw JSON document against a resolved schema.
func Validate(rs *jsonschema.Resolved, data []byte) error {
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return fmt.Errorf("jschema: parse payload: %w", err)
	}
	return ValidateValue(rs, instance)
}

// ValidateValue checks an already decoded JSON value.
func ValidateValue(rs *jsonschema.Resolved, instance any) error {
	if err := rs.Validate(instance); err != nil {
		return fmt.Errorf("jschema: %w", err)
	}
	return nil
}

// Marshal renders the document for s as indented JSON.
func Marshal(s *model.Schema) ([]byte, error) {
	return json.MarshalIndent(FromSchema(s), "", "  ")
}
