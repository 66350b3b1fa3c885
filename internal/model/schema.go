package model

import (
	"fmt"
	"strings"
)

// FieldDescriptor declares one property of a record.
type FieldDescriptor struct {
	Name     string // in-memory name
	WireName string // payload key
	Type     Type
	Required bool
	Nullable bool
	Policy   EnumPolicy
}

func (f FieldDescriptor) clone() FieldDescriptor {
	f.Type = f.Type.clone()
	return f
}

// FieldOption adjusts a descriptor at declaration time.
type FieldOption func(*FieldDescriptor)

// Required marks a field that must be present on decode and before encode.
func Required() FieldOption {
	return func(f *FieldDescriptor) { f.Required = true }
}

// Nullable allows an explicit null on the wire.
func Nullable() FieldOption {
	return func(f *FieldDescriptor) { f.Nullable = true }
}

// Permissive lets unknown enum values through as raw strings.
func Permissive() FieldOption {
	return func(f *FieldDescriptor) { f.Policy = EnumPermissive }
}

// Field declares a field named name, serialized under wire.
func Field(name, wire string, t Type, opts ...FieldOption) FieldDescriptor {
	f := FieldDescriptor{Name: name, WireName: wire, Type: t}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Schema is the ordered, immutable field table of a record type.
type Schema struct {
	name   string
	fields []FieldDescriptor
	byName map[string]int
	byWire map[string]int
}

// NewSchema declares a record type. Invalid declarations panic: schemas are
// package-level definitions and a broken table is a programming error.
func NewSchema(name string, fields ...FieldDescriptor) *Schema {
	if strings.TrimSpace(name) == "" {
		panic("model: schema name is required")
	}
	s := &Schema{
		name:   name,
		fields: make([]FieldDescriptor, len(fields)),
		byName: make(map[string]int, len(fields)),
		byWire: make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if f.Name == "" || f.WireName == "" {
			panic(fmt.Sprintf("model: schema %s: field %d needs a name and a wire name", name, i))
		}
		if _, dup := s.byName[f.Name]; dup {
			panic(fmt.Sprintf("model: schema %s: duplicate field %q", name, f.Name))
		}
		if _, dup := s.byWire[f.WireName]; dup {
			panic(fmt.Sprintf("model: schema %s: duplicate wire name %q", name, f.WireName))
		}
		f.Type = f.Type.clone()
		s.fields[i] = f
		s.byName[f.Name] = i
		s.byWire[f.WireName] = i
	}
	return s
}

func (s *Schema) Name() string {
	return s.name
}

// Len returns the number of declared fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Fields returns copies of the descriptors in declaration order.
func (s *Schema) Fields() []FieldDescriptor {
	out := make([]FieldDescriptor, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.clone()
	}
	return out
}

// Field looks up a descriptor by in-memory name.
func (s *Schema) Field(name string) (FieldDescriptor, bool) {
	i, ok := s.byName[name]
	if !ok {
		return FieldDescriptor{}, false
	}
	return s.fields[i].clone(), true
}

// FieldByWire looks up a descriptor by wire name.
func (s *Schema) FieldByWire(wire string) (FieldDescriptor, bool) {
	i, ok := s.byWire[wire]
	if !ok {
		return FieldDescriptor{}, false
	}
	return s.fields[i].clone(), true
}

// Required returns the in-memory names of required fields in order.
func (s *Schema) Required() []string {
	var out []string
	for _, f := range s.fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}

// New returns an empty record of this type.
func (s *Schema) New() Record {
	return Record{schema: s}
}

// Describe returns the field table of s. It never fails for a declared schema.
func Describe(s *Schema) []FieldDescriptor {
	return s.Fields()
}

// Ensure returns r, or an empty record of s when r is the zero Record. Typed
// wrappers use it so their zero value behaves like a fresh record.
func (s *Schema) Ensure(r Record) Record {
	if r.IsZero() {
		return s.New()
	}
	return r
}
