package model

import (
	"fmt"
	"reflect"
)

// Record is an immutable instance of a schema. Every mutation returns a new
// Record; the receiver is never modified, so a base record can be shared.
type Record struct {
	schema *Schema
	values map[string]any // field name -> value; nil value means explicit null
	extra  map[string]any // unknown payload keys kept from decode
}

// Recorder is implemented by typed DTOs wrapping a Record.
type Recorder interface {
	Record() Record
}

func (r Record) Schema() *Schema {
	return r.schema
}

// IsZero reports whether r was never bound to a schema.
func (r Record) IsZero() bool {
	return r.schema == nil
}

// Get returns the value of field name and whether it is set. Maps and
// slices are returned as copies.
func (r Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return cloneValue(v), ok
}

func (r Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// IsNull reports whether field name is set to an explicit null.
func (r Record) IsNull(name string) bool {
	v, ok := r.values[name]
	return ok && v == nil
}

// Len returns the number of set fields.
func (r Record) Len() int {
	return len(r.values)
}

// Names returns the set fields in schema order.
func (r Record) Names() []string {
	if r.schema == nil {
		return nil
	}
	out := make([]string, 0, len(r.values))
	for _, f := range r.schema.fields {
		if _, ok := r.values[f.Name]; ok {
			out = append(out, f.Name)
		}
	}
	return out
}

// Extra returns a copy of the payload keys the schema does not declare.
func (r Record) Extra() map[string]any {
	if len(r.extra) == 0 {
		return nil
	}
	out := make(map[string]any, len(r.extra))
	for k, v := range r.extra {
		out[k] = cloneValue(v)
	}
	return out
}

// With returns a copy of r with field name set to v. Values matching the
// declared type are normalized to their decoded form; anything else is kept
// as given and reported by Validate or Encode. A nil v sets an explicit null.
// Maps and slices in v are copied; later changes by the caller do not reach
// the record.
func (r Record) With(name string, v any) Record {
	f := r.mustField(name)
	if v != nil {
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			v = nil
		}
	}
	if v != nil {
		c := converter{}
		if nv, err := c.convert(f.Type, v, location{record: r.schema.name, field: f.Name, path: f.WireName, policy: f.Policy}); err == nil {
			v = nv
		} else {
			v = cloneValue(v)
		}
	}
	return r.set(f.Name, v)
}

// WithNull returns a copy of r with field name set to an explicit null.
func (r Record) WithNull(name string) Record {
	f := r.mustField(name)
	return r.set(f.Name, nil)
}

// Without returns a copy of r with field name unset.
func (r Record) Without(name string) Record {
	r.mustField(name)
	if _, ok := r.values[name]; !ok {
		return r
	}
	values := make(map[string]any, len(r.values))
	for k, v := range r.values {
		if k != name {
			values[k] = v
		}
	}
	return Record{schema: r.schema, values: values, extra: r.extra}
}

func (r Record) set(name string, v any) Record {
	values := make(map[string]any, len(r.values)+1)
	for k, old := range r.values {
		values[k] = old
	}
	values[name] = v
	return Record{schema: r.schema, values: values, extra: r.extra}
}

func (r Record) mustField(name string) FieldDescriptor {
	if r.schema == nil {
		panic(fmt.Sprintf("model: set %q on a record without schema", name))
	}
	i, ok := r.schema.byName[name]
	if !ok {
		panic(fmt.Sprintf("model: %s has no field %q", r.schema.name, name))
	}
	return r.schema.fields[i]
}

// Make builds a record from values keyed by in-memory field name. Every
// required field must be supplied; values themselves are checked later, at
// Validate or Encode time.
func Make(s *Schema, values map[string]any) (Record, error) {
	for _, f := range s.fields {
		if !f.Required {
			continue
		}
		if _, ok := values[f.Name]; !ok {
			return Record{}, &FieldError{Record: s.name, Field: f.Name, Path: f.WireName, Err: ErrMissingRequiredField}
		}
	}
	for name := range values {
		if _, ok := s.byName[name]; !ok {
			return Record{}, fmt.Errorf("model: %s has no field %q", s.name, name)
		}
	}
	rec := s.New()
	for _, f := range s.fields {
		if v, ok := values[f.Name]; ok {
			rec = rec.With(f.Name, v)
		}
	}
	return rec, nil
}

// Equal reports whether r and o share a schema and hold the same field values.
// Unknown payload keys are not compared.
func (r Record) Equal(o Record) bool {
	if r.schema != o.schema || len(r.values) != len(o.values) {
		return false
	}
	for k, v := range r.values {
		ov, ok := o.values[k]
		if !ok || !valueEqual(v, ov) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	switch x := a.(type) {
	case Record:
		y, ok := b.(Record)
		return ok && x.Equal(y)
	case Variant:
		y, ok := b.(Variant)
		return ok && x.Name == y.Name && valueEqual(x.Value, y.Value)
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !valueEqual(x[i], y[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		y, ok := b.(map[string]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for k, v := range x {
			w, ok := y[k]
			if !ok || !valueEqual(v, w) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

// Typed accessors. Each returns false when the field is unset, null, or
// holds a value of another shape.

func (r Record) GetString(name string) (string, bool) {
	s, ok := r.values[name].(string)
	return s, ok
}

func (r Record) GetInt(name string) (int64, bool) {
	n, ok := r.values[name].(int64)
	return n, ok
}

func (r Record) GetFloat(name string) (float64, bool) {
	f, ok := r.values[name].(float64)
	return f, ok
}

func (r Record) GetBool(name string) (bool, bool) {
	b, ok := r.values[name].(bool)
	return b, ok
}

func (r Record) GetStrings(name string) ([]string, bool) {
	items, ok := r.values[name].([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func (r Record) GetStringMap(name string) (map[string]string, bool) {
	m, ok := r.values[name].(map[string]any)
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out[k] = s
	}
	return out, true
}

func (r Record) GetRecord(name string) (Record, bool) {
	rec, ok := r.values[name].(Record)
	return rec, ok
}

func (r Record) GetRecords(name string) ([]Record, bool) {
	items, ok := r.values[name].([]any)
	if !ok {
		return nil, false
	}
	out := make([]Record, 0, len(items))
	for _, item := range items {
		rec, ok := item.(Record)
		if !ok {
			return nil, false
		}
		out = append(out, rec)
	}
	return out, true
}

func (r Record) GetVariant(name string) (Variant, bool) {
	v, ok := r.values[name].(Variant)
	return v, ok
}
