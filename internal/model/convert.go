package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
)

// location tracks where a value sits while it is converted.
type location struct {
	record string
	field  string
	path   string
	policy EnumPolicy
}

func (l location) index(i int) location {
	l.path = fmt.Sprintf("%s[%d]", l.path, i)
	return l
}

func (l location) key(k string) location {
	l.path = fmt.Sprintf("%s[%q]", l.path, k)
	return l
}

func (l location) fail(err error, expected, actual string) *FieldError {
	return &FieldError{
		Record:   l.record,
		Field:    l.field,
		Path:     l.path,
		Err:      err,
		Expected: expected,
		Actual:   actual,
	}
}

func (l location) mismatch(t Type, v any) *FieldError {
	return l.fail(ErrTypeMismatch, t.String(), typeName(v))
}

// converter carries the per-call options shared by decode and encode.
type converter struct {
	collect  bool
	policies map[string]EnumPolicy // "Schema.wire_name" -> policy
	unknown  bool
}

// fieldLoc returns the location of field f of schema s below parent.
func (c converter) fieldLoc(parent location, s *Schema, f FieldDescriptor) location {
	loc := location{record: parent.record, field: f.Name, path: f.WireName, policy: f.Policy}
	if loc.record == "" {
		loc.record = s.name
	}
	if parent.path != "" {
		loc.path = parent.path + "." + f.WireName
	}
	if p, ok := c.policies[s.name+"."+f.WireName]; ok {
		loc.policy = p
	}
	return loc
}

// convert normalizes v into the decoded representation of t.
func (c converter) convert(t Type, v any, loc location) (any, error) {
	if v == nil {
		if t.Kind == KindAny {
			return nil, nil
		}
		return nil, loc.fail(ErrUnexpectedNull, t.String(), "null")
	}
	switch t.Kind {
	case KindAny:
		return cloneValue(v), nil
	case KindString:
		s, ok := asString(v)
		if !ok {
			return nil, loc.mismatch(t, v)
		}
		return s, nil
	case KindInt:
		n, ok := asInt64(v)
		if !ok {
			return nil, loc.mismatch(t, v)
		}
		return n, nil
	case KindFloat:
		f, ok := asFloat64(v)
		if !ok {
			return nil, loc.mismatch(t, v)
		}
		return f, nil
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, loc.mismatch(t, v)
		}
		return b, nil
	case KindEnum:
		s, ok := asString(v)
		if !ok {
			return nil, loc.mismatch(t, v)
		}
		if !t.Enum.Contains(s) && loc.policy == EnumStrict {
			fe := loc.fail(ErrUnknownEnumValue, t.String(), "")
			fe.Value = s
			return nil, fe
		}
		return s, nil
	case KindRecord:
		return c.convertRecord(t, v, loc)
	case KindList:
		items, ok := asList(v)
		if !ok {
			return nil, loc.mismatch(t, v)
		}
		out := make([]any, 0, len(items))
		var errs []error
		for i, item := range items {
			cv, err := c.convert(*t.Elem, item, loc.index(i))
			if err != nil {
				if !c.collect {
					return nil, err
				}
				errs = append(errs, err)
				continue
			}
			out = append(out, cv)
		}
		if len(errs) > 0 {
			return nil, errors.Join(errs...)
		}
		return out, nil
	case KindMap:
		m, ok := asMap(v)
		if !ok {
			return nil, loc.mismatch(t, v)
		}
		out := make(map[string]any, len(m))
		var errs []error
		for _, k := range sortedKeys(m) {
			cv, err := c.convert(*t.Elem, m[k], loc.key(k))
			if err != nil {
				if !c.collect {
					return nil, err
				}
				errs = append(errs, err)
				continue
			}
			out[k] = cv
		}
		if len(errs) > 0 {
			return nil, errors.Join(errs...)
		}
		return out, nil
	case KindUnion:
		return c.convertUnion(t, v, loc)
	default:
		return nil, loc.mismatch(t, v)
	}
}

func (c converter) convertRecord(t Type, v any, loc location) (any, error) {
	switch x := v.(type) {
	case Record:
		if x.schema != t.Record {
			return nil, loc.mismatch(t, v)
		}
		return x, nil
	case Recorder:
		rec := x.Record()
		if rec.schema != t.Record {
			return nil, loc.mismatch(t, v)
		}
		return rec, nil
	}
	m, ok := asMap(v)
	if !ok {
		return nil, loc.mismatch(t, v)
	}
	rec, err := c.decodeRecord(t.Record, m, loc)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// convertUnion resolves v to the first alternative that accepts it. An
// explicit Variant selects its alternative by name.
func (c converter) convertUnion(t Type, v any, loc location) (any, error) {
	if vr, ok := v.(Variant); ok {
		alt, found := t.alt(vr.Name)
		if !found {
			return nil, loc.fail(ErrTypeMismatch, t.String(), "variant "+vr.Name)
		}
		cv, err := c.convert(alt.Type, vr.Value, loc)
		if err != nil {
			return nil, err
		}
		return Variant{Name: alt.Name, Value: cv}, nil
	}
	trial := converter{policies: c.policies}
	for _, alt := range t.Alts {
		cv, err := trial.convert(alt.Type, v, loc)
		if err == nil {
			return Variant{Name: alt.Name, Value: cv}, nil
		}
	}
	return nil, loc.mismatch(t, v)
}

// decodeRecord maps a payload onto schema s.
func (c converter) decodeRecord(s *Schema, payload map[string]any, parent location) (Record, error) {
	rec := Record{schema: s, values: make(map[string]any, len(s.fields))}
	var errs []error
	fail := func(err error) bool {
		errs = append(errs, err)
		return !c.collect
	}
	for _, f := range s.fields {
		loc := c.fieldLoc(parent, s, f)
		v, present := payload[f.WireName]
		if !present {
			if f.Required && fail(loc.fail(ErrMissingRequiredField, "", "")) {
				break
			}
			continue
		}
		if v == nil {
			if !f.Nullable {
				if fail(loc.fail(ErrUnexpectedNull, f.Type.String(), "null")) {
					break
				}
				continue
			}
			rec.values[f.Name] = nil
			continue
		}
		cv, err := c.convert(f.Type, v, loc)
		if err != nil {
			if fail(err) {
				break
			}
			continue
		}
		rec.values[f.Name] = cv
	}
	if len(errs) > 0 {
		return Record{}, errors.Join(errs...)
	}
	for k, v := range payload {
		if _, known := s.byWire[k]; known {
			continue
		}
		if rec.extra == nil {
			rec.extra = make(map[string]any)
		}
		rec.extra[k] = cloneValue(v)
	}
	return rec, nil
}

// encodeRecord validates r and lowers it to a wire payload.
func (c converter) encodeRecord(r Record, parent location) (map[string]any, error) {
	if r.schema == nil {
		return nil, ErrNoSchema
	}
	s := r.schema
	out := make(map[string]any, len(r.values))
	var errs []error
	fail := func(err error) bool {
		errs = append(errs, err)
		return !c.collect
	}
	for _, f := range s.fields {
		loc := c.fieldLoc(parent, s, f)
		v, set := r.values[f.Name]
		if !set {
			if f.Required && fail(loc.fail(ErrMissingRequiredField, "", "")) {
				break
			}
			continue
		}
		if v == nil {
			if !f.Nullable {
				if fail(loc.fail(ErrUnexpectedNull, f.Type.String(), "null")) {
					break
				}
				continue
			}
			out[f.WireName] = nil
			continue
		}
		nv, err := c.convert(f.Type, v, loc)
		if err == nil {
			nv, err = c.lower(f.Type, nv, loc)
		}
		if err != nil {
			if fail(err) {
				break
			}
			continue
		}
		out[f.WireName] = nv
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if c.unknown {
		for k, v := range r.extra {
			if _, known := s.byWire[k]; !known {
				out[k] = cloneValue(v)
			}
		}
	}
	return out, nil
}

// lower turns a normalized value into its wire form.
func (c converter) lower(t Type, v any, loc location) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch t.Kind {
	case KindRecord:
		return c.encodeRecord(v.(Record), loc)
	case KindList:
		items := v.([]any)
		out := make([]any, len(items))
		var errs []error
		for i, item := range items {
			lv, err := c.lower(*t.Elem, item, loc.index(i))
			if err != nil {
				if !c.collect {
					return nil, err
				}
				errs = append(errs, err)
				continue
			}
			out[i] = lv
		}
		if len(errs) > 0 {
			return nil, errors.Join(errs...)
		}
		return out, nil
	case KindMap:
		m := v.(map[string]any)
		out := make(map[string]any, len(m))
		var errs []error
		for _, k := range sortedKeys(m) {
			lv, err := c.lower(*t.Elem, m[k], loc.key(k))
			if err != nil {
				if !c.collect {
					return nil, err
				}
				errs = append(errs, err)
				continue
			}
			out[k] = lv
		}
		if len(errs) > 0 {
			return nil, errors.Join(errs...)
		}
		return out, nil
	case KindUnion:
		vr := v.(Variant)
		alt, _ := t.alt(vr.Name)
		return c.lower(alt.Type, vr.Value, loc)
	default:
		return v, nil
	}
}

func typeName(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case json.Number, float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case Record:
		if x.schema == nil {
			return "record"
		}
		return "record " + x.schema.name
	case Recorder:
		return typeName(x.Record())
	case Variant:
		return "variant " + x.Name
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}

func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case json.Number:
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float32:
		return floatToInt64(float64(n))
	case float64:
		return floatToInt64(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	}
	return 0, false
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	if i, ok := asInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}

func asList(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func asMap(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, true
	case map[string]string:
		out := make(map[string]any, len(x))
		for k, s := range x {
			out[k] = s
		}
		return out, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// cloneValue copies maps and slices in v recursively. Other values,
// records included, are returned as is.
func cloneValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case Variant:
		return Variant{Name: x.Name, Value: cloneValue(x.Value)}
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), cloneElem(iter.Value()))
		}
		return out.Interface()
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(cloneElem(rv.Index(i)))
		}
		return out.Interface()
	}
	return v
}

func cloneElem(v reflect.Value) reflect.Value {
	if (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) && v.IsNil() {
		return reflect.Zero(v.Type())
	}
	c := cloneValue(v.Interface())
	if c == nil {
		return reflect.Zero(v.Type())
	}
	return reflect.ValueOf(c)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
