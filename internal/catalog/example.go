package catalog

import "github.com/danmuck/callsdk/internal/model"

// Example builds a fully populated record of s: every field is set, using
// the first enum value, the first union alternative, and one element for
// lists and maps. Nullable scalar fields are set to null when nulls is true.
func Example(s *model.Schema, nulls bool) model.Record {
	rec := s.New()
	for _, f := range s.Fields() {
		if nulls && f.Nullable && f.Type.Kind != model.KindRecord {
			rec = rec.WithNull(f.Name)
			continue
		}
		rec = rec.With(f.Name, exampleValue(f.Type, nulls))
	}
	return rec
}

func exampleValue(t model.Type, nulls bool) any {
	switch t.Kind {
	case model.KindString:
		return "example"
	case model.KindInt:
		return 1
	case model.KindFloat:
		return 1.5
	case model.KindBool:
		return true
	case model.KindEnum:
		return t.Enum.Values()[0]
	case model.KindRecord:
		return Example(t.Record, nulls)
	case model.KindList:
		return []any{exampleValue(*t.Elem, nulls)}
	case model.KindMap:
		return map[string]any{"key": exampleValue(*t.Elem, nulls)}
	case model.KindUnion:
		alt := t.Alts[0]
		return model.Variant{Name: alt.Name, Value: exampleValue(alt.Type, nulls)}
	default:
		return map[string]any{"opaque": true}
	}
}
