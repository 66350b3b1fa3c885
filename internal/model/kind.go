package model

import (
	"fmt"
	"strings"
)

// Kind identifies the value shape of a field.
type Kind uint8

const (
	KindAny Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindEnum
	KindRecord
	KindList
	KindMap
	KindUnion
)

var kindNames = [...]string{
	KindAny:    "any",
	KindString: "string",
	KindInt:    "int",
	KindFloat:  "float",
	KindBool:   "bool",
	KindEnum:   "enum",
	KindRecord: "record",
	KindList:   "list",
	KindMap:    "map",
	KindUnion:  "union",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Type is the declared shape of a field value. Composite kinds carry their
// element type, nested schema, enum set, or union alternatives.
type Type struct {
	Kind   Kind
	Enum   *Enum
	Record *Schema
	Elem   *Type
	Alts   []Alt
}

// Alt is one candidate of a union type. Alternatives are tried in order.
type Alt struct {
	Name string
	Type Type
}

// Primitive types.
var (
	Any    = Type{Kind: KindAny}
	String = Type{Kind: KindString}
	Int    = Type{Kind: KindInt}
	Float  = Type{Kind: KindFloat}
	Bool   = Type{Kind: KindBool}
)

// EnumOf declares a field holding one of the wire values of e.
func EnumOf(e *Enum) Type {
	if e == nil {
		panic("model: EnumOf requires an enum")
	}
	return Type{Kind: KindEnum, Enum: e}
}

// RecordOf declares a nested record field.
func RecordOf(s *Schema) Type {
	if s == nil {
		panic("model: RecordOf requires a schema")
	}
	return Type{Kind: KindRecord, Record: s}
}

// ListOf declares a list whose elements have type elem.
func ListOf(elem Type) Type {
	return Type{Kind: KindList, Elem: &elem}
}

// MapOf declares a string-keyed map whose values have type elem.
func MapOf(elem Type) Type {
	return Type{Kind: KindMap, Elem: &elem}
}

// UnionOf declares a value that may take any of the given shapes.
func UnionOf(alts ...Alt) Type {
	if len(alts) == 0 {
		panic("model: UnionOf requires at least one alternative")
	}
	seen := make(map[string]struct{}, len(alts))
	for _, alt := range alts {
		if alt.Name == "" {
			panic("model: union alternative requires a name")
		}
		if _, dup := seen[alt.Name]; dup {
			panic(fmt.Sprintf("model: duplicate union alternative %q", alt.Name))
		}
		seen[alt.Name] = struct{}{}
	}
	out := make([]Alt, len(alts))
	copy(out, alts)
	return Type{Kind: KindUnion, Alts: out}
}

// clone returns t with its element type and alternatives copied, so the
// result shares no mutable state with t.
func (t Type) clone() Type {
	if t.Elem != nil {
		elem := t.Elem.clone()
		t.Elem = &elem
	}
	if t.Alts != nil {
		alts := make([]Alt, len(t.Alts))
		for i, alt := range t.Alts {
			alts[i] = Alt{Name: alt.Name, Type: alt.Type.clone()}
		}
		t.Alts = alts
	}
	return t
}

func (t Type) alt(name string) (Alt, bool) {
	for _, alt := range t.Alts {
		if alt.Name == name {
			return alt, true
		}
	}
	return Alt{}, false
}

func (t Type) String() string {
	switch t.Kind {
	case KindEnum:
		return "enum " + t.Enum.Name()
	case KindRecord:
		return "record " + t.Record.Name()
	case KindList:
		return "list<" + t.Elem.String() + ">"
	case KindMap:
		return "map<" + t.Elem.String() + ">"
	case KindUnion:
		parts := make([]string, len(t.Alts))
		for i, alt := range t.Alts {
			parts[i] = alt.Type.String()
		}
		return "union<" + strings.Join(parts, "|") + ">"
	default:
		return t.Kind.String()
	}
}

// Variant is the decoded value of a union field: the name of the matching
// alternative and the value converted to that alternative's type.
type Variant struct {
	Name  string
	Value any
}

// Enum is a closed set of wire strings.
type Enum struct {
	name   string
	values []string
	set    map[string]struct{}
}

// NewEnum declares an enum. Values keep their declaration order.
func NewEnum(name string, values ...string) *Enum {
	if strings.TrimSpace(name) == "" {
		panic("model: enum name is required")
	}
	if len(values) == 0 {
		panic(fmt.Sprintf("model: enum %s has no values", name))
	}
	e := &Enum{
		name:   name,
		values: make([]string, 0, len(values)),
		set:    make(map[string]struct{}, len(values)),
	}
	for _, v := range values {
		if _, dup := e.set[v]; dup {
			panic(fmt.Sprintf("model: enum %s: duplicate value %q", name, v))
		}
		e.set[v] = struct{}{}
		e.values = append(e.values, v)
	}
	return e
}

func (e *Enum) Name() string {
	return e.name
}

// Values returns the declared wire values in order.
func (e *Enum) Values() []string {
	out := make([]string, len(e.values))
	copy(out, e.values)
	return out
}

func (e *Enum) Contains(v string) bool {
	_, ok := e.set[v]
	return ok
}

// EnumPolicy controls how a field treats wire values outside its enum set.
type EnumPolicy uint8

const (
	// EnumStrict rejects unknown values with ErrUnknownEnumValue.
	EnumStrict EnumPolicy = iota
	// EnumPermissive keeps unknown values as raw strings.
	EnumPermissive
)

func (p EnumPolicy) String() string {
	switch p {
	case EnumStrict:
		return "strict"
	case EnumPermissive:
		return "permissive"
	default:
		return fmt.Sprintf("policy(%d)", p)
	}
}

// ParseEnumPolicy parses "strict" or "permissive".
func ParseEnumPolicy(raw string) (EnumPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "strict":
		return EnumStrict, nil
	case "permissive", "passthrough":
		return EnumPermissive, nil
	default:
		return EnumStrict, fmt.Errorf("model: unknown enum policy %q", raw)
	}
}
