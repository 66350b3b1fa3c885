package inspect

import (
	"github.com/danmuck/callsdk/internal/model"
)

// FieldView is the JSON shape of one field descriptor.
type FieldView struct {
	Name     string   `json:"name"`
	Wire     string   `json:"wire"`
	Type     string   `json:"type"`
	Kind     string   `json:"kind"`
	Required bool     `json:"required"`
	Nullable bool     `json:"nullable"`
	Enum     []string `json:"enum,omitempty"`
	Policy   string   `json:"policy,omitempty"`
}

// ErrorView is the JSON shape of one field violation.
type ErrorView struct {
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func fieldViews(s *model.Schema) []FieldView {
	fields := model.Describe(s)
	out := make([]FieldView, 0, len(fields))
	for _, f := range fields {
		v := FieldView{
			Name:     f.Name,
			Wire:     f.WireName,
			Type:     f.Type.String(),
			Kind:     f.Type.Kind.String(),
			Required: f.Required,
			Nullable: f.Nullable,
		}
		if f.Type.Kind == model.KindEnum {
			v.Enum = f.Type.Enum.Values()
			v.Policy = f.Policy.String()
		}
		out = append(out, v)
	}
	return out
}

func errorViews(err error) []ErrorView {
	fes := model.FieldErrors(err)
	if len(fes) == 0 {
		return []ErrorView{{Kind: "invalid", Message: err.Error()}}
	}
	out := make([]ErrorView, 0, len(fes))
	for _, fe := range fes {
		out = append(out, ErrorView{Path: fe.Path, Kind: fe.Kind(), Message: fe.Error()})
	}
	return out
}
