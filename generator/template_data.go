package generator

import (
	"strconv"
	"strings"

	"github.com/circegen/circegen/caseclass"
	"github.com/circegen/circegen/internal/naming"
)

const (
	bindingLazyVal = "lazy val"
	bindingDef     = "def"
)

// companionData holds the pre-rendered fragments substituted into the
// companion template.
type companionData struct {
	Name              string
	FullName          string
	BindingKind       string
	EncoderTypeParams string
	DecoderTypeParams string
	TypeArgs          string
	FieldCount        int
	Labels            string
	Projections       string
}

func buildCompanionData(decl *caseclass.Declaration) companionData {
	data := companionData{
		Name:        decl.Name,
		FullName:    decl.Name,
		BindingKind: bindingLazyVal,
		FieldCount:  len(decl.Fields),
		Labels:      quotedLabels(decl.Fields),
		Projections: projections(decl.Fields),
	}

	if decl.IsGeneric() {
		data.BindingKind = bindingDef
		data.TypeArgs = "[" + strings.Join(decl.TypeParams, ", ") + "]"
		data.FullName = decl.Name + data.TypeArgs
		data.EncoderTypeParams = boundTypeParams(decl.TypeParams, "Encoder")
		data.DecoderTypeParams = boundTypeParams(decl.TypeParams, "Decoder")
	}

	return data
}

// quotedLabels returns `"age", "favorite_food"`.
func quotedLabels(fields []string) string {
	labels := naming.ToSnakeCaseAll(fields)
	for i, l := range labels {
		labels[i] = strconv.Quote(l)
	}
	return strings.Join(labels, ", ")
}

// projections returns `a.age, a.favoriteFood`. Access keeps the source name.
func projections(fields []string) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = "a." + f
	}
	return strings.Join(parts, ", ")
}

// boundTypeParams returns `[A: Encoder, B: Encoder]`.
func boundTypeParams(params []string, bound string) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p + ": " + bound
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
