package generator

import (
	"fmt"

	"github.com/circegen/circegen/caseclass"
)

// Render returns the companion object source for decl.
//
// Render is pure and deterministic: the same Declaration always yields
// byte-identical output. The result has no leading or trailing newline.
// decl must satisfy the Declaration invariants (non-empty Name and Fields),
// which every Declaration returned by the caseclass package does.
func Render(decl *caseclass.Declaration) string {
	out, err := executeTemplate("companion", buildCompanionData(decl))
	if err != nil {
		// The template is fixed and its data is plain strings.
		panic(fmt.Sprintf("generator: companion template: %v", err))
	}
	return out
}

// GenerateResult contains the results of generating a companion object
type GenerateResult struct {
	// Declaration is the parsed case class
	Declaration *caseclass.Declaration
	// Code is the rendered companion object without a trailing newline
	Code string
	// FieldCount is the N in forProductN
	FieldCount int
	// Generic is true if the companion uses def bindings with type parameters
	Generic bool
}

// Generate parses input with a default parser and renders its companion.
func Generate(input string) (*GenerateResult, error) {
	return GenerateWithOptions(WithInput(input))
}

func newResult(decl *caseclass.Declaration) *GenerateResult {
	return &GenerateResult{
		Declaration: decl,
		Code:        Render(decl),
		FieldCount:  decl.FieldCount(),
		Generic:     decl.IsGeneric(),
	}
}
