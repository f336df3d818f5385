// Package caseclass extracts the identity of a Scala case class declaration.
//
// The parser is pattern based rather than grammar based. It finds the
// "case class Name[...](...)" shape, then pulls the leading identifier out of
// every type parameter and every field, discarding variance markers, bounds,
// field types and default values. Newlines are removed before matching, so a
// declaration may be written across several lines with any indentation.
//
// # Quick Start
//
//	decl, err := caseclass.Parse("case class Generic[+A: Something](something: List[A])")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(decl.Name, decl.TypeParams, decl.Fields) // Generic [A] [something]
//
// # Options
//
// [ParseWithOptions] takes exactly one input source and any number of settings:
//
//	| Option           | Purpose                                      |
//	|------------------|----------------------------------------------|
//	| WithString       | input source: declaration text               |
//	| WithBytes        | input source: declaration bytes              |
//	| WithReader       | input source: io.Reader                      |
//	| WithSplitMode    | SplitModeFlat (default) or SplitModeNested   |
//	| WithMaxInputSize | input size limit in bytes (default 1 MiB)    |
//	| WithLogger       | debug logging of each parsing stage          |
//
// # Errors
//
// Parsing stops at the first failure and returns a *cgerrors.ParseError whose
// Kind names the stage:
//
//   - MalformedDeclaration: the outer shape was not found
//   - MalformedTypeParameter: a type parameter had no leading identifier
//   - MalformedField: a field had no "name:" prefix
//
// Inputs larger than the configured limit fail before any matching with a
// *cgerrors.ResourceLimitError instead, which matches cgerrors.ErrResourceLimit
// under errors.Is. [Parser.ParseReader] stops reading one byte past the limit,
// so its Actual figure is a lower bound.
//
// There is no partial result.
//
// # Splitting
//
// By default type parameter and field lists are split on every comma
// ([SplitModeFlat]), so a field typed Map[String, Int] is cut in two and
// rejected. [SplitModeNested] ignores commas nested inside brackets.
package caseclass
