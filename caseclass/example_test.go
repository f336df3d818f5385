package caseclass_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/circegen/circegen/caseclass"
	"github.com/circegen/circegen/cgerrors"
)

// Example demonstrates parsing a generic declaration.
func Example() {
	decl, err := caseclass.Parse("case class Generic[+A: Something](something: List[A])")
	if err != nil {
		log.Fatalf("failed to parse: %v", err)
	}
	fmt.Println(decl.Name)
	fmt.Println(decl.TypeParams)
	fmt.Println(decl.Fields)
	fmt.Println(decl.IsGeneric())
	// Output:
	// Generic
	// [A]
	// [something]
	// true
}

// Example_multiLine demonstrates that line breaks and indentation are ignored.
func Example_multiLine() {
	decl, err := caseclass.Parse(`case class Person(
    age: Int,
    favoriteFood: Food
)`)
	if err != nil {
		log.Fatalf("failed to parse: %v", err)
	}
	fmt.Println(decl)
	// Output:
	// Person(age, favoriteFood)
}

// Example_errors demonstrates inspecting the failed stage.
func Example_errors() {
	_, err := caseclass.Parse("case class Bad(age Int)")

	var perr *cgerrors.ParseError
	if errors.As(err, &perr) {
		fmt.Println(perr.Kind)
		fmt.Println(perr.Fragment)
	}
	fmt.Println(errors.Is(err, cgerrors.ErrMalformedField))
	// Output:
	// MalformedField
	// age Int
	// true
}

// Example_nestedSplit demonstrates bracket-aware splitting.
func Example_nestedSplit() {
	decl, err := caseclass.ParseWithOptions(
		caseclass.WithString("case class Counts(byName: Map[String, Int], total: Int)"),
		caseclass.WithSplitMode(caseclass.SplitModeNested),
	)
	if err != nil {
		log.Fatalf("failed to parse: %v", err)
	}
	fmt.Println(decl.Fields)
	// Output:
	// [byName total]
}
