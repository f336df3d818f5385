// Package circegen generates circe companion objects for Scala case classes.
//
// circegen reads a single textual case class declaration, extracts its name,
// type parameters and field names, and renders a companion object that wires
// Encoder and Decoder instances through forProductN.
//
// # Overview
//
// The library consists of two primary packages:
//
//   - caseclass: Parse a case class declaration into a [caseclass.Declaration]
//   - generator: Render a Declaration into companion object source text
//
// Errors returned by both packages are described in the cgerrors package and
// can be inspected with errors.Is and errors.As.
//
// # Quick Start
//
// Parse a declaration:
//
//	import "github.com/circegen/circegen/caseclass"
//
//	decl, err := caseclass.Parse("case class Person(age: Int, favoriteFood: Food)")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(decl.Fields) // [age favoriteFood]
//
// Render the companion object:
//
//	import "github.com/circegen/circegen/generator"
//
//	fmt.Println(generator.Render(decl))
//
// Output:
//
//	object Person {
//	  implicit lazy val encoder: Encoder[Person] = Encoder.forProduct2("age", "favorite_food")(a => (a.age, a.favoriteFood))
//
//	  implicit lazy val decoder: Decoder[Person] = Decoder.forProduct2("age", "favorite_food")(Person.apply)
//	}
//
// Or do both in one call:
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithInput("case class Generic[+A: Something](something: List[A])"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Code)
//
// # Command Line
//
// The circegen command reads one line from stdin and prints the companion
// object. See cmd/circegen for the generate, parse, check and mcp subcommands.
package circegen
