// Package generator renders circe companion objects from parsed case class
// declarations.
//
// # Quick Start
//
//	decl, err := caseclass.Parse("case class Person(age: Int, favoriteFood: Food)")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(generator.Render(decl))
//
// Or parse and render in one call:
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithInput("case class Generic[A](something: List[A])"),
//	)
//
// # Options
//
//	| Option           | Purpose                                          |
//	|------------------|--------------------------------------------------|
//	| WithInput        | input source: declaration text                   |
//	| WithBytes        | input source: declaration bytes                  |
//	| WithReader       | input source: io.Reader                          |
//	| WithDeclaration  | input source: an already parsed declaration      |
//	| WithSplitMode    | passed to the parser                             |
//	| WithMaxInputSize | passed to the parser                             |
//	| WithLogger       | passed to the parser                             |
//
// The result's WriteFile method writes the code to disk and refuses to follow
// symlinks.
//
// # Output
//
// A non-generic declaration gets lazy val bindings and a bare constructor
// reference:
//
//	object Person {
//	  implicit lazy val encoder: Encoder[Person] = Encoder.forProduct2("age", "favorite_food")(a => (a.age, a.favoriteFood))
//
//	  implicit lazy val decoder: Decoder[Person] = Decoder.forProduct2("age", "favorite_food")(Person.apply)
//	}
//
// A generic declaration gets def bindings, each type parameter bound to
// Encoder or Decoder, and an explicitly instantiated constructor:
//
//	object Generic {
//	  implicit def encoder[A: Encoder]: Encoder[Generic[A]] = Encoder.forProduct1("something")(a => (a.something))
//
//	  implicit def decoder[A: Decoder]: Decoder[Generic[A]] = Decoder.forProduct1("something")(Generic.apply[A])
//	}
//
// Serialized labels are the snake_case form of each field name; the tuple
// projection keeps the original name. The template is fixed.
package generator
