package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/circegen/circegen/generator"
	"github.com/circegen/circegen/internal/cliutil"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	commonFlags
	Output string
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	flags.register(fs)
	fs.StringVar(&flags.Output, "o", "", "write the companion object to this file instead of stdout")
	fs.StringVar(&flags.Output, "output", "", "write the companion object to this file instead of stdout")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: circegen generate [flags] [file|-]\n\n")
		Writef(output, "Generate a circe codec companion object for a Scala case class.\n\n")
		Writef(output, "With no file, exactly one line is read from stdin.\n")
		Writef(output, "A file (or '-' for all of stdin) may span several lines.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  echo 'case class Person(age: Int, favoriteFood: String)' | circegen\n")
		Writef(output, "  circegen generate -o PersonCodecs.scala person.scala\n")
		Writef(output, "  circegen generate --split nested wrapper.scala\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Companion object generated\n")
		Writef(output, "  1    The declaration could not be parsed or the output could not be written\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	return runGenerate(args, stdio())
}

func runGenerate(args []string, s streams) error {
	fs, flags := SetupGenerateFlags()
	fs.SetOutput(s.errOut)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("generate command accepts at most one file path or '-' for stdin")
	}

	cfg, err := flags.resolve()
	if err != nil {
		return err
	}

	decl, err := parseInput(fs.Arg(0), cfg, s)
	if err != nil {
		return err
	}

	result, err := generator.GenerateWithOptions(generator.WithDeclaration(decl))
	if err != nil {
		return err
	}

	if flags.Output == "" {
		Writef(s.out, "%s\n", result.Code)
		return nil
	}

	if err := result.WriteFile(flags.Output); err != nil {
		return err
	}
	styler := cliutil.NewStyler(s.errOut, cfg.NoColor)
	Writef(s.errOut, "%s %s (%d fields) to %s\n",
		styler.Success("Wrote"), decl.Name, result.FieldCount, flags.Output)
	return nil
}
