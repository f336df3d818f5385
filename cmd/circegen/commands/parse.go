package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/circegen/circegen/caseclass"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	commonFlags
	Format string
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	flags.register(fs)
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: circegen parse [flags] [file|-]\n\n")
		Writef(output, "Extract the name, type parameters, and fields of a Scala case class.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  circegen parse person.scala\n")
		Writef(output, "  echo 'case class Generic[A](something: A)' | circegen parse --format json\n")
		Writef(output, "  circegen parse --format yaml --split nested wrapper.scala\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Declaration parsed\n")
		Writef(output, "  1    The declaration could not be parsed\n")
	}

	return fs, flags
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	return runParse(args, stdio())
}

func runParse(args []string, s streams) error {
	fs, flags := SetupParseFlags()
	fs.SetOutput(s.errOut)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("parse command accepts at most one file path or '-' for stdin")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	cfg, err := flags.resolve()
	if err != nil {
		return err
	}

	decl, err := parseInput(fs.Arg(0), cfg, s)
	if err != nil {
		return err
	}

	if flags.Format == FormatText {
		writeDeclarationText(s.out, decl)
		return nil
	}

	data, err := MarshalStructured(decl, flags.Format)
	if err != nil {
		return err
	}
	Writef(s.out, "%s", data)
	if flags.Format == FormatJSON {
		Writef(s.out, "\n")
	}
	return nil
}

func writeDeclarationText(w io.Writer, decl *caseclass.Declaration) {
	typeParams := "(none)"
	if decl.IsGeneric() {
		typeParams = strings.Join(decl.TypeParams, ", ")
	}
	Writef(w, "Name:            %s\n", decl.Name)
	Writef(w, "Type Parameters: %s\n", typeParams)
	Writef(w, "Fields (%d):      %s\n", decl.FieldCount(), strings.Join(decl.Fields, ", "))
	Writef(w, "Generic:         %t\n", decl.IsGeneric())
}
