package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/circegen/circegen/generator"
	"github.com/circegen/circegen/internal/cliutil"
	"github.com/circegen/circegen/internal/textdiff"
)

// ErrCompanionDrift is returned by check when the companion file does not
// contain the object the declaration currently generates.
var ErrCompanionDrift = errors.New("companion object is out of date")

// CheckFlags contains flags for the check command
type CheckFlags struct {
	commonFlags
	Quiet bool
}

// SetupCheckFlags creates and configures a FlagSet for the check command.
// Returns the FlagSet and a CheckFlags struct with bound flag variables.
func SetupCheckFlags() (*flag.FlagSet, *CheckFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &CheckFlags{}

	flags.register(fs)
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: report drift only through the exit code")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: report drift only through the exit code")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: circegen check [flags] <declaration-file> <companion-file>\n\n")
		Writef(output, "Regenerate the companion object for a declaration and compare it with an\n")
		Writef(output, "existing file. The file is up to date when it contains the generated object.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  circegen check person.scala PersonCodecs.scala\n")
		Writef(output, "  circegen check -q - PersonCodecs.scala < person.scala\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Companion file is up to date\n")
		Writef(output, "  1    Companion file differs, or an input could not be read or parsed\n")
	}

	return fs, flags
}

// HandleCheck executes the check command
func HandleCheck(args []string) error {
	return runCheck(args, stdio())
}

func runCheck(args []string, s streams) error {
	fs, flags := SetupCheckFlags()
	fs.SetOutput(s.errOut)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("check command requires a declaration file and a companion file")
	}
	declPath, companionPath := fs.Arg(0), fs.Arg(1)

	cfg, err := flags.resolve()
	if err != nil {
		return err
	}

	decl, err := parseInput(declPath, cfg, s)
	if err != nil {
		return err
	}
	result, err := generator.GenerateWithOptions(generator.WithDeclaration(decl))
	if err != nil {
		return err
	}

	existing, err := os.ReadFile(companionPath) //nolint:gosec // G304 - user-supplied CLI path
	if err != nil {
		return fmt.Errorf("reading companion file: %w", err)
	}

	styler := cliutil.NewStyler(s.out, cfg.NoColor)
	if strings.Contains(string(existing), result.Code) {
		if !flags.Quiet {
			Writef(s.out, "%s %s is up to date\n", styler.Success("✓"), companionPath)
		}
		return nil
	}

	if !flags.Quiet {
		Writef(s.out, "%s\n", styler.Header("--- "+companionPath))
		Writef(s.out, "%s\n", styler.Header("+++ generated from "+FormatInputPath(declPath)))
		lines := textdiff.Lines(string(existing), result.Code+"\n")
		for _, line := range lines {
			text := line.Op.Prefix() + line.Text
			switch line.Op {
			case textdiff.Insert:
				text = styler.Insert(text)
			case textdiff.Delete:
				text = styler.Delete(text)
			}
			Writef(s.out, "%s\n", text)
		}
		inserted, deleted := textdiff.Count(lines)
		Writef(s.out, "%d line(s) to add, %d to remove\n", inserted, deleted)
	}
	return fmt.Errorf("%s: %w", companionPath, ErrCompanionDrift)
}
