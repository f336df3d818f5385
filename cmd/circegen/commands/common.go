// Package commands provides CLI command handlers for circegen.
package commands

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/circegen/circegen/caseclass"
	"github.com/circegen/circegen/internal/cliutil"
	"github.com/circegen/circegen/internal/config"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading all of stdin.
const StdinFilePath = "-"

// streams are the standard streams a command reads from and writes to.
type streams struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func stdio() streams {
	return streams{in: os.Stdin, out: os.Stdout, errOut: os.Stderr}
}

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// MarshalStructured marshals data in the specified format (json or yaml).
func MarshalStructured(data any, format string) ([]byte, error) {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return bytes, nil
}

// FormatInputPath returns a display-friendly name for the input source.
func FormatInputPath(path string) string {
	switch path {
	case "":
		return "<stdin line>"
	case StdinFilePath:
		return "<stdin>"
	default:
		return path
	}
}

// readInput returns the declaration text for path.
//
// An empty path reads exactly one line from in with the trailing newline
// and whitespace stripped. "-" reads all of in. Anything else is a file.
func readInput(path string, in io.Reader, limit int64) (string, error) {
	switch path {
	case "":
		return readLine(in)
	case StdinFilePath:
		data, err := io.ReadAll(io.LimitReader(in, limit+1))
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	default:
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if info.Size() > limit {
			return "", fmt.Errorf("input file %s is %d bytes, limit is %d", path, info.Size(), limit)
		}
		data, err := os.ReadFile(path) //nolint:gosec // G304 - user-supplied CLI path
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return string(data), nil
	}
}

func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(line, " \t\r\n"), nil
}

// commonFlags are shared by every command that parses a declaration.
type commonFlags struct {
	SplitMode string
	Verbose   bool
	NoColor   bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.SplitMode, "split", "", "how to split type parameter and field lists: flat or nested (default from CIRCEGEN_SPLIT_MODE, else flat)")
	fs.BoolVar(&c.Verbose, "verbose", false, "log parsing stages to stderr")
	fs.BoolVar(&c.NoColor, "no-color", false, "disable colored output")
}

// resolve merges environment configuration with the flags. Flags win.
func (c *commonFlags) resolve() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if c.SplitMode != "" {
		cfg.SplitMode = c.SplitMode
	}
	cfg.Verbose = cfg.Verbose || c.Verbose
	cfg.NoColor = cfg.NoColor || c.NoColor
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseOptions returns caseclass options for cfg, logging to errOut when verbose.
func parseOptions(cfg *config.Config, errOut io.Writer) []caseclass.Option {
	opts := cfg.ParseOptions()
	if cfg.Verbose {
		handler := slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, caseclass.WithLogger(caseclass.NewSlogAdapter(slog.New(handler))))
	}
	return opts
}

// parseInput reads and parses the declaration named by path.
func parseInput(path string, cfg *config.Config, s streams) (*caseclass.Declaration, error) {
	text, err := readInput(path, s.in, cfg.MaxInputSize)
	if err != nil {
		return nil, err
	}
	opts := append([]caseclass.Option{caseclass.WithString(text)}, parseOptions(cfg, s.errOut)...)
	return caseclass.ParseWithOptions(opts...)
}
