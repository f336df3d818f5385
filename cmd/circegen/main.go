package main

import (
	"os"
	"strings"

	"github.com/circegen/circegen"
	"github.com/circegen/circegen/cmd/circegen/commands"
	"github.com/circegen/circegen/internal/cliutil"
	"github.com/circegen/circegen/internal/config"
)

var commandNames = []string{"generate", "parse", "check", "mcp", "version", "help"}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Bare invocation, or only flags, is the stdin one-liner form of generate.
	if len(args) == 0 || (strings.HasPrefix(args[0], "-") && !isMetaFlag(args[0])) {
		return exitOnError(commands.HandleGenerate(args))
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "version", "-v", "--version":
		cliutil.Writef(os.Stdout, "%s\n", circegen.Banner())
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	case "generate":
		return exitOnError(commands.HandleGenerate(rest))
	case "parse":
		return exitOnError(commands.HandleParse(rest))
	case "check":
		return exitOnError(commands.HandleCheck(rest))
	case "mcp":
		return exitOnError(commands.HandleMCP(rest))
	default:
		cliutil.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			cliutil.Writef(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		cliutil.Writef(os.Stderr, "\n")
		printUsage()
		return 1
	}
}

func isMetaFlag(arg string) bool {
	switch arg {
	case "-v", "--version", "-h", "--help":
		return true
	}
	return false
}

func exitOnError(err error) int {
	if err == nil {
		return 0
	}
	noColor := false
	if cfg, cfgErr := config.Load(); cfgErr == nil {
		noColor = cfg.NoColor
	}
	styler := cliutil.NewStyler(os.Stderr, noColor)
	cliutil.Writef(os.Stderr, "%s %v\n", styler.Error("Error:"), err)
	return 1
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" if none is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	usage := `circegen - circe codec companion generator for Scala case classes

Usage:
  circegen [flags] < declaration       Read one line from stdin and print the companion object
  circegen <command> [flags] [args]

Commands:
  generate    Generate a companion object with Encoder and Decoder instances
  parse       Show the name, type parameters, and fields of a declaration
  check       Verify that a companion file matches its declaration
  mcp         Run the MCP server on stdio
  version     Show version information
  help        Show this help message

Environment:
  CIRCEGEN_SPLIT_MODE       flat (default) or nested
  CIRCEGEN_MAX_INPUT_SIZE   largest accepted declaration in bytes (default 1048576)
  CIRCEGEN_NO_COLOR         disable colored output
  CIRCEGEN_VERBOSE          log parsing stages to stderr

Examples:
  echo 'case class Person(age: Int, favoriteFood: String)' | circegen
  circegen generate -o PersonCodecs.scala person.scala
  circegen parse --format json person.scala
  circegen check person.scala PersonCodecs.scala

Run 'circegen <command> --help' for more information on a command.
`
	cliutil.Writef(os.Stdout, "%s", usage)
}
