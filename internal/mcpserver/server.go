// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes circegen parsing and code generation as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/circegen/circegen"
)

const serverInstructions = `circegen MCP server: parses Scala case class declarations and generates circe Encoder/Decoder companion objects.

Provide a declaration inline (declaration) or by path (file), never both. Parse failures are reported as tool errors naming the failed stage: MalformedDeclaration, MalformedTypeParameter, or MalformedField.

Configuration: defaults come from CIRCEGEN_* environment variables set in your MCP client config.
- CIRCEGEN_SPLIT_MODE (default: flat) splits lists on every comma; nested splits only on top-level commas
- CIRCEGEN_MAX_INPUT_SIZE (default: 1048576) largest accepted declaration in bytes
- CIRCEGEN_MCP_CACHE_ENABLED (default: true) cache parsed declarations per session
- CIRCEGEN_MCP_CACHE_MAX_SIZE (default: 64) and CIRCEGEN_MCP_CACHE_TTL (default: 15m)`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	return newServer().Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "circegen", Version: circegen.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse a Scala case class declaration. Returns the class name, type parameters (variance markers and bounds stripped), field names in declaration order, and whether the class is generic. Use split_mode=nested when field types contain commas inside brackets, such as Map[String, Int].",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate a circe companion object for a Scala case class declaration. Returns Scala source defining encoder and decoder via Encoder.forProductN and Decoder.forProductN with snake_case JSON labels. Generic classes get implicit defs with context bounds. Use output to also write the code to a file.",
	}, handleGenerate)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
