package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type parseOutput struct {
	Name       string   `json:"name"`
	TypeParams []string `json:"type_params,omitempty"`
	Fields     []string `json:"fields"`
	FieldCount int      `json:"field_count"`
	Generic    bool     `json:"generic"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input declarationInput) (*mcp.CallToolResult, parseOutput, error) {
	decl, err := input.resolve()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	return nil, parseOutput{
		Name:       decl.Name,
		TypeParams: decl.TypeParams,
		Fields:     decl.Fields,
		FieldCount: decl.FieldCount(),
		Generic:    decl.IsGeneric(),
	}, nil
}
