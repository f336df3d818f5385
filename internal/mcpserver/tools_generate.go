package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/circegen/circegen/generator"
)

type generateInput struct {
	Declaration string `json:"declaration,omitempty" jsonschema:"Inline Scala case class declaration"`
	File        string `json:"file,omitempty"        jsonschema:"Path to a file containing one case class declaration"`
	SplitMode   string `json:"split_mode,omitempty"  jsonschema:"flat or nested (default from CIRCEGEN_SPLIT_MODE)"`
	Output      string `json:"output,omitempty"      jsonschema:"File path to write the generated companion object to"`
}

type generateOutput struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	FieldCount int    `json:"field_count"`
	Generic    bool   `json:"generic"`
	WrittenTo  string `json:"written_to,omitempty"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	decl, err := declarationInput{
		Declaration: input.Declaration,
		File:        input.File,
		SplitMode:   input.SplitMode,
	}.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	result, err := generator.GenerateWithOptions(generator.WithDeclaration(decl))
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	output := generateOutput{
		Code:       result.Code,
		Name:       decl.Name,
		FieldCount: result.FieldCount,
		Generic:    result.Generic,
	}

	if input.Output != "" {
		if err := result.WriteFile(input.Output); err != nil {
			return errResult(fmt.Errorf("failed to write generated code: %w", err)), generateOutput{}, nil
		}
		output.WrittenTo = input.Output
	}

	return nil, output, nil
}
