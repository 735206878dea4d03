// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docsheet/docsheet/internal/docload"
	"github.com/docsheet/docsheet/internal/sheet"
	"github.com/docsheet/docsheet/internal/tabular/extractors"
)

// MetadataConvertDocument describes the convert_document tool.
var MetadataConvertDocument = &mcp.Tool{
	Name: "convert_document",
	Description: "Convert a document file (docx, json, yaml, txt, md) into an xlsx " +
		"spreadsheet. The document is decoded to text, structured records are " +
		"extracted and normalized, and the resulting table is written to the " +
		"output path with one column per discovered field.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"path"},
		"properties": map[string]interface{}{
			"path": map[string]interface{}{
				"type":        "string",
				"description": "Path of the document to convert",
			},
			"output": map[string]interface{}{
				"type":        "string",
				"description": "Path of the xlsx file to write. Defaults to the input path with an .xlsx extension.",
			},
		},
	},
}

// InputConvertDocument is the input for the ConvertDocument tool.
type InputConvertDocument struct {
	Path   string `json:"path"`
	Output string `json:"output"`
}

// OutputConvertDocument is the output for the ConvertDocument tool.
type OutputConvertDocument struct {
	Output  string   `json:"output"`
	Rows    int      `json:"rows"`
	Columns []string `json:"columns"`
}

// ConvertDocument decodes a document, extracts its records, and writes them
// to an xlsx workbook.
func ConvertDocument(ctx context.Context, _ *mcp.CallToolRequest, input InputConvertDocument) (*mcp.CallToolResult, OutputConvertDocument, error) {
	if input.Path == "" {
		return nil, OutputConvertDocument{}, fmt.Errorf("path is required")
	}

	loader := docload.New(docload.Config{})
	text, format, err := loader.Load(ctx, input.Path)
	if err != nil {
		return nil, OutputConvertDocument{}, err
	}

	result, err := extractors.PipelineFor(string(format)).RunWithMeta(ctx, text)
	if err != nil {
		return nil, OutputConvertDocument{}, err
	}

	output := input.Output
	if output == "" {
		output = DefaultOutputPath(input.Path)
	}
	if err := sheet.Write(output, result.Columns, result.Records); err != nil {
		return nil, OutputConvertDocument{}, err
	}

	return nil, OutputConvertDocument{
		Output:  output,
		Rows:    len(result.Records),
		Columns: result.Columns,
	}, nil
}

// DefaultOutputPath swaps the input path's extension for .xlsx.
func DefaultOutputPath(path string) string {
	if idx := strings.LastIndexByte(path, '.'); idx > strings.LastIndexAny(path, `/\`) {
		return path[:idx] + ".xlsx"
	}
	return path + ".xlsx"
}
