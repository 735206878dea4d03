// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docsheet/docsheet/internal/tabular"
	"github.com/docsheet/docsheet/internal/tabular/extractors"
)

// MetadataExtractRecords describes the extract_records tool.
var MetadataExtractRecords = &mcp.Tool{
	Name: "extract_records",
	Description: "Extract a uniform table of flat records from loosely structured text. " +
		"JSON fragments embedded in prose and key/value blocks are both recognized; " +
		"nested structures are flattened, duplicates removed, and every record is " +
		"padded to the full column set. Fails only when no structured data is found.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content"},
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Raw text to extract records from",
			},
			"format": map[string]interface{}{
				"type":        "string",
				"description": "Format hint for the content. One of: json, yaml, txt. If omitted, the content is treated as free text.",
				"enum":        []string{"json", "yaml", "txt"},
			},
		},
	},
}

// InputExtractRecords is the input for the ExtractRecords tool.
type InputExtractRecords struct {
	Content string `json:"content"`
	Format  string `json:"format"`
}

// OutputExtractRecords is the output for the ExtractRecords tool.
type OutputExtractRecords struct {
	// Records is the final record set; field order matches Columns.
	Records []*tabular.Record `json:"records"`
	// Columns is the schema union across all records.
	Columns []string `json:"columns"`
	// Extracted counts raw records per extraction strategy, before merging.
	Extracted map[string]int `json:"extracted"`
}

// ExtractRecords runs the extraction pipeline over the provided content and
// returns the merged record set.
func ExtractRecords(ctx context.Context, _ *mcp.CallToolRequest, input InputExtractRecords) (*mcp.CallToolResult, OutputExtractRecords, error) {
	if input.Content == "" {
		return nil, OutputExtractRecords{}, fmt.Errorf("content is required")
	}

	pipeline := extractors.PipelineFor(input.Format)
	result, err := pipeline.RunWithMeta(ctx, input.Content)
	if err != nil {
		return nil, OutputExtractRecords{}, err
	}

	return nil, OutputExtractRecords{
		Records:   result.Records,
		Columns:   result.Columns,
		Extracted: result.Extracted,
	}, nil
}
