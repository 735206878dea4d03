// SPDX-License-Identifier: Apache-2.0

// docsheet converts loosely structured documents (docx, json, yaml, txt, md)
// into uniform xlsx spreadsheets, and can expose the same capability as MCP
// tools over stdio.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/docsheet/docsheet/internal/docload"
	"github.com/docsheet/docsheet/internal/sheet"
	"github.com/docsheet/docsheet/internal/tabular/extractors"
	"github.com/docsheet/docsheet/internal/tool"
)

var version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "docsheet",
		Short:         "Extract tabular records from semi-structured documents",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newServeCmd())
	return root
}

func newConvertCmd() *cobra.Command {
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a document to an xlsx spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			loader := docload.New(docload.Config{})
			text, detected, err := loader.Load(cmd.Context(), path)
			if err != nil {
				return err
			}
			if format == "" {
				format = string(detected)
			}

			result, err := extractors.PipelineFor(format).RunWithMeta(cmd.Context(), text)
			if err != nil {
				return err
			}

			if output == "" {
				output = tool.DefaultOutputPath(path)
			}
			if err := sheet.Write(output, result.Columns, result.Records); err != nil {
				return err
			}

			slog.Info("conversion complete",
				"input", path,
				"output", output,
				"rows", len(result.Records),
				"columns", len(result.Columns))
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output xlsx path (default: input path with .xlsx)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "format hint overriding extension detection (json, yaml, txt)")
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the extraction tools over MCP on stdio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv := mcp.NewServer(&mcp.Implementation{
				Name:    "docsheet",
				Version: version,
			}, nil)
			mcp.AddTool(srv, tool.MetadataExtractRecords, tool.ExtractRecords)
			mcp.AddTool(srv, tool.MetadataConvertDocument, tool.ConvertDocument)

			slog.Info("MCP server starting", "transport", "stdio")
			return srv.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
