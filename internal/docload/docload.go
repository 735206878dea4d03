// SPDX-License-Identifier: Apache-2.0

// Package docload is the input boundary of the converter: it detects a
// source file's format and decodes it to plain text for extraction. Word
// documents are decoded from their zip container; everything else is read
// as UTF-8 text. Decoding is the only potentially slow step in the system,
// so Load takes a context.
package docload

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a source file type.
type Format string

const (
	FormatDocx Format = "docx"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTXT  Format = "txt"
	FormatMD   Format = "md"
)

// Config configures the loader.
type Config struct {
	// MaxFileSize is the maximum file size to read (default: 50 MB).
	MaxFileSize int64

	// Logger for debug messages.
	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 50 * 1024 * 1024
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Loader reads source documents into raw text.
type Loader struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a Loader with the given configuration.
func New(cfg Config) *Loader {
	cfg.defaults()
	return &Loader{cfg: cfg, logger: cfg.Logger}
}

// Detect returns the source format based on file extension.
func (l *Loader) Detect(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return FormatDocx, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".txt", ".text":
		return FormatTXT, nil
	case ".md", ".markdown":
		return FormatMD, nil
	default:
		return "", fmt.Errorf("unsupported format: %q", filepath.Ext(path))
	}
}

// Load decodes the file at path into raw text, returning the detected
// format alongside.
func (l *Loader) Load(ctx context.Context, path string) (string, Format, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > l.cfg.MaxFileSize {
		return "", "", fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), l.cfg.MaxFileSize)
	}

	format, err := l.Detect(path)
	if err != nil {
		return "", "", err
	}

	var text string
	switch format {
	case FormatDocx:
		text, err = extractDocx(path)
	default:
		var data []byte
		data, err = os.ReadFile(path)
		text = string(data)
	}
	if err != nil {
		return "", "", fmt.Errorf("load %s: %w", path, err)
	}

	l.logger.Debug("document loaded", "path", path, "format", format, "chars", len(text))
	return text, format, nil
}
