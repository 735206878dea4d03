// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"context"
	"log/slog"
)

// Extractor is one strategy for pulling flat records out of raw text.
// Extractors never fail: input they cannot make sense of yields an empty
// result, and malformed fragments are skipped internally.
type Extractor interface {
	Name() string
	Extract(ctx context.Context, text string) []*Record
}

// Pipeline runs every registered extractor over the input and merges their
// combined output into one rectangular record set. Unlike a format
// dispatcher, all extractors run on every input: their results concatenate
// in registration order and the deduplicator resolves any overlap.
type Pipeline struct {
	extractors []Extractor
	logger     *slog.Logger
}

// NewPipeline creates a Pipeline with the provided extractors.
func NewPipeline(extractors ...Extractor) *Pipeline {
	return &Pipeline{
		extractors: extractors,
		logger:     slog.Default(),
	}
}

// RunResult is the output of a successful pipeline run.
type RunResult struct {
	// Records is the final record set; every record carries the full
	// column set in identical order.
	Records []*Record
	// Columns is the schema union, in first-encounter order.
	Columns []string
	// Extracted counts raw records per extractor, before merging.
	Extracted map[string]int
}

// Run extracts and merges, returning only the final record set.
func (p *Pipeline) Run(ctx context.Context, text string) ([]*Record, error) {
	result, err := p.RunWithMeta(ctx, text)
	if err != nil {
		return nil, err
	}
	return result.Records, nil
}

// RunWithMeta extracts and merges, also reporting per-extractor counts and
// the schema union. Returns ErrNoEntries when no extractor finds anything.
func (p *Pipeline) RunWithMeta(ctx context.Context, text string) (RunResult, error) {
	extracted := make(map[string]int, len(p.extractors))
	var all []*Record
	for _, ex := range p.extractors {
		records := ex.Extract(ctx, text)
		p.logger.Debug("extractor finished", "extractor", ex.Name(), "records", len(records))
		extracted[ex.Name()] = len(records)
		all = append(all, records...)
	}

	records, columns, err := Merge(all)
	if err != nil {
		return RunResult{}, err
	}
	return RunResult{
		Records:   records,
		Columns:   columns,
		Extracted: extracted,
	}, nil
}

// RegisteredExtractors returns the names of all registered extractors.
func (p *Pipeline) RegisteredExtractors() []string {
	names := make([]string, len(p.extractors))
	for i, ex := range p.extractors {
		names[i] = ex.Name()
	}
	return names
}
