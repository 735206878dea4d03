// SPDX-License-Identifier: Apache-2.0

package extractors

import (
	"context"
	"regexp"
	"strings"

	"github.com/docsheet/docsheet/internal/tabular"
)

// Block boundaries: blank lines, or any brace/bracket character. Brackets
// split even when unpaired; this extractor is not JSON-aware.
var blockBoundary = regexp.MustCompile(`\n[ \t]*\n|[{}\[\]]`)

// Lines within a block additionally split on semicolons.
var lineBoundary = regexp.MustCompile(`[\n;]`)

// KeyValue is the fallback extractor for text that is not (fully) JSON. It
// splits the input into blocks, matches "key: value" / "key = value" lines
// within each block, and emits one record per block that produced at least
// one pair. Quoted multi-line values are a known limitation: the blank-line
// and bracket splitting can cut through them.
type KeyValue struct{}

// NewKeyValue creates a new key/value block extractor.
func NewKeyValue() *KeyValue {
	return &KeyValue{}
}

func (e *KeyValue) Name() string {
	return "keyvalue"
}

func (e *KeyValue) Extract(_ context.Context, text string) []*tabular.Record {
	var records []*tabular.Record
	for _, block := range blockBoundary.Split(text, -1) {
		rec := extractBlock(block)
		if rec.Len() > 0 {
			records = append(records, rec)
		}
	}
	return records
}

// extractBlock matches key/value lines in one block. Pair order within the
// record is line order; repeated keys keep their first position with the
// later value.
func extractBlock(block string) *tabular.Record {
	rec := tabular.NewRecord()
	for _, line := range lineBoundary.Split(block, -1) {
		idx := strings.IndexAny(line, ":=")
		if idx < 0 {
			continue
		}
		key := tabular.NormalizeKey(line[:idx])
		if key == "" {
			continue
		}
		rec.Set(key, tabular.NormalizeValue(line[idx+1:]))
	}
	return rec
}
