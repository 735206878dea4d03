// SPDX-License-Identifier: Apache-2.0

package extractors

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/docsheet/docsheet/internal/tabular"
)

// JSON scans raw text for brace/bracket-delimited fragments and parses each
// one independently. Candidate spans come from a string-aware balanced
// scanner; a span that fails to parse even after repair is skipped and the
// scan re-enters it one byte past its opening delimiter, so nested candidates
// each get their own attempt. Overlap-induced duplicates are left for the
// deduplicator. Extraction never fails.
type JSON struct{}

// NewJSON creates a new JSON fragment extractor.
func NewJSON() *JSON {
	return &JSON{}
}

func (e *JSON) Name() string {
	return "json"
}

func (e *JSON) Extract(_ context.Context, text string) []*tabular.Record {
	var records []*tabular.Record
	i := 0
	for i < len(text) {
		start := indexOpen(text, i)
		if start < 0 {
			break
		}
		span, ok := balancedSpan(text, start)
		if !ok {
			i = start + 1
			continue
		}
		value, parsed := parseFragment(span)
		if !parsed {
			i = start + 1
			continue
		}
		records = append(records, tabular.Normalize(value)...)
		i = start + len(span)
	}
	return records
}

// parseFragment attempts a strict parse of the repaired fragment, then one
// jsonrepair pass for the usual damage (single quotes, unquoted keys,
// trailing commas) before giving up.
func parseFragment(fragment string) (interface{}, bool) {
	cleaned := RepairText(fragment)
	if v, err := decodeStrict(cleaned); err == nil {
		return v, true
	}
	repaired, err := jsonrepair.JSONRepair(cleaned)
	if err != nil {
		return nil, false
	}
	v, err := decodeStrict(repaired)
	if err != nil {
		return nil, false
	}
	return v, true
}

// decodeStrict parses exactly one JSON value. UseNumber keeps numeric
// literals in their source representation instead of float64.
func decodeStrict(s string) (interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func indexOpen(s string, from int) int {
	for i := from; i < len(s); i++ {
		if s[i] == '{' || s[i] == '[' {
			return i
		}
	}
	return -1
}

// balancedSpan returns the shortest balanced {...} or [...] span starting at
// start, tracking string and escape state so braces inside string literals do
// not count.
func balancedSpan(s string, start int) (string, bool) {
	stack := make([]byte, 0, 8)
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
		case '}', ']':
			if len(stack) == 0 {
				return "", false
			}
			open := stack[len(stack)-1]
			if (c == '}' && open != '{') || (c == ']' && open != '[') {
				return "", false
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
