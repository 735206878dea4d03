// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"errors"
	"fmt"
)

// ErrNoEntries is the terminal pipeline failure: no extraction strategy found
// anything tabular in the input. Test with errors.Is.
var ErrNoEntries = errors.New("no valid data entries found")

const noEntriesHelp = `The document did not contain any recognizable structured data. Check that:
  - the document contains JSON objects or arrays ({...} or [...]), or
  - entries are written as "key: value" / "key = value" lines, with blank
    lines between distinct entries, and
  - the file is plain text, JSON, YAML, or a .docx with textual content`

// Merge finalizes a record set: structural duplicates collapse to their first
// occurrence, the union of all keys is computed in first-encounter order, and
// every surviving record is padded with empty strings for the union keys it
// lacks. Every returned record carries the identical key set, in the same
// order. Returns ErrNoEntries when no records survive.
func Merge(records []*Record) ([]*Record, []string, error) {
	seen := make(map[string]struct{}, len(records))
	unique := make([]*Record, 0, len(records))
	for _, rec := range records {
		if rec == nil || rec.Len() == 0 {
			continue
		}
		canon := rec.Canonical()
		if _, dup := seen[canon]; dup {
			continue
		}
		seen[canon] = struct{}{}
		unique = append(unique, rec)
	}

	if len(unique) == 0 {
		return nil, nil, fmt.Errorf("%w\n%s", ErrNoEntries, noEntriesHelp)
	}

	// Schema union, ordered by first encounter across records.
	var columns []string
	inUnion := make(map[string]struct{})
	for _, rec := range unique {
		for _, k := range rec.Keys() {
			if _, ok := inUnion[k]; !ok {
				inUnion[k] = struct{}{}
				columns = append(columns, k)
			}
		}
	}

	// Padding can collapse records that differed only by explicit empty
	// fields, so dedup once more on the padded form.
	seenPadded := make(map[string]struct{}, len(unique))
	padded := make([]*Record, 0, len(unique))
	for _, rec := range unique {
		out := NewRecord()
		for _, k := range columns {
			v, _ := rec.Get(k)
			out.Set(k, v)
		}
		canon := out.Canonical()
		if _, dup := seenPadded[canon]; dup {
			continue
		}
		seenPadded[canon] = struct{}{}
		padded = append(padded, out)
	}
	return padded, columns, nil
}
