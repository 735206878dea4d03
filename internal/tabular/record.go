// SPDX-License-Identifier: Apache-2.0

// Package tabular turns loosely structured text into a uniform, rectangular
// set of flat records. Extraction strategies live in the extractors
// subpackage; this package owns the record model, flattening, normalization,
// and the final dedup/merge step.
package tabular

import (
	"bytes"
	"encoding/json"
	"regexp"
	"sort"
	"strings"
)

// Record is a flat, insertion-ordered mapping from normalized string keys to
// trimmed string values. Schema is discovered at runtime, so a fixed struct
// cannot represent one; keys keep the order in which they were first set.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord creates an empty Record.
func NewRecord() *Record {
	return &Record{values: make(map[string]string)}
}

// Set stores value under key. Setting an existing key overwrites its value
// but keeps its original position.
func (r *Record) Set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the record's keys in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of fields in the record.
func (r *Record) Len() int {
	return len(r.keys)
}

// Canonical renders the record as a sorted key=value byte sequence. Two
// records are structural duplicates iff their canonical forms are equal,
// regardless of field order.
func (r *Record) Canonical() string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('\x1e')
		}
		sb.WriteString(k)
		sb.WriteByte('\x1f')
		sb.WriteString(r.values[k])
	}
	return sb.String()
}

// MarshalJSON renders the record as a JSON object preserving field order,
// which encoding/json's map type would not.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

var (
	quoteChars   = regexp.MustCompile("[\"'`‘’“”]")
	keySeparator = regexp.MustCompile(`[\s_]+`)
	keyJunk      = regexp.MustCompile(`[^\w \-]`)
	innerSpace   = regexp.MustCompile(`\s+`)
)

// NormalizeKey canonicalizes a field name: quotes stripped, whitespace and
// underscore runs collapsed to a single underscore, remaining characters
// outside word/space/hyphen dropped, lower-cased.
func NormalizeKey(key string) string {
	k := strings.TrimSpace(key)
	k = quoteChars.ReplaceAllString(k, "")
	k = keySeparator.ReplaceAllString(k, "_")
	k = keyJunk.ReplaceAllString(k, "")
	return strings.ToLower(strings.Trim(k, "_"))
}

// NormalizeValue trims a field value, strips surrounding quote characters,
// and collapses internal whitespace runs to single spaces.
func NormalizeValue(value string) string {
	v := strings.TrimSpace(value)
	v = strings.Trim(v, "\"'`‘’“”")
	v = innerSpace.ReplaceAllString(v, " ")
	return strings.TrimSpace(v)
}
