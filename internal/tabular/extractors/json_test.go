// SPDX-License-Identifier: Apache-2.0

package extractors_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsheet/docsheet/internal/tabular"
	"github.com/docsheet/docsheet/internal/tabular/extractors"
)

func get(t *testing.T, rec *tabular.Record, key string) string {
	t.Helper()
	v, ok := rec.Get(key)
	require.True(t, ok, "missing key %q (have %v)", key, rec.Keys())
	return v
}

func TestJSON_ObjectEmbeddedInProse(t *testing.T) {
	text := `The survey returned the following entry: {"name": "Alice", "age": 30} which we logged.`

	records := extractors.NewJSON().Extract(context.Background(), text)
	require.Len(t, records, 1)
	assert.Equal(t, "Alice", get(t, records[0], "name"))
	assert.Equal(t, "30", get(t, records[0], "age"))
}

func TestJSON_ArrayElementsSplice(t *testing.T) {
	text := `prefix [{"id": 1}, {"id": 2}] suffix`

	records := extractors.NewJSON().Extract(context.Background(), text)
	require.Len(t, records, 2)
	assert.Equal(t, "1", get(t, records[0], "id"))
	assert.Equal(t, "2", get(t, records[1], "id"))
}

func TestJSON_MultipleFragmentsInOrder(t *testing.T) {
	text := `{"a": "1"} filler text {"b": "2"}`

	records := extractors.NewJSON().Extract(context.Background(), text)
	require.Len(t, records, 2)
	assert.Equal(t, "1", get(t, records[0], "a"))
	assert.Equal(t, "2", get(t, records[1], "b"))
}

func TestJSON_TabularArray(t *testing.T) {
	text := `[["name","age"],["Alice","30"],["Bob","25"]]`

	records := extractors.NewJSON().Extract(context.Background(), text)
	require.Len(t, records, 2)
	assert.Equal(t, "Alice", get(t, records[0], "name"))
	assert.Equal(t, "25", get(t, records[1], "age"))
}

func TestJSON_RepairsCommonDamage(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"single quotes and unquoted keys", `result: {name: 'Alice', age: 30}`},
		{"trailing comma", `{"name": "Alice", "age": 30,}`},
		{"curly quotes", "{“name”: “Alice”, “age”: 30}"},
		{"broken line before close", "{\"name\": \"Alice\", \"age\": 30\n}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := extractors.NewJSON().Extract(context.Background(), tt.text)
			require.Len(t, records, 1)
			assert.Equal(t, "Alice", get(t, records[0], "name"))
			assert.Equal(t, "30", get(t, records[0], "age"))
		})
	}
}

func TestJSON_SkipsUnbalancedFragment(t *testing.T) {
	text := `broken [1, 2 with no close, then later a good one {"ok": "yes"}`

	records := extractors.NewJSON().Extract(context.Background(), text)
	require.Len(t, records, 1)
	assert.Equal(t, "yes", get(t, records[0], "ok"))
}

func TestJSON_NestedCandidateRecoveredFromBadOuter(t *testing.T) {
	// The outer span never closes; the balanced inner object still parses.
	text := `{ outer never closes { "name": "Alice" } `

	records := extractors.NewJSON().Extract(context.Background(), text)
	require.NotEmpty(t, records)
	found := false
	for _, r := range records {
		if v, ok := r.Get("name"); ok && v == "Alice" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestJSON_NoFragments(t *testing.T) {
	assert.Empty(t, extractors.NewJSON().Extract(context.Background(), "no structure here"))
	assert.Empty(t, extractors.NewJSON().Extract(context.Background(), ""))
}
