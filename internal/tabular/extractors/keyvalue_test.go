// SPDX-License-Identifier: Apache-2.0

package extractors_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsheet/docsheet/internal/tabular/extractors"
)

func TestKeyValue_BlankLineSeparatedBlocks(t *testing.T) {
	text := "Name: Alice\nAge: 30\n\nName: Bob\nAge: 25"

	records := extractors.NewKeyValue().Extract(context.Background(), text)
	require.Len(t, records, 2)

	assert.Equal(t, "Alice", get(t, records[0], "name"))
	assert.Equal(t, "30", get(t, records[0], "age"))
	assert.Equal(t, "Bob", get(t, records[1], "name"))
	assert.Equal(t, "25", get(t, records[1], "age"))

	// Pair order within a block is line order.
	assert.Equal(t, []string{"name", "age"}, records[0].Keys())
}

func TestKeyValue_DelimiterVariants(t *testing.T) {
	text := "host = localhost; port = 8080\nuser: root"

	records := extractors.NewKeyValue().Extract(context.Background(), text)
	require.Len(t, records, 1)
	assert.Equal(t, "localhost", get(t, records[0], "host"))
	assert.Equal(t, "8080", get(t, records[0], "port"))
	assert.Equal(t, "root", get(t, records[0], "user"))
}

func TestKeyValue_NormalizesKeysAndValues(t *testing.T) {
	text := `"First Name":   "Alice"` + "\n" + `LAST__NAME = 'Smith'`

	records := extractors.NewKeyValue().Extract(context.Background(), text)
	require.Len(t, records, 1)
	assert.Equal(t, "Alice", get(t, records[0], "first_name"))
	assert.Equal(t, "Smith", get(t, records[0], "last_name"))
}

func TestKeyValue_BracketsActAsBlockBoundaries(t *testing.T) {
	// Brackets split blocks even when unpaired.
	text := "a: 1 [ b: 2"

	records := extractors.NewKeyValue().Extract(context.Background(), text)
	require.Len(t, records, 2)
	assert.Equal(t, "1", get(t, records[0], "a"))
	assert.Equal(t, "2", get(t, records[1], "b"))
}

func TestKeyValue_BlocksWithoutPairsAreDropped(t *testing.T) {
	text := "just prose here\n\nkey: value\n\nmore prose"

	records := extractors.NewKeyValue().Extract(context.Background(), text)
	require.Len(t, records, 1)
	assert.Equal(t, "value", get(t, records[0], "key"))
}

func TestKeyValue_NothingMatches(t *testing.T) {
	assert.Empty(t, extractors.NewKeyValue().Extract(context.Background(), "no delimiters at all"))
	assert.Empty(t, extractors.NewKeyValue().Extract(context.Background(), ""))
}

func TestKeyValue_RepeatedKeyKeepsPosition(t *testing.T) {
	text := "name: Alice\nname: Bob\nage: 30"

	records := extractors.NewKeyValue().Extract(context.Background(), text)
	require.Len(t, records, 1)
	assert.Equal(t, "Bob", get(t, records[0], "name"))
	assert.Equal(t, []string{"name", "age"}, records[0].Keys())
}
