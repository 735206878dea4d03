// SPDX-License-Identifier: Apache-2.0

package extractors_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsheet/docsheet/internal/tabular/extractors"
)

func TestYAML_Mapping(t *testing.T) {
	text := `name: Alice
age: 30
address:
  city: Oslo
`
	records := extractors.NewYAML().Extract(context.Background(), text)
	require.Len(t, records, 1)
	assert.Equal(t, "Alice", get(t, records[0], "name"))
	assert.Equal(t, "30", get(t, records[0], "age"))
	assert.Equal(t, "Oslo", get(t, records[0], "address_city"))
}

func TestYAML_SequenceOfMappings(t *testing.T) {
	text := `- name: Alice
- name: Bob
`
	records := extractors.NewYAML().Extract(context.Background(), text)
	require.Len(t, records, 2)
	assert.Equal(t, "Alice", get(t, records[0], "name"))
	assert.Equal(t, "Bob", get(t, records[1], "name"))
}

func TestYAML_MultiDocument(t *testing.T) {
	text := `name: Alice
---
name: Bob
`
	records := extractors.NewYAML().Extract(context.Background(), text)
	require.Len(t, records, 2)
}

func TestYAML_ScalarAndGarbageContributeNothing(t *testing.T) {
	assert.Empty(t, extractors.NewYAML().Extract(context.Background(), "just a sentence"))
	assert.Empty(t, extractors.NewYAML().Extract(context.Background(), ""))
	assert.Empty(t, extractors.NewYAML().Extract(context.Background(), "\t{invalid: [yaml"))
}
