// SPDX-License-Identifier: Apache-2.0

package extractors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docsheet/docsheet/internal/tabular/extractors"
)

func TestRepairText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "zero-width and BOM stripped",
			in:   "\ufeff{\u200bkey\u200c}",
			want: "{key}",
		},
		{
			name: "curly quotes straightened",
			in:   "{“name”: ‘Alice’}",
			want: `{"name": 'Alice'}`,
		},
		{
			name: "line break before closing brace collapses",
			in:   "{\"a\": 1\n}",
			want: `{"a": 1}`,
		},
		{
			name: "line break before closing quote collapses",
			in:   "{\"a\": \"val\n\"}",
			want: `{"a": "val"}`,
		},
		{
			name: "newline-comma run after opening bracket collapses",
			in:   "[\n, {\"a\": 1}]",
			want: `[{"a": 1}]`,
		},
		{
			name: "escaped line breaks become spaces",
			in:   `{"a": "line\none"}`,
			want: `{"a": "line one"}`,
		},
		{
			name: "clean input unchanged",
			in:   `{"a": "b"}`,
			want: `{"a": "b"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractors.RepairText(tt.in))
		})
	}
}
