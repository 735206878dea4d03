// SPDX-License-Identifier: Apache-2.0

package extractors

import (
	"context"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/docsheet/docsheet/internal/tabular"
)

// YAML parses the whole input as YAML (which also covers strict JSON) and
// normalizes the result. It is registered only when the source carries a
// yaml format hint; on free text it would mostly shadow the other extractors.
// Multi-document input ('---' separators) is split and each document parsed
// independently; documents that fail to parse, or parse to a bare scalar,
// contribute nothing.
type YAML struct{}

// NewYAML creates a new whole-document YAML extractor.
func NewYAML() *YAML {
	return &YAML{}
}

func (e *YAML) Name() string {
	return "yaml"
}

func (e *YAML) Extract(_ context.Context, text string) []*tabular.Record {
	var records []*tabular.Record
	for _, doc := range strings.Split(text, "\n---") {
		doc = strings.TrimSpace(doc)
		if doc == "" {
			continue
		}
		var parsed interface{}
		if err := yaml.Unmarshal([]byte(doc), &parsed); err != nil {
			continue
		}
		switch parsed.(type) {
		case map[string]interface{}, []interface{}:
			records = append(records, tabular.Normalize(parsed)...)
		}
	}
	return records
}
