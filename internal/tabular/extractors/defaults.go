// SPDX-License-Identifier: Apache-2.0

package extractors

import (
	"strings"

	"github.com/docsheet/docsheet/internal/tabular"
)

// PipelineFor builds a pipeline for a source with the given format hint.
// JSON fragment scanning and key/value matching always run; the
// whole-document YAML extractor joins them only for yaml sources. An empty
// hint means free text.
func PipelineFor(format string) *tabular.Pipeline {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return tabular.NewPipeline(NewYAML(), NewJSON(), NewKeyValue())
	default:
		return tabular.NewPipeline(NewJSON(), NewKeyValue())
	}
}
