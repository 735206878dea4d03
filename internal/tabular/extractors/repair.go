// SPDX-License-Identifier: Apache-2.0

// Package extractors implements the concrete extraction strategies registered
// on a tabular.Pipeline: JSON fragment scanning, key/value block matching,
// and whole-document YAML parsing.
package extractors

import (
	"regexp"
	"strings"
)

var (
	zeroWidth = regexp.MustCompile("[\u200b\u200c\u200d\u2060\ufeff]")

	// Word and friends smart-quote pasted JSON.
	curlyDoubles = strings.NewReplacer("“", `"`, "”", `"`, "„", `"`)
	curlySingles = strings.NewReplacer("‘", "'", "’", "'")

	// Literal backslash-escaped line breaks inside candidate fragments break
	// bracket matching before the parser ever sees them.
	escapedBreaks = strings.NewReplacer(`\n`, " ", `\r`, " ")

	breakBeforeClose = regexp.MustCompile(`[ \t]*\n[ \t]*([}\]"])`)
	breakAfterOpen   = regexp.MustCompile(`([{\[])[ \t]*\n[ \t,]*`)
)

// RepairText cleans Unicode artifacts and common quoting damage from a
// candidate fragment so the strict parser gets a fair chance: zero-width and
// BOM characters are stripped, curly quotes straightened, line breaks
// immediately before a closing brace/bracket/quote collapsed, and
// newline-comma runs after an opening brace/bracket collapsed. Pure; the
// input is never mutated.
func RepairText(text string) string {
	s := zeroWidth.ReplaceAllString(text, "")
	s = curlyDoubles.Replace(s)
	s = curlySingles.Replace(s)
	s = escapedBreaks.Replace(s)
	s = breakBeforeClose.ReplaceAllString(s, "$1")
	s = breakAfterOpen.ReplaceAllString(s, "$1")
	return s
}
