// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Flatten collapses an arbitrarily nested mapping into a single-level Record.
// Nested mappings join their keys with underscores (parent_child), sequences
// of scalars become one comma-joined value, sequences of mappings are indexed
// (key_0, key_1, ...) and flattened recursively. Terminates on any finite
// parsed value since parsed JSON/YAML cannot contain cycles.
func Flatten(m map[string]interface{}) *Record {
	rec := NewRecord()
	flattenInto(rec, "", m)
	return rec
}

func flattenInto(rec *Record, key string, value interface{}) {
	switch v := value.(type) {
	case nil:
		rec.Set(key, "")
	case map[string]interface{}:
		// Parsed maps have no source order; sorted iteration keeps the
		// output deterministic.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for i, k := range keys {
			child := NormalizeKey(k)
			if child == "" {
				// Keys made entirely of stripped characters would
				// otherwise collide on a nameless field.
				child = fmt.Sprintf("field_%d", i)
			}
			if key != "" {
				child = key + "_" + child
			}
			flattenInto(rec, child, v[k])
		}
	case []interface{}:
		if allScalars(v) {
			parts := make([]string, len(v))
			for i, elem := range v {
				parts[i] = Stringify(elem)
			}
			rec.Set(key, strings.Join(parts, ", "))
			return
		}
		for i, elem := range v {
			flattenInto(rec, fmt.Sprintf("%s_%d", key, i), elem)
		}
	default:
		rec.Set(key, Stringify(v))
	}
}

func allScalars(seq []interface{}) bool {
	for _, elem := range seq {
		switch elem.(type) {
		case map[string]interface{}, []interface{}:
			return false
		}
	}
	return true
}

// Stringify renders a parsed scalar as a trimmed string. Nil becomes the
// empty string; numbers keep their source representation where the decoder
// preserved it (json.Number).
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}
