// SPDX-License-Identifier: Apache-2.0

package tabular

import "fmt"

// Normalize coerces a parsed value into a uniform sequence of flat Records.
// A single mapping is wrapped in a one-element sequence. A sequence whose
// first element is itself a sequence is treated as tabular: the first inner
// sequence supplies column names, each following inner sequence becomes one
// Record with values zipped to those names positionally (missing positions
// pad with the empty string). Anything else flattens element by element;
// scalar elements become a single-field {value: ...} Record.
func Normalize(value interface{}) []*Record {
	seq, ok := value.([]interface{})
	if !ok {
		seq = []interface{}{value}
	}
	if len(seq) == 0 {
		return nil
	}

	if header, ok := seq[0].([]interface{}); ok {
		return normalizeTable(header, seq[1:])
	}

	records := make([]*Record, 0, len(seq))
	for _, elem := range seq {
		switch v := elem.(type) {
		case map[string]interface{}:
			records = append(records, Flatten(v))
		default:
			rec := NewRecord()
			rec.Set("value", Stringify(v))
			records = append(records, rec)
		}
	}
	return records
}

func normalizeTable(header []interface{}, rows []interface{}) []*Record {
	columns := make([]string, len(header))
	for i, cell := range header {
		name := NormalizeKey(Stringify(cell))
		if name == "" {
			name = fmt.Sprintf("column_%d", i)
		}
		columns[i] = name
	}

	var records []*Record
	for _, row := range rows {
		cells, ok := row.([]interface{})
		if !ok {
			continue
		}
		rec := NewRecord()
		for i, name := range columns {
			if i < len(cells) {
				rec.Set(name, Stringify(cells[i]))
			} else {
				rec.Set(name, "")
			}
		}
		records = append(records, rec)
	}
	return records
}
