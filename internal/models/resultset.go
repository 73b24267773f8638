package models

import (
	"bytes"
	"encoding/json"
)

// ResultSet holds report rows with the select-list column order preserved.
// Rows are positional; Rows[i][j] is the value of Columns[j].
type ResultSet struct {
	Columns []string
	Rows    [][]any
}

// MarshalJSON renders the rows as an array of objects whose keys appear in
// column order. A plain map would lose the ordering.
func (rs ResultSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, row := range rs.Rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for j, col := range rs.Columns {
			if j > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(col)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')

			var value any
			if j < len(row) {
				value = row[j]
			}
			val, err := json.Marshal(value)
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
