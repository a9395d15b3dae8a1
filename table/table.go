package table

import (
	"strings"
)

// Table is a normalized rectangular data set bound for a worksheet or a TSV file.
// Records are in source order and every record matches the header column order -
// there is no header reconciliation against the destination.
type Table struct {
	Header  []string
	Records [][]string
}

// Rows returns the records as Google Sheets row values, without the header.
func (t *Table) Rows() [][]interface{} {
	rows := make([][]interface{}, len(t.Records))
	for i, record := range t.Records {
		row := make([]interface{}, len(record))
		for j, v := range record {
			row[j] = clean(v)
		}

		rows[i] = row
	}

	return rows
}

func clean(v string) string {
	return strings.TrimSpace(v)
}
