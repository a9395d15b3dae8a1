package table

import (
	"encoding/csv"
	"fmt"
	"io"
)

// MakeTSV writes the table to f as tab-separated values, header row first.
func (t *Table) MakeTSV(f io.Writer) error {
	if len(t.Header) == 0 {
		return fmt.Errorf("missing/invalid header row")
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	w.Write(t.Header)
	for _, record := range t.Records {
		w.Write(record)
	}

	w.Flush()

	return w.Error()
}
