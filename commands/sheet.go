package commands

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/iikotools/iiko-app-sheets/table"
)

// replaceRange clears a worksheet from row 2 down and writes the table records
// starting at A2, leaving the header row untouched. A failed clear is logged and the
// write is still attempted - a brand new worksheet has nothing to clear.
func replaceRange(google *sheets.Service, spreadsheetId, worksheet string, t *table.Table, ctx context.Context) error {
	area := fmt.Sprintf("%s!A2:ZZ", worksheet)

	infof("clearing range %s", area)
	if err := clear(google, spreadsheetId, []string{area}, ctx); err != nil {
		warnf("unable to clear range %s (%v)", area, err)
	}

	rows := t.Rows()
	if len(rows) == 0 {
		infof("no rows for worksheet %s", worksheet)
		return nil
	}

	data := sheets.ValueRange{
		Range:  fmt.Sprintf("%s!A2:%s", worksheet, columnID(len(t.Header))),
		Values: rows,
	}

	rq := sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             []*sheets.ValueRange{&data},
	}

	if _, err := google.Spreadsheets.Values.BatchUpdate(spreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("error writing worksheet %s (%w)", worksheet, err)
	}

	infof("wrote %v rows to worksheet %s", len(rows), worksheet)

	return nil
}

// columnID converts a 1-based column count to its A1-notation column letters.
func columnID(column int) string {
	id := ""
	for column > 0 {
		column--
		id = string(rune('A'+column%26)) + id
		column /= 26
	}

	return id
}
