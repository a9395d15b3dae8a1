package iiko

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iikotools/iiko-app-sheets/table"
)

// Filter is a dimension filter in an OLAP report query. The concrete filter types
// below marshal to the wire format the v2 reporting endpoint expects.
type Filter interface{}

type IncludeValuesFilter struct {
	FilterType string   `json:"filterType"`
	Values     []string `json:"values"`
}

type DateRangeFilter struct {
	FilterType  string `json:"filterType"`
	PeriodType  string `json:"periodType"`
	From        string `json:"from"`
	To          string `json:"to"`
	IncludeLow  bool   `json:"includeLow"`
	IncludeHigh bool   `json:"includeHigh"`
}

func IncludeValues(values ...string) IncludeValuesFilter {
	return IncludeValuesFilter{
		FilterType: "IncludeValues",
		Values:     values,
	}
}

// DateRange builds a CUSTOM period filter with inclusive bounds on both ends.
func DateRange(from, to time.Time) DateRangeFilter {
	return DateRangeFilter{
		FilterType:  "DateRange",
		PeriodType:  "CUSTOM",
		From:        from.Format("2006-01-02"),
		To:          to.Format("2006-01-02"),
		IncludeLow:  true,
		IncludeHigh: true,
	}
}

// Query describes an OLAP report request. The row shape is dynamic - the columns of
// the result are the group-by fields followed by the aggregate fields, in query
// order.
type Query struct {
	ReportType   string            `json:"reportType"`
	BuildSummary bool              `json:"buildSummary"`
	GroupBy      []string          `json:"groupByColFields"`
	Aggregates   []string          `json:"aggregateFields"`
	Filters      map[string]Filter `json:"filters"`
}

// Columns returns the result row schema for the query, in column order.
func (q Query) Columns() []string {
	return append(append([]string{}, q.GroupBy...), q.Aggregates...)
}

// TransactionsQuery builds the supplier invoice query over the transactions report:
// invoice transactions against the supplier debt account, grouped by product,
// department and date, aggregating quantity and resigned sum. The department and
// product filters are only included when codes/names are supplied.
func TransactionsQuery(from, to time.Time, departmentCodes, productNames []string) Query {
	filters := map[string]Filter{
		"DateTime.DateTyped":       DateRange(from, to),
		"Account.Name":             IncludeValues("Задолженность перед поставщиками"),
		"Account.CounteragentType": IncludeValues("SUPPLIER", "INTERNAL_SUPPLIER"),
		"TransactionType":          IncludeValues("INVOICE"),
		"Contr-Product.Type":       IncludeValues("GOODS"),
	}

	if len(departmentCodes) > 0 {
		filters["Department.Code"] = IncludeValues(departmentCodes...)
	}

	if len(productNames) > 0 {
		filters["Contr-Product.Name"] = IncludeValues(productNames...)
	}

	return Query{
		ReportType:   "TRANSACTIONS",
		BuildSummary: false,
		GroupBy: []string{
			"Product.Id",
			"Contr-Product.Name",
			"Department.Code",
			"Contr-Product.Num",
			"Counteragent.Name",
			"Contr-Product.MeasureUnit",
			"Contr-Product.TopParent",
			"Contr-Product.SecondParent",
			"Department",
			"DateTime.Month",
			"DateTime.Year",
			"DateTime.DateTyped",
		},
		Aggregates: []string{"Contr-Amount", "Sum.ResignedSum"},
		Filters:    filters,
	}
}

// Row is a single OLAP result row, keyed by column name.
type Row map[string]any

// Report executes an OLAP query. The endpoint takes the session key as a query
// parameter and the report description as a JSON body, and replies with either a bare
// JSON array of rows or a {"data":[...]} wrapper depending on the server version.
func (c *Client) Report(ctx context.Context, token string, query Query) ([]Row, error) {
	encoded, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	q := url.Values{
		"key": []string{token},
	}

	uri := fmt.Sprintf("%s/v2/reports/olap?%s", c.baseURL, q.Encode())

	logrus.Debugf("OLAP request to %s", uri)
	logrus.Debugf("OLAP query: %s", encoded)

	rq, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}

	rq.Header.Set("Content-Type", "application/json; charset=utf-8")

	response, err := c.client.Do(rq)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch OLAP report (%w)", err)
	}

	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("/v2/reports/olap returned %v (%v)", response.StatusCode, abbreviate(string(body)))
	}

	rows, err := parseReport(body)
	if err != nil {
		return nil, err
	}

	logrus.Infof("fetched %v report rows", len(rows))

	return rows, nil
}

func parseReport(body []byte) ([]Row, error) {
	rows := []Row{}
	if err := json.Unmarshal(body, &rows); err == nil {
		return rows, nil
	}

	wrapped := struct {
		Data []Row `json:"data"`
	}{}

	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("invalid OLAP report response (%w)", err)
	}

	return wrapped.Data, nil
}

// ReportTable tabulates report rows against the query's column schema.
func ReportTable(query Query, rows []Row) *table.Table {
	return &table.Table{
		Header:  query.Columns(),
		Records: Tabulate(query, rows),
	}
}

// Tabulate flattens report rows into records matching the query's column schema, in
// response order. Missing cells are blank, numeric cells are rendered without
// trailing zeros.
func Tabulate(query Query, rows []Row) [][]string {
	columns := query.Columns()

	records := [][]string{}
	for _, row := range rows {
		record := make([]string, len(columns))
		for i, column := range columns {
			record[i] = cell(row[column])
		}

		records = append(records, record)
	}

	return records
}

func cell(v any) string {
	switch value := v.(type) {
	case nil:
		return ""

	case string:
		return value

	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)

	case bool:
		return strconv.FormatBool(value)

	default:
		return fmt.Sprintf("%v", value)
	}
}

// AvgPrice computes the weighted average price over a set of report rows as
// ΣSum.ResignedSum/ΣContr-Amount, rounded to 2 decimal places. The second return is
// false when the rows carry no quantity at all.
func AvgPrice(rows []Row) (float64, bool) {
	amount := 0.0
	sum := 0.0

	for _, row := range rows {
		amount += number(row["Contr-Amount"])
		sum += number(row["Sum.ResignedSum"])
	}

	if amount == 0.0 {
		return 0.0, false
	}

	return math.Round(100.0*sum/amount) / 100.0, true
}

func number(v any) float64 {
	if f, ok := v.(float64); ok {
		return f
	}

	return 0.0
}
