package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/iikotools/iiko-app-sheets/iiko"
)

var LoadReportCmd = LoadReport{
	command: command{
		worksheet: "Report",
	},

	from: time.Now().AddDate(0, 0, -7).Format("2006-01-02"),
	to:   time.Now().Format("2006-01-02"),
}

// LoadReport replaces a worksheet with an OLAP transactions report over a date range.
// The department filter defaults to the codes of the active departments so that a
// cron'd report automatically follows restaurant openings and closures.
type LoadReport struct {
	command
	from        string
	to          string
	departments string
	products    string
}

func (cmd *LoadReport) Name() string {
	return "load-report"
}

func (cmd *LoadReport) Description() string {
	return "Replaces a Google Sheets worksheet with an iiko OLAP transactions report"
}

func (cmd *LoadReport) Usage() string {
	return "--credentials <file> --url <url> --worksheet <name> --from <date> --to <date>"
}

func (cmd *LoadReport) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] load-report [options] --url <URL> --worksheet <name> --from <yyyy-mm-dd> --to <yyyy-mm-dd>\n", APP)
	fmt.Println()
	fmt.Println("  Replaces the worksheet rows from row 2 down with the supplier invoice transactions for the")
	fmt.Println("  date range (both dates inclusive), grouped by product, department and date")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    iiko-app-sheets load-report --credentials "credentials.json" \`)
	fmt.Println(`                                --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                                --worksheet "Report" \`)
	fmt.Println(`                                --from "2024-01-01" --to "2024-01-31" \`)
	fmt.Println(`                                --departments "100,200"`)
	fmt.Println()
}

func (cmd *LoadReport) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("load-report")

	flagset.StringVar(&cmd.worksheet, "worksheet", cmd.worksheet, "Destination worksheet name")
	flagset.StringVar(&cmd.from, "from", cmd.from, "Start of the report period (yyyy-mm-dd, inclusive). Defaults to 7 days ago")
	flagset.StringVar(&cmd.to, "to", cmd.to, "End of the report period (yyyy-mm-dd, inclusive). Defaults to today")
	flagset.StringVar(&cmd.departments, "departments", cmd.departments, "Comma-separated department codes. Defaults to the active department codes")
	flagset.StringVar(&cmd.products, "products", cmd.products, "Comma-separated product names to restrict the report to (optional)")

	return flagset
}

func (cmd *LoadReport) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	config, err := configure()
	if err != nil {
		return err
	}

	// ... check parameters
	if err := cmd.validate(config); err != nil {
		return err
	}

	from, err := time.ParseInLocation("2006-01-02", cmd.from, time.Local)
	if err != nil {
		return fmt.Errorf("invalid --from date '%s' - expected yyyy-mm-dd", cmd.from)
	}

	to, err := time.ParseInLocation("2006-01-02", cmd.to, time.Local)
	if err != nil {
		return fmt.Errorf("invalid --to date '%s' - expected yyyy-mm-dd", cmd.to)
	}

	if to.Before(from) {
		return fmt.Errorf("invalid report period - '%s' is after '%s'", cmd.from, cmd.to)
	}

	spreadsheetId, err := cmd.spreadsheetId()
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("spreadsheet - ID:%s  worksheet:%s  period:%s..%s", spreadsheetId, cmd.worksheet, cmd.from, cmd.to)
	}

	ctx := context.Background()

	google, err := authorize(cmd.credentials, ctx)
	if err != nil {
		return fmt.Errorf("Google Sheets authentication/authorization error (%w)", err)
	}

	spreadsheet, err := getSpreadsheet(google, spreadsheetId)
	if err != nil {
		return err
	}

	if _, err := getSheet(spreadsheet, cmd.worksheet); err != nil {
		return err
	}

	client := iiko.NewClient(config.BaseURL, config.Login, config.Password)

	return client.Session(ctx, func(token string) error {
		codes := split(cmd.departments)
		if len(codes) == 0 {
			if codes, err = activeCodes(client, token, config.DepartmentFilter, ctx); err != nil {
				return err
			}
		}

		query := iiko.TransactionsQuery(from, to, codes, split(cmd.products))

		rows, err := client.Report(ctx, token, query)
		if err != nil {
			return err
		}

		return replaceRange(google, spreadsheet.SpreadsheetId, cmd.worksheet, iiko.ReportTable(query, rows), ctx)
	})
}

// activeCodes resolves the Department.Code filter values from the live hierarchy.
func activeCodes(client *iiko.Client, token, filter string, ctx context.Context) ([]string, error) {
	departments, err := client.Departments(ctx, token)
	if err != nil {
		return nil, err
	}

	codes := iiko.DepartmentCodes(iiko.ActiveDepartments(departments, filter))
	if len(codes) == 0 {
		return nil, fmt.Errorf("no active departments with codes - nothing to report on")
	}

	debugf("active department codes: %v", codes)

	return codes, nil
}

func split(list string) []string {
	values := []string{}
	for _, v := range strings.Split(list, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}

	return values
}
