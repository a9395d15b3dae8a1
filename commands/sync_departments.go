package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/iikotools/iiko-app-sheets/iiko"
)

var SyncDepartmentsCmd = SyncDepartments{
	command: command{
		worksheet: "Departments",
	},
}

type SyncDepartments struct {
	command
	activeOnly bool
}

func (cmd *SyncDepartments) Name() string {
	return "sync-departments"
}

func (cmd *SyncDepartments) Description() string {
	return "Replaces a Google Sheets worksheet with the department hierarchy from iiko"
}

func (cmd *SyncDepartments) Usage() string {
	return "--credentials <file> --url <url> --worksheet <name>"
}

func (cmd *SyncDepartments) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] sync-departments [options] --url <URL> --worksheet <name>\n", APP)
	fmt.Println()
	fmt.Println("  Replaces the worksheet rows from row 2 down with the iiko corporate hierarchy, in document order")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    iiko-app-sheets sync-departments --credentials "credentials.json" \`)
	fmt.Println(`                                     --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                                     --worksheet "Departments" --active`)
	fmt.Println()
}

func (cmd *SyncDepartments) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("sync-departments")

	flagset.StringVar(&cmd.worksheet, "worksheet", cmd.worksheet, "Destination worksheet name")
	flagset.BoolVar(&cmd.activeOnly, "active", cmd.activeOnly, "Restricts the list to active departments (IIKO_DEPARTMENT_FILTER match, closed ones excluded)")

	return flagset
}

func (cmd *SyncDepartments) Execute(args ...any) error {
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

	spreadsheetId, err := cmd.spreadsheetId()
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("spreadsheet - ID:%s  worksheet:%s", spreadsheetId, cmd.worksheet)
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
		departments, err := client.Departments(ctx, token)
		if err != nil {
			return err
		}

		if cmd.activeOnly {
			departments = iiko.ActiveDepartments(departments, config.DepartmentFilter)
		}

		return replaceRange(google, spreadsheet.SpreadsheetId, cmd.worksheet, iiko.DepartmentTable(departments), ctx)
	})
}
