package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/iikotools/iiko-app-sheets/iiko"
)

var SyncProductsCmd = SyncProducts{
	command: command{
		worksheet: "Products",
	},
}

type SyncProducts struct {
	command
}

func (cmd *SyncProducts) Name() string {
	return "sync-products"
}

func (cmd *SyncProducts) Description() string {
	return "Replaces a Google Sheets worksheet with the product catalog from iiko"
}

func (cmd *SyncProducts) Usage() string {
	return "--credentials <file> --url <url> --worksheet <name>"
}

func (cmd *SyncProducts) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] sync-products [options] --url <URL> --worksheet <name>\n", APP)
	fmt.Println()
	fmt.Println("  Replaces the worksheet rows from row 2 down with the current iiko product catalog")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    iiko-app-sheets sync-products --credentials "credentials.json" \`)
	fmt.Println(`                                  --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                                  --worksheet "Products"`)
	fmt.Println()
}

func (cmd *SyncProducts) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("sync-products")

	flagset.StringVar(&cmd.worksheet, "worksheet", cmd.worksheet, "Destination worksheet name")

	return flagset
}

func (cmd *SyncProducts) Execute(args ...any) error {
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
		products, err := client.Products(ctx, token)
		if err != nil {
			return err
		}

		return replaceRange(google, spreadsheet.SpreadsheetId, cmd.worksheet, iiko.ProductTable(products), ctx)
	})
}
