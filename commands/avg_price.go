package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/iikotools/iiko-app-sheets/iiko"
)

var AvgPriceCmd = AvgPrice{
	from: time.Now().AddDate(0, 0, -7).Format("2006-01-02"),
	to:   time.Now().Format("2006-01-02"),
}

// AvgPrice displays the weighted average purchase price for a product over a date
// range, computed from the supplier invoice transactions of the active departments.
type AvgPrice struct {
	product string
	from    string
	to      string
	debug   bool
}

func (cmd *AvgPrice) Name() string {
	return "avg-price"
}

func (cmd *AvgPrice) Description() string {
	return "Displays the weighted average purchase price for a product over a date range"
}

func (cmd *AvgPrice) Usage() string {
	return "--product <name> --from <date> --to <date>"
}

func (cmd *AvgPrice) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] avg-price --product <name> [--from <yyyy-mm-dd>] [--to <yyyy-mm-dd>]\n", APP)
	fmt.Println()
	fmt.Println("  Displays the weighted average purchase price (sum/quantity) for a product over the date range,")
	fmt.Println("  across the active departments")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    iiko-app-sheets avg-price --product "Сахар" --from "2024-01-01" --to "2024-01-31"`)
	fmt.Println()
}

func (cmd *AvgPrice) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("avg-price", flag.ExitOnError)

	flagset.StringVar(&cmd.product, "product", cmd.product, "Product name, as in the iiko catalog")
	flagset.StringVar(&cmd.from, "from", cmd.from, "Start of the period (yyyy-mm-dd, inclusive). Defaults to 7 days ago")
	flagset.StringVar(&cmd.to, "to", cmd.to, "End of the period (yyyy-mm-dd, inclusive). Defaults to today")

	return flagset
}

func (cmd *AvgPrice) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	config, err := configure()
	if err != nil {
		return err
	}

	// ... check parameters
	if strings.TrimSpace(cmd.product) == "" {
		return fmt.Errorf("--product is a required option")
	}

	from, err := time.ParseInLocation("2006-01-02", cmd.from, time.Local)
	if err != nil {
		return fmt.Errorf("invalid --from date '%s' - expected yyyy-mm-dd", cmd.from)
	}

	to, err := time.ParseInLocation("2006-01-02", cmd.to, time.Local)
	if err != nil {
		return fmt.Errorf("invalid --to date '%s' - expected yyyy-mm-dd", cmd.to)
	}

	ctx := context.Background()

	client := iiko.NewClient(config.BaseURL, config.Login, config.Password)

	return client.Session(ctx, func(token string) error {
		codes, err := activeCodes(client, token, config.DepartmentFilter, ctx)
		if err != nil {
			return err
		}

		query := iiko.TransactionsQuery(from, to, codes, []string{cmd.product})

		rows, err := client.Report(ctx, token, query)
		if err != nil {
			return err
		}

		price, ok := iiko.AvgPrice(rows)
		if !ok {
			return fmt.Errorf("no price data for product '%s' between %s and %s", cmd.product, cmd.from, cmd.to)
		}

		fmt.Printf("%s  %s..%s  %.2f\n", cmd.product, cmd.from, cmd.to, price)

		return nil
	})
}
