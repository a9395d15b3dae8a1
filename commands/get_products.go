package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/iikotools/iiko-app-sheets/iiko"
)

var GetProductsCmd = GetProducts{
	file: time.Now().Format("products 2006-01-02T150405.tsv"),
}

// GetProducts downloads the iiko product catalog to a local TSV file, for offline
// use. No spreadsheet is involved.
type GetProducts struct {
	file  string
	debug bool
}

func (cmd *GetProducts) Name() string {
	return "get-products"
}

func (cmd *GetProducts) Description() string {
	return "Retrieves the product catalog from iiko and stores it to a local TSV file"
}

func (cmd *GetProducts) Usage() string {
	return "--file <file>"
}

func (cmd *GetProducts) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get-products [options] --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads the iiko product catalog to a TSV file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    iiko-app-sheets --debug get-products --file "products.tsv"`)
	fmt.Println()
}

func (cmd *GetProducts) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("get-products", flag.ExitOnError)

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to 'products <yyyy-mm-dd HHmmss>.tsv'")

	return flagset
}

func (cmd *GetProducts) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	config, err := configure()
	if err != nil {
		return err
	}

	ctx := context.Background()

	client := iiko.NewClient(config.BaseURL, config.Login, config.Password)

	return client.Session(ctx, func(token string) error {
		products, err := client.Products(ctx, token)
		if err != nil {
			return err
		}

		tmp, err := os.CreateTemp(os.TempDir(), "products")
		if err != nil {
			return err
		}

		defer func() {
			tmp.Close()
			os.Remove(tmp.Name())
		}()

		if err := iiko.ProductTable(products).MakeTSV(tmp); err != nil {
			return fmt.Errorf("error creating TSV file (%v)", err)
		}

		tmp.Close()

		dir := filepath.Dir(cmd.file)
		if err := os.MkdirAll(dir, 0770); err != nil {
			return err
		}

		if err := os.Rename(tmp.Name(), cmd.file); err != nil {
			return err
		}

		infof("retrieved product catalog to file %s", cmd.file)

		return nil
	})
}
