package commands

import (
	"flag"
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/sheets/v4"
)

const APP = "iiko-app-sheets"
const VERSION = "v0.1.0"

const SHEETS = "https://www.googleapis.com/auth/spreadsheets"

var spreadsheetURL = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)

type Options struct {
	Debug bool
}

type Command interface {
	Name() string
	FlagSet() *flag.FlagSet
	Description() string
	Usage() string
	Help()
	Execute(args ...any) error
}

// command is the shared state for the subcommands that write to a spreadsheet.
type command struct {
	credentials string
	url         string
	worksheet   string
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the Google service account 'credentials.json' file")
	flagset.StringVar(&c.url, "url", c.url, "Spreadsheet URL")

	return flagset
}

// validate fills in unset options from the environment configuration and checks the
// required ones.
func (c *command) validate(config *Config) error {
	if strings.TrimSpace(c.credentials) == "" {
		c.credentials = config.Credentials
	}

	if strings.TrimSpace(c.url) == "" {
		c.url = config.SpreadsheetURL
	}

	if strings.TrimSpace(c.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(c.url) == "" {
		return fmt.Errorf("--url is a required option")
	}

	return nil
}

func (c *command) spreadsheetId() (string, error) {
	match := spreadsheetURL.FindStringSubmatch(strings.TrimSpace(c.url))
	if len(match) < 2 {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

func Parse(cli []Command, help Command) (Command, error) {
	if flag.NArg() == 0 {
		return nil, nil
	}

	var cmd Command
	for _, c := range append([]Command{help}, cli...) {
		if c.Name() == flag.Arg(0) {
			cmd = c
			break
		}
	}

	if cmd == nil {
		return nil, fmt.Errorf("invalid command '%s'", flag.Arg(0))
	}

	if err := cmd.FlagSet().Parse(flag.Args()[1:]); err != nil {
		return nil, err
	}

	return cmd, nil
}

func helpOptions(flagset *flag.FlagSet) {
	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("  Options:")
	fmt.Println()
	fmt.Println("    --debug  Displays internal information for diagnosing errors")
}

func getSpreadsheet(google *sheets.Service, id string) (*sheets.Spreadsheet, error) {
	spreadsheet, err := google.Spreadsheets.Get(id).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet (%v)", err)
	}

	return spreadsheet, nil
}

func getSheet(spreadsheet *sheets.Spreadsheet, name string) (*sheets.Sheet, error) {
	for _, sheet := range spreadsheet.Sheets {
		if strings.EqualFold(strings.TrimSpace(sheet.Properties.Title), strings.TrimSpace(name)) {
			return sheet, nil
		}
	}

	return nil, fmt.Errorf("unable to identify worksheet '%s'", name)
}

func debugf(format string, args ...any) {
	logrus.Debugf(format, args...)
}

func infof(format string, args ...any) {
	logrus.Infof(format, args...)
}

func warnf(format string, args ...any) {
	logrus.Warnf(format, args...)
}
