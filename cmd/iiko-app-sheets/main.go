package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/iikotools/iiko-app-sheets/commands"
)

var cli = []commands.Command{
	&commands.VersionCmd,
	&commands.SyncProductsCmd,
	&commands.SyncDepartmentsCmd,
	&commands.LoadReportCmd,
	&commands.GetProductsCmd,
	&commands.AvgPriceCmd,
}

var options = commands.Options{
	Debug: false,
}

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if options.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	help := commands.NewHelp(cli)

	cmd, err := commands.Parse(cli, help)
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		help.Execute()
		os.Exit(1)
	}

	if err := cmd.Execute(&options); err != nil {
		logrus.Errorf("%v", err)
		os.Exit(1)
	}
}
