package commands

import (
	"flag"
	"fmt"
)

// Help is the 'help' command - it lists the registered commands or, given a command
// name, displays that command's long form help.
type Help struct {
	cli []Command
}

func NewHelp(cli []Command) *Help {
	return &Help{
		cli: cli,
	}
}

func (h *Help) Name() string {
	return "help"
}

func (h *Help) FlagSet() *flag.FlagSet {
	return flag.NewFlagSet("help", flag.ExitOnError)
}

func (h *Help) Description() string {
	return "Displays the help information"
}

func (h *Help) Usage() string {
	return "help <command>"
}

func (h *Help) Help() {
	h.Execute()
}

func (h *Help) Execute(args ...any) error {
	if flag.NArg() > 1 {
		for _, c := range h.cli {
			if c.Name() == flag.Arg(1) {
				c.Help()
				return nil
			}
		}
	}

	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] <command> [options]\n", APP)
	fmt.Println()
	fmt.Println("  Commands:")

	for _, c := range h.cli {
		fmt.Printf("    %-16s %s\n", c.Name(), c.Description())
	}

	fmt.Println()

	return nil
}
