// Command searchq works with RediSearch schemas declared in YAML:
//
//	searchq index -schema albums.yaml
//	searchq query -schema albums.yaml artist eq Mushroomhead or year gte 1990
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mitchellh/cli"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ui := &cli.ColoredUi{
		ErrorColor: cli.UiColorRed,
		WarnColor:  cli.UiColorYellow,
		Ui: &cli.BasicUi{
			Reader:      bufio.NewReader(os.Stdin),
			Writer:      os.Stdout,
			ErrorWriter: os.Stderr,
		},
	}

	c := &cli.CLI{
		Name:     "searchq",
		Version:  version,
		Args:     args,
		Commands: commands(ui),
		HelpFunc: cli.BasicHelpFunc("searchq"),
	}
	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %s\n", err.Error())
		return 1
	}
	return exitCode
}

func commands(ui cli.Ui) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"index": func() (cli.Command, error) {
			return &IndexCommand{Ui: ui}, nil
		},
		"query": func() (cli.Command, error) {
			return &QueryCommand{Ui: ui}, nil
		},
	}
}
