package main

import (
	"flag"
	"strings"

	"github.com/mitchellh/cli"
)

var _ cli.Command = (*IndexCommand)(nil)

// IndexCommand prints the FT.CREATE command for a schema file.
type IndexCommand struct {
	Ui cli.Ui

	flagSchema string
}

func (c *IndexCommand) Synopsis() string {
	return "Print the FT.CREATE command for a schema"
}

func (c *IndexCommand) Help() string {
	helpText := `
Usage: searchq index -schema <file>

  Validates the schema and prints the command that creates its index:

      $ searchq index -schema albums.yaml
      FT.CREATE albums ON HASH PREFIX 1 album: SCHEMA artist TAG ...
`
	return strings.TrimSpace(helpText)
}

func (c *IndexCommand) Run(args []string) int {
	f := flag.NewFlagSet("index", flag.ContinueOnError)
	f.Usage = func() { c.Ui.Error(c.Help()) }
	f.StringVar(&c.flagSchema, "schema", "", "Path to the YAML schema file.")
	if err := f.Parse(args); err != nil {
		return 1
	}

	registry, err := loadSchema(c.flagSchema)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	indexArgs, err := registry.CreateIndexArgs()
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	c.Ui.Output("FT.CREATE " + strings.Join(indexArgs, " "))
	return 0
}
