package main

import (
	"flag"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/krew-solutions/ascetic-search-go/asceticsearch/search/public"
)

var _ cli.Command = (*QueryCommand)(nil)

// QueryCommand compiles predicates given on the command line.
type QueryCommand struct {
	Ui cli.Ui

	flagSchema   string
	flagLogLevel string
}

func (c *QueryCommand) Synopsis() string {
	return "Compile predicates into a RediSearch query"
}

func (c *QueryCommand) Help() string {
	helpText := `
Usage: searchq query -schema <file> <field> [not] <op> [value] [and|or <field> ...]

  Builds a query left to right, exactly as the chained Go API would:

      $ searchq query -schema albums.yaml artist eq Mushroomhead or year gte 1990
      ( (@artist:{Mushroomhead}) | (@year:[1990 +inf]) )

  Operators: eq, in, gt, gte, lt, lte, between, isTrue, isFalse, contains,
  containsOneOf, match, matchExact, on, after, before, onOrAfter, onOrBefore.
  in and containsOneOf take a comma separated list, between takes two values,
  dates are RFC 3339 timestamps or epoch seconds.
`
	return strings.TrimSpace(helpText)
}

func (c *QueryCommand) Run(args []string) int {
	f := flag.NewFlagSet("query", flag.ContinueOnError)
	f.Usage = func() { c.Ui.Error(c.Help()) }
	f.StringVar(&c.flagSchema, "schema", "", "Path to the YAML schema file.")
	f.StringVar(&c.flagLogLevel, "log-level", "off", "Builder log level, written to stderr.")
	if err := f.Parse(args); err != nil {
		return 1
	}

	registry, err := loadSchema(c.flagSchema)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	clauses, err := ParseClauses(f.Args())
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "searchq",
		Level:  hclog.LevelFromString(c.flagLogLevel),
		Output: os.Stderr,
	})
	q := public.NewSearch(registry, public.WithLogger(logger))
	for _, clause := range clauses {
		if q, err = clause.Apply(q); err != nil {
			c.Ui.Error(err.Error())
			return 1
		}
	}
	query, err := q.Query()
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	c.Ui.Output(query)
	return 0
}
