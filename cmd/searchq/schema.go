package main

import (
	"os"

	"github.com/pkg/errors"

	search "github.com/krew-solutions/ascetic-search-go/asceticsearch/search/infrastructure"
)

func loadSchema(path string) (*search.SchemaRegistry, error) {
	if path == "" {
		return nil, errors.New("-schema is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return search.LoadSchemaYAML(data)
}
