package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const albumsYAML = `
index: albums
prefix: "album:"
fields:
  - name: artist
    type: string
  - name: year
    type: number
  - name: title
    type: text
    alias: album_title
  - name: releasedAt
    type: date
`

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestIndexCommand(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := &IndexCommand{Ui: ui}

	code := cmd.Run([]string{"-schema", writeSchema(t, albumsYAML)})
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Equal(t,
		"FT.CREATE albums ON HASH PREFIX 1 album: SCHEMA artist TAG year NUMERIC title AS album_title TEXT releasedAt NUMERIC",
		strings.TrimSpace(ui.OutputWriter.String()))
}

func TestIndexCommandErrors(t *testing.T) {
	t.Run("missing flag", func(t *testing.T) {
		ui := cli.NewMockUi()
		assert.Equal(t, 1, (&IndexCommand{Ui: ui}).Run(nil))
		assert.Contains(t, ui.ErrorWriter.String(), "-schema is required")
	})

	t.Run("missing file", func(t *testing.T) {
		ui := cli.NewMockUi()
		code := (&IndexCommand{Ui: ui}).Run([]string{"-schema", filepath.Join(t.TempDir(), "nope.yaml")})
		assert.Equal(t, 1, code)
		assert.Contains(t, ui.ErrorWriter.String(), "failed to read")
	})

	t.Run("invalid schema", func(t *testing.T) {
		ui := cli.NewMockUi()
		code := (&IndexCommand{Ui: ui}).Run([]string{"-schema", writeSchema(t, "index: albums\nfields:\n  - name: a\n    type: blob\n")})
		assert.Equal(t, 1, code)
		assert.Contains(t, ui.ErrorWriter.String(), "unknown type")
	})
}

func TestQueryCommand(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := &QueryCommand{Ui: ui}

	code := cmd.Run([]string{
		"-schema", writeSchema(t, albumsYAML),
		"artist", "eq", "Ozzy Osbourne", "or", "title", "match", "paranoid", "and", "year", "lt", "1980",
	})
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Equal(t,
		`( ( (@artist:{Ozzy\ Osbourne}) | (@album_title:paranoid) ) (@year:[-inf (1980]) )`,
		strings.TrimSpace(ui.OutputWriter.String()))
}

func TestQueryCommandDateInEpochSeconds(t *testing.T) {
	ui := cli.NewMockUi()
	code := (&QueryCommand{Ui: ui}).Run([]string{"-schema", writeSchema(t, albumsYAML), "releasedAt", "onOrBefore", "1700000000"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Equal(t, "(@releasedAt:[-inf 1700000000])", strings.TrimSpace(ui.OutputWriter.String()))
}

func TestQueryCommandWithoutPredicates(t *testing.T) {
	ui := cli.NewMockUi()
	code := (&QueryCommand{Ui: ui}).Run([]string{"-schema", writeSchema(t, albumsYAML)})
	require.Equal(t, 0, code)
	assert.Equal(t, "*", strings.TrimSpace(ui.OutputWriter.String()))
}

func TestQueryCommandUnknownField(t *testing.T) {
	ui := cli.NewMockUi()
	code := (&QueryCommand{Ui: ui}).Run([]string{"-schema", writeSchema(t, albumsYAML), "label", "eq", "x"})
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "The field 'label' is not part of the schema.")
}

func TestCommandsAreRegistered(t *testing.T) {
	factories := commands(cli.NewMockUi())
	for _, name := range []string{"index", "query"} {
		factory, ok := factories[name]
		require.True(t, ok, name)
		cmd, err := factory()
		require.NoError(t, err)
		assert.NotEmpty(t, cmd.Synopsis())
		assert.NotEmpty(t, cmd.Help())
	}
}
