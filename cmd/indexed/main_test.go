package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bodgit/indexed"
	"github.com/bodgit/indexed/pal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	exiter := cli.OsExiter
	cli.OsExiter = func(int) {}
	t.Cleanup(func() {
		cli.OsExiter = exiter
	})

	app := newApp(dir)
	stdout := new(bytes.Buffer)
	app.Writer = stdout
	app.ErrWriter = new(bytes.Buffer)

	err := app.Run(append([]string{"indexed"}, args...))
	return stdout.String(), err
}

func TestShowDefault(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "show", "default")
	require.Nil(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 256)
	assert.Equal(t, "  4\t0xAA0000\t#AA0000", lines[4])
	assert.Equal(t, " 15\t0xFFFFFF\t#FFFFFF", lines[15])

	_, err = run(t, dir, "show", "missing")
	assert.NotNil(t, err)
}

func TestImportListExport(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "test.db")

	in := filepath.Join(dir, "two.pal")
	f, err := os.Create(in)
	require.Nil(t, err)
	require.Nil(t, pal.Encode(f, indexed.NewPalette([]indexed.Color{{R: 0x12, G: 0x34, B: 0x56}, {R: 0xff}})))
	require.Nil(t, f.Close())

	_, err = run(t, dir, "--db", db, "-v", "import", in)
	require.Nil(t, err)

	out, err := run(t, dir, "--db", db, "list")
	require.Nil(t, err)
	assert.Equal(t, "two\n", out)

	out, err = run(t, dir, "--db", db, "show", "two")
	require.Nil(t, err)
	assert.Equal(t, "  0\t0x123456\t#123456\n  1\t0xFF0000\t#FF0000\n", out)

	exported := filepath.Join(dir, "exported.pal")
	_, err = run(t, dir, "--db", db, "export", "two", exported)
	require.Nil(t, err)

	a, err := os.ReadFile(in)
	require.Nil(t, err)
	b, err := os.ReadFile(exported)
	require.Nil(t, err)
	assert.Equal(t, a, b)
}

func TestMissingArguments(t *testing.T) {
	dir := t.TempDir()

	for _, args := range [][]string{
		{"import"},
		{"scan"},
		{"export", "default"},
		{"show"},
		{"quantize", "image.png"},
	} {
		_, err := run(t, dir, args...)
		assert.NotNil(t, err, "%v", args)
	}

	_, err := run(t, dir, "quantize", "--colors", "0", "image.png", "name")
	assert.NotNil(t, err)
}

func TestTile(t *testing.T) {
	out, err := run(t, t.TempDir(), "tile", "--width", "16", "--height", "8", "--rows", "2", "--cols", "2")
	require.Nil(t, err)
	assert.Equal(t, "0\t0\t0\t16\t8\n1\t16\t0\t16\t8\n2\t0\t8\t16\t8\n3\t16\t8\t16\t8\n", out)

	_, err = run(t, t.TempDir(), "tile", "--rows", "2")
	assert.NotNil(t, err)
}
