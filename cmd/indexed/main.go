package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/indexed"
	"github.com/bodgit/indexed/library"
	"github.com/urfave/cli/v2"
)

const (
	defaultDB     = "indexed.db"
	defaultColors = 16
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func openLibrary(c *cli.Context) (*library.Library, *library.DB, error) {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(c.App.ErrWriter)
	}

	db, err := library.NewDB(c.String("db"))
	if err != nil {
		return nil, nil, err
	}

	return library.New(db, logger), db, nil
}

func requireArgs(c *cli.Context, n int) error {
	if c.NArg() < n {
		if err := cli.ShowCommandHelp(c, c.Command.Name); err != nil {
			return err
		}
		return cli.Exit("", 1)
	}
	return nil
}

func newApp(cwd string) *cli.App {
	app := cli.NewApp()

	app.Name = "indexed"
	app.Usage = "Indexed color palette management utility"
	app.Version = "1.0.0"
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"INDEXED_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "import",
			Usage:     "Import RIFF palette files",
			ArgsUsage: "FILE...",
			Action: func(c *cli.Context) error {
				if err := requireArgs(c, 1); err != nil {
					return err
				}

				l, db, err := openLibrary(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				for _, file := range c.Args().Slice() {
					if err := l.Import(file); err != nil {
						return cli.Exit(err, 1)
					}
				}

				return nil
			},
		},
		{
			Name:      "scan",
			Usage:     "Scan filesystem and import every palette file found",
			ArgsUsage: "DIRECTORY",
			Action: func(c *cli.Context) error {
				if err := requireArgs(c, 1); err != nil {
					return err
				}

				l, db, err := openLibrary(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				if err := l.Scan(c.Args().First()); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "export",
			Usage:     "Export a palette as a RIFF palette file",
			ArgsUsage: "NAME FILE",
			Action: func(c *cli.Context) error {
				if err := requireArgs(c, 2); err != nil {
					return err
				}

				l, db, err := openLibrary(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				if err := l.Export(c.Args().Get(0), c.Args().Get(1)); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "list",
			Usage: "List stored palettes",
			Action: func(c *cli.Context) error {
				_, db, err := openLibrary(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				names, err := db.Names()
				if err != nil {
					return cli.Exit(err, 1)
				}

				for _, name := range names {
					fmt.Fprintln(c.App.Writer, name)
				}

				return nil
			},
		},
		{
			Name:      "show",
			Usage:     "Print the colors of a palette",
			ArgsUsage: "NAME",
			Action: func(c *cli.Context) error {
				if err := requireArgs(c, 1); err != nil {
					return err
				}

				_, db, err := openLibrary(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				p, err := db.Get(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}
				if p == nil {
					return cli.Exit(fmt.Sprintf("no palette named %q", c.Args().First()), 1)
				}

				for i, col := range p.Colors() {
					fmt.Fprintf(c.App.Writer, "%3d\t0x%06X\t%s\n", i, col.Hex(), col)
				}

				return nil
			},
		},
		{
			Name:      "quantize",
			Usage:     "Create a palette from an image",
			ArgsUsage: "IMAGE NAME",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "colors",
					Aliases: []string{"c"},
					Value:   defaultColors,
					Usage:   "maximum number of colors",
				},
			},
			Action: func(c *cli.Context) error {
				if err := requireArgs(c, 2); err != nil {
					return err
				}

				if n := c.Int("colors"); n < 1 || n > 256 {
					return cli.Exit(fmt.Sprintf("invalid number of colors: %d", n), 1)
				}

				l, db, err := openLibrary(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				if err := l.QuantizeImage(c.Args().Get(0), c.Args().Get(1), c.Int("colors")); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "tile",
			Usage: "Print the frames of a sprite sheet grid",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "width", Required: true, Usage: "frame width"},
				&cli.IntFlag{Name: "height", Required: true, Usage: "frame height"},
				&cli.IntFlag{Name: "rows", Value: 1, Usage: "number of rows"},
				&cli.IntFlag{Name: "cols", Value: 1, Usage: "number of columns"},
			},
			Action: func(c *cli.Context) error {
				frames := indexed.Tile(c.Int("width"), c.Int("height"), c.Int("rows"), c.Int("cols"))
				for i, f := range frames {
					fmt.Fprintf(c.App.Writer, "%d\t%d\t%d\t%d\t%d\n", i, f.XStart(), f.YStart(), f.Width(), f.Height())
				}
				return nil
			},
		},
	}

	return app
}

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	if err := newApp(cwd).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
