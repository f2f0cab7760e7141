package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/SumiTomohiko/o/db"
)

func newCmd_Put() *cli.Command {
	return &cli.Command{
		Name:      "put",
		Usage:     "Index one document read from standard input.",
		ArgsUsage: "PATH",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "attr",
				Usage: "attach an attribute value as NAME:VALUE; repeatable",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("usage: o put [--attr=NAME:VALUE]... PATH", 1)
			}
			attrs, err := parseAttrArgs(c.StringSlice("attr"))
			if err != nil {
				return exitErr("Can't put document", err)
			}
			body, err := io.ReadAll(os.Stdin)
			if err != nil {
				return exitErr("Can't read document", err)
			}
			handle, err := db.OpenWrite(c.Args().First())
			if err != nil {
				return exitErr("Can't open database", err)
			}
			id, err := handle.Put(body, attrs)
			if err != nil {
				handle.Close()
				return exitErr("Can't put document", err)
			}
			if err := handle.Close(); err != nil {
				return exitErr("Can't close database", err)
			}
			fmt.Println(id)
			return nil
		},
	}
}

func parseAttrArgs(args []string) ([]db.Attr, error) {
	attrs := make([]db.Attr, 0, len(args))
	for _, arg := range args {
		name, value, found := strings.Cut(arg, ":")
		if !found || name == "" {
			return nil, fmt.Errorf("attribute %q is not NAME:VALUE", arg)
		}
		attrs = append(attrs, db.Attr{Name: name, Value: value})
	}
	return attrs, nil
}
