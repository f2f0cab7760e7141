package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/SumiTomohiko/o/db"
)

func newCmd_Get() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Print a stored document or one of its attribute values.",
		ArgsUsage: "PATH DOC_ID",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "attr",
				Usage: "print this attribute's value instead of the document body",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return cli.Exit("usage: o get [--attr=NAME] PATH DOC_ID", 1)
			}
			id, err := strconv.ParseUint(c.Args().Get(1), 10, 32)
			if err != nil {
				return exitErr("Can't get document", fmt.Errorf("invalid doc id %q", c.Args().Get(1)))
			}
			handle, err := db.OpenRead(c.Args().First())
			if err != nil {
				return exitErr("Can't open database", err)
			}
			defer handle.Close()
			var text string
			if name := c.String("attr"); name != "" {
				text, err = handle.Attr(name, uint32(id))
			} else {
				text, err = handle.Doc(uint32(id))
			}
			if err != nil {
				return exitErr("Can't get document", err)
			}
			fmt.Println(text)
			return nil
		},
	}
}
