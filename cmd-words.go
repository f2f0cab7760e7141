package main

import (
	"bufio"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/SumiTomohiko/o/db"
)

func newCmd_Words() *cli.Command {
	return &cli.Command{
		Name:      "words",
		Usage:     "Print every indexed term, one per line.",
		ArgsUsage: "PATH",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("usage: o words PATH", 1)
			}
			handle, err := db.OpenRead(c.Args().First())
			if err != nil {
				return exitErr("Can't open database", err)
			}
			defer handle.Close()
			out := bufio.NewWriter(os.Stdout)
			err = handle.Words(func(term []byte) error {
				if _, err := out.Write(term); err != nil {
					return err
				}
				return out.WriteByte('\n')
			})
			if err != nil {
				return exitErr("Can't list words", err)
			}
			if err := out.Flush(); err != nil {
				return exitErr("Can't list words", err)
			}
			return nil
		},
	}
}
