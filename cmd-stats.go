package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/SumiTomohiko/o/db"
)

func newCmd_Stats() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Print index size statistics.",
		ArgsUsage: "PATH",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("usage: o stats PATH", 1)
			}
			handle, err := db.OpenRead(c.Args().First())
			if err != nil {
				return exitErr("Can't open database", err)
			}
			defer handle.Close()
			st, err := handle.Stats()
			if err != nil {
				return exitErr("Can't read stats", err)
			}
			if names := handle.AttrNames(); len(names) > 0 {
				fmt.Printf("attributes:    %s\n", strings.Join(names, " "))
			}
			fmt.Printf("documents:     %s\n", humanize.Comma(int64(st.Docs)))
			fmt.Printf("terms:         %s\n", humanize.Comma(int64(st.Terms)))
			fmt.Printf("postings:      %s\n", humanize.Comma(int64(st.Postings)))
			fmt.Printf("posting bytes: %s\n", humanize.Bytes(st.PostingBytes))
			return nil
		},
	}
}
