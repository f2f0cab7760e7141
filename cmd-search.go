package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/SumiTomohiko/o/db"
	"github.com/SumiTomohiko/o/search"
)

func newCmd_Search() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Print the ids of documents matching a query.",
		ArgsUsage: "PATH QUERY",
		Description: `Queries combine terms with AND, OR and NOT (binary, left
associative) and parentheses. A term is a word or a "quoted phrase";
prefix it with ~ for fuzzy matching.`,
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return cli.Exit("usage: o search PATH QUERY", 1)
			}
			handle, err := db.OpenRead(c.Args().First())
			if err != nil {
				return exitErr("Can't open database", err)
			}
			defer handle.Close()
			ids, err := search.Search(handle, c.Args().Get(1))
			if err != nil {
				return exitErr("Can't search", err)
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}
}
