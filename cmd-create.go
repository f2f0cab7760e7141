package main

import (
	"github.com/urfave/cli/v2"

	"github.com/SumiTomohiko/o/db"
)

func newCmd_Create() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create an empty database.",
		ArgsUsage: "PATH",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "attr",
				Usage: "declare an attribute field; repeatable, ids are assigned in order",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("usage: o create [--attr=NAME]... PATH", 1)
			}
			if err := db.Create(c.Args().First(), c.StringSlice("attr")); err != nil {
				return exitErr("Can't create database", err)
			}
			return nil
		},
	}
}
