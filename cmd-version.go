package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/urfave/cli/v2"
)

var (
	GitCommit string
	GitTag    string
)

func newCmd_Version() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information of this binary.",
		Action: func(c *cli.Context) error {
			printVersion()
			return nil
		},
	}
}

func printVersion() {
	fmt.Println("o full-text search")
	if GitTag != "" {
		fmt.Printf("Tag/Branch: %s\n", GitTag)
	}
	if GitCommit != "" {
		fmt.Printf("Commit: %s\n", GitCommit)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision", "vcs.time", "vcs.modified":
				fmt.Printf("  %s: %s\n", setting.Key, setting.Value)
			}
		}
	}
	fmt.Println("Go version:", runtime.Version())
}
