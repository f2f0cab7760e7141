package main

import (
	"flag"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"
)

var (
	FlagVerbose = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "enable verbose logging",
	}
	FlagVeryVerbose = &cli.BoolFlag{
		Name:  "very-verbose",
		Usage: "enable very verbose logging",
	}
)

// initLogging routes the CLI verbosity flags into klog's -v level.
func initLogging(c *cli.Context) error {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	level := "0"
	if c.Bool(FlagVerbose.Name) {
		level = "2"
	}
	if c.Bool(FlagVeryVerbose.Name) {
		level = "3"
	}
	return fs.Set("v", level)
}

// exitErr formats a failure the way the CLI reports every error:
// "<context> - <reason>" on stderr, exit status 1.
func exitErr(context string, err error) cli.ExitCoder {
	return cli.Exit(context+" - "+err.Error(), 1)
}
