package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/clktmr/dcc/tools/decode"
	"github.com/clktmr/dcc/tools/run"
)

const usageString = `dccgo is a tool for capturing the Debug Communication Channel of ARM targets.

Usage:

	%s <command> [arguments]

The commands are:

	run      run a debugger and print the target's output
	decode   convert a raw word capture to text
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "run":
		run.Main(flag.Args())
	case "decode":
		decode.Main(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
