// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Command hdrscan scans a C++-like header file for annotation macros and
emits a JSON description of the classes, enums, properties, and functions
it finds.

Run `hdrscan help` for usage.
*/
package main

import (
	"flag"
	"fmt"
	"os"
)

// Command is one hdrscan subcommand.
type Command struct {
	Name   string
	CmdFn  func(args []string)
	HelpFn func()
}

var commands = []Command{
	scanCommand,
	stripCommand,
	macrosCommand,
}

const mainUsage = `Usage: hdrscan command [options]

Available commands:

    scan            scan a header file and emit its JSON description
    strip           strip comments from a header file
    macros          list macro invocations found in a header file

Use "hdrscan help [command]" for more information about that command.
`

func main() {
	flag.Usage = func() { info(mainUsage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}
	if flag.NArg() == 1 && flag.Arg(0) == "help" {
		flag.Usage()
		os.Exit(1)
	}

	for _, cmd := range commands {
		if flag.Arg(0) == "help" {
			if flag.Arg(1) == cmd.Name {
				cmd.HelpFn()
				os.Exit(1)
			}
		} else if flag.Arg(0) == cmd.Name {
			cmd.CmdFn(flag.Args()[1:])
			os.Exit(0)
		}
	}

	fatalf("hdrscan: unknown command %q\nRun 'hdrscan help' for usage.\n", flag.Arg(0))
}

func info(s string) {
	fmt.Fprint(os.Stderr, s)
}

func infof(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func fatal(s string) {
	info(s)
	os.Exit(1)
}

func fatalf(format string, args ...interface{}) {
	infof(format, args...)
	os.Exit(1)
}
