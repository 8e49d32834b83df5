// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jlubawy/go-hdrscan/macroscan"
)

const macrosUsage = `usage: hdrscan macros -names NAME[,NAME...] [header file]
Run 'hdrscan help macros' for details.
`

var macrosCommand = Command{
	Name: "macros",
	CmdFn: func(args []string) {
		var flagNames string
		fs := flag.NewFlagSet("macros", flag.ExitOnError)
		fs.Usage = func() { info(macrosUsage) }
		fs.StringVar(&flagNames, "names", "CLASS,ENUM,FUNCTION,PROPERTY", "comma-separated macro names to look for")
		fs.Parse(args)

		names := strings.Split(flagNames, ",")

		var r io.Reader
		switch fs.NArg() {
		case 0:
			r = os.Stdin
		case 1:
			f, err := os.Open(fs.Arg(0))
			if err != nil {
				fatalf("Error opening input file: %v\n", err)
			}
			defer f.Close()
			r = f
		default:
			fatal("Expected a single input file.\n")
		}

		err := macroscan.Scan(r, func(inv macroscan.Invocation) {
			fmt.Printf("%d-%d: %s\n", inv.Start, inv.End, inv)
		}, names...)
		if err != nil {
			fatalf("Error scanning macros: %v\n", err)
		}
	},
	HelpFn: func() {
		info(`usage: hdrscan macros -names NAME[,NAME...] [header file]

List every invocation of the named macros (default
CLASS,ENUM,FUNCTION,PROPERTY) found in a header file, without requiring
it to be a fully well-formed declaration. Useful for previewing which
macro names a header actually uses before running 'hdrscan scan'.
`)
	},
}
