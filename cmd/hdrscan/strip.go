// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"io"
	"os"

	"github.com/jlubawy/go-hdrscan/commentsplit"
)

const stripUsage = `usage: hdrscan strip [-output output] [header file]
Run 'hdrscan help strip' for details.
`

var stripCommand = Command{
	Name: "strip",
	CmdFn: func(args []string) {
		var flagOutput string
		fs := flag.NewFlagSet("strip", flag.ExitOnError)
		fs.Usage = func() { info(stripUsage) }
		fs.StringVar(&flagOutput, "output", "", "file to output to, stdout if empty")
		fs.Parse(args)

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

		var w io.Writer
		if flagOutput == "" {
			w = os.Stdout
		} else {
			f, err := os.OpenFile(flagOutput, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
			if err != nil {
				fatalf("Error opening output file: %v\n", err)
			}
			defer f.Close()
			w = f
		}

		if err := commentsplit.StripComments(w, r); err != nil {
			fatalf("Error stripping comments: %v\n", err)
		}
	},
	HelpFn: func() {
		info(`usage: hdrscan strip [-output output] [header file]

Strip comments from a header file provided as an argument or from stdin,
preserving line numbers. The stripped file is written to [-output] or to
stdout if no output file is given.
`)
	},
}
