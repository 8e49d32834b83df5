// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/jlubawy/go-hdrscan/scanner"
)

const scanUsage = `usage: hdrscan scan [options] [header file]
Run 'hdrscan help scan' for details.
`

var scanCommand = Command{
	Name: "scan",
	CmdFn: func(args []string) {
		var opts struct {
			Class     string   `short:"c" long:"class" description:"annotation macro name for classes/structs" default:"CLASS"`
			Enum      string   `short:"e" long:"enum" description:"annotation macro name for enums" default:"ENUM"`
			Function  []string `short:"f" long:"function" description:"annotation macro name for member functions, may be repeated" default:"FUNCTION"`
			Property  string   `short:"p" long:"property" description:"annotation macro name for properties" default:"PROPERTY"`
			Macro     []string `short:"m" long:"macro" description:"additional standalone macro name to recognize, may be repeated"`
			Output    string   `long:"output" description:"file to write JSON to, stdout if empty" value-name:"file"`
			Help      bool     `long:"help" description:"show this help"`
		}

		parser := flags.NewParser(&opts, flags.PassDoubleDash)
		parser.Usage = "[options] [header file]"
		remaining, err := parser.ParseArgs(args)
		if err != nil {
			fatalf("Error parsing options: %v\n", err)
		}

		if opts.Help {
			parser.WriteHelp(os.Stderr)
			os.Exit(0)
		}

		var r io.Reader
		switch len(remaining) {
		case 0:
			r = os.Stdin
		case 1:
			f, err := os.Open(remaining[0])
			if err != nil {
				fatalf("Error opening input file: %v\n", err)
			}
			defer f.Close()
			r = f
		default:
			fatal("Expected at most one input file.\n")
		}

		src, err := io.ReadAll(r)
		if err != nil {
			fatalf("Error reading input: %v\n", err)
		}

		s := scanner.New(scanner.Options{
			ClassMacro:     opts.Class,
			EnumMacro:      opts.Enum,
			PropertyMacro:  opts.Property,
			FunctionMacros: opts.Function,
			CustomMacros:   opts.Macro,
		})

		out, err := s.Scan(string(src))
		if err != nil {
			fatalf("Error scanning header: %v\n", err)
		}

		var w io.Writer
		if opts.Output == "" {
			w = os.Stdout
		} else {
			f, err := os.OpenFile(opts.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
			if err != nil {
				fatalf("Error opening output file: %v\n", err)
			}
			defer f.Close()
			w = f
		}

		if _, err := w.Write(out); err != nil {
			fatalf("Error writing output: %v\n", err)
		}
		if _, err := w.Write([]byte("\n")); err != nil {
			fatalf("Error writing output: %v\n", err)
		}
	},
	HelpFn: func() {
		info(`usage: hdrscan scan [options] [header file]

Scan a header file provided as an argument or from stdin for annotation
macros, and write its JSON description to stdout or to [--output].

Options:
  -c, --class     annotation macro name for classes/structs (default CLASS)
  -e, --enum      annotation macro name for enums (default ENUM)
  -f, --function  annotation macro name for member functions, repeatable
                  (default FUNCTION)
  -p, --property  annotation macro name for properties (default PROPERTY)
  -m, --macro     additional standalone macro name to recognize, repeatable
      --output    file to write JSON to, stdout if empty
`)
	},
}
