// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package macroscan provides a lightweight, regexp-based scan for function-like
macro invocations in header text. It is independent of the full declaration
parser in package scanner: it does not require a balanced, compilable
header, only that a named macro's invocation is followed by a parenthesized
argument list and a terminating ';'. This makes it useful as a fast,
best-effort preview of which annotation macros a header uses and where,
before committing to a full parse with a particular macro configuration.
*/
package macroscan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// An Invocation is a single invocation of a function-like macro.
type Invocation struct {
	Name       string   // macro name
	Start, End int      // 1-based lines the invocation starts and ends on
	Args       []string // raw, comma-split argument text
}

func (inv Invocation) String() string {
	return fmt.Sprintf("%s( %s );", inv.Name, strings.Join(inv.Args, ", "))
}

// Scan reads all of r and reports every invocation of the named macros via
// scanFunc, in source order.
func Scan(r io.Reader, scanFunc func(inv Invocation), names ...string) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return ScanString(string(b), scanFunc, names...)
}

// ScanString is Scan over an in-memory string.
func ScanString(src string, scanFunc func(inv Invocation), names ...string) error {
	re, err := compileNamesRegexp(names...)
	if err != nil {
		return err
	}

	var (
		lineCurr = 1
		s        = src
		inv      Invocation
	)
	for {
		loc := re.FindStringIndex(s)
		if loc == nil {
			return nil
		}

		ni := loc[0]
		name := s[loc[0]:loc[1]]

		for i := 0; i < ni; i++ {
			if s[i] == '\n' {
				lineCurr++
			}
		}

		isDef := isMacroDefinition(s, ni)
		s = s[ni+len(name):]
		if isDef {
			continue
		}

		inv = Invocation{Name: name, Start: lineCurr}

		opi := strings.Index(s, "(")
		if opi == -1 {
			return errors.New("macroscan: macro invocation missing opening parenthesis")
		}
		lineCurr += strings.Count(s[:opi], "\n")

		buf := &bytes.Buffer{}
		var (
			inStringLiteral bool
			parenCount      int
			done            bool
			i               int
		)
		for i = opi + 1; i < len(s) && !done; i++ {
			b := s[i]
			switch b {
			case ' ':
				if inStringLiteral || parenCount > 0 {
					buf.WriteByte(b)
				} else if arg, ok := takeArg(buf); ok {
					inv.Args = append(inv.Args, arg)
				}

			case ',':
				if inStringLiteral || parenCount > 0 {
					buf.WriteByte(b)
				} else if arg, ok := takeArg(buf); ok {
					inv.Args = append(inv.Args, arg)
				}

			case '"':
				if inStringLiteral {
					if lb, ok := lastByte(buf); ok && lb == '\\' {
						buf.WriteByte(b)
					} else {
						inStringLiteral = false
						buf.WriteByte(b)
						if parenCount == 0 {
							if arg, ok := takeArg(buf); ok {
								inv.Args = append(inv.Args, arg)
							}
						}
					}
				} else {
					inStringLiteral = true
					buf.WriteByte(b)
				}

			case '(':
				buf.WriteByte(b)
				if !inStringLiteral {
					parenCount++
				}

			case ')':
				if inStringLiteral {
					buf.WriteByte(b)
				} else {
					if parenCount > 0 {
						buf.WriteByte(b)
						parenCount--
					}
					if parenCount == 0 {
						if arg, ok := takeArg(buf); ok {
							inv.Args = append(inv.Args, arg)
						}
					}
				}

			case ';':
				if inStringLiteral {
					buf.WriteByte(b)
				} else {
					inv.End = lineCurr
					scanFunc(inv)
					done = true
				}

			case '\r':
				// discard, wait for '\n'

			case '\n':
				lineCurr++
				if inStringLiteral || parenCount > 0 {
					buf.WriteByte(b)
				}

			default:
				buf.WriteByte(b)
			}
		}

		if i >= len(s) {
			return nil
		}
		s = s[i:]
	}
}

// isMacroDefinition reports whether the name at offset ni in s is preceded
// (ignoring spaces) by "#define", meaning it's a macro definition rather
// than an invocation.
func isMacroDefinition(s string, ni int) bool {
	if ni < 8 {
		return false
	}
	i := ni - 1
	for ; i >= 0; i-- {
		if s[i] != ' ' {
			break
		}
	}
	if i < 6 || s[i-5:i+1] != "define" {
		return false
	}
	for j := i - 6; j >= 0; j-- {
		switch s[j] {
		case ' ':
			continue
		case '#':
			return true
		default:
			return false
		}
	}
	return false
}

// takeArg trims and returns buf's contents as an argument if non-empty;
// buf is reset only when an argument is produced.
func takeArg(buf *bytes.Buffer) (string, bool) {
	arg := strings.TrimSpace(buf.String())
	if len(arg) == 0 {
		return "", false
	}
	buf.Reset()
	return arg, true
}

func lastByte(buf *bytes.Buffer) (byte, bool) {
	bs := buf.Bytes()
	if len(bs) == 0 {
		return 0, false
	}
	return bs[len(bs)-1], true
}

// compileNamesRegexp compiles a regexp matching any of names as a whole
// word.
func compileNamesRegexp(names ...string) (*regexp.Regexp, error) {
	ns := make([]string, len(names))
	for i, n := range names {
		ns[i] = "(\\b" + regexp.QuoteMeta(n) + "\\b)"
	}
	return regexp.Compile(strings.Join(ns, "|"))
}
