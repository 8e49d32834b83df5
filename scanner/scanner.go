// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package scanner implements the recursive-descent declaration parser: it
drives a token.Tokenizer over a header body, recognizes
annotation macros (class, enum, property, function, and user-configured
custom macros) plus plain namespaces and access specifiers, and streams
the result as a JSON document through jsonw.Writer.
*/
package scanner

import (
	"bytes"

	"github.com/jlubawy/go-hdrscan/jsonw"
	"github.com/jlubawy/go-hdrscan/token"
	"github.com/jlubawy/go-hdrscan/typenode"
)

// Scanner holds the state of one scan: the tokenizer cursor, the output
// writer, and the scope stack. A Scanner is single-use; call Scan once.
type Scanner struct {
	opts Options

	tz token.Tokenizer
	w  *jsonw.Writer

	scopes [maxScopeDepth]Scope
	top    int
}

// New returns a Scanner configured with opts.
func New(opts Options) *Scanner {
	return &Scanner{opts: opts}
}

// Scan tokenizes input and returns the pretty-printed JSON array document
// describing every recognized declaration. On error nothing is returned;
// any output accumulated so far is discarded.
func (s *Scanner) Scan(input string) ([]byte, error) {
	var buf bytes.Buffer
	s.w = jsonw.New(&buf)
	s.tz.Reset(input, 0)
	s.top = 0
	s.scopes[0] = Scope{Kind: ScopeGlobal}

	s.w.StartArray()
	for {
		tok, ok := s.tz.GetToken(false, false)
		if !ok {
			break
		}
		if !s.parseDeclaration(tok) {
			break
		}
	}

	if s.tz.HasError() {
		return nil, s.tz.Err()
	}

	s.w.EndArray()
	if err := s.w.Flush(); err != nil {
		return nil, err
	}
	if err := s.w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// parseDeclaration dispatches on the first token of a top-level or
// member declaration. tok has already been consumed from the tokenizer.
func (s *Scanner) parseDeclaration(tok token.Token) bool {
	switch {
	case tok.IsSymbol("#"):
		return s.parseDirective()
	case tok.IsSymbol(";"):
		return true
	case tok.IsIdentifier(s.opts.EnumMacro):
		return s.parseEnum(tok)
	case tok.IsIdentifier(s.opts.ClassMacro):
		return s.parseClass(tok)
	}

	for _, name := range s.opts.FunctionMacros {
		if tok.IsIdentifier(name) {
			return s.parseFunction(tok, name)
		}
	}

	if tok.IsIdentifier(s.opts.PropertyMacro) {
		return s.parseProperty(tok)
	}

	if tok.IsIdentifier("namespace") {
		return s.parseNamespace()
	}

	if access, ok := parseAccessKeyword(tok); ok {
		s.scopes[s.top].Access = access
		return s.tz.RequireSymbol(":")
	}

	for _, name := range s.opts.CustomMacros {
		if tok.IsIdentifier(name) {
			return s.parseCustomMacro(tok, name)
		}
	}

	return s.skipDeclaration()
}

// parseDirective consumes a preprocessor directive. #include records the
// target file as a member; everything else (including multi-line #define
// with backslash continuations) is skipped without being emitted.
func (s *Scanner) parseDirective() bool {
	nameTok, ok := s.tz.GetIdentifier()
	if !ok {
		return s.tz.Error("expected identifier after '#'")
	}

	multiLine := false
	switch nameTok.Text {
	case "define":
		multiLine = true
	case "include":
		fileTok, ok := s.tz.GetToken(true, false)
		if !ok {
			return s.tz.Error("expected filename after #include")
		}
		s.w.StartObject()
		s.w.Key("type")
		s.w.String("include")
		s.w.Key("file")
		s.w.String(fileTok.Text)
		s.w.EndObject()
	}

	for {
		last := s.tz.SkipToEndOfLine()
		if !multiLine || last != '\\' {
			break
		}
	}
	return true
}

// skipDeclaration discards tokens up to the ';' or balanced '{' '}' block
// that ends an unrecognized declaration.
func (s *Scanner) skipDeclaration() bool {
	depth := 0
	for {
		tok, ok := s.tz.GetToken(false, false)
		if !ok {
			return true
		}
		if tok.IsSymbol(";") && depth == 0 {
			return true
		}
		if tok.IsSymbol("{") {
			depth++
		}
		if tok.IsSymbol("}") {
			depth--
			if depth <= 0 {
				return true
			}
		}
	}
}

// parseType parses a single C++ type expression and writes it as the
// current key's value.
func (s *Scanner) parseType() bool {
	node, ok := typenode.Parse(&s.tz)
	if !ok {
		return false
	}
	typenode.Write(s.w, node)
	return true
}

// adjacentComment returns the text of the most recently completed comment
// if it ends on the line the cursor is now on, meaning nothing but
// whitespace separated it from the declaration that follows.
func (s *Scanner) adjacentComment() (string, bool) {
	c, ok := s.tz.LastComment()
	if !ok || c.EndLine != s.tz.Line() {
		return "", false
	}
	return c.Text, true
}

// setTrue sets *dst to true and returns matched, for chaining repeated
// MatchIdentifier calls in a fixed-point loop over optional modifiers.
func setTrue(dst *bool, matched bool) bool {
	if matched {
		*dst = true
	}
	return matched
}
