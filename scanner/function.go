// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import "github.com/jlubawy/go-hdrscan/token"

// parseFunction handles `FUNCTION(...) [virtual|inline|constexpr|static]
// ReturnType name(args) [const] [= 0];`. macroName records which
// configured function macro triggered this call, since more than one may
// be registered.
func (s *Scanner) parseFunction(startTok token.Token, macroName string) bool {
	s.w.StartObject()
	s.w.Key("type")
	s.w.String("function")
	s.w.Key("macro")
	s.w.String(macroName)
	s.w.Key("line")
	s.w.Uint(uint64(startTok.StartLine + 1))
	s.writeCurrentAccess()

	if comment, ok := s.adjacentComment(); ok {
		s.w.Key("comment")
		s.w.String(comment)
	}

	if !s.parseMacroMeta() {
		return false
	}

	var isVirtual, isInline, isConstExpr, isStatic bool
	for matched := true; matched; {
		matched = (!isVirtual && setTrue(&isVirtual, s.tz.MatchIdentifier("virtual"))) ||
			(!isInline && setTrue(&isInline, s.tz.MatchIdentifier("inline"))) ||
			(!isConstExpr && setTrue(&isConstExpr, s.tz.MatchIdentifier("constexpr"))) ||
			(!isStatic && setTrue(&isStatic, s.tz.MatchIdentifier("static")))
	}
	if isVirtual {
		s.w.Key("virtual")
		s.w.Bool(true)
	}
	if isInline {
		s.w.Key("inline")
		s.w.Bool(true)
	}
	if isConstExpr {
		s.w.Key("constexpr")
		s.w.Bool(true)
	}
	if isStatic {
		s.w.Key("static")
		s.w.Bool(true)
	}

	s.w.Key("returnType")
	if !s.parseType() {
		return false
	}

	nameTok, ok := s.tz.GetIdentifier()
	if !ok {
		return s.tz.Error("expected function name")
	}
	s.w.Key("name")
	s.w.String(nameTok.Text)

	if !s.tz.RequireSymbol("(") {
		return false
	}

	s.w.Key("arguments")
	s.w.StartArray()
	if !s.tz.MatchSymbol(")") {
		for {
			s.w.StartObject()

			s.w.Key("type")
			if !s.parseType() {
				return false
			}

			argNameTok, ok := s.tz.GetIdentifier()
			if !ok {
				return s.tz.Error("expected argument name")
			}
			s.w.Key("name")
			s.w.String(argNameTok.Text)

			if s.tz.MatchSymbol("=") {
				if !s.parseDefaultValue() {
					return false
				}
			}

			s.w.EndObject()
			if !s.tz.MatchSymbol(",") {
				break
			}
		}
		if !s.tz.RequireSymbol(")") {
			return false
		}
	}
	s.w.EndArray()

	if s.tz.MatchIdentifier("const") {
		s.w.Key("const")
		s.w.Bool(true)
	}

	if s.tz.MatchSymbol("=") {
		zeroTok, ok := s.tz.GetToken(false, false)
		if !ok || zeroTok.Text != "0" {
			return s.tz.Error("expected '0' after '=' in pure virtual function")
		}
		s.w.Key("abstract")
		s.w.Bool(true)
	}

	s.w.EndObject()

	return s.skipDeclaration()
}

// parseDefaultValue writes a function argument's default value: a typed
// scalar if it's a single constant, otherwise the raw concatenated token
// text up to the next ',' or ')'. Parentheses inside the expression are not
// balanced, so a default such as Vec<int>(1, 2) is cut at its first ','.
func (s *Scanner) parseDefaultValue() bool {
	s.w.Key("defaultValue")

	firstTok, ok := s.tz.GetToken(false, false)
	if !ok {
		return s.tz.Error("expected default value")
	}
	if firstTok.Kind == token.Const {
		s.writeTokenValue(firstTok)
		return true
	}

	raw := firstTok.Text
	for {
		tok, ok := s.tz.GetToken(false, false)
		if !ok {
			break
		}
		if tok.IsSymbol(",") || tok.IsSymbol(")") {
			s.tz.UngetToken(tok)
			break
		}
		raw += tok.Text
	}
	s.w.String(raw)
	return true
}
