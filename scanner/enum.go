// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import "github.com/jlubawy/go-hdrscan/token"

// parseEnum handles `ENUM(...) enum [class] Name [: base] { members };`.
func (s *Scanner) parseEnum(startTok token.Token) bool {
	s.w.StartObject()
	s.w.Key("type")
	s.w.String("enum")
	s.w.Key("line")
	s.w.Uint(uint64(startTok.StartLine + 1))
	s.writeCurrentAccess()

	if !s.parseMacroMeta() {
		return false
	}

	if !s.tz.RequireIdentifier("enum") {
		return false
	}
	isClass := s.tz.MatchIdentifier("class")

	nameTok, ok := s.tz.GetIdentifier()
	if !ok {
		return s.tz.Error("expected enum name")
	}
	s.w.Key("name")
	s.w.String(nameTok.Text)

	if isClass {
		s.w.Key("cxxclass")
		s.w.Bool(true)
	}

	if isClass && s.tz.MatchSymbol(":") {
		baseTok, ok := s.tz.GetIdentifier()
		if !ok {
			return s.tz.Error("expected base type after ':' in enum declaration")
		}
		s.w.Key("base")
		s.w.String(baseTok.Text)
	}

	if !s.tz.RequireSymbol("{") {
		return false
	}

	s.w.Key("members")
	s.w.StartArray()
	for {
		memberTok, ok := s.tz.GetIdentifier()
		if !ok {
			break
		}
		s.w.StartObject()
		s.w.Key("key")
		s.w.String(memberTok.Text)

		if s.tz.MatchSymbol("=") {
			value := ""
			for {
				tok, ok := s.tz.GetToken(false, false)
				if !ok {
					break
				}
				if tok.IsSymbol(",") || tok.IsSymbol("}") {
					s.tz.UngetToken(tok)
					break
				}
				value += tok.Text
			}
			s.w.Key("value")
			s.w.String(value)
		}
		s.w.EndObject()

		if !s.tz.MatchSymbol(",") {
			break
		}
	}
	s.w.EndArray()

	if !s.tz.RequireSymbol("}") {
		return false
	}
	s.tz.MatchSymbol(";")

	s.w.EndObject()
	return true
}
