// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import "github.com/jlubawy/go-hdrscan/token"

// parseProperty handles `PROPERTY(...) [mutable] [static] Type name [[N]];`.
func (s *Scanner) parseProperty(startTok token.Token) bool {
	s.w.StartObject()
	s.w.Key("type")
	s.w.String("property")
	s.w.Key("line")
	s.w.Uint(uint64(startTok.StartLine + 1))
	s.writeCurrentAccess()

	if !s.parseMacroMeta() {
		return false
	}

	var isMutable, isStatic bool
	for matched := true; matched; {
		matched = (!isMutable && setTrue(&isMutable, s.tz.MatchIdentifier("mutable"))) ||
			(!isStatic && setTrue(&isStatic, s.tz.MatchIdentifier("static")))
	}
	if isMutable {
		s.w.Key("mutable")
		s.w.Bool(true)
	}
	if isStatic {
		s.w.Key("static")
		s.w.Bool(true)
	}

	s.w.Key("dataType")
	if !s.parseType() {
		return false
	}

	nameTok, ok := s.tz.GetIdentifier()
	if !ok {
		return s.tz.Error("expected property name")
	}
	s.w.Key("name")
	s.w.String(nameTok.Text)

	s.w.Key("elements")
	if s.tz.MatchSymbol("[") {
		var elemText string
		if ct, ok := s.tz.GetConst(); ok {
			elemText = ct.Text
		} else if idt, ok := s.tz.GetIdentifier(); ok {
			elemText = idt.Text
		} else {
			return s.tz.Error("expected array size in property declaration")
		}
		s.w.String(elemText)
		if !s.tz.RequireSymbol("]") {
			return false
		}
	} else {
		s.w.Null()
	}

	s.w.EndObject()

	// Consume the remainder of the declaration (any trailing initializer)
	// up to its terminating ';'.
	for {
		tok, ok := s.tz.GetToken(false, false)
		if !ok {
			return true
		}
		if tok.IsSymbol(";") {
			return true
		}
	}
}
