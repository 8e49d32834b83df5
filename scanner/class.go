// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import "github.com/jlubawy/go-hdrscan/token"

// parseClass handles `CLASS(...) [template<...>] class|struct Name [: bases]
// { members };`. Struct bodies default the initial access to public,
// class bodies to private; an unlabeled base-class access defaults to
// private in both cases, including for a struct, whose unlabeled bases C++
// itself treats as public.
func (s *Scanner) parseClass(startTok token.Token) bool {
	s.w.StartObject()
	s.w.Key("type")
	s.w.String("class")
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

	if s.tz.MatchIdentifier("template") {
		if !s.parseClassTemplate() {
			return false
		}
	}

	isStruct := s.tz.MatchIdentifier("struct")
	if !isStruct && !s.tz.RequireIdentifier("class") {
		return false
	}
	s.w.Key("isstruct")
	s.w.Bool(isStruct)

	nameTok, ok := s.tz.GetIdentifier()
	if !ok {
		return s.tz.Error("expected class name")
	}
	s.w.Key("name")
	s.w.String(nameTok.Text)

	if s.tz.MatchSymbol(":") {
		s.w.Key("parents")
		s.w.StartArray()
		for {
			s.w.StartObject()

			access := Private
			if tok, ok := s.tz.GetIdentifier(); ok {
				if a, ok2 := parseAccessKeyword(tok); ok2 {
					access = a
				} else {
					s.tz.UngetToken(tok)
				}
			}
			s.writeAccess(access)

			s.w.Key("name")
			if !s.parseType() {
				return false
			}

			s.w.EndObject()
			if !s.tz.MatchSymbol(",") {
				break
			}
		}
		s.w.EndArray()
	}

	if !s.tz.RequireSymbol("{") {
		return false
	}

	s.w.Key("members")
	s.w.StartArray()

	initialAccess := Public
	if !isStruct {
		initialAccess = Private
	}
	if !s.pushScope(nameTok.Text, ScopeClass, initialAccess) {
		return false
	}
	for !s.tz.MatchSymbol("}") {
		tok, ok := s.tz.GetToken(false, false)
		if !ok {
			return s.tz.Error("unexpected end of input inside class %q", nameTok.Text)
		}
		if !s.parseDeclaration(tok) {
			return false
		}
	}
	s.popScope()

	s.w.EndArray()

	if !s.tz.RequireSymbol(";") {
		return false
	}

	s.w.EndObject()
	return true
}

// parseClassTemplate handles `template <class|typename Name [= Type], ...>`
// immediately preceding a class declaration.
func (s *Scanner) parseClassTemplate() bool {
	s.w.Key("template")
	s.w.StartObject()

	if !s.tz.RequireSymbol("<") {
		return false
	}
	s.w.Key("arguments")
	s.w.StartArray()
	for {
		if !s.parseClassTemplateArgument() {
			return false
		}
		if !s.tz.MatchSymbol(",") {
			break
		}
	}
	s.w.EndArray()
	if !s.tz.RequireSymbol(">") {
		return false
	}

	s.w.EndObject()
	return true
}

func (s *Scanner) parseClassTemplateArgument() bool {
	s.w.StartObject()

	keyTok, ok := s.tz.GetIdentifier()
	if !ok || (keyTok.Text != "class" && keyTok.Text != "typename") {
		return s.tz.Error("expected 'class' or 'typename' in template argument")
	}
	s.w.Key("typeParameterKey")
	s.w.String(keyTok.Text)

	nameTok, ok := s.tz.GetIdentifier()
	if !ok {
		return s.tz.Error("expected identifier in template argument")
	}
	s.w.Key("name")
	s.w.String(nameTok.Text)

	if s.tz.MatchSymbol("=") {
		s.w.Key("defaultType")
		if !s.parseType() {
			return false
		}
	}

	s.w.EndObject()
	return true
}
