// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

// parseNamespace handles `namespace Name { ... }`. Access specifiers have
// no meaning at namespace scope; the pushed scope always reports Public
// and writeCurrentAccess suppresses "access" outside of a class body
// regardless.
func (s *Scanner) parseNamespace() bool {
	s.w.StartObject()
	s.w.Key("type")
	s.w.String("namespace")

	nameTok, ok := s.tz.GetIdentifier()
	if !ok {
		return s.tz.Error("expected namespace name")
	}
	s.w.Key("name")
	s.w.String(nameTok.Text)

	if !s.tz.RequireSymbol("{") {
		return false
	}

	s.w.Key("members")
	s.w.StartArray()

	if !s.pushScope(nameTok.Text, ScopeNamespace, Public) {
		return false
	}
	for !s.tz.MatchSymbol("}") {
		tok, ok := s.tz.GetToken(false, false)
		if !ok {
			return s.tz.Error("unexpected end of input inside namespace %q", nameTok.Text)
		}
		if !s.parseDeclaration(tok) {
			return false
		}
	}
	s.popScope()

	s.w.EndArray()
	s.w.EndObject()
	return true
}
