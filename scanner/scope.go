// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import "github.com/jlubawy/go-hdrscan/token"

// ScopeKind is the kind of container a Scope represents.
type ScopeKind int

const (
	ScopeGlobal ScopeKind = iota
	ScopeNamespace
	ScopeClass
)

// AccessKind is a C++ access specifier.
type AccessKind int

const (
	Public AccessKind = iota
	Protected
	Private
)

func (a AccessKind) String() string {
	switch a {
	case Protected:
		return "protected"
	case Private:
		return "private"
	default:
		return "public"
	}
}

// Scope is one frame of the parser's scope stack.
type Scope struct {
	Kind   ScopeKind
	Name   string
	Access AccessKind
}

// maxScopeDepth bounds the scope stack; exceeding it is a fatal error.
const maxScopeDepth = 64

func (s *Scanner) writeAccess(a AccessKind) {
	s.w.Key("access")
	s.w.String(a.String())
}

// writeCurrentAccess emits "access" only when the current scope is a
// class/struct body; at namespace or global scope it is suppressed.
func (s *Scanner) writeCurrentAccess() {
	if s.scopes[s.top].Kind == ScopeClass {
		s.writeAccess(s.scopes[s.top].Access)
	}
}

func (s *Scanner) pushScope(name string, kind ScopeKind, access AccessKind) bool {
	if s.top == maxScopeDepth-1 {
		return s.tz.Error("scope stack overflow (max depth %d)", maxScopeDepth)
	}
	s.top++
	s.scopes[s.top] = Scope{Kind: kind, Name: name, Access: access}
	return true
}

func (s *Scanner) popScope() {
	s.top--
}

// parseAccessKeyword reports whether tok is one of the access-specifier
// identifiers.
func parseAccessKeyword(tok token.Token) (AccessKind, bool) {
	if tok.Kind != token.Identifier {
		return 0, false
	}
	switch tok.Text {
	case "public":
		return Public, true
	case "protected":
		return Protected, true
	case "private":
		return Private, true
	}
	return 0, false
}
