// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import "github.com/jlubawy/go-hdrscan/token"

// parseMacroMeta parses the parenthesized argument list of an annotation
// macro invocation, e.g. CLASS(Serializable, Pool(Size = 128)), and emits it as
// a "meta" object whose keys are the bare identifiers and whose values are
// either a nested meta object, a literal (for name = value), or null (for
// a bare name).
func (s *Scanner) parseMacroMeta() bool {
	s.w.Key("meta")
	if !s.tz.RequireSymbol("(") {
		return false
	}
	if !s.parseMetaSequence() {
		return false
	}
	s.tz.MatchSymbol(";")
	return true
}

func (s *Scanner) parseMetaSequence() bool {
	s.w.StartObject()
	if !s.tz.MatchSymbol(")") {
		for {
			keyTok, ok := s.tz.GetIdentifier()
			if !ok {
				return s.tz.Error("expected identifier in macro meta")
			}
			s.w.Key(keyTok.Text)

			switch {
			case s.tz.MatchSymbol("="):
				valTok, ok := s.tz.GetToken(false, false)
				if !ok {
					return s.tz.Error("expected value after '=' in macro meta")
				}
				s.writeTokenValue(valTok)
			case s.tz.MatchSymbol("("):
				if !s.parseMetaSequence() {
					return false
				}
			default:
				s.w.Null()
			}

			if !s.tz.MatchSymbol(",") {
				break
			}
		}
		s.tz.MatchSymbol(")")
	}
	s.w.EndObject()
	return true
}

// writeTokenValue renders a single already-read token as a JSON scalar:
// a typed value for Const tokens, otherwise its raw text.
func (s *Scanner) writeTokenValue(tok token.Token) {
	if tok.Kind == token.Const {
		switch tok.ConstKind {
		case token.BooleanConst:
			s.w.Bool(tok.BooleanValue)
		case token.UInt32Const:
			s.w.Uint(uint64(tok.UInt32Value))
		case token.Int32Const:
			s.w.Int(int64(tok.Int32Value))
		case token.UInt64Const:
			s.w.Uint(tok.UInt64Value)
		case token.Int64Const:
			s.w.Int(tok.Int64Value)
		case token.RealConst:
			s.w.Double(tok.RealValue)
		case token.StringConst:
			s.w.String(tok.StringValue)
		default:
			s.w.String(tok.Text)
		}
		return
	}
	s.w.String(tok.Text)
}
