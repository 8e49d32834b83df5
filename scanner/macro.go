// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import "github.com/jlubawy/go-hdrscan/token"

// parseCustomMacro handles a user-configured bare macro invocation
// NAME(...) that stands alone rather than annotating a following
// declaration.
func (s *Scanner) parseCustomMacro(tok token.Token, macroName string) bool {
	s.w.StartObject()
	s.w.Key("type")
	s.w.String("macro")
	s.w.Key("name")
	s.w.String(macroName)
	s.w.Key("line")
	s.w.Uint(uint64(tok.StartLine + 1))
	s.writeCurrentAccess()

	if !s.parseMacroMeta() {
		return false
	}

	s.w.EndObject()
	return true
}
