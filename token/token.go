// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package token implements the character-level tokenizer for a C++-like
header annotation scanner: identifiers, numeric and string literals, and
one- or two-character operator symbols, with comments consumed
transparently and remembered for later attachment.
*/
package token

// Kind is the coarse classification of a Token.
type Kind int

const (
	// None is the zero value; never produced by a successful GetToken.
	None Kind = iota
	// Symbol is an operator or punctuation token.
	Symbol
	// Identifier is a bare name, possibly rewritten to Const for true/false.
	Identifier
	// Const is a literal value: string, boolean, or a numeric type.
	Const
)

func (k Kind) String() string {
	switch k {
	case Symbol:
		return "Symbol"
	case Identifier:
		return "Identifier"
	case Const:
		return "Const"
	default:
		return "None"
	}
}

// ConstKind further classifies a Const token.
type ConstKind int

const (
	NoConst ConstKind = iota
	StringConst
	BooleanConst
	UInt32Const
	Int32Const
	UInt64Const
	Int64Const
	RealConst
)

// Token is a single lexical unit produced by the Tokenizer.
type Token struct {
	Kind Kind

	// Text is the literal source text of the token. For string constants
	// this is the decoded content, not the raw quoted form.
	Text string

	// StartOffset is the 0-based byte offset of the token's first
	// character in the input buffer.
	StartOffset int

	// StartLine is the 0-based line the token starts on.
	StartLine int

	// ConstKind is only meaningful when Kind == Const.
	ConstKind ConstKind

	// Decoded constant values; only the field matching ConstKind is valid.
	StringValue  string
	BooleanValue bool
	UInt32Value  uint32
	Int32Value   int32
	UInt64Value  uint64
	Int64Value   int64
	RealValue    float64
}

// IsIdentifier reports whether the token is an Identifier with the given text.
func (t Token) IsIdentifier(s string) bool {
	return t.Kind == Identifier && t.Text == s
}

// IsSymbol reports whether the token is a Symbol with the given text.
func (t Token) IsSymbol(s string) bool {
	return t.Kind == Symbol && t.Text == s
}
