// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func allTokens(t *testing.T, src string) []Token {
	t.Helper()
	var tz Tokenizer
	tz.Reset(src, 0)
	var toks []Token
	for {
		tok, ok := tz.GetToken(false, false)
		if !ok {
			require.False(t, tz.HasError(), "unexpected tokenizer error: %v", tz.Err())
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestIdentifiersAndKeywords(t *testing.T) {
	toks := allTokens(t, "foo _bar Baz123")
	require.Len(t, toks, 3)
	for _, tok := range toks {
		require.Equal(t, Identifier, tok.Kind)
	}
	require.Equal(t, "foo", toks[0].Text)
	require.Equal(t, "_bar", toks[1].Text)
	require.Equal(t, "Baz123", toks[2].Text)
}

func TestBooleanRewrite(t *testing.T) {
	toks := allTokens(t, "true false")
	require.Len(t, toks, 2)
	require.Equal(t, Const, toks[0].Kind)
	require.Equal(t, BooleanConst, toks[0].ConstKind)
	require.True(t, toks[0].BooleanValue)
	require.False(t, toks[1].BooleanValue)
}

func TestNumericLiterals(t *testing.T) {
	toks := allTokens(t, "42 -7 0xFF 3.14 0.10f")
	require.Len(t, toks, 5)

	require.Equal(t, UInt32Const, toks[0].ConstKind)
	require.EqualValues(t, 42, toks[0].UInt32Value)

	require.Equal(t, Int32Const, toks[1].ConstKind)
	require.EqualValues(t, -7, toks[1].Int32Value)

	require.Equal(t, UInt32Const, toks[2].ConstKind)
	require.EqualValues(t, 255, toks[2].UInt32Value)

	require.Equal(t, RealConst, toks[3].ConstKind)
	require.InDelta(t, 3.14, toks[3].RealValue, 0.0001)

	require.Equal(t, RealConst, toks[4].ConstKind)
	require.InDelta(t, 0.10, toks[4].RealValue, 0.0001)
}

func TestNumericOverflowFallsBackToWiderType(t *testing.T) {
	toks := allTokens(t, "5000000000")
	require.Len(t, toks, 1)
	require.Equal(t, UInt64Const, toks[0].ConstKind)
	require.EqualValues(t, 5000000000, toks[0].UInt64Value)
}

func TestStringLiteralEscapes(t *testing.T) {
	toks := allTokens(t, `"hello\nworld\t\"quoted\""`)
	require.Len(t, toks, 1)
	require.Equal(t, StringConst, toks[0].ConstKind)
	require.Equal(t, "hello\nworld\t\"quoted\"", toks[0].StringValue)
	require.Equal(t, toks[0].StringValue, toks[0].Text)
}

func TestAngleBracketStringForIncludes(t *testing.T) {
	var tz Tokenizer
	tz.Reset("<vector>", 0)
	tok, ok := tz.GetToken(true, false)
	require.True(t, ok)
	require.Equal(t, "vector", tok.Text)
}

func TestTwoCharacterOperators(t *testing.T) {
	toks := allTokens(t, "<< >> -> != <= >= ++ -- += -= *= /= ^= |= &= ~= %= && || == ::")
	want := []string{"<<", ">>", "->", "!=", "<=", ">=", "++", "--", "+=", "-=", "*=", "/=", "^=", "|=", "&=", "~=", "%=", "&&", "||", "==", "::"}
	require.Len(t, toks, len(want))
	for i, w := range want {
		require.Equal(t, w, toks[i].Text)
		require.Equal(t, Symbol, toks[i].Kind)
	}
}

func TestNestedTemplateCloseSplitsWithSeparateBraces(t *testing.T) {
	var tz Tokenizer
	tz.Reset("Vec<int>>", 0)
	// Consume the tokens before the inner template's closing '>'.
	for _, want := range []string{"Vec", "<", "int"} {
		tok, ok := tz.GetToken(false, false)
		require.True(t, ok)
		require.Equal(t, want, tok.Text)
	}
	tok, ok := tz.GetToken(false, true)
	require.True(t, ok)
	require.Equal(t, ">", tok.Text)
	tok, ok = tz.GetToken(false, true)
	require.True(t, ok)
	require.Equal(t, ">", tok.Text)
}

func TestUngetTokenYieldsIdenticalToken(t *testing.T) {
	var tz Tokenizer
	tz.Reset("foo bar", 0)
	tok1, ok := tz.GetToken(false, false)
	require.True(t, ok)
	tz.UngetToken(tok1)
	tok2, ok := tz.GetToken(false, false)
	require.True(t, ok)
	require.Equal(t, tok1, tok2)
}

func TestLineCommentAttachesAsLastComment(t *testing.T) {
	var tz Tokenizer
	tz.Reset("// hello\nfoo", 0)
	tok, ok := tz.GetToken(false, false)
	require.True(t, ok)
	require.Equal(t, "foo", tok.Text)

	c, ok := tz.LastComment()
	require.True(t, ok)
	require.Equal(t, "hello", c.Text)
	require.Equal(t, c.EndLine, tz.Line())
}

func TestBlockCommentStripsStars(t *testing.T) {
	var tz Tokenizer
	tz.Reset("/**\n * line one\n * line two\n */\nfoo", 0)
	tok, ok := tz.GetToken(false, false)
	require.True(t, ok)
	require.Equal(t, "foo", tok.Text)

	c, ok := tz.LastComment()
	require.True(t, ok)
	// The leading blank line from "/**" is preserved; only trailing blank
	// lines are dropped per spec.
	require.Equal(t, "\nline one\nline two", c.Text)
}

func TestCommentNotAdjacentDoesNotReportSameLine(t *testing.T) {
	var tz Tokenizer
	tz.Reset("// detached\n\nfoo", 0)
	_, ok := tz.GetToken(false, false)
	require.True(t, ok)

	c, ok := tz.LastComment()
	require.True(t, ok)
	require.NotEqual(t, c.EndLine, tz.Line())
}

func TestMatchAndRequireSymbol(t *testing.T) {
	var tz Tokenizer
	tz.Reset("; (", 0)
	require.True(t, tz.MatchSymbol(";"))
	require.False(t, tz.MatchSymbol(")"))
	require.True(t, tz.RequireSymbol("("))
}

func TestRequireSymbolSetsStickyError(t *testing.T) {
	var tz Tokenizer
	tz.Reset("foo", 0)
	require.False(t, tz.RequireSymbol(";"))
	require.True(t, tz.HasError())
	require.Error(t, tz.Err())
}
