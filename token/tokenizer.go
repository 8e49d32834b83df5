// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import (
	"fmt"
	"math"
	"strconv"
)

const eof = -1

// digraphs is the set of two-character operator symbols the tokenizer
// recognizes. ">>" is intentionally listed here even though it is
// suppressed whenever separateBraces is set, so that nested template
// closings such as Template<U<V>> parse as two single '>' tokens.
var digraphs = map[string]bool{
	"<<": true, ">>": true, "->": true, "!=": true, "<=": true, ">=": true,
	"++": true, "--": true, "+=": true, "-=": true, "*=": true, "/=": true,
	"^=": true, "|=": true, "&=": true, "~=": true, "%=": true,
	"&&": true, "||": true, "==": true, "::": true,
}

// comment accumulates an in-progress comment block across runs of
// whitespace-separated // and /* */ comments.
type comment struct {
	started     bool
	lines       []string
	startLine   int
	endLine     int
	lastIndent  int
	inLineBlock bool // true while the previous line belongs to a // run
}

func (c *comment) reset() {
	*c = comment{}
}

func (c *comment) text() string {
	s := ""
	for i, l := range c.lines {
		if i > 0 {
			s += "\n"
		}
		s += l
	}
	return s
}

// Comment is a finished comment block: text plus the line span it covered.
type Comment struct {
	Text      string
	StartLine int
	EndLine   int
}

// Tokenizer recognizes identifiers, numeric and string literals, and
// operator symbols from an input buffer, consuming // and /* */ comments
// transparently along the way. The zero value is ready to use after Reset.
type Tokenizer struct {
	input  []byte
	length int

	offset int
	line   int

	prevOffset int
	prevLine   int

	cur  comment
	last Comment
	hasLastComment bool

	hasError bool
	err      error
}

// Reset discards any previous state and begins tokenizing input starting
// at the given 0-based line number.
func (t *Tokenizer) Reset(input string, startingLine int) {
	t.input = []byte(input)
	t.length = len(t.input)
	t.offset = 0
	t.line = startingLine
	t.prevOffset = 0
	t.prevLine = startingLine
	t.cur.reset()
	t.last = Comment{}
	t.hasLastComment = false
	t.hasError = false
	t.err = nil
}

// HasError reports whether a sticky tokenization error has been recorded.
func (t *Tokenizer) HasError() bool { return t.hasError }

// Err returns the sticky tokenization error, or nil.
func (t *Tokenizer) Err() error { return t.err }

// Error records a sticky error (only the first one sticks) and returns
// false so callers can write `return t.Error(...)`.
func (t *Tokenizer) Error(format string, args ...interface{}) bool {
	if !t.hasError {
		t.hasError = true
		t.err = fmt.Errorf("line %d: %s", t.line+1, fmt.Sprintf(format, args...))
	}
	return false
}

// LastComment returns the most recently completed comment block and
// whether one is available. It is consumed implicitly by the declaration
// parser's adjacency check, not by this package.
func (t *Tokenizer) LastComment() (Comment, bool) {
	return t.last, t.hasLastComment
}

// Line returns the current 0-based cursor line.
func (t *Tokenizer) Line() int { return t.line }

// getChar returns the next byte and advances the cursor, recording the
// prior position so a single ungetChar can back up. At end of input it
// returns eof but still advances, matching the C original's behavior.
func (t *Tokenizer) getChar() int {
	t.prevOffset, t.prevLine = t.offset, t.line
	if t.offset >= t.length {
		t.offset++
		return eof
	}
	b := t.input[t.offset]
	t.offset++
	if b == '\n' {
		t.line++
	}
	return int(b)
}

// ungetChar backs the cursor up to the position immediately before the
// most recent getChar call. Valid once per getChar.
func (t *Tokenizer) ungetChar() {
	t.offset, t.line = t.prevOffset, t.prevLine
}

// getLeadingChar skips whitespace and comments, returning the next
// significant character (already consumed; callers unget it if unwanted).
func (t *Tokenizer) getLeadingChar() int {
	for {
		c := t.getChar()
		switch {
		case c == eof:
			t.promoteComment()
			return eof

		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			continue

		case c == '/':
			slashOffset, slashLine := t.prevOffset, t.prevLine
			c2 := t.getChar()
			switch c2 {
			case '/':
				t.scanLineComment()
				continue
			case '*':
				if !t.scanBlockComment() {
					return eof
				}
				continue
			default:
				if c2 != eof {
					t.ungetChar()
				}
				t.prevOffset, t.prevLine = slashOffset, slashLine
				t.promoteComment()
				return c
			}

		default:
			t.promoteComment()
			return c
		}
	}
}

// promoteComment finalizes any in-progress comment accumulator into
// LastComment, invoked whenever a non-whitespace, non-comment character is
// about to be returned to the caller.
func (t *Tokenizer) promoteComment() {
	if t.cur.started {
		t.last = Comment{
			Text:      t.cur.text(),
			StartLine: t.cur.startLine,
			EndLine:   t.cur.endLine,
		}
		t.hasLastComment = true
		t.cur.reset()
	}
}

// scanLineComment consumes a // comment's text up to (not including) the
// terminating newline, appending it to the in-progress accumulator.
func (t *Tokenizer) scanLineComment() {
	startLine := t.prevLine // line of the leading '/'
	var raw []byte
	for {
		c := t.getChar()
		if c == eof || c == '\n' {
			break
		}
		raw = append(raw, byte(c))
	}

	trimmed, indent := trimIndent(string(raw))

	if !t.cur.started {
		t.cur.started = true
		t.cur.startLine = startLine
		t.cur.lines = []string{trimmed}
		t.cur.lastIndent = indent
		t.cur.inLineBlock = true
	} else if t.cur.inLineBlock && indent > t.cur.lastIndent {
		last := len(t.cur.lines) - 1
		t.cur.lines[last] += " " + trimmed
	} else {
		t.cur.lines = append(t.cur.lines, trimmed)
		t.cur.lastIndent = indent
		t.cur.inLineBlock = true
	}
	t.cur.endLine = t.line
}

// scanBlockComment consumes a /* ... */ comment, stripping leading
// whitespace and '*' characters from each line and dropping trailing empty
// lines. Returns false (and sets the sticky error) if EOF is reached
// before the closing */.
func (t *Tokenizer) scanBlockComment() bool {
	blockStart := t.line
	var raw []byte
	for {
		c := t.getChar()
		if c == eof {
			t.Error("unterminated block comment")
			return false
		}
		if c == '*' {
			c2 := t.getChar()
			if c2 == '/' {
				break
			}
			if c2 != eof {
				t.ungetChar()
			}
			raw = append(raw, byte(c))
			continue
		}
		raw = append(raw, byte(c))
	}

	lines := splitLines(string(raw))
	for i, l := range lines {
		lines[i] = stripCommentLine(l)
	}
	// drop trailing empty lines
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	if !t.cur.started {
		t.cur.started = true
		t.cur.startLine = blockStart
		t.cur.lines = nil
	}
	t.cur.lines = append(t.cur.lines, lines...)
	t.cur.lastIndent = 0
	t.cur.inLineBlock = false
	t.cur.endLine = t.line
	return true
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

// stripCommentLine trims leading whitespace, then a single leading '*'
// (and any whitespace after it) from a block-comment line.
func stripCommentLine(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\r') {
		i++
	}
	s = s[i:]
	if len(s) > 0 && s[0] == '*' {
		s = s[1:]
		i = 0
		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		s = s[i:]
	}
	return s
}

// trimIndent strips leading whitespace from a // comment's text and
// reports how much was stripped, for the continuation-indentation rule.
func trimIndent(s string) (string, int) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[i:], i
}

func isAlpha(c int) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c int) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c int) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// GetToken reads the next token from the stream. angleBracketsForStrings
// treats a leading '<' as a string literal closed by '>' (used for
// #include <...>). separateBraces suppresses the ">>" digraph so nested
// template closings split into two '>' tokens.
func (t *Tokenizer) GetToken(angleBracketsForStrings, separateBraces bool) (Token, bool) {
	if t.hasError {
		return Token{}, false
	}

	c := t.getLeadingChar()
	if c == eof {
		return Token{}, false
	}
	if t.hasError {
		return Token{}, false
	}

	startOffset, startLine := t.prevOffset, t.prevLine

	switch {
	case isAlpha(c):
		return t.readIdentifier(c, startOffset, startLine)

	case isDigit(c) || ((c == '+' || c == '-') && t.peekIsDigit()):
		return t.readNumber(c, startOffset, startLine)

	case c == '"':
		return t.readString(c, startOffset, startLine, '"')

	case c == '<' && angleBracketsForStrings:
		return t.readString(c, startOffset, startLine, '>')

	default:
		return t.readSymbol(c, startOffset, startLine, separateBraces)
	}
}

// peekIsDigit looks one character ahead without permanently consuming it;
// used to decide whether a leading +/- begins a signed numeric literal.
func (t *Tokenizer) peekIsDigit() bool {
	c := t.getChar()
	digit := isDigit(c)
	if c != eof {
		t.ungetChar()
	}
	return digit
}

func (t *Tokenizer) readIdentifier(c, startOffset, startLine int) (Token, bool) {
	buf := []byte{byte(c)}
	for {
		c = t.getChar()
		if isAlpha(c) || isDigit(c) {
			buf = append(buf, byte(c))
			continue
		}
		if c != eof {
			t.ungetChar()
		}
		break
	}

	text := string(buf)
	tok := Token{Kind: Identifier, Text: text, StartOffset: startOffset, StartLine: startLine}
	if text == "true" || text == "false" {
		tok.Kind = Const
		tok.ConstKind = BooleanConst
		tok.BooleanValue = text == "true"
	}
	return tok, true
}

func (t *Tokenizer) readNumber(c, startOffset, startLine int) (Token, bool) {
	var buf []byte
	neg := false
	if c == '+' || c == '-' {
		neg = c == '-'
		c = t.getChar()
	}

	isHex := false
	isFloat := false
	for {
		switch {
		case isDigit(c):
			buf = append(buf, byte(c))
		case !isHex && (c == 'x' || c == 'X'):
			isHex = true
			buf = append(buf, byte(c))
		case isHex && isHexDigit(c):
			buf = append(buf, byte(c))
		case !isFloat && c == '.':
			isFloat = true
			buf = append(buf, byte(c))
		default:
			if c == 'f' || c == 'F' {
				isFloat = true
				// consumed, not included in text
			} else if c != eof {
				t.ungetChar()
			}
			return t.finishNumber(string(buf), neg, isHex, isFloat, startOffset, startLine)
		}
		c = t.getChar()
	}
}

func (t *Tokenizer) finishNumber(text string, neg, isHex, isFloat bool, startOffset, startLine int) (Token, bool) {
	tok := Token{Kind: Const, Text: text, StartOffset: startOffset, StartLine: startLine}

	if isFloat {
		if neg {
			text = "-" + text
			tok.Text = text
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, t.Error("invalid numeric literal %q", text)
		}
		tok.ConstKind = RealConst
		tok.RealValue = f
		return tok, true
	}

	if neg {
		signed := "-" + text
		iv, err := strconv.ParseInt(signed, 0, 64)
		if err != nil {
			return Token{}, t.Error("invalid numeric literal %q", signed)
		}
		if iv >= math.MinInt32 && iv <= math.MaxInt32 {
			tok.ConstKind = Int32Const
			tok.Int32Value = int32(iv)
		} else {
			tok.ConstKind = Int64Const
			tok.Int64Value = iv
		}
		tok.Text = signed
		return tok, true
	}

	uv, err := strconv.ParseUint(text, 0, 64)
	if err != nil {
		return Token{}, t.Error("invalid numeric literal %q", text)
	}
	if uv <= math.MaxUint32 {
		tok.ConstKind = UInt32Const
		tok.UInt32Value = uint32(uv)
	} else {
		tok.ConstKind = UInt64Const
		tok.UInt64Value = uv
	}
	return tok, true
}

func (t *Tokenizer) readString(c, startOffset, startLine int, closer byte) (Token, bool) {
	var buf []byte
	for {
		c = t.getChar()
		if c == eof {
			return Token{}, t.Error("unterminated string literal")
		}
		if byte(c) == closer {
			break
		}
		if c == '\\' {
			esc := t.getChar()
			switch esc {
			case 'n':
				buf = append(buf, '\n')
			case 't':
				buf = append(buf, '\t')
			case 'r':
				buf = append(buf, '\r')
			case '"':
				buf = append(buf, '"')
			case eof:
				return Token{}, t.Error("unterminated string literal")
			default:
				buf = append(buf, byte(esc))
			}
			continue
		}
		buf = append(buf, byte(c))
	}

	text := string(buf)
	return Token{
		Kind:        Const,
		Text:        text,
		StartOffset: startOffset,
		StartLine:   startLine,
		ConstKind:   StringConst,
		StringValue: text,
	}, true
}

func (t *Tokenizer) readSymbol(c, startOffset, startLine int, separateBraces bool) (Token, bool) {
	text := string(byte(c))

	c2 := t.getChar()
	if c2 != eof {
		combo := text + string(byte(c2))
		if combo == ">>" && separateBraces {
			t.ungetChar()
		} else if digraphs[combo] {
			text = combo
		} else {
			t.ungetChar()
		}
	}

	return Token{Kind: Symbol, Text: text, StartOffset: startOffset, StartLine: startLine}, true
}

// SkipToEndOfLine consumes raw characters up to and including the next
// newline (or EOF), bypassing comment handling entirely, and returns the
// last non-newline character seen. Used by preprocessor directive parsing,
// where a trailing '\\' signals a continuation onto the next line.
func (t *Tokenizer) SkipToEndOfLine() byte {
	var last byte
	for {
		c := t.getChar()
		if c == eof || c == '\n' {
			return last
		}
		last = byte(c)
	}
}

// UngetToken resets the cursor to the start of the given token, making the
// next GetToken return an identical token. Valid once per token read.
func (t *Tokenizer) UngetToken(tok Token) {
	t.offset = tok.StartOffset
	t.line = tok.StartLine
}

// GetIdentifier reads the next token and succeeds only if it is an
// Identifier, ungetting it otherwise.
func (t *Tokenizer) GetIdentifier() (Token, bool) {
	tok, ok := t.GetToken(false, false)
	if !ok {
		return Token{}, false
	}
	if tok.Kind != Identifier {
		t.UngetToken(tok)
		return Token{}, false
	}
	return tok, true
}

// GetConst reads the next token and succeeds only if it is a Const,
// ungetting it otherwise.
func (t *Tokenizer) GetConst() (Token, bool) {
	tok, ok := t.GetToken(false, false)
	if !ok {
		return Token{}, false
	}
	if tok.Kind != Const {
		t.UngetToken(tok)
		return Token{}, false
	}
	return tok, true
}

// MatchIdentifier consumes the next token if it is the Identifier s,
// ungetting it (and returning false) otherwise.
func (t *Tokenizer) MatchIdentifier(s string) bool {
	tok, ok := t.GetToken(false, false)
	if ok && tok.IsIdentifier(s) {
		return true
	}
	if ok {
		t.UngetToken(tok)
	}
	return false
}

// MatchSymbol consumes the next token if it is the Symbol s, ungetting it
// (and returning false) otherwise.
func (t *Tokenizer) MatchSymbol(s string) bool {
	return t.matchSymbol(s, false)
}

// MatchSymbolSeparateBraces is MatchSymbol with separateBraces set, used
// while parsing template argument lists so a trailing ">>" splits.
func (t *Tokenizer) MatchSymbolSeparateBraces(s string) bool {
	return t.matchSymbol(s, true)
}

func (t *Tokenizer) matchSymbol(s string, separateBraces bool) bool {
	tok, ok := t.GetToken(false, separateBraces)
	if ok && tok.Kind == Symbol && tok.Text == s {
		return true
	}
	if ok {
		t.UngetToken(tok)
	}
	return false
}

// RequireIdentifier is MatchIdentifier but records a sticky error on
// mismatch.
func (t *Tokenizer) RequireIdentifier(s string) bool {
	if t.MatchIdentifier(s) {
		return true
	}
	return t.Error("expected identifier %q", s)
}

// RequireSymbol is MatchSymbol but records a sticky error on mismatch.
func (t *Tokenizer) RequireSymbol(s string) bool {
	if t.MatchSymbol(s) {
		return true
	}
	return t.Error("expected symbol %q", s)
}
