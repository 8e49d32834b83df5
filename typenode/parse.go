// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typenode

import (
	"github.com/jlubawy/go-hdrscan/token"
)

// Parse parses a single C++ type expression from t, returning the root of
// the resulting tagged tree. It recognizes the grammar:
//
//	type       := cv* declarator cv? template? indirection* fn-tail?
//	cv         := 'const' | 'volatile' | 'mutable'
//	declarator := ['class'|'struct'|'typename']? name ('::' name)*
//	template   := '<' type (',' type)* '>'
//	indirection := ('&' | '&&' | '*') 'const'?
//	fn-tail    := '(' ['*'] ')' '(' [type [name] (',' type [name])*] ')'
func Parse(t *token.Tokenizer) (*Node, bool) {
	isConst, isVolatile, isMutable := matchCVQualifiers(t)

	declarator, ok := parseDeclarator(t)
	if !ok {
		return nil, false
	}

	// Postfix const specifier.
	if t.MatchIdentifier("const") {
		isConst = true
	}

	var node *Node
	if t.MatchSymbolSeparateBraces("<") {
		args, ok := parseTemplateArguments(t)
		if !ok {
			return nil, false
		}
		node = NewTemplate(declarator, args)
	} else {
		node = NewLiteral(declarator)
	}
	node.IsConst = isConst

	for {
		tok, ok := t.GetToken(false, false)
		if !ok {
			break
		}
		switch {
		case tok.IsSymbol("&"):
			node = Wrap(Reference, node)
		case tok.IsSymbol("&&"):
			node = Wrap(LReference, node)
		case tok.IsSymbol("*"):
			node = Wrap(Pointer, node)
		default:
			t.UngetToken(tok)
			goto doneIndirection
		}
		if t.MatchIdentifier("const") {
			node.IsConst = true
		}
	}
doneIndirection:

	if t.MatchSymbol("(") {
		t.MatchSymbol("*") // optional C-style function-pointer marker
		if !t.RequireSymbol(")") {
			return nil, false
		}
		if !t.RequireSymbol("(") {
			return nil, false
		}

		var args []Argument
		if !t.MatchSymbol(")") {
			for {
				argType, ok := Parse(t)
				if !ok {
					return nil, false
				}

				name := ""
				if nameTok, ok := t.GetToken(false, false); ok {
					if nameTok.Kind == token.Identifier {
						name = nameTok.Text
					} else {
						t.UngetToken(nameTok)
					}
				}

				args = append(args, Argument{Name: name, Type: argType})

				if !t.MatchSymbol(",") {
					break
				}
			}
			if !t.RequireSymbol(")") {
				return nil, false
			}
		}

		node = NewFunction(node, args)
	}

	node.IsVolatile = isVolatile
	node.IsMutable = isMutable

	return node, true
}

// matchCVQualifiers repeatedly matches const/volatile/mutable in any
// order, each at most once.
func matchCVQualifiers(t *token.Tokenizer) (isConst, isVolatile, isMutable bool) {
	for matched := true; matched; {
		matched = (!isConst && setTrue(&isConst, t.MatchIdentifier("const"))) ||
			(!isVolatile && setTrue(&isVolatile, t.MatchIdentifier("volatile"))) ||
			(!isMutable && setTrue(&isMutable, t.MatchIdentifier("mutable")))
	}
	return
}

func setTrue(dst *bool, v bool) bool {
	if v {
		*dst = true
	}
	return v
}

// parseDeclarator parses an optional class/struct/typename keyword
// followed by a possibly ::-qualified name.
func parseDeclarator(t *token.Tokenizer) (string, bool) {
	t.MatchIdentifier("class")
	t.MatchIdentifier("struct")
	t.MatchIdentifier("typename")

	declarator := ""
	first := true
	for {
		if t.MatchSymbol("::") {
			declarator += "::"
		} else if !first {
			break
		}
		first = false

		tok, ok := t.GetIdentifier()
		if !ok {
			return "", t.Error("expected identifier in type name")
		}
		declarator += tok.Text
	}
	return declarator, true
}

func parseTemplateArguments(t *token.Tokenizer) ([]*Node, bool) {
	var args []*Node
	for {
		arg, ok := Parse(t)
		if !ok {
			return nil, false
		}
		args = append(args, arg)
		if !t.MatchSymbolSeparateBraces(",") {
			break
		}
	}
	if !t.MatchSymbolSeparateBraces(">") {
		t.Error("expected closing '>' in template argument list")
		return nil, false
	}
	return args, true
}
