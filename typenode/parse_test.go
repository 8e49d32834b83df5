// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typenode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jlubawy/go-hdrscan/token"
)

func parseOne(t *testing.T, src string) *Node {
	t.Helper()
	var tz token.Tokenizer
	tz.Reset(src, 0)
	node, ok := Parse(&tz)
	require.True(t, ok, "parse error: %v", tz.Err())
	return node
}

func TestLiteral(t *testing.T) {
	n := parseOne(t, "int")
	require.Equal(t, Literal, n.Kind)
	require.Equal(t, "int", n.Name)
	require.False(t, n.IsConst)
}

func TestConstReferenceLiteral(t *testing.T) {
	n := parseOne(t, "const String&")
	require.Equal(t, Reference, n.Kind)
	require.Equal(t, Literal, n.Base.Kind)
	require.True(t, n.Base.IsConst)
}

func TestQualifiedDeclarator(t *testing.T) {
	n := parseOne(t, "foo::Bar::Baz")
	require.Equal(t, "foo::Bar::Baz", n.Name)
}

func TestPointerAndPostfixConst(t *testing.T) {
	n := parseOne(t, "int* const")
	require.Equal(t, Pointer, n.Kind)
	require.True(t, n.IsConst)
	require.Equal(t, "int", n.Base.Name)
}

func TestRvalueReference(t *testing.T) {
	n := parseOne(t, "String&&")
	require.Equal(t, LReference, n.Kind)
}

func TestTemplateWithNestedTemplateAndShiftSplit(t *testing.T) {
	n := parseOne(t, "Map<String, Vec<int>>")
	require.Equal(t, Template, n.Kind)
	require.Equal(t, "Map", n.Name)
	require.Len(t, n.Arguments, 2)
	require.Equal(t, Literal, n.Arguments[0].Kind)
	require.Equal(t, "String", n.Arguments[0].Name)
	require.Equal(t, Template, n.Arguments[1].Kind)
	require.Equal(t, "Vec", n.Arguments[1].Name)
	require.Equal(t, "int", n.Arguments[1].Arguments[0].Name)
}

func TestFunctionPointerTail(t *testing.T) {
	n := parseOne(t, "void(*)(int, const String&)")
	require.Equal(t, Function, n.Kind)
	require.Equal(t, "void", n.Returns.Name)
	require.Len(t, n.FuncArgs, 2)
	require.Equal(t, "int", n.FuncArgs[0].Type.Name)
	require.Equal(t, Reference, n.FuncArgs[1].Type.Kind)
}

func TestVolatileMutableAttachToOutermostNode(t *testing.T) {
	n := parseOne(t, "mutable volatile int*")
	require.Equal(t, Pointer, n.Kind)
	require.True(t, n.IsVolatile)
	require.True(t, n.IsMutable)
	require.False(t, n.Base.IsVolatile)
}
