// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package typenode implements the C++ type-expression sub-parser: it unwinds
cv-qualifiers, pointers, references, templates, and function-pointer
syntax into a tagged tree of Node values, and renders that tree as JSON
through a visitor.
*/
package typenode

// Kind tags the variant a Node holds.
type Kind int

const (
	Literal Kind = iota
	Template
	Pointer
	Reference
	LReference
	Function
)

// Argument is one parameter of a Function node: an optional name and its
// type.
type Argument struct {
	Name string // empty if the parameter was unnamed
	Type *Node
}

// Node is a tagged tree node describing a C++ type expression. Each
// parent exclusively owns its children; there is no sharing and no
// cycles, so the tree's lifetime is just that of the enclosing parse.
type Node struct {
	Kind Kind

	IsConst    bool
	IsVolatile bool
	IsMutable  bool

	// Literal, Template
	Name string

	// Template
	Arguments []*Node

	// Pointer, Reference, LReference
	Base *Node

	// Function
	Returns  *Node
	FuncArgs []Argument
}

// NewLiteral builds a Literal node for the given declarator name.
func NewLiteral(name string) *Node {
	return &Node{Kind: Literal, Name: name}
}

// NewTemplate builds a Template node with the given name and arguments.
func NewTemplate(name string, args []*Node) *Node {
	return &Node{Kind: Template, Name: name, Arguments: args}
}

// Wrap returns a new node of the given indirection kind (Pointer,
// Reference, or LReference) wrapping base.
func Wrap(kind Kind, base *Node) *Node {
	return &Node{Kind: kind, Base: base}
}

// NewFunction builds a Function node; returns must be non-nil.
func NewFunction(returns *Node, args []Argument) *Node {
	return &Node{Kind: Function, Returns: returns, FuncArgs: args}
}
