// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

// Options configures which identifiers the scanner treats as annotation
// macros. The zero value is not useful; use DefaultOptions as a starting
// point.
type Options struct {
	// ClassMacro is the identifier that annotates a class or struct
	// definition, e.g. "CLASS".
	ClassMacro string

	// EnumMacro is the identifier that annotates an enum definition,
	// e.g. "ENUM".
	EnumMacro string

	// PropertyMacro is the identifier that annotates a class member
	// variable, e.g. "PROPERTY".
	PropertyMacro string

	// FunctionMacros are the identifiers that annotate member functions,
	// e.g. ["FUNCTION"]. More than one may be configured so separate
	// macros can later be told apart by the "macro" field of the emitted
	// function object.
	FunctionMacros []string

	// CustomMacros are additional bare identifiers that should be
	// recognized as macro invocations of the shape NAME(...) and emitted
	// as a "macro"-typed member, without requiring any particular
	// declaration to follow.
	CustomMacros []string
}

// DefaultOptions returns the scanner's default macro names.
func DefaultOptions() Options {
	return Options{
		ClassMacro:     "CLASS",
		EnumMacro:      "ENUM",
		PropertyMacro:  "PROPERTY",
		FunctionMacros: []string{"FUNCTION"},
	}
}
