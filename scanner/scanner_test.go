// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func scanOne(t *testing.T, src string) []interface{} {
	t.Helper()
	s := New(DefaultOptions())
	out, err := s.Scan(src)
	require.NoError(t, err)

	var doc []interface{}
	require.NoError(t, json.Unmarshal(out, &doc))
	return doc
}

// S1: empty enum class with base.
func TestEnumClassWithBase(t *testing.T) {
	doc := scanOne(t, "ENUM() enum class E : uint8_t { };")
	require.Len(t, doc, 1)
	el := doc[0].(map[string]interface{})
	require.Equal(t, "enum", el["type"])
	require.Equal(t, "E", el["name"])
	require.Equal(t, true, el["cxxclass"])
	require.Equal(t, "uint8_t", el["base"])
	require.Empty(t, el["members"])
	require.Equal(t, map[string]interface{}{}, el["meta"])
}

// S2: enum with explicit value.
func TestEnumExplicitValues(t *testing.T) {
	doc := scanOne(t, "ENUM() enum Numbers { Zero, One=1, Two, Three=0 };")
	el := doc[0].(map[string]interface{})
	members := el["members"].([]interface{})
	require.Len(t, members, 4)

	zero := members[0].(map[string]interface{})
	require.Equal(t, "Zero", zero["key"])
	require.Nil(t, zero["value"])

	one := members[1].(map[string]interface{})
	require.Equal(t, "One", one["key"])
	require.Equal(t, "1", one["value"])

	three := members[3].(map[string]interface{})
	require.Equal(t, "Three", three["key"])
	require.Equal(t, "0", three["value"])
}

// S3: include directives.
func TestIncludeDirectives(t *testing.T) {
	doc := scanOne(t, "#include <vector>\n#include \"x.h\"\n")
	require.Len(t, doc, 2)

	first := doc[0].(map[string]interface{})
	require.Equal(t, "include", first["type"])
	require.Equal(t, "vector", first["file"])

	second := doc[1].(map[string]interface{})
	require.Equal(t, "include", second["type"])
	require.Equal(t, "x.h", second["file"])
}

// S4: class with base and annotated properties, access tracked per member.
func TestClassWithBaseAndProperties(t *testing.T) {
	src := "CLASS() class Foo : public Bar {\n" +
		"  PROPERTY() int x;\n" +
		"public:\n" +
		"  PROPERTY() int arr[10];\n" +
		"};\n"
	doc := scanOne(t, src)
	el := doc[0].(map[string]interface{})
	require.Equal(t, "class", el["type"])
	require.Equal(t, false, el["isstruct"])

	parents := el["parents"].([]interface{})
	require.Len(t, parents, 1)
	parent := parents[0].(map[string]interface{})
	require.Equal(t, "public", parent["access"])
	parentName := parent["name"].(map[string]interface{})
	require.Equal(t, "literal", parentName["type"])
	require.Equal(t, "Bar", parentName["name"])

	members := el["members"].([]interface{})
	require.Len(t, members, 2)

	propX := members[0].(map[string]interface{})
	require.Equal(t, "x", propX["name"])
	require.Equal(t, "private", propX["access"])

	propArr := members[1].(map[string]interface{})
	require.Equal(t, "arr", propArr["name"])
	require.Equal(t, "public", propArr["access"])
	require.Equal(t, "10", propArr["elements"])
}

// S5: function with defaulted and templated arguments.
func TestFunctionDefaultedTemplatedArgument(t *testing.T) {
	doc := scanOne(t, "FUNCTION() virtual const String& foo(const Vec<int>& xs, bool on = true) const = 0;")
	el := doc[0].(map[string]interface{})
	require.Equal(t, "function", el["type"])
	require.Equal(t, true, el["virtual"])
	require.Equal(t, true, el["const"])
	require.Equal(t, true, el["abstract"])

	retType := el["returnType"].(map[string]interface{})
	require.Equal(t, "reference", retType["type"])
	baseType := retType["baseType"].(map[string]interface{})
	require.Equal(t, "literal", baseType["type"])
	require.Equal(t, "String", baseType["name"])
	require.Equal(t, true, baseType["const"])

	args := el["arguments"].([]interface{})
	require.Len(t, args, 2)

	xs := args[0].(map[string]interface{})
	require.Equal(t, "xs", xs["name"])
	xsType := xs["type"].(map[string]interface{})
	require.Equal(t, "reference", xsType["type"])
	xsBase := xsType["baseType"].(map[string]interface{})
	require.Equal(t, "template", xsBase["type"])
	require.Equal(t, "Vec", xsBase["name"])

	on := args[1].(map[string]interface{})
	require.Equal(t, "on", on["name"])
	require.Equal(t, true, on["defaultValue"])
}

// S6: nested template >> split.
func TestNestedTemplateShiftSplit(t *testing.T) {
	doc := scanOne(t, "PROPERTY() Map<String, Vec<int>> m;")
	el := doc[0].(map[string]interface{})
	require.Equal(t, "property", el["type"])
	require.Equal(t, "m", el["name"])

	dt := el["dataType"].(map[string]interface{})
	require.Equal(t, "template", dt["type"])
	require.Equal(t, "Map", dt["name"])

	args := dt["arguments"].([]interface{})
	require.Len(t, args, 2)
	require.Equal(t, "String", args[0].(map[string]interface{})["name"])

	inner := args[1].(map[string]interface{})
	require.Equal(t, "template", inner["type"])
	require.Equal(t, "Vec", inner["name"])
	require.Equal(t, "int", inner["arguments"].([]interface{})[0].(map[string]interface{})["name"])
}

func TestNamespaceNesting(t *testing.T) {
	doc := scanOne(t, "namespace outer { CLASS() class Foo {}; }")
	el := doc[0].(map[string]interface{})
	require.Equal(t, "namespace", el["type"])
	require.Equal(t, "outer", el["name"])
	members := el["members"].([]interface{})
	require.Len(t, members, 1)
	require.Equal(t, "class", members[0].(map[string]interface{})["type"])
	_, hasAccess := members[0].(map[string]interface{})["access"]
	require.False(t, hasAccess, "namespace-level member must not carry access")
}

func TestUnrecognizedTopLevelTokenIsSkippedNotError(t *testing.T) {
	s := New(DefaultOptions())
	out, err := s.Scan("int unrelatedGlobal = 5; ENUM() enum class E { };")
	require.NoError(t, err)

	var doc []interface{}
	require.NoError(t, json.Unmarshal(out, &doc))
	require.Len(t, doc, 1)
	require.Equal(t, "enum", doc[0].(map[string]interface{})["type"])
}

func TestMissingRequiredSymbolIsError(t *testing.T) {
	s := New(DefaultOptions())
	_, err := s.Scan("ENUM() enum class E : uint8_t { ")
	require.Error(t, err)
}

func TestCommentAttachesToFollowingFunction(t *testing.T) {
	doc := scanOne(t, "// does a thing\nFUNCTION() void doThing();")
	el := doc[0].(map[string]interface{})
	require.Equal(t, "does a thing", el["comment"])
}

func TestCustomMacroEmitsStandaloneMember(t *testing.T) {
	opts := DefaultOptions()
	opts.CustomMacros = []string{"REGISTER"}
	s := New(opts)
	out, err := s.Scan("REGISTER(Name = \"widget\");")
	require.NoError(t, err)

	var doc []interface{}
	require.NoError(t, json.Unmarshal(out, &doc))
	el := doc[0].(map[string]interface{})
	require.Equal(t, "macro", el["type"])
	require.Equal(t, "REGISTER", el["name"])
	meta := el["meta"].(map[string]interface{})
	require.Equal(t, "widget", meta["Name"])
}
