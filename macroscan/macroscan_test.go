// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package macroscan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsMacroDefinition(t *testing.T) {
	cases := []struct {
		Input string
		IsDef bool
	}{
		{Input: `TEST_FUNC( a, b, c )  (a, b, c)`, IsDef: false},
		{Input: `#define TEST_FUNC( a, b, c )  (a, b, c)`, IsDef: true},
		{Input: `  #  define   TEST_FUNC( a, b, c )  (a, b, c)`, IsDef: true},
	}

	for i, tc := range cases {
		ni := strings.Index(tc.Input, "TEST_FUNC")
		require.NotEqual(t, -1, ni, "case %d", i)
		require.Equal(t, tc.IsDef, isMacroDefinition(tc.Input, ni), "case %d", i)
	}
}

func TestScanStringFindsInvocationsNotDefinitions(t *testing.T) {
	var got []Invocation
	err := ScanString(
		"#define CLASS( a ) (a)\nCLASS( Foo );\n",
		func(inv Invocation) { got = append(got, inv) },
		"CLASS",
	)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "CLASS", got[0].Name)
	require.Equal(t, []string{"Foo"}, got[0].Args)
	require.Equal(t, 2, got[0].Start)
}

func TestScanStringPreservesNestedParens(t *testing.T) {
	var got []Invocation
	err := ScanString(
		`PROPERTY(Default(1,2));`,
		func(inv Invocation) { got = append(got, inv) },
		"PROPERTY",
	)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, []string{"Default(1,2)"}, got[0].Args)
}

func TestScanStringPreservesCommaAndSpaceInsideStringLiteral(t *testing.T) {
	var got []Invocation
	err := ScanString(
		`PROPERTY("a, b");`,
		func(inv Invocation) { got = append(got, inv) },
		"PROPERTY",
	)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, []string{`"a, b"`}, got[0].Args)
}

func TestScanStringMultipleNames(t *testing.T) {
	var got []Invocation
	err := ScanString(
		"CLASS();\nENUM();\n",
		func(inv Invocation) { got = append(got, inv) },
		"CLASS", "ENUM",
	)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "CLASS", got[0].Name)
	require.Equal(t, "ENUM", got[1].Name)
}
