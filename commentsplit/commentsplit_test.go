// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commentsplit

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripComments(t *testing.T) {
	input := strings.Join([]string{
		`/**`,
		` * hello_world.h`,
		` */`,
		``,
		`// a property`,
		`PROPERTY() int x; // trailing`,
		``,
	}, "\n")

	want := strings.Join([]string{
		``,
		``,
		``,
		``,
		``,
		`PROPERTY() int x; `,
		``,
	}, "\n")

	buf := &bytes.Buffer{}
	require.NoError(t, StripComments(buf, strings.NewReader(input)))
	require.Equal(t, want, buf.String())
}

func TestSplitterTokenTypes(t *testing.T) {
	s := NewSplitter(strings.NewReader("int x; // trailing\n"))

	var types []TokenType
	for {
		tt := s.Next()
		if tt == ErrorToken {
			require.Equal(t, io.EOF, s.Err())
			break
		}
		types = append(types, tt)
	}
	require.Equal(t, []TokenType{TextToken, CommentToken}, types)
}
