// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package jsonw is a streaming JSON event emitter: a pretty-printer exposing
the primitive operations StartObject/EndObject/StartArray/EndArray/
Key/String/Bool/Int/Uint/Double/Null, plus Flush and Error. scanner and
typenode only ever call through this interface; how the bytes are actually
produced, and how commas are placed between siblings, is this package's
concern alone.
*/
package jsonw

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

type frame struct {
	isObject bool
	count    int
}

// Writer streams well-formed JSON to an underlying io.Writer. Every
// StartObject/StartArray must be matched by a corresponding
// EndObject/EndArray before the enclosing container closes; keys must
// precede their values. Pretty-printing is always on.
type Writer struct {
	s     *jsoniter.Stream
	stack []frame
}

// New returns a Writer that streams pretty-printed JSON to w.
func New(w io.Writer) *Writer {
	cfg := jsoniter.Config{IndentionStep: 2}.Froze()
	return &Writer{s: jsoniter.NewStream(cfg, w, 4096)}
}

// beforeValue inserts a separating comma when the enclosing container is
// an array and this is not its first element; it is a no-op directly
// inside an object, where Key already handles pair separation.
func (w *Writer) beforeValue() {
	if len(w.stack) == 0 {
		return
	}
	f := &w.stack[len(w.stack)-1]
	if !f.isObject {
		if f.count > 0 {
			w.s.WriteMore()
		}
		f.count++
	}
}

func (w *Writer) push(isObject bool) {
	w.stack = append(w.stack, frame{isObject: isObject})
}

func (w *Writer) pop() {
	w.stack = w.stack[:len(w.stack)-1]
}

func (w *Writer) StartObject() {
	w.beforeValue()
	w.s.WriteObjectStart()
	w.push(true)
}

func (w *Writer) EndObject() {
	w.s.WriteObjectEnd()
	w.pop()
}

func (w *Writer) StartArray() {
	w.beforeValue()
	w.s.WriteArrayStart()
	w.push(false)
}

func (w *Writer) EndArray() {
	w.s.WriteArrayEnd()
	w.pop()
}

// Key emits an object member name, inserting a separating comma against
// the previous member of the same object if needed.
func (w *Writer) Key(k string) {
	f := &w.stack[len(w.stack)-1]
	if f.count > 0 {
		w.s.WriteMore()
	}
	f.count++
	w.s.WriteObjectField(k)
}

// String emits a string value.
func (w *Writer) String(s string) { w.beforeValue(); w.s.WriteString(s) }

// Bool emits a boolean value.
func (w *Writer) Bool(b bool) { w.beforeValue(); w.s.WriteBool(b) }

// Int emits a signed 64-bit integer value.
func (w *Writer) Int(i int64) { w.beforeValue(); w.s.WriteInt64(i) }

// Uint emits an unsigned 64-bit integer value.
func (w *Writer) Uint(u uint64) { w.beforeValue(); w.s.WriteUint64(u) }

// Double emits a float64 value.
func (w *Writer) Double(f float64) { w.beforeValue(); w.s.WriteFloat64(f) }

// Null emits a JSON null.
func (w *Writer) Null() { w.beforeValue(); w.s.WriteNil() }

// Flush flushes any buffered output.
func (w *Writer) Flush() error { return w.s.Flush() }

// Error returns the first error recorded by the underlying stream.
func (w *Writer) Error() error { return w.s.Error }
