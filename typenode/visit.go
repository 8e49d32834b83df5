// Copyright 2018 Josh Lubawy. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typenode

import "github.com/jlubawy/go-hdrscan/jsonw"

// Write renders node to w as a JSON object: any of the const/mutable/
// volatile keys set to true, then type: <tag> plus either name (literal,
// template) with arguments (template, function), or baseType (pointer,
// reference, lreference).
func Write(w *jsonw.Writer, node *Node) {
	w.StartObject()
	if node.IsConst {
		w.Key("const")
		w.Bool(true)
	}
	if node.IsMutable {
		w.Key("mutable")
		w.Bool(true)
	}
	if node.IsVolatile {
		w.Key("volatile")
		w.Bool(true)
	}

	switch node.Kind {
	case Literal:
		w.Key("type")
		w.String("literal")
		w.Key("name")
		w.String(node.Name)

	case Template:
		w.Key("type")
		w.String("template")
		w.Key("name")
		w.String(node.Name)
		w.Key("arguments")
		w.StartArray()
		for _, arg := range node.Arguments {
			Write(w, arg)
		}
		w.EndArray()

	case Pointer:
		w.Key("type")
		w.String("pointer")
		w.Key("baseType")
		Write(w, node.Base)

	case Reference:
		w.Key("type")
		w.String("reference")
		w.Key("baseType")
		Write(w, node.Base)

	case LReference:
		w.Key("type")
		w.String("lreference")
		w.Key("baseType")
		Write(w, node.Base)

	case Function:
		w.Key("type")
		w.String("function")
		w.Key("returnType")
		Write(w, node.Returns)
		w.Key("arguments")
		w.StartArray()
		for _, arg := range node.FuncArgs {
			w.StartObject()
			if arg.Name != "" {
				w.Key("name")
				w.String(arg.Name)
			}
			w.Key("type")
			Write(w, arg.Type)
			w.EndObject()
		}
		w.EndArray()
	}

	w.EndObject()
}
