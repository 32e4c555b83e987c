// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package dump provides a function to write a parsed AsciiDoc tree
// as indented text, one node per line.
// The output is meant for debugging and golden tests.
package dump

import (
	"io"
	"strconv"
	"strings"

	"go4.org/bytereplacer"
	"zombiezen.com/go/asciidoc"
)

// Options is the set of optional parameters to [Write].
type Options struct {
	// Spans appends each node's byte span to its line.
	Spans bool
	// SkipWhitespace omits whitespace tokens.
	SkipWhitespace bool
	// Indent is the string written once per level of depth.
	// If empty, two spaces are used.
	Indent string
}

// Write writes the tree rooted at node to w.
// A nil opts is the same as the zero Options.
//
// Elements are written as their kind without the "Kind" suffix,
// followed by their level if they have one.
// Leaves are written as their token kind without the "Token" suffix
// followed by their quoted text.
func Write(w io.Writer, node asciidoc.Node, opts *Options) error {
	if opts == nil {
		opts = new(Options)
	}
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}
	ww := &errWriter{w: w}
	asciidoc.Walk(node, &asciidoc.WalkOptions{
		Pre: func(c *asciidoc.Cursor) bool {
			n := c.Node()
			if leaf := n.Leaf(); leaf != nil && opts.SkipWhitespace && leaf.Kind.IsWhitespace() {
				return false
			}
			ww.WriteString(strings.Repeat(indent, c.Depth()))
			writeNode(ww, n)
			if opts.Spans {
				ww.WriteString(" ")
				ww.WriteString(n.Span().String())
			}
			ww.WriteString("\n")
			return ww.err == nil
		},
	})
	return ww.err
}

func writeNode(w *errWriter, n asciidoc.Node) {
	if leaf := n.Leaf(); leaf != nil {
		w.WriteString(strings.TrimSuffix(leaf.Kind.String(), "Token"))
		w.WriteString(` "`)
		w.Write(textEscaper.Replace([]byte(leaf.Text)))
		w.WriteString(`"`)
		return
	}
	e := n.Element()
	w.WriteString(strings.TrimSuffix(e.Kind().String(), "Kind"))
	if level := e.Level(); level > 0 {
		w.WriteString(" level=")
		w.WriteString(strconv.Itoa(level))
	}
}

var textEscaper = bytereplacer.New(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = w.w.Write(p)
	return n, w.err
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	return n, w.err
}
