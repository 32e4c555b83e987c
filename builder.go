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

package asciidoc

import "strings"

// A marker names an element whose start has been fixed
// but whose kind and end are not yet known.
type marker int32

// noMarker is the absence of a marker.
const noMarker marker = -1

const (
	markerOpen = iota
	markerDone
	markerDropped
)

type markerState struct {
	kind  ElementKind
	level int
	start int // token index
	end   int // token index (exclusive), set once done
	state uint8
	elem  *Element

	// pending lists markers completed with doneBefore this one,
	// in the order they were completed.
	pending []marker
	// preceders lists markers that start just before this one
	// and enclose it.
	preceders []marker
}

// production is an entry in the builder's event log:
// either the start or the completion of a marker.
type production struct {
	marker marker
	done   bool
}

// builder is a cursor over a token stream
// that records a log of markers to be turned into a tree.
//
// Markers can be completed in any order the log permits:
// a marker completed with doneBefore ends where another marker starts,
// which lets a parser decide the extent of an element
// after it has already started the element that follows it.
// The tree is only materialized once the whole stream has been read,
// so no element is ever moved after it is created.
type builder struct {
	tokens []Token
	pos    int // index of current token
	offset int // byte offset of current token

	markers []markerState
	prods   []production

	// onWhitespace is called once for every whitespace token skipped.
	onWhitespace func(TokenKind)
}

func newBuilder(tokens []Token, onWhitespace func(TokenKind)) *builder {
	b := &builder{
		tokens:       tokens,
		onWhitespace: onWhitespace,
	}
	b.skipWhitespace()
	return b
}

// eof reports whether every non-whitespace token has been consumed.
func (b *builder) eof() bool {
	return b.pos >= len(b.tokens)
}

// kind returns the current token's kind or zero at end of input.
func (b *builder) kind() TokenKind {
	if b.eof() {
		return 0
	}
	return b.tokens[b.pos].Kind
}

// text returns the current token's text or the empty string at end of input.
func (b *builder) text() string {
	if b.eof() {
		return ""
	}
	return b.tokens[b.pos].Text
}

// token returns the current token or the zero value at end of input.
func (b *builder) token() Token {
	if b.eof() {
		return Token{}
	}
	return b.tokens[b.pos]
}

// advance consumes the current token and any whitespace following it.
func (b *builder) advance() {
	if b.eof() {
		return
	}
	b.offset += len(b.tokens[b.pos].Text)
	b.pos++
	b.skipWhitespace()
}

func (b *builder) skipWhitespace() {
	for b.pos < len(b.tokens) && b.tokens[b.pos].Kind.IsWhitespace() {
		if b.onWhitespace != nil {
			b.onWhitespace(b.tokens[b.pos].Kind)
		}
		b.offset += len(b.tokens[b.pos].Text)
		b.pos++
	}
}

// mark starts a new marker at the current token.
func (b *builder) mark() marker {
	m := marker(len(b.markers))
	b.markers = append(b.markers, markerState{
		start: b.pos,
		state: markerOpen,
	})
	b.prods = append(b.prods, production{marker: m})
	return m
}

func (b *builder) openMarker(m marker) *markerState {
	if m < 0 || int(m) >= len(b.markers) {
		panic("asciidoc: invalid marker")
	}
	st := &b.markers[m]
	if st.state != markerOpen {
		panic("asciidoc: marker already completed or dropped")
	}
	return st
}

// startKind returns the kind of the token m starts at
// or zero if m starts at the end of input.
func (b *builder) startKind(m marker) TokenKind {
	i := b.markers[m].start
	if i >= len(b.tokens) {
		return 0
	}
	return b.tokens[i].Kind
}

// setLevel records the heading level of the element m will become.
func (b *builder) setLevel(m marker, level int) {
	b.openMarker(m).level = level
}

// done completes m as an element of the given kind
// that ends after the last consumed token.
func (b *builder) done(m marker, kind ElementKind) {
	st := b.openMarker(m)
	st.kind = kind
	st.end = b.trimEnd(st.start, b.pos)
	st.state = markerDone
	b.prods = append(b.prods, production{marker: m, done: true})
}

// doneBefore completes m as an element of the given kind
// that ends where the still-open marker before starts.
func (b *builder) doneBefore(m marker, kind ElementKind, before marker) {
	bst := b.openMarker(before)
	st := b.openMarker(m)
	st.kind = kind
	st.end = b.trimEnd(st.start, bst.start)
	st.state = markerDone
	// The completion is spliced into the tree
	// when build reaches the start of before.
	bst.pending = append(bst.pending, m)
}

// precede starts a new marker at the same token as m
// whose element will enclose m's.
func (b *builder) precede(m marker) marker {
	start := b.openMarker(m).start
	p := marker(len(b.markers))
	b.markers = append(b.markers, markerState{
		start: start,
		state: markerOpen,
	})
	b.markers[m].preceders = append(b.markers[m].preceders, p)
	return p
}

// drop discards m without producing an element.
// Tokens consumed after m remain with the enclosing element.
func (b *builder) drop(m marker) {
	st := b.openMarker(m)
	st.state = markerDropped
	if len(st.pending) > 0 || len(st.preceders) > 0 {
		return
	}
	if n := len(b.prods); n > 0 && b.prods[n-1] == (production{marker: m}) {
		b.prods = b.prods[:n-1]
	}
}

// trimEnd moves an element's end back over trailing whitespace,
// leaving whitespace to the enclosing element.
func (b *builder) trimEnd(start, end int) int {
	for end > start && b.tokens[end-1].Kind.IsWhitespace() {
		end--
	}
	return end
}

// build materializes the tree described by the log.
// Every marker must have been completed or dropped.
func (b *builder) build() *Document {
	doc := &Document{
		leaves: make([]Leaf, len(b.tokens)),
	}
	source := new(strings.Builder)
	for i, tok := range b.tokens {
		doc.leaves[i] = Leaf{Token: tok, start: source.Len()}
		source.WriteString(tok.Text)
	}
	doc.source = source.String()
	offset := len(doc.source)
	offsetOf := func(i int) int {
		if i < len(doc.leaves) {
			return doc.leaves[i].start
		}
		return offset
	}

	root := &doc.Element
	root.kind = DocumentKind
	root.span = Span{Start: 0, End: offset}
	stack := []*Element{root}
	next := 0
	attach := func(upTo int) {
		top := stack[len(stack)-1]
		for ; next < upTo; next++ {
			leaf := &doc.leaves[next]
			leaf.parent = top
			top.children = append(top.children, leaf.AsNode())
		}
	}

	var open func(m marker)
	closeElem := func(m marker) {
		st := &b.markers[m]
		attach(st.end)
		top := stack[len(stack)-1]
		if top != st.elem {
			panic("asciidoc: markers completed out of order")
		}
		top.span.End = offsetOf(next)
		stack = stack[:len(stack)-1]
	}
	open = func(m marker) {
		st := &b.markers[m]
		for _, q := range st.pending {
			closeElem(q)
		}
		for _, q := range st.preceders {
			open(q)
		}
		switch st.state {
		case markerDropped:
			return
		case markerOpen:
			panic("asciidoc: marker never completed")
		}
		attach(st.start)
		parent := stack[len(stack)-1]
		e := &Element{
			kind:   st.kind,
			level:  st.level,
			parent: parent,
			span:   Span{Start: offsetOf(next), End: -1},
		}
		parent.children = append(parent.children, e.AsNode())
		stack = append(stack, e)
		st.elem = e
	}

	for _, p := range b.prods {
		if p.done {
			closeElem(p.marker)
		} else {
			open(p.marker)
		}
	}
	if len(stack) != 1 {
		panic("asciidoc: unbalanced marker log")
	}
	attach(len(b.tokens))
	return doc
}
