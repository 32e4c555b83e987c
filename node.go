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

import "unsafe"

const (
	nodeElement = 1 + iota
	nodeLeaf
)

// Node refers to either an [*Element] or a [*Leaf].
// The zero value refers to neither.
// Two Nodes are == when they refer to the same element or leaf.
type Node struct {
	ptr unsafe.Pointer
	typ uint8
}

// Element returns n as an element, or nil if n is a leaf or the zero Node.
func (n Node) Element() *Element {
	if n.typ == nodeElement {
		return (*Element)(n.ptr)
	}
	return nil
}

// Leaf returns n as a leaf, or nil if n is an element or the zero Node.
func (n Node) Leaf() *Leaf {
	if n.typ == nodeLeaf {
		return (*Leaf)(n.ptr)
	}
	return nil
}

// Span returns the source bytes n covers.
// The zero Node's span is invalid.
func (n Node) Span() Span {
	switch n.typ {
	case nodeElement:
		return n.Element().Span()
	case nodeLeaf:
		return n.Leaf().Span()
	default:
		return NullSpan()
	}
}

// ChildCount is zero for leaves.
func (n Node) ChildCount() int {
	return n.Element().ChildCount()
}

// Child returns the i'th child of n, which must be an element.
func (n Node) Child(i int) Node {
	e := n.Element()
	if e == nil {
		panic("asciidoc: Child called on a Node that is not an element")
	}
	return e.Child(i)
}

func (n Node) Text() string {
	switch n.typ {
	case nodeElement:
		return n.Element().Text()
	case nodeLeaf:
		return n.Leaf().Text
	default:
		return ""
	}
}

// AsNode returns a [Node] referring to e,
// or the zero Node if e is nil.
func (e *Element) AsNode() Node {
	if e == nil {
		return Node{}
	}
	return Node{ptr: unsafe.Pointer(e), typ: nodeElement}
}

// A Leaf is one input token at its place in the tree.
type Leaf struct {
	Token
	start  int
	parent *Element
}

// Span returns the source bytes of the token.
func (leaf *Leaf) Span() Span {
	if leaf == nil {
		return NullSpan()
	}
	return Span{Start: leaf.start, End: leaf.start + len(leaf.Text)}
}

// Parent returns the innermost element containing the leaf.
func (leaf *Leaf) Parent() *Element {
	if leaf == nil {
		return nil
	}
	return leaf.parent
}

// AsNode returns a [Node] referring to leaf,
// or the zero Node if leaf is nil.
func (leaf *Leaf) AsNode() Node {
	if leaf == nil {
		return Node{}
	}
	return Node{ptr: unsafe.Pointer(leaf), typ: nodeLeaf}
}
