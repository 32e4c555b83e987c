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

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// An Element is a composite node in a parsed AsciiDoc tree.
// Elements are immutable once returned by the parser.
type Element struct {
	kind     ElementKind
	level    int
	parent   *Element
	span     Span
	children []Node
}

// Kind returns the type of element
// or zero if the element is nil.
func (e *Element) Kind() ElementKind {
	if e == nil {
		return 0
	}
	return e.kind
}

// Level returns the heading level of a [SectionKind] or [HeadingKind] element.
// It returns zero for other kinds of elements.
func (e *Element) Level() int {
	if e == nil {
		return 0
	}
	return e.level
}

// Span returns the bytes of the document source the element covers,
// or an invalid span if the element is nil.
func (e *Element) Span() Span {
	if e == nil {
		return NullSpan()
	}
	return e.span
}

// Parent returns the element's parent
// or nil if the element is the root of its tree.
func (e *Element) Parent() *Element {
	if e == nil {
		return nil
	}
	return e.parent
}

func (e *Element) Children() []Node {
	if e == nil {
		return nil
	}
	return e.children
}

// ChildCount returns the number of children the element has.
// Calling ChildCount on nil returns 0.
func (e *Element) ChildCount() int {
	if e == nil {
		return 0
	}
	return len(e.children)
}

// Child returns the i'th child of the element.
func (e *Element) Child(i int) Node {
	return e.children[i]
}

// Text returns the concatenated text of every token inside the element.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	sb := new(strings.Builder)
	sb.Grow(e.span.Len())
	appendText(sb, e)
	return sb.String()
}

// appendText writes the leaves under e in document order.
func appendText(sb *strings.Builder, e *Element) {
	type frame struct {
		elem *Element
		next int
	}
	stack := []frame{{elem: e}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.elem.children) {
			stack = stack[:len(stack)-1]
			continue
		}
		child := top.elem.children[top.next]
		top.next++
		if leaf := child.Leaf(); leaf != nil {
			sb.WriteString(leaf.Text)
		} else if elem := child.Element(); elem != nil {
			stack = append(stack, frame{elem: elem})
		}
	}
}

// EntityValue returns the decoded character reference
// of an [HTMLEntityKind] element, like "©" for "&copy;".
// It returns the empty string for other kinds of elements.
func (e *Element) EntityValue() string {
	if e.Kind() != HTMLEntityKind {
		return ""
	}
	return html.UnescapeString(e.Text())
}

// ElementKind is an enumeration of values returned by [*Element.Kind].
type ElementKind uint16

const (
	// DocumentKind is the root of a parsed token stream.
	DocumentKind ElementKind = 1 + iota
	// SectionKind is a heading and everything up to the next heading
	// of the same or a shallower level.
	SectionKind
	// HeadingKind is the heading line of a section.
	HeadingKind
	// TitleKind is a block title, like ".Caption".
	TitleKind
	// BlockKind is a delimited block, like an example block fenced by "====".
	BlockKind
	// ListingKind is a listing or literal block.
	ListingKind
	PassthroughKind
	FrontmatterKind
	// CodeFenceContentKind is the raw content between the fences
	// of a [ListingKind], [PassthroughKind], or [FrontmatterKind] element.
	CodeFenceContentKind
	BlockMacroKind
	InlineMacroKind
	// BlockAttributesKind is a block attribute list, like "[source,java]",
	// or a block ID line, like "[[id]]".
	BlockAttributesKind
	AttributeInBracketsKind
	// BlockIDKind wraps the ID of an anchor so that it can be targeted individually.
	BlockIDKind
	// RefKind is a cross reference, like "<<id,text>>".
	RefKind
	LinkKind
	URLKind
	IncludeTagKind
	AttributeRefKind
	AttributeDeclarationKind
	AttributeDeclarationNameKind
	HTMLEntityKind
	// CellKind is a table cell, starting at its cell separator.
	CellKind
	// ListKind is a run of list items with the same marker.
	ListKind
	// ListItemKind is a bulleted, numbered, or callout list item,
	// starting at its marker.
	ListItemKind
	// DescriptionItemKind is a description list item,
	// starting at its term.
	DescriptionItemKind
	// QuotedKind is text between a matching pair of quote delimiters,
	// like "*bold*".
	QuotedKind
)

// Span is a contiguous range of bytes in a document's source.
type Span struct {
	// Start is the index of the first byte of the span.
	Start int
	// End is the end index (exclusive).
	End int
}

// NullSpan returns an invalid span.
func NullSpan() Span {
	return Span{-1, -1}
}

// IsValid reports whether the span has a non-negative start and end
// with the start at or before the end.
func (span Span) IsValid() bool {
	return span.Start >= 0 && span.End >= 0 && span.Start <= span.End
}

// Len returns the number of bytes in the span
// or 0 if the span is invalid.
func (span Span) Len() int {
	if !span.IsValid() {
		return 0
	}
	return span.End - span.Start
}

// Contains reports whether offset lies within the span.
func (span Span) Contains(offset int) bool {
	return span.IsValid() && span.Start <= offset && offset < span.End
}

func (span Span) String() string {
	if !span.IsValid() {
		return "-"
	}
	return fmt.Sprintf("[%d,%d)", span.Start, span.End)
}
