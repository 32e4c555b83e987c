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
	"sync"

	"github.com/rivo/uniseg"
	"github.com/tidwall/btree"
)

// A Document is the result of parsing a token stream.
// Its embedded [Element] is the root of the tree, of kind [DocumentKind].
// A Document is safe to read from multiple goroutines.
type Document struct {
	Element

	source string
	leaves []Leaf

	indexOnce sync.Once
	// index maps the offset of the last byte of each non-empty leaf to the leaf.
	index btree.Map[int, *Leaf]
}

// Root returns the root element of the document.
func (doc *Document) Root() *Element {
	return &doc.Element
}

// Text returns the concatenated text of every token in the document,
// which is the same as the text of the parsed token stream.
func (doc *Document) Text() string {
	return doc.source
}

// LeafCount returns the number of tokens in the document.
func (doc *Document) LeafCount() int {
	return len(doc.leaves)
}

// Leaf returns the i'th token in the document.
func (doc *Document) Leaf(i int) *Leaf {
	return &doc.leaves[i]
}

// LeafAt returns the leaf containing the byte at the given offset
// or nil if the offset is out of range.
func (doc *Document) LeafAt(offset int) *Leaf {
	doc.indexOnce.Do(doc.buildIndex)
	iter := doc.index.Iter()
	if !iter.Seek(offset) {
		return nil
	}
	leaf := iter.Value()
	if !leaf.Span().Contains(offset) {
		return nil
	}
	return leaf
}

// ElementAt returns the innermost element containing the byte at the given offset
// or nil if the offset is out of range.
func (doc *Document) ElementAt(offset int) *Element {
	return doc.LeafAt(offset).Parent()
}

func (doc *Document) buildIndex() {
	for i := range doc.leaves {
		leaf := &doc.leaves[i]
		if leaf.Text != "" {
			doc.index.Set(leaf.start+len(leaf.Text)-1, leaf)
		}
	}
}

// Position is a location in a document's source.
type Position struct {
	// Line is the 1-based line number.
	Line int
	// Column is the 1-based column, counted in grapheme clusters.
	Column int
}

func (pos Position) String() string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

// Position converts a byte offset into a line and column.
// Offsets out of range are clamped to the start or end of the document.
func (doc *Document) Position(offset int) Position {
	offset = max(0, min(offset, len(doc.source)))
	prefix := doc.source[:offset]
	lineStart := strings.LastIndexByte(prefix, '\n') + 1
	return Position{
		Line:   1 + strings.Count(prefix, "\n"),
		Column: 1 + uniseg.GraphemeClusterCount(prefix[lineStart:]),
	}
}

// Frontmatter returns the document's front matter block
// or nil if the document does not begin with one.
func (doc *Document) Frontmatter() *Element {
	for _, c := range doc.children {
		if leaf := c.Leaf(); leaf != nil {
			if leaf.Kind.IsWhitespace() {
				continue
			}
			return nil
		}
		e := c.Element()
		if e.Kind() == FrontmatterKind {
			return e
		}
		return nil
	}
	return nil
}
