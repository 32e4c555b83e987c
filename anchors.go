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
	"strings"

	"golang.org/x/text/unicode/norm"
)

// A type that implements AnchorMatcher
// can be checked for the presence of anchors.
type AnchorMatcher interface {
	MatchAnchor(normalizedID string) bool
}

// Anchor is a block ID declared in a document.
type Anchor struct {
	// ID is the [BlockIDKind] element that declared the anchor.
	ID *Element
	// Label is the anchor's reference text, like "Introduction" in
	// "[[intro,Introduction]]", or the empty string if none was given.
	Label string
}

// AnchorMap is a mapping of normalized IDs to anchors.
type AnchorMap map[string]Anchor

// NormalizeID returns the form of an ID used as an [AnchorMap] key.
// Surrounding whitespace is removed
// and the ID is put into Unicode Normalization Form C.
func NormalizeID(id string) string {
	return norm.NFC.String(strings.TrimSpace(id))
}

// MatchAnchor reports whether the normalized ID appears in the map.
func (m AnchorMap) MatchAnchor(normalizedID string) bool {
	_, ok := m[normalizedID]
	return ok
}

// Extract adds any anchors declared in node to the map.
// In case of conflicts,
// Extract will not replace any existing anchors in the map
// and will use the first declaration in source order.
// Extract does not check whether references to the anchors exist.
func (m AnchorMap) Extract(node Node) {
	stack := []Node{node}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e := curr.Element()
		if e == nil {
			continue
		}
		if e.Kind() != BlockIDKind {
			for i := e.ChildCount() - 1; i >= 0; i-- {
				stack = append(stack, e.Child(i))
			}
			continue
		}
		id := NormalizeID(e.Text())
		if _, exists := m[id]; id == "" || exists {
			continue
		}
		m[id] = Anchor{
			ID:    e,
			Label: anchorLabel(e),
		}
	}
}

// anchorLabel returns the reference text following an ID
// in the same anchor.
func anchorLabel(id *Element) string {
	parent := id.Parent()
	if parent == nil {
		return ""
	}
	found := false
	for _, c := range parent.Children() {
		if !found {
			found = c == id.AsNode()
			continue
		}
		leaf := c.Leaf()
		switch {
		case leaf == nil:
			return ""
		case leaf.Kind == BlockRefTextToken:
			return strings.TrimSpace(leaf.Text)
		case leaf.Kind == BlockIDEndToken || leaf.Kind == InlineIDEndToken || leaf.Kind == BibEndToken:
			return ""
		}
	}
	return ""
}
