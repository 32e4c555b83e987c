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

// List and paragraph frames share the block stack with delimited blocks.
// They have no opening token,
// so a delimiter never matches them
// and closing a delimited block closes any of them left open inside it.

// isListMarker reports whether a token of this kind can start a list item.
func (k TokenKind) isListMarker() bool {
	return k == EnumerationToken || k == BulletToken || k == DescriptionEndToken || k == CalloutToken
}

func (f blockFrame) isList() bool {
	return f.kind == ListKind || f.kind == ListItemKind || f.kind == DescriptionItemKind
}

func (f blockFrame) isParagraph() bool {
	return f.kind == BlockKind && f.tok == 0
}

func (dp *docParser) top() (blockFrame, bool) {
	if len(dp.blocks) == 0 {
		return blockFrame{}, false
	}
	return dp.blocks[len(dp.blocks)-1], true
}

func (dp *docParser) inParagraph() bool {
	f, ok := dp.top()
	return ok && f.isParagraph()
}

// startParagraph opens a paragraph at the pending pre-block
// or the current token.
// An open paragraph is closed first, so paragraphs never nest.
func (dp *docParser) startParagraph() {
	dp.endParagraph()
	dp.blocks = append(dp.blocks, blockFrame{
		kind: BlockKind,
		m:    dp.takePreBlock(),
	})
}

// endParagraph closes the innermost frame if it is a paragraph.
func (dp *docParser) endParagraph() {
	if dp.inParagraph() {
		f := dp.popBlock()
		dp.closeBefore(f.m, f.kind)
	}
}

// endLists closes the lists and list items on top of the block stack.
func (dp *docParser) endLists() {
	for {
		f, ok := dp.top()
		if !ok || !f.isList() {
			return
		}
		dp.popBlock()
		dp.closeBefore(f.m, f.kind)
	}
}

// listSign returns the text that identifies which list an item marker belongs to.
// Numbered markers only differ in their number or letter,
// so "1." and "b." both continue a list of "." items.
func listSign(tok Token) string {
	sign := strings.TrimSpace(tok.Text)
	switch tok.Kind {
	case EnumerationToken:
		if t := strings.TrimLeft(sign, "0123456789"); t != sign {
			return t
		}
		if sign != "" && ('a' <= sign[0] && sign[0] <= 'z' || 'A' <= sign[0] && sign[0] <= 'Z') {
			return sign[1:]
		}
	case CalloutToken:
		return "<>"
	}
	return sign
}

// openItem returns the index of the innermost open item with the given sign
// among the list frames on top of the block stack,
// or -1 if there is none.
func (dp *docParser) openItem(sign string) int {
	for i := len(dp.blocks) - 1; i >= 0; i-- {
		f := dp.blocks[i]
		if !f.isList() {
			break
		}
		if f.kind != ListKind && f.delimiter == sign {
			return i
		}
	}
	return -1
}

// startListItem opens a list item at a list marker.
//
// An item with the same sign as an open item is its sibling:
// the open item and anything nested in it are closed
// and the new item joins the same list.
// Otherwise the item starts a new list nested in the current item, if any.
// A description item needs its term as a pending pre-block;
// a separator without one is left as text.
func (dp *docParser) startListItem() {
	tok := dp.b.token()
	sign := listSign(tok)
	kind := ListItemKind
	if tok.Kind == DescriptionEndToken {
		if !dp.preBlockIsTerm() {
			return
		}
		kind = DescriptionItemKind
	}

	sibling := false
	if i := dp.openItem(sign); i >= 0 {
		for len(dp.blocks) > i {
			f := dp.popBlock()
			dp.closeBefore(f.m, f.kind)
		}
		sibling = true
	}

	m := dp.takePreBlock()
	if !sibling {
		list := m
		if kind == ListItemKind {
			// Decorators belong to the list,
			// and the item starts at its marker.
			m = dp.b.mark()
		} else {
			list = dp.b.precede(m)
		}
		dp.blocks = append(dp.blocks, blockFrame{
			delimiter: sign,
			kind:      ListKind,
			m:         list,
		})
	}
	dp.blocks = append(dp.blocks, blockFrame{
		delimiter: sign,
		kind:      kind,
		m:         m,
	})
}

// parseContinuation consumes a list continuation.
// The next block then stays inside the current list item
// unless more than one blank line follows.
// Outside of a list it is plain text.
func (dp *docParser) parseContinuation() {
	if f, ok := dp.top(); !ok || !f.isList() {
		dp.dropPreBlock()
		dp.b.advance()
		return
	}
	dp.newLines = 0
	dp.b.advance()
	if !dp.b.eof() && dp.newLines > 2 {
		dp.endLists()
		dp.continuation = false
		return
	}
	dp.continuation = true
}
