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
	"log/slog"
	"strings"
)

// blockFrame is an open delimited block or table cell.
type blockFrame struct {
	// delimiter is the trimmed fence text.
	// For cells, it is the last character of the cell separator.
	delimiter string
	tok       TokenKind
	kind      ElementKind // BlockKind or CellKind
	m         marker
}

func (dp *docParser) popBlock() blockFrame {
	f := dp.blocks[len(dp.blocks)-1]
	dp.blocks = dp.blocks[:len(dp.blocks)-1]
	return f
}

// closeBlocks completes every open block at the current position.
func (dp *docParser) closeBlocks() {
	for len(dp.blocks) > 0 {
		f := dp.popBlock()
		dp.b.done(f.m, f.kind)
	}
}

// parseBlock handles a block delimiter or a cell separator.
//
// A delimiter closes the nearest open block
// that was opened by a token of the same kind and text,
// first closing any blocks and cells still open inside it.
// Otherwise it opens a new block nested inside the innermost one.
// Two blocks opened with the same fence can therefore never both be open:
// the second occurrence always closes the first.
func (dp *docParser) parseBlock() {
	tok := dp.b.token()
	delim := strings.TrimSpace(tok.Text)
	if tok.Kind == CellSeparatorToken {
		dp.parseCellSeparator(delim)
		return
	}

	if i := dp.matchingBlock(tok.Kind, delim); i >= 0 {
		dp.dropPreBlock()
		dp.closeBlocksAbove(i)
		dp.b.advance()
		f := dp.popBlock()
		dp.b.done(f.m, f.kind)
		return
	}

	dp.blocks = append(dp.blocks, blockFrame{
		delimiter: delim,
		tok:       tok.Kind,
		kind:      BlockKind,
		m:         dp.takePreBlock(),
	})
	dp.b.advance()
}

// matchingBlock returns the index of the innermost frame
// opened by a token of the given kind and delimiter
// or -1 if there is none.
func (dp *docParser) matchingBlock(k TokenKind, delim string) int {
	for i := len(dp.blocks) - 1; i >= 0; i-- {
		if f := dp.blocks[i]; f.tok == k && f.delimiter == delim {
			return i
		}
	}
	return -1
}

// closeBlocksAbove completes the frames nested inside the frame at index i
// at the current position.
func (dp *docParser) closeBlocksAbove(i int) {
	for len(dp.blocks)-1 > i {
		f := dp.popBlock()
		dp.log.Debug("Closing block left open inside another",
			slog.String("delimiter", f.delimiter),
			slog.Int("offset", dp.b.offset))
		dp.b.done(f.m, f.kind)
	}
}

// parseCellSeparator starts a new cell,
// ending the previous cell of the same table first.
func (dp *docParser) parseCellSeparator(sep string) {
	if sep == "" {
		dp.dropPreBlock()
		dp.b.advance()
		return
	}
	// The last character identifies the table's separator,
	// as in "2+|" or "a|".
	sep = sep[len(sep)-1:]
	if i := dp.matchingBlock(CellSeparatorToken, sep); i >= 0 {
		dp.dropPreBlock()
		dp.closeBlocksAbove(i)
		f := dp.popBlock()
		dp.b.done(f.m, f.kind)
	}
	dp.blocks = append(dp.blocks, blockFrame{
		delimiter: sep,
		tok:       CellSeparatorToken,
		kind:      CellKind,
		m:         dp.takePreBlock(),
	})
	dp.b.advance()
}

// parseFenced captures a listing, literal, passthrough, or front matter block.
// Its content is taken verbatim up to a token of the same kind
// with the same trimmed text as the opening fence.
// Block macros inside the content are still recognized.
// A missing closing fence ends the block at the end of input.
func (dp *docParser) parseFenced(kind ElementKind) {
	m := dp.takePreBlock()
	open := dp.b.token()
	fence := strings.TrimSpace(open.Text)
	dp.b.advance()

	contentStart := dp.b.pos
	content := dp.b.mark()
	for !dp.b.eof() {
		if dp.b.kind() == open.Kind && strings.TrimSpace(dp.b.text()) == fence {
			dp.endFenceContent(content, contentStart)
			dp.b.advance()
			dp.b.done(m, kind)
			return
		}
		if dp.b.kind() == BlockMacroIDToken {
			dp.parseBlockMacro()
		} else {
			dp.b.advance()
		}
	}
	dp.endFenceContent(content, contentStart)
	dp.b.done(m, kind)
}

func (dp *docParser) endFenceContent(content marker, start int) {
	if dp.b.pos == start {
		dp.b.drop(content)
		return
	}
	dp.b.done(content, CodeFenceContentKind)
}

// parseListingNoDelimiter parses an indented literal paragraph.
// It ends at the first blank line or non-literal token.
func (dp *docParser) parseListingNoDelimiter() {
	m := dp.takePreBlock()
	for dp.b.kind() == ListingTextToken {
		dp.newLines = 0
		dp.b.advance()
		if !dp.b.eof() && dp.newLines > 1 {
			break
		}
	}
	dp.b.done(m, ListingKind)
}

// blockMacroTokens is the set of tokens that may follow a block macro's name
// on its line.
var blockMacroTokens = tokenSet(
	BlockMacroBodyToken,
	AttributeRefStartToken,
	AttributeRefToken,
	AttrNameToken,
	AttrValueToken,
	SeparatorToken,
	AttrsStartToken,
	AttrsEndToken,
	AssignmentToken,
	SingleQuoteToken,
	DoubleQuoteToken,
	BlockMacroIDToken,
	AttrListSepToken,
	AttrListOpToken,
	URLStartToken,
	URLLinkToken,
	URLEmailToken,
	URLPrefixToken,
	InlineMacroIDToken,
	AttributeNameStartToken,
	LBracketToken,
	RBracketToken,
	LTToken,
	GTToken,
	LParenToken,
	RParenToken,
	BoldStartToken,
	BoldEndToken,
	DoubleBoldStartToken,
	DoubleBoldEndToken,
	ItalicStartToken,
	ItalicEndToken,
	DoubleItalicStartToken,
	DoubleItalicEndToken,
	MonoStartToken,
	MonoEndToken,
	DoubleMonoStartToken,
	DoubleMonoEndToken,
	TypographicSingleQuoteStartToken,
	TypographicSingleQuoteEndToken,
	TypographicDoubleQuoteStartToken,
	TypographicDoubleQuoteEndToken,
)

// parseBlockMacro parses a block macro like "image::file.png[alt]".
// The attribute list stops at its closing bracket
// or after two consecutive line breaks.
func (dp *docParser) parseBlockMacro() {
	defer dp.endLineScope(dp.startLineScope())
	m := dp.takePreBlock()
	macroID := dp.b.text()
	dp.b.advance()
	for blockMacroTokens.has(dp.b.kind()) && dp.newLines < 2 {
		switch k := dp.b.kind(); {
		case k == AttrsEndToken:
			dp.b.advance()
			dp.b.done(m, BlockMacroKind)
			return
		case quoteEnd(k) != 0:
			dp.parseQuoted(tokenKindSet{})
		case k == AttrNameToken:
			dp.parseAttributeInBrackets(macroID)
		case k.isURLStart():
			dp.parseURL()
		case k == AttributeRefStartToken:
			dp.parseAttributeRef()
		case k == BlockMacroIDToken:
			dp.parseBlockMacro()
		case k == InlineMacroIDToken:
			dp.parseInlineMacro()
		case k == AttributeNameStartToken:
			dp.parseAttributeDeclaration()
		default:
			dp.b.advance()
		}
	}
	dp.b.done(m, BlockMacroKind)
}
