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

// This file holds the parsers for small constructs.
// Each one opens a marker on its start token,
// consumes the tokens of its own fixed alphabet,
// and completes the marker at its end token
// or the first token outside the alphabet.
// None of them recurse into structural constructs.

var (
	blockAttributesTokens = tokenSet(
		AttrNameToken,
		AttrValueToken,
		AttrsEndToken,
		SeparatorToken,
		AttributeRefStartToken,
		AttrListSepToken,
		AttrListOpToken,
		SingleQuoteToken,
		DoubleQuoteToken,
		AssignmentToken,
		URLLinkToken,
		BlockIDToken,
	)
	attributeInBracketsTokens = tokenSet(
		AttrNameToken,
		AssignmentToken,
		URLLinkToken,
		AttrValueToken,
		DoubleQuoteToken,
		SingleQuoteToken,
		AttributeRefStartToken,
		AttrListSepToken,
		AttrListOpToken,
		ContinuationToken,
	)
	refTokens = tokenSet(
		RefToken,
		RefEndToken,
		SeparatorToken,
		RefTextToken,
		AttributeRefStartToken,
	)
	linkTokens = tokenSet(
		LinkFileToken,
		URLLinkToken,
		LinkAnchorToken,
		InlineAttrsStartToken,
		SeparatorToken,
		MacroTextToken,
		AttrNameToken,
		AttributeRefStartToken,
		ContinuationToken,
		InlineAttrsEndToken,
	)
	urlTokens = tokenSet(
		URLStartToken,
		URLLinkToken,
		URLEmailToken,
		URLPrefixToken,
		AttrNameToken,
		SeparatorToken,
		InlineAttrsStartToken,
		MacroTextToken,
		URLEndToken,
		InlineAttrsEndToken,
		AttributeRefStartToken,
	)
	inlineMacroTokens = tokenSet(
		InlineMacroBodyToken,
		AttrNameToken,
		AssignmentToken,
		URLLinkToken,
		AttrValueToken,
		SeparatorToken,
		InlineAttrsStartToken,
		InlineAttrsEndToken,
		MacroTextToken,
		DoubleQuoteToken,
		SingleQuoteToken,
		AttributeRefStartToken,
		AttrListSepToken,
		AttrListOpToken,
		PassthroughInlineStartToken,
	)
	bibTokens = tokenSet(
		BibStartToken,
		BibEndToken,
		SeparatorToken,
		BlockRefTextToken,
		BlockIDToken,
		AttributeRefStartToken,
	)
	quotedTokens = tokenSet(
		TextToken,
		BoldToken,
		ItalicToken,
		MonoToken,
		BoldItalicToken,
		MonoBoldToken,
		MonoItalicToken,
		MonoBoldItalicToken,
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
		PassthroughInlineStartToken,
		PassthroughInlineEndToken,
		PassthroughContentToken,
		AttributeRefStartToken,
		InlineMacroIDToken,
		LBracketToken,
		RBracketToken,
		LTToken,
		GTToken,
		LParenToken,
		RParenToken,
		URLStartToken,
		URLLinkToken,
		URLEmailToken,
		URLPrefixToken,
		InlineIDStartToken,
		RefStartToken,
		BibStartToken,
		LinkStartToken,
	)
	attributeDeclarationTokens = tokenSet(
		AttributeNameToken,
		AttributeNameEndToken,
		AttributeValueToken,
		AttributeRefStartToken,
		AttributeContinuationToken,
		AttributeUnsetToken,
		AttributeSoftSetToken,
	)
)

// parseTitle parses a block title line, like ".Caption".
// The title decorates whatever block follows it.
func (dp *docParser) parseTitle() {
	dp.newLines = 0
	dp.markPreBlock()
	m := dp.b.mark()
	for !dp.b.eof() && dp.newLines == 0 {
		switch k := dp.b.kind(); {
		case k == AttributeRefStartToken:
			dp.parseAttributeRef()
		case k.isURLStart():
			dp.parseURL()
		case k == InlineMacroIDToken:
			dp.parseInlineMacro()
		case k == RefStartToken:
			dp.parseRef()
		default:
			dp.b.advance()
		}
	}
	dp.b.done(m, TitleKind)
}

// parseBlockAttributes parses a block attribute list, like "[source,go]".
func (dp *docParser) parseBlockAttributes() {
	dp.markPreBlock()
	m := dp.b.mark()
	dp.b.advance()
	for blockAttributesTokens.has(dp.b.kind()) {
		switch dp.b.kind() {
		case AttrsEndToken:
			dp.b.advance()
			dp.b.done(m, BlockAttributesKind)
			return
		case AttrNameToken:
			dp.parseAttributeInBrackets("")
		case AttributeRefStartToken:
			dp.parseAttributeRef()
		case URLLinkToken:
			dp.parseURL()
		case BlockIDToken:
			dp.parseID()
		default:
			dp.b.advance()
		}
	}
	dp.b.done(m, BlockAttributesKind)
}

// parseAttributeInBrackets parses a single attribute inside brackets,
// like "id=intro" or "tag=main".
// macroID is the name of the enclosing macro, like "include::",
// or the empty string for a block attribute list.
func (dp *docParser) parseAttributeInBrackets(macroID string) {
	if dp.emptyLines > 0 {
		dp.b.advance()
		return
	}
	m := dp.b.mark()
	name := ""
	for attributeInBracketsTokens.has(dp.b.kind()) && dp.emptyLines == 0 {
		switch k := dp.b.kind(); {
		case k == URLLinkToken:
			dp.parseURL()
		case k == AttrNameToken:
			name = dp.b.text()
			dp.b.advance()
		case k == AttrValueToken && (name == "tag" || name == "tags") && macroID == "include::":
			tag := dp.b.mark()
			dp.b.advance()
			dp.b.done(tag, IncludeTagKind)
		case (k == AttrValueToken || k == AttributeRefStartToken) && name == "id" && macroID == "":
			id := dp.b.mark()
			for (dp.b.kind() == AttrValueToken || dp.b.kind() == AttributeRefStartToken) && dp.emptyLines == 0 {
				if dp.b.kind() == AttributeRefStartToken {
					dp.parseAttributeRef()
				} else {
					dp.b.advance()
				}
			}
			dp.b.done(id, BlockIDKind)
		case k == AttributeRefStartToken:
			dp.parseAttributeRef()
		default:
			dp.b.advance()
		}
	}
	dp.b.done(m, AttributeInBracketsKind)
}

// parseID wraps a run of ID tokens in a [BlockIDKind] element.
// It does nothing if the current token does not start an ID.
func (dp *docParser) parseID() {
	m := noMarker
	for dp.b.kind() == BlockIDToken || dp.b.kind() == AttributeRefStartToken {
		if m == noMarker {
			m = dp.b.mark()
		}
		if dp.b.kind() == AttributeRefStartToken {
			dp.parseAttributeRef()
		} else {
			dp.b.advance()
		}
	}
	if m != noMarker {
		dp.b.done(m, BlockIDKind)
	}
}

// parseBlockID parses a block anchor line, like "[[intro,Introduction]]".
func (dp *docParser) parseBlockID() {
	dp.markPreBlock()
	m := dp.b.mark()
	dp.b.advance()
	dp.parseID()
	dp.parseIDTail(BlockIDEndToken)
	dp.b.done(m, BlockAttributesKind)
}

// parseInlineID parses an inline anchor, like "[[step1]]" inside a paragraph.
// Only the ID itself gets an element.
func (dp *docParser) parseInlineID() {
	dp.b.advance()
	dp.parseID()
	dp.parseIDTail(InlineIDEndToken)
}

// parseIDTail consumes an anchor's reference text and closing brackets.
func (dp *docParser) parseIDTail(end TokenKind) {
	for {
		switch dp.b.kind() {
		case end:
			dp.b.advance()
			return
		case SeparatorToken, BlockRefTextToken:
			dp.b.advance()
		case AttributeRefStartToken:
			dp.parseAttributeRef()
		default:
			return
		}
	}
}

// parseBib parses a bibliography anchor, like "[[[knuth,Knuth 1984]]]".
// Only the ID itself gets an element.
func (dp *docParser) parseBib() {
	for bibTokens.has(dp.b.kind()) {
		switch dp.b.kind() {
		case BlockIDToken:
			// Unlike other anchors, a bibliography ID is a single token.
			m := dp.b.mark()
			dp.b.advance()
			dp.b.done(m, BlockIDKind)
		case AttributeRefStartToken:
			dp.parseAttributeRef()
		default:
			dp.b.advance()
		}
	}
}

// parseRef parses a cross reference, like "<<intro,the introduction>>".
func (dp *docParser) parseRef() {
	m := dp.b.mark()
	dp.b.advance()
	for refTokens.has(dp.b.kind()) {
		if dp.b.kind() == RefEndToken {
			dp.b.advance()
			break
		}
		if dp.b.kind() == AttributeRefStartToken {
			dp.parseAttributeRef()
		} else {
			dp.b.advance()
		}
	}
	dp.b.done(m, RefKind)
}

// parseLink parses a link macro, like "xref:other.adoc#intro[Introduction]".
func (dp *docParser) parseLink() {
	m := dp.b.mark()
	macroID := dp.b.text()
	dp.b.advance()
	for linkTokens.has(dp.b.kind()) {
		switch dp.b.kind() {
		case InlineAttrsEndToken:
			dp.b.advance()
			dp.b.done(m, LinkKind)
			return
		case AttrNameToken:
			dp.parseAttributeInBrackets(macroID)
		case AttributeRefStartToken:
			dp.parseAttributeRef()
		default:
			dp.b.advance()
		}
	}
	dp.b.done(m, LinkKind)
}

// parseURL parses a URL with an optional link text.
// A second address ends the URL,
// so that two adjacent links never merge.
func (dp *docParser) parseURL() {
	defer dp.endLineScope(dp.startLineScope())
	m := dp.b.mark()
	seenAddress := false
	for urlTokens.has(dp.b.kind()) && dp.newLines == 0 {
		switch dp.b.kind() {
		case AttrNameToken:
			dp.parseAttributeInBrackets("")
		case AttributeRefStartToken:
			dp.parseAttributeRef()
		case URLLinkToken, URLEmailToken:
			if seenAddress {
				dp.b.done(m, URLKind)
				return
			}
			seenAddress = true
			dp.b.advance()
		case URLEndToken, InlineAttrsEndToken:
			dp.b.advance()
			dp.b.done(m, URLKind)
			return
		default:
			dp.b.advance()
		}
	}
	dp.b.done(m, URLKind)
}

// parseInlineMacro parses an inline macro, like "kbd:[Ctrl+C]".
// It must fit on a single line.
func (dp *docParser) parseInlineMacro() {
	defer dp.endLineScope(dp.startLineScope())
	m := dp.b.mark()
	macroID := dp.b.text()
	dp.b.advance()
	for inlineMacroTokens.has(dp.b.kind()) && dp.newLines == 0 {
		switch dp.b.kind() {
		case InlineAttrsEndToken:
			dp.b.advance()
			dp.b.done(m, InlineMacroKind)
			return
		case URLLinkToken:
			dp.parseURL()
		case PassthroughInlineStartToken:
			dp.parsePassthrough()
		case AttrNameToken:
			dp.parseAttributeInBrackets(macroID)
		case AttributeRefStartToken:
			dp.parseAttributeRef()
		default:
			dp.b.advance()
		}
	}
	dp.b.done(m, InlineMacroKind)
}

// parsePassthrough consumes an inline passthrough, like "+++<br>+++".
// Its content is left as flat tokens.
func (dp *docParser) parsePassthrough() {
	for dp.b.kind() == PassthroughInlineStartToken {
		dp.b.advance()
	}
	for dp.b.kind() == PassthroughContentToken || dp.b.kind() == PassthroughInlineEndToken {
		end := dp.b.kind() == PassthroughInlineEndToken
		dp.b.advance()
		if end {
			return
		}
	}
}

// quoteEnd returns the token that closes quoted text opened by k
// or zero if k does not open quoted text.
func quoteEnd(k TokenKind) TokenKind {
	switch k {
	case BoldStartToken:
		return BoldEndToken
	case DoubleBoldStartToken:
		return DoubleBoldEndToken
	case ItalicStartToken:
		return ItalicEndToken
	case DoubleItalicStartToken:
		return DoubleItalicEndToken
	case MonoStartToken:
		return MonoEndToken
	case DoubleMonoStartToken:
		return DoubleMonoEndToken
	case TypographicSingleQuoteStartToken:
		return TypographicSingleQuoteEndToken
	case TypographicDoubleQuoteStartToken:
		return TypographicDoubleQuoteEndToken
	case PassthroughInlineStartToken:
		return PassthroughInlineEndToken
	default:
		return 0
	}
}

// parseQuoted parses text between a pair of quote delimiters, like "*bold*".
// Quotes may nest.
// stop holds the closing tokens of the enclosing quotes:
// reaching one of them before this quote's own closing token,
// a blank line, or a token that cannot occur in running text
// leaves the opening delimiter as plain text.
func (dp *docParser) parseQuoted(stop tokenKindSet) {
	m := dp.b.mark()
	end := quoteEnd(dp.b.kind())
	dp.b.advance()
	for quotedTokens.has(dp.b.kind()) && dp.emptyLines == 0 {
		switch k := dp.b.kind(); {
		case k == end:
			dp.b.advance()
			dp.b.done(m, QuotedKind)
			return
		case stop.has(k):
			dp.b.drop(m)
			return
		case quoteEnd(k) != 0:
			dp.parseQuoted(stop.with(end))
		case k == AttributeRefStartToken:
			dp.parseAttributeRef()
		case k == InlineMacroIDToken:
			dp.parseInlineMacro()
		case k.isURLStart():
			dp.parseURL()
		case k == InlineIDStartToken:
			dp.parseInlineID()
		case k == RefStartToken:
			dp.parseRef()
		case k == BibStartToken:
			dp.parseBib()
		case k == LinkStartToken:
			dp.parseLink()
		default:
			dp.b.advance()
		}
	}
	dp.b.drop(m)
}

// parseAttributeRef parses an attribute reference, like "{version}".
func (dp *docParser) parseAttributeRef() {
	m := dp.b.mark()
	dp.b.advance()
	for dp.b.kind() == AttributeRefToken || dp.b.kind() == AttributeRefEndToken {
		end := dp.b.kind() == AttributeRefEndToken
		dp.b.advance()
		if end {
			break
		}
	}
	dp.b.done(m, AttributeRefKind)
}

// parseAttributeDeclaration parses an attribute entry line, like ":toc: left".
func (dp *docParser) parseAttributeDeclaration() {
	defer dp.endLineScope(dp.startLineScope())
	m := dp.b.mark()
	dp.b.advance()
	for attributeDeclarationTokens.has(dp.b.kind()) && dp.newLines == 0 {
		switch dp.b.kind() {
		case AttributeNameToken:
			name := dp.b.mark()
			dp.b.advance()
			dp.b.done(name, AttributeDeclarationNameKind)
		case AttributeRefStartToken:
			dp.parseAttributeRef()
		default:
			dp.b.advance()
		}
	}
	dp.b.done(m, AttributeDeclarationKind)
}

func (dp *docParser) parseHTMLEntity() {
	m := dp.b.mark()
	dp.b.advance()
	dp.b.done(m, HTMLEntityKind)
}
