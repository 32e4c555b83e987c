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

//go:generate stringer -type=ElementKind,TokenKind -output=kind_string.go

package asciidoc

// A Token is a single lexical unit produced by an AsciiDoc tokenizer.
// The parser only ever compares a token's kind and exact text.
type Token struct {
	Kind TokenKind
	Text string
}

// TokenKind is an enumeration of lexical token types.
type TokenKind uint16

const (
	// Whitespace. These are skipped by the parser
	// but still appear as leaves in the parsed tree.
	WhiteSpaceToken TokenKind = 1 + iota
	LineBreakToken
	EmptyLineToken

	TextToken

	// HeadingToken is a heading line of the form "== Title".
	HeadingToken
	// HeadingOldStyleToken is a title line followed by an underline,
	// like "Title\n=====".
	HeadingOldStyleToken
	// TitleToken is a block title line, like ".Caption".
	TitleToken

	BlockMacroIDToken
	BlockMacroBodyToken

	// Fences.
	BlockDelimiterToken
	CommentBlockDelimiterToken
	LiteralBlockDelimiterToken
	ListingBlockDelimiterToken
	PassthroughBlockDelimiterToken
	FrontmatterDelimiterToken
	CellSeparatorToken

	ListingTextToken
	PassthroughContentToken

	LineCommentToken
	BlockCommentToken

	// Block attribute lists: [source,java]
	AttrsStartToken
	AttrsEndToken
	AttrNameToken
	AttrValueToken
	AssignmentToken
	SeparatorToken
	AttrListSepToken
	AttrListOpToken
	SingleQuoteToken
	DoubleQuoteToken

	// Block IDs: [[id,reftext]]
	BlockIDStartToken
	BlockIDToken
	BlockIDEndToken
	BlockRefTextToken

	// Inline anchors: [[id]] inside a paragraph
	InlineIDStartToken
	InlineIDEndToken

	// Cross references: <<ref,text>>
	RefStartToken
	RefToken
	RefTextToken
	RefEndToken

	// Links: xref:file.adoc#anchor[text]
	LinkStartToken
	LinkFileToken
	LinkAnchorToken
	InlineAttrsStartToken
	InlineAttrsEndToken
	MacroTextToken

	URLStartToken
	URLLinkToken
	URLEmailToken
	URLPrefixToken
	URLEndToken

	InlineMacroIDToken
	InlineMacroBodyToken
	PassthroughInlineStartToken
	PassthroughInlineEndToken

	// Attribute references: {name}
	AttributeRefStartToken
	AttributeRefToken
	AttributeRefEndToken

	// Attribute declarations: :name: value
	AttributeNameStartToken
	AttributeNameToken
	AttributeNameEndToken
	AttributeValueToken
	AttributeUnsetToken
	AttributeSoftSetToken
	AttributeContinuationToken

	HTMLEntityToken
	// ContinuationToken is a list continuation, a "+" on a line by itself.
	// It attaches the next block to the current list item.
	ContinuationToken

	// List item markers.
	// EnumerationToken is a numbered item marker, like "1." or "a.".
	EnumerationToken
	BulletToken
	// DescriptionToken is the term of a description list item.
	DescriptionToken
	// DescriptionEndToken is the separator after a term, like "::".
	DescriptionEndToken
	// CalloutToken is a callout list marker, like "<1>".
	CalloutToken

	// Standalone lines that never become part of a paragraph.
	PageBreakToken
	HeaderToken
	HorizontalRuleToken

	// Bibliography anchors: [[[id,label]]]
	BibStartToken
	BibEndToken

	// Quoted text delimiters.
	BoldStartToken
	BoldEndToken
	DoubleBoldStartToken
	DoubleBoldEndToken
	ItalicStartToken
	ItalicEndToken
	DoubleItalicStartToken
	DoubleItalicEndToken
	MonoStartToken
	MonoEndToken
	DoubleMonoStartToken
	DoubleMonoEndToken
	TypographicSingleQuoteStartToken
	TypographicSingleQuoteEndToken
	TypographicDoubleQuoteStartToken
	TypographicDoubleQuoteEndToken

	// Text inside quotes.
	BoldToken
	ItalicToken
	MonoToken
	BoldItalicToken
	MonoBoldToken
	MonoItalicToken
	MonoBoldItalicToken

	// Punctuation in running text.
	LBracketToken
	RBracketToken
	LTToken
	GTToken
	LParenToken
	RParenToken
)

// IsWhitespace reports whether the parser skips tokens of this kind.
func (k TokenKind) IsWhitespace() bool {
	return k == WhiteSpaceToken || k == LineBreakToken || k == EmptyLineToken
}

// isURLStart reports whether a token of this kind can begin a URL.
func (k TokenKind) isURLStart() bool {
	return k == URLStartToken || k == URLLinkToken || k == URLEmailToken || k == URLPrefixToken
}

// ParseTokenKind returns the kind whose String method returns name.
func ParseTokenKind(name string) (TokenKind, bool) {
	for k := TokenKind(1); int(k) < len(_TokenKind_index); k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// tokenKindSet is a set of token kinds.
type tokenKindSet [2]uint64

func tokenSet(kinds ...TokenKind) tokenKindSet {
	var s tokenKindSet
	for _, k := range kinds {
		s[k/64] |= 1 << (k % 64)
	}
	return s
}

func (s tokenKindSet) has(k TokenKind) bool {
	return int(k/64) < len(s) && s[k/64]&(1<<(k%64)) != 0
}

// with returns a copy of s that also contains k.
func (s tokenKindSet) with(k TokenKind) tokenKindSet {
	s[k/64] |= 1 << (k % 64)
	return s
}
