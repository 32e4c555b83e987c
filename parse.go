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

// Package asciidoc provides a structural parser for [AsciiDoc] token streams.
//
// The parser consumes the tokens produced by an AsciiDoc tokenizer
// and builds a concrete syntax tree:
// sections nested by heading level,
// delimited blocks nested by fence text,
// raw listing content,
// and small bracketed constructs like block IDs and cross references.
// Every token appears exactly once as a [Leaf] in the tree,
// so concatenating the leaves reproduces the input.
//
// [AsciiDoc]: https://asciidoc.org/
package asciidoc

import (
	"log/slog"
)

// A Parser holds configuration for parsing token streams.
// The zero value is a valid parser that does not log.
// A Parser is safe to use from multiple goroutines.
type Parser struct {
	// Logger receives debug records about each parse
	// and error records about defects.
	// If Logger is nil, nothing is logged.
	Logger *slog.Logger

	// Paragraphs groups running text outside of delimited blocks and lists
	// into [BlockKind] elements that end at the next blank line.
	// A pending title or attribute list is attached to the paragraph it precedes.
	// By default, such text is left as flat tokens of the enclosing element.
	Paragraphs bool
}

func (p *Parser) logger() *slog.Logger {
	if p == nil || p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// Parse parses a token stream with the default parser.
func Parse(tokens []Token) (*Document, error) {
	return new(Parser).Parse(tokens)
}

// Parse parses a token stream into a document tree.
// Any token stream is accepted:
// blocks, listings, and sections left open at the end of input are closed there.
// The only errors returned are of type [*DefectError],
// reporting tokens the grammar does not define.
func (p *Parser) Parse(tokens []Token) (doc *Document, err error) {
	log := p.logger()
	log.Debug("Parse start", slog.Int("tokens", len(tokens)))
	defer func() {
		if err != nil {
			log.Error("Parse failed", slog.Any("error", err))
			return
		}
		if doc != nil {
			log.Debug("Parse done", slog.Int("bytes", len(doc.source)))
		}
	}()
	defer recoverDefect(&err)

	dp := newDocParser(tokens, log)
	dp.paragraphs = p != nil && p.Paragraphs
	dp.run()
	return dp.b.build(), nil
}

// docParser is the state of a single parse.
type docParser struct {
	b   *builder
	log *slog.Logger

	sections []sectionFrame
	blocks   []blockFrame
	preBlock marker

	// newLines counts line breaks skipped since it was last reset.
	// Constructs confined to a single line reset it before they begin.
	newLines int
	// emptyLines counts blank lines skipped in the current driver iteration.
	emptyLines int
	// continuation is set after a list continuation
	// until the construct it attaches has started.
	continuation bool

	paragraphs bool
}

func newDocParser(tokens []Token, log *slog.Logger) *docParser {
	dp := &docParser{
		log:      log,
		preBlock: noMarker,
	}
	dp.b = newBuilder(tokens, dp.skipped)
	return dp
}

// skipped is the builder's whitespace hook.
func (dp *docParser) skipped(k TokenKind) {
	switch k {
	case EmptyLineToken:
		dp.emptyLines++
		dp.newLines++
	case LineBreakToken:
		dp.newLines++
	}
}

// startLineScope resets newLines for a construct
// whose extent is bounded by line breaks.
// Passing the result to endLineScope once the construct is complete
// adds the count back,
// so an enclosing construct's count includes the nested one's line breaks.
func (dp *docParser) startLineScope() int {
	n := dp.newLines
	dp.newLines = 0
	return n
}

func (dp *docParser) endLineScope(outer int) {
	dp.newLines += outer
}

// fail aborts the parse with a defect at the current token.
func (dp *docParser) fail(err error) {
	panic(defect{&DefectError{
		Offset: dp.b.offset,
		Token:  dp.b.token(),
		Err:    err,
	}})
}

func (dp *docParser) run() {
	for !dp.b.eof() {
		if dp.emptyLines > 0 {
			dp.endParagraph()
			if !dp.continuation && !listContinues.has(dp.b.kind()) {
				dp.endLists()
			}
		}
		dp.emptyLines = 0
		dp.step()
	}

	dp.dropPreBlock()
	for i := len(dp.blocks) - 1; i >= 0; i-- {
		dp.log.Debug("Closing unterminated block at end of input",
			slog.String("delimiter", dp.blocks[i].delimiter),
			slog.String("kind", dp.blocks[i].kind.String()))
	}
	dp.closeBlocks()
	if len(dp.sections) > 0 {
		dp.log.Debug("Closing sections at end of input", slog.Int("count", len(dp.sections)))
	}
	dp.closeSections(0)
}

// listContinues is the set of tokens that keep lists open
// across a blank line.
var listContinues = tokenSet(
	EnumerationToken,
	BulletToken,
	DescriptionToken,
	ContinuationToken,
)

// blockStarts is the set of tokens that end the current paragraph and lists
// unless they follow a list continuation.
var blockStarts = tokenSet(
	BlockMacroIDToken,
	BlockDelimiterToken,
	LiteralBlockDelimiterToken,
	ListingBlockDelimiterToken,
	PassthroughBlockDelimiterToken,
	FrontmatterDelimiterToken,
	CellSeparatorToken,
)

// step parses the construct starting at the current token.
// Every path through step consumes at least one token.
func (dp *docParser) step() {
	if k := dp.b.kind(); blockStarts.has(k) {
		if dp.continuation {
			dp.continuation = false
		} else {
			dp.endLists()
			dp.endParagraph()
		}
	}

	switch k := dp.b.kind(); {
	case k == HeadingToken || k == HeadingOldStyleToken:
		dp.parseHeading()
	case k == BlockMacroIDToken:
		dp.parseBlockMacro()
	case k == CommentBlockDelimiterToken:
		dp.endLists()
		dp.parseBlock()
	case k == BlockDelimiterToken || k == CellSeparatorToken:
		dp.parseBlock()
	case k == LiteralBlockDelimiterToken || k == ListingBlockDelimiterToken:
		dp.parseFenced(ListingKind)
	case k == PassthroughBlockDelimiterToken:
		dp.parseFenced(PassthroughKind)
	case k == FrontmatterDelimiterToken:
		dp.parseFenced(FrontmatterKind)
	case k == ListingTextToken:
		dp.parseListingNoDelimiter()
	case k == TitleToken:
		dp.parseTitle()
	case k == AttrsStartToken:
		dp.parseBlockAttributes()
	case k == BlockIDStartToken:
		dp.parseBlockID()
	case k == LineCommentToken || k == BlockCommentToken:
		if !dp.inParagraph() {
			dp.markPreBlock()
		}
		dp.b.advance()
	case k == AttributeNameStartToken:
		dp.parseAttributeDeclaration()
	case k == ContinuationToken:
		dp.parseContinuation()
	case k == PageBreakToken || k == HeaderToken || k == HorizontalRuleToken:
		dp.continuation = false
		dp.dropPreBlock()
		dp.b.advance()
	default:
		dp.continuation = false
		if k.isListMarker() {
			dp.startListItem()
		}
		switch {
		case k == DescriptionToken:
			dp.markPreBlock()
		case dp.paragraphs && (len(dp.blocks) == 0 || dp.preBlock != noMarker && !dp.preBlockIsTerm()):
			dp.startParagraph()
		case !dp.preBlockIsTerm():
			dp.dropPreBlock()
		}
		dp.parseInline()
	}
}

// parseInline parses a construct that may occur inside running text.
func (dp *docParser) parseInline() {
	switch k := dp.b.kind(); {
	case k.isURLStart():
		dp.parseURL()
	case k == InlineIDStartToken:
		dp.parseInlineID()
	case k == InlineMacroIDToken:
		dp.parseInlineMacro()
	case k == RefStartToken:
		dp.parseRef()
	case k == LinkStartToken:
		dp.parseLink()
	case k == AttributeRefStartToken:
		dp.parseAttributeRef()
	case k == HTMLEntityToken:
		dp.parseHTMLEntity()
	case k == BibStartToken:
		dp.parseBib()
	case quoteEnd(k) != 0:
		dp.parseQuoted(tokenKindSet{})
	default:
		dp.b.advance()
	}
}

// markPreBlock opens the pre-block marker if one is not already pending.
func (dp *docParser) markPreBlock() {
	if dp.preBlock == noMarker {
		dp.preBlock = dp.b.mark()
	}
}

// dropPreBlock discards the pending pre-block marker, if any.
func (dp *docParser) dropPreBlock() {
	if dp.preBlock != noMarker {
		dp.b.drop(dp.preBlock)
		dp.preBlock = noMarker
	}
}

// preBlockIsTerm reports whether the pending pre-block
// starts at a description list term.
func (dp *docParser) preBlockIsTerm() bool {
	return dp.preBlock != noMarker && dp.b.startKind(dp.preBlock) == DescriptionToken
}

// takePreBlock returns the pending pre-block marker
// as the start of a structural element,
// or a new marker at the current token if none is pending.
func (dp *docParser) takePreBlock() marker {
	m := dp.preBlock
	if m == noMarker {
		return dp.b.mark()
	}
	dp.preBlock = noMarker
	return m
}

// closeBefore completes m before the pending pre-block,
// so that decorators already seen go to whatever follows.
func (dp *docParser) closeBefore(m marker, kind ElementKind) {
	if dp.preBlock != noMarker {
		dp.b.doneBefore(m, kind, dp.preBlock)
	} else {
		dp.b.done(m, kind)
	}
}
