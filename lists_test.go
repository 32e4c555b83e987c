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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLists(t *testing.T) {
	ws := tok(WhiteSpaceToken, " ")
	tests := []struct {
		name   string
		tokens []Token
		want   string
	}{
		{
			name: "Siblings",
			tokens: []Token{
				tok(BulletToken, "*"), ws, tok(TextToken, "a"), nl,
				tok(BulletToken, "*"), ws, tok(TextToken, "b"),
			},
			want: "Document(List(ListItem,ListItem))",
		},
		{
			name: "Nested",
			tokens: []Token{
				tok(BulletToken, "*"), ws, tok(TextToken, "a"), nl,
				tok(BulletToken, "**"), ws, tok(TextToken, "b"), nl,
				tok(BulletToken, "*"), ws, tok(TextToken, "c"),
			},
			want: "Document(List(ListItem(List(ListItem)),ListItem))",
		},
		{
			name: "NumbersShareList",
			tokens: []Token{
				tok(EnumerationToken, "1."), ws, tok(TextToken, "a"), nl,
				tok(EnumerationToken, "b."), ws, tok(TextToken, "b"), nl,
				tok(EnumerationToken, ".."), ws, tok(TextToken, "c"),
			},
			want: "Document(List(ListItem,ListItem(List(ListItem))))",
		},
		{
			name: "BlankLineBetweenItems",
			tokens: []Token{
				tok(BulletToken, "*"), ws, tok(TextToken, "a"), nl,
				tok(EmptyLineToken, "\n"),
				tok(BulletToken, "*"), ws, tok(TextToken, "b"),
			},
			want: "Document(List(ListItem,ListItem))",
		},
		{
			name: "BlankLineEndsList",
			tokens: []Token{
				tok(BulletToken, "*"), ws, tok(TextToken, "a"), nl,
				tok(EmptyLineToken, "\n"),
				tok(TextToken, "p"), nl,
				tok(BulletToken, "*"), ws, tok(TextToken, "b"),
			},
			want: "Document(List(ListItem),List(ListItem))",
		},
		{
			name: "Description",
			tokens: []Token{
				tok(DescriptionToken, "CPU"), tok(DescriptionEndToken, "::"), ws, tok(TextToken, "a"), nl,
				tok(DescriptionToken, "RAM"), tok(DescriptionEndToken, "::"), ws, tok(TextToken, "b"),
			},
			want: "Document(List(DescriptionItem,DescriptionItem))",
		},
		{
			name: "DescriptionSeparatorWithoutTerm",
			tokens: []Token{
				tok(DescriptionEndToken, "::"), ws, tok(TextToken, "a"),
			},
			want: "Document",
		},
		{
			name: "NestedDescription",
			tokens: []Token{
				tok(DescriptionToken, "A"), tok(DescriptionEndToken, "::"), nl,
				tok(DescriptionToken, "B"), tok(DescriptionEndToken, ":::"), nl,
				tok(DescriptionToken, "C"), tok(DescriptionEndToken, "::"),
			},
			want: "Document(List(DescriptionItem(List(DescriptionItem)),DescriptionItem))",
		},
		{
			name: "Callouts",
			tokens: []Token{
				tok(CalloutToken, "<1>"), ws, tok(TextToken, "a"), nl,
				tok(CalloutToken, "<2>"), ws, tok(TextToken, "b"),
			},
			want: "Document(List(ListItem,ListItem))",
		},
		{
			name: "TitleBelongsToList",
			tokens: []Token{
				tok(TitleToken, ".Fruits"), nl,
				tok(BulletToken, "*"), ws, tok(TextToken, "a"),
			},
			want: "Document(List(Title,ListItem))",
		},
		{
			name: "ContinuationAttachesBlock",
			tokens: []Token{
				tok(BulletToken, "*"), ws, tok(TextToken, "a"), nl,
				tok(ContinuationToken, "+"), nl,
				tok(BlockDelimiterToken, "===="), nl,
				tok(TextToken, "x"), nl,
				tok(BlockDelimiterToken, "===="), nl,
				tok(EmptyLineToken, "\n"),
				tok(TextToken, "after"),
			},
			want: "Document(List(ListItem(Block)))",
		},
		{
			name: "ContinuationOverOneBlankLine",
			tokens: []Token{
				tok(BulletToken, "*"), ws, tok(TextToken, "a"), nl,
				tok(ContinuationToken, "+"), nl,
				tok(EmptyLineToken, "\n"),
				tok(ListingBlockDelimiterToken, "----"), nl,
				tok(ListingBlockDelimiterToken, "----"),
			},
			want: "Document(List(ListItem(Listing)))",
		},
		{
			name: "ContinuationOverTwoBlankLines",
			tokens: []Token{
				tok(BulletToken, "*"), ws, tok(TextToken, "a"), nl,
				tok(ContinuationToken, "+"), nl,
				tok(EmptyLineToken, "\n"),
				tok(EmptyLineToken, "\n"),
				tok(ListingBlockDelimiterToken, "----"), nl,
				tok(ListingBlockDelimiterToken, "----"),
			},
			want: "Document(List(ListItem),Listing)",
		},
		{
			name: "ContinuationOutsideList",
			tokens: []Token{
				tok(TextToken, "a"), nl,
				tok(ContinuationToken, "+"), nl,
				tok(BlockDelimiterToken, "===="),
			},
			want: "Document(Block)",
		},
		{
			name: "BlockEndsList",
			tokens: []Token{
				tok(BulletToken, "*"), ws, tok(TextToken, "a"), nl,
				tok(BlockDelimiterToken, "===="), nl,
				tok(TextToken, "x"), nl,
				tok(BlockDelimiterToken, "===="),
			},
			want: "Document(List(ListItem),Block)",
		},
		{
			name: "FenceClosesListInside",
			tokens: []Token{
				tok(BlockDelimiterToken, "===="), nl,
				tok(BulletToken, "*"), ws, tok(TextToken, "a"), nl,
				tok(BlockDelimiterToken, "===="),
			},
			want: "Document(Block(List(ListItem)))",
		},
		{
			name: "SameMarkerInsideBlock",
			tokens: []Token{
				tok(BulletToken, "*"), ws, tok(TextToken, "a"), nl,
				tok(ContinuationToken, "+"), nl,
				tok(BlockDelimiterToken, "===="), nl,
				tok(BulletToken, "*"), ws, tok(TextToken, "b"), nl,
				tok(BlockDelimiterToken, "===="),
			},
			want: "Document(List(ListItem(Block(List(ListItem)))))",
		},
		{
			name: "CommentAfterBlankLineEndsList",
			tokens: []Token{
				tok(BulletToken, "*"), ws, tok(TextToken, "a"), nl,
				tok(EmptyLineToken, "\n"),
				tok(LineCommentToken, "//"), nl,
				tok(BulletToken, "*"), ws, tok(TextToken, "b"),
			},
			want: "Document(List(ListItem),List(ListItem))",
		},
		{
			name: "HeadingEndsList",
			tokens: []Token{
				tok(BulletToken, "*"), ws, tok(TextToken, "a"), nl,
				tok(HeadingToken, "== B"),
			},
			want: "Document(List(ListItem),Section(Heading))",
		},
		{
			name: "CellEndsList",
			tokens: []Token{
				tok(BlockDelimiterToken, "|==="), nl,
				tok(CellSeparatorToken, "a|"), tok(BulletToken, "*"), ws, tok(TextToken, "x"), nl,
				tok(CellSeparatorToken, "|"), tok(TextToken, "y"), nl,
				tok(BlockDelimiterToken, "|==="),
			},
			want: "Document(Block(Cell(List(ListItem)),Cell))",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			doc, err := Parse(test.tokens)
			if err != nil {
				t.Fatal("Parse:", err)
			}
			if diff := cmp.Diff(test.want, sketch(doc.Root())); diff != "" {
				t.Errorf("structure (-want +got):\n%s", diff)
			}
			verifyDocument(t, doc, test.tokens)
		})
	}
}

func TestParseDescriptionItemSpan(t *testing.T) {
	tokens := []Token{
		tok(DescriptionToken, "CPU"), tok(DescriptionEndToken, "::"),
		tok(WhiteSpaceToken, " "), tok(TextToken, "brain"), nl,
		tok(DescriptionToken, "RAM"), tok(DescriptionEndToken, "::"),
	}
	doc, err := Parse(tokens)
	if err != nil {
		t.Fatal(err)
	}
	list := doc.Child(0).Element()
	if list.Kind() != ListKind {
		t.Fatalf("doc.Child(0).Kind() = %v; want %v", list.Kind(), ListKind)
	}
	want := []Span{{0, 11}, {12, 17}}
	var got []Span
	for _, c := range list.Children() {
		if e := c.Element(); e != nil {
			got = append(got, e.Span())
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("item spans (-want +got):\n%s", diff)
	}
	if got, want := list.Span(), (Span{0, 17}); got != want {
		t.Errorf("list.Span() = %v; want %v", got, want)
	}
}

func TestParseParagraphs(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   string
	}{
		{
			name: "SplitAtBlankLine",
			tokens: []Token{
				tok(TextToken, "a"), nl,
				tok(TextToken, "b"), nl,
				tok(EmptyLineToken, "\n"),
				tok(TextToken, "c"),
			},
			want: "Document(Block,Block)",
		},
		{
			name: "TakesTitle",
			tokens: []Token{
				tok(TitleToken, ".T"), nl,
				tok(TextToken, "a"),
			},
			want: "Document(Block(Title))",
		},
		{
			name: "EndsAtFence",
			tokens: []Token{
				tok(TextToken, "a"), nl,
				tok(BlockDelimiterToken, "===="), nl,
				tok(TextToken, "x"), nl,
				tok(BlockDelimiterToken, "===="),
			},
			want: "Document(Block,Block)",
		},
		{
			name: "TitleInsideDelimitedBlock",
			tokens: []Token{
				tok(BlockDelimiterToken, "===="), nl,
				tok(TitleToken, ".T"), nl,
				tok(TextToken, "a"), nl,
				tok(BlockDelimiterToken, "===="),
			},
			want: "Document(Block(Block(Title)))",
		},
		{
			name: "CommentInside",
			tokens: []Token{
				tok(TextToken, "a"), nl,
				tok(LineCommentToken, "// c"), nl,
				tok(TextToken, "b"),
			},
			want: "Document(Block)",
		},
		{
			name: "ListIsNotParagraph",
			tokens: []Token{
				tok(BulletToken, "*"), tok(TextToken, "a"), nl,
				tok(EmptyLineToken, "\n"),
				tok(TextToken, "p"),
			},
			want: "Document(List(ListItem),Block)",
		},
		{
			name: "DescriptionTermIsNotParagraph",
			tokens: []Token{
				tok(DescriptionToken, "CPU"), tok(DescriptionEndToken, "::"),
				tok(TextToken, "a"),
			},
			want: "Document(List(DescriptionItem))",
		},
		{
			name: "HeadingEndsParagraph",
			tokens: []Token{
				tok(TextToken, "a"), nl,
				tok(HeadingToken, "== B"), nl,
				tok(TextToken, "b"),
			},
			want: "Document(Block,Section(Heading,Block))",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			doc, err := (&Parser{Paragraphs: true}).Parse(test.tokens)
			if err != nil {
				t.Fatal("Parse:", err)
			}
			if diff := cmp.Diff(test.want, sketch(doc.Root())); diff != "" {
				t.Errorf("structure (-want +got):\n%s", diff)
			}
			verifyDocument(t, doc, test.tokens)
		})
	}
}

func TestParseParagraphsOff(t *testing.T) {
	doc, err := Parse([]Token{
		tok(TitleToken, ".T"), nl,
		tok(TextToken, "a"), nl,
		tok(EmptyLineToken, "\n"),
		tok(TextToken, "b"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := sketch(doc.Root()), "Document(Title)"; got != want {
		t.Errorf("structure = %s; want %s", got, want)
	}
}

func TestParseStandaloneLines(t *testing.T) {
	for _, k := range []TokenKind{PageBreakToken, HeaderToken, HorizontalRuleToken} {
		t.Run(k.String(), func(t *testing.T) {
			tokens := []Token{
				tok(TextToken, "a"), nl,
				tok(EmptyLineToken, "\n"),
				tok(k, "<<<"), nl,
				tok(EmptyLineToken, "\n"),
				tok(TextToken, "b"),
			}
			doc, err := (&Parser{Paragraphs: true}).Parse(tokens)
			if err != nil {
				t.Fatal(err)
			}
			if got, want := sketch(doc.Root()), "Document(Block,Block)"; got != want {
				t.Errorf("structure = %s; want %s", got, want)
			}
			if leaf := doc.Leaf(3); leaf.Parent() != doc.Root() {
				t.Errorf("%v parent = %v; want document", k, leaf.Parent().Kind())
			}
			verifyDocument(t, doc, tokens)
		})
	}
}
