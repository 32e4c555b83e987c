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
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	t.Run("Simple", func(t *testing.T) {
		cell, err := ParseCell([]Token{tok(CellSeparatorToken, "|"), tok(TextToken, "b")})
		require.NoError(t, err)
		assert.Equal(t, CellKind, cell.Kind())
		assert.Nil(t, cell.Parent())
		assert.Equal(t, "|b", cell.Text())
		assert.Equal(t, Span{0, 2}, cell.Span())
		require.Equal(t, 2, cell.ChildCount())
		leaf := cell.Child(1).Leaf()
		require.NotNil(t, leaf)
		assert.Equal(t, Span{1, 2}, leaf.Span())
		assert.Same(t, cell, leaf.Parent())
	})

	t.Run("LeadingWhitespace", func(t *testing.T) {
		cell, err := ParseCell([]Token{
			tok(WhiteSpaceToken, " "),
			tok(CellSeparatorToken, "|"),
			tok(TextToken, "b"),
		})
		require.NoError(t, err)
		assert.Equal(t, "|b", cell.Text())
		assert.Equal(t, Span{1, 3}, cell.Span())
	})

	t.Run("NestedStructure", func(t *testing.T) {
		cell, err := ParseCell([]Token{
			tok(CellSeparatorToken, "a|"),
			tok(ListingBlockDelimiterToken, "----"), nl,
			tok(TextToken, "code"), nl,
			tok(ListingBlockDelimiterToken, "----"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Cell(Listing(CodeFenceContent))", sketch(cell))
		assert.Equal(t, Span{0, 16}, cell.Span())
	})
}

func TestParseCellMalformed(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
	}{
		{
			name:   "NoSeparator",
			tokens: []Token{tok(TextToken, "a")},
		},
		{
			name: "LeadingText",
			tokens: []Token{
				tok(TextToken, "a"),
				tok(CellSeparatorToken, "|"),
				tok(TextToken, "b"),
			},
		},
		{
			name: "LeadingBlock",
			tokens: []Token{
				tok(BlockDelimiterToken, "===="), nl,
				tok(BlockDelimiterToken, "===="), nl,
				tok(CellSeparatorToken, "|"),
				tok(TextToken, "b"),
			},
		},
		{
			name: "TwoCells",
			tokens: []Token{
				tok(CellSeparatorToken, "|"), tok(TextToken, "a"),
				tok(CellSeparatorToken, "|"), tok(TextToken, "b"),
			},
		},
		{
			name: "ClosesTable",
			tokens: []Token{
				tok(CellSeparatorToken, "|"), tok(TextToken, "a"), nl,
				tok(BlockDelimiterToken, "|==="),
			},
		},
		{
			name: "UnterminatedListing",
			tokens: []Token{
				tok(CellSeparatorToken, "|"),
				tok(ListingBlockDelimiterToken, "----"),
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cell, err := ParseCell(test.tokens)
			if err == nil {
				t.Fatalf("ParseCell(...) = %s, <nil>; want error", sketch(cell))
			}
			if !errors.Is(err, ErrMalformedCell) {
				t.Errorf("ParseCell(...) error = %v; want to wrap ErrMalformedCell", err)
			}
			var de *DefectError
			if !errors.As(err, &de) {
				t.Errorf("ParseCell(...) error = %T; want *DefectError", err)
			}
		})
	}
}

func TestParseCellLeadingText(t *testing.T) {
	tokens := []Token{
		tok(CellSeparatorToken, "|"),
		tok(TextToken, "x"),
	}
	for _, lead := range []Token{tok(TextToken, "a"), tok(AttrsEndToken, "]")} {
		t.Run(lead.Kind.String(), func(t *testing.T) {
			_, err := ParseCell(append([]Token{lead}, tokens...))
			var de *DefectError
			require.ErrorAs(t, err, &de)
			assert.ErrorIs(t, err, ErrMalformedCell)
			assert.Equal(t, 0, de.Offset)
			assert.Equal(t, lead, de.Token)
		})
	}
}

func TestParseCellDefect(t *testing.T) {
	_, err := ParseCell([]Token{
		tok(CellSeparatorToken, "|"),
		tok(HeadingOldStyleToken, "T\n!!!"),
	})
	assert.ErrorIs(t, err, ErrUnknownUnderline)
}

func TestParseCells(t *testing.T) {
	ctx := context.Background()

	t.Run("Order", func(t *testing.T) {
		cells := make([][]Token, 50)
		for i := range cells {
			cells[i] = []Token{
				tok(CellSeparatorToken, "|"),
				tok(TextToken, fmt.Sprint(i)),
			}
		}
		got, err := ParseCells(ctx, cells)
		require.NoError(t, err)
		require.Len(t, got, len(cells))
		for i, cell := range got {
			assert.Equal(t, fmt.Sprintf("|%d", i), cell.Text())
		}
	})

	t.Run("Error", func(t *testing.T) {
		_, err := ParseCells(ctx, [][]Token{
			{tok(CellSeparatorToken, "|")},
			{tok(TextToken, "a")},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedCell)
		assert.True(t, strings.HasPrefix(err.Error(), "cell 1: "), "error = %q", err)
	})

	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := ParseCells(ctx, [][]Token{{tok(CellSeparatorToken, "|")}})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
