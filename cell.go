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
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Synthetic table wrapped around a cell's tokens.
var (
	cellPrefix = []Token{
		{Kind: BlockDelimiterToken, Text: "|==="},
		{Kind: LineBreakToken, Text: "\n"},
	}
	cellSuffix = []Token{
		{Kind: LineBreakToken, Text: "\n"},
		{Kind: BlockDelimiterToken, Text: "|==="},
	}
)

// ParseCell parses a single table cell with the default parser.
func ParseCell(tokens []Token) (*Element, error) {
	return new(Parser).ParseCell(tokens)
}

// ParseCell parses the tokens of a single table cell in isolation,
// as if they appeared alone in a table.
// tokens must start with a [CellSeparatorToken],
// optionally preceded by whitespace.
//
// The returned element has kind [CellKind] and no parent.
// Its spans are relative to the start of tokens.
// If the tokens do not form exactly one cell,
// ParseCell returns a [*DefectError] wrapping [ErrMalformedCell]
// whose offset is also relative to the start of tokens.
func (p *Parser) ParseCell(tokens []Token) (*Element, error) {
	wrapped := make([]Token, 0, len(cellPrefix)+len(tokens)+len(cellSuffix))
	wrapped = append(wrapped, cellPrefix...)
	wrapped = append(wrapped, tokens...)
	wrapped = append(wrapped, cellSuffix...)

	doc, err := p.Parse(wrapped)
	if err != nil {
		return nil, err
	}
	prefixLen := len(cellPrefix[0].Text) + len(cellPrefix[1].Text)
	cell, defect := extractCell(doc, prefixLen)
	if defect != nil {
		p.logger().Error("Malformed cell", slog.Any("error", defect))
		return nil, defect
	}
	shiftSpans(cell, -prefixLen)
	return cell, nil
}

// extractCell finds the cell inside a parsed synthetic table
// whose first prefixLen bytes precede the cell's tokens.
func extractCell(doc *Document, prefixLen int) (*Element, *DefectError) {
	table := doc.ChildCount() == 1 && doc.Child(0).Element().Kind() == BlockKind
	if !table || doc.Child(0).Span() != doc.Span() {
		return nil, &DefectError{
			Err: fmt.Errorf("%w: tokens escape the enclosing table", ErrMalformedCell),
		}
	}
	block := doc.Child(0).Element()
	last := block.ChildCount() - 1
	if last < 1 || block.Child(last).Leaf() == nil {
		return nil, &DefectError{
			Offset: block.Span().End - prefixLen,
			Err:    fmt.Errorf("%w: table not closed", ErrMalformedCell),
		}
	}
	// Child 0 is the table's opening delimiter.
	i := 1
	for ; i < last; i++ {
		c := block.Child(i)
		if c.Element().Kind() == CellKind {
			break
		}
		if leaf := c.Leaf(); leaf == nil || !leaf.Kind.IsWhitespace() {
			return nil, unconsumed(c, prefixLen, "before")
		}
	}
	if i >= last {
		return nil, &DefectError{
			Err: fmt.Errorf("%w: no cell separator", ErrMalformedCell),
		}
	}
	cell := block.Child(i).Element()
	for _, c := range block.Children()[i+1 : last] {
		if leaf := c.Leaf(); leaf == nil || !leaf.Kind.IsWhitespace() {
			return nil, unconsumed(c, prefixLen, "after")
		}
	}
	cell.parent = nil
	return cell, nil
}

func unconsumed(c Node, prefixLen int, where string) *DefectError {
	span := c.Span()
	span.Start -= prefixLen
	span.End -= prefixLen
	tok := Token{}
	if leaf := c.Leaf(); leaf != nil {
		tok = leaf.Token
	}
	return &DefectError{
		Offset: span.Start,
		Token:  tok,
		Err:    fmt.Errorf("%w: unconsumed %v %s cell", ErrMalformedCell, span, where),
	}
}

// shiftSpans moves the spans of e and its descendants by delta bytes.
func shiftSpans(e *Element, delta int) {
	stack := []*Element{e}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		curr.span.Start += delta
		curr.span.End += delta
		for _, c := range curr.children {
			if leaf := c.Leaf(); leaf != nil {
				leaf.start += delta
			} else {
				stack = append(stack, c.Element())
			}
		}
	}
}

// ParseCells parses many cells concurrently with the default parser.
func ParseCells(ctx context.Context, cells [][]Token) ([]*Element, error) {
	return new(Parser).ParseCells(ctx, cells)
}

// ParseCells parses each element of cells with [*Parser.ParseCell],
// using up to GOMAXPROCS goroutines.
// The returned slice is in the same order as cells.
// Cancelling ctx stops cells from being parsed
// but does not interrupt a parse in progress.
func (p *Parser) ParseCells(ctx context.Context, cells [][]Token) ([]*Element, error) {
	result := make([]*Element, len(cells))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, tokens := range cells {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cell, err := p.ParseCell(tokens)
			if err != nil {
				return fmt.Errorf("cell %d: %w", i, err)
			}
			result[i] = cell
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
