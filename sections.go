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
)

// sectionFrame is an open section.
// Levels strictly increase from the bottom of the stack to the top.
type sectionFrame struct {
	level int
	m     marker
}

// underlineLevels maps the last character of an old-style heading underline
// to its heading level.
var underlineLevels = map[byte]int{
	'=': 1,
	'-': 2,
	'~': 3,
	'^': 4,
	'+': 5,
}

// HeadingLevel returns the level of a heading token's text.
// For a heading like "== Title", the level is the number of leading
// '=' or '#' characters.
// For an old-style heading like "Title\n-----", the level is derived
// from the underline character:
// '=' is 1, '-' is 2, '~' is 3, '^' is 4, and '+' is 5.
// Any other underline character returns an error wrapping [ErrUnknownUnderline].
func HeadingLevel(text string) (int, error) {
	n := 0
	for n < len(text) && (text[n] == '=' || text[n] == '#') {
		n++
	}
	if n > 0 {
		return n, nil
	}

	text = strings.TrimRight(text, " \t\r\n")
	if text == "" {
		return 0, fmt.Errorf("heading level: %w: empty heading", ErrUnknownUnderline)
	}
	c := text[len(text)-1]
	level, ok := underlineLevels[c]
	if !ok {
		return 0, fmt.Errorf("heading level: %w %q", ErrUnknownUnderline, c)
	}
	return level, nil
}

// parseHeading opens a section at the current heading token.
func (dp *docParser) parseHeading() {
	level, err := HeadingLevel(dp.b.text())
	if err != nil {
		dp.fail(err)
	}

	// Blocks can't span sections.
	// They are closed first so that they end inside the section being closed.
	for len(dp.blocks) > 0 {
		f := dp.popBlock()
		dp.closeBefore(f.m, f.kind)
	}
	dp.closeSections(level)

	m := dp.takePreBlock()
	dp.b.setLevel(m, level)
	dp.sections = append(dp.sections, sectionFrame{level: level, m: m})

	heading := dp.b.mark()
	dp.b.setLevel(heading, level)
	dp.newLines = 0
	for dp.newLines == 0 {
		switch dp.b.kind() {
		case HeadingToken, HeadingOldStyleToken:
			dp.b.advance()
		case InlineIDStartToken:
			dp.parseInlineID()
		case AttributeRefStartToken:
			dp.parseAttributeRef()
		default:
			dp.b.done(heading, HeadingKind)
			return
		}
	}
	dp.b.done(heading, HeadingKind)
}

// closeSections completes every open section
// whose level is greater than or equal to level.
func (dp *docParser) closeSections(level int) {
	for len(dp.sections) > 0 {
		top := dp.sections[len(dp.sections)-1]
		if top.level < level {
			return
		}
		dp.sections = dp.sections[:len(dp.sections)-1]
		dp.closeBefore(top.m, SectionKind)
	}
}
