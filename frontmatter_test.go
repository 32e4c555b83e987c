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

type frontmatterFields struct {
	Title string   `yaml:"title" toml:"title"`
	Tags  []string `yaml:"tags" toml:"tags"`
}

func parseFrontmatter(tb testing.TB, fence string, lines ...string) *Element {
	tb.Helper()
	tokens := []Token{tok(FrontmatterDelimiterToken, fence), nl}
	for _, line := range lines {
		tokens = append(tokens, tok(TextToken, line), nl)
	}
	tokens = append(tokens, tok(FrontmatterDelimiterToken, fence), nl, tok(HeadingToken, "= Doc"))
	doc, err := Parse(tokens)
	if err != nil {
		tb.Fatal(err)
	}
	fm := doc.Frontmatter()
	if fm == nil {
		tb.Fatal("no front matter found")
	}
	return fm
}

func TestDecodeFrontmatter(t *testing.T) {
	tests := []struct {
		name  string
		fence string
		lines []string
	}{
		{
			name:  "YAML",
			fence: "---",
			lines: []string{"title: Hello", "tags: [a, b]"},
		},
		{
			name:  "TOML",
			fence: "+++",
			lines: []string{`title = "Hello"`, `tags = ["a", "b"]`},
		},
	}
	want := frontmatterFields{Title: "Hello", Tags: []string{"a", "b"}}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fm := parseFrontmatter(t, test.fence, test.lines...)
			content, fence := FrontmatterContent(fm)
			if fence != test.fence {
				t.Errorf("fence = %q; want %q", fence, test.fence)
			}
			if want := test.lines[0] + "\n" + test.lines[1]; content != want {
				t.Errorf("content = %q; want %q", content, want)
			}

			var got frontmatterFields
			if err := DecodeFrontmatter(fm, &got); err != nil {
				t.Fatal("DecodeFrontmatter:", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("fields (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeFrontmatterEmpty(t *testing.T) {
	fm := parseFrontmatter(t, "---")
	got := frontmatterFields{Title: "unchanged"}
	if err := DecodeFrontmatter(fm, &got); err != nil {
		t.Fatal("DecodeFrontmatter:", err)
	}
	if got.Title != "unchanged" {
		t.Errorf("Title = %q; want %q", got.Title, "unchanged")
	}
}

func TestDecodeFrontmatterErrors(t *testing.T) {
	t.Run("Syntax", func(t *testing.T) {
		fm := parseFrontmatter(t, "---", "title: [unclosed")
		var got frontmatterFields
		if err := DecodeFrontmatter(fm, &got); err == nil {
			t.Error("DecodeFrontmatter did not return an error")
		}
	})
	t.Run("NotFrontmatter", func(t *testing.T) {
		doc, err := Parse([]Token{tok(TextToken, "x")})
		if err != nil {
			t.Fatal(err)
		}
		var got frontmatterFields
		if err := DecodeFrontmatter(doc.Root(), &got); err == nil {
			t.Error("DecodeFrontmatter did not return an error")
		}
	})
}
