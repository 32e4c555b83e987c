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

func TestAnchorMapExtract(t *testing.T) {
	doc, err := Parse([]Token{
		tok(BlockIDStartToken, "[["), tok(BlockIDToken, "dup"),
		tok(SeparatorToken, ","), tok(BlockRefTextToken, "First"),
		tok(BlockIDEndToken, "]]"), nl,
		tok(HeadingToken, "== One"), nl,
		tok(TextToken, "see "),
		tok(InlineIDStartToken, "[["), tok(BlockIDToken, "here"), tok(InlineIDEndToken, "]]"), nl,
		tok(EmptyLineToken, "\n"),
		tok(AttrsStartToken, "["), tok(AttrNameToken, "id"), tok(AssignmentToken, "="),
		tok(AttrValueToken, "ex"), tok(AttrsEndToken, "]"), nl,
		tok(BlockDelimiterToken, "===="), nl,
		tok(BlockIDStartToken, "[["), tok(BlockIDToken, "dup"),
		tok(SeparatorToken, ","), tok(BlockRefTextToken, "Second"),
		tok(BlockIDEndToken, "]]"), nl,
		tok(TextToken, "x"), nl,
		tok(BlockDelimiterToken, "===="),
	})
	if err != nil {
		t.Fatal(err)
	}
	m := make(AnchorMap)
	m.Extract(doc.AsNode())

	got := make(map[string]string)
	for id, a := range m {
		if a.ID.Kind() != BlockIDKind {
			t.Errorf("m[%q].ID.Kind() = %v; want %v", id, a.ID.Kind(), BlockIDKind)
		}
		if NormalizeID(a.ID.Text()) != id {
			t.Errorf("m[%q].ID.Text() = %q", id, a.ID.Text())
		}
		got[id] = a.Label
	}
	want := map[string]string{
		"dup":  "First",
		"here": "",
		"ex":   "",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("anchors (-want +got):\n%s", diff)
	}

	var matcher AnchorMatcher = m
	if !matcher.MatchAnchor("here") {
		t.Error(`MatchAnchor("here") = false; want true`)
	}
	if matcher.MatchAnchor("missing") {
		t.Error(`MatchAnchor("missing") = true; want false`)
	}
}

func TestAnchorMapExtractKeepsExisting(t *testing.T) {
	doc, err := Parse([]Token{
		tok(BlockIDStartToken, "[["), tok(BlockIDToken, "a"), tok(BlockIDEndToken, "]]"),
	})
	if err != nil {
		t.Fatal(err)
	}
	m := AnchorMap{"a": {Label: "earlier"}}
	m.Extract(doc.AsNode())
	if got := m["a"]; got.ID != nil || got.Label != "earlier" {
		t.Errorf(`m["a"] = %+v; want existing entry`, got)
	}
}

func TestAnchorMapExtractBibliography(t *testing.T) {
	doc, err := Parse([]Token{
		tok(BulletToken, "*"), tok(WhiteSpaceToken, " "),
		tok(BibStartToken, "[[["), tok(BlockIDToken, "knuth"),
		tok(SeparatorToken, ","), tok(BlockRefTextToken, "Knuth 1984"),
		tok(BibEndToken, "]]]"), tok(WhiteSpaceToken, " "),
		tok(TextToken, "The Art of Computer Programming"),
	})
	if err != nil {
		t.Fatal(err)
	}
	m := make(AnchorMap)
	m.Extract(doc.AsNode())
	a, ok := m["knuth"]
	if !ok {
		t.Fatalf("m = %v; want knuth entry", m)
	}
	if a.Label != "Knuth 1984" {
		t.Errorf("Label = %q; want %q", a.Label, "Knuth 1984")
	}
	if got := a.ID.Parent().Kind(); got != ListItemKind {
		t.Errorf("ID.Parent().Kind() = %v; want %v", got, ListItemKind)
	}
}

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"intro", "intro"},
		{" intro\n", "intro"},
		{"cafe\u0301", "caf\u00e9"},
		{" caf\u00e9 ", "caf\u00e9"},
	}
	for _, test := range tests {
		if got := NormalizeID(test.id); got != test.want {
			t.Errorf("NormalizeID(%q) = %q; want %q", test.id, got, test.want)
		}
	}
}
