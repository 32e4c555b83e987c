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

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FrontmatterContent returns the raw text between the fences
// of a [FrontmatterKind] element
// and the trimmed text of its opening fence.
func FrontmatterContent(e *Element) (content, fence string) {
	if e.Kind() != FrontmatterKind {
		return "", ""
	}
	for _, c := range e.Children() {
		if leaf := c.Leaf(); leaf != nil && fence == "" && leaf.Kind == FrontmatterDelimiterToken {
			fence = strings.TrimSpace(leaf.Text)
		}
		if inner := c.Element(); inner.Kind() == CodeFenceContentKind {
			content = inner.Text()
		}
	}
	return content, fence
}

// DecodeFrontmatter decodes the content of a [FrontmatterKind] element into v.
// Content fenced with "---" is decoded as YAML
// and content fenced with "+++" is decoded as TOML.
// An element with no content leaves v unchanged.
func DecodeFrontmatter(e *Element, v any) error {
	if e.Kind() != FrontmatterKind {
		return fmt.Errorf("decode front matter: %v is not front matter", e.Kind())
	}
	content, fence := FrontmatterContent(e)
	if strings.TrimSpace(content) == "" {
		return nil
	}
	switch fence {
	case "---":
		if err := yaml.Unmarshal([]byte(content), v); err != nil {
			return fmt.Errorf("decode front matter: %w", err)
		}
	case "+++":
		if _, err := toml.Decode(content, v); err != nil {
			return fmt.Errorf("decode front matter: %w", err)
		}
	default:
		return fmt.Errorf("decode front matter: unknown fence %q", fence)
	}
	return nil
}
