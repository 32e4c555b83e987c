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

// Package corpus provides sample token streams with their expected trees.
package corpus

import (
	_ "embed"
	"encoding/json"
	"strings"
)

// Example is a single token stream and the tree it parses to.
type Example struct {
	Name    string
	Section string
	Tokens  []Token
	// Paragraphs is whether the example is parsed
	// with paragraph grouping turned on.
	Paragraphs bool
	// Tree is the expected tree as written by the dump package
	// with whitespace skipped, one line per node.
	Tree []string
}

// Token is a token with its kind spelled as the kind's String method returns.
type Token struct {
	Kind string
	Text string
}

// Want returns the expected dump output.
func (ex Example) Want() string {
	return strings.Join(ex.Tree, "\n") + "\n"
}

// Text returns the concatenated text of the example's tokens.
func (ex Example) Text() string {
	sb := new(strings.Builder)
	for _, tok := range ex.Tokens {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

//go:embed examples.json
var examplesData []byte

// Load returns the examples.
func Load() ([]Example, error) {
	var examples []Example
	if err := json.Unmarshal(examplesData, &examples); err != nil {
		return nil, err
	}
	return examples, nil
}
