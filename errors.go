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
	"errors"
	"fmt"
)

var (
	// ErrUnknownUnderline is wrapped by errors for old-style heading underlines
	// that use a character without an assigned heading level.
	ErrUnknownUnderline = errors.New("unknown heading underline character")

	// ErrMalformedCell is wrapped by errors for cell token slices
	// that do not re-parse into exactly one cell.
	ErrMalformedCell = errors.New("malformed table cell")
)

// A DefectError reports that the token stream violated the parser's
// input contract, for example a tokenizer emitting a heading underline
// the grammar does not define.
// Defects are never caused by ordinary document content:
// the parser accepts any well-formed token stream.
type DefectError struct {
	// Offset is the byte offset of Token in the parsed text.
	Offset int
	// Token is the token being parsed when the defect was detected.
	// It is the zero value if the defect was detected at end of input.
	Token Token
	Err   error
}

func (e *DefectError) Error() string {
	if e.Token.Kind == 0 {
		return fmt.Sprintf("asciidoc: internal error at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("asciidoc: internal error at offset %d (%v %q): %v", e.Offset, e.Token.Kind, e.Token.Text, e.Err)
}

func (e *DefectError) Unwrap() error {
	return e.Err
}

// defect is the panic value used to unwind a parse.
// It is recovered at the API boundary and returned as a *DefectError.
type defect struct {
	err *DefectError
}

// recoverDefect converts a defect panic into an error stored in *errp.
// Any other panic is propagated.
func recoverDefect(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	d, ok := r.(defect)
	if !ok {
		panic(r)
	}
	*errp = d.err
}
