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

// adoctree prints the tree parsed from an AsciiDoc token stream.
//
// The input is a YAML or JSON list of tokens, each with a kind and text:
//
//	- {kind: Heading, text: "= Title"}
//	- {kind: LineBreak, text: "\n"}
//	- {kind: Text, text: "Hello"}
//
// Kinds may be written with or without their "Token" suffix.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"zombiezen.com/go/asciidoc"
	"zombiezen.com/go/asciidoc/dump"
)

type options struct {
	spans      bool
	noSpace    bool
	debug      bool
	paragraphs bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := new(options)
	root := &cobra.Command{
		Use:          "adoctree",
		Short:        "Print the tree parsed from an AsciiDoc token stream",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log parser debug records to stderr")
	root.PersistentFlags().BoolVar(&opts.paragraphs, "paragraphs", false, "group running text into paragraph blocks")

	treeCmd := &cobra.Command{
		Use:   "tree [FILE]",
		Short: "Print the parsed tree, one node per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := readTokens(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			doc, err := newParser(cmd, opts).Parse(tokens)
			if err != nil {
				return err
			}
			return dump.Write(cmd.OutOrStdout(), doc.AsNode(), &dump.Options{
				Spans:          opts.spans,
				SkipWhitespace: opts.noSpace,
			})
		},
	}
	treeCmd.Flags().BoolVar(&opts.spans, "spans", false, "show byte spans")
	treeCmd.Flags().BoolVar(&opts.noSpace, "no-whitespace", false, "omit whitespace tokens")

	textCmd := &cobra.Command{
		Use:   "text [FILE]",
		Short: "Print the text reassembled from the parsed tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := readTokens(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			doc, err := newParser(cmd, opts).Parse(tokens)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), doc.Text())
			return err
		},
	}

	cellCmd := &cobra.Command{
		Use:   "cell [FILE]",
		Short: "Parse the token stream as a single table cell",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := readTokens(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			cell, err := newParser(cmd, opts).ParseCell(tokens)
			if err != nil {
				return err
			}
			return dump.Write(cmd.OutOrStdout(), cell.AsNode(), &dump.Options{
				Spans:          opts.spans,
				SkipWhitespace: opts.noSpace,
			})
		},
	}
	cellCmd.Flags().BoolVar(&opts.spans, "spans", false, "show byte spans")
	cellCmd.Flags().BoolVar(&opts.noSpace, "no-whitespace", false, "omit whitespace tokens")

	root.AddCommand(treeCmd, textCmd, cellCmd)
	return root
}

func newParser(cmd *cobra.Command, opts *options) *asciidoc.Parser {
	p := &asciidoc.Parser{Paragraphs: opts.paragraphs}
	if opts.debug {
		p.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return p
}

// readTokens reads a token list from the named file
// or from stdin if no file or "-" is named.
func readTokens(stdin io.Reader, args []string) ([]asciidoc.Token, error) {
	r := stdin
	name := "<stdin>"
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r, name = f, args[0]
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	tokens, err := decodeTokens(data)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return tokens, nil
}

func decodeTokens(data []byte) ([]asciidoc.Token, error) {
	var raw []struct {
		Kind string `yaml:"kind"`
		Text string `yaml:"text"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	tokens := make([]asciidoc.Token, 0, len(raw))
	for i, r := range raw {
		k, ok := asciidoc.ParseTokenKind(r.Kind)
		if !ok {
			k, ok = asciidoc.ParseTokenKind(r.Kind + "Token")
		}
		if !ok {
			return nil, fmt.Errorf("token %d: unknown kind %q", i, r.Kind)
		}
		tokens = append(tokens, asciidoc.Token{Kind: k, Text: r.Text})
	}
	return tokens, nil
}
