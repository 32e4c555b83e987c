// Copyright 2024 Ross Light
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

// A Cursor is the position of a [Walk] in a tree.
type Cursor struct {
	node   Node
	parent *Element
	depth  int
}

// Node returns the node being visited.
func (c *Cursor) Node() Node {
	return c.node
}

// Parent returns the element whose child is being visited.
// It is nil at the root of the walk,
// even if the root has a parent in its tree.
func (c *Cursor) Parent() *Element {
	return c.parent
}

// Depth returns how far below the root of the walk the node is.
func (c *Cursor) Depth() int {
	return c.depth
}

// WalkOptions holds the callbacks for [Walk].
// Either callback may be nil.
type WalkOptions struct {
	// Pre is called when a node is reached.
	// Returning false skips the node's descendants and its call to Post.
	Pre func(c *Cursor) bool
	// Post is called after all of a node's descendants.
	// Returning false ends the walk.
	Post func(c *Cursor) bool
}

// Walk visits root and every node below it in document order.
// It keeps its own stack of open elements,
// so the depth of the tree is not limited by the goroutine stack.
func Walk(root Node, opts *WalkOptions) {
	type frame struct {
		elem *Element
		next int
	}
	c := new(Cursor)
	visit := func(f func(*Cursor) bool, n Node, parent *Element, depth int) bool {
		if f == nil {
			return true
		}
		c.node, c.parent, c.depth = n, parent, depth
		return f(c)
	}

	if !visit(opts.Pre, root, nil, 0) {
		return
	}
	e := root.Element()
	if e == nil {
		visit(opts.Post, root, nil, 0)
		return
	}
	stack := []frame{{elem: e}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < top.elem.ChildCount() {
			child := top.elem.Child(top.next)
			top.next++
			depth := len(stack)
			if !visit(opts.Pre, child, top.elem, depth) {
				continue
			}
			if ce := child.Element(); ce != nil {
				stack = append(stack, frame{elem: ce})
			} else if !visit(opts.Post, child, top.elem, depth) {
				return
			}
			continue
		}

		done := top.elem
		stack = stack[:len(stack)-1]
		var parent *Element
		if len(stack) > 0 {
			parent = stack[len(stack)-1].elem
		}
		if !visit(opts.Post, done.AsNode(), parent, len(stack)) {
			return
		}
	}
}
