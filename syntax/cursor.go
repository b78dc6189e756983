// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package syntax

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ErrNotRemovable is returned when removing a node that is not part of a statement or declaration list.
var ErrNotRemovable = errors.New("node is not removable")

// Cursor is a position of a node inside a tree.
//
// While [Node] values are position independent and shared between trees, a Cursor knows
// the path from the root and therefore the absolute [Span] of its node in the printed tree.
// The zero Cursor is invalid.
type Cursor struct {
	parent *Cursor
	node   *Node
	index  int
	start  int
}

// Root returns a cursor for the root node n.
func Root(n *Node) Cursor {
	if n == nil {
		return Cursor{}
	}

	return Cursor{node: n, index: -1, start: len(n.leading)}
}

// Valid reports whether c points to a node.
func (c Cursor) Valid() bool { return c.node != nil }

// Node returns the node at the cursor.
func (c Cursor) Node() *Node { return c.node }

// Kind returns the kind of the node at the cursor.
func (c Cursor) Kind() Kind { return c.node.Kind() }

// Index returns the position of the node in its parent, or -1 for the root.
func (c Cursor) Index() int { return c.index }

// Span returns the absolute span of the node's text, excluding its trivia.
func (c Cursor) Span() Span {
	if c.node == nil {
		return NoSpan
	}

	return Span{Start: c.start, End: c.start + len(c.node.text)}
}

// Parent returns the cursor of the enclosing node.
func (c Cursor) Parent() (Cursor, bool) {
	if c.parent == nil {
		return Cursor{}, false
	}

	return *c.parent, true
}

// Child returns the cursor of the i-th child. The result is invalid when there is no such child.
func (c Cursor) Child(i int) Cursor {
	if c.node == nil || i < 0 || i >= len(c.node.children) {
		return Cursor{}
	}

	p := c

	return Cursor{parent: &p, node: c.node.children[i], index: i, start: c.start + c.node.offsets[i]}
}

// Children yields the cursors of all children.
func (c Cursor) Children() iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		for i := range c.node.Len() {
			if !yield(c.Child(i)) {
				return
			}
		}
	}
}

// PrevSibling returns the cursor of the preceding child of the same parent.
func (c Cursor) PrevSibling() (Cursor, bool) {
	if c.parent == nil || c.index <= 0 {
		return Cursor{}, false
	}

	return c.parent.Child(c.index - 1), true
}

// NextSibling returns the cursor of the following child of the same parent.
func (c Cursor) NextSibling() (Cursor, bool) {
	if c.parent == nil || c.index+1 >= c.parent.node.Len() {
		return Cursor{}, false
	}

	return c.parent.Child(c.index + 1), true
}

// Enclosing returns the nearest proper ancestor with one of the given kinds.
func (c Cursor) Enclosing(kinds ...Kind) (Cursor, bool) {
	for p, ok := c.Parent(); ok; p, ok = p.Parent() {
		if len(kinds) == 0 || slices.Contains(kinds, p.node.kind) {
			return p, true
		}
	}

	return Cursor{}, false
}

// Preorder yields c and all its descendants in depth-first pre-order (document order).
// When kinds are given, only nodes of these kinds are yielded, but all nodes are descended into.
func (c Cursor) Preorder(kinds ...Kind) iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		if c.node == nil {
			return
		}

		c.preorder(kinds, yield)
	}
}

func (c Cursor) preorder(kinds []Kind, yield func(Cursor) bool) bool {
	if (len(kinds) == 0 || slices.Contains(kinds, c.node.kind)) && !yield(c) {
		return false
	}

	for i := range c.node.children {
		if !c.Child(i).preorder(kinds, yield) {
			return false
		}
	}

	return true
}

// FindNode returns the outermost node below c with the given kind and exactly the given span.
func (c Cursor) FindNode(span Span, kind Kind) (Cursor, bool) {
	for c.node != nil && c.Span().Contains(span) {
		if c.Span() == span && c.node.kind == kind {
			return c, true
		}

		next := Cursor{}
		for child := range c.Children() {
			if child.Span().Contains(span) {
				next = child
				break
			}
		}

		c = next
	}

	return Cursor{}, false
}

// Replace returns the root of a new tree where the node at c is replaced by n.
// The trivia of n is used as is.
func (c Cursor) Replace(n *Node) *Node {
	for cur := c; ; {
		p, ok := cur.Parent()
		if !ok {
			return n
		}

		n = p.node.splice(cur.index, cur.index+1, n)
		cur = p
	}
}

// Remove returns the root of a new tree where the node at c and its trivia are removed.
//
// Only members of statement or declaration lists can be removed. When the removed node
// ended its line but the preceding sibling does not, the line break is kept so the
// following code does not move up onto the previous line.
func (c Cursor) Remove() (*Node, error) {
	p, ok := c.Parent()
	if !ok || !p.node.kind.IsList() {
		return nil, fmt.Errorf("%w: %v in %v", ErrNotRemovable, c.node.Kind(), p.node.Kind())
	}

	i := c.index

	if i > 0 && p.node.adjacent(i-1) {
		prev := p.node.children[i-1]
		if keep := lineBreak(c.node.trailing); keep != "" && !strings.Contains(prev.trailing, "\n") {
			reflowed := prev.WithTrivia(prev.leading, prev.trailing+keep)

			return p.Replace(p.node.splice(i-1, i+1, reflowed)), nil
		}
	}

	return p.Replace(p.node.splice(i, i+1)), nil
}

// lineBreak returns the line break at the end of trailing trivia, if any.
func lineBreak(trailing string) string {
	switch {
	case strings.HasSuffix(trailing, "\r\n"):
		return "\r\n"

	case strings.HasSuffix(trailing, "\n"):
		return "\n"

	default:
		return ""
	}
}
