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
	"iter"
	"slices"
	"strings"
)

// Node is an immutable syntactic element.
//
// A node owns its source text verbatim, excluding its own leading and trailing trivia.
// The text of every child, together with the child's trivia, is embedded in the parent's
// text at the child's offset, so printing the root reproduces the source byte for byte.
//
// Nodes never change after construction. Edits produce new nodes along the path to the
// root and share all unaffected subtrees with the original tree.
type Node struct {
	kind     Kind
	value    string
	mods     Modifiers
	text     string
	leading  string
	trailing string
	children []*Node
	offsets  []int // start of each child's text, relative to text
	notes    Annotation
}

// Kind returns the kind of n.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindInvalid
	}

	return n.kind
}

// Value returns the kind-specific value of n: a name, operator, literal or type text.
func (n *Node) Value() string { return n.value }

// Modifiers returns the declaration modifiers of n.
func (n *Node) Modifiers() Modifiers { return n.mods }

// Text returns the source text of n without leading and trailing trivia.
func (n *Node) Text() string { return n.text }

// Leading returns the whitespace and comments preceding n.
func (n *Node) Leading() string { return n.leading }

// Trailing returns the whitespace and comments following n up to the end of its line.
func (n *Node) Trailing() string { return n.trailing }

// Len returns the number of children of n.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}

	return len(n.children)
}

// Child returns the i-th child of n or nil when there is no such child.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.children) {
		return nil
	}

	return n.children[i]
}

// Children yields the children of n in order.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if n == nil {
			return
		}

		for _, c := range n.children {
			if !yield(c) {
				return
			}
		}
	}
}

// Annotated reports whether n carries the annotation a.
func (n *Node) Annotated(a Annotation) bool {
	return n != nil && n.notes&a != 0
}

// String returns the printed form of n, including its trivia.
func (n *Node) String() string {
	if n == nil {
		return ""
	}

	return n.leading + n.text + n.trailing
}

// WithTrivia returns a copy of n with the given leading and trailing trivia.
func (n *Node) WithTrivia(leading, trailing string) *Node {
	if n.leading == leading && n.trailing == trailing {
		return n
	}

	c := *n
	c.leading, c.trailing = leading, trailing

	return &c
}

// WithLeading returns a copy of n with the given leading trivia.
func (n *Node) WithLeading(leading string) *Node {
	return n.WithTrivia(leading, n.trailing)
}

// WithoutTrivia returns a copy of n without leading and trailing trivia.
func (n *Node) WithoutTrivia() *Node {
	return n.WithTrivia("", "")
}

// WithAnnotation returns a copy of n carrying the annotation a in addition to existing ones.
func (n *Node) WithAnnotation(a Annotation) *Node {
	if n.notes&a == a {
		return n
	}

	c := *n
	c.notes |= a

	return &c
}

// splice returns a copy of n where the children in [from, to) together with their trivia
// are replaced by repl. The caller guarantees from < to and that no parent text lies between
// the replaced children.
func (n *Node) splice(from, to int, repl ...*Node) *Node {
	first, last := n.children[from], n.children[to-1]
	start := n.offsets[from] - len(first.leading)
	end := n.offsets[to-1] + len(last.text) + len(last.trailing)

	count := len(n.children) - (to - from) + len(repl)
	children := make([]*Node, 0, count)
	offsets := make([]int, 0, count)

	var b strings.Builder
	b.Grow(len(n.text))

	b.WriteString(n.text[:start]) // ignore error
	children = append(children, n.children[:from]...)
	offsets = append(offsets, n.offsets[:from]...)

	for _, r := range repl {
		b.WriteString(r.leading) // ignore error
		children = append(children, r)
		offsets = append(offsets, b.Len())
		b.WriteString(r.text)     // ignore error
		b.WriteString(r.trailing) // ignore error
	}

	delta := b.Len() - end
	b.WriteString(n.text[end:]) // ignore error

	for i := to; i < len(n.children); i++ {
		children = append(children, n.children[i])
		offsets = append(offsets, n.offsets[i]+delta)
	}

	c := *n
	c.text, c.children, c.offsets = b.String(), children, offsets

	return &c
}

// adjacent reports whether no parent text lies between children i and i+1.
func (n *Node) adjacent(i int) bool {
	prev, next := n.children[i], n.children[i+1]

	return n.offsets[i]+len(prev.text)+len(prev.trailing) == n.offsets[i+1]-len(next.leading)
}

// Equal reports whether a and b are structurally identical: same kind, value,
// modifiers and children, recursively. Leaves additionally compare their text, and
// [KindOther] nodes the tokens between their children.
// Trivia, positions and annotations are ignored.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}

	if a == nil || b == nil {
		return false
	}

	if a.kind != b.kind || a.value != b.value || a.mods != b.mods || len(a.children) != len(b.children) {
		return false
	}

	if len(a.children) == 0 {
		return a.text == b.text
	}

	if a.kind == KindOther && !tokensEqual(a, b) {
		return false
	}

	for i, c := range a.children {
		if !Equal(c, b.children[i]) {
			return false
		}
	}

	return true
}

// tokensEqual reports whether a and b have the same text outside their children,
// ignoring blanks. Both nodes must have the same number of children.
func tokensEqual(a, b *Node) bool {
	for i := range len(a.children) + 1 {
		if !slices.Equal(strings.Fields(a.gap(i)), strings.Fields(b.gap(i))) {
			return false
		}
	}

	return true
}

// gap returns the text of n preceding child i, or following the last child when
// i is the number of children. Child trivia is excluded.
func (n *Node) gap(i int) string {
	start, end := 0, len(n.text)

	if i > 0 {
		prev := n.children[i-1]
		start = n.offsets[i-1] + len(prev.text) + len(prev.trailing)
	}

	if i < len(n.children) {
		end = n.offsets[i] - len(n.children[i].leading)
	}

	return n.text[start:end]
}
