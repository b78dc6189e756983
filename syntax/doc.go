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

// Package syntax provides the persistent syntax tree analyzed by the detectors.
//
// # Nodes
//
// A [Node] is immutable and position independent. It carries its kind, a kind-specific
// value (name, operator, literal text), declaration modifiers, its children and its
// source text verbatim, together with the whitespace and comments (trivia) surrounding it.
//
// Trees are produced by an external parser through [FromSource] or synthesized with the
// New* builders, which lay out text canonically.
//
// # Cursors
//
// A [Cursor] adds the path from the root and with it absolute spans, parents and
// siblings. Edits through [Cursor.Replace] and [Cursor.Remove] return a new root and
// share every unaffected subtree with the original tree:
//
//	root := syntax.Root(tree)
//	for c := range root.Preorder(syntax.KindConditional) {
//	    fmt.Println(c.Span(), c.Node().Text())
//	}
//
// Printing a tree with [Node.String] reproduces untouched regions byte for byte.
package syntax
