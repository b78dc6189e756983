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

import "iter"

// Annotation marks nodes for consumers downstream of an edit.
type Annotation uint8

const (
	// Reformat marks a synthesized region whose whitespace should be normalized by a formatter.
	Reformat Annotation = 1 << iota
)

// Annotated yields cursors of all nodes below (and including) root carrying the annotation a,
// in document order.
func Annotated(root *Node, a Annotation) iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		for c := range Root(root).Preorder() {
			if c.Node().Annotated(a) && !yield(c) {
				return
			}
		}
	}
}
