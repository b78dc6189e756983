// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package astutil

import (
	"iter"

	"fillmore-labs.com/codeissues/syntax"
)

// Unparen returns n with all enclosing parentheses removed.
func Unparen(n *syntax.Node) *syntax.Node {
	for n.Kind() == syntax.KindParen {
		n = n.Child(0)
	}

	return n
}

// AllOfKind yields n and all its descendants of the given kinds.
func AllOfKind(n *syntax.Node, kinds ...syntax.Kind) iter.Seq[*syntax.Node] {
	return func(yield func(*syntax.Node) bool) {
		for c := range syntax.Root(n).Preorder(kinds...) {
			if !yield(c.Node()) {
				return
			}
		}
	}
}

// AllDeclaredNames yields all variable names declared by a local variable or field declaration.
func AllDeclaredNames(decl *syntax.Node) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, d := range decl.Declarators() {
			if !yield(d.Value()) {
				return
			}
		}
	}
}

// AllParameterNames yields the parameter names of a method declaration.
func AllParameterNames(method *syntax.Node) iter.Seq[string] {
	return func(yield func(string) bool) {
		if method.Kind() != syntax.KindMethod {
			return
		}

		for p := range method.Child(1).Children() {
			if p.Kind() != syntax.KindParameter {
				continue
			}

			if !yield(p.Value()) {
				return
			}
		}
	}
}
