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

// Cond returns the condition of a conditional expression or if statement.
func (n *Node) Cond() *Node {
	switch n.Kind() {
	case KindConditional, KindIf:
		return n.Child(0)

	default:
		return nil
	}
}

// Then returns the true branch of a conditional expression or if statement.
func (n *Node) Then() *Node {
	switch n.Kind() {
	case KindConditional, KindIf:
		return n.Child(1)

	default:
		return nil
	}
}

// Else returns the false branch of a conditional expression or if statement, if any.
func (n *Node) Else() *Node {
	switch n.Kind() {
	case KindConditional, KindIf:
		return n.Child(2)

	default:
		return nil
	}
}

// Left returns the target of an assignment or the left operand of a binary expression.
func (n *Node) Left() *Node {
	switch n.Kind() {
	case KindAssign, KindBinary:
		return n.Child(0)

	default:
		return nil
	}
}

// Right returns the assigned value or the right operand of a binary expression.
func (n *Node) Right() *Node {
	switch n.Kind() {
	case KindAssign, KindBinary:
		return n.Child(1)

	default:
		return nil
	}
}

// Init returns the initializer of a declarator, if any.
func (n *Node) Init() *Node {
	if n.Kind() != KindDeclarator {
		return nil
	}

	return n.Child(0)
}

// Base returns the object expression of a member access.
func (n *Node) Base() *Node {
	if n.Kind() != KindMemberAccess {
		return nil
	}

	return n.Child(0)
}

// Declarators returns the declarators of a local or field declaration.
func (n *Node) Declarators() []*Node {
	switch n.Kind() {
	case KindLocalDecl, KindField:
		if len(n.children) > 1 {
			return n.children[1:]
		}
	}

	return nil
}

// Body returns the body of a method, if any.
func (n *Node) Body() *Node {
	if n.Kind() != KindMethod {
		return nil
	}

	return n.Child(2)
}
