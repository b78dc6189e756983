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

import "strings"

// layout assembles the text of a synthesized node from tokens and children.
type layout struct {
	buf      strings.Builder
	children []*Node
	offsets  []int
}

func (l *layout) token(s string) {
	l.buf.WriteString(s) // ignore error
}

// child appends n with its trivia. A child without leading trivia is separated by sep,
// except at the start of the node, where leading trivia is dropped.
func (l *layout) child(n *Node, sep string) {
	switch {
	case l.buf.Len() == 0:
		n = n.WithLeading("")

	case n.leading == "" && sep != "":
		n = n.WithLeading(sep)
	}

	l.buf.WriteString(n.leading) // ignore error
	l.offsets = append(l.offsets, l.buf.Len())
	l.children = append(l.children, n)
	l.buf.WriteString(n.text)     // ignore error
	l.buf.WriteString(n.trailing) // ignore error
}

func (l *layout) node(kind Kind, value string, mods Modifiers) *Node {
	return &Node{
		kind:     kind,
		value:    value,
		mods:     mods,
		text:     l.buf.String(),
		children: l.children,
		offsets:  l.offsets,
	}
}

func leaf(kind Kind, value, text string) *Node {
	return &Node{kind: kind, value: value, text: text}
}

// NewIdent creates an identifier.
func NewIdent(name string) *Node { return leaf(KindIdent, name, name) }

// NewLiteral creates a literal with the given source text.
func NewLiteral(text string) *Node { return leaf(KindLiteral, text, text) }

// NewThis creates a reference to the current instance.
func NewThis() *Node { return leaf(KindThis, "this", "this") }

// NewType creates a type reference.
func NewType(text string) *Node { return leaf(KindType, text, text) }

// NewParen creates a parenthesized expression.
func NewParen(x *Node) *Node {
	var l layout
	l.token("(")
	l.child(x.WithoutTrivia(), "")
	l.token(")")

	return l.node(KindParen, "", 0)
}

// NewMemberAccess creates a member access base.name.
func NewMemberAccess(base *Node, name string) *Node {
	var l layout
	l.child(base, "")
	l.token(".")
	l.token(name)

	return l.node(KindMemberAccess, name, 0)
}

// NewUnary creates a prefix unary expression.
func NewUnary(op string, x *Node) *Node {
	var l layout
	l.token(op)
	l.child(x.WithoutTrivia(), "")

	return l.node(KindUnary, op, 0)
}

// NewBinary creates a binary expression. Operands are not parenthesized.
func NewBinary(left *Node, op string, right *Node) *Node {
	var l layout
	l.child(left, "")
	l.token(" " + op)
	l.child(right, " ")

	return l.node(KindBinary, op, 0)
}

// NewAssign creates an assignment expression with the given operator.
func NewAssign(target *Node, op string, value *Node) *Node {
	var l layout
	l.child(target, "")
	l.token(" " + op)
	l.child(value, " ")

	return l.node(KindAssign, op, 0)
}

// NewConditional creates a conditional expression cond ? then : els.
func NewConditional(cond, then, els *Node) *Node {
	var l layout
	l.child(cond, "")
	l.token(" ?")
	l.child(then, " ")
	l.token(" :")
	l.child(els, " ")

	return l.node(KindConditional, "", 0)
}

// NewCall creates a call expression.
func NewCall(callee *Node, args ...*Node) *Node {
	var l layout
	l.child(callee, "")
	l.token("(")

	for i, arg := range args {
		if i > 0 {
			l.token(",")
			l.child(arg, " ")
		} else {
			l.child(arg.WithLeading(""), "")
		}
	}

	l.token(")")

	return l.node(KindCall, "", 0)
}

// NewExprStmt creates an expression statement.
func NewExprStmt(x *Node) *Node {
	var l layout
	l.child(x, "")
	l.token(";")

	return l.node(KindExprStmt, "", 0)
}

// NewReturn creates a return statement with an optional result.
func NewReturn(x *Node) *Node {
	var l layout
	l.token("return")

	if x != nil {
		l.child(x, " ")
	}

	l.token(";")

	return l.node(KindReturn, "", 0)
}

// NewDeclarator creates a variable declarator with an optional initializer.
func NewDeclarator(name string, init *Node) *Node {
	var l layout
	l.token(name)

	if init != nil {
		l.token(" =")
		l.child(init, " ")
	}

	return l.node(KindDeclarator, name, 0)
}

// NewLocalDecl creates a local variable declaration statement.
func NewLocalDecl(mods Modifiers, typ *Node, decls ...*Node) *Node {
	var l layout

	if mods.Has(ModReadonly) {
		l.token("final ")
	}

	l.child(typ, "")

	for i, d := range decls {
		if i > 0 {
			l.token(",")
		}

		l.child(d, " ")
	}

	l.token(";")

	return l.node(KindLocalDecl, "", mods)
}

// NewBlock creates a block. Statements without leading trivia are separated by a space.
func NewBlock(stmts ...*Node) *Node {
	var l layout
	l.token("{")

	for _, s := range stmts {
		l.child(s, " ")
	}

	l.token(" }")

	return l.node(KindBlock, "", 0)
}

// NewIf creates an if statement with an optional else branch.
func NewIf(cond, then, els *Node) *Node {
	var l layout
	l.token("if (")
	l.child(cond.WithoutTrivia(), "")
	l.token(")")
	l.child(then, " ")

	if els != nil {
		l.token(" else")
		l.child(els, " ")
	}

	return l.node(KindIf, "", 0)
}
