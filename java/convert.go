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

package java

import (
	"slices"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/codeissues/syntax"
)

type converter struct {
	src  []byte
	toks tokens
}

// part is a converted child together with its source range.
type part struct {
	start, end uint32
	node       *syntax.Node
	list       bool // member of a statement or declaration list, carries trailing trivia
}

func (c *converter) text(start, end uint32) string { return string(c.src[start:end]) }

func (c *converter) unit(root *sitter.Node) (*syntax.Node, error) {
	if len(c.toks) == 0 {
		return syntax.FromSource(syntax.Source{Kind: syntax.KindCompilationUnit, Leading: string(c.src)})
	}

	start, end := c.toks[0].start, c.toks[len(c.toks)-1].end

	parts, err := c.parts(c.named(root), true)
	if err != nil {
		return nil, err
	}

	n, err := c.build(syntax.KindCompilationUnit, "", 0, start, end, parts)
	if err != nil {
		return nil, err
	}

	return n.WithTrivia(c.text(0, start), c.text(end, uint32(len(c.src)))), nil
}

// build creates the node spanning [start, end) and attaches trivia to its parts.
//
// Leading trivia of a part reaches back to the previous token, but not into the parent's
// preceding text or the trailing trivia of the previous part. Trailing trivia of list
// parts extends to the end of their line, provided only blanks and comments follow.
func (c *converter) build(kind syntax.Kind, value string, mods syntax.Modifiers, start, end uint32, parts []part) (*syntax.Node, error) {
	children := make([]*syntax.Node, 0, len(parts))
	offsets := make([]int, 0, len(parts))

	pos := start
	for _, p := range parts {
		lo := max(c.toks.prevEnd(p.start), pos)
		hi := p.end

		if p.list {
			limit := c.toks.nextStart(p.end, end)
			hi += uint32(lineTrailing(c.text(p.end, limit)))
		}

		children = append(children, p.node.WithTrivia(c.text(lo, p.start), c.text(p.end, hi)))
		offsets = append(offsets, int(p.start-start))
		pos = hi
	}

	return syntax.FromSource(syntax.Source{
		Kind:      kind,
		Value:     value,
		Modifiers: mods,
		Text:      c.text(start, end),
		Children:  children,
		Offsets:   offsets,
	})
}

// named returns the named children of n, excluding comments.
func (c *converter) named(n *sitter.Node) []*sitter.Node {
	count := int(n.NamedChildCount())
	nodes := make([]*sitter.Node, 0, count)

	for i := range count {
		if child := n.NamedChild(i); !isComment(child.Type()) {
			nodes = append(nodes, child)
		}
	}

	return nodes
}

func (c *converter) parts(nodes []*sitter.Node, list bool) ([]part, error) {
	parts := make([]part, 0, len(nodes))

	for _, n := range nodes {
		if n == nil {
			continue
		}

		node, err := c.convert(n)
		if err != nil {
			return nil, err
		}

		parts = append(parts, part{start: n.StartByte(), end: n.EndByte(), node: node, list: list})
	}

	return parts, nil
}

// wrap converts the children and creates a node spanning n.
func (c *converter) wrap(kind syntax.Kind, value string, n *sitter.Node, children ...*sitter.Node) (*syntax.Node, error) {
	parts, err := c.parts(children, false)
	if err != nil {
		return nil, err
	}

	return c.build(kind, value, 0, n.StartByte(), n.EndByte(), parts)
}

func (c *converter) leaf(kind syntax.Kind, n *sitter.Node) (*syntax.Node, error) {
	text := n.Content(c.src)

	return syntax.FromSource(syntax.Source{Kind: kind, Value: text, Text: text})
}

func (c *converter) convert(n *sitter.Node) (*syntax.Node, error) {
	switch typ := n.Type(); typ {
	case "class_declaration":
		return c.class(n)

	case "field_declaration":
		return c.declaration(syntax.KindField, n)

	case "local_variable_declaration":
		return c.declaration(syntax.KindLocalDecl, n)

	case "variable_declarator":
		name := n.ChildByFieldName("name")

		return c.wrap(syntax.KindDeclarator, name.Content(c.src), n, n.ChildByFieldName("value"))

	case "method_declaration":
		return c.method(n)

	case "formal_parameter":
		name := n.ChildByFieldName("name")

		return c.typed(syntax.KindParameter, name.Content(c.src), 0, n, nil)

	case "block":
		parts, err := c.parts(c.named(n), true)
		if err != nil {
			return nil, err
		}

		return c.build(syntax.KindBlock, "", 0, n.StartByte(), n.EndByte(), parts)

	case "expression_statement":
		return c.wrap(syntax.KindExprStmt, "", n, c.named(n)...)

	case "if_statement":
		cond := n.ChildByFieldName("condition")
		if cond != nil && (cond.Type() == "parenthesized_expression" || cond.Type() == "condition") {
			if inner := c.named(cond); len(inner) == 1 {
				cond = inner[0]
			}
		}

		return c.wrap(syntax.KindIf, "", n, cond, n.ChildByFieldName("consequence"), n.ChildByFieldName("alternative"))

	case "return_statement":
		return c.wrap(syntax.KindReturn, "", n, c.named(n)...)

	case "assignment_expression":
		return c.wrap(syntax.KindAssign, operator(n), n, n.ChildByFieldName("left"), n.ChildByFieldName("right"))

	case "binary_expression":
		return c.wrap(syntax.KindBinary, operator(n), n, n.ChildByFieldName("left"), n.ChildByFieldName("right"))

	case "unary_expression":
		return c.wrap(syntax.KindUnary, operator(n), n, n.ChildByFieldName("operand"))

	case "ternary_expression":
		return c.wrap(syntax.KindConditional, "", n,
			n.ChildByFieldName("condition"), n.ChildByFieldName("consequence"), n.ChildByFieldName("alternative"))

	case "parenthesized_expression":
		return c.wrap(syntax.KindParen, "", n, c.named(n)...)

	case "field_access":
		field := n.ChildByFieldName("field")

		return c.wrap(syntax.KindMemberAccess, field.Content(c.src), n, n.ChildByFieldName("object"))

	case "method_invocation":
		return c.invocation(n)

	case "enhanced_for_statement", "catch_formal_parameter", "resource":
		return c.binding(typ, n, n.ChildByFieldName("name"))

	case "lambda_expression":
		if params := n.ChildByFieldName("parameters"); params != nil && params.Type() == "identifier" {
			return c.binding(typ, n, params)
		}

		return c.wrap(syntax.KindOther, typ, n, c.named(n)...)

	case "inferred_parameters":
		return c.binding(typ, n, c.named(n)...)

	case "identifier":
		return c.leaf(syntax.KindIdent, n)

	case "this":
		return c.leaf(syntax.KindThis, n)

	case "true", "false", "null_literal", "character_literal", "string_literal", "text_block",
		"decimal_integer_literal", "hex_integer_literal", "octal_integer_literal", "binary_integer_literal",
		"decimal_floating_point_literal", "hex_floating_point_literal":
		return c.leaf(syntax.KindLiteral, n)

	default:
		return c.wrap(syntax.KindOther, typ, n, c.named(n)...)
	}
}

// binding converts a construct introducing variables. The given name nodes become
// declarators without initializer, all other children are converted as usual.
func (c *converter) binding(typ string, n *sitter.Node, names ...*sitter.Node) (*syntax.Node, error) {
	children := c.named(n)
	parts := make([]part, 0, len(children))

	for _, child := range children {
		var (
			node *syntax.Node
			err  error
		)

		if slices.ContainsFunc(names, func(name *sitter.Node) bool { return sameNode(name, child) }) {
			text := child.Content(c.src)
			node, err = syntax.FromSource(syntax.Source{Kind: syntax.KindDeclarator, Value: text, Text: text})
		} else {
			node, err = c.convert(child)
		}

		if err != nil {
			return nil, err
		}

		parts = append(parts, part{start: child.StartByte(), end: child.EndByte(), node: node})
	}

	return c.build(syntax.KindOther, typ, 0, n.StartByte(), n.EndByte(), parts)
}

func sameNode(a, b *sitter.Node) bool {
	return a != nil && a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

func operator(n *sitter.Node) string {
	if op := n.ChildByFieldName("operator"); op != nil {
		return op.Type()
	}

	return ""
}

func (c *converter) class(n *sitter.Node) (*syntax.Node, error) {
	name := n.ChildByFieldName("name").Content(c.src)

	var members []*sitter.Node
	if body := n.ChildByFieldName("body"); body != nil {
		members = c.named(body)
	}

	parts, err := c.parts(members, true)
	if err != nil {
		return nil, err
	}

	return c.build(syntax.KindClass, name, c.modifiers(n), n.StartByte(), n.EndByte(), parts)
}

// declaration converts field and local variable declarations into [type, declarator...].
func (c *converter) declaration(kind syntax.Kind, n *sitter.Node) (*syntax.Node, error) {
	var declarators []*sitter.Node

	for _, child := range c.named(n) {
		if child.Type() == "variable_declarator" {
			declarators = append(declarators, child)
		}
	}

	return c.typed(kind, "", c.modifiers(n), n, declarators)
}

func (c *converter) method(n *sitter.Node) (*syntax.Node, error) {
	name := n.ChildByFieldName("name").Content(c.src)

	var rest []*sitter.Node
	if params := n.ChildByFieldName("parameters"); params != nil {
		rest = append(rest, params)
	}

	if body := n.ChildByFieldName("body"); body != nil {
		rest = append(rest, body)
	}

	return c.typed(syntax.KindMethod, name, c.modifiers(n), n, rest)
}

// typed creates a node whose first child is the type of n, followed by the converted rest.
func (c *converter) typed(kind syntax.Kind, value string, mods syntax.Modifiers, n *sitter.Node, rest []*sitter.Node) (*syntax.Node, error) {
	var parts []part

	if typ := n.ChildByFieldName("type"); typ != nil {
		node, err := c.leaf(syntax.KindType, typ)
		if err != nil {
			return nil, err
		}

		parts = append(parts, part{start: typ.StartByte(), end: typ.EndByte(), node: node})
	}

	for _, child := range rest {
		var (
			node *syntax.Node
			err  error
		)

		if child.Type() == "formal_parameters" {
			node, err = c.wrap(syntax.KindParameters, "", child, c.named(child)...)
		} else {
			node, err = c.convert(child)
		}

		if err != nil {
			return nil, err
		}

		parts = append(parts, part{start: child.StartByte(), end: child.EndByte(), node: node})
	}

	return c.build(kind, value, mods, n.StartByte(), n.EndByte(), parts)
}

// invocation converts a method call into [callee, arg...]. A qualified callee
// becomes a member access spanning the object and the method name.
func (c *converter) invocation(n *sitter.Node) (*syntax.Node, error) {
	name := n.ChildByFieldName("name")

	callee := part{start: name.StartByte(), end: name.EndByte()}

	var err error
	if object := n.ChildByFieldName("object"); object != nil {
		var objects []part
		if objects, err = c.parts([]*sitter.Node{object}, false); err != nil {
			return nil, err
		}

		callee.start = object.StartByte()
		callee.node, err = c.build(syntax.KindMemberAccess, name.Content(c.src), 0, callee.start, callee.end, objects)
	} else {
		callee.node, err = c.leaf(syntax.KindIdent, name)
	}

	if err != nil {
		return nil, err
	}

	var args []*sitter.Node
	if arguments := n.ChildByFieldName("arguments"); arguments != nil {
		args = c.named(arguments)
	}

	parts, err := c.parts(args, false)
	if err != nil {
		return nil, err
	}

	return c.build(syntax.KindCall, "", 0, n.StartByte(), n.EndByte(), append([]part{callee}, parts...))
}

func (c *converter) modifiers(n *sitter.Node) syntax.Modifiers {
	var mods syntax.Modifiers

	for _, child := range c.named(n) {
		if child.Type() != "modifiers" {
			continue
		}

		for i := range int(child.ChildCount()) {
			switch m := child.Child(i); m.Type() {
			case "final":
				mods |= syntax.ModReadonly

			case "static":
				mods |= syntax.ModStatic

			case "public":
				mods |= syntax.ModPublic

			case "protected":
				mods |= syntax.ModProtected

			case "private":
				mods |= syntax.ModPrivate

			case "abstract":
				mods |= syntax.ModAbstract

			case "marker_annotation", "annotation":
				if name := m.ChildByFieldName("name"); name != nil && name.Content(c.src) == "Override" {
					mods |= syntax.ModOverride
				}
			}
		}
	}

	return mods
}
