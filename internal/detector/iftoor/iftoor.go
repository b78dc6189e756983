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

// Package iftoor detects if statements that only set a flag to true.
//
// A statement
//
//	if (x) { y = true; }
//
// is reported as replaceable by `y |= x;`. When the statement directly follows the
// declaration of y, the condition is merged into the declaration instead:
//
//	boolean y = a;
//	if (b) { y = true; }
//
// becomes `boolean y = a || b;`. Any other directly preceding local declaration
// disqualifies the statement.
package iftoor

import (
	"fillmore-labs.com/codeissues/internal/astutil"
	"fillmore-labs.com/codeissues/issue"
	"fillmore-labs.com/codeissues/rewrite"
	"fillmore-labs.com/codeissues/syntax"
)

// Rule describes the if-to-or detector.
var Rule = issue.Rule{
	ID:       "ConvertIfToOrExpression",
	Keyword:  "iftoor",
	Title:    "Convert 'if' to '||' expression",
	Severity: issue.Info,
	Category: "PracticesAndImprovements",
}

const (
	orAssignMessage = "Replace with '|='"
	orExprMessage   = "Convert to '||' expression"
)

// Detector reports flag-setting if statements.
type Detector struct{}

// New creates an if-to-or [Detector].
func New() Detector { return Detector{} }

// Rule implements [gather.Detector].
func (Detector) Rule() issue.Rule { return Rule }

// Kinds implements [gather.Detector].
func (Detector) Kinds() []syntax.Kind { return []syntax.Kind{syntax.KindIf} }

// Match implements [gather.Detector].
func (Detector) Match(c syntax.Cursor) (issue.Diagnostic, bool) {
	stmt := c.Node()

	assign, ok := matchSetTrue(stmt)
	if !ok {
		return issue.Diagnostic{}, false
	}

	target, cond := assign.Left(), stmt.Cond()

	if decl, ok := previousDeclaration(c); ok {
		return mergeDeclaration(c, decl, target, cond)
	}

	if !checkTarget(target, cond) {
		return issue.Diagnostic{}, false
	}

	value := cond.WithTrivia(assign.Right().Leading(), "")
	replacement := syntax.NewExprStmt(syntax.NewAssign(target.WithoutTrivia(), "|=", value)).
		WithTrivia(stmt.Leading(), stmt.Trailing())

	return issue.Diagnostic{
		Rule:    Rule,
		Message: orAssignMessage,
		Span:    c.Span(),
		Fix:     rewrite.NewReplace(c, replacement),
	}, true
}

// matchSetTrue matches an if statement without else whose body is exactly `target = true;`,
// optionally enclosed in a block. The target is an identifier or a member access.
func matchSetTrue(stmt *syntax.Node) (*syntax.Node, bool) {
	if stmt.Else() != nil {
		return nil, false
	}

	body := stmt.Then()
	if body.Kind() == syntax.KindBlock {
		if body.Len() != 1 {
			return nil, false
		}

		body = body.Child(0)
	}

	if body.Kind() != syntax.KindExprStmt {
		return nil, false
	}

	assign := body.Child(0)
	if assign.Kind() != syntax.KindAssign || assign.Value() != "=" {
		return nil, false
	}

	switch assign.Left().Kind() {
	case syntax.KindIdent, syntax.KindMemberAccess:

	default:
		return nil, false
	}

	if value := assign.Right(); value.Kind() != syntax.KindLiteral || value.Text() != "true" {
		return nil, false
	}

	return assign, true
}

// previousDeclaration returns the local declaration directly preceding c in a statement list.
func previousDeclaration(c syntax.Cursor) (syntax.Cursor, bool) {
	if p, ok := c.Parent(); !ok || !p.Kind().IsList() {
		return syntax.Cursor{}, false
	}

	prev, ok := c.PrevSibling()
	if !ok || prev.Kind() != syntax.KindLocalDecl {
		return syntax.Cursor{}, false
	}

	return prev, true
}

// mergeDeclaration offers to fold the condition into the initializer of the declaration.
// The declaration must declare exactly the identifier target with an initializer.
func mergeDeclaration(c, decl syntax.Cursor, target, cond *syntax.Node) (issue.Diagnostic, bool) {
	if target.Kind() != syntax.KindIdent {
		return issue.Diagnostic{}, false
	}

	decls := decl.Node().Declarators()
	if len(decls) != 1 || decls[0].Value() != target.Value() {
		return issue.Diagnostic{}, false
	}

	declarator := decl.Child(1)

	init := declarator.Node().Init()
	if init == nil {
		return issue.Diagnostic{}, false
	}

	if !checkTarget(target, cond) {
		return issue.Diagnostic{}, false
	}

	or := syntax.NewBinary(orOperand(init), "||", orOperand(cond))

	// rebuild relative to the declaration, keeping its own text and comments
	merged := syntax.Root(decl.Node()).Child(1).Child(0).Replace(or.WithTrivia(init.Leading(), init.Trailing()))

	return issue.Diagnostic{
		Rule:    Rule,
		Message: orExprMessage,
		Span:    c.Span(),
		Fix: rewrite.ReplacePair{
			First:  rewrite.NewReplace(decl, merged),
			Second: rewrite.NewRemove(c),
		},
	}, true
}

// orOperand returns n as an operand of `||`, parenthesized when it binds weaker.
func orOperand(n *syntax.Node) *syntax.Node {
	switch n.Kind() {
	case syntax.KindConditional, syntax.KindAssign, syntax.KindOther:
		return syntax.NewParen(n)

	default:
		return n.WithoutTrivia()
	}
}

// checkTarget reports whether the condition does not refer to the assignment target.
//
// For an identifier target, no identifier or member name in cond may have the same name.
// For a member access target, no identifier in cond may name its base expression and no
// member access in cond may have the same base expression.
func checkTarget(target, cond *syntax.Node) bool {
	switch target.Kind() {
	case syntax.KindIdent:
		name := target.Value()
		for n := range astutil.AllOfKind(cond, syntax.KindIdent, syntax.KindMemberAccess) {
			if n.Value() == name {
				return false
			}
		}

		return true

	case syntax.KindMemberAccess:
		base := target.Base().Text()
		for n := range astutil.AllOfKind(cond, syntax.KindIdent, syntax.KindMemberAccess) {
			switch n.Kind() {
			case syntax.KindIdent:
				if n.Value() == base {
					return false
				}

			case syntax.KindMemberAccess:
				if n.Base().Text() == base {
					return false
				}
			}
		}

		return true

	default:
		return false
	}
}
