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

// Package redundantternary detects `c ? true : false`.
package redundantternary

import (
	"fillmore-labs.com/codeissues/internal/astutil"
	"fillmore-labs.com/codeissues/issue"
	"fillmore-labs.com/codeissues/rewrite"
	"fillmore-labs.com/codeissues/syntax"
)

// Rule describes the redundant conditional detector.
var Rule = issue.Rule{
	ID:       "RedundantTernaryExpression",
	Keyword:  "redundantternary",
	Title:    "Redundant conditional expression",
	Severity: issue.Warning,
	Category: "RedundanciesInCode",
}

// Detector reports conditionals evaluating to their condition.
type Detector struct{}

// New creates a redundant conditional [Detector].
func New() Detector { return Detector{} }

// Rule implements [gather.Detector].
func (Detector) Rule() issue.Rule { return Rule }

// Kinds implements [gather.Detector].
func (Detector) Kinds() []syntax.Kind { return []syntax.Kind{syntax.KindConditional} }

// Match implements [gather.Detector].
func (Detector) Match(c syntax.Cursor) (issue.Diagnostic, bool) {
	n := c.Node()

	if !isLiteral(n.Then(), "true") || !isLiteral(n.Else(), "false") {
		return issue.Diagnostic{}, false
	}

	return issue.Diagnostic{
		Rule:    Rule,
		Message: "Replace by condition",
		Span:    c.Span(),
		Fix:     rewrite.NewReplace(c, n.Cond().WithoutTrivia()),
	}, true
}

// isLiteral reports whether n is, possibly parenthesized, the literal text.
func isLiteral(n *syntax.Node, text string) bool {
	n = astutil.Unparen(n)

	return n.Kind() == syntax.KindLiteral && n.Text() == text
}
