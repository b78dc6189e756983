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

// Package equalbranch detects conditional expressions with identical branches.
package equalbranch

import (
	"fillmore-labs.com/codeissues/issue"
	"fillmore-labs.com/codeissues/rewrite"
	"fillmore-labs.com/codeissues/syntax"
)

// Rule describes the equal branch detector.
var Rule = issue.Rule{
	ID:       "ConditionalTernaryEqualBranch",
	Keyword:  "equalbranch",
	Title:    "'?:' expression has identical true and false branches",
	Severity: issue.Warning,
	Category: "CodeQuality",
}

// Detector reports `c ? x : x` and offers to replace it with `x`.
type Detector struct{}

// New creates an equal branch [Detector].
func New() Detector { return Detector{} }

// Rule implements [gather.Detector].
func (Detector) Rule() issue.Rule { return Rule }

// Kinds implements [gather.Detector].
func (Detector) Kinds() []syntax.Kind { return []syntax.Kind{syntax.KindConditional} }

// Match implements [gather.Detector].
func (Detector) Match(c syntax.Cursor) (issue.Diagnostic, bool) {
	n := c.Node()

	then, els := n.Then(), n.Else()
	if then == nil || els == nil || !syntax.Equal(then, els) {
		return issue.Diagnostic{}, false
	}

	return issue.Diagnostic{
		Rule:    Rule,
		Message: "Replace '?:' with branch",
		Span:    c.Span(),
		Fix:     rewrite.NewReplace(c, then.WithoutTrivia()),
	}, true
}
