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

// Package report converts diagnostics into the form used by golang.org/x/tools/go/analysis.
package report

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/codeissues/issue"
	"fillmore-labs.com/codeissues/rewrite"
	"fillmore-labs.com/codeissues/syntax"
)

// Analysis converts diagnostics found in the tree rooted at root into [analysis.Diagnostic] values.
//
// The printed tree is added to fset as filename. Diagnostics with a fix carry a
// [analysis.SuggestedFix] with the text edits the fix performs. Fixes that do not apply
// to root are dropped and their diagnostic is reported without a suggested fix.
func Analysis(fset *token.FileSet, filename string, root *syntax.Node, diagnostics []issue.Diagnostic) []analysis.Diagnostic {
	src := root.String()
	f := NewFile(fset, filename, src)

	result := make([]analysis.Diagnostic, 0, len(diagnostics))
	for _, d := range diagnostics {
		result = append(result, f.diagnostic(root, src, d))
	}

	return result
}

func (f File) diagnostic(root *syntax.Node, src string, d issue.Diagnostic) analysis.Diagnostic {
	diagnostic := analysis.Diagnostic{
		Pos:      f.Pos(d.Span.Start),
		End:      f.Pos(d.Span.End),
		Category: d.Rule.ID,
		Message:  Message(d),
	}

	if !d.HasFix() {
		return diagnostic
	}

	fixed, err := rewrite.Apply(root, d.Span, d.Fix)
	if err != nil {
		return diagnostic
	}

	if edits := f.TextEdits(src, fixed.String()); len(edits) > 0 {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: d.Message, TextEdits: edits}}
	}

	return diagnostic
}

// Message formats the message of d including its rule ID.
func Message(d issue.Diagnostic) string {
	return fmt.Sprintf("%s (%s)", d.Message, d.Rule.ID)
}
