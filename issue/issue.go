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

// Package issue defines the diagnostics produced by code issue detectors.
package issue

import (
	"log/slog"

	"fillmore-labs.com/codeissues/rewrite"
	"fillmore-labs.com/codeissues/syntax"
)

// Rule describes a detector.
type Rule struct {
	ID       string   // stable identifier, e.g. "ConvertIfToOrExpression"
	Keyword  string   // short name used for flags and suppression comments
	Title    string   // human readable summary
	Severity Severity // severity of reported diagnostics
	Category string   // "Readability", "Simplification", ...
}

// LogValue implements [slog.LogValuer].
func (r Rule) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", r.ID),
		slog.String("severity", r.Severity.String()),
	)
}

// Diagnostic is a finding of a detector, optionally carrying a fix.
type Diagnostic struct {
	Rule    Rule
	Message string
	Span    syntax.Span        // location of the flagged node
	Fix     rewrite.Descriptor // nil when no automatic rewrite is offered
}

// HasFix reports whether d offers an automatic rewrite.
func (d Diagnostic) HasFix() bool { return d.Fix != nil }

// LogValue implements [slog.LogValuer].
func (d Diagnostic) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("rule", d.Rule.ID),
		slog.String("message", d.Message),
		slog.String("span", d.Span.String()),
		slog.Bool("fix", d.HasFix()),
	)
}
