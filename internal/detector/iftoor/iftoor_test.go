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

package iftoor_test

import (
	"testing"

	. "fillmore-labs.com/codeissues/internal/detector/iftoor"
	"fillmore-labs.com/codeissues/internal/gather"
	"fillmore-labs.com/codeissues/internal/testsource"
	"fillmore-labs.com/codeissues/issue"
	"fillmore-labs.com/codeissues/rewrite"
)

const (
	orAssign = "Replace with '|='"
	orExpr   = "Convert to '||' expression"
)

func TestIfToOr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		message string // empty when no diagnostic is expected
		fixed   string
	}{
		{"block", "if (x) { y = true; }", orAssign, "y |= x;"},
		{"statement", "if (x) y = true;", orAssign, "y |= x;"},
		{"target in condition", "if (y) { y = true; }", "", ""},
		{"target as member name", "if (obj.y) { y = true; }", "", ""},
		{"else branch", "if (x) { y = true; } else { z = 1; }", "", ""},
		{"two statements", "if (x) { y = true; z = 1; }", "", ""},
		{"false", "if (x) { y = false; }", "", ""},
		{"parenthesized true", "if (x) { y = (true); }", "", ""},
		{"expression", "if (x) { y = b; }", "", ""},
		{"compound assignment", "if (x) { y += true; }", "", ""},
		{"member", "if (o.g) { p.f = true; }", orAssign, "p.f |= o.g;"},
		{"this member", "if (x) { this.f = true; }", orAssign, "this.f |= x;"},
		{"same base", "if (this.g) { this.f = true; }", "", ""},
		{"base as identifier", "if (p) { p.f = true; }", "", ""},
		{"trailing comment", "if (x) { y = true; } // set", orAssign, "y |= x; // set"},
		{"trivia after assignment", "if (x) { y =  true; }", orAssign, "y |=  x;"},
		{"complex condition", "if (a && b(c)) { y = true; }", orAssign, "y |= a && b(c);"},
		{"declaration", "boolean y = a;\nif (b) { y = true; }", orExpr, "boolean y = a || b;"},
		{"declaration same line", "boolean y = a; if (b) y = true;\nz();", orExpr, "boolean y = a || b;\nz();"},
		{"declaration or", "boolean y = a;\nif (y2 || b) { y = true; }", orExpr, "boolean y = a || y2 || b;"},
		{"declaration conditional", "boolean y = a ? c : d;\nif (b) { y = true; }", orExpr, "boolean y = (a ? c : d) || b;"},
		{"declaration comment", "boolean y = /* init */ a; // flag\nif (b) { y = true; }", orExpr, "boolean y = /* init */ a || b; // flag"},
		{"declaration without initializer", "boolean y;\nif (b) { y = true; }", "", ""},
		{"declaration target in condition", "boolean y = a;\nif (y) { y = true; }", "", ""},
		{"other declaration", "int z = 0;\nif (x) { y = true; }", "", ""},
		{"other declaration member target", "boolean z = a;\nif (b) { o.y = true; }", "", ""},
		{"multiple declarators", "boolean y = a, w = c;\nif (b) { y = true; }", "", ""},
		{"declaration after statement", "boolean z = a;\nf();\nif (b) { y = true; }", orAssign, "boolean z = a;\nf();\ny |= b;"},
		{"not adjacent", "boolean y = a;\nz();\nif (b) { y = true; }", orAssign, "boolean y = a;\nz();\ny |= b;"},
	}

	detectors := []gather.Detector{New()}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root, _ := testsource.Parse(t, tt.src)

			diagnostics, _ := gather.Gather(t.Context(), root, detectors)

			if tt.message == "" {
				if len(diagnostics) != 0 {
					t.Errorf("Got %d diagnostics, want none", len(diagnostics))
				}

				return
			}

			if len(diagnostics) != 1 {
				t.Fatalf("Got %d diagnostics, want 1", len(diagnostics))
			}

			d := diagnostics[0]
			if d.Message != tt.message {
				t.Errorf("Got message %q, want %q", d.Message, tt.message)
			}

			if d.Rule.Severity != issue.Info {
				t.Errorf("Got severity %v, want %v", d.Rule.Severity, issue.Info)
			}

			fixed, err := rewrite.Apply(root, d.Span, d.Fix)
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}

			if got, want := fixed.String(), testsource.Source(tt.fixed); got != want {
				t.Errorf("Got %q, want %q", got, want)
			}

			if again, _ := gather.Gather(t.Context(), fixed, detectors); len(again) != 0 {
				t.Errorf("Fix is not idempotent: %d diagnostics", len(again))
			}
		})
	}
}

func TestStaleAfterEdit(t *testing.T) {
	t.Parallel()

	root, _ := testsource.Parse(t, "boolean y = a;\nif (b) { y = true; }")

	diagnostics, _ := gather.Gather(t.Context(), root, []gather.Detector{New()})
	if len(diagnostics) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(diagnostics))
	}

	d := diagnostics[0]

	fixed, err := rewrite.Apply(root, d.Span, d.Fix)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if _, err := rewrite.Apply(fixed, d.Span, d.Fix); err == nil {
		t.Error("Expected stale diagnostic when applying twice")
	}
}
