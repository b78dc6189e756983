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

package report_test

import (
	"go/token"
	"testing"

	. "fillmore-labs.com/codeissues/internal/report"
	"fillmore-labs.com/codeissues/internal/run"
	"fillmore-labs.com/codeissues/internal/testsource"
)

func TestTextEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		before, after string
		pos, end      int
		text          string
	}{
		{"replace", "a = b ? c : c;", "a = c;", 4, 12, ""},
		{"change", "x = 1;", "x = 2;", 4, 5, "2"},
		{"insert", "ab", "axb", 1, 1, "x"},
		{"delete", "axb", "ab", 1, 2, ""},
		{"repeated", "aaaa", "aa", 2, 4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset := token.NewFileSet()
			f := NewFile(fset, "Test.java", tt.before)

			edits := f.TextEdits(tt.before, tt.after)
			if len(edits) != 1 {
				t.Fatalf("Got %d edits, want 1", len(edits))
			}

			e := edits[0]
			if e.Pos != f.Pos(tt.pos) || e.End != f.Pos(tt.end) || string(e.NewText) != tt.text {
				t.Errorf("Got edit %d-%d %q, want %d-%d %q",
					fset.Position(e.Pos).Offset, fset.Position(e.End).Offset, e.NewText, tt.pos, tt.end, tt.text)
			}
		})
	}

	if edits := NewFile(token.NewFileSet(), "Test.java", "a").TextEdits("a", "a"); edits != nil {
		t.Errorf("Got edits %v for unchanged text", edits)
	}
}

func TestAnalysis(t *testing.T) {
	t.Parallel()

	root, _ := testsource.Parse(t, "int v = c ? 1 : 1;")

	diagnostics, _ := run.DefaultOptions().Run(t.Context(), root)

	fset := token.NewFileSet()

	got := Analysis(fset, "Test.java", root, diagnostics)
	if len(got) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(got))
	}

	d := got[0]

	if pos := fset.Position(d.Pos); pos.Line != 3 || pos.Column != 9 {
		t.Errorf("Got position %v, want 3:9", pos)
	}

	if want := "Replace '?:' with branch (ConditionalTernaryEqualBranch)"; d.Message != want {
		t.Errorf("Got message %q, want %q", d.Message, want)
	}

	if len(d.SuggestedFixes) != 1 || len(d.SuggestedFixes[0].TextEdits) != 1 {
		t.Fatalf("Got fixes %v, want a single edit", d.SuggestedFixes)
	}

	edit := d.SuggestedFixes[0].TextEdits[0]

	src := root.String()
	start, end := fset.Position(edit.Pos).Offset, fset.Position(edit.End).Offset

	if got, want := src[:start]+string(edit.NewText)+src[end:], testsource.Source("int v = 1;"); got != want {
		t.Errorf("Got fixed source %q, want %q", got, want)
	}
}
