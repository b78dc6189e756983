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

package gather_test

import (
	"context"
	"log/slog"
	"slices"
	"testing"

	. "fillmore-labs.com/codeissues/internal/gather"
	"fillmore-labs.com/codeissues/issue"
	"fillmore-labs.com/codeissues/syntax"
)

type kindDetector struct {
	kinds  []syntax.Kind
	span   syntax.Span
	cancel context.CancelFunc
}

func (d kindDetector) Rule() issue.Rule { return issue.Rule{ID: "kinds"} }

func (d kindDetector) Kinds() []syntax.Kind { return d.kinds }

func (d kindDetector) Match(c syntax.Cursor) (issue.Diagnostic, bool) {
	if d.cancel != nil {
		d.cancel()
	}

	span := d.span
	if span == (syntax.Span{}) {
		span = c.Span()
	}

	return issue.Diagnostic{Rule: d.Rule(), Message: c.Kind().String(), Span: span}, true
}

func tree() *syntax.Node {
	stmt := func(name string) *syntax.Node { return syntax.NewExprStmt(syntax.NewIdent(name)) }

	return syntax.NewBlock(stmt("a"), stmt("b"), stmt("c"))
}

func messages(diagnostics []issue.Diagnostic) []string {
	msgs := make([]string, 0, len(diagnostics))
	for _, d := range diagnostics {
		msgs = append(msgs, d.Message+"@"+d.Span.String())
	}

	return msgs
}

func TestGather(t *testing.T) {
	t.Parallel()

	discard := slog.New(slog.DiscardHandler)

	tests := []struct {
		name      string
		detectors []Detector
		suppress  SuppressFunc
		want      []string
	}{
		{
			name:      "document order",
			detectors: []Detector{kindDetector{kinds: []syntax.Kind{syntax.KindIdent}}, kindDetector{kinds: []syntax.Kind{syntax.KindExprStmt}}},
			want:      []string{"ExprStmt@2-4", "Ident@2-3", "ExprStmt@5-7", "Ident@5-6", "ExprStmt@8-10", "Ident@8-9"},
		},
		{
			name:      "all kinds",
			detectors: []Detector{kindDetector{}},
			want:      []string{"Block@0-12", "ExprStmt@2-4", "Ident@2-3", "ExprStmt@5-7", "Ident@5-6", "ExprStmt@8-10", "Ident@8-9"},
		},
		{
			name:      "outside of tree",
			detectors: []Detector{kindDetector{kinds: []syntax.Kind{syntax.KindIdent}, span: syntax.Span{Start: 100, End: 200}}},
			want:      []string{},
		},
		{
			name:      "suppressed",
			detectors: []Detector{kindDetector{kinds: []syntax.Kind{syntax.KindIdent}}},
			suppress:  func(c syntax.Cursor, _ issue.Rule) bool { return c.Node().Value() != "b" },
			want:      []string{"Ident@5-6"},
		},
		{
			name: "no detectors",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := New(discard, tt.suppress, tt.detectors...)

			diagnostics, complete := g.Gather(t.Context(), tree())
			if !complete {
				t.Error("Expected complete traversal")
			}

			if got := messages(diagnostics); !slices.Equal(got, tt.want) {
				t.Errorf("Got %q, want %q", got, tt.want)
			}

			again, _ := g.Gather(t.Context(), tree())
			if !slices.Equal(messages(again), messages(diagnostics)) {
				t.Error("Expected deterministic results")
			}
		})
	}
}

func TestGatherCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	// cancels after the first match
	d := kindDetector{kinds: []syntax.Kind{syntax.KindIdent}, cancel: cancel}

	diagnostics, complete := Gather(ctx, tree(), []Detector{d})
	if complete {
		t.Error("Expected incomplete traversal")
	}

	if got, want := messages(diagnostics), []string{"Ident@2-3"}; !slices.Equal(got, want) {
		t.Errorf("Got %q, want prefix %q", got, want)
	}
}

func TestGatherCanceledBefore(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	diagnostics, complete := Gather(ctx, tree(), []Detector{kindDetector{}})
	if complete || len(diagnostics) != 0 {
		t.Errorf("Got %d diagnostics, complete %v, want none and incomplete", len(diagnostics), complete)
	}
}
