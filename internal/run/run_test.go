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

package run_test

import (
	"context"
	"errors"
	"testing"

	"fillmore-labs.com/codeissues/internal/config"
	. "fillmore-labs.com/codeissues/internal/run"
	"fillmore-labs.com/codeissues/internal/testsource"
)

func TestRegistryLookup(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()

	tests := []struct {
		name string
		want config.DetectorFlags
		ok   bool
	}{
		{"ConvertIfToOrExpression", config.IfToOrDetector, true},
		{"iftoor", config.IfToOrDetector, true},
		{"HashCode", config.HashCodeDetector, true},
		{"RedundantTernaryExpression", config.RedundantTernaryDetector, true},
		{"unknown", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, ok := r.Lookup(tt.name)
			if ok != tt.ok || e.Flag != tt.want {
				t.Errorf("Got %d, %t, want %d, %t", e.Flag, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRegistryEnabled(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()

	ds := config.NewBitMask(config.HashCodeDetector, config.EqualBranchDetector)

	got := r.Enabled(ds)
	if len(got) != 2 {
		t.Fatalf("Got %d detectors, want 2", len(got))
	}

	if id := got[0].Rule().ID; id != "ConditionalTernaryEqualBranch" {
		t.Errorf("Got first detector %s, want ConditionalTernaryEqualBranch", id)
	}

	if id := got[1].Rule().ID; id != "NonReadonlyReferencedInGetHashCode" {
		t.Errorf("Got second detector %s, want NonReadonlyReferencedInGetHashCode", id)
	}
}

func TestFix(t *testing.T) {
	t.Parallel()

	const (
		src   = "int v = c ? 1 : 1;\nboolean w = x ? true : false;\nf(w);\nif (x) { y = true; }"
		fixed = "int v = 1;\nboolean w = x;\nf(w);\ny |= x;"
	)

	root, _ := testsource.Parse(t, src)

	got, applied, err := DefaultOptions().Fix(t.Context(), root)
	if err != nil {
		t.Fatalf("Fix failed: %v", err)
	}

	if applied != 3 {
		t.Errorf("Got %d applied fixes, want 3", applied)
	}

	if want := testsource.Source(fixed); got.String() != want {
		t.Errorf("Got %q, want %q", got.String(), want)
	}
}

func TestSuppressions(t *testing.T) {
	t.Parallel()

	const src = "// codeissues:ignore equalbranch\nint v = c ? 1 : 1;"

	root, _ := testsource.Parse(t, src)

	o := DefaultOptions()

	if diagnostics, _ := o.Run(t.Context(), root); len(diagnostics) != 0 {
		t.Errorf("Got %d diagnostics, want none", len(diagnostics))
	}

	o.Behavior.Set(config.Suppressions, false)

	if diagnostics, _ := o.Run(t.Context(), root); len(diagnostics) != 1 {
		t.Errorf("Got %d diagnostics, want 1", len(diagnostics))
	}
}

func TestApplyNoFix(t *testing.T) {
	t.Parallel()

	const src = "int count;\npublic int hashCode() { return count; }"

	root, _ := testsource.ParseMembers(t, src)

	o := DefaultOptions()

	diagnostics, _ := o.Run(t.Context(), root)
	if len(diagnostics) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(diagnostics))
	}

	if _, err := o.Apply(t.Context(), root, diagnostics[0]); !errors.Is(err, ErrNoFix) {
		t.Errorf("Got error %v, want %v", err, ErrNoFix)
	}
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()

	root, _ := testsource.Parse(t, "int v = c ? 1 : 1;")

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, _, err := DefaultOptions().Fix(ctx, root); !errors.Is(err, context.Canceled) {
		t.Errorf("Got error %v, want %v", err, context.Canceled)
	}
}
