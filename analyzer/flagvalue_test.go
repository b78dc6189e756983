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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/codeissues/analyzer"
	"fillmore-labs.com/codeissues/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.DetectorFlags
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.HashCodeDetector,
			args:    []string{"-iftoor"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.IfToOrDetector,
			args:    []string{"-iftoor=false"},
			want:    false,
		},
		{
			name:    "Off",
			initial: config.IfToOrDetector,
			args:    []string{"-iftoor=off"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var flags config.Detectors
			flags.Set(tt.initial, true)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.IfToOrDetector
			fv := NewDetectorValue(&flags, value)
			fs.Var(fv, "iftoor", "report if statements convertible to '||'")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("IfToOrDetector enabled = %v, want %v", flags.Enabled(value), tt.want)
			}
		})
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	var flags config.Detectors
	flags.Set(config.HashCodeDetector, true)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewDetectorValue(&flags, config.HashCodeDetector)
	fs.Var(fv, "hashcode", "report mutable fields in hash codes")

	const expectedUsage = `
  -hashcode
    	report mutable fields in hash codes (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestRegisterFlags(t *testing.T) {
	t.Parallel()

	r := New()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	r.RegisterFlags(fs)

	if err := fs.Parse([]string{"-equalbranch=false", "-hashcode=false"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var ids []string
	for _, rule := range r.Rules() {
		ids = append(ids, rule.ID)
	}

	if got, want := strings.Join(ids, ","), "RedundantTernaryExpression,ConvertIfToOrExpression"; got != want {
		t.Errorf("Got rules %s, want %s", got, want)
	}

	if f := fs.Lookup("suppressions"); f == nil || f.Value.String() != "true" {
		t.Errorf("Got suppressions flag %v, want default true", f)
	}
}
