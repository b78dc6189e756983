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

package main

import (
	"errors"
	"testing"

	"fillmore-labs.com/codeissues/analyzer"
)

const allSettings = `
equal-branch: true
redundant-ternary: false
if-to-or: true
hash-code: true
suppressions: false
detectors:
  iftoor: false
  NonReadonlyReferencedInGetHashCode: true
exclude:
  - "*Test.java"
  - build
`

func TestSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, 7},
		{"none", ``, 0},
		{"detectors only", "detectors:\n  equalbranch: false\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := ParseSettings([]byte(tt.settings))
			if err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if err := s.Validate(analyzer.DefaultRegistry()); err != nil {
				t.Fatalf("Invalid settings: %v", err)
			}

			if got := s.Options(); len(got) != tt.want {
				t.Errorf("Got %d options: %s, want %d", len(got), analyzer.Options(got).LogValue(), tt.want)
			}
		})
	}
}

func TestSettingsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings string
	}{
		{"unknown field", "scope: true\n"},
		{"wrong type", "equal-branch: maybe\n"},
		{"bad pattern", "exclude: [\"[\"]\n"},
		{"unknown detector", "detectors:\n  scope: true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := ParseSettings([]byte(tt.settings))
			if err == nil {
				err = s.Validate(analyzer.DefaultRegistry())
			}

			if !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Got error %v, want %v", err, ErrInvalidSettings)
			}
		})
	}
}

func TestExcluded(t *testing.T) {
	t.Parallel()

	s, err := ParseSettings([]byte(allSettings))
	if err != nil {
		t.Fatalf("Can't decode settings: %v", err)
	}

	for name, want := range map[string]bool{
		"SampleTest.java": true,
		"build":           true,
		"Sample.java":     false,
		"src":             false,
	} {
		if got := s.Excluded(name); got != want {
			t.Errorf("Excluded(%q) = %t, want %t", name, got, want)
		}
	}
}
