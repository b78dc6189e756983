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

package issue_test

import (
	"testing"

	. "fillmore-labs.com/codeissues/issue"
)

func TestSeverityText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text    string
		want    Severity
		wantErr bool
	}{
		{"info", Info, false},
		{"Warning", Warning, false},
		{"warn", Warning, false},
		{"error", Info, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			var s Severity

			err := s.UnmarshalText([]byte(tt.text))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
			}

			if s != tt.want {
				t.Errorf("Got severity %v, want %v", s, tt.want)
			}
		})
	}

	if _, err := Severity(7).MarshalText(); err == nil {
		t.Error("Expected error for unknown severity")
	}
}
