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

package issue

import (
	"fmt"
	"strings"
)

// Severity is the importance of a [Diagnostic].
type Severity uint8

const (
	// Info marks suggestions that improve readability.
	Info Severity = iota

	// Warning marks code that is likely wrong or needlessly complicated.
	Warning
)

// String returns the lower case name of the severity.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"

	case Warning:
		return "warning"

	default:
		return fmt.Sprintf("Severity(%d)", uint8(s))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	switch s {
	case Info, Warning:
		return []byte(s.String()), nil

	default:
		return nil, fmt.Errorf("unknown severity %d", s)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Severity) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "info", "suggestion":
		*s = Info

	case "warning", "warn":
		*s = Warning

	default:
		return fmt.Errorf("unknown severity %q", string(text))
	}

	return nil
}
