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

package syntax

import "strings"

// Modifiers is a set of declaration modifiers.
type Modifiers uint16

const (
	// ModStatic marks static members.
	ModStatic Modifiers = 1 << iota

	// ModReadonly marks members that can't be reassigned after initialization (final, readonly).
	ModReadonly

	// ModConst marks compile time constants.
	ModConst

	// ModOverride marks methods overriding an inherited method.
	ModOverride

	// ModPublic marks public members.
	ModPublic

	// ModProtected marks protected members.
	ModProtected

	// ModPrivate marks private members.
	ModPrivate

	// ModAbstract marks abstract members.
	ModAbstract
)

var modifierNames = [...]string{"static", "readonly", "const", "override", "public", "protected", "private", "abstract"}

// Has reports whether all modifiers in m2 are set in m.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// Constant reports whether the modifiers describe a compile time or static read-only constant.
func (m Modifiers) Constant() bool {
	return m.Has(ModConst) || m.Has(ModStatic|ModReadonly)
}

func (m Modifiers) String() string {
	var names []string

	for i, name := range modifierNames {
		if m&(1<<i) != 0 {
			names = append(names, name)
		}
	}

	return strings.Join(names, " ")
}
