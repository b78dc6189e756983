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

// Package analyzer runs the code issue detectors over syntax trees.
//
// # Overview
//
// The detectors find simplifiable conditionals, flag-setting if statements and mutable
// state used in hash codes. Most of them offer a rewrite that can be applied to the tree.
//
// # Example
//
// Before:
//
//	boolean found = false;
//	if (values.length > 0) {
//	    found = true;
//	}
//
// After applying the fix of ConvertIfToOrExpression:
//
//	boolean found = false || values.length > 0;
//
// # Detectors
//
//   - ConditionalTernaryEqualBranch (equalbranch): '?:' with identical branches
//   - RedundantTernaryExpression (redundantternary): c ? true : false
//   - ConvertIfToOrExpression (iftoor): if (c) x = true;
//   - NonReadonlyReferencedInGetHashCode (hashcode): mutable fields in hash code methods
//
// # Suppression
//
// A comment `// codeissues:ignore <ID or keyword>` or `//nolint:<keyword>` in front of or
// at the end of a statement or declaration suppresses the diagnostics within it.
package analyzer
