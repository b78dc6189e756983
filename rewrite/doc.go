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

// Package rewrite applies the fixes attached to diagnostics.
//
// A [Descriptor] records what to change in terms of node locations in the tree it was
// computed from. [Apply] verifies that the located nodes are still present and unchanged
// before producing a new tree; the input tree is never modified.
//
// Replaced regions are annotated with [syntax.Reformat] so that a formatter can
// normalize their whitespace afterwards.
package rewrite
