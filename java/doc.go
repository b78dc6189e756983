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

// Package java parses Java source files into persistent [syntax.Node] trees using the
// tree-sitter Java grammar.
//
// Comments and whitespace become trivia of the neighboring nodes, so the tree prints the
// parsed file byte for byte. Constructs without a dedicated [syntax.Kind] are kept as
// [syntax.KindOther] nodes named after their grammar rule.
package java
