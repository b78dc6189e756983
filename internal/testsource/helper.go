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

// Package testsource provides utilities for parsing Java source code in tests.
//
// It is designed to simplify testing of detectors by handling the boilerplate
// of wrapping statement and member fragments into a compilation unit.
package testsource

import (
	"strings"
	"testing"

	"fillmore-labs.com/codeissues/java"
	"fillmore-labs.com/codeissues/syntax"
)

const (
	classHeader  = "class Test {\n"
	classSuffix  = "\n}\n"
	methodHeader = "void test() {\n"
	methodSuffix = "\n}"
)

// Parse parses a Java statement fragment into a syntax tree.
// The provided source `src` is automatically wrapped in a method body `void test() { ... }`
// within a class `Test`. This allows testing statement-level code fragments without
// manually constructing the surrounding class and method scaffolding.
//
// Returns:
//   - *syntax.Node: The root of the parsed compilation unit.
//   - syntax.Cursor: A cursor positioned at the wrapper method's body block.
func Parse(tb testing.TB, src string) (root *syntax.Node, body syntax.Cursor) {
	tb.Helper()

	root, class := ParseMembers(tb, methodHeader+src+methodSuffix)

	for c := range class.Preorder(syntax.KindMethod) {
		return root, c.Child(2)
	}

	tb.Fatal("Can't find method")

	return nil, syntax.Cursor{}
}

// ParseMembers parses class member declarations wrapped in a class `Test`.
//
// Returns the root of the parsed compilation unit and a cursor positioned at the class.
func ParseMembers(tb testing.TB, src string) (root *syntax.Node, class syntax.Cursor) {
	tb.Helper()

	root = ParseFile(tb, wrapSource(src))

	for c := range syntax.Root(root).Preorder(syntax.KindClass) {
		return root, c
	}

	tb.Fatal("Can't find class")

	return nil, syntax.Cursor{}
}

// ParseFile parses a complete Java compilation unit.
func ParseFile(tb testing.TB, src string) *syntax.Node {
	tb.Helper()

	root, err := java.Parse(tb.Context(), []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return root
}

// Source returns the compilation unit [Parse] parses for the statement fragment src.
func Source(src string) string {
	return wrapSource(methodHeader + src + methodSuffix)
}

func wrapSource(src string) string {
	const wrapperLen = len(classHeader) + len(classSuffix)

	var srcFile strings.Builder
	srcFile.Grow(wrapperLen + len(src))

	srcFile.WriteString(classHeader) // ignore error
	srcFile.WriteString(src)         // ignore error
	srcFile.WriteString(classSuffix) // ignore error

	return srcFile.String()
}
