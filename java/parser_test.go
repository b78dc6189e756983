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

package java_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/codeissues/java"
	"fillmore-labs.com/codeissues/syntax"
)

const sample = `// Copyright header
package sample;

import java.util.List;

/** Sample class. */
public class Sample {
    private int count; // mutable
    private final int id = 1;
    static final String NAME = "sample";

    @Override
    public int hashCode() {
        return count * 31 + id;
    }

    void update(boolean c, int v) {
        int x = c ? v : v; /* same */
        // flag
        boolean flag = false;
        if ((c)) {
            flag = true;
        } else {
            this.count = foo.bar(1, x);
        }
    }
}
`

func parse(t *testing.T, src string) *syntax.Node {
	t.Helper()

	root, err := java.Parse(t.Context(), []byte(src))
	require.NoError(t, err)

	return root
}

func find(t *testing.T, root *syntax.Node, kind syntax.Kind, value string) syntax.Cursor {
	t.Helper()

	for c := range syntax.Root(root).Preorder(kind) {
		if value == "" || c.Node().Value() == value {
			return c
		}
	}

	t.Fatalf("No %v %q found", kind, value)

	return syntax.Cursor{}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"sample", sample},
		{"empty", ""},
		{"blank", "  \n\t\n"},
		{"comment only", "// nothing here\n"},
		{"crlf", "class A {\r\n  int a; // x\r\n  int b;\r\n}\r\n"},
		{"no final newline", "class A { void m() { a = b ? c : d; } }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := parse(t, tt.src)

			assert.Equal(t, syntax.KindCompilationUnit, root.Kind())
			assert.Equal(t, tt.src, root.String())

			for c := range syntax.Root(root).Preorder() {
				span := c.Span()
				assert.Equal(t, c.Node().Text(), tt.src[span.Start:span.End], "%v at %v", c.Kind(), span)
			}
		})
	}
}

func TestDeclarations(t *testing.T) {
	t.Parallel()

	root := parse(t, sample)

	class := find(t, root, syntax.KindClass, "Sample").Node()
	assert.True(t, class.Modifiers().Has(syntax.ModPublic))
	assert.Equal(t, 5, class.Len())

	count := class.Child(0)
	require.Equal(t, syntax.KindField, count.Kind())
	assert.True(t, count.Modifiers().Has(syntax.ModPrivate))
	assert.False(t, count.Modifiers().Has(syntax.ModReadonly))
	assert.Equal(t, " // mutable\n", count.Trailing())
	require.Len(t, count.Declarators(), 1)
	assert.Equal(t, "count", count.Declarators()[0].Value())

	id := class.Child(1)
	assert.True(t, id.Modifiers().Has(syntax.ModReadonly))
	assert.False(t, id.Modifiers().Constant())

	name := class.Child(2)
	assert.True(t, name.Modifiers().Constant())
	assert.Equal(t, "String", name.Child(0).Value())

	hash := find(t, root, syntax.KindMethod, "hashCode").Node()
	assert.True(t, hash.Modifiers().Has(syntax.ModOverride))
	assert.Equal(t, "int", hash.Child(0).Value())
	assert.Equal(t, 0, hash.Child(1).Len())
	assert.Equal(t, syntax.KindBlock, hash.Body().Kind())

	update := find(t, root, syntax.KindMethod, "update").Node()
	params := update.Child(1)
	require.Equal(t, syntax.KindParameters, params.Kind())
	require.Equal(t, 2, params.Len())
	assert.Equal(t, "c", params.Child(0).Value())
	assert.Equal(t, "boolean", params.Child(0).Child(0).Value())
}

func TestStatements(t *testing.T) {
	t.Parallel()

	root := parse(t, sample)
	body := find(t, root, syntax.KindMethod, "update").Node().Body()
	require.Equal(t, 3, body.Len())

	decl := body.Child(0)
	require.Equal(t, syntax.KindLocalDecl, decl.Kind())
	assert.Equal(t, " /* same */\n", decl.Trailing())

	cond := decl.Declarators()[0].Init()
	require.Equal(t, syntax.KindConditional, cond.Kind())
	assert.Equal(t, "c", cond.Cond().Value())
	assert.True(t, syntax.Equal(cond.Then(), cond.Else()))

	flag := body.Child(1)
	assert.Equal(t, "        // flag\n        ", flag.Leading())

	stmt := body.Child(2)
	require.Equal(t, syntax.KindIf, stmt.Kind())
	assert.Equal(t, syntax.KindParen, stmt.Cond().Kind(), "inner parentheses are kept")
	assert.Equal(t, syntax.KindBlock, stmt.Then().Kind())
	assert.Equal(t, syntax.KindBlock, stmt.Else().Kind())

	assign := stmt.Then().Child(0).Child(0)
	require.Equal(t, syntax.KindAssign, assign.Kind())
	assert.Equal(t, "=", assign.Value())
	assert.Equal(t, "flag", assign.Left().Value())
	assert.Equal(t, "true", assign.Right().Text())
}

func TestExpressions(t *testing.T) {
	t.Parallel()

	root := parse(t, sample)

	target := find(t, root, syntax.KindMemberAccess, "count").Node()
	assert.Equal(t, syntax.KindThis, target.Base().Kind())

	call := find(t, root, syntax.KindCall, "").Node()
	require.Equal(t, 3, call.Len())

	callee := call.Child(0)
	assert.Equal(t, syntax.KindMemberAccess, callee.Kind())
	assert.Equal(t, "bar", callee.Value())
	assert.Equal(t, "foo.bar", callee.Text())
	assert.Equal(t, "foo", callee.Base().Value())
	assert.Equal(t, " ", call.Child(2).Leading())

	ret := find(t, root, syntax.KindReturn, "").Node()
	sum := ret.Child(0)
	require.Equal(t, syntax.KindBinary, sum.Kind())
	assert.Equal(t, "+", sum.Value())
	assert.Equal(t, "*", sum.Left().Value())
}

func TestBindings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		stmt      string
		construct string
		names     []string
	}{
		{"enhanced for", "for (int v : vs) { f(v); }", "enhanced_for_statement", []string{"v"}},
		{"catch", "try { f(); } catch (RuntimeException e) { g(e); }", "catch_formal_parameter", []string{"e"}},
		{"resource", "try (var r = open()) { f(r); }", "resource", []string{"r"}},
		{"lambda", "f(v -> v + 1);", "lambda_expression", []string{"v"}},
		{"lambda inferred", "f((a, b) -> a + b);", "inferred_parameters", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := "class A { void m() { " + tt.stmt + " } }"
			root := parse(t, src)
			assert.Equal(t, src, root.String())

			construct := find(t, root, syntax.KindOther, tt.construct)

			var names []string
			for c := range construct.Preorder(syntax.KindDeclarator) {
				names = append(names, c.Node().Value())
			}

			assert.Equal(t, tt.names, names)
		})
	}
}

func TestUpdateExpression(t *testing.T) {
	t.Parallel()

	root := parse(t, "class A { void m() { x = c ? i++ : i--; y = c ? ++i : i++; z = c ? i ++ : i++; } }")

	var conds []*syntax.Node
	for c := range syntax.Root(root).Preorder(syntax.KindConditional) {
		conds = append(conds, c.Node())
	}

	require.Len(t, conds, 3)
	assert.False(t, syntax.Equal(conds[0].Then(), conds[0].Else()))
	assert.False(t, syntax.Equal(conds[1].Then(), conds[1].Else()))
	assert.True(t, syntax.Equal(conds[2].Then(), conds[2].Else()))
}

func TestSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := java.Parse(t.Context(), []byte("class A { void m( }"))
	require.ErrorIs(t, err, java.ErrSyntax)
}
