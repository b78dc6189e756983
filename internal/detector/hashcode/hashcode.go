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

// Package hashcode detects mutable fields referenced in hash code computations.
//
// A hash code depending on a field that can be reassigned changes over the lifetime
// of the object, which breaks hash based collections containing it.
package hashcode

import (
	"fillmore-labs.com/codeissues/issue"
	"fillmore-labs.com/codeissues/syntax"
)

// Rule describes the hash code detector.
var Rule = issue.Rule{
	ID:       "NonReadonlyReferencedInGetHashCode",
	Keyword:  "hashcode",
	Title:    "Non-readonly field referenced in 'GetHashCode()'",
	Severity: issue.Warning,
	Category: "CodeQuality",
}

// Detector reports references to non-final fields inside hash code methods.
type Detector struct{}

// New creates a hash code [Detector].
func New() Detector { return Detector{} }

// Rule implements [gather.Detector].
func (Detector) Rule() issue.Rule { return Rule }

// Kinds implements [gather.Detector].
func (Detector) Kinds() []syntax.Kind {
	return []syntax.Kind{syntax.KindIdent, syntax.KindMemberAccess}
}

// Match implements [gather.Detector].
func (Detector) Match(c syntax.Cursor) (issue.Diagnostic, bool) {
	name, qualified, ok := fieldReference(c)
	if !ok {
		return issue.Diagnostic{}, false
	}

	method, ok := c.Enclosing(syntax.KindMethod)
	if !ok || !isHashCode(method.Node()) {
		return issue.Diagnostic{}, false
	}

	class, ok := method.Parent()
	if !ok || class.Kind() != syntax.KindClass {
		return issue.Diagnostic{}, false
	}

	if !qualified && declaresLocal(method.Node(), name) {
		return issue.Diagnostic{}, false
	}

	if mods, ok := fieldModifiers(class.Node(), name); !ok || mods.Has(syntax.ModReadonly) || mods.Constant() {
		return issue.Diagnostic{}, false
	}

	return issue.Diagnostic{
		Rule:    Rule,
		Message: "Non-readonly field referenced in 'GetHashCode()'",
		Span:    c.Span(),
	}, true
}

// fieldReference returns the name of a possible field reference at c: a simple name or `this.name`.
// Method names of calls are not field references.
func fieldReference(c syntax.Cursor) (name string, qualified, ok bool) {
	if p, ok := c.Parent(); ok && p.Kind() == syntax.KindCall && c.Index() == 0 {
		return "", false, false
	}

	n := c.Node()

	switch n.Kind() {
	case syntax.KindIdent:
		return n.Value(), false, true

	case syntax.KindMemberAccess:
		if n.Base().Kind() != syntax.KindThis {
			return "", false, false
		}

		return n.Value(), true, true

	default:
		return "", false, false
	}
}

// isHashCode reports whether method is a parameterless `int hashCode()` or `int GetHashCode()`.
func isHashCode(method *syntax.Node) bool {
	switch method.Value() {
	case "hashCode", "GetHashCode":

	default:
		return false
	}

	typ, params := method.Child(0), method.Child(1)

	return typ.Kind() == syntax.KindType && typ.Value() == "int" && params.Len() == 0
}

// declaresLocal reports whether the method declares a local variable or a lambda
// parameter with the given name.
func declaresLocal(method *syntax.Node, name string) bool {
	for c := range syntax.Root(method.Body()).Preorder(syntax.KindDeclarator, syntax.KindParameter) {
		if c.Node().Value() == name {
			return true
		}
	}

	return false
}

// fieldModifiers returns the modifiers of the field declared with the given name in class.
func fieldModifiers(class *syntax.Node, name string) (syntax.Modifiers, bool) {
	for member := range class.Children() {
		if member.Kind() != syntax.KindField {
			continue
		}

		for _, d := range member.Declarators() {
			if d.Value() == name {
				return member.Modifiers(), true
			}
		}
	}

	return 0, false
}
