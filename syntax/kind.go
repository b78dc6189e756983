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

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind classifies a [Node].
type Kind uint8

const (
	KindInvalid Kind = iota

	// Declarations.
	KindCompilationUnit // [decl...]
	KindClass           // [member...], Value is the class name
	KindField           // [type, declarator...]
	KindMethod          // [type, parameters, body?], Value is the method name
	KindParameters      // [parameter...]
	KindParameter       // [type], Value is the parameter name
	KindType            // leaf, Value is the type text

	// Statements.
	KindBlock      // [stmt...]
	KindLocalDecl  // [type, declarator...]
	KindDeclarator // [init?], Value is the declared name
	KindExprStmt   // [expr]
	KindIf         // [cond, then, else?]
	KindReturn     // [expr?]

	// Expressions.
	KindAssign       // [target, value], Value is the operator
	KindBinary       // [left, right], Value is the operator
	KindUnary        // [operand], Value is the operator
	KindConditional  // [cond, then, else]
	KindParen        // [inner]
	KindLiteral      // leaf, Value is the literal text
	KindIdent        // leaf, Value is the name
	KindMemberAccess // [base], Value is the member name
	KindThis         // leaf
	KindCall         // [callee, arg...]

	// KindOther is a construct without a dedicated kind, Value names the construct.
	KindOther
)

// IsExpression reports whether nodes of this kind are expressions.
func (k Kind) IsExpression() bool {
	switch k {
	case KindAssign, KindBinary, KindUnary, KindConditional, KindParen,
		KindLiteral, KindIdent, KindMemberAccess, KindThis, KindCall:
		return true

	default:
		return false
	}
}

// IsStatement reports whether nodes of this kind are statements.
func (k Kind) IsStatement() bool {
	switch k {
	case KindBlock, KindLocalDecl, KindExprStmt, KindIf, KindReturn:
		return true

	default:
		return false
	}
}

// IsDeclaration reports whether nodes of this kind are type member or top level declarations.
func (k Kind) IsDeclaration() bool {
	switch k {
	case KindClass, KindField, KindMethod:
		return true

	default:
		return false
	}
}

// IsList reports whether the children of nodes of this kind form an ordered
// sequence of statements or declarations that can be removed individually.
func (k Kind) IsList() bool {
	switch k {
	case KindCompilationUnit, KindClass, KindBlock:
		return true

	default:
		return false
	}
}

// Compatible reports whether a node of kind k can be substituted by a node of kind other
// without changing the syntactic category of its position.
func (k Kind) Compatible(other Kind) bool {
	switch {
	case k == other:
		return true

	case k == KindOther || other == KindOther:
		return true

	case k.IsExpression():
		return other.IsExpression()

	case k.IsStatement():
		return other.IsStatement()

	case k.IsDeclaration():
		return other.IsDeclaration()

	default:
		return false
	}
}
