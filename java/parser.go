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

package java

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	tsjava "github.com/smacker/go-tree-sitter/java"

	"fillmore-labs.com/codeissues/syntax"
)

// ErrSyntax is returned for source files that do not parse without errors.
var ErrSyntax = errors.New("syntax error")

// Parse parses a Java compilation unit into a [syntax.Node] tree.
//
// The resulting tree reproduces src byte for byte. Comments and whitespace are attached
// as trivia to the adjacent nodes; leading whitespace and comments of the file belong to
// the compilation unit itself.
func Parse(ctx context.Context, src []byte) (*syntax.Node, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(tsjava.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}

	root := tree.RootNode()
	if root.HasError() {
		if bad := firstError(root); bad != nil {
			p := bad.StartPoint()

			return nil, fmt.Errorf("%w at %d:%d", ErrSyntax, p.Row+1, p.Column+1)
		}

		return nil, ErrSyntax
	}

	c := converter{src: src, toks: collectTokens(nil, root)}

	return c.unit(root)
}

// firstError returns the first erroneous or missing node below n in document order.
func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}

	for i := range int(n.ChildCount()) {
		child := n.Child(i)
		if !child.HasError() && !child.IsMissing() {
			continue
		}

		if bad := firstError(child); bad != nil {
			return bad
		}
	}

	return nil
}
