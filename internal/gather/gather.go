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

// Package gather runs detectors over a syntax tree in a single traversal.
package gather

import (
	"context"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/codeissues/internal/astutil"
	"fillmore-labs.com/codeissues/issue"
	"fillmore-labs.com/codeissues/syntax"
)

// Detector decides for a single node whether it exhibits an issue.
//
// Detectors are stateless and never modify the tree.
type Detector interface {
	// Rule returns the metadata of reported diagnostics.
	Rule() issue.Rule

	// Kinds returns the node kinds Match is called for. No kinds selects every node.
	Kinds() []syntax.Kind

	// Match inspects the node at c and returns a diagnostic if it matches.
	Match(c syntax.Cursor) (issue.Diagnostic, bool)
}

// SuppressFunc reports whether a diagnostic for the node at c should be dropped.
type SuppressFunc func(c syntax.Cursor, rule issue.Rule) bool

// Gatherer dispatches nodes to interested detectors.
type Gatherer struct {
	detectors []Detector
	byKind    [syntax.KindOther + 1][]int
	suppress  SuppressFunc
	logger    *slog.Logger
}

// New creates a [Gatherer] for the given detectors. The kind filter is computed once.
func New(logger *slog.Logger, suppress SuppressFunc, detectors ...Detector) *Gatherer {
	if logger == nil {
		logger = slog.Default()
	}

	g := &Gatherer{detectors: detectors, suppress: suppress, logger: logger}

	for i, d := range detectors {
		kinds := d.Kinds()
		if len(kinds) == 0 {
			for k := range g.byKind {
				g.byKind[k] = append(g.byKind[k], i)
			}

			continue
		}

		for _, k := range kinds {
			if k <= syntax.KindOther {
				g.byKind[k] = append(g.byKind[k], i)
			}
		}
	}

	return g
}

// Gather is a shorthand for creating a [Gatherer] without suppressions and running it once.
func Gather(ctx context.Context, root *syntax.Node, detectors []Detector) ([]issue.Diagnostic, bool) {
	return New(nil, nil, detectors...).Gather(ctx, root)
}

// Gather visits the tree rooted at root in depth-first pre-order and returns the diagnostics
// of all detectors in document order.
//
// Cancellation is checked before each node. When ctx is canceled, the diagnostics found
// so far are returned and complete is false.
func (g *Gatherer) Gather(ctx context.Context, root *syntax.Node) (diagnostics []issue.Diagnostic, complete bool) {
	defer trace.StartRegion(ctx, "Gather").End()

	r := syntax.Root(root)
	bounds := r.Span()

	for c := range r.Preorder() {
		if err := ctx.Err(); err != nil {
			g.logger.LogAttrs(ctx, slog.LevelDebug, "Traversal canceled",
				slog.Int("diagnostics", len(diagnostics)), slog.Any("error", err))

			return diagnostics, false
		}

		for _, i := range g.byKind[c.Kind()] {
			d, ok := g.detectors[i].Match(c)
			if !ok {
				continue
			}

			if !d.Span.IsValid() || !bounds.Contains(d.Span) {
				astutil.InternalError(ctx, g.logger, c, "Diagnostic %s span %v outside of tree %v", d.Rule.ID, d.Span, bounds)

				continue
			}

			if g.suppress != nil && g.suppress(c, d.Rule) {
				continue
			}

			diagnostics = append(diagnostics, d)
		}
	}

	return diagnostics, true
}
