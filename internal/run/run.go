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

package run

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/codeissues/internal/astutil"
	"fillmore-labs.com/codeissues/internal/config"
	"fillmore-labs.com/codeissues/internal/gather"
	"fillmore-labs.com/codeissues/issue"
	"fillmore-labs.com/codeissues/rewrite"
	"fillmore-labs.com/codeissues/syntax"
)

// ErrNoFix is returned when applying a diagnostic that offers no rewrite.
var ErrNoFix = errors.New("diagnostic has no fix")

// maxFixRounds bounds the number of fixes applied to a single tree by [Options.Fix].
const maxFixRounds = 1000

// Run executes the enabled detectors over the tree rooted at root.
//
// Diagnostics are returned in document order. complete is false when ctx was canceled
// before the traversal finished.
func (o *Options) Run(ctx context.Context, root *syntax.Node) ([]issue.Diagnostic, bool) {
	ctx, task := trace.NewTask(ctx, "CodeIssues")
	defer task.End()

	logger := o.logger()
	detectors := o.Registry.Enabled(o.Detectors)

	var suppress gather.SuppressFunc
	if o.Behavior.Enabled(config.Suppressions) {
		suppress = astutil.Suppressed
	}

	diagnostics, complete := gather.New(logger, suppress, detectors...).Gather(ctx, root)

	logger.LogAttrs(ctx, slog.LevelDebug, "Analysis finished",
		slog.Any("detectors", o.Detectors),
		slog.Int("diagnostics", len(diagnostics)),
		slog.Bool("complete", complete))

	return diagnostics, complete
}

// Apply executes the fix of d against root and returns the new root.
func (o *Options) Apply(ctx context.Context, root *syntax.Node, d issue.Diagnostic) (*syntax.Node, error) {
	defer trace.StartRegion(ctx, "Apply").End()

	if !d.HasFix() {
		return nil, fmt.Errorf("%s at %v: %w", d.Rule.ID, d.Span, ErrNoFix)
	}

	n, err := rewrite.Apply(root, d.Span, d.Fix)
	if err != nil {
		o.logger().LogAttrs(ctx, slog.LevelDebug, "Fix not applied",
			slog.Any("diagnostic", d),
			slog.Any("error", err))

		return nil, err
	}

	return n, nil
}

// Fix repeatedly applies the first available fix and analyzes the result again, until no
// fixable diagnostic remains. It returns the final tree and the number of applied fixes.
func (o *Options) Fix(ctx context.Context, root *syntax.Node) (*syntax.Node, int, error) {
	for applied := range maxFixRounds {
		diagnostics, complete := o.Run(ctx, root)
		if !complete {
			return root, applied, context.Cause(ctx)
		}

		i := firstFix(diagnostics)
		if i < 0 {
			return root, applied, nil
		}

		n, err := o.Apply(ctx, root, diagnostics[i])
		if err != nil {
			return root, applied, err
		}

		root = n
	}

	o.logger().LogAttrs(ctx, slog.LevelWarn, "Fix limit reached", slog.Int("fixes", maxFixRounds))

	return root, maxFixRounds, nil
}

func firstFix(diagnostics []issue.Diagnostic) int {
	for i, d := range diagnostics {
		if d.HasFix() {
			return i
		}
	}

	return -1
}
