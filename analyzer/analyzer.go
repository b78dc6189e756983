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

package analyzer

import (
	"context"
	"flag"

	"fillmore-labs.com/codeissues/internal/config"
	"fillmore-labs.com/codeissues/internal/gather"
	"fillmore-labs.com/codeissues/internal/run"
	"fillmore-labs.com/codeissues/issue"
	"fillmore-labs.com/codeissues/syntax"
)

// Detector decides for a single node whether it exhibits an issue.
type Detector = gather.Detector

// Registry maps rule IDs to the available detectors.
type Registry = run.Registry

// DefaultRegistry returns a registry of all built-in detectors.
func DefaultRegistry() Registry { return run.DefaultRegistry() }

// ErrNoFix is returned when applying a diagnostic that offers no rewrite.
var ErrNoFix = run.ErrNoFix

// Runner runs a configured set of detectors over syntax trees.
//
// A Runner is safe for concurrent use once configured.
type Runner struct {
	opts *run.Options
}

// New creates a new [Runner] with all built-in detectors enabled.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the detectors into other tools. For command-line use,
// [Runner.RegisterFlags] binds the configuration to flags.
func New(opts ...Option) *Runner {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	return &Runner{opts: r}
}

// Default is a pre-configured [Runner] with all built-in detectors enabled.
var Default = New()

// Rules returns the rules of the enabled detectors.
func (r *Runner) Rules() []issue.Rule {
	detectors := r.opts.Registry.Enabled(r.opts.Detectors)

	rules := make([]issue.Rule, 0, len(detectors))
	for _, d := range detectors {
		rules = append(rules, d.Rule())
	}

	return rules
}

// Analyze returns the diagnostics for the tree rooted at root in document order.
// complete is false when ctx was canceled before the traversal finished.
func (r *Runner) Analyze(ctx context.Context, root *syntax.Node) (diagnostics []issue.Diagnostic, complete bool) {
	return r.opts.Run(ctx, root)
}

// Apply executes the fix of d and returns the root of the rewritten tree.
// It returns an error wrapping [fillmore-labs.com/codeissues/rewrite.ErrStaleDiagnostic]
// when root no longer contains the flagged nodes.
func (r *Runner) Apply(ctx context.Context, root *syntax.Node, d issue.Diagnostic) (*syntax.Node, error) {
	return r.opts.Apply(ctx, root, d)
}

// Fix applies available fixes one at a time, analyzing the rewritten tree again after each,
// and returns the final tree together with the number of applied fixes.
func (r *Runner) Fix(ctx context.Context, root *syntax.Node) (*syntax.Node, int, error) {
	return r.opts.Fix(ctx, root)
}

// RegisterFlags binds one boolean flag per detector keyword and the suppression
// behavior to flags. A nil flag set defaults to the program's command line.
func (r *Runner) RegisterFlags(flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	for _, e := range r.opts.Registry.Entries() {
		rule := e.Detector.Rule()
		value := boolValue[config.DetectorFlags, *config.Detectors]{flags: &r.opts.Detectors, value: e.Flag}
		flags.Var(value, rule.Keyword, "report "+rule.Title)
	}

	suppressions := boolValue[config.Config, *config.Behavior]{flags: &r.opts.Behavior, value: config.Suppressions}
	flags.Var(suppressions, "suppressions", "honor suppression comments")
}
