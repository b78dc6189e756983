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
	"log/slog"

	"fillmore-labs.com/codeissues/internal/config"
	"fillmore-labs.com/codeissues/internal/run"
)

// Option configures specific behavior of a [New] runner.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithDetector is an [Option] to enable or disable the detector with the given rule ID or keyword.
// Names not found in the registry are ignored.
func WithDetector(name string, enabled bool) Option {
	return detectorOption{name: name, enabled: enabled}
}

type detectorOption struct {
	name    string
	enabled bool
}

func (o detectorOption) apply(r *run.Options) {
	if e, ok := r.Registry.Lookup(o.name); ok {
		r.Detectors.Set(e.Flag, o.enabled)
	}
}

func (o detectorOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.enabled)
}

// WithEqualBranch is an [Option] to configure whether conditionals with equal branches are reported.
func WithEqualBranch(equalBranch bool) Option {
	return flagOption{flag: config.EqualBranchDetector, name: "equalbranch", enabled: equalBranch}
}

// WithRedundantTernary is an [Option] to configure whether redundant boolean conditionals are reported.
func WithRedundantTernary(redundantTernary bool) Option {
	return flagOption{flag: config.RedundantTernaryDetector, name: "redundantternary", enabled: redundantTernary}
}

// WithIfToOr is an [Option] to configure whether flag-setting if statements are reported.
func WithIfToOr(ifToOr bool) Option {
	return flagOption{flag: config.IfToOrDetector, name: "iftoor", enabled: ifToOr}
}

// WithHashCode is an [Option] to configure whether mutable fields in hash code methods are reported.
func WithHashCode(hashCode bool) Option {
	return flagOption{flag: config.HashCodeDetector, name: "hashcode", enabled: hashCode}
}

type flagOption struct {
	flag    config.DetectorFlags
	name    string
	enabled bool
}

func (o flagOption) apply(r *run.Options) {
	r.Detectors.Set(o.flag, o.enabled)
}

func (o flagOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.enabled)
}

// WithSuppressions is an [Option] to configure whether suppression comments are honored.
func WithSuppressions(suppressions bool) Option {
	return suppressionsOption{suppressions: suppressions}
}

type suppressionsOption struct{ suppressions bool }

func (o suppressionsOption) apply(r *run.Options) {
	r.Behavior.Set(config.Suppressions, o.suppressions)
}

func (o suppressionsOption) LogAttr() slog.Attr {
	return slog.Bool("suppressions", o.suppressions)
}

// WithLogger is an [Option] to set the logger for debug and internal error messages.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
