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

package rewrite

import (
	"fmt"
	"log/slog"

	"fillmore-labs.com/codeissues/syntax"
)

// Target locates the node a [Descriptor] expects to edit.
type Target struct {
	Span        syntax.Span
	Kind        syntax.Kind
	Fingerprint uint64
}

// TargetOf returns the [Target] describing the node at c.
func TargetOf(c syntax.Cursor) Target {
	return Target{Span: c.Span(), Kind: c.Kind(), Fingerprint: syntax.Fingerprint(c.Node())}
}

// String returns a short description for error messages.
func (t Target) String() string {
	return fmt.Sprintf("%v at %v", t.Kind, t.Span)
}

// Descriptor is an immutable description of a tree edit.
// It is one of [Replace], [Remove] or [ReplacePair].
type Descriptor interface {
	slog.LogValuer
	descriptor()
}

// Replace substitutes the target node with With.
type Replace struct {
	Target Target
	With   *syntax.Node
}

// NewReplace returns a [Replace] descriptor for the node at c.
func NewReplace(c syntax.Cursor, with *syntax.Node) Replace {
	return Replace{Target: TargetOf(c), With: with}
}

func (Replace) descriptor() {}

// LogValue implements [slog.LogValuer].
func (r Replace) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("op", "replace"),
		slog.String("target", r.Target.String()),
		slog.String("with", r.With.Text()),
	)
}

// Remove deletes the target node, which must be a member of a statement or declaration list.
type Remove struct {
	Target Target
}

// NewRemove returns a [Remove] descriptor for the node at c.
func NewRemove(c syntax.Cursor) Remove {
	return Remove{Target: TargetOf(c)}
}

func (Remove) descriptor() {}

// LogValue implements [slog.LogValuer].
func (r Remove) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("op", "remove"),
		slog.String("target", r.Target.String()),
	)
}

// ReplacePair applies two non-overlapping edits atomically.
// Each of First and Second is a [Replace] or a [Remove].
type ReplacePair struct {
	First, Second Descriptor
}

func (ReplacePair) descriptor() {}

// LogValue implements [slog.LogValuer].
func (p ReplacePair) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("op", "pair"),
		slog.Any("first", p.First),
		slog.Any("second", p.Second),
	)
}
