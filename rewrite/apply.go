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
	"errors"
	"fmt"

	"fillmore-labs.com/codeissues/syntax"
)

var (
	// ErrStaleDiagnostic is returned when the tree no longer contains the node a diagnostic refers to.
	ErrStaleDiagnostic = errors.New("stale diagnostic")

	// ErrMalformedDescriptor is returned for descriptors that would produce an invalid tree.
	ErrMalformedDescriptor = errors.New("malformed rewrite descriptor")
)

// Apply applies d to the tree rooted at root and returns the root of the rewritten tree.
//
// span is the location of the diagnostic d belongs to. When the tree has changed in a way
// that invalidates the diagnostic, Apply returns an error wrapping [ErrStaleDiagnostic].
// root is never modified; unaffected subtrees are shared with the result.
func Apply(root *syntax.Node, span syntax.Span, d Descriptor) (*syntax.Node, error) {
	r := syntax.Root(root)
	if !r.Valid() || !span.IsValid() || !r.Span().Contains(span) {
		return nil, fmt.Errorf("%w: span %v outside of tree", ErrStaleDiagnostic, span)
	}

	switch d := d.(type) {
	case Replace, Remove:
		return edit(r, d)

	case ReplacePair:
		return pair(r, d)

	case nil:
		return nil, fmt.Errorf("%w: no descriptor", ErrMalformedDescriptor)

	default:
		return nil, fmt.Errorf("%w: unknown descriptor %T", ErrMalformedDescriptor, d)
	}
}

func pair(r syntax.Cursor, d ReplacePair) (*syntax.Node, error) {
	first, err := targetOf(d.First)
	if err != nil {
		return nil, err
	}

	second, err := targetOf(d.Second)
	if err != nil {
		return nil, err
	}

	// resolve both before editing, so a stale pair is rejected as a whole
	if _, err := resolve(r, first); err != nil {
		return nil, err
	}

	if _, err := resolve(r, second); err != nil {
		return nil, err
	}

	if first.Span.Overlaps(second.Span) || first.Span == second.Span {
		return nil, fmt.Errorf("%w: overlapping targets %v and %v", ErrMalformedDescriptor, first, second)
	}

	earlier, later := d.First, d.Second
	if first.Span.Start > second.Span.Start {
		earlier, later = later, earlier
	}

	// edits after a position keep the spans before it intact
	root, err := edit(r, later)
	if err != nil {
		return nil, err
	}

	return edit(syntax.Root(root), earlier)
}

func targetOf(d Descriptor) (Target, error) {
	switch d := d.(type) {
	case Replace:
		return d.Target, nil

	case Remove:
		return d.Target, nil

	default:
		return Target{}, fmt.Errorf("%w: pair member %T", ErrMalformedDescriptor, d)
	}
}

// resolve finds the node described by t.
func resolve(r syntax.Cursor, t Target) (syntax.Cursor, error) {
	c, ok := r.FindNode(t.Span, t.Kind)
	if !ok {
		return syntax.Cursor{}, fmt.Errorf("%w: no %v", ErrStaleDiagnostic, t)
	}

	if syntax.Fingerprint(c.Node()) != t.Fingerprint {
		return syntax.Cursor{}, fmt.Errorf("%w: %v changed", ErrStaleDiagnostic, t)
	}

	return c, nil
}

func edit(r syntax.Cursor, d Descriptor) (*syntax.Node, error) {
	switch d := d.(type) {
	case Replace:
		c, err := resolve(r, d.Target)
		if err != nil {
			return nil, err
		}

		return replace(c, d.With)

	case Remove:
		c, err := resolve(r, d.Target)
		if err != nil {
			return nil, err
		}

		root, err := c.Remove()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDescriptor, err)
		}

		return root, nil

	default:
		return nil, fmt.Errorf("%w: unexpected %T", ErrMalformedDescriptor, d)
	}
}

// replace substitutes the node at c. The replacement takes the leading trivia of the
// original and keeps its own trailing trivia, falling back to the original's when it has none.
func replace(c syntax.Cursor, with *syntax.Node) (*syntax.Node, error) {
	if with == nil {
		return nil, fmt.Errorf("%w: no replacement for %v", ErrMalformedDescriptor, c.Kind())
	}

	if !c.Kind().Compatible(with.Kind()) {
		return nil, fmt.Errorf("%w: can't replace %v with %v", ErrMalformedDescriptor, c.Kind(), with.Kind())
	}

	old := c.Node()

	trailing := with.Trailing()
	if trailing == "" {
		trailing = old.Trailing()
	}

	return c.Replace(with.WithTrivia(old.Leading(), trailing).WithAnnotation(syntax.Reformat)), nil
}
