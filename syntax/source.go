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

import (
	"errors"
	"fmt"
)

// ErrInvalidSource is returned when a [Source] violates the text embedding invariants.
var ErrInvalidSource = errors.New("invalid source node")

// Source describes a node produced by a parser.
//
// Text is the verbatim source of the node without its own trivia. Each child's leading
// trivia, text and trailing trivia must appear in Text at Offsets[i] (the start of the
// child's text), in order and without overlap.
type Source struct {
	Kind      Kind
	Value     string
	Modifiers Modifiers
	Text      string
	Leading   string
	Trailing  string
	Children  []*Node
	Offsets   []int
}

// FromSource validates s and creates the corresponding [Node].
func FromSource(s Source) (*Node, error) {
	if s.Kind == KindInvalid || s.Kind > KindOther {
		return nil, fmt.Errorf("%w: kind %v", ErrInvalidSource, s.Kind)
	}

	if len(s.Children) != len(s.Offsets) {
		return nil, fmt.Errorf("%w: %v has %d children and %d offsets", ErrInvalidSource, s.Kind, len(s.Children), len(s.Offsets))
	}

	pos := 0
	for i, c := range s.Children {
		if c == nil {
			return nil, fmt.Errorf("%w: %v child %d is nil", ErrInvalidSource, s.Kind, i)
		}

		off := s.Offsets[i]
		start, end := off-len(c.leading), off+len(c.text)+len(c.trailing)

		if start < pos || end > len(s.Text) {
			return nil, fmt.Errorf("%w: %v child %d (%v) out of bounds", ErrInvalidSource, s.Kind, i, c.kind)
		}

		if s.Text[start:end] != c.String() {
			return nil, fmt.Errorf("%w: %v child %d (%v) text mismatch", ErrInvalidSource, s.Kind, i, c.kind)
		}

		pos = end
	}

	n := &Node{
		kind:     s.Kind,
		value:    s.Value,
		mods:     s.Modifiers,
		text:     s.Text,
		leading:  s.Leading,
		trailing: s.Trailing,
		children: s.Children,
		offsets:  s.Offsets,
	}

	return n, nil
}
