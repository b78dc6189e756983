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
	"cmp"
	"slices"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// tokens are the non-comment leaf tokens of a source file in document order.
type tokens []tokenSpan

type tokenSpan struct{ start, end uint32 }

func isComment(typ string) bool {
	switch typ {
	case "comment", "line_comment", "block_comment":
		return true

	default:
		return false
	}
}

// collectTokens appends all non-comment leaf tokens below n.
func collectTokens(toks tokens, n *sitter.Node) tokens {
	if isComment(n.Type()) {
		return toks
	}

	count := int(n.ChildCount())
	if count == 0 {
		if n.EndByte() > n.StartByte() {
			toks = append(toks, tokenSpan{n.StartByte(), n.EndByte()})
		}

		return toks
	}

	for i := range count {
		toks = collectTokens(toks, n.Child(i))
	}

	return toks
}

// prevEnd returns the end of the last token ending at or before pos, or 0.
func (t tokens) prevEnd(pos uint32) uint32 {
	i, _ := slices.BinarySearchFunc(t, pos, func(s tokenSpan, p uint32) int { return cmp.Compare(s.end, p+1) })
	if i == 0 {
		return 0
	}

	return t[i-1].end
}

// nextStart returns the start of the first token starting at or after pos, or limit.
func (t tokens) nextStart(pos, limit uint32) uint32 {
	i, _ := slices.BinarySearchFunc(t, pos, func(s tokenSpan, p uint32) int { return cmp.Compare(s.start, p) })
	if i == len(t) || t[i].start > limit {
		return limit
	}

	return t[i].start
}

// lineTrailing returns the length of the trailing trivia at the start of gap: blanks and
// comments up to and including the first line break. Without a line break there is none.
func lineTrailing(gap string) int {
	for i := 0; i < len(gap); {
		switch rest := gap[i:]; {
		case rest[0] == '\n':
			return i + 1

		case rest[0] == ' ', rest[0] == '\t', rest[0] == '\r', rest[0] == '\f':
			i++

		case strings.HasPrefix(rest, "//"):
			j := strings.IndexByte(rest, '\n')
			if j < 0 {
				return 0
			}

			return i + j + 1

		case strings.HasPrefix(rest, "/*"):
			j := strings.Index(rest[2:], "*/")
			if j < 0 {
				return 0
			}

			i += j + 4

		default:
			return 0
		}
	}

	return 0
}
