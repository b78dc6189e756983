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

package astutil

import (
	"iter"
	"regexp"
	"strings"

	"fillmore-labs.com/codeissues/issue"
	"fillmore-labs.com/codeissues/syntax"
)

// linter is the name used in nolint directives.
const linter = "codeissues"

// Suppressed reports whether a suppression comment for rule applies to the node at c.
//
// Comments are searched in the trivia of c and of all enclosing statements and declarations.
func Suppressed(c syntax.Cursor, rule issue.Rule) bool {
	for cur, ok := c, true; ok; cur, ok = cur.Parent() {
		if cur.Index() >= 0 && cur != c && !cur.Kind().IsStatement() && !cur.Kind().IsDeclaration() {
			continue
		}

		n := cur.Node()
		for comment := range Comments(n.Leading() + n.Trailing()) {
			if CommentHasNoLint(comment, rule) {
				return true
			}
		}
	}

	return false
}

var (
	nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)
	ignorePattern = regexp.MustCompile(`^//\s*codeissues:ignore\s+([a-zA-Z0-9,_-]+)`)
)

// CommentHasNoLint checks if the provided comment contains a `//nolint:codeissues` directive
// or a `// codeissues:ignore <rule>` directive for rule.
func CommentHasNoLint(comment string, rule issue.Rule) bool {
	if matches := nolintPattern.FindStringSubmatch(comment); matches != nil {
		// Parse comma-separated linter list
		for name := range strings.SplitSeq(matches[1], ",") {
			if l := strings.ToLower(strings.TrimSpace(name)); l == linter || l == "all" || l == rule.Keyword {
				return true
			}
		}
	}

	if matches := ignorePattern.FindStringSubmatch(comment); matches != nil {
		for name := range strings.SplitSeq(matches[1], ",") {
			if name = strings.TrimSpace(name); name == rule.ID || strings.EqualFold(name, rule.Keyword) || name == "all" {
				return true
			}
		}
	}

	return false
}

// Comments yields the comments contained in trivia.
func Comments(trivia string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for rest := trivia; rest != ""; {
			i := strings.IndexByte(rest, '/')
			if i < 0 || i+1 == len(rest) {
				return
			}

			rest = rest[i:]

			var end int

			switch rest[1] {
			case '/':
				end = strings.IndexByte(rest, '\n')
				if end < 0 {
					end = len(rest)
				}

			case '*':
				end = strings.Index(rest[2:], "*/")
				if end < 0 {
					end = len(rest)
				} else {
					end += 4
				}

			default:
				rest = rest[1:]

				continue
			}

			if !yield(strings.TrimRight(rest[:end], "\r")) {
				return
			}

			rest = rest[end:]
		}
	}
}
