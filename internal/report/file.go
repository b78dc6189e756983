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

package report

import (
	"go/token"

	"golang.org/x/tools/go/analysis"
)

// File maps byte offsets of a printed tree to positions in a [token.FileSet].
type File struct {
	file *token.File
}

// NewFile adds src as filename to fset.
func NewFile(fset *token.FileSet, filename, src string) File {
	f := fset.AddFile(filename, -1, len(src))
	f.SetLinesForContent([]byte(src))

	return File{file: f}
}

// Pos returns the position of the byte offset.
func (f File) Pos(offset int) token.Pos {
	return f.file.Pos(offset)
}

// Position returns the file, line and column of the byte offset.
func (f File) Position(offset int) token.Position {
	return f.file.Position(f.file.Pos(offset))
}

// TextEdits returns the edit transforming before into after. The edit replaces
// everything between the common prefix and the common suffix of both texts.
func (f File) TextEdits(before, after string) []analysis.TextEdit {
	prefix := commonPrefix(before, after)
	suffix := commonSuffix(before[prefix:], after[prefix:])

	if prefix == len(before) && prefix == len(after) {
		return nil
	}

	return []analysis.TextEdit{{
		Pos:     f.Pos(prefix),
		End:     f.Pos(len(before) - suffix),
		NewText: []byte(after[prefix : len(after)-suffix]),
	}}
}

func commonPrefix(a, b string) int {
	n := min(len(a), len(b))

	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}

	return n
}

func commonSuffix(a, b string) int {
	n := min(len(a), len(b))

	for i := range n {
		if a[len(a)-1-i] != b[len(b)-1-i] {
			return i
		}
	}

	return n
}
