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

package run

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"fillmore-labs.com/codeissues/internal/config"
	"fillmore-labs.com/codeissues/internal/detector/equalbranch"
	"fillmore-labs.com/codeissues/internal/detector/hashcode"
	"fillmore-labs.com/codeissues/internal/detector/iftoor"
	"fillmore-labs.com/codeissues/internal/detector/redundantternary"
	"fillmore-labs.com/codeissues/internal/gather"
)

// Entry binds a detector to the flag enabling it.
type Entry struct {
	Flag     config.DetectorFlags
	Detector gather.Detector
}

// Registry maps rule IDs to detectors.
type Registry map[string]Entry

// DefaultRegistry returns a registry of all built-in detectors.
func DefaultRegistry() Registry {
	r := make(Registry, 4)

	r.Register(config.EqualBranchDetector, equalbranch.New())
	r.Register(config.RedundantTernaryDetector, redundantternary.New())
	r.Register(config.IfToOrDetector, iftoor.New())
	r.Register(config.HashCodeDetector, hashcode.New())

	return r
}

// Register adds d under its rule ID, replacing a previous registration.
func (r Registry) Register(flag config.DetectorFlags, d gather.Detector) {
	r[d.Rule().ID] = Entry{Flag: flag, Detector: d}
}

// Lookup finds an entry by rule ID or, case-insensitively, by keyword.
func (r Registry) Lookup(name string) (Entry, bool) {
	if e, ok := r[name]; ok {
		return e, true
	}

	for _, e := range r.Entries() {
		if strings.EqualFold(e.Detector.Rule().Keyword, name) {
			return e, true
		}
	}

	return Entry{}, false
}

// Entries returns all entries, ordered by flag and rule ID.
func (r Registry) Entries() []Entry {
	return slices.SortedFunc(maps.Values(r), func(a, b Entry) int {
		return cmp.Or(
			cmp.Compare(a.Flag, b.Flag),
			strings.Compare(a.Detector.Rule().ID, b.Detector.Rule().ID),
		)
	})
}

// Enabled returns the detectors enabled in ds, in registry order.
func (r Registry) Enabled(ds config.Detectors) []gather.Detector {
	var detectors []gather.Detector

	for _, e := range r.Entries() {
		if ds.Enabled(e.Flag) {
			detectors = append(detectors, e.Detector)
		}
	}

	return detectors
}
