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

package config

// DetectorFlags represents specific detectors.
type DetectorFlags uint8

const (
	// EqualBranchDetector reports conditional expressions with identical branches.
	EqualBranchDetector DetectorFlags = 1 << iota

	// RedundantTernaryDetector reports conditional expressions selecting between boolean literals.
	RedundantTernaryDetector

	// IfToOrDetector reports if statements that only set a flag to true.
	IfToOrDetector

	// HashCodeDetector reports mutable fields referenced in hash code methods.
	HashCodeDetector

	// AllDetectors enables every detector.
	AllDetectors = EqualBranchDetector | RedundantTernaryDetector | IfToOrDetector | HashCodeDetector
)

// Detectors is the set of enabled detectors.
type Detectors = BitMask[DetectorFlags]

// DefaultDetectors returns the detectors enabled by default.
func DefaultDetectors() Detectors {
	return NewBitMask(AllDetectors)
}

// Config represents configuration options for the detectors.
type Config uint8

const (
	// Suppressions specifies whether suppression comments are honored.
	Suppressions Config = 1 << iota
)

// Behavior holds behavioral options.
type Behavior = BitMask[Config]

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return NewBitMask(Suppressions)
}
