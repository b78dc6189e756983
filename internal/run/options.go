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

package run

import (
	"log/slog"

	"fillmore-labs.com/codeissues/internal/config"
)

// Options represent the configuration of a detector run.
type Options struct {
	// Registry holds the available detectors.
	Registry Registry

	// Detectors represent the detectors to be enabled.
	Detectors config.Detectors

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Logger receives debug and internal error messages. Nil means [slog.Default].
	Logger *slog.Logger
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Registry:  DefaultRegistry(),
		Detectors: config.DefaultDetectors(),
		Behavior:  config.DefaultBehavior(),
	}
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}

	return o.Logger
}
