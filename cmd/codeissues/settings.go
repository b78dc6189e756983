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

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"path"
	"slices"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/codeissues/analyzer"
)

// ErrInvalidSettings is returned for malformed settings files.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings represents the configuration file of the command.
type Settings struct {
	// EqualBranch enables reporting conditionals with identical branches.
	EqualBranch *bool `yaml:"equal-branch"`
	// RedundantTernary enables reporting boolean conditionals selecting true and false.
	RedundantTernary *bool `yaml:"redundant-ternary"`
	// IfToOr enables reporting if statements that only set a flag.
	IfToOr *bool `yaml:"if-to-or"`
	// HashCode enables reporting mutable fields referenced in hash codes.
	HashCode *bool `yaml:"hash-code"`
	// Suppressions enables suppression comments.
	Suppressions *bool `yaml:"suppressions"`
	// Detectors enables or disables detectors by rule ID or keyword.
	Detectors map[string]bool `yaml:"detectors"`
	// Exclude lists file and directory name patterns skipped when walking directories.
	Exclude []string `yaml:"exclude"`
}

// LoadSettings reads the settings file at location, a local path or URL.
func LoadSettings(ctx context.Context, fs afs.Service, location string) (Settings, error) {
	URL := url.Normalize(location, file.Scheme)

	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return Settings{}, fmt.Errorf("can't read settings %s: %w", URL, err)
	}

	return ParseSettings(data)
}

// ParseSettings decodes YAML settings. Unknown fields are rejected.
func ParseSettings(data []byte) (Settings, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Settings
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	for _, pattern := range s.Exclude {
		if _, err := path.Match(pattern, ""); err != nil {
			return Settings{}, fmt.Errorf("%w: exclude pattern %q: %w", ErrInvalidSettings, pattern, err)
		}
	}

	return s, nil
}

// Validate checks that all detector names are known to r.
func (s Settings) Validate(r analyzer.Registry) error {
	for _, name := range slices.Sorted(maps.Keys(s.Detectors)) {
		if _, ok := r.Lookup(name); !ok {
			return fmt.Errorf("%w: unknown detector %q", ErrInvalidSettings, name)
		}
	}

	return nil
}

// Options converts [Settings] into a list of [analyzer.Option].
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.EqualBranch, analyzer.WithEqualBranch)
	opts = appendOption(opts, s.RedundantTernary, analyzer.WithRedundantTernary)
	opts = appendOption(opts, s.IfToOr, analyzer.WithIfToOr)
	opts = appendOption(opts, s.HashCode, analyzer.WithHashCode)
	opts = appendOption(opts, s.Suppressions, analyzer.WithSuppressions)

	for _, name := range slices.Sorted(maps.Keys(s.Detectors)) {
		opts = append(opts, analyzer.WithDetector(name, s.Detectors[name]))
	}

	return opts
}

// Excluded reports whether a file or directory name matches an exclude pattern.
func (s Settings) Excluded(name string) bool {
	for _, pattern := range s.Exclude {
		if ok, _ := path.Match(pattern, name); ok {
			return true
		}
	}

	return false
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
