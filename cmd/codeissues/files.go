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

package main

import (
	"context"
	"io"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

const sourceSuffix = ".java"

// collect returns the URLs of the source files at or below the given locations, sorted and
// without duplicates. Files named explicitly are included regardless of their name.
func collect(ctx context.Context, fs afs.Service, locations []string, s Settings) ([]string, error) {
	var urls []string

	for _, location := range locations {
		URL := url.Normalize(location, file.Scheme)

		obj, err := fs.Object(ctx, URL)
		if err != nil {
			return nil, err
		}

		if !obj.IsDir() {
			urls = append(urls, URL)

			continue
		}

		var visitor storage.OnVisit = func(_ context.Context, baseURL, parent string, info os.FileInfo, _ io.Reader) (bool, error) {
			if info.IsDir() || !strings.HasSuffix(info.Name(), sourceSuffix) {
				return true, nil
			}

			name := path.Join(parent, info.Name())
			if !excluded(s, name) {
				urls = append(urls, url.Join(baseURL, name))
			}

			return true, nil
		}

		if err := fs.Walk(ctx, URL, visitor); err != nil {
			return nil, err
		}
	}

	slices.Sort(urls)

	return slices.Compact(urls), nil
}

// excluded reports whether any element of the relative path name is excluded.
func excluded(s Settings, name string) bool {
	for elem := range strings.SplitSeq(name, "/") {
		if s.Excluded(elem) {
			return true
		}
	}

	return false
}
