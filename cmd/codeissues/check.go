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
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/codeissues/analyzer"
	"fillmore-labs.com/codeissues/internal/report"
	"fillmore-labs.com/codeissues/java"
)

const fileMode = 0o644

// checker analyzes and optionally fixes source files.
type checker struct {
	runner *analyzer.Runner
	fs     afs.Service
	logger *slog.Logger
	fix    bool
}

// result holds the findings for one file.
type result struct {
	fset        *token.FileSet
	diagnostics []analysis.Diagnostic
}

// checkAll checks the files at urls with at most jobs files in parallel.
// Results are returned in the order of urls.
func (c checker) checkAll(ctx context.Context, urls []string, jobs int) ([]result, error) {
	results := make([]result, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, URL := range urls {
		g.Go(func() error {
			r, err := c.check(ctx, URL)
			if err != nil {
				return fmt.Errorf("%s: %w", url.Path(URL), err)
			}

			results[i] = r

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// check analyzes a single file. Files that don't parse are skipped with a warning.
func (c checker) check(ctx context.Context, URL string) (result, error) {
	src, err := c.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return result{}, err
	}

	root, err := java.Parse(ctx, src)
	if errors.Is(err, java.ErrSyntax) {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "Skipping file",
			slog.String("url", URL),
			slog.Any("error", err))

		return result{}, nil
	}

	if err != nil {
		return result{}, err
	}

	diagnostics, complete := c.runner.Analyze(ctx, root)
	if !complete {
		return result{}, context.Cause(ctx)
	}

	fset := token.NewFileSet()
	r := result{fset: fset, diagnostics: report.Analysis(fset, url.Path(URL), root, diagnostics)}

	if !c.fix || len(diagnostics) == 0 {
		return r, nil
	}

	fixed, n, err := c.runner.Fix(ctx, root)
	if err != nil {
		return result{}, err
	}

	if n > 0 {
		if err := c.fs.Upload(ctx, URL, fileMode, strings.NewReader(fixed.String())); err != nil {
			return result{}, err
		}

		c.logger.LogAttrs(ctx, slog.LevelDebug, "Fixes applied",
			slog.String("url", URL),
			slog.Int("fixes", n))
	}

	return r, nil
}
