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

// Command codeissues reports code issues in Java source files and optionally fixes them.
//
// Usage:
//
//	codeissues [flags] [path ...]
//
// Paths may be files or directories, or URLs supported by github.com/viant/afs.
// Directories are searched for .java files. The exit status is 1 when issues were
// reported and 2 on errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/viant/afs"

	"fillmore-labs.com/codeissues/analyzer"
)

const (
	exitOK = iota
	exitIssues
	exitError
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

// execute runs the command with the given arguments and returns the exit status.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("codeissues", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configURL string
		fix       bool
		verbose   bool
		jobs      int
	)

	fs.StringVar(&configURL, "config", "", "YAML settings `file`")
	fs.BoolVar(&fix, "fix", false, "apply suggested fixes")
	fs.BoolVar(&verbose, "v", false, "log debug messages")
	fs.IntVar(&jobs, "j", runtime.GOMAXPROCS(0), "maximum number of files analyzed in parallel")

	analyzer.New().RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitError
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	service := afs.New()
	registry := analyzer.DefaultRegistry()

	var settings Settings
	if configURL != "" {
		var err error
		if settings, err = LoadSettings(ctx, service, configURL); err != nil {
			logger.LogAttrs(ctx, slog.LevelError, "Can't load settings", slog.Any("error", err))

			return exitError
		}
	}

	if err := settings.Validate(registry); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "Invalid settings", slog.Any("error", err))

		return exitError
	}

	opts := analyzer.Options(append(settings.Options(), flagOptions(fs, registry)...))
	logger.LogAttrs(ctx, slog.LevelDebug, "Configured", opts.LogAttr())

	locations := fs.Args()
	if len(locations) == 0 {
		locations = []string{"."}
	}

	urls, err := collect(ctx, service, locations, settings)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "Can't list files", slog.Any("error", err))

		return exitError
	}

	c := checker{
		runner: analyzer.New(opts, analyzer.WithLogger(logger)),
		fs:     service,
		logger: logger,
		fix:    fix,
	}

	results, err := c.checkAll(ctx, urls, max(jobs, 1))
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "Check failed", slog.Any("error", err))

		return exitError
	}

	return printResults(stdout, results)
}

// flagOptions converts the explicitly set detector flags into options,
// so they take precedence over the settings file.
func flagOptions(fs *flag.FlagSet, registry analyzer.Registry) []analyzer.Option {
	var opts []analyzer.Option

	fs.Visit(func(f *flag.Flag) {
		getter, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}

		enabled, ok := getter.Get().(bool)
		if !ok {
			return
		}

		if f.Name == "suppressions" {
			opts = append(opts, analyzer.WithSuppressions(enabled))

			return
		}

		if _, ok := registry.Lookup(f.Name); ok {
			opts = append(opts, analyzer.WithDetector(f.Name, enabled))
		}
	})

	return opts
}

func printResults(w io.Writer, results []result) int {
	code := exitOK

	for _, r := range results {
		for _, d := range r.diagnostics {
			fmt.Fprintf(w, "%s: %s\n", r.fset.Position(d.Pos), d.Message) // ignore error

			code = exitIssues
		}
	}

	return code
}
