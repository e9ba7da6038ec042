// Copyright (c) 2023, Luke Chambers.  All rights reserved.
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

package executor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/TheLukeGuy/backtrack/pkg/defaults"
	"github.com/TheLukeGuy/backtrack/pkg/errors"
)

// Executor runs operations against a shelf of historical compiler binaries.
// The zero value is not usable; populate the paths and call Run.
type Executor struct {
	// RunDir holds intermediate files: the compilers/ directory and, for
	// tests, the cmps/ directory of compare documents.
	RunDir string
	// RefDir holds (or will hold) reference documents, one per compiler.
	RefDir string
	// Sample is the source document every compiler compiles.
	Sample string
	// ProjectRoot is passed to each compiler as its project root.
	ProjectRoot string

	// Concurrency bounds parallel compiler runs; zero means the default.
	Concurrency int
	// CompileTimeout bounds a single compile; zero means the default.
	CompileTimeout time.Duration
}

func (e *Executor) compilerDir() string { return filepath.Join(e.RunDir, "compilers") }
func (e *Executor) cmpDir() string      { return filepath.Join(e.RunDir, "cmps") }

// Discover returns every known compiler under the run directory, in timeline
// order. Entries that do not look like compiler binaries are skipped;
// entries that look like one but match no registry milestone are skipped
// with a warning.
func (e *Executor) Discover() ([]Compiler, error) {
	entries, err := os.ReadDir(e.compilerDir())
	if err != nil {
		return nil, fmt.Errorf("failed to read the compiler directory: %w", err)
	}

	var compilers []Compiler
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "v") {
			continue
		}
		c, err := NewCompiler(name, filepath.Join(e.compilerDir(), name), e.RefDir, e.cmpDir())
		if err != nil {
			slog.Warn("skipping unrecognized compiler", "name", name, "error", err)
			continue
		}
		compilers = append(compilers, c)
	}

	sortCompilers(compilers)
	return compilers, nil
}

// Select returns compilers for the explicitly named binaries, in timeline
// order. Unlike Discover, an unknown name here is an error.
func (e *Executor) Select(names []string) ([]Compiler, error) {
	compilers := make([]Compiler, 0, len(names))
	for _, name := range names {
		c, err := NewCompiler(name, filepath.Join(e.compilerDir(), name), e.RefDir, e.cmpDir())
		if err != nil {
			return nil, err
		}
		compilers = append(compilers, c)
	}

	sortCompilers(compilers)
	return compilers, nil
}

func sortCompilers(compilers []Compiler) {
	sort.Slice(compilers, func(i, j int) bool {
		return compilers[i].Milestone.Less(compilers[j].Milestone)
	})
}

// Run performs op against every given compiler and returns the aggregated
// report. Individual compiler failures land in the report rather than
// aborting the run; Run itself fails only on setup problems or context
// cancellation.
func (e *Executor) Run(ctx context.Context, op Op, compilers []Compiler) (*Report, error) {
	if err := os.MkdirAll(e.RunDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create the run directory: %w", err)
	}
	switch op {
	case OpGenRefs:
		if err := os.MkdirAll(e.RefDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create the reference directory: %w", err)
		}
	case OpTest:
		if err := os.MkdirAll(e.cmpDir(), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create the compare directory: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}

	concurrency := e.Concurrency
	if concurrency < 1 {
		concurrency = defaults.RunConcurrency
	}

	report := &Report{
		RunID:   uuid.NewString(),
		Op:      op,
		Results: make([]Result, len(compilers)),
		Success: true,
	}
	slog.Info("starting run",
		"runId", report.RunID,
		"op", op,
		"compilers", len(compilers),
		"concurrency", concurrency)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, c := range compilers {
		g.Go(func() error {
			report.Results[i] = e.runOne(gctx, op, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, r := range report.Results {
		if r.Status != StatusOK {
			report.Success = false
			break
		}
	}
	return report, nil
}

func (e *Executor) runOne(ctx context.Context, op Op, c Compiler) Result {
	log := slog.With("compiler", c.Name)
	result := Result{
		Compiler: c.Name,
		Version:  c.Milestone.String(),
		Status:   StatusOK,
	}

	if err := c.EnsureExecutable(); err != nil {
		log.Error("failed to prepare the compiler", "error", err)
		return failure(result, errors.Wrap(errors.ErrCodeInternal, "permission setting failed", err))
	}

	if c.SupportsVersionFlag() {
		reported, err := c.ReportedVersion(ctx)
		if err != nil {
			log.Warn("failed to get the compiler version", "error", err)
		} else {
			result.Reported = reported
			log.Info("compiler reported itself", "reported", reported)
		}
	} else {
		log.Debug("compiler predates --version, skipping probe")
	}

	timeout := e.CompileTimeout
	if timeout <= 0 {
		timeout = defaults.CompileTimeout
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var err error
	switch op {
	case OpGenRefs:
		err = c.compile(cctx, e.ProjectRoot, e.Sample, c.refPath)
	case OpTest:
		err = e.test(cctx, c, &result)
	}
	if err != nil {
		log.Error("operation failed", "op", op, "error", err)
		return failure(result, err)
	}

	log.Info("operation succeeded", "op", op)
	return result
}

// test compiles the compare document and checks its digest against the
// reference.
func (e *Executor) test(ctx context.Context, c Compiler, result *Result) error {
	if err := c.compile(ctx, e.ProjectRoot, e.Sample, c.cmpPath); err != nil {
		return err
	}

	refDigest, err := fileDigest(c.refPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRefUnreadable, "failed to read the reference document", err)
	}
	cmpDigest, err := fileDigest(c.cmpPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to read the compare document", err)
	}

	if refDigest != cmpDigest {
		result.RefDigest = refDigest
		result.CmpDigest = cmpDigest
		return errors.NewWithContext(errors.ErrCodeMismatch, "the documents don't match", map[string]any{
			"refDigest": refDigest,
			"cmpDigest": cmpDigest,
		})
	}
	return nil
}

func failure(result Result, err error) Result {
	result.Status = StatusError
	result.Code = errors.CodeOf(err)
	result.Detail = err.Error()
	if result.Code == errors.ErrCodeMismatch {
		result.Status = StatusMismatch
	}
	return result
}
