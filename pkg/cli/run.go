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

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/TheLukeGuy/backtrack/pkg/executor"
	"github.com/TheLukeGuy/backtrack/pkg/serializer"
)

// ErrRunFailed signals that at least one compiler failed its operation.
var ErrRunFailed = errors.New("the run failed")

// newExecutor builds an executor from the command's flag set.
func newExecutor(cmd *cli.Command) *executor.Executor {
	return &executor.Executor{
		RunDir:         cmd.String("run-dir"),
		RefDir:         cmd.String("ref-dir"),
		Sample:         cmd.String("sample"),
		ProjectRoot:    cmd.String("project-root"),
		Concurrency:    int(cmd.Int("concurrency")),
		CompileTimeout: cmd.Duration("timeout"),
	}
}

// runOp drives a gen-refs or test run and emits the report.
func runOp(ctx context.Context, cmd *cli.Command, op executor.Op) error {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return fmt.Errorf("unknown output format: %q", outFormat)
	}

	e := newExecutor(cmd)

	var (
		compilers []executor.Compiler
		err       error
	)
	if names := cmd.StringSlice("compiler"); len(names) > 0 {
		compilers, err = e.Select(names)
	} else {
		compilers, err = e.Discover()
	}
	if err != nil {
		return err
	}
	if len(compilers) == 0 {
		return fmt.Errorf("no compilers found under %q; run the extract command first", e.RunDir)
	}

	report, err := e.Run(ctx, op, compilers)
	if err != nil {
		return err
	}

	executor.Render(os.Stdout, report, executor.TerminalWidth())

	if path := cmd.String("output"); path != "" {
		w := serializer.NewFileWriterOrStdout(outFormat, path)
		defer w.Close()
		if err := w.Serialize(report); err != nil {
			return err
		}
	}

	if !report.Success {
		return ErrRunFailed
	}
	return nil
}
