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
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/TheLukeGuy/backtrack/pkg/defaults"
)

// Global flags.
var (
	runDirFlag = &cli.StringFlag{
		Name:    "run-dir",
		Usage:   "Directory for intermediate files (extracted compilers, compare documents)",
		Sources: cli.EnvVars("BACKTRACK_RUN_DIR"),
		Value:   filepath.Join("tests", "run"),
	}
	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars("LOG_LEVEL"),
		Value:   "info",
	}
)

// Flags shared by the compile operations.
var (
	compilersFlag = &cli.StringSliceFlag{
		Name:    "compiler",
		Aliases: []string{"c"},
		Usage:   "Compiler to use (format: fixture name like v0-8-0, can be repeated; all discovered compilers when omitted)",
	}
	sampleFlag = &cli.StringFlag{
		Name:    "sample",
		Usage:   "The sample source file every compiler compiles",
		Sources: cli.EnvVars("BACKTRACK_SAMPLE"),
		Value:   filepath.Join("tests", "sample.typ"),
	}
	refDirFlag = &cli.StringFlag{
		Name:    "ref-dir",
		Usage:   "Directory that contains (or will contain) reference documents",
		Sources: cli.EnvVars("BACKTRACK_REF_DIR"),
		Value:   filepath.Join("tests", "refs"),
	}
	projectRootFlag = &cli.StringFlag{
		Name:  "project-root",
		Usage: "The project root to pass to each compiler",
		Value: ".",
	}
	concurrencyFlag = &cli.IntFlag{
		Name:  "concurrency",
		Usage: "Number of compilers exercised in parallel",
		Value: defaults.RunConcurrency,
	}
	timeoutFlag = &cli.DurationFlag{
		Name:  "timeout",
		Usage: "Timeout for a single compile",
		Value: defaults.CompileTimeout,
	}
)

// Report output flags.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Also write the serialized report to this file path",
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   "Serialization format: yaml, json",
		Value:   "yaml",
	}
)
