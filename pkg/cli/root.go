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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/TheLukeGuy/backtrack/pkg/logging"
)

const name = "backtrack"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// New assembles the backtrack command tree.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Compatibility test executor for historical compiler releases",
		Version: version,
		Flags: []cli.Flag{
			runDirFlag,
			logLevelFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			extractCmd(),
			genRefsCmd(),
			testCmd(),
			versionsCmd(),
		},
	}
}

// Run executes the command tree. This is called by main.main().
func Run(ctx context.Context, args []string) error {
	return New().Run(ctx, args)
}
