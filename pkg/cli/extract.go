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
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/TheLukeGuy/backtrack/pkg/defaults"
	"github.com/TheLukeGuy/backtrack/pkg/executor"
)

func extractCmd() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Extract the historical compiler binaries from an archive",
		ArgsUsage: "[archive]",
		Description: `Unpack a gzip-compressed tar archive of compiler binaries into the run
directory so the gen-refs and test commands can find them.

Defaults to tests/compilers.tar.gz when no archive is given.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			archive := cmd.Args().First()
			if archive == "" {
				archive = filepath.Join("tests", "compilers.tar.gz")
			}
			dest := filepath.Join(cmd.String("run-dir"), "compilers")

			ctx, cancel := context.WithTimeout(ctx, defaults.ExtractTimeout)
			defer cancel()

			slog.Info("extracting compilers", "archive", archive, "dest", dest)
			if err := executor.Extract(ctx, archive, dest); err != nil {
				return err
			}
			slog.Info("extraction complete")
			return nil
		},
	}
}
