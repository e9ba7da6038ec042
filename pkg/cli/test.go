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

	"github.com/urfave/cli/v3"

	"github.com/TheLukeGuy/backtrack/pkg/executor"
)

func testCmd() *cli.Command {
	return &cli.Command{
		Name:  "test",
		Usage: "Test the compilers against their reference documents",
		Description: `Compile the sample source file with each compiler and compare the sha256
digest of the result against that compiler's stored reference document.

A digest mismatch marks the run as failed and keeps the compare document in
the run directory for inspection.

# Examples

Test every extracted compiler:
  backtrack test

Test specific compilers and keep a machine-readable report:
  backtrack test -c v0-7-0 -c v0-8-0 --output report.yaml`,
		Flags: []cli.Flag{
			compilersFlag,
			sampleFlag,
			refDirFlag,
			projectRootFlag,
			concurrencyFlag,
			timeoutFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runOp(ctx, cmd, executor.OpTest)
		},
	}
}
