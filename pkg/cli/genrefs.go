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

func genRefsCmd() *cli.Command {
	return &cli.Command{
		Name:  "gen-refs",
		Usage: "Generate reference documents for the compilers",
		Description: `Compile the sample source file with each compiler and store the result as
that compiler's reference document. Later test runs compare against these.

# Examples

Generate references for every extracted compiler:
  backtrack gen-refs

Generate references for specific compilers only:
  backtrack gen-refs -c v0-8-0 -c v2023-01-30`,
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
			return runOp(ctx, cmd, executor.OpGenRefs)
		},
	}
}
