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
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/TheLukeGuy/backtrack/pkg/executor"
	"github.com/TheLukeGuy/backtrack/pkg/serializer"
	versionpkg "github.com/TheLukeGuy/backtrack/pkg/version"
)

// catalogEntry is one milestone release in the versions listing.
type catalogEntry struct {
	Version    string `json:"version" yaml:"version"`
	Kind       string `json:"kind" yaml:"kind"`
	Fixture    string `json:"fixture" yaml:"fixture"`
	Components []int  `json:"components" yaml:"components"`
}

func versionsCmd() *cli.Command {
	return &cli.Command{
		Name:  "versions",
		Usage: "List the known milestone compiler releases in order",
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			milestones := versionpkg.Milestones()
			catalog := make([]catalogEntry, 0, len(milestones))
			for _, m := range milestones {
				catalog = append(catalog, catalogEntry{
					Version:    m.String(),
					Kind:       m.Kind().String(),
					Fixture:    executor.FixtureName(m),
					Components: m.Components(),
				})
			}

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer w.Close()
			return w.Serialize(catalog)
		},
	}
}
