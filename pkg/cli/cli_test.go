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
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	versionpkg "github.com/TheLukeGuy/backtrack/pkg/version"
)

func TestNew(t *testing.T) {
	cmd := New()
	require.Equal(t, "backtrack", cmd.Name)
	require.Len(t, cmd.Commands, 4)
}

func TestVersionsCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "versions.json")
	err := Run(t.Context(), []string{"backtrack", "versions", "--format", "json", "--output", out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var catalog []catalogEntry
	require.NoError(t, json.Unmarshal(data, &catalog))
	require.Len(t, catalog, len(versionpkg.Milestones()))
	require.Equal(t, "2023-01-30", catalog[0].Version)
	require.Equal(t, "dated", catalog[0].Kind)
	require.Equal(t, "v2023-01-30", catalog[0].Fixture)
	require.Equal(t, "0.12.0", catalog[len(catalog)-1].Version)
	require.Equal(t, "semantic", catalog[len(catalog)-1].Kind)
}

func TestVersionsCommandUnknownFormat(t *testing.T) {
	err := Run(t.Context(), []string{"backtrack", "versions", "--format", "toml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown output format")
}

func TestTestCommandWithoutCompilers(t *testing.T) {
	runDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(runDir, "compilers"), 0o755))

	err := Run(t.Context(), []string{"backtrack", "--run-dir", runDir, "test"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "run the extract command first")
}

func TestTestCommandUnknownCompiler(t *testing.T) {
	runDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(runDir, "compilers"), 0o755))

	err := Run(t.Context(), []string{"backtrack", "--run-dir", runDir, "test", "-c", "v9-9-9"})
	require.Error(t, err)
}
