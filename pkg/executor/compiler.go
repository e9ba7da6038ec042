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
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/TheLukeGuy/backtrack/pkg/defaults"
	"github.com/TheLukeGuy/backtrack/pkg/errors"
	"github.com/TheLukeGuy/backtrack/pkg/version"
)

// Compiler is one historical compiler binary under test, tied to the
// registry milestone it was released as.
type Compiler struct {
	Name      string
	Path      string
	Milestone version.Version

	refPath string
	cmpPath string
}

// FixtureName returns the on-disk name used for a milestone's binary:
// "v0-8-0" for the 0.8.0 release, "v2023-01-30" for the dated beta.
func FixtureName(v version.Version) string {
	return "v" + strings.ReplaceAll(v.String(), ".", "-")
}

// milestonesByName maps fixture names back to their registry milestones.
// Built once from the catalog; fixture names are our own naming scheme, not
// untrusted input, so anything absent here is simply not a known compiler.
var milestonesByName = func() map[string]version.Version {
	byName := make(map[string]version.Version)
	for _, v := range version.Milestones() {
		byName[FixtureName(v)] = v
	}
	return byName
}()

// MilestoneForName returns the registry milestone a fixture name refers to.
func MilestoneForName(name string) (version.Version, bool) {
	v, ok := milestonesByName[name]
	return v, ok
}

// NewCompiler builds a Compiler for the named binary. cmpDir may be empty
// when the run never compiles compare documents (gen-refs).
func NewCompiler(name, path, refDir, cmpDir string) (Compiler, error) {
	milestone, ok := MilestoneForName(name)
	if !ok {
		return Compiler{}, fmt.Errorf("unknown compiler name %q", name)
	}
	doc := name + ".pdf"
	c := Compiler{
		Name:      name,
		Path:      path,
		Milestone: milestone,
		refPath:   filepath.Join(refDir, doc),
	}
	if cmpDir != "" {
		c.cmpPath = filepath.Join(cmpDir, doc)
	}
	return c, nil
}

// argLayout captures how a compiler era expects its command line. The CLI
// shape changed twice over the compiler's history, so the right layout is a
// pure function of the milestone.
type argLayout int

const (
	// layoutNoSubcommand: the dated betas, before 0.1.0.
	layoutNoSubcommand argLayout = iota
	// layoutRootThenCompile: 0.1.0 up to (not including) 0.7.0.
	layoutRootThenCompile
	// layoutCompileThenRoot: 0.7.0 onward.
	layoutCompileThenRoot
)

func layoutFor(v version.Version) argLayout {
	switch {
	case v.Less(version.V0_1_0):
		return layoutNoSubcommand
	case v.Less(version.V0_7_0):
		return layoutRootThenCompile
	default:
		return layoutCompileThenRoot
	}
}

// compileArgs assembles the argument vector for compiling input to output.
func (c Compiler) compileArgs(projectRoot, input, output string) []string {
	switch layoutFor(c.Milestone) {
	case layoutNoSubcommand:
		return []string{"--root", projectRoot, input, output}
	case layoutRootThenCompile:
		return []string{"--root", projectRoot, "compile", input, output}
	default:
		return []string{"compile", "--root", projectRoot, input, output}
	}
}

// SupportsVersionFlag reports whether the binary understands --version.
// Compilers before the 2023-03-21 beta do not.
func (c Compiler) SupportsVersionFlag() bool {
	return c.Milestone.AtLeast(version.V2023_03_21)
}

// EnsureExecutable makes the binary runnable. Archives do not always
// preserve mode bits.
func (c Compiler) EnsureExecutable() error {
	if err := os.Chmod(c.Path, 0o755); err != nil {
		return fmt.Errorf("failed to set the executable's permissions: %w", err)
	}
	return nil
}

// ReportedVersion runs the binary's --version command and returns its
// trimmed output.
func (c Compiler) ReportedVersion(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.VersionProbeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, c.Path, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("failed to run the version command: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// compile runs the binary over input and writes output, using the argument
// layout of the compiler's era.
func (c Compiler) compile(ctx context.Context, projectRoot, input, output string) error {
	cmd := exec.CommandContext(ctx, c.Path, c.compileArgs(projectRoot, input, output)...)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return errors.Wrap(errors.ErrCodeTimeout, "compile timed out", ctx.Err())
		}
		return &errors.StructuredError{
			Code:    errors.ErrCodeCompileFailed,
			Message: "the compile command exited unsuccessfully",
			Cause:   err,
			Context: map[string]any{"stderr": tail(stderr.String(), 2048)},
		}
	}
	return nil
}

// tail returns at most the last n bytes of s, on a line boundary when
// possible.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	s = s[len(s)-n:]
	if i := strings.IndexByte(s, '\n'); i >= 0 && i+1 < len(s) {
		s = s[i+1:]
	}
	return s
}

// fileDigest returns the hex sha256 digest of the file at path.
func fileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
