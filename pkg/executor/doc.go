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

// Package executor runs a shelf of historical compiler binaries against a
// sample document and checks their output for regressions.
//
// Two operations exist: gen-refs compiles the sample with each compiler and
// stores the result as that compiler's reference document; test recompiles
// the sample and compares sha256 digests against the stored reference.
//
// Each binary is tied to a milestone from pkg/version. Behavior that changed
// across releases (the CLI argument layout, whether --version exists) is
// selected by comparing that milestone against registry constants rather than
// by inspecting the binary.
//
// Compilers run concurrently up to a bounded limit; per-compiler failures
// are collected into the run report instead of aborting the run.
package executor
